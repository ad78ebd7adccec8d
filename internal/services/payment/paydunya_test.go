package payment

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"mychild_backend/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.Handler) *PayDunyaClient {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := &config.Config{}
	cfg.PayDunya.MasterKey = "master"
	cfg.PayDunya.PrivateKey = "private"
	cfg.PayDunya.PublicKey = "public"
	cfg.PayDunya.Token = "token"
	cfg.PayDunya.Mode = "test"
	cfg.PayDunya.StoreName = "MyChild"
	cfg.PayDunya.ReturnURL = "https://example.com/return"
	cfg.PayDunya.CancelURL = "https://example.com/cancel"

	client := NewPayDunyaClient(cfg)
	client.SetBaseURL(server.URL)
	return client
}

func TestCreateInvoice(t *testing.T) {
	var gotPath string
	var gotHeaders http.Header
	var gotBody createInvoiceRequest

	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotHeaders = r.Header.Clone()
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

		json.NewEncoder(w).Encode(map[string]string{
			"response_code": "00",
			"response_text": "https://checkout.example.com/abc",
			"token":         "inv-token-1",
		})
	}))

	invoice, err := client.CreateInvoice(context.Background(), 5000, "Paiement d'inscription", CustomData{
		TransactionID: "tx-1",
		UserID:        "user-1",
	})
	require.NoError(t, err)

	assert.Equal(t, "https://checkout.example.com/abc", invoice.CheckoutURL)
	assert.Equal(t, "inv-token-1", invoice.Token)

	assert.Equal(t, "/v1/checkout-invoice/create", gotPath)
	assert.Equal(t, "master", gotHeaders.Get("PAYDUNYA-MASTER-KEY"))
	assert.Equal(t, "private", gotHeaders.Get("PAYDUNYA-PRIVATE-KEY"))
	assert.Equal(t, "public", gotHeaders.Get("PAYDUNYA-PUBLIC-KEY"))
	assert.Equal(t, "token", gotHeaders.Get("PAYDUNYA-TOKEN"))
	assert.Equal(t, "test", gotHeaders.Get("PAYDUNYA-MODE"))

	assert.Equal(t, float64(5000), gotBody.Invoice.TotalAmount)
	assert.Equal(t, "MyChild", gotBody.Store.Name)
	assert.Equal(t, "tx-1", gotBody.CustomData.TransactionID)
	assert.Equal(t, "user-1", gotBody.CustomData.UserID)
	assert.Equal(t, "https://example.com/return", gotBody.Actions.ReturnURL)
}

func TestCreateInvoiceGatewayRejection(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{
			"response_code": "1001",
			"response_text": "Invalid credentials",
		})
	}))

	_, err := client.CreateInvoice(context.Background(), 5000, "desc", CustomData{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Invalid credentials")
}

func TestCreateInvoiceHTTPError(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))

	_, err := client.CreateInvoice(context.Background(), 5000, "desc", CustomData{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "502")
}

func TestConfirmInvoice(t *testing.T) {
	var gotPath string

	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		json.NewEncoder(w).Encode(map[string]interface{}{
			"response": map[string]interface{}{
				"status": "completed",
				"custom_data": map[string]string{
					"transaction_id": "tx-1",
					"user_id":        "user-1",
				},
			},
		})
	}))

	confirmed, err := client.ConfirmInvoice(context.Background(), "inv-token-1")
	require.NoError(t, err)

	assert.Equal(t, "/v1/checkout-invoice/confirm/inv-token-1", gotPath)
	assert.Equal(t, "completed", confirmed.Status)
	assert.Equal(t, "tx-1", confirmed.CustomData.TransactionID)
	assert.Equal(t, "user-1", confirmed.CustomData.UserID)
}

func TestIsPaid(t *testing.T) {
	for _, status := range []string{"completed", "success", "paid"} {
		assert.True(t, IsPaid(status), status)
	}
	for _, status := range []string{"pending", "cancelled", "failed", ""} {
		assert.False(t, IsPaid(status), status)
	}
}
