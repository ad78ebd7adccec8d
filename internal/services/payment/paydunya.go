package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"mychild_backend/internal/config"
)

// PayDunyaClient оборачивает checkout-invoice API платёжного шлюза.
type PayDunyaClient struct {
	baseURL    string
	masterKey  string
	privateKey string
	publicKey  string
	token      string
	mode       string
	returnURL  string
	cancelURL  string
	storeName  string
	httpClient *http.Client
}

func NewPayDunyaClient(cfg *config.Config) *PayDunyaClient {
	return &PayDunyaClient{
		baseURL:    cfg.PayDunya.BaseURL,
		masterKey:  cfg.PayDunya.MasterKey,
		privateKey: cfg.PayDunya.PrivateKey,
		publicKey:  cfg.PayDunya.PublicKey,
		token:      cfg.PayDunya.Token,
		mode:       cfg.PayDunya.Mode,
		returnURL:  cfg.PayDunya.ReturnURL,
		cancelURL:  cfg.PayDunya.CancelURL,
		storeName:  cfg.PayDunya.StoreName,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// CustomData прокидывается в счёт и возвращается шлюзом при подтверждении
type CustomData struct {
	TransactionID string `json:"transaction_id"`
	UserID        string `json:"user_id"`
}

type invoiceItem struct {
	Name       string  `json:"name"`
	Quantity   int     `json:"quantity"`
	UnitPrice  float64 `json:"unit_price"`
	TotalPrice float64 `json:"total_price"`
}

type createInvoiceRequest struct {
	Invoice struct {
		Items       []invoiceItem `json:"items"`
		TotalAmount float64       `json:"total_amount"`
		Description string        `json:"description"`
	} `json:"invoice"`
	Store struct {
		Name string `json:"name"`
	} `json:"store"`
	CustomData CustomData `json:"custom_data"`
	Actions    struct {
		CancelURL string `json:"cancel_url"`
		ReturnURL string `json:"return_url"`
	} `json:"actions"`
}

type createInvoiceResponse struct {
	ResponseCode string `json:"response_code"`
	ResponseText string `json:"response_text"`
	Token        string `json:"token"`
}

// Invoice — результат создания счёта
type Invoice struct {
	CheckoutURL string
	Token       string
}

// ConfirmedInvoice — состояние счёта по данным шлюза
type ConfirmedInvoice struct {
	Status     string
	CustomData CustomData
}

type confirmResponse struct {
	Response struct {
		Status     string     `json:"status"`
		CustomData CustomData `json:"custom_data"`
	} `json:"response"`
}

// CreateInvoice создаёт счёт и возвращает URL страницы оплаты.
// Код ответа "00" означает успех, всё остальное - отказ шлюза.
func (c *PayDunyaClient) CreateInvoice(ctx context.Context, amount float64, description string, data CustomData) (*Invoice, error) {
	var body createInvoiceRequest
	body.Invoice.Items = []invoiceItem{{
		Name:       description,
		Quantity:   1,
		UnitPrice:  amount,
		TotalPrice: amount,
	}}
	body.Invoice.TotalAmount = amount
	body.Invoice.Description = description
	body.Store.Name = c.storeName
	body.CustomData = data
	body.Actions.CancelURL = c.cancelURL
	body.Actions.ReturnURL = c.returnURL

	var resp createInvoiceResponse
	if err := c.post(ctx, "/v1/checkout-invoice/create", &body, &resp); err != nil {
		return nil, err
	}

	if resp.ResponseCode != "00" {
		return nil, fmt.Errorf("gateway rejected invoice: %s", resp.ResponseText)
	}

	return &Invoice{CheckoutURL: resp.ResponseText, Token: resp.Token}, nil
}

// ConfirmInvoice запрашивает у шлюза реальное состояние оплаты по токену счёта.
func (c *PayDunyaClient) ConfirmInvoice(ctx context.Context, token string) (*ConfirmedInvoice, error) {
	var resp confirmResponse
	if err := c.post(ctx, "/v1/checkout-invoice/confirm/"+token, struct{}{}, &resp); err != nil {
		return nil, err
	}

	return &ConfirmedInvoice{
		Status:     resp.Response.Status,
		CustomData: resp.Response.CustomData,
	}, nil
}

// IsPaid интерпретирует статусы шлюза, означающие успешную оплату
func IsPaid(status string) bool {
	switch status {
	case "completed", "success", "paid":
		return true
	}
	return false
}

func (c *PayDunyaClient) post(ctx context.Context, path string, body, out interface{}) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("PAYDUNYA-MASTER-KEY", c.masterKey)
	req.Header.Set("PAYDUNYA-PRIVATE-KEY", c.privateKey)
	req.Header.Set("PAYDUNYA-PUBLIC-KEY", c.publicKey)
	req.Header.Set("PAYDUNYA-TOKEN", c.token)
	req.Header.Set("PAYDUNYA-MODE", c.mode)

	httpResp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("gateway request failed: %w", err)
	}
	defer httpResp.Body.Close()

	raw, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return fmt.Errorf("read gateway response: %w", err)
	}

	if httpResp.StatusCode >= 300 {
		return fmt.Errorf("gateway returned %d: %s", httpResp.StatusCode, string(raw))
	}

	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode gateway response: %w", err)
	}
	return nil
}

// SetHTTPClient подменяет транспорт, используется в тестах
func (c *PayDunyaClient) SetHTTPClient(client *http.Client) {
	c.httpClient = client
}

// SetBaseURL подменяет адрес шлюза, используется в тестах
func (c *PayDunyaClient) SetBaseURL(url string) {
	c.baseURL = url
}
