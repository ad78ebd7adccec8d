package dto

type InitPaymentRequest struct {
	Amount      float64 `json:"amount" validate:"required,gt=0"`
	Description string  `json:"description" validate:"omitempty,max=300"`
}

type InitPaymentResponse struct {
	CheckoutURL   string `json:"checkout_url"`
	InvoiceToken  string `json:"invoice_token"`
	TransactionID string `json:"transaction_id"`
}

// PaymentCallbackRequest приходит от шлюза после оплаты
type PaymentCallbackRequest struct {
	Token string `json:"token" validate:"required"`
}

type PaymentTransactionResponse struct {
	ID          string  `json:"id"`
	Amount      float64 `json:"amount"`
	Description string  `json:"description,omitempty"`
	Status      string  `json:"status"`
	PaidAt      string  `json:"paid_at,omitempty"`
	CreatedAt   string  `json:"created_at"`
}
