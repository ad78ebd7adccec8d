package models

import "time"

// PaymentTransaction - платеж за регистрацию через PayDunya.
// InvoiceToken - токен счета, который вернул шлюз при создании.
type PaymentTransaction struct {
	BaseModel
	UserID       string        `gorm:"type:uuid;not null;index" json:"user_id"`
	Amount       float64       `gorm:"not null" json:"amount"`
	Description  string        `gorm:"not null" json:"description"`
	Status       PaymentStatus `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
	InvoiceToken string        `gorm:"uniqueIndex" json:"invoice_token"`
	PaidAt       *time.Time    `json:"paid_at,omitempty"`
}
