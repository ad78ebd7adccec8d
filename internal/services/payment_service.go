package services

import (
	"context"

	"mychild_backend/internal/appErrors"
	"mychild_backend/internal/logger"
	"mychild_backend/internal/models"
	"mychild_backend/internal/repositories"
	"mychild_backend/internal/services/dto"
	"mychild_backend/internal/services/payment"

	"gorm.io/gorm"
)

type PaymentService interface {
	InitPayment(ctx context.Context, db *gorm.DB, userID string, req *dto.InitPaymentRequest) (*dto.InitPaymentResponse, error)
	HandleCallback(ctx context.Context, db *gorm.DB, invoiceToken string) error
	ListTransactions(db *gorm.DB, userID string) ([]dto.PaymentTransactionResponse, error)
}

type PaymentServiceImpl struct {
	paymentRepo repositories.PaymentRepository
	userRepo    repositories.UserRepository
	gateway     *payment.PayDunyaClient
}

func NewPaymentService(
	paymentRepo repositories.PaymentRepository,
	userRepo repositories.UserRepository,
	gateway *payment.PayDunyaClient,
) PaymentService {
	return &PaymentServiceImpl{
		paymentRepo: paymentRepo,
		userRepo:    userRepo,
		gateway:     gateway,
	}
}

// InitPayment создает pending-транзакцию и счёт в шлюзе.
// ID транзакции и пользователя уезжают в custom_data счёта,
// коллбек восстанавливает по ним контекст платежа.
func (s *PaymentServiceImpl) InitPayment(ctx context.Context, db *gorm.DB, userID string, req *dto.InitPaymentRequest) (*dto.InitPaymentResponse, error) {
	description := req.Description
	if description == "" {
		description = "Paiement d'inscription MyChild"
	}

	tx := &models.PaymentTransaction{
		UserID:      userID,
		Amount:      req.Amount,
		Description: description,
	}
	if err := s.paymentRepo.Create(db, tx); err != nil {
		return nil, appErrors.InternalError(err)
	}

	invoice, err := s.gateway.CreateInvoice(ctx, req.Amount, description, payment.CustomData{
		TransactionID: tx.ID,
		UserID:        userID,
	})
	if err != nil {
		if uerr := s.paymentRepo.UpdateStatus(db, tx.ID, models.PaymentStatusFailed); uerr != nil {
			logger.WithError(uerr).Error("Failed to mark transaction as failed")
		}
		return nil, appErrors.ErrPaymentGateway.WithDetails(err.Error())
	}

	if err := s.paymentRepo.SetInvoiceToken(db, tx.ID, invoice.Token); err != nil {
		return nil, appErrors.InternalError(err)
	}

	return &dto.InitPaymentResponse{
		CheckoutURL:   invoice.CheckoutURL,
		InvoiceToken:  invoice.Token,
		TransactionID: tx.ID,
	}, nil
}

// HandleCallback сверяет состояние счёта с шлюзом, а не верит коллбеку.
// Успешная оплата помечает транзакцию и ставит has_paid пользователю.
// Повторный коллбек по уже оплаченной транзакции - no-op.
func (s *PaymentServiceImpl) HandleCallback(ctx context.Context, db *gorm.DB, invoiceToken string) error {
	confirmed, err := s.gateway.ConfirmInvoice(ctx, invoiceToken)
	if err != nil {
		return appErrors.ErrPaymentGateway.WithDetails(err.Error())
	}

	transactionID := confirmed.CustomData.TransactionID
	if transactionID == "" {
		// Fallback: ищем транзакцию по токену счёта
		tx, err := s.paymentRepo.FindByInvoiceToken(db, invoiceToken)
		if err != nil {
			if appErrors.Is(err, repositories.ErrPaymentNotFound) {
				return appErrors.ErrPaymentNotFound
			}
			return appErrors.InternalError(err)
		}
		transactionID = tx.ID
	}

	tx, err := s.paymentRepo.FindByID(db, transactionID)
	if err != nil {
		if appErrors.Is(err, repositories.ErrPaymentNotFound) {
			return appErrors.ErrPaymentNotFound
		}
		return appErrors.InternalError(err)
	}

	if !payment.IsPaid(confirmed.Status) {
		if tx.Status == models.PaymentStatusPending {
			if err := s.paymentRepo.UpdateStatus(db, tx.ID, models.PaymentStatusFailed); err != nil {
				return appErrors.InternalError(err)
			}
		}
		logger.Warn("Payment not completed", "transaction_id", tx.ID, "status", confirmed.Status)
		return nil
	}

	if err := s.paymentRepo.MarkPaid(db, tx.ID); err != nil {
		if appErrors.Is(err, repositories.ErrPaymentNotFound) {
			// Уже оплачена, идемпотентный повтор
			return nil
		}
		return appErrors.InternalError(err)
	}

	if err := s.userRepo.SetHasPaid(db, tx.UserID); err != nil {
		if !appErrors.Is(err, repositories.ErrUserNotFound) {
			return appErrors.InternalError(err)
		}
		logger.Warn("Paid transaction references missing user", "transaction_id", tx.ID, "user_id", tx.UserID)
	}

	logger.Info("Payment confirmed", "transaction_id", tx.ID, "user_id", tx.UserID)
	return nil
}

func (s *PaymentServiceImpl) ListTransactions(db *gorm.DB, userID string) ([]dto.PaymentTransactionResponse, error) {
	txs, err := s.paymentRepo.FindByUser(db, userID)
	if err != nil {
		return nil, appErrors.InternalError(err)
	}

	out := make([]dto.PaymentTransactionResponse, 0, len(txs))
	for i := range txs {
		out = append(out, toPaymentResponse(&txs[i]))
	}
	return out, nil
}

func toPaymentResponse(tx *models.PaymentTransaction) dto.PaymentTransactionResponse {
	resp := dto.PaymentTransactionResponse{
		ID:          tx.ID,
		Amount:      tx.Amount,
		Description: tx.Description,
		Status:      string(tx.Status),
		CreatedAt:   tx.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
	if tx.PaidAt != nil {
		resp.PaidAt = tx.PaidAt.Format("2006-01-02T15:04:05Z07:00")
	}
	return resp
}
