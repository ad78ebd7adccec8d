package repositories

import (
	"errors"
	"time"

	"mychild_backend/internal/models"

	"gorm.io/gorm"
)

var ErrPaymentNotFound = errors.New("payment transaction not found")

type PaymentRepository interface {
	Create(db *gorm.DB, tx *models.PaymentTransaction) error
	FindByID(db *gorm.DB, id string) (*models.PaymentTransaction, error)
	FindByInvoiceToken(db *gorm.DB, token string) (*models.PaymentTransaction, error)
	SetInvoiceToken(db *gorm.DB, id, token string) error
	MarkPaid(db *gorm.DB, id string) error
	UpdateStatus(db *gorm.DB, id string, status models.PaymentStatus) error
	ExpireStale(db *gorm.DB, olderThan time.Time) (int64, error)
	FindByUser(db *gorm.DB, userID string) ([]models.PaymentTransaction, error)
}

type PaymentRepositoryImpl struct{}

func NewPaymentRepository() PaymentRepository {
	return &PaymentRepositoryImpl{}
}

func (r *PaymentRepositoryImpl) Create(db *gorm.DB, tx *models.PaymentTransaction) error {
	return db.Create(tx).Error
}

func (r *PaymentRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.PaymentTransaction, error) {
	var tx models.PaymentTransaction
	err := db.First(&tx, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPaymentNotFound
		}
		return nil, err
	}
	return &tx, nil
}

func (r *PaymentRepositoryImpl) FindByInvoiceToken(db *gorm.DB, token string) (*models.PaymentTransaction, error) {
	var tx models.PaymentTransaction
	err := db.Where("invoice_token = ?", token).First(&tx).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPaymentNotFound
		}
		return nil, err
	}
	return &tx, nil
}

func (r *PaymentRepositoryImpl) SetInvoiceToken(db *gorm.DB, id, token string) error {
	result := db.Model(&models.PaymentTransaction{}).Where("id = ?", id).
		Update("invoice_token", token)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrPaymentNotFound
	}
	return nil
}

// MarkPaid проставляет успех только для pending-транзакции,
// повторный коллбек по той же транзакции ничего не меняет
func (r *PaymentRepositoryImpl) MarkPaid(db *gorm.DB, id string) error {
	now := time.Now()
	result := db.Model(&models.PaymentTransaction{}).
		Where("id = ? AND status = ?", id, models.PaymentStatusPending).
		Updates(map[string]interface{}{
			"status":  models.PaymentStatusSuccess,
			"paid_at": &now,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrPaymentNotFound
	}
	return nil
}

func (r *PaymentRepositoryImpl) UpdateStatus(db *gorm.DB, id string, status models.PaymentStatus) error {
	result := db.Model(&models.PaymentTransaction{}).Where("id = ?", id).
		Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrPaymentNotFound
	}
	return nil
}

func (r *PaymentRepositoryImpl) ExpireStale(db *gorm.DB, olderThan time.Time) (int64, error) {
	result := db.Model(&models.PaymentTransaction{}).
		Where("status = ? AND created_at < ?", models.PaymentStatusPending, olderThan).
		Update("status", models.PaymentStatusExpired)
	return result.RowsAffected, result.Error
}

func (r *PaymentRepositoryImpl) FindByUser(db *gorm.DB, userID string) ([]models.PaymentTransaction, error) {
	var txs []models.PaymentTransaction
	err := db.Where("user_id = ?", userID).Order("created_at DESC").Find(&txs).Error
	return txs, err
}
