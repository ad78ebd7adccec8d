package repositories

import (
	"errors"
	"time"

	"mychild_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrUserAlreadyExists = errors.New("user already exists")
)

type UserRepository interface {
	FindByID(db *gorm.DB, id string) (*models.User, error)
	FindByPhone(db *gorm.DB, phone string) (*models.User, error)
	Create(db *gorm.DB, user *models.User) error
	Approve(db *gorm.DB, userID string) error
	SetActive(db *gorm.DB, userID string, active bool) error
	SetHasPaid(db *gorm.DB, userID string) error
	Delete(db *gorm.DB, userID string) error

	FindAll(db *gorm.DB, limit, offset int) ([]models.User, int64, error)
	FindPending(db *gorm.DB) ([]models.User, error)
	CountPending(db *gorm.DB) (int64, error)
	FindSubjects(db *gorm.DB, userID string) ([]models.Subject, error)
}

type UserRepositoryImpl struct{}

func NewUserRepository() UserRepository {
	return &UserRepositoryImpl{}
}

func (r *UserRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.User, error) {
	var user models.User
	err := db.First(&user, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

// FindByPhone ищет регистронезависимо; номер ожидается нормализованным
func (r *UserRepositoryImpl) FindByPhone(db *gorm.DB, phone string) (*models.User, error) {
	var user models.User
	err := db.Where("LOWER(phone) = LOWER(?)", phone).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

// Create пишет нового пользователя. Уникальность phone гарантирует
// индекс в БД, дубликат транслируется в ErrUserAlreadyExists.
func (r *UserRepositoryImpl) Create(db *gorm.DB, user *models.User) error {
	if err := db.Create(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrUserAlreadyExists
		}
		return err
	}
	return nil
}

// Approve переводит заявку в активное состояние одним апдейтом
func (r *UserRepositoryImpl) Approve(db *gorm.DB, userID string) error {
	result := db.Model(&models.User{}).
		Where("id = ? AND pending_approval = ?", userID, true).
		Updates(map[string]interface{}{
			"approved":         true,
			"pending_approval": false,
			"is_active":        true,
			"updated_at":       time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (r *UserRepositoryImpl) SetActive(db *gorm.DB, userID string, active bool) error {
	result := db.Model(&models.User{}).Where("id = ?", userID).Updates(map[string]interface{}{
		"is_active":  active,
		"updated_at": time.Now(),
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (r *UserRepositoryImpl) SetHasPaid(db *gorm.DB, userID string) error {
	result := db.Model(&models.User{}).Where("id = ?", userID).Updates(map[string]interface{}{
		"has_paid":   true,
		"updated_at": time.Now(),
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (r *UserRepositoryImpl) Delete(db *gorm.DB, userID string) error {
	result := db.Delete(&models.User{}, "id = ?", userID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (r *UserRepositoryImpl) FindAll(db *gorm.DB, limit, offset int) ([]models.User, int64, error) {
	var users []models.User
	var total int64

	if err := db.Model(&models.User{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := db.Limit(limit).Offset(offset).Order("created_at DESC").Find(&users).Error
	if err != nil {
		return nil, 0, err
	}
	return users, total, nil
}

func (r *UserRepositoryImpl) FindPending(db *gorm.DB) ([]models.User, error) {
	var users []models.User
	err := db.Where("pending_approval = ?", true).Order("created_at ASC").Find(&users).Error
	return users, err
}

func (r *UserRepositoryImpl) CountPending(db *gorm.DB) (int64, error) {
	var count int64
	err := db.Model(&models.User{}).Where("pending_approval = ?", true).Count(&count).Error
	return count, err
}

func (r *UserRepositoryImpl) FindSubjects(db *gorm.DB, userID string) ([]models.Subject, error) {
	var subjects []models.Subject
	user := models.User{BaseModel: models.BaseModel{ID: userID}}
	err := db.Model(&user).Association("Subjects").Find(&subjects)
	return subjects, err
}
