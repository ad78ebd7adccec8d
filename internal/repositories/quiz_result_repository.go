package repositories

import (
	"mychild_backend/internal/models"

	"gorm.io/gorm"
)

type QuizResultRepository interface {
	Create(db *gorm.DB, result *models.QuizResult) error
	FindByUser(db *gorm.DB, userID string) ([]models.QuizResult, error)
	FindByUserAndSubject(db *gorm.DB, userID, subjectID string) ([]models.QuizResult, error)
}

type QuizResultRepositoryImpl struct{}

func NewQuizResultRepository() QuizResultRepository {
	return &QuizResultRepositoryImpl{}
}

func (r *QuizResultRepositoryImpl) Create(db *gorm.DB, result *models.QuizResult) error {
	return db.Create(result).Error
}

// FindByUser возвращает результаты от новых к старым
func (r *QuizResultRepositoryImpl) FindByUser(db *gorm.DB, userID string) ([]models.QuizResult, error) {
	var results []models.QuizResult
	err := db.Where("user_id = ?", userID).Order("created_at DESC").Find(&results).Error
	return results, err
}

func (r *QuizResultRepositoryImpl) FindByUserAndSubject(db *gorm.DB, userID, subjectID string) ([]models.QuizResult, error) {
	var results []models.QuizResult
	err := db.Where("user_id = ? AND subject_id = ?", userID, subjectID).
		Order("created_at DESC").Find(&results).Error
	return results, err
}
