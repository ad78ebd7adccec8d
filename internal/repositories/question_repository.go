package repositories

import (
	"errors"

	"mychild_backend/internal/models"

	"gorm.io/gorm"
)

var ErrQuestionNotFound = errors.New("question not found")

type QuestionRepository interface {
	FindBySubject(db *gorm.DB, subjectID string) ([]models.Question, error)
	FindByID(db *gorm.DB, id string) (*models.Question, error)
	Create(db *gorm.DB, question *models.Question) error
	CreateBatch(db *gorm.DB, questions []models.Question) error
	Update(db *gorm.DB, question *models.Question) error
	Delete(db *gorm.DB, id string) error
}

type QuestionRepositoryImpl struct{}

func NewQuestionRepository() QuestionRepository {
	return &QuestionRepositoryImpl{}
}

func (r *QuestionRepositoryImpl) FindBySubject(db *gorm.DB, subjectID string) ([]models.Question, error) {
	var questions []models.Question
	err := db.Where("subject_id = ?", subjectID).Order("created_at ASC").Find(&questions).Error
	return questions, err
}

func (r *QuestionRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.Question, error) {
	var question models.Question
	err := db.First(&question, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrQuestionNotFound
		}
		return nil, err
	}
	return &question, nil
}

func (r *QuestionRepositoryImpl) Create(db *gorm.DB, question *models.Question) error {
	return db.Create(question).Error
}

// CreateBatch вставляет пачку вопросов одной транзакцией
func (r *QuestionRepositoryImpl) CreateBatch(db *gorm.DB, questions []models.Question) error {
	if len(questions) == 0 {
		return nil
	}
	return db.Create(&questions).Error
}

func (r *QuestionRepositoryImpl) Update(db *gorm.DB, question *models.Question) error {
	result := db.Model(question).Updates(map[string]interface{}{
		"text":    question.Text,
		"answer":  question.Answer,
		"options": question.Options,
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrQuestionNotFound
	}
	return nil
}

func (r *QuestionRepositoryImpl) Delete(db *gorm.DB, id string) error {
	result := db.Delete(&models.Question{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrQuestionNotFound
	}
	return nil
}
