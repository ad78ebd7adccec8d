package repositories

import (
	"errors"

	"mychild_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrSubjectNotFound = errors.New("subject not found")
	ErrClassNotFound   = errors.New("class not found")
)

type SubjectRepository interface {
	FindAll(db *gorm.DB) ([]models.Subject, error)
	FindByID(db *gorm.DB, id string) (*models.Subject, error)
	Create(db *gorm.DB, subject *models.Subject) error
	Update(db *gorm.DB, subject *models.Subject) error
	Delete(db *gorm.DB, id string) error

	FindClasses(db *gorm.DB, subjectID string) ([]models.Class, error)
	FindClassByID(db *gorm.DB, id string) (*models.Class, error)
	CreateClass(db *gorm.DB, class *models.Class) error
	UpdateClass(db *gorm.DB, class *models.Class) error
	DeleteClass(db *gorm.DB, id string) error

	AttachUser(db *gorm.DB, subjectID, userID string) error
	DetachUser(db *gorm.DB, subjectID, userID string) error
}

type SubjectRepositoryImpl struct{}

func NewSubjectRepository() SubjectRepository {
	return &SubjectRepositoryImpl{}
}

func (r *SubjectRepositoryImpl) FindAll(db *gorm.DB) ([]models.Subject, error) {
	var subjects []models.Subject
	err := db.Order("name ASC").Find(&subjects).Error
	return subjects, err
}

func (r *SubjectRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.Subject, error) {
	var subject models.Subject
	err := db.Preload("Classes").First(&subject, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSubjectNotFound
		}
		return nil, err
	}
	return &subject, nil
}

func (r *SubjectRepositoryImpl) Create(db *gorm.DB, subject *models.Subject) error {
	return db.Create(subject).Error
}

func (r *SubjectRepositoryImpl) Update(db *gorm.DB, subject *models.Subject) error {
	result := db.Model(subject).Update("name", subject.Name)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrSubjectNotFound
	}
	return nil
}

func (r *SubjectRepositoryImpl) Delete(db *gorm.DB, id string) error {
	result := db.Delete(&models.Subject{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrSubjectNotFound
	}
	return nil
}

func (r *SubjectRepositoryImpl) FindClasses(db *gorm.DB, subjectID string) ([]models.Class, error) {
	var classes []models.Class
	err := db.Where("subject_id = ?", subjectID).Order("name ASC").Find(&classes).Error
	return classes, err
}

func (r *SubjectRepositoryImpl) FindClassByID(db *gorm.DB, id string) (*models.Class, error) {
	var class models.Class
	err := db.Preload("Courses").First(&class, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrClassNotFound
		}
		return nil, err
	}
	return &class, nil
}

func (r *SubjectRepositoryImpl) CreateClass(db *gorm.DB, class *models.Class) error {
	return db.Create(class).Error
}

func (r *SubjectRepositoryImpl) UpdateClass(db *gorm.DB, class *models.Class) error {
	result := db.Model(class).Update("name", class.Name)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrClassNotFound
	}
	return nil
}

func (r *SubjectRepositoryImpl) DeleteClass(db *gorm.DB, id string) error {
	result := db.Delete(&models.Class{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrClassNotFound
	}
	return nil
}

func (r *SubjectRepositoryImpl) AttachUser(db *gorm.DB, subjectID, userID string) error {
	user := models.User{BaseModel: models.BaseModel{ID: userID}}
	subject := models.Subject{BaseModel: models.BaseModel{ID: subjectID}}
	return db.Model(&user).Association("Subjects").Append(&subject)
}

func (r *SubjectRepositoryImpl) DetachUser(db *gorm.DB, subjectID, userID string) error {
	user := models.User{BaseModel: models.BaseModel{ID: userID}}
	subject := models.Subject{BaseModel: models.BaseModel{ID: subjectID}}
	return db.Model(&user).Association("Subjects").Delete(&subject)
}
