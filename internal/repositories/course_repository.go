package repositories

import (
	"errors"

	"mychild_backend/internal/models"

	"gorm.io/gorm"
)

var ErrCourseNotFound = errors.New("course not found")

type CourseRepository interface {
	FindByClass(db *gorm.DB, classID string) ([]models.Course, error)
	FindByID(db *gorm.DB, id string) (*models.Course, error)
	Create(db *gorm.DB, course *models.Course) error
	Update(db *gorm.DB, course *models.Course) error
	Delete(db *gorm.DB, id string) error
}

type CourseRepositoryImpl struct{}

func NewCourseRepository() CourseRepository {
	return &CourseRepositoryImpl{}
}

func (r *CourseRepositoryImpl) FindByClass(db *gorm.DB, classID string) ([]models.Course, error) {
	var courses []models.Course
	err := db.Where("class_id = ?", classID).Order("created_at ASC").Find(&courses).Error
	return courses, err
}

func (r *CourseRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.Course, error) {
	var course models.Course
	err := db.First(&course, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCourseNotFound
		}
		return nil, err
	}
	return &course, nil
}

func (r *CourseRepositoryImpl) Create(db *gorm.DB, course *models.Course) error {
	return db.Create(course).Error
}

func (r *CourseRepositoryImpl) Update(db *gorm.DB, course *models.Course) error {
	result := db.Model(course).Updates(map[string]interface{}{
		"title":   course.Title,
		"content": course.Content,
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrCourseNotFound
	}
	return nil
}

func (r *CourseRepositoryImpl) Delete(db *gorm.DB, id string) error {
	result := db.Delete(&models.Course{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrCourseNotFound
	}
	return nil
}
