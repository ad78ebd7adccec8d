package services

import (
	"mychild_backend/internal/appErrors"
	"mychild_backend/internal/models"
	"mychild_backend/internal/repositories"
	"mychild_backend/internal/services/dto"

	"gorm.io/gorm"
)

type CourseService interface {
	ListCourses(db *gorm.DB, classID string) ([]models.Course, error)
	GetCourse(db *gorm.DB, id string) (*models.Course, error)
	CreateCourse(db *gorm.DB, classID string, req *dto.CreateCourseRequest) (*models.Course, error)
	UpdateCourse(db *gorm.DB, id string, req *dto.UpdateCourseRequest) (*models.Course, error)
	DeleteCourse(db *gorm.DB, id string) error
}

type CourseServiceImpl struct {
	courseRepo  repositories.CourseRepository
	subjectRepo repositories.SubjectRepository
}

func NewCourseService(courseRepo repositories.CourseRepository, subjectRepo repositories.SubjectRepository) CourseService {
	return &CourseServiceImpl{courseRepo: courseRepo, subjectRepo: subjectRepo}
}

func (s *CourseServiceImpl) ListCourses(db *gorm.DB, classID string) ([]models.Course, error) {
	if _, err := s.subjectRepo.FindClassByID(db, classID); err != nil {
		if appErrors.Is(err, repositories.ErrClassNotFound) {
			return nil, appErrors.ErrClassNotFound
		}
		return nil, appErrors.InternalError(err)
	}

	courses, err := s.courseRepo.FindByClass(db, classID)
	if err != nil {
		return nil, appErrors.InternalError(err)
	}
	return courses, nil
}

func (s *CourseServiceImpl) GetCourse(db *gorm.DB, id string) (*models.Course, error) {
	course, err := s.courseRepo.FindByID(db, id)
	if err != nil {
		if appErrors.Is(err, repositories.ErrCourseNotFound) {
			return nil, appErrors.ErrCourseNotFound
		}
		return nil, appErrors.InternalError(err)
	}
	return course, nil
}

func (s *CourseServiceImpl) CreateCourse(db *gorm.DB, classID string, req *dto.CreateCourseRequest) (*models.Course, error) {
	if _, err := s.subjectRepo.FindClassByID(db, classID); err != nil {
		if appErrors.Is(err, repositories.ErrClassNotFound) {
			return nil, appErrors.ErrClassNotFound
		}
		return nil, appErrors.InternalError(err)
	}

	course := &models.Course{
		ClassID: classID,
		Title:   req.Title,
		Content: req.Content,
	}
	if err := s.courseRepo.Create(db, course); err != nil {
		return nil, appErrors.InternalError(err)
	}
	return course, nil
}

func (s *CourseServiceImpl) UpdateCourse(db *gorm.DB, id string, req *dto.UpdateCourseRequest) (*models.Course, error) {
	course, err := s.GetCourse(db, id)
	if err != nil {
		return nil, err
	}

	course.Title = req.Title
	course.Content = req.Content
	if err := s.courseRepo.Update(db, course); err != nil {
		return nil, appErrors.InternalError(err)
	}
	return course, nil
}

func (s *CourseServiceImpl) DeleteCourse(db *gorm.DB, id string) error {
	if err := s.courseRepo.Delete(db, id); err != nil {
		if appErrors.Is(err, repositories.ErrCourseNotFound) {
			return appErrors.ErrCourseNotFound
		}
		return appErrors.InternalError(err)
	}
	return nil
}
