package services

import (
	"mychild_backend/internal/appErrors"
	"mychild_backend/internal/models"
	"mychild_backend/internal/repositories"
	"mychild_backend/internal/services/dto"

	"gorm.io/gorm"
)

type SubjectService interface {
	ListSubjects(db *gorm.DB) ([]models.Subject, error)
	GetSubject(db *gorm.DB, id string) (*models.Subject, error)
	CreateSubject(db *gorm.DB, req *dto.CreateSubjectRequest) (*models.Subject, error)
	UpdateSubject(db *gorm.DB, id string, req *dto.UpdateSubjectRequest) (*models.Subject, error)
	DeleteSubject(db *gorm.DB, id string) error

	ListClasses(db *gorm.DB, subjectID string) ([]models.Class, error)
	GetClass(db *gorm.DB, id string) (*models.Class, error)
	CreateClass(db *gorm.DB, subjectID string, req *dto.CreateClassRequest) (*models.Class, error)
	UpdateClass(db *gorm.DB, id string, req *dto.UpdateClassRequest) (*models.Class, error)
	DeleteClass(db *gorm.DB, id string) error

	ListUserSubjects(db *gorm.DB, userID string) ([]models.Subject, error)
	EnrollUser(db *gorm.DB, subjectID, userID string) error
}

type SubjectServiceImpl struct {
	subjectRepo repositories.SubjectRepository
	userRepo    repositories.UserRepository
}

func NewSubjectService(subjectRepo repositories.SubjectRepository, userRepo repositories.UserRepository) SubjectService {
	return &SubjectServiceImpl{subjectRepo: subjectRepo, userRepo: userRepo}
}

func (s *SubjectServiceImpl) ListSubjects(db *gorm.DB) ([]models.Subject, error) {
	subjects, err := s.subjectRepo.FindAll(db)
	if err != nil {
		return nil, appErrors.InternalError(err)
	}
	return subjects, nil
}

func (s *SubjectServiceImpl) GetSubject(db *gorm.DB, id string) (*models.Subject, error) {
	subject, err := s.subjectRepo.FindByID(db, id)
	if err != nil {
		if appErrors.Is(err, repositories.ErrSubjectNotFound) {
			return nil, appErrors.ErrSubjectNotFound
		}
		return nil, appErrors.InternalError(err)
	}
	return subject, nil
}

func (s *SubjectServiceImpl) CreateSubject(db *gorm.DB, req *dto.CreateSubjectRequest) (*models.Subject, error) {
	subject := &models.Subject{Name: req.Name}
	if err := s.subjectRepo.Create(db, subject); err != nil {
		return nil, appErrors.InternalError(err)
	}
	return subject, nil
}

func (s *SubjectServiceImpl) UpdateSubject(db *gorm.DB, id string, req *dto.UpdateSubjectRequest) (*models.Subject, error) {
	subject, err := s.GetSubject(db, id)
	if err != nil {
		return nil, err
	}

	subject.Name = req.Name
	if err := s.subjectRepo.Update(db, subject); err != nil {
		return nil, appErrors.InternalError(err)
	}
	return subject, nil
}

func (s *SubjectServiceImpl) DeleteSubject(db *gorm.DB, id string) error {
	if err := s.subjectRepo.Delete(db, id); err != nil {
		if appErrors.Is(err, repositories.ErrSubjectNotFound) {
			return appErrors.ErrSubjectNotFound
		}
		return appErrors.InternalError(err)
	}
	return nil
}

func (s *SubjectServiceImpl) ListClasses(db *gorm.DB, subjectID string) ([]models.Class, error) {
	// Несуществующий предмет отдаём как 404, а не пустой список
	if _, err := s.GetSubject(db, subjectID); err != nil {
		return nil, err
	}

	classes, err := s.subjectRepo.FindClasses(db, subjectID)
	if err != nil {
		return nil, appErrors.InternalError(err)
	}
	return classes, nil
}

func (s *SubjectServiceImpl) GetClass(db *gorm.DB, id string) (*models.Class, error) {
	class, err := s.subjectRepo.FindClassByID(db, id)
	if err != nil {
		if appErrors.Is(err, repositories.ErrClassNotFound) {
			return nil, appErrors.ErrClassNotFound
		}
		return nil, appErrors.InternalError(err)
	}
	return class, nil
}

func (s *SubjectServiceImpl) CreateClass(db *gorm.DB, subjectID string, req *dto.CreateClassRequest) (*models.Class, error) {
	if _, err := s.GetSubject(db, subjectID); err != nil {
		return nil, err
	}

	class := &models.Class{SubjectID: subjectID, Name: req.Name}
	if err := s.subjectRepo.CreateClass(db, class); err != nil {
		return nil, appErrors.InternalError(err)
	}
	return class, nil
}

func (s *SubjectServiceImpl) UpdateClass(db *gorm.DB, id string, req *dto.UpdateClassRequest) (*models.Class, error) {
	class, err := s.GetClass(db, id)
	if err != nil {
		return nil, err
	}

	class.Name = req.Name
	if err := s.subjectRepo.UpdateClass(db, class); err != nil {
		return nil, appErrors.InternalError(err)
	}
	return class, nil
}

func (s *SubjectServiceImpl) DeleteClass(db *gorm.DB, id string) error {
	if err := s.subjectRepo.DeleteClass(db, id); err != nil {
		if appErrors.Is(err, repositories.ErrClassNotFound) {
			return appErrors.ErrClassNotFound
		}
		return appErrors.InternalError(err)
	}
	return nil
}

func (s *SubjectServiceImpl) ListUserSubjects(db *gorm.DB, userID string) ([]models.Subject, error) {
	subjects, err := s.userRepo.FindSubjects(db, userID)
	if err != nil {
		return nil, appErrors.InternalError(err)
	}
	return subjects, nil
}

func (s *SubjectServiceImpl) EnrollUser(db *gorm.DB, subjectID, userID string) error {
	if _, err := s.GetSubject(db, subjectID); err != nil {
		return err
	}

	if err := s.subjectRepo.AttachUser(db, subjectID, userID); err != nil {
		return appErrors.InternalError(err)
	}
	return nil
}
