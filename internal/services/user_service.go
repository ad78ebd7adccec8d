package services

import (
	"mychild_backend/internal/appErrors"
	"mychild_backend/internal/repositories"
	"mychild_backend/internal/services/dto"

	"gorm.io/gorm"
)

type UserService interface {
	ListUsers(db *gorm.DB, limit, offset int) (*dto.UserListResponse, error)
	ListPendingRequests(db *gorm.DB) ([]dto.UserResponse, error)
	ApproveRegistration(db *gorm.DB, userID string) (*dto.UserResponse, error)
	RejectRegistration(db *gorm.DB, userID string) error
	SetUserActive(db *gorm.DB, userID string, active bool) (*dto.UserResponse, error)
}

type UserServiceImpl struct {
	userRepo repositories.UserRepository
}

func NewUserService(userRepo repositories.UserRepository) UserService {
	return &UserServiceImpl{userRepo: userRepo}
}

func (s *UserServiceImpl) ListUsers(db *gorm.DB, limit, offset int) (*dto.UserListResponse, error) {
	users, total, err := s.userRepo.FindAll(db, limit, offset)
	if err != nil {
		return nil, appErrors.InternalError(err)
	}
	return &dto.UserListResponse{
		Users: dto.ToUserResponses(users),
		Total: total,
	}, nil
}

func (s *UserServiceImpl) ListPendingRequests(db *gorm.DB) ([]dto.UserResponse, error) {
	users, err := s.userRepo.FindPending(db)
	if err != nil {
		return nil, appErrors.InternalError(err)
	}
	return dto.ToUserResponses(users), nil
}

// ApproveRegistration переводит pending-заявку в активный аккаунт.
// Повторное одобрение той же заявки отвечает RequestNotFound,
// условный апдейт делает операцию безопасной при параллельных вызовах.
func (s *UserServiceImpl) ApproveRegistration(db *gorm.DB, userID string) (*dto.UserResponse, error) {
	if err := s.userRepo.Approve(db, userID); err != nil {
		if appErrors.Is(err, repositories.ErrUserNotFound) {
			return nil, appErrors.ErrRequestNotFound
		}
		return nil, appErrors.InternalError(err)
	}

	user, err := s.userRepo.FindByID(db, userID)
	if err != nil {
		return nil, appErrors.InternalError(err)
	}

	resp := dto.ToUserResponse(user)
	return &resp, nil
}

// RejectRegistration удаляет заявку целиком, номер снова свободен
func (s *UserServiceImpl) RejectRegistration(db *gorm.DB, userID string) error {
	user, err := s.userRepo.FindByID(db, userID)
	if err != nil {
		if appErrors.Is(err, repositories.ErrUserNotFound) {
			return appErrors.ErrRequestNotFound
		}
		return appErrors.InternalError(err)
	}

	if !user.IsPending() {
		return appErrors.ErrRequestNotFound
	}

	if err := s.userRepo.Delete(db, userID); err != nil {
		if appErrors.Is(err, repositories.ErrUserNotFound) {
			return appErrors.ErrRequestNotFound
		}
		return appErrors.InternalError(err)
	}
	return nil
}

// SetUserActive включает или выключает аккаунт. Выключение не трогает
// approved: после повторной активации пользователь входит без новой модерации.
func (s *UserServiceImpl) SetUserActive(db *gorm.DB, userID string, active bool) (*dto.UserResponse, error) {
	user, err := s.userRepo.FindByID(db, userID)
	if err != nil {
		if appErrors.Is(err, repositories.ErrUserNotFound) {
			return nil, appErrors.ErrUserNotFound
		}
		return nil, appErrors.InternalError(err)
	}

	if user.IsActive != active {
		if err := s.userRepo.SetActive(db, userID, active); err != nil {
			return nil, appErrors.InternalError(err)
		}
		user.IsActive = active
	}

	resp := dto.ToUserResponse(user)
	return &resp, nil
}
