package services

import (
	"mychild_backend/internal/appErrors"
	"mychild_backend/internal/auth"
	"mychild_backend/internal/email"
	"mychild_backend/internal/logger"
	"mychild_backend/internal/models"
	"mychild_backend/internal/repositories"
	"mychild_backend/internal/services/dto"

	"gorm.io/gorm"
)

type AuthService interface {
	Register(db *gorm.DB, req *dto.RegisterRequest) (*dto.RegisterResponse, error)
	Login(db *gorm.DB, req *dto.LoginRequest) (*dto.LoginResponse, error)
	CurrentUser(db *gorm.DB, userID string) (*dto.UserResponse, error)
}

type AuthServiceImpl struct {
	userRepo      repositories.UserRepository
	tokens        *auth.TokenService
	emailProvider email.Provider
	adminSecret   string
	adminEmail    string
}

func NewAuthService(
	userRepo repositories.UserRepository,
	tokens *auth.TokenService,
	emailProvider email.Provider,
	adminSecret string,
	adminEmail string,
) AuthService {
	return &AuthServiceImpl{
		userRepo:      userRepo,
		tokens:        tokens,
		emailProvider: emailProvider,
		adminSecret:   adminSecret,
		adminEmail:    adminEmail,
	}
}

// Register - подача заявки на регистрацию.
// Обычный пользователь попадает в состояние pending и ждёт решения
// администратора. Админская регистрация с верным секретом активируется сразу.
func (s *AuthServiceImpl) Register(db *gorm.DB, req *dto.RegisterRequest) (*dto.RegisterResponse, error) {
	phone := models.NormalizePhone(req.Phone)
	if !models.ValidPhone(phone) {
		return nil, appErrors.ErrInvalidPhone
	}

	if err := auth.ValidatePassword(req.Password); err != nil {
		return nil, appErrors.ErrWeakPassword
	}

	// Предварительная проверка дубликата. Различаем повторную заявку
	// и занятый номер; гонку закрывает уникальный индекс ниже.
	if existing, err := s.userRepo.FindByPhone(db, phone); err == nil {
		if existing.IsPending() {
			return nil, appErrors.ErrDuplicateRequest
		}
		return nil, appErrors.ErrDuplicatePhone
	} else if !appErrors.Is(err, repositories.ErrUserNotFound) {
		return nil, appErrors.InternalError(err)
	}

	role := s.resolveRole(req.Role, req.SecretKey)

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, appErrors.InternalError(err)
	}

	user := &models.User{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Phone:        phone,
		PasswordHash: hash,
		BirthDate:    req.BirthDate,
		Country:      req.Country,
		Nationality:  req.Nationality,
		Role:         role,
		IsActive:     true,
	}

	if role == models.UserRoleAdmin {
		// Админ не проходит модерацию
		user.Approved = true
		user.PendingApproval = false
	} else {
		user.Approved = false
		user.PendingApproval = true
	}

	if err := s.userRepo.Create(db, user); err != nil {
		if appErrors.Is(err, repositories.ErrUserAlreadyExists) {
			return nil, appErrors.ErrDuplicatePhone
		}
		return nil, appErrors.InternalError(err)
	}

	if user.IsPending() {
		s.notifyAdmin(user)
	}

	message := "Inscription enregistrée, en attente de validation"
	if role == models.UserRoleAdmin {
		message = "Compte administrateur créé"
	}

	resp := &dto.RegisterResponse{
		Message: message,
		User:    dto.ToUserResponse(user),
	}
	return resp, nil
}

// Login - аутентификация. Порядок проверок фиксирован:
// поиск -> is_active -> pending -> пароль -> выпуск токена.
func (s *AuthServiceImpl) Login(db *gorm.DB, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	phone := models.NormalizePhone(req.Phone)

	user, err := s.userRepo.FindByPhone(db, phone)
	if err != nil {
		if appErrors.Is(err, repositories.ErrUserNotFound) {
			return nil, appErrors.ErrUserNotFound
		}
		return nil, appErrors.InternalError(err)
	}

	// Статус аккаунта проверяется до пароля: отключенный аккаунт
	// не может прощупывать валидность своего пароля.
	if !user.IsActive {
		return nil, appErrors.ErrAccountDisabled
	}

	if user.IsPending() {
		return nil, appErrors.ErrAccountPending
	}

	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, appErrors.ErrInvalidPassword
	}

	token, err := s.tokens.Issue(user.ID, user.Phone, string(user.Role))
	if err != nil {
		return nil, appErrors.InternalError(err)
	}

	return &dto.LoginResponse{
		Token: token,
		User:  dto.ToUserResponse(user),
	}, nil
}

func (s *AuthServiceImpl) CurrentUser(db *gorm.DB, userID string) (*dto.UserResponse, error) {
	user, err := s.userRepo.FindByID(db, userID)
	if err != nil {
		if appErrors.Is(err, repositories.ErrUserNotFound) {
			return nil, appErrors.ErrUserNotFound
		}
		return nil, appErrors.InternalError(err)
	}

	resp := dto.ToUserResponse(user)
	return &resp, nil
}

// resolveRole выдаёт admin только при совпадении серверного секрета.
// Неверный секрет не является ошибкой: заявка молча понижается до user.
func (s *AuthServiceImpl) resolveRole(requested, secretKey string) models.UserRole {
	if requested == string(models.UserRoleAdmin) && s.adminSecret != "" && secretKey == s.adminSecret {
		return models.UserRoleAdmin
	}
	return models.UserRoleUser
}

func (s *AuthServiceImpl) notifyAdmin(user *models.User) {
	if s.adminEmail == "" {
		return
	}

	go func() {
		err := s.emailProvider.SendTemplate(
			[]string{s.adminEmail},
			"Nouvelle demande d'inscription",
			email.TemplateRegistrationRequest,
			email.TemplateData{
				"FirstName": user.FirstName,
				"LastName":  user.LastName,
				"Phone":     user.Phone,
				"Country":   user.Country,
			},
		)
		if err != nil {
			logger.WithError(err).Error("Failed to send registration notification")
		}
	}()
}
