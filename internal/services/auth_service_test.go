package services

import (
	"testing"

	"mychild_backend/internal/appErrors"
	"mychild_backend/internal/auth"
	"mychild_backend/internal/email"
	"mychild_backend/internal/models"
	"mychild_backend/internal/services/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testAdminSecret = "super-secret"

func newTestAuthService(repo *fakeUserRepo) AuthService {
	tokens := auth.NewTokenService("test-jwt-secret")
	return NewAuthService(repo, tokens, email.NewNoopProvider(), testAdminSecret, "")
}

func newRegisterRequest(phone string) *dto.RegisterRequest {
	return &dto.RegisterRequest{
		FirstName:   "Awa",
		LastName:    "Traoré",
		Phone:       phone,
		Password:    "secret123",
		BirthDate:   "2010-05-14",
		Country:     "Burkina Faso",
		Nationality: "Burkinabè",
	}
}

func seedUser(repo *fakeUserRepo, phone, password string, mutate func(*models.User)) *models.User {
	hash, _ := auth.HashPassword(password)
	user := &models.User{
		FirstName:       "Awa",
		LastName:        "Traoré",
		Phone:           phone,
		PasswordHash:    hash,
		Role:            models.UserRoleUser,
		IsActive:        true,
		Approved:        true,
		PendingApproval: false,
	}
	if mutate != nil {
		mutate(user)
	}
	return repo.add(user)
}

func TestRegisterCreatesPendingUser(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newTestAuthService(repo)

	resp, err := svc.Register(nil, newRegisterRequest("+22670000001"))
	require.NoError(t, err)

	assert.Equal(t, "user", resp.User.Role)
	assert.True(t, resp.User.PendingApproval)
	assert.False(t, resp.User.Approved)

	stored, err := repo.FindByPhone(nil, "+22670000001")
	require.NoError(t, err)
	assert.True(t, stored.IsPending())
	assert.NotEqual(t, "secret123", stored.PasswordHash)
}

func TestRegisterNormalizesPhone(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newTestAuthService(repo)

	resp, err := svc.Register(nil, newRegisterRequest("  +226 7000 0001 "))
	require.NoError(t, err)
	assert.Equal(t, "+22670000001", resp.User.Phone)
}

func TestRegisterInvalidPhone(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newTestAuthService(repo)

	for _, phone := range []string{"22670000001", "+226", "+226abc", ""} {
		_, err := svc.Register(nil, newRegisterRequest(phone))
		assert.True(t, appErrors.Is(err, appErrors.ErrInvalidPhone), "phone %q should be rejected", phone)
	}
}

func TestRegisterWeakPassword(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newTestAuthService(repo)

	req := newRegisterRequest("+22670000001")
	req.Password = "123"

	_, err := svc.Register(nil, req)
	assert.True(t, appErrors.Is(err, appErrors.ErrWeakPassword))
}

func TestRegisterDuplicatePhone(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newTestAuthService(repo)
	seedUser(repo, "+22670000001", "secret123", nil)

	req := newRegisterRequest("+22670000001")
	req.FirstName = "Issa"
	req.LastName = "Ouédraogo"

	_, err := svc.Register(nil, req)
	assert.True(t, appErrors.Is(err, appErrors.ErrDuplicatePhone))
}

func TestRegisterDuplicateRequest(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newTestAuthService(repo)
	seedUser(repo, "+22670000001", "secret123", func(u *models.User) {
		u.Approved = false
		u.PendingApproval = true
	})

	req := newRegisterRequest("+226 7000 0001")
	req.FirstName = "Issa"
	req.LastName = "Ouédraogo"

	_, err := svc.Register(nil, req)
	assert.True(t, appErrors.Is(err, appErrors.ErrDuplicateRequest))
}

func TestRegisterAdminWithCorrectSecret(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newTestAuthService(repo)

	req := newRegisterRequest("+22670000009")
	req.Role = "admin"
	req.SecretKey = testAdminSecret

	resp, err := svc.Register(nil, req)
	require.NoError(t, err)

	// Админ активен сразу, без модерации
	assert.Equal(t, "admin", resp.User.Role)
	assert.True(t, resp.User.Approved)
	assert.False(t, resp.User.PendingApproval)
}

func TestRegisterAdminWrongSecretSilentlyDowngraded(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newTestAuthService(repo)

	req := newRegisterRequest("+22670000009")
	req.Role = "admin"
	req.SecretKey = "wrong"

	resp, err := svc.Register(nil, req)
	// Неверный секрет - не ошибка, заявка понижается до user
	require.NoError(t, err)
	assert.Equal(t, "user", resp.User.Role)
	assert.True(t, resp.User.PendingApproval)
}

func TestLoginSuccess(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newTestAuthService(repo)
	seedUser(repo, "+22670000001", "secret123", nil)

	resp, err := svc.Login(nil, &dto.LoginRequest{
		Phone:    "+22670000001",
		Password: "secret123",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "+22670000001", resp.User.Phone)

	// Токен должен верифицироваться и нести claims пользователя
	tokens := auth.NewTokenService("test-jwt-secret")
	claims, err := tokens.Verify(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, claims.UserID)
	assert.Equal(t, "+22670000001", claims.Phone)
	assert.Equal(t, "user", claims.Role)
}

func TestLoginNormalizesPhone(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newTestAuthService(repo)
	seedUser(repo, "+22670000001", "secret123", nil)

	resp, err := svc.Login(nil, &dto.LoginRequest{
		Phone:    " +226 7000 0001 ",
		Password: "secret123",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
}

func TestLoginUnknownPhone(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newTestAuthService(repo)

	_, err := svc.Login(nil, &dto.LoginRequest{
		Phone:    "+22670000001",
		Password: "secret123",
	})
	assert.True(t, appErrors.Is(err, appErrors.ErrUserNotFound))
}

func TestLoginWrongPassword(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newTestAuthService(repo)
	seedUser(repo, "+22670000001", "secret123", nil)

	_, err := svc.Login(nil, &dto.LoginRequest{
		Phone:    "+22670000001",
		Password: "wrong",
	})
	assert.True(t, appErrors.Is(err, appErrors.ErrInvalidPassword))
}

func TestLoginDisabledAccount(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newTestAuthService(repo)
	seedUser(repo, "+22670000001", "secret123", func(u *models.User) {
		u.IsActive = false
	})

	_, err := svc.Login(nil, &dto.LoginRequest{
		Phone:    "+22670000001",
		Password: "secret123",
	})
	assert.True(t, appErrors.Is(err, appErrors.ErrAccountDisabled))
}

func TestLoginPendingAccount(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newTestAuthService(repo)
	seedUser(repo, "+22670000001", "secret123", func(u *models.User) {
		u.Approved = false
		u.PendingApproval = true
	})

	_, err := svc.Login(nil, &dto.LoginRequest{
		Phone:    "+22670000001",
		Password: "secret123",
	})
	assert.True(t, appErrors.Is(err, appErrors.ErrAccountPending))
}

// Порядок проверок: статус аккаунта раньше пароля
func TestLoginWrongPasswordOnDisabledAccount(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newTestAuthService(repo)
	seedUser(repo, "+22670000001", "secret123", func(u *models.User) {
		u.IsActive = false
	})

	_, err := svc.Login(nil, &dto.LoginRequest{
		Phone:    "+22670000001",
		Password: "wrong",
	})
	assert.True(t, appErrors.Is(err, appErrors.ErrAccountDisabled))
}

func TestCurrentUser(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newTestAuthService(repo)
	user := seedUser(repo, "+22670000001", "secret123", nil)

	resp, err := svc.CurrentUser(nil, user.ID)
	require.NoError(t, err)
	assert.Equal(t, user.ID, resp.ID)

	_, err = svc.CurrentUser(nil, "missing-id")
	assert.True(t, appErrors.Is(err, appErrors.ErrUserNotFound))
}
