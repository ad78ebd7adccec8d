package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"mychild_backend/internal/appErrors"
	"mychild_backend/internal/services"
	"mychild_backend/internal/services/dto"
	"mychild_backend/internal/validator"
	"mychild_backend/pkg/contextkeys"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type stubAuthService struct {
	registerResp *dto.RegisterResponse
	registerErr  error
	loginResp    *dto.LoginResponse
	loginErr     error

	gotRegister *dto.RegisterRequest
	gotLogin    *dto.LoginRequest
}

func (s *stubAuthService) Register(_ *gorm.DB, req *dto.RegisterRequest) (*dto.RegisterResponse, error) {
	s.gotRegister = req
	return s.registerResp, s.registerErr
}

func (s *stubAuthService) Login(_ *gorm.DB, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	s.gotLogin = req
	return s.loginResp, s.loginErr
}

func (s *stubAuthService) CurrentUser(_ *gorm.DB, userID string) (*dto.UserResponse, error) {
	return &dto.UserResponse{ID: userID}, nil
}

var _ services.AuthService = (*stubAuthService)(nil)

func newAuthTestRouter(svc services.AuthService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	// Тестовый аналог DBMiddleware: хендлерам нужен ключ в контексте
	router.Use(func(c *gin.Context) {
		c.Set(string(contextkeys.DBContextKey), &gorm.DB{})
		c.Next()
	})

	base := NewBaseHandler(validator.New())
	handler := NewAuthHandler(base, svc)

	api := router.Group("/api/v1")
	handler.RegisterRoutes(api, func(c *gin.Context) {
		c.Set("userID", "user-1")
		c.Next()
	})
	return router
}

func postJSON(router *gin.Engine, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestRegisterEndpoint(t *testing.T) {
	svc := &stubAuthService{
		registerResp: &dto.RegisterResponse{
			Message: "Inscription enregistrée, en attente de validation",
			User:    dto.UserResponse{Phone: "+22670000001", PendingApproval: true},
		},
	}
	router := newAuthTestRouter(svc)

	w := postJSON(router, "/api/v1/register", `{
		"first_name": "Awa",
		"last_name": "Traoré",
		"phone": "+22670000001",
		"password": "secret123",
		"birth_date": "2010-05-14",
		"country": "Burkina Faso",
		"nationality": "Burkinabè"
	}`)

	assert.Equal(t, http.StatusCreated, w.Code)
	require.NotNil(t, svc.gotRegister)
	assert.Equal(t, "+22670000001", svc.gotRegister.Phone)
}

func TestRegisterEndpointValidation(t *testing.T) {
	svc := &stubAuthService{}
	router := newAuthTestRouter(svc)

	// Телефон без + отбрасывается валидатором до сервиса
	w := postJSON(router, "/api/v1/register", `{
		"first_name": "Awa",
		"last_name": "Traoré",
		"phone": "22670000001",
		"password": "secret123",
		"birth_date": "2010-05-14",
		"country": "Burkina Faso",
		"nationality": "Burkinabè"
	}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Nil(t, svc.gotRegister)

	var body struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, string(appErrors.CodeValidationFailed), body.Error.Code)
}

// Все поля анкеты обязательны: дата рождения, страна и гражданство тоже
func TestRegisterEndpointMissingProfileFields(t *testing.T) {
	svc := &stubAuthService{}
	router := newAuthTestRouter(svc)

	w := postJSON(router, "/api/v1/register", `{
		"first_name": "Awa",
		"last_name": "Traoré",
		"phone": "+22670000001",
		"password": "secret123"
	}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Nil(t, svc.gotRegister)

	var body struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, string(appErrors.CodeValidationFailed), body.Error.Code)
}

func TestLoginEndpoint(t *testing.T) {
	svc := &stubAuthService{
		loginResp: &dto.LoginResponse{
			Token: "jwt-token",
			User:  dto.UserResponse{Phone: "+22670000001"},
		},
	}
	router := newAuthTestRouter(svc)

	w := postJSON(router, "/api/v1/login", `{"phone": "+22670000001", "password": "secret123"}`)

	assert.Equal(t, http.StatusOK, w.Code)

	var body dto.LoginResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "jwt-token", body.Token)
}

func TestLoginEndpointErrorMapping(t *testing.T) {
	cases := []struct {
		name     string
		err      error
		wantCode int
	}{
		{"unknown phone", appErrors.ErrUserNotFound, http.StatusNotFound},
		{"wrong password", appErrors.ErrInvalidPassword, http.StatusUnauthorized},
		{"disabled account", appErrors.ErrAccountDisabled, http.StatusForbidden},
		{"pending account", appErrors.ErrAccountPending, http.StatusForbidden},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc := &stubAuthService{loginErr: tc.err}
			router := newAuthTestRouter(svc)

			w := postJSON(router, "/api/v1/login", `{"phone": "+22670000001", "password": "x"}`)
			assert.Equal(t, tc.wantCode, w.Code)
		})
	}
}

func TestMeEndpoint(t *testing.T) {
	svc := &stubAuthService{}
	router := newAuthTestRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/me", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var body struct {
		User dto.UserResponse `json:"user"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "user-1", body.User.ID)
}
