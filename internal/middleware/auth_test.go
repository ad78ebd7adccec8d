package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"mychild_backend/internal/auth"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newGateRouter(tokens *auth.TokenService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	protected := r.Group("/protected")
	protected.Use(AuthMiddleware(tokens))
	protected.GET("", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user_id": GetUserID(c), "role": c.GetString("role")})
	})

	admin := r.Group("/admin")
	admin.Use(AuthMiddleware(tokens), AdminMiddleware())
	admin.GET("", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	return r
}

func doRequest(r *gin.Engine, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMiddleware_MissingCredential(t *testing.T) {
	tokens := auth.NewTokenService("secret")
	r := newGateRouter(tokens)

	w := doRequest(r, "/protected", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "UNAUTHORIZED")
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	tokens := auth.NewTokenService("secret")
	r := newGateRouter(tokens)

	w := doRequest(r, "/protected", "garbage.token.here")
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "INVALID_TOKEN")
}

func TestAuthMiddleware_ExpiredToken(t *testing.T) {
	tokens := auth.NewTokenService("secret")
	expired := auth.NewTokenServiceWithTTL("secret", -time.Hour)
	r := newGateRouter(tokens)

	token, err := expired.Issue("user-1", "+22670000001", "user")
	assert.NoError(t, err)

	w := doRequest(r, "/protected", token)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "TOKEN_EXPIRED")
}

func TestAuthMiddleware_AttachesClaims(t *testing.T) {
	tokens := auth.NewTokenService("secret")
	r := newGateRouter(tokens)

	token, err := tokens.Issue("user-1", "+22670000001", "user")
	assert.NoError(t, err)

	w := doRequest(r, "/protected", token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "user-1")
}

func TestAdminMiddleware_RejectsUserRole(t *testing.T) {
	tokens := auth.NewTokenService("secret")
	r := newGateRouter(tokens)

	token, err := tokens.Issue("user-1", "+22670000001", "user")
	assert.NoError(t, err)

	w := doRequest(r, "/admin", token)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "FORBIDDEN")
}

func TestAdminMiddleware_AllowsAdmin(t *testing.T) {
	tokens := auth.NewTokenService("secret")
	r := newGateRouter(tokens)

	token, err := tokens.Issue("admin-1", "+22670000002", "admin")
	assert.NoError(t, err)

	w := doRequest(r, "/admin", token)
	assert.Equal(t, http.StatusOK, w.Code)
}
