package middleware

import (
	"strings"

	"mychild_backend/internal/appErrors"
	"mychild_backend/internal/auth"
	"mychild_backend/internal/logger"
	"mychild_backend/internal/models"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware - гейт аутентификации. Проверяет bearer токен и кладет
// claims {userID, phone, role} в контекст запроса. Хранилище при этом не
// трогается: гейт доверяет claims токена до его истечения, смена роли
// не отзывает уже выданные токены.
func AuthMiddleware(tokens *auth.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			appErrors.HandleError(c, appErrors.ErrUnauthorized)
			c.Abort()
			return
		}

		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := tokens.Verify(tokenStr)
		if err != nil {
			if appErrors.Is(err, auth.ErrTokenExpired) {
				appErrors.HandleError(c, appErrors.ErrTokenExpired)
			} else {
				appErrors.HandleError(c, appErrors.ErrInvalidToken)
			}
			c.Abort()
			return
		}

		// Сохраняем claims в контекст
		c.Set("userID", claims.UserID)
		c.Set("phone", claims.Phone)
		c.Set("role", claims.Role)

		ctx := logger.WithUserID(c.Request.Context(), claims.UserID)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// AdminMiddleware - строгий вариант гейта: требует роль admin в claims.
// Отказ - forbidden, отличимый от invalid-credential.
func AdminMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		roleVal, exists := c.Get("role")
		if !exists {
			appErrors.HandleError(c, appErrors.ErrForbidden)
			c.Abort()
			return
		}

		role, ok := roleVal.(string)
		if !ok || models.UserRole(role) != models.UserRoleAdmin {
			appErrors.HandleError(c, appErrors.ErrForbidden)
			c.Abort()
			return
		}

		c.Next()
	}
}

// GetUserID извлекает ID пользователя из контекста
func GetUserID(c *gin.Context) string {
	userID, exists := c.Get("userID")
	if !exists {
		return ""
	}

	id, ok := userID.(string)
	if !ok {
		return ""
	}

	return id
}
