package routes

import (
	"net/http"

	"mychild_backend/internal/auth"
	"mychild_backend/internal/handlers"
	"mychild_backend/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все HTTP маршруты.
func RegisterRoutes(
	ginRouter *gin.Engine,
	appHandlers *handlers.AppHandlers,
	tokens *auth.TokenService,
) {
	authMW := middleware.AuthMiddleware(tokens)
	adminMW := middleware.AdminMiddleware()

	ginRouter.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := ginRouter.Group("/api/v1")
	{
		appHandlers.AuthHandler.RegisterRoutes(api, authMW)
		appHandlers.UserHandler.RegisterRoutes(api, authMW, adminMW)
		appHandlers.SubjectHandler.RegisterRoutes(api, authMW, adminMW)
		appHandlers.CourseHandler.RegisterRoutes(api, authMW, adminMW)
		appHandlers.QuestionHandler.RegisterRoutes(api, authMW, adminMW)
		appHandlers.QuizHandler.RegisterRoutes(api, authMW)
		appHandlers.PaymentHandler.RegisterRoutes(api, authMW)
	}
}
