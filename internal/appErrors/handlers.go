package appErrors

import (
	"mychild_backend/internal/logger"

	"github.com/gin-gonic/gin"
)

// ErrorResponse - стандартный ответ об ошибке: {"error": {...}}
type ErrorResponse struct {
	Error *AppError `json:"error"`
}

// HandleError отправляет ошибку клиенту в стандартном формате.
// Ошибки 5xx логируются на сервере, клиент видит только generic сообщение.
func HandleError(c *gin.Context, err *AppError) {
	if err.HTTPCode >= 500 {
		logger.CtxWithError(c.Request.Context(), "server error", err,
			"path", c.Request.URL.Path,
		)
	}
	c.JSON(err.HTTPCode, ErrorResponse{Error: err})
}

// HandleAny нормализует произвольную ошибку в AppError и отправляет ее
func HandleAny(c *gin.Context, err error) {
	var appErr *AppError
	if As(err, &appErr) {
		HandleError(c, appErr)
		return
	}
	HandleError(c, InternalError(err))
}
