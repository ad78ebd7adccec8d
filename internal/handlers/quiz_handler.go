package handlers

import (
	"net/http"

	"mychild_backend/internal/services"
	"mychild_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type QuizHandler struct {
	*BaseHandler
	quizService services.QuizService
}

func NewQuizHandler(base *BaseHandler, quizService services.QuizService) *QuizHandler {
	return &QuizHandler{
		BaseHandler: base,
		quizService: quizService,
	}
}

func (h *QuizHandler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	results := rg.Group("/quiz-results")
	results.Use(authMW)
	{
		results.POST("", h.SaveResult)
		results.GET("", h.ListResults)
	}
}

// SaveResult сохраняет результат теста владельца токена
func (h *QuizHandler) SaveResult(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.SaveQuizResultRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	result, err := h.quizService.SaveResult(db, userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"result": result})
}

func (h *QuizHandler) ListResults(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	db := h.GetDB(c)

	results, err := h.quizService.ListResults(db, userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"results": results})
}
