package handlers

import (
	"net/http"

	"mychild_backend/internal/services"
	"mychild_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type QuestionHandler struct {
	*BaseHandler
	questionService services.QuestionService
}

func NewQuestionHandler(base *BaseHandler, questionService services.QuestionService) *QuestionHandler {
	return &QuestionHandler{
		BaseHandler:     base,
		questionService: questionService,
	}
}

func (h *QuestionHandler) RegisterRoutes(rg *gin.RouterGroup, authMW, adminMW gin.HandlerFunc) {
	read := rg.Group("/subjects/:id/questions")
	read.Use(authMW)
	{
		read.GET("", h.ListQuestions)
	}

	write := rg.Group("/subjects/:id/questions")
	write.Use(authMW, adminMW)
	{
		write.POST("", h.CreateQuestions)
	}

	admin := rg.Group("/questions")
	admin.Use(authMW, adminMW)
	{
		admin.PUT("/:id", h.UpdateQuestion)
		admin.DELETE("/:id", h.DeleteQuestion)
	}
}

func (h *QuestionHandler) ListQuestions(c *gin.Context) {
	db := h.GetDB(c)

	questions, err := h.questionService.ListQuestions(db, c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"questions": questions})
}

func (h *QuestionHandler) CreateQuestions(c *gin.Context) {
	var req dto.CreateQuestionsRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	questions, err := h.questionService.CreateQuestions(db, c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"questions": questions})
}

func (h *QuestionHandler) UpdateQuestion(c *gin.Context) {
	var req dto.CreateQuestionRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	question, err := h.questionService.UpdateQuestion(db, c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"question": question})
}

func (h *QuestionHandler) DeleteQuestion(c *gin.Context) {
	db := h.GetDB(c)

	if err := h.questionService.DeleteQuestion(db, c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Question supprimée"})
}
