package handlers

import (
	"net/http"

	"mychild_backend/internal/services"
	"mychild_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type SubjectHandler struct {
	*BaseHandler
	subjectService services.SubjectService
}

func NewSubjectHandler(base *BaseHandler, subjectService services.SubjectService) *SubjectHandler {
	return &SubjectHandler{
		BaseHandler:    base,
		subjectService: subjectService,
	}
}

// RegisterRoutes регистрирует маршруты каталога предметов.
// Чтение доступно любому авторизованному, изменение - только админу.
func (h *SubjectHandler) RegisterRoutes(rg *gin.RouterGroup, authMW, adminMW gin.HandlerFunc) {
	subjects := rg.Group("/subjects")
	subjects.Use(authMW)
	{
		subjects.GET("", h.ListSubjects)
		subjects.GET("/:id", h.GetSubject)
		subjects.GET("/:id/classes", h.ListClasses)
		subjects.POST("/:id/enroll", h.Enroll)
	}

	my := rg.Group("/my-subjects")
	my.Use(authMW)
	{
		my.GET("", h.MySubjects)
	}

	admin := rg.Group("/subjects")
	admin.Use(authMW, adminMW)
	{
		admin.POST("", h.CreateSubject)
		admin.PUT("/:id", h.UpdateSubject)
		admin.DELETE("/:id", h.DeleteSubject)
		admin.POST("/:id/classes", h.CreateClass)
	}

	classes := rg.Group("/classes")
	classes.Use(authMW)
	{
		classes.GET("/:id", h.GetClass)
	}

	classAdmin := rg.Group("/classes")
	classAdmin.Use(authMW, adminMW)
	{
		classAdmin.PUT("/:id", h.UpdateClass)
		classAdmin.DELETE("/:id", h.DeleteClass)
	}
}

func (h *SubjectHandler) ListSubjects(c *gin.Context) {
	db := h.GetDB(c)

	subjects, err := h.subjectService.ListSubjects(db)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"subjects": subjects})
}

func (h *SubjectHandler) GetSubject(c *gin.Context) {
	db := h.GetDB(c)

	subject, err := h.subjectService.GetSubject(db, c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"subject": subject})
}

func (h *SubjectHandler) CreateSubject(c *gin.Context) {
	var req dto.CreateSubjectRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	subject, err := h.subjectService.CreateSubject(db, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"subject": subject})
}

func (h *SubjectHandler) UpdateSubject(c *gin.Context) {
	var req dto.UpdateSubjectRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	subject, err := h.subjectService.UpdateSubject(db, c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"subject": subject})
}

func (h *SubjectHandler) DeleteSubject(c *gin.Context) {
	db := h.GetDB(c)

	if err := h.subjectService.DeleteSubject(db, c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Matière supprimée"})
}

func (h *SubjectHandler) ListClasses(c *gin.Context) {
	db := h.GetDB(c)

	classes, err := h.subjectService.ListClasses(db, c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"classes": classes})
}

func (h *SubjectHandler) CreateClass(c *gin.Context) {
	var req dto.CreateClassRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	class, err := h.subjectService.CreateClass(db, c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"class": class})
}

func (h *SubjectHandler) GetClass(c *gin.Context) {
	db := h.GetDB(c)

	class, err := h.subjectService.GetClass(db, c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"class": class})
}

func (h *SubjectHandler) UpdateClass(c *gin.Context) {
	var req dto.UpdateClassRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	class, err := h.subjectService.UpdateClass(db, c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"class": class})
}

func (h *SubjectHandler) DeleteClass(c *gin.Context) {
	db := h.GetDB(c)

	if err := h.subjectService.DeleteClass(db, c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Classe supprimée"})
}

func (h *SubjectHandler) MySubjects(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	db := h.GetDB(c)

	subjects, err := h.subjectService.ListUserSubjects(db, userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"subjects": subjects})
}

func (h *SubjectHandler) Enroll(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	db := h.GetDB(c)

	if err := h.subjectService.EnrollUser(db, c.Param("id"), userID); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Inscription à la matière enregistrée"})
}
