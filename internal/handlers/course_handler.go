package handlers

import (
	"net/http"

	"mychild_backend/internal/services"
	"mychild_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type CourseHandler struct {
	*BaseHandler
	courseService services.CourseService
}

func NewCourseHandler(base *BaseHandler, courseService services.CourseService) *CourseHandler {
	return &CourseHandler{
		BaseHandler:   base,
		courseService: courseService,
	}
}

func (h *CourseHandler) RegisterRoutes(rg *gin.RouterGroup, authMW, adminMW gin.HandlerFunc) {
	read := rg.Group("/classes/:id/courses")
	read.Use(authMW)
	{
		read.GET("", h.ListCourses)
	}

	courses := rg.Group("/courses")
	courses.Use(authMW)
	{
		courses.GET("/:id", h.GetCourse)
	}

	write := rg.Group("/classes/:id/courses")
	write.Use(authMW, adminMW)
	{
		write.POST("", h.CreateCourse)
	}

	courseAdmin := rg.Group("/courses")
	courseAdmin.Use(authMW, adminMW)
	{
		courseAdmin.PUT("/:id", h.UpdateCourse)
		courseAdmin.DELETE("/:id", h.DeleteCourse)
	}
}

func (h *CourseHandler) ListCourses(c *gin.Context) {
	db := h.GetDB(c)

	courses, err := h.courseService.ListCourses(db, c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"courses": courses})
}

func (h *CourseHandler) GetCourse(c *gin.Context) {
	db := h.GetDB(c)

	course, err := h.courseService.GetCourse(db, c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"course": course})
}

func (h *CourseHandler) CreateCourse(c *gin.Context) {
	var req dto.CreateCourseRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	course, err := h.courseService.CreateCourse(db, c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"course": course})
}

func (h *CourseHandler) UpdateCourse(c *gin.Context) {
	var req dto.UpdateCourseRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	course, err := h.courseService.UpdateCourse(db, c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"course": course})
}

func (h *CourseHandler) DeleteCourse(c *gin.Context) {
	db := h.GetDB(c)

	if err := h.courseService.DeleteCourse(db, c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Cours supprimé"})
}
