package handlers

import (
	"net/http"

	"mychild_backend/internal/services"

	"github.com/gin-gonic/gin"
)

// UserHandler - административные операции над пользователями и заявками
type UserHandler struct {
	*BaseHandler
	userService services.UserService
}

func NewUserHandler(base *BaseHandler, userService services.UserService) *UserHandler {
	return &UserHandler{
		BaseHandler: base,
		userService: userService,
	}
}

// RegisterRoutes регистрирует админские маршруты
func (h *UserHandler) RegisterRoutes(rg *gin.RouterGroup, authMW, adminMW gin.HandlerFunc) {
	admin := rg.Group("/admin")
	admin.Use(authMW, adminMW)
	{
		admin.GET("/users", h.ListUsers)
		admin.GET("/register-requests", h.ListRegisterRequests)
		admin.POST("/register-requests/:id/approve", h.ApproveRequest)
		admin.POST("/register-requests/:id/reject", h.RejectRequest)
		admin.POST("/users/:id/activate", h.ActivateUser)
		admin.POST("/users/:id/deactivate", h.DeactivateUser)
	}
}

func (h *UserHandler) ListUsers(c *gin.Context) {
	limit, offset := ParsePagination(c)
	db := h.GetDB(c)

	resp, err := h.userService.ListUsers(db, limit, offset)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *UserHandler) ListRegisterRequests(c *gin.Context) {
	db := h.GetDB(c)

	requests, err := h.userService.ListPendingRequests(db)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"requests": requests})
}

func (h *UserHandler) ApproveRequest(c *gin.Context) {
	db := h.GetDB(c)

	user, err := h.userService.ApproveRegistration(db, c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Inscription validée",
		"user":    user,
	})
}

func (h *UserHandler) RejectRequest(c *gin.Context) {
	db := h.GetDB(c)

	if err := h.userService.RejectRegistration(db, c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Inscription rejetée"})
}

func (h *UserHandler) ActivateUser(c *gin.Context) {
	h.setActive(c, true)
}

func (h *UserHandler) DeactivateUser(c *gin.Context) {
	h.setActive(c, false)
}

func (h *UserHandler) setActive(c *gin.Context, active bool) {
	db := h.GetDB(c)

	user, err := h.userService.SetUserActive(db, c.Param("id"), active)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user})
}
