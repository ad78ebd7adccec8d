package handlers

import (
	"net/http"

	"mychild_backend/internal/services"
	"mychild_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type PaymentHandler struct {
	*BaseHandler
	paymentService services.PaymentService
}

func NewPaymentHandler(base *BaseHandler, paymentService services.PaymentService) *PaymentHandler {
	return &PaymentHandler{
		BaseHandler:    base,
		paymentService: paymentService,
	}
}

// RegisterRoutes регистрирует платёжные маршруты.
// Callback приходит от шлюза без нашего токена, поэтому открыт.
func (h *PaymentHandler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	payments := rg.Group("/payment/paydunya")
	{
		payments.POST("/callback", h.Callback)
	}

	authed := rg.Group("/payment/paydunya")
	authed.Use(authMW)
	{
		authed.POST("/init", h.Init)
		authed.GET("/transactions", h.ListTransactions)
	}
}

func (h *PaymentHandler) Init(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.InitPaymentRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	resp, err := h.paymentService.InitPayment(c.Request.Context(), db, userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Callback принимает токен счёта в теле или в query
func (h *PaymentHandler) Callback(c *gin.Context) {
	var req dto.PaymentCallbackRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Token == "" {
		req.Token = c.Query("token")
	}
	if req.Token == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Token manquant"})
		return
	}

	db := h.GetDB(c)

	if err := h.paymentService.HandleCallback(c.Request.Context(), db, req.Token); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.String(http.StatusOK, "OK")
}

func (h *PaymentHandler) ListTransactions(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	db := h.GetDB(c)

	txs, err := h.paymentService.ListTransactions(db, userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"transactions": txs})
}
