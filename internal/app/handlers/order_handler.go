package handlers

import (
	"net/http"
	"strconv"

	"github.com/Laminito/ameublement-market/internal/app/middleware"
	"github.com/Laminito/ameublement-market/internal/pkg/log_messages"
	"github.com/Laminito/ameublement-market/internal/pkg/logger"
	"github.com/Laminito/ameublement-market/internal/service/interfaces"

	"github.com/gin-gonic/gin"
)

type OrderHandler struct {
	orders interfaces.OrderAPIInterface
}

func NewOrderHandler(orders interfaces.OrderAPIInterface) *OrderHandler {
	return &OrderHandler{orders: orders}
}

func (h *OrderHandler) ListOrders(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	orders, pagination, err := h.orders.ListOrders(c.Request.Context(), middleware.CurrentToken(c), page, limit)
	if err != nil {
		logger.CtxError(c.Request.Context(), log_messages.ErrorFetchingBackendOrders, err)
		respondWithBackendError(c, err, "commandes introuvables")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": orders, "pagination": pagination})
}

func (h *OrderHandler) GetOrder(c *gin.Context) {
	order, err := h.orders.GetOrder(c.Request.Context(), middleware.CurrentToken(c), c.Param("id"))
	if err != nil {
		respondWithBackendError(c, err, "commande introuvable")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": order})
}

func (h *OrderHandler) CancelOrder(c *gin.Context) {
	var body struct {
		Reason string `json:"reason"`
	}
	// The reason is optional; an empty body is fine.
	_ = c.ShouldBindJSON(&body)

	order, err := h.orders.CancelOrder(c.Request.Context(), middleware.CurrentToken(c), c.Param("id"), body.Reason)
	if err != nil {
		respondWithBackendError(c, err, "commande introuvable")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": order})
}

func (h *OrderHandler) GetTracking(c *gin.Context) {
	tracking, err := h.orders.GetTracking(c.Request.Context(), middleware.CurrentToken(c), c.Param("id"))
	if err != nil {
		respondWithBackendError(c, err, "suivi indisponible pour cette commande")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": tracking})
}
