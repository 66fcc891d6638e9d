package handlers

import (
	"net/http"
	"strconv"

	"github.com/Laminito/ameublement-market/internal/app/middleware"
	"github.com/Laminito/ameublement-market/internal/pkg/models"
	"github.com/Laminito/ameublement-market/internal/service/interfaces"

	"github.com/gin-gonic/gin"
)

// AdminHandler forwards store-management calls to the backend. Role
// screening happens in RequireAdmin; the backend stays authoritative.
type AdminHandler struct {
	admin interfaces.AdminAPIInterface
}

func NewAdminHandler(admin interfaces.AdminAPIInterface) *AdminHandler {
	return &AdminHandler{admin: admin}
}

func (h *AdminHandler) CreateProduct(c *gin.Context) {
	var product models.Product
	if err := c.ShouldBindJSON(&product); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	created, err := h.admin.CreateProduct(c.Request.Context(), middleware.CurrentToken(c), product)
	if err != nil {
		respondWithBackendError(c, err, "produit introuvable")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "data": created})
}

func (h *AdminHandler) UpdateProduct(c *gin.Context) {
	var product models.Product
	if err := c.ShouldBindJSON(&product); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	updated, err := h.admin.UpdateProduct(c.Request.Context(), middleware.CurrentToken(c), c.Param("id"), product)
	if err != nil {
		respondWithBackendError(c, err, "produit introuvable")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": updated})
}

func (h *AdminHandler) DeleteProduct(c *gin.Context) {
	if err := h.admin.DeleteProduct(c.Request.Context(), middleware.CurrentToken(c), c.Param("id")); err != nil {
		respondWithBackendError(c, err, "produit introuvable")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "produit supprimé"})
}

func (h *AdminHandler) ListAllOrders(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	orders, pagination, err := h.admin.ListAllOrders(c.Request.Context(), middleware.CurrentToken(c), page, limit)
	if err != nil {
		respondWithBackendError(c, err, "commandes introuvables")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": orders, "pagination": pagination})
}

func (h *AdminHandler) UpdateOrderStatus(c *gin.Context) {
	var body struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	order, err := h.admin.UpdateOrderStatus(c.Request.Context(), middleware.CurrentToken(c), c.Param("id"), body.Status)
	if err != nil {
		respondWithBackendError(c, err, "commande introuvable")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": order})
}

func (h *AdminHandler) UpdatePaymentStatus(c *gin.Context) {
	var body struct {
		PaymentStatus string `json:"paymentStatus" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	order, err := h.admin.UpdatePaymentStatus(c.Request.Context(), middleware.CurrentToken(c), c.Param("id"), body.PaymentStatus)
	if err != nil {
		respondWithBackendError(c, err, "commande introuvable")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": order})
}

func (h *AdminHandler) UpdateTracking(c *gin.Context) {
	var tracking models.OrderTracking
	if err := c.ShouldBindJSON(&tracking); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	order, err := h.admin.UpdateTracking(c.Request.Context(), middleware.CurrentToken(c), c.Param("id"), tracking)
	if err != nil {
		respondWithBackendError(c, err, "commande introuvable")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": order})
}

func (h *AdminHandler) DeleteOrder(c *gin.Context) {
	if err := h.admin.DeleteOrder(c.Request.Context(), middleware.CurrentToken(c), c.Param("id")); err != nil {
		respondWithBackendError(c, err, "commande introuvable")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "commande supprimée"})
}

func (h *AdminHandler) GetAnalyticsSummary(c *gin.Context) {
	summary, err := h.admin.GetAnalyticsSummary(c.Request.Context(), middleware.CurrentToken(c))
	if err != nil {
		respondWithBackendError(c, err, "statistiques indisponibles")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": summary})
}

func (h *AdminHandler) CreateCategory(c *gin.Context) {
	var category models.Category
	if err := c.ShouldBindJSON(&category); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	created, err := h.admin.CreateCategory(c.Request.Context(), middleware.CurrentToken(c), category)
	if err != nil {
		respondWithBackendError(c, err, "catégorie introuvable")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "data": created})
}

func (h *AdminHandler) UpdateCategory(c *gin.Context) {
	var category models.Category
	if err := c.ShouldBindJSON(&category); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	updated, err := h.admin.UpdateCategory(c.Request.Context(), middleware.CurrentToken(c), c.Param("id"), category)
	if err != nil {
		respondWithBackendError(c, err, "catégorie introuvable")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": updated})
}

func (h *AdminHandler) DeleteCategory(c *gin.Context) {
	if err := h.admin.DeleteCategory(c.Request.Context(), middleware.CurrentToken(c), c.Param("id")); err != nil {
		respondWithBackendError(c, err, "catégorie introuvable")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "catégorie supprimée"})
}
