package handlers

import (
	"net/http"

	"github.com/Laminito/ameublement-market/internal/app/middleware"
	"github.com/Laminito/ameublement-market/internal/pkg/log_messages"
	"github.com/Laminito/ameublement-market/internal/pkg/logger"
	"github.com/Laminito/ameublement-market/internal/pkg/models"
	"github.com/Laminito/ameublement-market/internal/service/interfaces"

	"github.com/gin-gonic/gin"
)

type CartHandler struct {
	cart interfaces.CartStoreInterface
}

func NewCartHandler(cart interfaces.CartStoreInterface) *CartHandler {
	return &CartHandler{cart: cart}
}

// GetCart returns the shopper's cart with the client-side totals.
func (h *CartHandler) GetCart(c *gin.Context) {
	user := middleware.CurrentUser(c)

	lines, err := h.cart.Get(c.Request.Context(), user.ID)
	if err != nil {
		logger.CtxError(c.Request.Context(), log_messages.ErrorFetchingCartFromStore, err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "impossible de charger le panier"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": models.Summarize(lines)})
}

// AddItem appends a line; an existing product ref merges quantities.
func (h *CartHandler) AddItem(c *gin.Context) {
	user := middleware.CurrentUser(c)

	var line models.CartLine
	if err := c.ShouldBindJSON(&line); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}
	if line.ProductRef() == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "produit sans identifiant"})
		return
	}

	if err := h.cart.AddItem(c.Request.Context(), user.ID, line); err != nil {
		logger.CtxError(c.Request.Context(), log_messages.ErrorSavingCartToStore, err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "impossible d'ajouter l'article"})
		return
	}
	h.respondWithCart(c, user.ID, http.StatusCreated)
}

// UpdateQuantity sets the quantity of a line; zero removes it.
func (h *CartHandler) UpdateQuantity(c *gin.Context) {
	user := middleware.CurrentUser(c)
	productRef := c.Param("productId")

	var body struct {
		Quantity int `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	if err := h.cart.UpdateQuantity(c.Request.Context(), user.ID, productRef, body.Quantity); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "article introuvable dans le panier"})
		return
	}
	h.respondWithCart(c, user.ID, http.StatusOK)
}

func (h *CartHandler) RemoveItem(c *gin.Context) {
	user := middleware.CurrentUser(c)

	if err := h.cart.RemoveItem(c.Request.Context(), user.ID, c.Param("productId")); err != nil {
		logger.CtxError(c.Request.Context(), log_messages.ErrorSavingCartToStore, err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "impossible de retirer l'article"})
		return
	}
	h.respondWithCart(c, user.ID, http.StatusOK)
}

func (h *CartHandler) ClearCart(c *gin.Context) {
	user := middleware.CurrentUser(c)

	if err := h.cart.Clear(c.Request.Context(), user.ID); err != nil {
		logger.CtxError(c.Request.Context(), log_messages.ErrorClearingCart, err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "impossible de vider le panier"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": models.Summarize(nil)})
}

func (h *CartHandler) respondWithCart(c *gin.Context, userID string, status int) {
	lines, err := h.cart.Get(c.Request.Context(), userID)
	if err != nil {
		logger.CtxError(c.Request.Context(), log_messages.ErrorFetchingCartFromStore, err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "impossible de charger le panier"})
		return
	}
	c.JSON(status, gin.H{"success": true, "data": models.Summarize(lines)})
}
