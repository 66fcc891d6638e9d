package handlers

import (
	"net/http"
	"strconv"

	"github.com/Laminito/ameublement-market/internal/app/middleware"
	"github.com/Laminito/ameublement-market/internal/pkg/log_messages"
	"github.com/Laminito/ameublement-market/internal/pkg/logger"
	"github.com/Laminito/ameublement-market/internal/pkg/models"
	"github.com/Laminito/ameublement-market/internal/service/interfaces"

	"github.com/gin-gonic/gin"
)

// CatalogHandler proxies the public product and category surface.
type CatalogHandler struct {
	catalog interfaces.CatalogAPIInterface
}

func NewCatalogHandler(catalog interfaces.CatalogAPIInterface) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

func (h *CatalogHandler) ListProducts(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	query := interfaces.ProductQuery{
		Page:     page,
		Limit:    limit,
		Category: c.Query("category"),
		Featured: c.Query("featured") == "true",
	}

	products, pagination, err := h.catalog.ListProducts(c.Request.Context(), query)
	if err != nil {
		logger.CtxError(c.Request.Context(), log_messages.ErrorFetchingBackendProducts, err)
		c.JSON(http.StatusBadGateway, gin.H{"success": false, "message": "catalogue momentanément indisponible"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": products, "pagination": pagination})
}

func (h *CatalogHandler) SearchProducts(c *gin.Context) {
	q := c.Query("q")
	if q == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "paramètre q requis"})
		return
	}

	products, pagination, err := h.catalog.ListProducts(c.Request.Context(), interfaces.ProductQuery{Search: q})
	if err != nil {
		logger.CtxError(c.Request.Context(), log_messages.ErrorFetchingBackendProducts, err)
		c.JSON(http.StatusBadGateway, gin.H{"success": false, "message": "recherche momentanément indisponible"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": products, "pagination": pagination})
}

func (h *CatalogHandler) GetProduct(c *gin.Context) {
	product, err := h.catalog.GetProduct(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondWithBackendError(c, err, "produit introuvable")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": product})
}

func (h *CatalogHandler) ListCategories(c *gin.Context) {
	categories, err := h.catalog.ListCategories(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"success": false, "message": "catégories momentanément indisponibles"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": categories})
}

func (h *CatalogHandler) GetCategory(c *gin.Context) {
	category, err := h.catalog.GetCategory(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondWithBackendError(c, err, "catégorie introuvable")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": category})
}

func (h *CatalogHandler) GetReviews(c *gin.Context) {
	reviews, err := h.catalog.GetReviews(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondWithBackendError(c, err, "avis momentanément indisponibles")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": reviews})
}

func (h *CatalogHandler) AddReview(c *gin.Context) {
	var review models.Review
	if err := c.ShouldBindJSON(&review); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	token := middleware.CurrentToken(c)
	if err := h.catalog.AddReview(c.Request.Context(), token, c.Param("id"), review); err != nil {
		respondWithBackendError(c, err, "impossible d'enregistrer l'avis")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "message": "avis enregistré"})
}
