package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/Laminito/ameublement-market/internal/service/credit"

	"github.com/gin-gonic/gin"
)

// CreditHandler serves installment quotes computed from the configured
// rate table. Quotes are estimates; the backend recomputes the charged
// amounts at order creation.
type CreditHandler struct {
	calculator *credit.Calculator
}

func NewCreditHandler(calculator *credit.Calculator) *CreditHandler {
	return &CreditHandler{calculator: calculator}
}

// Quote returns the financing breakdown for one amount/duration pair.
func (h *CreditHandler) Quote(c *gin.Context) {
	amount, err := strconv.ParseFloat(c.Query("amount"), 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "paramètre amount invalide"})
		return
	}
	duration, err := strconv.Atoi(c.Query("duration"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "paramètre duration invalide"})
		return
	}

	breakdown, err := h.calculator.ComputeBreakdown(amount, duration)
	if err != nil {
		var durErr *credit.InvalidDurationError
		switch {
		case errors.As(err, &durErr):
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "la durée doit être un nombre de mois positif"})
		case errors.Is(err, credit.ErrInvalidPrincipal):
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "le montant doit être positif"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": breakdown})
}

// Options returns a breakdown per supported duration, ascending, for
// the installment picker shown next to a price.
func (h *CreditHandler) Options(c *gin.Context) {
	amount, err := strconv.ParseFloat(c.Query("amount"), 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "paramètre amount invalide"})
		return
	}

	options, err := h.calculator.Options(amount)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "le montant doit être positif"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": options})
}
