package handlers

import (
	"errors"
	"net/http"

	"github.com/Laminito/ameublement-market/internal/app/middleware"
	"github.com/Laminito/ameublement-market/internal/pkg/consts"
	"github.com/Laminito/ameublement-market/internal/pkg/log_messages"
	"github.com/Laminito/ameublement-market/internal/pkg/logger"
	"github.com/Laminito/ameublement-market/internal/pkg/models"
	"github.com/Laminito/ameublement-market/internal/service/checkout"
	"github.com/Laminito/ameublement-market/internal/service/credit"
	"github.com/Laminito/ameublement-market/internal/service/interfaces"

	"github.com/gin-gonic/gin"
)

// CheckoutHandler submits the shopper's cart as an order. The Redis
// fence rejects a concurrent second submission for the same shopper;
// within the request the flow enforces one-shot semantics.
type CheckoutHandler struct {
	cart   interfaces.CartStoreInterface
	orders interfaces.OrderAPIInterface
	fence  interfaces.CheckoutFenceInterface
}

func NewCheckoutHandler(
	cart interfaces.CartStoreInterface,
	orders interfaces.OrderAPIInterface,
	fence interfaces.CheckoutFenceInterface,
) *CheckoutHandler {
	return &CheckoutHandler{cart: cart, orders: orders, fence: fence}
}

type checkoutRequest struct {
	PaymentMode     string                  `json:"paymentMode" binding:"required"`
	CreditDuration  int                     `json:"creditDuration"`
	ShippingAddress *models.ShippingAddress `json:"shippingAddress"`
}

func (h *CheckoutHandler) Checkout(c *gin.Context) {
	ctx := c.Request.Context()
	user := middleware.CurrentUser(c)
	token := middleware.CurrentToken(c)

	var body checkoutRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	acquired, err := h.fence.Acquire(ctx, user.ID)
	if err != nil {
		logger.CtxError(ctx, log_messages.ErrorAcquiringCheckoutFence, err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "service momentanément indisponible"})
		return
	}
	if !acquired {
		logger.CtxWarn(ctx, log_messages.CheckoutAlreadyInProgress)
		c.JSON(http.StatusConflict, gin.H{"success": false, "message": "une commande est déjà en cours de traitement"})
		return
	}
	defer func() {
		if err := h.fence.Release(ctx, user.ID); err != nil {
			logger.CtxError(ctx, log_messages.ErrorReleasingCheckoutFence, err)
		}
	}()

	flow := checkout.NewFlow(h.cart, h.orders)
	if err := flow.Select(consts.PaymentMode(body.PaymentMode), body.CreditDuration); err != nil {
		h.respondWithCheckoutError(c, err)
		return
	}

	defaults := checkout.UserDefaults{
		Profile:      user,
		LastShipping: user.ShippingAddress,
		Entered:      body.ShippingAddress,
	}

	created, err := flow.Submit(ctx, token, user.ID, defaults)
	if err != nil {
		h.respondWithCheckoutError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success":    true,
		"data":       created.Order,
		"paymentUrl": created.PaymentURL,
	})
}

// respondWithCheckoutError maps the checkout error taxonomy onto HTTP
// statuses and shopper-facing messages.
func (h *CheckoutHandler) respondWithCheckoutError(c *gin.Context, err error) {
	var (
		stockErr *checkout.InsufficientStockError
		valErr   *checkout.ValidationError
		netErr   *checkout.NetworkError
		durErr   *credit.InvalidDurationError
	)

	switch {
	case errors.Is(err, checkout.ErrEmptyCart):
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "votre panier est vide"})
	case errors.Is(err, checkout.ErrNotAuthenticated):
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "session expirée, veuillez vous reconnecter"})
	case errors.Is(err, checkout.ErrSubmissionInFlight):
		c.JSON(http.StatusConflict, gin.H{"success": false, "message": "une commande est déjà en cours de traitement"})
	case errors.As(err, &durErr):
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "durée de crédit invalide"})
	case errors.As(err, &stockErr):
		c.JSON(http.StatusConflict, gin.H{"success": false, "message": stockErr.Error()})
	case errors.As(err, &valErr):
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": valErr.Error(), "errors": valErr.Fields})
	case errors.As(err, &netErr):
		c.JSON(http.StatusBadGateway, gin.H{"success": false, "message": "impossible de joindre le service de commande, votre panier est conservé"})
	default:
		c.JSON(http.StatusUnprocessableEntity, gin.H{"success": false, "message": err.Error()})
	}
}
