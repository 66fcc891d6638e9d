package interfaces

import (
	"context"

	"github.com/Laminito/ameublement-market/internal/pkg/models"
)

// OrderAPIInterface is the slice of the commerce backend the checkout
// flow depends on.
type OrderAPIInterface interface {
	CreateOrder(ctx context.Context, token string, req models.OrderCreationRequest) (*models.OrderCreated, error)
	ListOrders(ctx context.Context, token string, page, limit int) ([]models.Order, *models.Pagination, error)
	GetOrder(ctx context.Context, token, orderID string) (*models.Order, error)
	CancelOrder(ctx context.Context, token, orderID, reason string) (*models.Order, error)
	GetTracking(ctx context.Context, token, orderID string) (*models.OrderTracking, error)
}
