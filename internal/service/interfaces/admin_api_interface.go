package interfaces

import (
	"context"

	"github.com/Laminito/ameublement-market/internal/pkg/models"
)

// AdminAPIInterface is the backend admin surface. Every call requires
// the token of a profile with the admin role; the backend enforces it,
// the storefront only forwards.
type AdminAPIInterface interface {
	CreateProduct(ctx context.Context, token string, product models.Product) (*models.Product, error)
	UpdateProduct(ctx context.Context, token, productID string, product models.Product) (*models.Product, error)
	DeleteProduct(ctx context.Context, token, productID string) error

	ListAllOrders(ctx context.Context, token string, page, limit int) ([]models.Order, *models.Pagination, error)
	UpdateOrderStatus(ctx context.Context, token, orderID, status string) (*models.Order, error)
	UpdatePaymentStatus(ctx context.Context, token, orderID, paymentStatus string) (*models.Order, error)
	UpdateTracking(ctx context.Context, token, orderID string, tracking models.OrderTracking) (*models.Order, error)
	DeleteOrder(ctx context.Context, token, orderID string) error
	GetAnalyticsSummary(ctx context.Context, token string) (*models.AnalyticsSummary, error)

	CreateCategory(ctx context.Context, token string, category models.Category) (*models.Category, error)
	UpdateCategory(ctx context.Context, token, categoryID string, category models.Category) (*models.Category, error)
	DeleteCategory(ctx context.Context, token, categoryID string) error
}
