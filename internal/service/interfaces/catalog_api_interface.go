package interfaces

import (
	"context"

	"github.com/Laminito/ameublement-market/internal/pkg/models"
)

// ProductQuery narrows a product listing.
type ProductQuery struct {
	Page     int
	Limit    int
	Category string
	Featured bool
	Search   string
}

// CatalogAPIInterface is the read-only product/category surface of the
// backend; it feeds the calculator's principal input.
type CatalogAPIInterface interface {
	ListProducts(ctx context.Context, query ProductQuery) ([]models.Product, *models.Pagination, error)
	GetProduct(ctx context.Context, productID string) (*models.Product, error)
	ListCategories(ctx context.Context) ([]models.Category, error)
	GetCategory(ctx context.Context, categoryID string) (*models.Category, error)
	GetReviews(ctx context.Context, productID string) ([]models.Review, error)
	AddReview(ctx context.Context, token, productID string, review models.Review) error
}
