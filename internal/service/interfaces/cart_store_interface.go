package interfaces

import (
	"context"

	"github.com/Laminito/ameublement-market/internal/pkg/models"
)

// CartStoreInterface is the mutation API of the process-wide cart
// state. Line mutations may happen from any view; only the checkout
// flow clears it wholesale, and only on confirmed order creation.
type CartStoreInterface interface {
	Get(ctx context.Context, userID string) ([]models.CartLine, error)
	AddItem(ctx context.Context, userID string, line models.CartLine) error
	UpdateQuantity(ctx context.Context, userID, productRef string, quantity int) error
	RemoveItem(ctx context.Context, userID, productRef string) error
	Clear(ctx context.Context, userID string) error
}
