package interfaces

import "context"

// CheckoutFenceInterface guards against concurrent submissions for the
// same shopper across requests. Acquire returns false when a submission
// is already in progress.
type CheckoutFenceInterface interface {
	Acquire(ctx context.Context, userID string) (bool, error)
	Release(ctx context.Context, userID string) error
}
