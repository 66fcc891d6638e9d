package interfaces

import (
	"context"

	"github.com/Laminito/ameublement-market/internal/pkg/models"
)

// SessionResolverInterface turns a bearer token into a user profile.
type SessionResolverInterface interface {
	Resolve(ctx context.Context, token string) (*models.UserProfile, error)
	Invalidate(ctx context.Context, token string) error
}
