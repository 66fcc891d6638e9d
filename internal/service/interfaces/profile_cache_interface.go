package interfaces

import (
	"context"

	"github.com/Laminito/ameublement-market/internal/pkg/models"
)

// ProfileCacheInterface caches the backend user profile per session
// token so cart and checkout requests do not refetch it every time.
type ProfileCacheInterface interface {
	Get(ctx context.Context, token string) (*models.UserProfile, error)
	Set(ctx context.Context, token string, profile *models.UserProfile) error
	Invalidate(ctx context.Context, token string) error
}
