package interfaces

import (
	"context"

	"github.com/Laminito/ameublement-market/internal/pkg/models"
)

// AuthAPIInterface is the backend auth surface the storefront proxies.
type AuthAPIInterface interface {
	Login(ctx context.Context, email, password string) (*models.AuthSession, error)
	Register(ctx context.Context, firstName, lastName, email, phone, password string) (*models.AuthSession, error)
	GetProfile(ctx context.Context, token string) (*models.UserProfile, error)
}
