package session

import (
	"context"
	"errors"

	"github.com/Laminito/ameublement-market/internal/pkg/backend"
	"github.com/Laminito/ameublement-market/internal/pkg/log_messages"
	"github.com/Laminito/ameublement-market/internal/pkg/logger"
	"github.com/Laminito/ameublement-market/internal/pkg/models"
	"github.com/Laminito/ameublement-market/internal/service/interfaces"
)

// ErrInvalidToken means the backend rejected the bearer token.
var ErrInvalidToken = errors.New("invalid or expired session token")

// Service resolves a bearer token to the user profile, caching the
// result so every authenticated request does not refetch it. A 401/403
// from the backend evicts the cached entry.
type Service struct {
	auth  interfaces.AuthAPIInterface
	cache interfaces.ProfileCacheInterface
}

func NewService(auth interfaces.AuthAPIInterface, cache interfaces.ProfileCacheInterface) *Service {
	return &Service{auth: auth, cache: cache}
}

func (s *Service) Resolve(ctx context.Context, token string) (*models.UserProfile, error) {
	if token == "" {
		return nil, ErrInvalidToken
	}

	cached, err := s.cache.Get(ctx, token)
	if err != nil {
		// Cache trouble is not fatal; fall through to the backend.
		logger.CtxWarn(ctx, "profile cache read failed, falling back to backend")
	}
	if cached != nil {
		return cached, nil
	}

	profile, err := s.auth.GetProfile(ctx, token)
	if err != nil {
		var apiErr *backend.APIError
		if errors.As(err, &apiErr) && (apiErr.StatusCode == 401 || apiErr.StatusCode == 403) {
			_ = s.cache.Invalidate(ctx, token)
			return nil, ErrInvalidToken
		}
		logger.CtxError(ctx, log_messages.ErrorFetchingBackendProfile, err)
		return nil, err
	}

	if err := s.cache.Set(ctx, token, profile); err != nil {
		logger.CtxWarn(ctx, "failed to cache resolved profile")
	}
	return profile, nil
}

// Invalidate drops the cached profile for a token, used on logout and
// after profile updates.
func (s *Service) Invalidate(ctx context.Context, token string) error {
	return s.cache.Invalidate(ctx, token)
}
