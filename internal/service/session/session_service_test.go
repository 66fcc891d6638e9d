package session

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Laminito/ameublement-market/internal/pkg/backend"
	"github.com/Laminito/ameublement-market/internal/pkg/models"
)

type mockAuthAPI struct {
	mock.Mock
}

func (m *mockAuthAPI) Login(ctx context.Context, email, password string) (*models.AuthSession, error) {
	args := m.Called(ctx, email, password)
	if session, ok := args.Get(0).(*models.AuthSession); ok {
		return session, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockAuthAPI) Register(ctx context.Context, firstName, lastName, email, phone, password string) (*models.AuthSession, error) {
	args := m.Called(ctx, firstName, lastName, email, phone, password)
	if session, ok := args.Get(0).(*models.AuthSession); ok {
		return session, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockAuthAPI) GetProfile(ctx context.Context, token string) (*models.UserProfile, error) {
	args := m.Called(ctx, token)
	if profile, ok := args.Get(0).(*models.UserProfile); ok {
		return profile, args.Error(1)
	}
	return nil, args.Error(1)
}

type mockProfileCache struct {
	mock.Mock
}

func (m *mockProfileCache) Get(ctx context.Context, token string) (*models.UserProfile, error) {
	args := m.Called(ctx, token)
	if profile, ok := args.Get(0).(*models.UserProfile); ok {
		return profile, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockProfileCache) Set(ctx context.Context, token string, profile *models.UserProfile) error {
	return m.Called(ctx, token, profile).Error(0)
}

func (m *mockProfileCache) Invalidate(ctx context.Context, token string) error {
	return m.Called(ctx, token).Error(0)
}

func TestResolve_EmptyTokenRejectedWithoutBackendCall(t *testing.T) {
	auth := &mockAuthAPI{}
	cache := &mockProfileCache{}
	svc := NewService(auth, cache)

	_, err := svc.Resolve(context.Background(), "")

	assert.ErrorIs(t, err, ErrInvalidToken)
	auth.AssertNotCalled(t, "GetProfile", mock.Anything, mock.Anything)
}

func TestResolve_CacheHitSkipsBackend(t *testing.T) {
	auth := &mockAuthAPI{}
	cache := &mockProfileCache{}
	cache.On("Get", mock.Anything, "tok-1").Return(&models.UserProfile{ID: "u-1"}, nil)
	svc := NewService(auth, cache)

	profile, err := svc.Resolve(context.Background(), "tok-1")

	require.NoError(t, err)
	assert.Equal(t, "u-1", profile.ID)
	auth.AssertNotCalled(t, "GetProfile", mock.Anything, mock.Anything)
}

func TestResolve_CacheMissFetchesAndCaches(t *testing.T) {
	auth := &mockAuthAPI{}
	auth.On("GetProfile", mock.Anything, "tok-1").Return(&models.UserProfile{ID: "u-1"}, nil)
	cache := &mockProfileCache{}
	cache.On("Get", mock.Anything, "tok-1").Return(nil, nil)
	cache.On("Set", mock.Anything, "tok-1", mock.Anything).Return(nil)
	svc := NewService(auth, cache)

	profile, err := svc.Resolve(context.Background(), "tok-1")

	require.NoError(t, err)
	assert.Equal(t, "u-1", profile.ID)
	cache.AssertCalled(t, "Set", mock.Anything, "tok-1", mock.Anything)
}

func TestResolve_UnauthorizedEvictsCacheEntry(t *testing.T) {
	auth := &mockAuthAPI{}
	auth.On("GetProfile", mock.Anything, "tok-old").
		Return(nil, &backend.APIError{StatusCode: 401, Message: "jwt expired"})
	cache := &mockProfileCache{}
	cache.On("Get", mock.Anything, "tok-old").Return(nil, nil)
	cache.On("Invalidate", mock.Anything, "tok-old").Return(nil)
	svc := NewService(auth, cache)

	_, err := svc.Resolve(context.Background(), "tok-old")

	assert.ErrorIs(t, err, ErrInvalidToken)
	cache.AssertCalled(t, "Invalidate", mock.Anything, "tok-old")
}

func TestResolve_BackendOutagePropagates(t *testing.T) {
	auth := &mockAuthAPI{}
	auth.On("GetProfile", mock.Anything, "tok-1").Return(nil, errors.New("connection refused"))
	cache := &mockProfileCache{}
	cache.On("Get", mock.Anything, "tok-1").Return(nil, nil)
	svc := NewService(auth, cache)

	_, err := svc.Resolve(context.Background(), "tok-1")

	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidToken)
}

func TestResolve_CacheReadFailureFallsBackToBackend(t *testing.T) {
	auth := &mockAuthAPI{}
	auth.On("GetProfile", mock.Anything, "tok-1").Return(&models.UserProfile{ID: "u-1"}, nil)
	cache := &mockProfileCache{}
	cache.On("Get", mock.Anything, "tok-1").Return(nil, errors.New("redis down"))
	cache.On("Set", mock.Anything, "tok-1", mock.Anything).Return(nil)
	svc := NewService(auth, cache)

	profile, err := svc.Resolve(context.Background(), "tok-1")

	require.NoError(t, err)
	assert.Equal(t, "u-1", profile.ID)
}
