package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/Laminito/ameublement-market/internal/pkg/models"
	"github.com/Laminito/ameublement-market/internal/service/session"
)

type stubResolver struct {
	profile *models.UserProfile
	err     error
}

func (s *stubResolver) Resolve(ctx context.Context, token string) (*models.UserProfile, error) {
	return s.profile, s.err
}

func (s *stubResolver) Invalidate(ctx context.Context, token string) error { return nil }

func setupAuthRouter(resolver *stubResolver, adminOnly bool) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	group := r.Group("/", RequireAuth(resolver))
	if adminOnly {
		group.Use(RequireAdmin())
	}
	group.GET("/me", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"id": CurrentUser(c).ID, "token": CurrentToken(c)})
	})
	return r
}

func TestRequireAuth_NoHeader(t *testing.T) {
	r := setupAuthRouter(&stubResolver{}, false)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAuth_MalformedHeader(t *testing.T) {
	r := setupAuthRouter(&stubResolver{}, false)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAuth_InvalidToken(t *testing.T) {
	r := setupAuthRouter(&stubResolver{err: session.ErrInvalidToken}, false)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer expired")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAuth_BackendOutageIs502(t *testing.T) {
	r := setupAuthRouter(&stubResolver{err: errors.New("connection refused")}, false)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer tok")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadGateway, w.Code)
}

func TestRequireAuth_ValidTokenPopulatesContext(t *testing.T) {
	r := setupAuthRouter(&stubResolver{profile: &models.UserProfile{ID: "u-1"}}, false)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer tok-1")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"id":"u-1"`)
	assert.Contains(t, w.Body.String(), `"token":"tok-1"`)
}

func TestRequireAdmin_ClientRoleForbidden(t *testing.T) {
	r := setupAuthRouter(&stubResolver{profile: &models.UserProfile{ID: "u-1", Role: "client"}}, true)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer tok-1")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRequireAdmin_AdminRolePasses(t *testing.T) {
	r := setupAuthRouter(&stubResolver{profile: &models.UserProfile{ID: "u-1", Role: "admin"}}, true)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer tok-1")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}
