package router

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	redislib "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Laminito/ameublement-market/internal/pkg/backend"
	"github.com/Laminito/ameublement-market/internal/pkg/config"
	redisdb "github.com/Laminito/ameublement-market/internal/pkg/db/redis"
)

func testConfig() *config.AppConfig {
	return &config.AppConfig{
		Credit: config.CreditConfig{
			DefaultRate: 0.15,
			Rates:       map[int]float64{1: 0.01, 2: 0.02, 3: 0.05, 4: 0.06, 5: 0.07, 6: 0.08},
		},
		Checkout: config.CheckoutConfig{FenceTTL: 30 * time.Second},
		Session:  config.SessionConfig{ProfileTTL: 15 * time.Minute},
	}
}

func setupTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	s, err := miniredis.Run()
	if err != nil {
		t.Fatalf("failed to start miniredis: %v", err)
	}
	t.Cleanup(s.Close)

	redisClient := &redisdb.RedisClient{Client: redislib.NewClient(&redislib.Options{Addr: s.Addr()})}
	backendClient := backend.NewClientWithHTTP("http://127.0.0.1:0", &http.Client{Timeout: time.Second})

	return SetupRouter(testConfig(), redisClient, backendClient)
}

func TestRouter_HealthCheck(t *testing.T) {
	r := setupTestRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/storefront/healthcheck", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRouter_CreditQuoteIsPublic(t *testing.T) {
	r := setupTestRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/storefront/credit/quote?amount=50000&duration=3", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"totalWithInterest":52500`)
}

func TestRouter_CartRequiresAuth(t *testing.T) {
	r := setupTestRouter(t)

	for _, route := range []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/storefront/cart"},
		{http.MethodPost, "/storefront/checkout"},
		{http.MethodGet, "/storefront/orders"},
		{http.MethodGet, "/storefront/auth/me"},
		{http.MethodGet, "/storefront/admin/orders"},
	} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(route.method, route.path, nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code, "%s %s", route.method, route.path)
	}
}

func TestRouter_UnknownRouteIs404(t *testing.T) {
	r := setupTestRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/storefront/nope", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
