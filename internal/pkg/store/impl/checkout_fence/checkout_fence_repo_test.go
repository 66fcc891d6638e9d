package checkout_fence

import (
	"context"
	"testing"
	"time"

	miniredis "github.com/alicebob/miniredis/v2"
	redislib "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	redispkg "github.com/Laminito/ameublement-market/internal/pkg/db/redis"
)

func newTestFence(t *testing.T, ttl time.Duration) (*CheckoutFenceRepository, *miniredis.Miniredis) {
	t.Helper()
	s, err := miniredis.Run()
	if err != nil {
		t.Fatalf("failed to start miniredis: %v", err)
	}
	t.Cleanup(s.Close)

	rc := &redispkg.RedisClient{Client: redislib.NewClient(&redislib.Options{Addr: s.Addr()})}
	return NewCheckoutFenceRepository(rc, ttl), s
}

func TestCheckoutFence_SecondAcquireIsRejected(t *testing.T) {
	fence, _ := newTestFence(t, 30*time.Second)
	ctx := context.Background()

	first, err := fence.Acquire(ctx, "u-1")
	require.NoError(t, err)
	assert.True(t, first)

	second, err := fence.Acquire(ctx, "u-1")
	require.NoError(t, err)
	assert.False(t, second)
}

func TestCheckoutFence_ScopedPerUser(t *testing.T) {
	fence, _ := newTestFence(t, 30*time.Second)
	ctx := context.Background()

	first, err := fence.Acquire(ctx, "u-1")
	require.NoError(t, err)
	assert.True(t, first)

	other, err := fence.Acquire(ctx, "u-2")
	require.NoError(t, err)
	assert.True(t, other)
}

func TestCheckoutFence_ReleaseAllowsReacquire(t *testing.T) {
	fence, _ := newTestFence(t, 30*time.Second)
	ctx := context.Background()

	_, err := fence.Acquire(ctx, "u-1")
	require.NoError(t, err)
	require.NoError(t, fence.Release(ctx, "u-1"))

	again, err := fence.Acquire(ctx, "u-1")
	require.NoError(t, err)
	assert.True(t, again)
}

func TestCheckoutFence_ExpiresOnItsOwn(t *testing.T) {
	fence, s := newTestFence(t, 30*time.Second)
	ctx := context.Background()

	_, err := fence.Acquire(ctx, "u-1")
	require.NoError(t, err)

	// Crash scenario: Release never ran; the TTL clears the fence.
	s.FastForward(31 * time.Second)

	again, err := fence.Acquire(ctx, "u-1")
	require.NoError(t, err)
	assert.True(t, again)
}
