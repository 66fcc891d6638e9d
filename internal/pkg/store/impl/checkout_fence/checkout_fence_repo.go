package checkout_fence

import (
	"context"
	"log/slog"
	"time"

	"github.com/Laminito/ameublement-market/internal/pkg/db/redis"
	"github.com/Laminito/ameublement-market/internal/pkg/logger"
	redismodel "github.com/Laminito/ameublement-market/internal/pkg/store/models"
	"github.com/Laminito/ameublement-market/internal/pkg/store/repository"
	"github.com/Laminito/ameublement-market/internal/service/interfaces"
)

// CheckoutFenceRepository marks a shopper's checkout as in progress so
// a second request cannot submit the same cart concurrently. The key
// expires on its own in case a crash skips Release.
type CheckoutFenceRepository struct {
	store interfaces.KeyValueStoreInterface
	ttl   time.Duration
}

func NewCheckoutFenceRepository(client *redis.RedisClient, ttl time.Duration) *CheckoutFenceRepository {
	return &CheckoutFenceRepository{store: repository.NewRedisStoreAdapter(client.Client), ttl: ttl}
}

func NewCheckoutFenceRepositoryWithStore(store interfaces.KeyValueStoreInterface, ttl time.Duration) *CheckoutFenceRepository {
	return &CheckoutFenceRepository{store: store, ttl: ttl}
}

func (r *CheckoutFenceRepository) Acquire(ctx context.Context, userID string) (bool, error) {
	key := redismodel.CheckoutFenceKeyBuilder(userID)

	acquired, err := r.store.SetNX(ctx, key, time.Now().UTC().Format(time.RFC3339), r.ttl)
	if err != nil {
		logger.CtxError(ctx, "Failed to acquire checkout fence", err, slog.String("user_id", userID))
		return false, err
	}
	if !acquired {
		logger.CtxWarn(ctx, "Checkout already in progress", slog.String("user_id", userID))
	}
	return acquired, nil
}

func (r *CheckoutFenceRepository) Release(ctx context.Context, userID string) error {
	key := redismodel.CheckoutFenceKeyBuilder(userID)

	if err := r.store.Delete(ctx, key); err != nil {
		logger.CtxError(ctx, "Failed to release checkout fence", err, slog.String("user_id", userID))
		return err
	}
	return nil
}
