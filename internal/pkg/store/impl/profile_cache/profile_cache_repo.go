package profile_cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Laminito/ameublement-market/internal/pkg/db/redis"
	"github.com/Laminito/ameublement-market/internal/pkg/logger"
	"github.com/Laminito/ameublement-market/internal/pkg/models"
	redismodel "github.com/Laminito/ameublement-market/internal/pkg/store/models"
	"github.com/Laminito/ameublement-market/internal/pkg/store/repository"
	"github.com/Laminito/ameublement-market/internal/service/interfaces"

	goredis "github.com/redis/go-redis/v9"
)

// ProfileCacheRepository holds the backend profile per session token,
// keyed by token hash. A miss returns (nil, nil).
type ProfileCacheRepository struct {
	store interfaces.KeyValueStoreInterface
	ttl   time.Duration
}

func NewProfileCacheRepository(client *redis.RedisClient, ttl time.Duration) *ProfileCacheRepository {
	return &ProfileCacheRepository{store: repository.NewRedisStoreAdapter(client.Client), ttl: ttl}
}

func NewProfileCacheRepositoryWithStore(store interfaces.KeyValueStoreInterface, ttl time.Duration) *ProfileCacheRepository {
	return &ProfileCacheRepository{store: store, ttl: ttl}
}

func (r *ProfileCacheRepository) Get(ctx context.Context, token string) (*models.UserProfile, error) {
	key := redismodel.ProfileKeyBuilder(token)

	raw, err := r.store.Get(ctx, key)
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, nil
		}
		logger.CtxError(ctx, "Failed to read cached profile", err)
		return nil, err
	}

	var profile models.UserProfile
	if err := json.Unmarshal(raw, &profile); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cached profile: %w", err)
	}
	return &profile, nil
}

func (r *ProfileCacheRepository) Set(ctx context.Context, token string, profile *models.UserProfile) error {
	key := redismodel.ProfileKeyBuilder(token)

	data, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("failed to marshal profile: %w", err)
	}
	if err := r.store.Set(ctx, key, data, r.ttl); err != nil {
		logger.CtxError(ctx, "Failed to cache profile", err)
		return err
	}
	return nil
}

func (r *ProfileCacheRepository) Invalidate(ctx context.Context, token string) error {
	return r.store.Delete(ctx, redismodel.ProfileKeyBuilder(token))
}
