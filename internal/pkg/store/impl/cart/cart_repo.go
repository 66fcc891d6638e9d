package cart

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/Laminito/ameublement-market/internal/pkg/db/redis"
	"github.com/Laminito/ameublement-market/internal/pkg/logger"
	"github.com/Laminito/ameublement-market/internal/pkg/models"
	redismodel "github.com/Laminito/ameublement-market/internal/pkg/store/models"
	"github.com/Laminito/ameublement-market/internal/pkg/store/repository"
	"github.com/Laminito/ameublement-market/internal/service/interfaces"

	goredis "github.com/redis/go-redis/v9"
)

// CartRepository persists one cart per shopper as a JSON array of
// lines, in insertion order. Adding an existing product increments the
// existing line instead of appending a duplicate.
type CartRepository struct {
	store interfaces.KeyValueStoreInterface
}

func NewCartRepository(client *redis.RedisClient) *CartRepository {
	return &CartRepository{store: repository.NewRedisStoreAdapter(client.Client)}
}

func NewCartRepositoryWithStore(store interfaces.KeyValueStoreInterface) *CartRepository {
	return &CartRepository{store: store}
}

func (r *CartRepository) Get(ctx context.Context, userID string) ([]models.CartLine, error) {
	key := redismodel.CartKeyBuilder(userID)

	raw, err := r.store.Get(ctx, key)
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return []models.CartLine{}, nil
		}
		logger.CtxError(ctx, "Failed to read cart", err, slog.String("user_id", userID))
		return nil, err
	}

	var lines []models.CartLine
	if err := json.Unmarshal(raw, &lines); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cart: %w", err)
	}
	return lines, nil
}

func (r *CartRepository) AddItem(ctx context.Context, userID string, line models.CartLine) error {
	if line.Quantity < 1 {
		line.Quantity = 1
	}
	if line.AddedAt.IsZero() {
		line.AddedAt = time.Now().UTC()
	}

	lines, err := r.Get(ctx, userID)
	if err != nil {
		return err
	}

	merged := false
	for i := range lines {
		if lines[i].ProductRef() == line.ProductRef() {
			lines[i].Quantity += line.Quantity
			merged = true
			break
		}
	}
	if !merged {
		lines = append(lines, line)
	}

	return r.save(ctx, userID, lines)
}

func (r *CartRepository) UpdateQuantity(ctx context.Context, userID, productRef string, quantity int) error {
	if quantity < 1 {
		return r.RemoveItem(ctx, userID, productRef)
	}

	lines, err := r.Get(ctx, userID)
	if err != nil {
		return err
	}

	for i := range lines {
		if lines[i].ProductRef() == productRef {
			lines[i].Quantity = quantity
			return r.save(ctx, userID, lines)
		}
	}
	return fmt.Errorf("cart line not found for product %s", productRef)
}

func (r *CartRepository) RemoveItem(ctx context.Context, userID, productRef string) error {
	lines, err := r.Get(ctx, userID)
	if err != nil {
		return err
	}

	kept := lines[:0]
	for _, l := range lines {
		if l.ProductRef() != productRef {
			kept = append(kept, l)
		}
	}
	if len(kept) == 0 {
		return r.Clear(ctx, userID)
	}
	return r.save(ctx, userID, kept)
}

func (r *CartRepository) Clear(ctx context.Context, userID string) error {
	key := redismodel.CartKeyBuilder(userID)
	if err := r.store.Delete(ctx, key); err != nil {
		logger.CtxError(ctx, "Failed to clear cart", err, slog.String("user_id", userID))
		return err
	}
	logger.CtxInfo(ctx, "Cleared cart", slog.String("user_id", userID))
	return nil
}

func (r *CartRepository) save(ctx context.Context, userID string, lines []models.CartLine) error {
	key := redismodel.CartKeyBuilder(userID)

	data, err := json.Marshal(lines)
	if err != nil {
		return fmt.Errorf("failed to marshal cart: %w", err)
	}

	// Carts persist until cleared; no TTL.
	if err := r.store.Set(ctx, key, data, 0); err != nil {
		logger.CtxError(ctx, "Failed to save cart", err, slog.String("user_id", userID))
		return err
	}
	return nil
}
