package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sweetshop/backend/internal/logger"
	"github.com/sweetshop/backend/internal/models"
)

const catalogCacheKey = "sweets:catalog"

// CatalogCacheRepository caches the full sweet catalog in Redis. Every write
// path invalidates the key, so a hit is always consistent with storage.
type CatalogCacheRepository struct {
	client *redis.Client
	exp    time.Duration // expiration for the cached catalog
}

// NewCatalogCacheRepository creates a new repository instance with the given TTL.
func NewCatalogCacheRepository(client *redis.Client, expiration time.Duration) *CatalogCacheRepository {
	return &CatalogCacheRepository{
		client: client,
		exp:    expiration,
	}
}

// Get fetches the cached catalog. Returns an error on a miss.
func (r *CatalogCacheRepository) Get(ctx context.Context) ([]models.SweetDB, error) {
	val, err := r.client.Get(ctx, catalogCacheKey).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, fmt.Errorf("catalog not found in cache")
		}
		return nil, err
	}

	var sweets []models.SweetDB
	if err := json.Unmarshal([]byte(val), &sweets); err != nil {
		logger.Log.Errorw("failed to decode cached catalog", "error", err)
		return nil, err
	}

	logger.Log.Debugw("catalog cache hit", "key", catalogCacheKey, "count", len(sweets))
	return sweets, nil
}

// Set caches the catalog with the configured expiration.
func (r *CatalogCacheRepository) Set(ctx context.Context, sweets []models.SweetDB) error {
	data, err := json.Marshal(sweets)
	if err != nil {
		return err
	}

	err = r.client.Set(ctx, catalogCacheKey, data, r.exp).Err()

	logger.Log.Debugw("catalog cache set",
		"key", catalogCacheKey,
		"count", len(sweets),
		"error", err,
	)

	return err
}

// Invalidate drops the cached catalog. Called after every inventory write.
func (r *CatalogCacheRepository) Invalidate(ctx context.Context) error {
	err := r.client.Del(ctx, catalogCacheKey).Err()

	logger.Log.Debugw("catalog cache invalidate", "key", catalogCacheKey, "error", err)

	return err
}
