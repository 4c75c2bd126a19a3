// File: database/repository/service/cache.go
package serviceRepo

import (
	"context"
	"time"

	"salonbook/metrics"
	"salonbook/models"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const categoryKeyPrefix = "service:category:"

// CachedCategoryResolver answers category lookups from redis and falls back to next for misses.
// Redis errors degrade to a full lookup rather than failing the request.
type CachedCategoryResolver struct {
	next   CategoryResolver
	client *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

func NewCachedCategoryResolver(next CategoryResolver, client *redis.Client, ttl time.Duration, logger *zap.Logger) *CachedCategoryResolver {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CachedCategoryResolver{next: next, client: client, ttl: ttl, logger: logger}
}

func categoryKey(serviceID string) string {
	return categoryKeyPrefix + serviceID
}

func (c *CachedCategoryResolver) FindServiceCategories(ctx context.Context, serviceIDs []string) ([]models.ServiceCategory, error) {
	if len(serviceIDs) == 0 {
		return nil, nil
	}

	keys := make([]string, len(serviceIDs))
	for i, id := range serviceIDs {
		keys[i] = categoryKey(id)
	}

	var out []models.ServiceCategory
	missing := serviceIDs

	vals, err := c.client.MGet(ctx, keys...).Result()
	if err != nil {
		c.logger.Warn("category cache read failed", zap.Error(err))
	} else {
		missing = nil
		for i, v := range vals {
			if s, ok := v.(string); ok && s != "" {
				out = append(out, models.ServiceCategory{ServiceID: serviceIDs[i], CategoryID: s})
				metrics.RecordCategoryCacheLookup(true)
				continue
			}
			missing = append(missing, serviceIDs[i])
			metrics.RecordCategoryCacheLookup(false)
		}
	}

	if len(missing) == 0 {
		return out, nil
	}

	fetched, err := c.next.FindServiceCategories(ctx, missing)
	if err != nil {
		return nil, err
	}
	for _, m := range fetched {
		if m.CategoryID == "" {
			continue
		}
		if err := c.client.Set(ctx, categoryKey(m.ServiceID), m.CategoryID, c.ttl).Err(); err != nil {
			c.logger.Warn("category cache write failed", zap.String("serviceId", m.ServiceID), zap.Error(err))
		}
	}
	return append(out, fetched...), nil
}
