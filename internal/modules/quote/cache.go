// README: Redis-backed cache in front of a RouteResolver.
package quote

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"nexaride/internal/modules/pricing"
)

const (
	routeKeyPrefix  = "nexaride:route:"
	DefaultRouteTTL = 6 * time.Hour
)

// RouteCache is the slice of the Redis client the resolver uses. *redis.Client
// satisfies it.
type RouteCache interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
}

// CachedResolver serves repeated routes from Redis. Only successful resolutions are
// stored; Redis errors fall through to the inner resolver.
type CachedResolver struct {
	inner  RouteResolver
	redis  RouteCache
	ttl    time.Duration
	logger *zap.Logger
}

func NewCachedResolver(inner RouteResolver, rdb RouteCache, ttl time.Duration, logger *zap.Logger) *CachedResolver {
	if ttl <= 0 {
		ttl = DefaultRouteTTL
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CachedResolver{inner: inner, redis: rdb, ttl: ttl, logger: logger}
}

type cachedRoute struct {
	DistanceKm      float64 `json:"distance_km"`
	DurationMinutes float64 `json:"duration_min"`
	WaypointCount   int     `json:"waypoints"`
}

func (c *CachedResolver) Resolve(ctx context.Context, pickup, destination string, stops []string) (pricing.RouteMetrics, error) {
	key := RouteCacheKey(pickup, destination, stops)

	raw, err := c.redis.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		var cr cachedRoute
		if jerr := json.Unmarshal(raw, &cr); jerr == nil {
			return pricing.RouteMetrics{
				DistanceKm:      cr.DistanceKm,
				DurationMinutes: cr.DurationMinutes,
				WaypointCount:   cr.WaypointCount,
				Source:          pricing.SourceRouted,
			}, nil
		}
		c.logger.Warn("discarding unreadable route cache entry", zap.String("key", key))
	case errors.Is(err, redis.Nil):
	default:
		c.logger.Warn("route cache read failed", zap.Error(err))
	}

	m, err := c.inner.Resolve(ctx, pickup, destination, stops)
	if err != nil {
		return m, err
	}

	payload, _ := json.Marshal(cachedRoute{
		DistanceKm:      m.DistanceKm,
		DurationMinutes: m.DurationMinutes,
		WaypointCount:   m.WaypointCount,
	})
	if err := c.redis.Set(ctx, key, payload, c.ttl).Err(); err != nil {
		c.logger.Warn("route cache write failed", zap.Error(err))
	}
	return m, nil
}

// RouteCacheKey hashes the normalized (pickup, destination, stops) tuple. Case and
// whitespace differences map to the same key; stop order does not.
func RouteCacheKey(pickup, destination string, stops []string) string {
	parts := make([]string, 0, len(stops)+2)
	parts = append(parts, normalizePlace(pickup), normalizePlace(destination))
	for _, s := range stops {
		parts = append(parts, normalizePlace(s))
	}
	sum := sha256.Sum256([]byte(strings.Join(parts, "\x1f")))
	return routeKeyPrefix + hex.EncodeToString(sum[:])
}

func normalizePlace(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}
