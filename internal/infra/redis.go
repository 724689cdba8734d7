// README: Redis client initialization for the route cache.
package infra

import (
	"time"

	"github.com/redis/go-redis/v9"
)

// NewRedis builds a client with short timeouts; a slow cache should never hold up a quote.
func NewRedis(addr string) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:         addr,
		DialTimeout:  500 * time.Millisecond,
		ReadTimeout:  300 * time.Millisecond,
		WriteTimeout: 300 * time.Millisecond,
	})
}
