package middleware

import (
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
)

// ValidateRateLimit caps card validation attempts per client IP using Redis.
// Card validation endpoints attract card-testing abuse, so the window is
// deliberately tight. Without Redis the limiter is a no-op, and it fails
// open on cache errors so a cache outage never blocks checkout.
func ValidateRateLimit(cache *redis.Client, maxPerMin int) fiber.Handler {
	if maxPerMin <= 0 {
		maxPerMin = 30
	}
	return func(c *fiber.Ctx) error {
		if cache == nil {
			return c.Next()
		}
		key := "rl:card_validate:" + c.IP()
		cnt, err := cache.Incr(c.UserContext(), key).Result()
		if err != nil {
			return c.Next()
		}
		if cnt == 1 {
			cache.Expire(c.UserContext(), key, time.Minute)
		}
		if cnt > int64(maxPerMin) {
			return fiber.NewError(http.StatusTooManyRequests, "too many validation attempts, try again later")
		}
		return c.Next()
	}
}
