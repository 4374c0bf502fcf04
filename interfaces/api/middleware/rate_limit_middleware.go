package middleware

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	redispkg "taskhub/infrastructure/redis"
	"taskhub/pkg/logger"
	"taskhub/pkg/utils"
)

// RateLimit throttles a route with a fixed window counted in Redis, keyed
// by client IP and path. With a nil client (Redis disabled) or a Redis
// failure the request passes through; throttling is best-effort and never
// takes the API down with it.
func RateLimit(client *redispkg.Client, max int, window time.Duration) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if client == nil {
			return c.Next()
		}

		key := fmt.Sprintf("ratelimit:%s:%s", c.Path(), c.IP())
		count, err := client.IncrWithTTL(c.UserContext(), key, window)
		if err != nil {
			logger.WarnContext(c.UserContext(), "Rate limit check failed", "error", err)
			return c.Next()
		}

		if count > int64(max) {
			return utils.TooManyRequestsResponse(c, "Too many attempts, try again later")
		}

		return c.Next()
	}
}
