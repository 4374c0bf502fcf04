package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"

	redispkg "taskhub/infrastructure/redis"
	"taskhub/interfaces/api/handlers"
	"taskhub/interfaces/api/middleware"
	"taskhub/pkg/config"
)

// Deps carries everything route registration needs beyond the handlers.
type Deps struct {
	Config      *config.Config
	RedisClient *redispkg.Client // nil when Redis is disabled
}

func SetupRoutes(app *fiber.App, h *handlers.Handlers, deps Deps) {
	SetupHealthRoutes(app, deps)

	api := app.Group("/api/v1")

	SetupAuthRoutes(api, h, deps.Config.JWT.Secret, authRateLimiter(deps))
	SetupTaskRoutes(api, h, deps.Config.JWT.Secret)
}

func authRateLimiter(deps Deps) fiber.Handler {
	if !deps.Config.RateLimit.Enabled {
		return func(c *fiber.Ctx) error { return c.Next() }
	}
	window := time.Duration(deps.Config.RateLimit.WindowSeconds) * time.Second
	return middleware.RateLimit(deps.RedisClient, deps.Config.RateLimit.Max, window)
}
