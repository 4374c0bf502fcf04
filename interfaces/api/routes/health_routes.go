package routes

import (
	"github.com/gofiber/fiber/v2"
)

func SetupHealthRoutes(app *fiber.App, deps Deps) {
	app.Get("/health", func(c *fiber.Ctx) error {
		status := fiber.Map{
			"status":  "ok",
			"service": deps.Config.App.Name,
		}
		if deps.RedisClient != nil {
			if err := deps.RedisClient.Ping(c.UserContext()); err != nil {
				status["redis"] = "down"
			} else {
				status["redis"] = "ok"
			}
		}
		return c.JSON(status)
	})
}
