package routes

import (
	"github.com/gofiber/fiber/v2"

	"taskhub/interfaces/api/handlers"
	"taskhub/interfaces/api/middleware"
)

func SetupAuthRoutes(api fiber.Router, h *handlers.Handlers, jwtSecret string, limiter fiber.Handler) {
	auth := api.Group("/auth")

	auth.Post("/register", limiter, h.UserHandler.Register)
	auth.Post("/login", limiter, h.UserHandler.Login)

	auth.Get("/me", middleware.Protected(jwtSecret), h.UserHandler.GetProfile)
}
