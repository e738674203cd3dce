package routes

import (
	"github.com/gofiber/fiber/v2"

	"guid-gatherer/controllers"
)

func SetupAuthRoutes(api fiber.Router, authController *controllers.AuthController, guard fiber.Handler) {
	group := api.Group("/auth")
	group.Post("/register", authController.Register)
	group.Post("/login", authController.Login)
	group.Get("/me", guard, authController.Me)
}
