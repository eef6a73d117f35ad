package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/alumniconnect/Backend-Alumni-Connect/src/controllers"
	"github.com/alumniconnect/Backend-Alumni-Connect/src/middleware"
)

// AuthRoutes sets up registration, login, and current-user routes.
func AuthRoutes(app *fiber.App) {
	auth := app.Group("/api/auth")

	auth.Post("/register", controllers.Register)
	auth.Post("/login", controllers.Login)
	auth.Get("/me", middleware.ProtectRoute, controllers.GetCurrentUser)
}
