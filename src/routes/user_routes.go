package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/alumniconnect/Backend-Alumni-Connect/src/controllers"
	"github.com/alumniconnect/Backend-Alumni-Connect/src/middleware"
)

// UserRoutes sets up the member directory, suggestions, and public profiles.
// Reads are public except suggestions, which depend on the caller's state.
func UserRoutes(app *fiber.App) {
	user := app.Group("/api/users")

	user.Get("/", controllers.GetUsers)
	user.Get("/suggestions", middleware.ProtectRoute, controllers.GetSuggestedConnections)
	user.Get("/:id", controllers.GetPublicProfile)
}
