package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/alumniconnect/Backend-Alumni-Connect/src/controllers"
	"github.com/alumniconnect/Backend-Alumni-Connect/src/middleware"
)

// ProfileRoutes sets up routes for the authenticated user's own profile:
// reading, partial update, picture upload, and mentorship enrollment.
func ProfileRoutes(app *fiber.App) {
	profile := app.Group("/api/profile", middleware.ProtectRoute)

	profile.Get("/me", controllers.GetMyProfile)
	profile.Put("/", controllers.UpdateProfile)
	profile.Post("/picture", controllers.UploadProfilePicture)
	profile.Put("/mentorship", controllers.ToggleMentorship)
}
