package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/alumniconnect/Backend-Alumni-Connect/src/controllers"
	"github.com/alumniconnect/Backend-Alumni-Connect/src/middleware"
)

// ProjectRoutes sets up fundraising campaign routes. Reads are public;
// creation, mutation, donations, and uploads require authentication.
func ProjectRoutes(app *fiber.App) {
	project := app.Group("/api/projects")

	project.Get("/", controllers.GetProjects)
	project.Post("/", middleware.ProtectRoute, controllers.CreateProject)
	project.Post("/upload", middleware.ProtectRoute, controllers.UploadProjectImage)
	project.Get("/:id", controllers.GetProjectByID)
	project.Put("/:id", middleware.ProtectRoute, controllers.UpdateProject)
	project.Delete("/:id", middleware.ProtectRoute, controllers.DeleteProject)
	project.Post("/:id/donate", middleware.ProtectRoute, controllers.DonateToProject)
}
