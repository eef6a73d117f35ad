package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/alumniconnect/Backend-Alumni-Connect/src/controllers"
	"github.com/alumniconnect/Backend-Alumni-Connect/src/middleware"
)

// EventRoutes sets up event routes. Reads are public; creation, mutation,
// and RSVPs require authentication.
func EventRoutes(app *fiber.App) {
	event := app.Group("/api/events")

	event.Get("/", controllers.GetEvents)
	event.Post("/", middleware.ProtectRoute, controllers.CreateEvent)
	event.Get("/:id", controllers.GetEventByID)
	event.Put("/:id", middleware.ProtectRoute, controllers.UpdateEvent)
	event.Delete("/:id", middleware.ProtectRoute, controllers.DeleteEvent)
	event.Post("/:id/rsvp", middleware.ProtectRoute, controllers.RsvpToEvent)
}
