package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/alumniconnect/Backend-Alumni-Connect/src/controllers"
	"github.com/alumniconnect/Backend-Alumni-Connect/src/middleware"
)

// ChatRoutes sets up the polling chat stub.
func ChatRoutes(app *fiber.App) {
	chat := app.Group("/api/chat", middleware.ProtectRoute)

	chat.Get("/messages/:id", controllers.GetMessages)
	chat.Post("/messages", controllers.SendMessage)
}
