package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/alumniconnect/Backend-Alumni-Connect/src/controllers"
	"github.com/alumniconnect/Backend-Alumni-Connect/src/middleware"
)

// ConnectionRoutes sets up connection request routes: sending, accepting,
// rejecting, listing both request directions, listing connections, and
// checking pair status.
func ConnectionRoutes(app *fiber.App) {
	connection := app.Group("/api/connections", middleware.ProtectRoute)

	connection.Post("/request/:userId", controllers.SendConnectionRequest)
	connection.Put("/accept/:userId", controllers.AcceptConnectionRequest)
	connection.Put("/reject/:userId", controllers.RejectConnectionRequest)
	connection.Get("/requests", controllers.GetConnectionRequests)
	connection.Get("/sent", controllers.GetSentRequests)
	connection.Get("/", controllers.GetUserConnections)
	connection.Get("/status/:userId", controllers.GetConnectionStatus)
}
