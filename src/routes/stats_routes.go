package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/alumniconnect/Backend-Alumni-Connect/src/controllers"
)

// StatsRoutes sets up the public donation statistics routes.
func StatsRoutes(app *fiber.App) {
	stats := app.Group("/api/stats")

	stats.Get("/", controllers.GetStats)
	stats.Get("/charts", controllers.GetCharts)
}
