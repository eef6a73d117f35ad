package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/alumniconnect/Backend-Alumni-Connect/src/controllers"
)

// PaymentRoutes sets up gateway order creation and signature verification.
func PaymentRoutes(app *fiber.App) {
	payment := app.Group("/api/payment")

	payment.Post("/razorpay", controllers.CreatePaymentOrder)
	payment.Post("/verification", controllers.VerifyPayment)
}
