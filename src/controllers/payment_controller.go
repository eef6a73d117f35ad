package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/alumniconnect/Backend-Alumni-Connect/src/apperr"
	"github.com/alumniconnect/Backend-Alumni-Connect/src/lib"
)

// CreatePaymentOrder registers a gateway order for the amount and hands the
// client what it needs to open the checkout.
func CreatePaymentOrder(c *fiber.Ctx) error {
	var body struct {
		Amount int64 `json:"amount" validate:"required,gt=0"`
	}
	if err := decodeBody(c, &body); err != nil {
		return lib.ErrorJSON(c, err)
	}

	order, err := lib.Gateway.CreateOrder(body.Amount)
	if err != nil {
		return lib.ErrorJSON(c, err)
	}

	return c.JSON(order)
}

// VerifyPayment checks the gateway callback signature. The donation flow
// only proceeds on a verified payment.
func VerifyPayment(c *fiber.Ctx) error {
	var body struct {
		OrderID   string `json:"razorpay_order_id" validate:"required"`
		PaymentID string `json:"razorpay_payment_id" validate:"required"`
		Signature string `json:"razorpay_signature" validate:"required"`
	}
	if err := decodeBody(c, &body); err != nil {
		return lib.ErrorJSON(c, err)
	}

	if !lib.Gateway.VerifySignature(body.OrderID, body.PaymentID, body.Signature) {
		return lib.ErrorJSON(c, apperr.New(apperr.CodeInvalid, "Payment verification failed"))
	}

	return c.JSON(fiber.Map{"success": true, "msg": "Payment successful"})
}
