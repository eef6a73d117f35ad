package controllers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/alumniconnect/Backend-Alumni-Connect/src/lib"
	"github.com/alumniconnect/Backend-Alumni-Connect/src/middleware"
	"github.com/alumniconnect/Backend-Alumni-Connect/src/models"
)

// The chat surface is a polling stub: no messages are stored and no
// real-time transport exists. Both endpoints validate the counterpart user
// and answer with placeholder data.

// GetMessages returns the stub conversation with the given user.
func GetMessages(c *fiber.Ctx) error {
	otherID, err := parseObjectID(c, "id")
	if err != nil {
		return lib.ErrorJSON(c, err)
	}

	user := middleware.CurrentUser(c)
	other, err := findUserByID(c, otherID)
	if err != nil {
		return lib.ErrorJSON(c, err)
	}

	messages := []models.Message{
		{
			Sender:    other.Id,
			Receiver:  user.Id,
			Text:      "Hi there!",
			CreatedAt: time.Now().Add(-time.Minute),
		},
		{
			Sender:    user.Id,
			Receiver:  other.Id,
			Text:      "Hello! How are you?",
			CreatedAt: time.Now(),
		},
	}

	return c.JSON(messages)
}

// SendMessage echoes the sent message back without storing it.
func SendMessage(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	var body struct {
		ReceiverID string `json:"receiverId" validate:"required"`
		Text       string `json:"text" validate:"required"`
	}
	if err := decodeBody(c, &body); err != nil {
		return lib.ErrorJSON(c, err)
	}

	receiverID, err := parseObjectIDString(body.ReceiverID)
	if err != nil {
		return lib.ErrorJSON(c, err)
	}
	receiver, err := findUserByID(c, receiverID)
	if err != nil {
		return lib.ErrorJSON(c, err)
	}

	message := models.Message{
		Sender:    user.Id,
		Receiver:  receiver.Id,
		Text:      body.Text,
		CreatedAt: time.Now(),
	}

	return c.JSON(message)
}
