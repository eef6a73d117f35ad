package controllers

import (
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/alumniconnect/Backend-Alumni-Connect/src/apperr"
	"github.com/alumniconnect/Backend-Alumni-Connect/src/core"
	"github.com/alumniconnect/Backend-Alumni-Connect/src/lib"
	"github.com/alumniconnect/Backend-Alumni-Connect/src/middleware"
	"github.com/alumniconnect/Backend-Alumni-Connect/src/models"
)

func findEventByID(c *fiber.Ctx, id primitive.ObjectID) (*models.Event, error) {
	var event models.Event
	err := lib.DB.Collection("events").FindOne(c.Context(), bson.M{"_id": id}).Decode(&event)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperr.New(apperr.CodeNotFound, "Event not found")
		}
		return nil, apperr.Wrap(err, apperr.CodeInternal, "find event failed")
	}
	return &event, nil
}

// CreateEvent creates an event owned by the caller.
func CreateEvent(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	var body struct {
		Title        string    `json:"title" validate:"required"`
		Description  string    `json:"description" validate:"required"`
		Date         time.Time `json:"date" validate:"required"`
		Time         string    `json:"time"`
		Location     string    `json:"location"`
		MaxAttendees int       `json:"maxAttendees" validate:"gte=0"`
		Category     string    `json:"category"`
		Image        string    `json:"image"`
		IsVirtual    bool      `json:"isVirtual"`
	}
	if err := decodeBody(c, &body); err != nil {
		return lib.ErrorJSON(c, err)
	}

	event := models.Event{
		Id:           primitive.NewObjectID(),
		Title:        body.Title,
		Description:  body.Description,
		Date:         body.Date,
		Time:         body.Time,
		Location:     body.Location,
		MaxAttendees: body.MaxAttendees,
		Category:     body.Category,
		Image:        body.Image,
		IsVirtual:    body.IsVirtual,
		Attendees:    []primitive.ObjectID{},
		CreatedBy:    user.Id,
		CreatedAt:    time.Now(),
	}

	if _, err := lib.DB.Collection("events").InsertOne(c.Context(), event); err != nil {
		return lib.ErrorJSON(c, apperr.Wrap(err, apperr.CodeInternal, "create event failed"))
	}

	return c.Status(fiber.StatusCreated).JSON(event)
}

// GetEvents lists all events, latest date first.
func GetEvents(c *fiber.Ctx) error {
	cursor, err := lib.DB.Collection("events").Find(
		c.Context(),
		bson.M{},
		options.Find().SetSort(bson.M{"date": -1}),
	)
	if err != nil {
		return lib.ErrorJSON(c, apperr.Wrap(err, apperr.CodeInternal, "list events failed"))
	}
	defer cursor.Close(c.Context())

	events := make([]models.Event, 0)
	if err := cursor.All(c.Context(), &events); err != nil {
		return lib.ErrorJSON(c, apperr.Wrap(err, apperr.CodeInternal, "decode events failed"))
	}

	return c.JSON(events)
}

// GetEventByID returns one event.
func GetEventByID(c *fiber.Ctx) error {
	id, err := parseObjectID(c, "id")
	if err != nil {
		return lib.ErrorJSON(c, err)
	}

	event, err := findEventByID(c, id)
	if err != nil {
		return lib.ErrorJSON(c, err)
	}
	return c.JSON(event)
}

// UpdateEvent applies a partial update. Owner only.
func UpdateEvent(c *fiber.Ctx) error {
	id, err := parseObjectID(c, "id")
	if err != nil {
		return lib.ErrorJSON(c, err)
	}

	user := middleware.CurrentUser(c)
	event, err := findEventByID(c, id)
	if err != nil {
		return lib.ErrorJSON(c, err)
	}
	if err := core.Authorize(user.Id, event.CreatedBy); err != nil {
		return lib.ErrorJSON(c, err)
	}

	var body struct {
		Title        *string    `json:"title"`
		Description  *string    `json:"description"`
		Date         *time.Time `json:"date"`
		Time         *string    `json:"time"`
		Location     *string    `json:"location"`
		MaxAttendees *int       `json:"maxAttendees" validate:"omitempty,gte=0"`
		Category     *string    `json:"category"`
		Image        *string    `json:"image"`
		IsVirtual    *bool      `json:"isVirtual"`
	}
	if err := decodeBody(c, &body); err != nil {
		return lib.ErrorJSON(c, err)
	}

	set := bson.M{}
	if body.Title != nil {
		set["title"] = *body.Title
	}
	if body.Description != nil {
		set["description"] = *body.Description
	}
	if body.Date != nil {
		set["date"] = *body.Date
	}
	if body.Time != nil {
		set["time"] = *body.Time
	}
	if body.Location != nil {
		set["location"] = *body.Location
	}
	if body.MaxAttendees != nil {
		set["maxAttendees"] = *body.MaxAttendees
	}
	if body.Category != nil {
		set["category"] = *body.Category
	}
	if body.Image != nil {
		set["image"] = *body.Image
	}
	if body.IsVirtual != nil {
		set["isVirtual"] = *body.IsVirtual
	}

	if len(set) == 0 {
		return c.JSON(event)
	}

	var updated models.Event
	err = lib.DB.Collection("events").FindOneAndUpdate(
		c.Context(),
		bson.M{"_id": id},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&updated)
	if err != nil {
		return lib.ErrorJSON(c, apperr.Wrap(err, apperr.CodeInternal, "update event failed"))
	}

	return c.JSON(updated)
}

// DeleteEvent removes an event. Owner only.
func DeleteEvent(c *fiber.Ctx) error {
	id, err := parseObjectID(c, "id")
	if err != nil {
		return lib.ErrorJSON(c, err)
	}

	user := middleware.CurrentUser(c)
	event, err := findEventByID(c, id)
	if err != nil {
		return lib.ErrorJSON(c, err)
	}
	if err := core.Authorize(user.Id, event.CreatedBy); err != nil {
		return lib.ErrorJSON(c, err)
	}

	if _, err := lib.DB.Collection("events").DeleteOne(c.Context(), bson.M{"_id": id}); err != nil {
		return lib.ErrorJSON(c, apperr.Wrap(err, apperr.CodeInternal, "delete event failed"))
	}

	return c.JSON(lib.MessageResponse("Event removed"))
}

// RsvpToEvent adds the caller to the attendee list. The write is
// conditional on the caller being absent, so a concurrent duplicate RSVP
// loses cleanly. A confirmation mail is sent best-effort.
func RsvpToEvent(c *fiber.Ctx) error {
	id, err := parseObjectID(c, "id")
	if err != nil {
		return lib.ErrorJSON(c, err)
	}

	user := middleware.CurrentUser(c)
	event, err := findEventByID(c, id)
	if err != nil {
		return lib.ErrorJSON(c, err)
	}

	if err := core.RSVP(event, user.Id); err != nil {
		return lib.ErrorJSON(c, err)
	}

	res, err := lib.DB.Collection("events").UpdateOne(
		c.Context(),
		bson.M{"_id": id, "attendees": bson.M{"$ne": user.Id}},
		bson.M{"$push": bson.M{"attendees": bson.M{"$each": bson.A{user.Id}, "$position": 0}}},
	)
	if err != nil {
		return lib.ErrorJSON(c, apperr.Wrap(err, apperr.CodeInternal, "record RSVP failed"))
	}
	if res.ModifiedCount == 0 {
		return lib.ErrorJSON(c, core.ErrAlreadyRSVPed)
	}

	lib.Mail.SendAsync(user.Email,
		fmt.Sprintf("RSVP Confirmation for %s", event.Title),
		fmt.Sprintf("Hi %s,\n\nYou have successfully RSVP'd for the event: %s.\n\nWe look forward to seeing you there!\n", user.Name, event.Title))

	return c.JSON(event.Attendees)
}
