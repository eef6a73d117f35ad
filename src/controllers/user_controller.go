package controllers

import (
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/alumniconnect/Backend-Alumni-Connect/src/apperr"
	"github.com/alumniconnect/Backend-Alumni-Connect/src/lib"
	"github.com/alumniconnect/Backend-Alumni-Connect/src/middleware"
	"github.com/alumniconnect/Backend-Alumni-Connect/src/models"
)

// GetUsers lists the member directory. Optional ?role= filters by role.
func GetUsers(c *fiber.Ctx) error {
	filter := bson.M{}
	if role := c.Query("role"); role != "" {
		if !models.ValidRole(models.Role(role)) {
			return lib.ErrorJSON(c, apperr.New(apperr.CodeInvalid, "Invalid role"))
		}
		filter["role"] = role
	}

	cursor, err := lib.DB.Collection("users").Find(
		c.Context(),
		filter,
		options.Find().SetProjection(bson.M{"password": 0}).SetSort(bson.M{"date": -1}),
	)
	if err != nil {
		return lib.ErrorJSON(c, apperr.Wrap(err, apperr.CodeInternal, "list users failed"))
	}
	defer cursor.Close(c.Context())

	users := make([]models.User, 0)
	if err := cursor.All(c.Context(), &users); err != nil {
		return lib.ErrorJSON(c, apperr.Wrap(err, apperr.CodeInternal, "decode users failed"))
	}

	return c.JSON(users)
}

// GetPublicProfile returns another member's profile by id.
func GetPublicProfile(c *fiber.Ctx) error {
	id, err := parseObjectID(c, "id")
	if err != nil {
		return lib.ErrorJSON(c, err)
	}

	user, err := findUserByID(c, id)
	if err != nil {
		return lib.ErrorJSON(c, err)
	}

	user.Password = ""
	return c.JSON(user)
}

// GetSuggestedConnections lists members the authenticated user has no pair
// state with: not connected, nothing pending in either direction.
func GetSuggestedConnections(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	exclude := []primitive.ObjectID{user.Id}
	for _, e := range user.Connections {
		exclude = append(exclude, e.User)
	}
	for _, e := range user.SentRequests {
		exclude = append(exclude, e.User)
	}
	for _, e := range user.ReceivedRequests {
		exclude = append(exclude, e.User)
	}

	cursor, err := lib.DB.Collection("users").Find(
		c.Context(),
		bson.M{"_id": bson.M{"$nin": exclude}},
		options.Find().
			SetProjection(bson.M{"name": 1, "profilePicture": 1, "headline": 1, "role": 1}).
			SetLimit(5),
	)
	if err != nil {
		return lib.ErrorJSON(c, apperr.Wrap(err, apperr.CodeInternal, "list suggestions failed"))
	}
	defer cursor.Close(c.Context())

	suggestions := make([]models.UserDto, 0)
	if err := cursor.All(c.Context(), &suggestions); err != nil {
		return lib.ErrorJSON(c, apperr.Wrap(err, apperr.CodeInternal, "decode suggestions failed"))
	}

	return c.JSON(suggestions)
}
