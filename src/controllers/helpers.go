package controllers

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/alumniconnect/Backend-Alumni-Connect/src/apperr"
	"github.com/alumniconnect/Backend-Alumni-Connect/src/lib"
	"github.com/alumniconnect/Backend-Alumni-Connect/src/models"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// parseObjectID parses a path parameter as a Mongo object id.
func parseObjectID(c *fiber.Ctx, param string) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(c.Params(param))
	if err != nil {
		return primitive.NilObjectID, apperr.New(apperr.CodeInvalid, "Invalid id format")
	}
	return id, nil
}

// parseObjectIDString parses a body field as a Mongo object id.
func parseObjectIDString(s string) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(s)
	if err != nil {
		return primitive.NilObjectID, apperr.New(apperr.CodeInvalid, "Invalid id format")
	}
	return id, nil
}

// decodeBody parses the JSON body into dst and validates it. Malformed
// shapes are rejected at the boundary.
func decodeBody(c *fiber.Ctx, dst interface{}) error {
	if err := c.BodyParser(dst); err != nil {
		return apperr.New(apperr.CodeInvalid, "Invalid request body")
	}
	if err := validate.Struct(dst); err != nil {
		return apperr.New(apperr.CodeInvalid, "Invalid request body")
	}
	return nil
}

// findUserByID loads one user document.
func findUserByID(c *fiber.Ctx, id primitive.ObjectID) (*models.User, error) {
	var user models.User
	err := lib.DB.Collection("users").FindOne(c.Context(), bson.M{"_id": id}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperr.New(apperr.CodeNotFound, "User not found")
		}
		return nil, apperr.Wrap(err, apperr.CodeInternal, "find user failed")
	}
	return &user, nil
}
