package controllers

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"

	"github.com/alumniconnect/Backend-Alumni-Connect/src/apperr"
	"github.com/alumniconnect/Backend-Alumni-Connect/src/lib"
	"github.com/alumniconnect/Backend-Alumni-Connect/src/middleware"
	"github.com/alumniconnect/Backend-Alumni-Connect/src/models"
)

// Register creates a new account, hashes the password, and returns a token.
func Register(c *fiber.Ctx) error {
	var body struct {
		Name     string      `json:"name" validate:"required"`
		Email    string      `json:"email" validate:"required,email"`
		Password string      `json:"password" validate:"required,min=6"`
		Role     models.Role `json:"role"`
	}
	if err := decodeBody(c, &body); err != nil {
		return lib.ErrorJSON(c, err)
	}

	if body.Role == "" {
		body.Role = models.RoleAlumni
	}
	if !models.ValidRole(body.Role) {
		return lib.ErrorJSON(c, apperr.New(apperr.CodeInvalid, "Invalid role"))
	}

	users := lib.DB.Collection("users")

	var existing models.User
	err := users.FindOne(c.Context(), bson.M{"email": body.Email}).Decode(&existing)
	if err == nil {
		return lib.ErrorJSON(c, apperr.New(apperr.CodeConflict, "Email already registered"))
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return lib.ErrorJSON(c, apperr.Wrap(err, apperr.CodeInternal, "lookup failed"))
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(body.Password), 11)
	if err != nil {
		return lib.ErrorJSON(c, apperr.Wrap(err, apperr.CodeInternal, "hash password failed"))
	}

	newUser := models.User{
		Id:               primitive.NewObjectID(),
		Name:             body.Name,
		Email:            body.Email,
		Password:         string(hashed),
		Role:             body.Role,
		Date:             time.Now(),
		Skills:           []string{},
		SentRequests:     []models.RequestEntry{},
		ReceivedRequests: []models.RequestEntry{},
		Connections:      []models.RequestEntry{},
	}

	// The unique index on email backstops the lookup above when two
	// registrations race.
	if _, err := users.InsertOne(c.Context(), newUser); err != nil {
		return lib.ErrorJSON(c, insertUserError(err))
	}

	token, err := lib.GenerateJWT(newUser.Id.Hex())
	if err != nil {
		return lib.ErrorJSON(c, apperr.Wrap(err, apperr.CodeInternal, "generate token failed"))
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"token": token})
}

// insertUserError maps a failed user insert to the API error, turning a
// duplicate-key violation on the email index into the conflict response.
func insertUserError(err error) error {
	if mongo.IsDuplicateKeyError(err) {
		return apperr.New(apperr.CodeConflict, "Email already registered")
	}
	return apperr.Wrap(err, apperr.CodeInternal, "create user failed")
}

// Login authenticates by email and password and returns a token.
func Login(c *fiber.Ctx) error {
	var body struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required"`
	}
	if err := decodeBody(c, &body); err != nil {
		return lib.ErrorJSON(c, err)
	}

	var user models.User
	err := lib.DB.Collection("users").FindOne(c.Context(), bson.M{"email": body.Email}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return lib.ErrorJSON(c, apperr.New(apperr.CodeInvalid, "Invalid credentials"))
		}
		return lib.ErrorJSON(c, apperr.Wrap(err, apperr.CodeInternal, "lookup failed"))
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(body.Password)); err != nil {
		return lib.ErrorJSON(c, apperr.New(apperr.CodeInvalid, "Invalid credentials"))
	}

	token, err := lib.GenerateJWT(user.Id.Hex())
	if err != nil {
		return lib.ErrorJSON(c, apperr.Wrap(err, apperr.CodeInternal, "generate token failed"))
	}

	return c.JSON(fiber.Map{"token": token})
}

// GetCurrentUser returns the authenticated user's document.
func GetCurrentUser(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)
	return c.JSON(user)
}
