package controllers

import (
	"errors"
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

func findProjectByID(c *fiber.Ctx, id primitive.ObjectID) (*models.Project, error) {
	var project models.Project
	err := lib.DB.Collection("projects").FindOne(c.Context(), bson.M{"_id": id}).Decode(&project)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperr.New(apperr.CodeNotFound, "Project not found")
		}
		return nil, apperr.Wrap(err, apperr.CodeInternal, "find project failed")
	}
	return &project, nil
}

// CreateProject creates a fundraising campaign owned by the caller.
func CreateProject(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	var body struct {
		Title       string `json:"title" validate:"required"`
		Description string `json:"description" validate:"required"`
		Goal        int64  `json:"goal" validate:"required,gt=0"`
		Category    string `json:"category" validate:"required"`
		Image       string `json:"image"`
	}
	if err := decodeBody(c, &body); err != nil {
		return lib.ErrorJSON(c, err)
	}

	project := models.Project{
		Id:          primitive.NewObjectID(),
		Title:       body.Title,
		Description: body.Description,
		Goal:        body.Goal,
		Raised:      0,
		Donors:      []primitive.ObjectID{},
		Donations:   []models.Donation{},
		Category:    body.Category,
		Image:       body.Image,
		CreatedBy:   user.Id,
		CreatedAt:   time.Now(),
	}

	if _, err := lib.DB.Collection("projects").InsertOne(c.Context(), project); err != nil {
		return lib.ErrorJSON(c, apperr.Wrap(err, apperr.CodeInternal, "create project failed"))
	}

	return c.Status(fiber.StatusCreated).JSON(project)
}

// GetProjects lists all campaigns, newest first.
func GetProjects(c *fiber.Ctx) error {
	cursor, err := lib.DB.Collection("projects").Find(
		c.Context(),
		bson.M{},
		options.Find().SetSort(bson.M{"createdAt": -1}),
	)
	if err != nil {
		return lib.ErrorJSON(c, apperr.Wrap(err, apperr.CodeInternal, "list projects failed"))
	}
	defer cursor.Close(c.Context())

	projects := make([]models.Project, 0)
	if err := cursor.All(c.Context(), &projects); err != nil {
		return lib.ErrorJSON(c, apperr.Wrap(err, apperr.CodeInternal, "decode projects failed"))
	}

	return c.JSON(projects)
}

// GetProjectByID returns one campaign.
func GetProjectByID(c *fiber.Ctx) error {
	id, err := parseObjectID(c, "id")
	if err != nil {
		return lib.ErrorJSON(c, err)
	}

	project, err := findProjectByID(c, id)
	if err != nil {
		return lib.ErrorJSON(c, err)
	}
	return c.JSON(project)
}

// UpdateProject applies a partial update. Owner only.
func UpdateProject(c *fiber.Ctx) error {
	id, err := parseObjectID(c, "id")
	if err != nil {
		return lib.ErrorJSON(c, err)
	}

	user := middleware.CurrentUser(c)
	project, err := findProjectByID(c, id)
	if err != nil {
		return lib.ErrorJSON(c, err)
	}
	if err := core.Authorize(user.Id, project.CreatedBy); err != nil {
		return lib.ErrorJSON(c, err)
	}

	var body struct {
		Title       *string `json:"title"`
		Description *string `json:"description"`
		Goal        *int64  `json:"goal" validate:"omitempty,gt=0"`
		Category    *string `json:"category"`
		Image       *string `json:"image"`
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
	if body.Goal != nil {
		set["goal"] = *body.Goal
	}
	if body.Category != nil {
		set["category"] = *body.Category
	}
	if body.Image != nil {
		set["image"] = *body.Image
	}

	if len(set) == 0 {
		return c.JSON(project)
	}

	var updated models.Project
	err = lib.DB.Collection("projects").FindOneAndUpdate(
		c.Context(),
		bson.M{"_id": id},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&updated)
	if err != nil {
		return lib.ErrorJSON(c, apperr.Wrap(err, apperr.CodeInternal, "update project failed"))
	}

	return c.JSON(updated)
}

// DeleteProject removes a campaign. Owner only.
func DeleteProject(c *fiber.Ctx) error {
	id, err := parseObjectID(c, "id")
	if err != nil {
		return lib.ErrorJSON(c, err)
	}

	user := middleware.CurrentUser(c)
	project, err := findProjectByID(c, id)
	if err != nil {
		return lib.ErrorJSON(c, err)
	}
	if err := core.Authorize(user.Id, project.CreatedBy); err != nil {
		return lib.ErrorJSON(c, err)
	}

	if _, err := lib.DB.Collection("projects").DeleteOne(c.Context(), bson.M{"_id": id}); err != nil {
		return lib.ErrorJSON(c, apperr.Wrap(err, apperr.CodeInternal, "delete project failed"))
	}

	return c.JSON(lib.MessageResponse("Project removed"))
}

// DonateToProject records a donation. The raised total, donor set, and
// donation records are updated in one atomic write, so concurrent
// donations never lose an increment.
func DonateToProject(c *fiber.Ctx) error {
	id, err := parseObjectID(c, "id")
	if err != nil {
		return lib.ErrorJSON(c, err)
	}

	user := middleware.CurrentUser(c)
	project, err := findProjectByID(c, id)
	if err != nil {
		return lib.ErrorJSON(c, err)
	}

	var body struct {
		Amount int64 `json:"amount"`
	}
	if err := c.BodyParser(&body); err != nil {
		return lib.ErrorJSON(c, core.ErrInvalidAmount)
	}

	now := time.Now()
	if err := core.Donate(project, user.Id, body.Amount, now); err != nil {
		return lib.ErrorJSON(c, err)
	}

	update := bson.M{
		"$inc":      bson.M{"raised": body.Amount},
		"$addToSet": bson.M{"donors": user.Id},
		"$push":     bson.M{"donations": models.Donation{Donor: user.Id, Amount: body.Amount, Date: now}},
	}
	if _, err := lib.DB.Collection("projects").UpdateOne(c.Context(), bson.M{"_id": id}, update); err != nil {
		return lib.ErrorJSON(c, apperr.Wrap(err, apperr.CodeInternal, "record donation failed"))
	}

	return c.JSON(project)
}

// UploadProjectImage stores a campaign image and returns its URL.
func UploadProjectImage(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		return lib.ErrorJSON(c, apperr.New(apperr.CodeInvalid, "No file uploaded"))
	}

	url, err := lib.Uploads.Save(fileHeader)
	if err != nil {
		return lib.ErrorJSON(c, err)
	}

	return c.JSON(fiber.Map{"imageUrl": url})
}
