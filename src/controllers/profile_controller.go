package controllers

import (
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"github.com/alumniconnect/Backend-Alumni-Connect/src/apperr"
	"github.com/alumniconnect/Backend-Alumni-Connect/src/lib"
	"github.com/alumniconnect/Backend-Alumni-Connect/src/logger"
	"github.com/alumniconnect/Backend-Alumni-Connect/src/middleware"
	"github.com/alumniconnect/Backend-Alumni-Connect/src/models"
)

// GetMyProfile returns the authenticated user's full profile.
func GetMyProfile(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)
	return c.JSON(user)
}

// UpdateProfile applies a partial profile update. Only fields present in
// the body are set; request lists and credentials are never touched here.
func UpdateProfile(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	var body struct {
		Name           *string                    `json:"name"`
		Email          *string                    `json:"email" validate:"omitempty,email"`
		Headline       *string                    `json:"headline"`
		Bio            *string                    `json:"bio"`
		Website        *string                    `json:"website"`
		Linkedin       *string                    `json:"linkedin"`
		Github         *string                    `json:"github"`
		Twitter        *string                    `json:"twitter"`
		Skills         *[]string                  `json:"skills"`
		Certifications *[]string                  `json:"certifications"`
		Interests      *[]string                  `json:"interests"`
		Experience     *[]models.Experience       `json:"experience"`
		Education      *[]models.Education        `json:"education"`
		Projects       *[]models.PortfolioProject `json:"projects"`
	}
	if err := decodeBody(c, &body); err != nil {
		return lib.ErrorJSON(c, err)
	}

	set := bson.M{}
	if body.Name != nil {
		set["name"] = *body.Name
	}
	if body.Email != nil {
		set["email"] = *body.Email
	}
	if body.Headline != nil {
		set["headline"] = *body.Headline
	}
	if body.Bio != nil {
		set["bio"] = *body.Bio
	}
	if body.Website != nil {
		set["website"] = *body.Website
	}
	if body.Linkedin != nil {
		set["linkedin"] = *body.Linkedin
	}
	if body.Github != nil {
		set["github"] = *body.Github
	}
	if body.Twitter != nil {
		set["twitter"] = *body.Twitter
	}
	if body.Skills != nil {
		set["skills"] = *body.Skills
	}
	if body.Certifications != nil {
		set["certifications"] = *body.Certifications
	}
	if body.Interests != nil {
		set["interests"] = *body.Interests
	}
	if body.Experience != nil {
		set["experience"] = *body.Experience
	}
	if body.Education != nil {
		set["education"] = *body.Education
	}
	if body.Projects != nil {
		set["projects"] = *body.Projects
	}

	if len(set) == 0 {
		return c.JSON(user)
	}

	users := lib.DB.Collection("users")
	var updated models.User
	err := users.FindOneAndUpdate(
		c.Context(),
		bson.M{"_id": user.Id},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&updated)
	if err != nil {
		return lib.ErrorJSON(c, apperr.Wrap(err, apperr.CodeInternal, "update profile failed"))
	}

	updated.Password = ""
	return c.JSON(updated)
}

// UploadProfilePicture stores a new profile picture and replaces the old one.
func UploadProfilePicture(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	fileHeader, err := c.FormFile("profilePicture")
	if err != nil {
		return lib.ErrorJSON(c, apperr.New(apperr.CodeInvalid, "No file uploaded"))
	}

	url, err := lib.Uploads.Save(fileHeader)
	if err != nil {
		return lib.ErrorJSON(c, err)
	}

	// Old picture is removed best-effort; a stale file is harmless.
	if user.ProfilePicture != "" {
		if err := lib.Uploads.Remove(user.ProfilePicture); err != nil {
			logger.L().Warn("remove old profile picture failed", zap.Error(err))
		}
	}

	_, err = lib.DB.Collection("users").UpdateOne(
		c.Context(),
		bson.M{"_id": user.Id},
		bson.M{"$set": bson.M{"profilePicture": url}},
	)
	if err != nil {
		return lib.ErrorJSON(c, apperr.Wrap(err, apperr.CodeInternal, "update profile picture failed"))
	}

	return c.JSON(fiber.Map{"profilePicture": url})
}

// ToggleMentorship flips the authenticated user's mentorship enrollment.
func ToggleMentorship(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	users := lib.DB.Collection("users")
	var updated models.User
	err := users.FindOneAndUpdate(
		c.Context(),
		bson.M{"_id": user.Id},
		bson.M{"$set": bson.M{"isEnrolledInMentorship": !user.IsEnrolledInMentorship}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&updated)
	if err != nil {
		return lib.ErrorJSON(c, apperr.Wrap(err, apperr.CodeInternal, "update mentorship failed"))
	}

	updated.Password = ""
	return c.JSON(updated)
}
