package controllers

import (
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/alumniconnect/Backend-Alumni-Connect/src/apperr"
	"github.com/alumniconnect/Backend-Alumni-Connect/src/core"
	"github.com/alumniconnect/Backend-Alumni-Connect/src/lib"
	"github.com/alumniconnect/Backend-Alumni-Connect/src/models"
)

func allProjects(c *fiber.Ctx) ([]models.Project, error) {
	cursor, err := lib.DB.Collection("projects").Find(c.Context(), bson.M{})
	if err != nil {
		return nil, apperr.Wrap(err, apperr.CodeInternal, "list projects failed")
	}
	defer cursor.Close(c.Context())

	projects := make([]models.Project, 0)
	if err := cursor.All(c.Context(), &projects); err != nil {
		return nil, apperr.Wrap(err, apperr.CodeInternal, "decode projects failed")
	}
	return projects, nil
}

// GetStats returns the donation dashboard aggregates, computed by scanning
// the full project set on demand.
func GetStats(c *fiber.Ctx) error {
	projects, err := allProjects(c)
	if err != nil {
		return lib.ErrorJSON(c, err)
	}
	return c.JSON(core.Stats(projects))
}

// GetCharts returns category distribution and monthly donation trends.
func GetCharts(c *fiber.Ctx) error {
	projects, err := allProjects(c)
	if err != nil {
		return lib.ErrorJSON(c, err)
	}
	return c.JSON(core.Charts(projects))
}
