package controllers

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"github.com/alumniconnect/Backend-Alumni-Connect/src/apperr"
	"github.com/alumniconnect/Backend-Alumni-Connect/src/core"
	"github.com/alumniconnect/Backend-Alumni-Connect/src/lib"
	"github.com/alumniconnect/Backend-Alumni-Connect/src/logger"
	"github.com/alumniconnect/Backend-Alumni-Connect/src/middleware"
	"github.com/alumniconnect/Backend-Alumni-Connect/src/models"
)

// Request and connection lists are embedded in the two user documents, so
// every transition below writes both documents. The writes are not a single
// transaction; when the second write fails the first is compensated, in the
// reverse order it was applied.

func prependTo(field string, entry models.RequestEntry) bson.M {
	return bson.M{"$push": bson.M{field: bson.M{"$each": bson.A{entry}, "$position": 0}}}
}

func pullFrom(field string, id primitive.ObjectID) bson.M {
	return bson.M{"$pull": bson.M{field: bson.M{"user": id}}}
}

// SendConnectionRequest records a pending request from the authenticated
// user to the target user on both documents.
func SendConnectionRequest(c *fiber.Ctx) error {
	targetID, err := parseObjectID(c, "userId")
	if err != nil {
		return lib.ErrorJSON(c, err)
	}

	user := middleware.CurrentUser(c)
	target, err := findUserByID(c, targetID)
	if err != nil {
		return lib.ErrorJSON(c, err)
	}

	now := time.Now()
	if err := core.Connect(&user, target, now); err != nil {
		return lib.ErrorJSON(c, err)
	}

	users := lib.DB.Collection("users")
	_, err = users.UpdateOne(c.Context(), bson.M{"_id": user.Id},
		prependTo("sentRequests", models.RequestEntry{User: target.Id, Date: now}))
	if err != nil {
		return lib.ErrorJSON(c, apperr.Wrap(err, apperr.CodeInternal, "send request failed"))
	}

	_, err = users.UpdateOne(c.Context(), bson.M{"_id": target.Id},
		prependTo("receivedRequests", models.RequestEntry{User: user.Id, Date: now}))
	if err != nil {
		// Compensate the requester-side write.
		if _, rbErr := users.UpdateOne(c.Context(), bson.M{"_id": user.Id},
			pullFrom("sentRequests", target.Id)); rbErr != nil {
			logger.L().Error("rollback of sent request failed",
				zap.String("user", user.Id.Hex()), zap.Error(rbErr))
		}
		return lib.ErrorJSON(c, apperr.Wrap(err, apperr.CodeInternal, "send request failed"))
	}

	lib.Mail.SendAsync(target.Email,
		"New connection request",
		fmt.Sprintf("Hi %s,\n\n%s would like to connect with you on AlumniConnect.\n", target.Name, user.Name))

	return c.Status(fiber.StatusCreated).JSON(lib.MessageResponse("Connection request sent"))
}

// AcceptConnectionRequest turns a pending request from the given user into
// a mutual connection.
func AcceptConnectionRequest(c *fiber.Ctx) error {
	requesterID, err := parseObjectID(c, "userId")
	if err != nil {
		return lib.ErrorJSON(c, err)
	}

	user := middleware.CurrentUser(c)
	requester, err := findUserByID(c, requesterID)
	if err != nil {
		return lib.ErrorJSON(c, err)
	}

	now := time.Now()
	if err := core.Accept(&user, requester, now); err != nil {
		return lib.ErrorJSON(c, err)
	}

	users := lib.DB.Collection("users")
	accepterUpdate := bson.M{
		"$pull": bson.M{"receivedRequests": bson.M{"user": requester.Id}},
		"$push": bson.M{"connections": bson.M{"$each": bson.A{models.RequestEntry{User: requester.Id, Date: now}}, "$position": 0}},
	}
	requesterUpdate := bson.M{
		"$pull": bson.M{"sentRequests": bson.M{"user": user.Id}},
		"$push": bson.M{"connections": bson.M{"$each": bson.A{models.RequestEntry{User: user.Id, Date: now}}, "$position": 0}},
	}

	if _, err := users.UpdateOne(c.Context(), bson.M{"_id": user.Id}, accepterUpdate); err != nil {
		return lib.ErrorJSON(c, apperr.Wrap(err, apperr.CodeInternal, "accept request failed"))
	}

	if _, err := users.UpdateOne(c.Context(), bson.M{"_id": requester.Id}, requesterUpdate); err != nil {
		// Compensate the accepter-side write.
		revert := bson.M{
			"$pull": bson.M{"connections": bson.M{"user": requester.Id}},
			"$push": bson.M{"receivedRequests": bson.M{"$each": bson.A{models.RequestEntry{User: requester.Id, Date: now}}, "$position": 0}},
		}
		if _, rbErr := users.UpdateOne(c.Context(), bson.M{"_id": user.Id}, revert); rbErr != nil {
			logger.L().Error("rollback of accepted request failed",
				zap.String("user", user.Id.Hex()), zap.Error(rbErr))
		}
		return lib.ErrorJSON(c, apperr.Wrap(err, apperr.CodeInternal, "accept request failed"))
	}

	lib.Mail.SendAsync(requester.Email,
		"Connection request accepted",
		fmt.Sprintf("Hi %s,\n\n%s accepted your connection request on AlumniConnect.\n", requester.Name, user.Name))

	return c.JSON(lib.MessageResponse("Connection accepted"))
}

// RejectConnectionRequest drops a pending request from the given user.
// The pair returns to an unconnected state and may request again.
func RejectConnectionRequest(c *fiber.Ctx) error {
	requesterID, err := parseObjectID(c, "userId")
	if err != nil {
		return lib.ErrorJSON(c, err)
	}

	user := middleware.CurrentUser(c)
	requester, err := findUserByID(c, requesterID)
	if err != nil {
		return lib.ErrorJSON(c, err)
	}

	var requestedAt time.Time
	for _, e := range user.ReceivedRequests {
		if e.User == requester.Id {
			requestedAt = e.Date
			break
		}
	}

	if err := core.Reject(&user, requester); err != nil {
		return lib.ErrorJSON(c, err)
	}

	users := lib.DB.Collection("users")
	if _, err := users.UpdateOne(c.Context(), bson.M{"_id": user.Id},
		pullFrom("receivedRequests", requester.Id)); err != nil {
		return lib.ErrorJSON(c, apperr.Wrap(err, apperr.CodeInternal, "reject request failed"))
	}

	if _, err := users.UpdateOne(c.Context(), bson.M{"_id": requester.Id},
		pullFrom("sentRequests", user.Id)); err != nil {
		// Compensate the rejecter-side write.
		if _, rbErr := users.UpdateOne(c.Context(), bson.M{"_id": user.Id},
			prependTo("receivedRequests", models.RequestEntry{User: requester.Id, Date: requestedAt})); rbErr != nil {
			logger.L().Error("rollback of rejected request failed",
				zap.String("user", user.Id.Hex()), zap.Error(rbErr))
		}
		return lib.ErrorJSON(c, apperr.Wrap(err, apperr.CodeInternal, "reject request failed"))
	}

	return c.JSON(lib.MessageResponse("Connection request rejected"))
}

// GetConnectionRequests lists pending requests received by the
// authenticated user, most recent first, with sender details populated.
func GetConnectionRequests(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)
	entries, err := populateEntries(c, user.ReceivedRequests)
	if err != nil {
		return lib.ErrorJSON(c, err)
	}
	return c.JSON(entries)
}

// GetSentRequests lists pending requests the authenticated user has sent.
func GetSentRequests(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)
	entries, err := populateEntries(c, user.SentRequests)
	if err != nil {
		return lib.ErrorJSON(c, err)
	}
	return c.JSON(entries)
}

// GetUserConnections lists the authenticated user's connections with peer
// details populated.
func GetUserConnections(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)
	entries, err := populateEntries(c, user.Connections)
	if err != nil {
		return lib.ErrorJSON(c, err)
	}
	return c.JSON(entries)
}

// GetConnectionStatus reports the pair state between the authenticated
// user and the target user.
func GetConnectionStatus(c *fiber.Ctx) error {
	targetID, err := parseObjectID(c, "userId")
	if err != nil {
		return lib.ErrorJSON(c, err)
	}

	user := middleware.CurrentUser(c)
	if user.Id == targetID {
		return lib.ErrorJSON(c, apperr.New(apperr.CodeInvalid, "Cannot check connection status with yourself"))
	}

	return c.JSON(fiber.Map{"status": core.StatusBetween(&user, targetID)})
}

// populatedEntry pairs a request entry with its user's listing details.
type populatedEntry struct {
	User models.UserDto `json:"user"`
	Date time.Time      `json:"date"`
}

// populateEntries resolves the users behind request entries, preserving
// list order. Entries whose user no longer exists are dropped; orphaned
// references are tolerated, lookup failures are not.
func populateEntries(c *fiber.Ctx, entries []models.RequestEntry) ([]populatedEntry, error) {
	out := make([]populatedEntry, 0, len(entries))
	if len(entries) == 0 {
		return out, nil
	}

	ids := make([]primitive.ObjectID, 0, len(entries))
	for _, e := range entries {
		ids = append(ids, e.User)
	}

	cursor, err := lib.DB.Collection("users").Find(
		c.Context(),
		bson.M{"_id": bson.M{"$in": ids}},
		options.Find().SetProjection(bson.M{"name": 1, "profilePicture": 1, "headline": 1, "role": 1}),
	)
	if err != nil {
		return nil, apperr.Wrap(err, apperr.CodeInternal, "populate request entries failed")
	}
	defer cursor.Close(c.Context())

	var found []models.UserDto
	if err := cursor.All(c.Context(), &found); err != nil {
		return nil, apperr.Wrap(err, apperr.CodeInternal, "decode request entries failed")
	}

	byID := make(map[primitive.ObjectID]models.UserDto, len(found))
	for _, u := range found {
		byID[u.ID] = u
	}

	for _, e := range entries {
		if dto, ok := byID[e.User]; ok {
			out = append(out, populatedEntry{User: dto, Date: e.Date})
		}
	}
	return out, nil
}
