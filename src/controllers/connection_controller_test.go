package controllers

import (
	"context"
	"io"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/alumniconnect/Backend-Alumni-Connect/src/lib"
	"github.com/alumniconnect/Backend-Alumni-Connect/src/logger"
	"github.com/alumniconnect/Backend-Alumni-Connect/src/models"
)

func TestMain(m *testing.M) {
	if _, err := logger.Init("error", "console"); err != nil {
		panic("failed to init logger: " + err.Error())
	}
	lib.JWTSecret = []byte("test-secret")
	os.Exit(m.Run())
}

// unreachableDB points lib.DB at a server nothing listens on, so every
// operation fails with a server selection error.
func unreachableDB(t *testing.T) {
	t.Helper()
	client, err := mongo.Connect(context.Background(),
		options.Client().
			ApplyURI("mongodb://127.0.0.1:1").
			SetServerSelectionTimeout(200*time.Millisecond).
			SetConnectTimeout(200*time.Millisecond))
	require.NoError(t, err)
	lib.DB = client.Database("alumniconnect_test")
	t.Cleanup(func() {
		_ = client.Disconnect(context.Background())
		lib.DB = nil
	})
}

// appWithUser registers handler behind a stand-in for ProtectRoute that
// attaches the given user.
func appWithUser(user models.User, method, path string, handler fiber.Handler) *fiber.App {
	app := fiber.New()
	app.Add(method, path, func(c *fiber.Ctx) error {
		c.Locals("user", user)
		return c.Next()
	}, handler)
	return app
}

func TestConnectionListsSurfacePersistenceFailure(t *testing.T) {
	unreachableDB(t)
	user := models.User{
		Id:               primitive.NewObjectID(),
		ReceivedRequests: []models.RequestEntry{{User: primitive.NewObjectID(), Date: time.Now()}},
	}

	app := appWithUser(user, fiber.MethodGet, "/requests", GetConnectionRequests)

	resp, err := app.Test(httptest.NewRequest("GET", "/requests", nil), 5000)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.JSONEq(t, `{"msg":"Server error"}`, string(body))
}

func TestConnectionListsEmptyWithoutEntries(t *testing.T) {
	// No entries means no lookup; the database is never touched.
	user := models.User{Id: primitive.NewObjectID()}

	app := appWithUser(user, fiber.MethodGet, "/", GetUserConnections)

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, string(body))
}

func TestListUpdateDocuments(t *testing.T) {
	id := primitive.NewObjectID()
	entry := models.RequestEntry{User: id, Date: time.Now()}

	// The same two update shapes drive both the forward writes and the
	// compensation when the second of a pair fails.
	assert.Equal(t,
		bson.M{"$push": bson.M{"receivedRequests": bson.M{"$each": bson.A{entry}, "$position": 0}}},
		prependTo("receivedRequests", entry))
	assert.Equal(t,
		bson.M{"$pull": bson.M{"sentRequests": bson.M{"user": id}}},
		pullFrom("sentRequests", id))
}

func TestSentRequestsSurfacePersistenceFailure(t *testing.T) {
	unreachableDB(t)
	user := models.User{
		Id:           primitive.NewObjectID(),
		SentRequests: []models.RequestEntry{{User: primitive.NewObjectID(), Date: time.Now()}},
	}

	app := appWithUser(user, fiber.MethodGet, "/sent", GetSentRequests)

	resp, err := app.Test(httptest.NewRequest("GET", "/sent", nil), 5000)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
}
