package core

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/alumniconnect/Backend-Alumni-Connect/src/models"
)

func newUser(role models.Role) *models.User {
	return &models.User{Id: primitive.NewObjectID(), Role: role}
}

func TestConnectCreatesSymmetricPendingPair(t *testing.T) {
	a := newUser(models.RoleStudent)
	b := newUser(models.RoleAlumni)
	now := time.Now()

	require.NoError(t, Connect(a, b, now))

	require.Len(t, a.SentRequests, 1)
	require.Len(t, b.ReceivedRequests, 1)
	assert.Equal(t, b.Id, a.SentRequests[0].User)
	assert.Equal(t, a.Id, b.ReceivedRequests[0].User)
	assert.Equal(t, now, a.SentRequests[0].Date)

	assert.Empty(t, a.Connections)
	assert.Empty(t, b.Connections)
	assert.Equal(t, StatusPending, StatusBetween(a, b.Id))
	assert.Equal(t, StatusReceived, StatusBetween(b, a.Id))
}

func TestConnectToSelfFails(t *testing.T) {
	a := newUser(models.RoleAlumni)

	err := Connect(a, a, time.Now())

	require.ErrorIs(t, err, ErrSelfRequest)
	assert.Empty(t, a.SentRequests)
	assert.Empty(t, a.ReceivedRequests)
}

func TestConnectTwiceFailsAndLeavesStateUnchanged(t *testing.T) {
	a := newUser(models.RoleStudent)
	b := newUser(models.RoleAlumni)

	require.NoError(t, Connect(a, b, time.Now()))
	err := Connect(a, b, time.Now())

	require.ErrorIs(t, err, ErrRequestAlreadySent)
	assert.Len(t, a.SentRequests, 1)
	assert.Len(t, b.ReceivedRequests, 1)
}

func TestCrossingRequestsDoNotAutoConnect(t *testing.T) {
	a := newUser(models.RoleStudent)
	b := newUser(models.RoleAlumni)

	require.NoError(t, Connect(a, b, time.Now()))
	err := Connect(b, a, time.Now())

	// The second caller must be told to accept the existing request.
	require.ErrorIs(t, err, ErrRequestAlreadyReceived)
	assert.Len(t, b.SentRequests, 0)
	assert.Len(t, a.ReceivedRequests, 0)
	assert.Empty(t, a.Connections)
	assert.Empty(t, b.Connections)
}

func TestConnectWhenAlreadyConnectedFails(t *testing.T) {
	a := newUser(models.RoleStudent)
	b := newUser(models.RoleAlumni)

	require.NoError(t, Connect(a, b, time.Now()))
	require.NoError(t, Accept(b, a, time.Now()))

	require.ErrorIs(t, Connect(a, b, time.Now()), ErrAlreadyConnected)
	require.ErrorIs(t, Connect(b, a, time.Now()), ErrAlreadyConnected)
}

func TestAcceptMovesPairToConnected(t *testing.T) {
	a := newUser(models.RoleStudent)
	b := newUser(models.RoleAlumni)

	require.NoError(t, Connect(a, b, time.Now()))
	require.NoError(t, Accept(b, a, time.Now()))

	require.Len(t, a.Connections, 1)
	require.Len(t, b.Connections, 1)
	assert.Equal(t, b.Id, a.Connections[0].User)
	assert.Equal(t, a.Id, b.Connections[0].User)

	assert.Empty(t, a.SentRequests)
	assert.Empty(t, a.ReceivedRequests)
	assert.Empty(t, b.SentRequests)
	assert.Empty(t, b.ReceivedRequests)

	assert.Equal(t, StatusConnected, StatusBetween(a, b.Id))
	assert.Equal(t, StatusConnected, StatusBetween(b, a.Id))
}

func TestAcceptWithoutRequestFails(t *testing.T) {
	a := newUser(models.RoleStudent)
	b := newUser(models.RoleAlumni)

	require.ErrorIs(t, Accept(b, a, time.Now()), ErrNoSuchRequest)
}

func TestAcceptByWrongSideFails(t *testing.T) {
	a := newUser(models.RoleStudent)
	b := newUser(models.RoleAlumni)

	require.NoError(t, Connect(a, b, time.Now()))

	// The requester cannot accept their own request.
	require.ErrorIs(t, Accept(a, b, time.Now()), ErrNoSuchRequest)
	assert.Len(t, a.SentRequests, 1)
	assert.Len(t, b.ReceivedRequests, 1)
}

func TestRejectResetsPairToNone(t *testing.T) {
	a := newUser(models.RoleStudent)
	b := newUser(models.RoleAlumni)

	require.NoError(t, Connect(a, b, time.Now()))
	require.NoError(t, Reject(b, a))

	assert.Empty(t, a.SentRequests)
	assert.Empty(t, b.ReceivedRequests)
	assert.Empty(t, a.Connections)
	assert.Empty(t, b.Connections)
	assert.Equal(t, StatusNone, StatusBetween(a, b.Id))

	// After a reject the requester may try again.
	require.NoError(t, Connect(a, b, time.Now()))
	assert.Len(t, a.SentRequests, 1)
	assert.Len(t, b.ReceivedRequests, 1)
}

func TestRejectWithoutRequestFails(t *testing.T) {
	a := newUser(models.RoleStudent)
	b := newUser(models.RoleAlumni)

	require.ErrorIs(t, Reject(b, a), ErrNoSuchRequest)
}

func TestRequestListsAreMostRecentFirst(t *testing.T) {
	b := newUser(models.RoleAlumni)
	first := newUser(models.RoleStudent)
	second := newUser(models.RoleStudent)

	require.NoError(t, Connect(first, b, time.Now()))
	require.NoError(t, Connect(second, b, time.Now()))

	require.Len(t, b.ReceivedRequests, 2)
	assert.Equal(t, second.Id, b.ReceivedRequests[0].User)
	assert.Equal(t, first.Id, b.ReceivedRequests[1].User)
}

func TestAcceptKeepsUnrelatedRequests(t *testing.T) {
	b := newUser(models.RoleAlumni)
	a := newUser(models.RoleStudent)
	c := newUser(models.RoleStudent)

	require.NoError(t, Connect(a, b, time.Now()))
	require.NoError(t, Connect(c, b, time.Now()))
	require.NoError(t, Accept(b, a, time.Now()))

	require.Len(t, b.ReceivedRequests, 1)
	assert.Equal(t, c.Id, b.ReceivedRequests[0].User)
	require.Len(t, b.Connections, 1)
}
