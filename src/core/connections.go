// Package core holds the pure domain logic of the alumni network: the
// connection state machine, the donation ledger, and the RSVP registry.
// Functions mutate the documents they are handed and return coded errors;
// persistence stays with the callers.
package core

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/alumniconnect/Backend-Alumni-Connect/src/apperr"
	"github.com/alumniconnect/Backend-Alumni-Connect/src/models"
)

// Connection errors. All preconditions are checked before any mutation, so
// a returned error means both documents are untouched.
var (
	ErrSelfRequest            = apperr.New(apperr.CodeInvalid, "You can't send a connection request to yourself")
	ErrAlreadyConnected       = apperr.New(apperr.CodeConflict, "You are already connected with this user")
	ErrRequestAlreadySent     = apperr.New(apperr.CodeConflict, "A connection request was already sent to this user")
	ErrRequestAlreadyReceived = apperr.New(apperr.CodeConflict, "This user already sent you a request; accept it instead")
	ErrNoSuchRequest          = apperr.New(apperr.CodeNotFound, "Connection request not found")
)

// ConnectionStatus describes the relationship between two users as seen
// from one side of the pair.
type ConnectionStatus string

const (
	StatusNone      ConnectionStatus = "not_connected"
	StatusPending   ConnectionStatus = "pending"  // viewer sent, awaiting the other side
	StatusReceived  ConnectionStatus = "received" // the other side sent, viewer should accept/reject
	StatusConnected ConnectionStatus = "connected"
)

// Connect records a pending request from requester to target on both
// documents. The pair must be in the none state: a connection, an
// outstanding request in either direction, all block a new request. When
// both sides have raced to request each other, the later caller gets
// ErrRequestAlreadyReceived rather than an auto-connect.
func Connect(requester, target *models.User, now time.Time) error {
	if requester.Id == target.Id {
		return ErrSelfRequest
	}
	if requester.HasConnection(target.Id) {
		return ErrAlreadyConnected
	}
	if requester.HasSentRequest(target.Id) {
		return ErrRequestAlreadySent
	}
	if requester.HasReceivedRequest(target.Id) {
		return ErrRequestAlreadyReceived
	}

	requester.SentRequests = prependEntry(requester.SentRequests, target.Id, now)
	target.ReceivedRequests = prependEntry(target.ReceivedRequests, requester.Id, now)
	return nil
}

// Accept resolves the pending request from requester in accepter's received
// list into a mutual connection. Both request entries are removed and a
// connection entry is added to each document.
func Accept(accepter, requester *models.User, now time.Time) error {
	if !accepter.HasReceivedRequest(requester.Id) {
		return ErrNoSuchRequest
	}

	accepter.ReceivedRequests = removeEntry(accepter.ReceivedRequests, requester.Id)
	requester.SentRequests = removeEntry(requester.SentRequests, accepter.Id)
	accepter.Connections = prependEntry(accepter.Connections, requester.Id, now)
	requester.Connections = prependEntry(requester.Connections, accepter.Id, now)
	return nil
}

// Reject drops the pending request from requester in rejecter's received
// list. The pair returns to the none state and requester may connect again.
func Reject(rejecter, requester *models.User) error {
	if !rejecter.HasReceivedRequest(requester.Id) {
		return ErrNoSuchRequest
	}

	rejecter.ReceivedRequests = removeEntry(rejecter.ReceivedRequests, requester.Id)
	requester.SentRequests = removeEntry(requester.SentRequests, rejecter.Id)
	return nil
}

// StatusBetween reports the pair state from viewer's perspective.
func StatusBetween(viewer *models.User, other primitive.ObjectID) ConnectionStatus {
	switch {
	case viewer.HasConnection(other):
		return StatusConnected
	case viewer.HasSentRequest(other):
		return StatusPending
	case viewer.HasReceivedRequest(other):
		return StatusReceived
	default:
		return StatusNone
	}
}

func prependEntry(entries []models.RequestEntry, id primitive.ObjectID, now time.Time) []models.RequestEntry {
	return append([]models.RequestEntry{{User: id, Date: now}}, entries...)
}

func removeEntry(entries []models.RequestEntry, id primitive.ObjectID) []models.RequestEntry {
	out := entries[:0]
	for _, e := range entries {
		if e.User != id {
			out = append(out, e)
		}
	}
	return out
}
