package core

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/alumniconnect/Backend-Alumni-Connect/src/apperr"
	"github.com/alumniconnect/Backend-Alumni-Connect/src/models"
)

// ErrAlreadyRSVPed rejects a repeated RSVP for the same event.
var ErrAlreadyRSVPed = apperr.New(apperr.CodeConflict, "User already RSVP'd")

// RSVP adds user to the front of the event's attendee list. The list is a
// set; MaxAttendees is advisory and never enforced here.
func RSVP(event *models.Event, user primitive.ObjectID) error {
	if event.HasAttendee(user) {
		return ErrAlreadyRSVPed
	}
	event.Attendees = append([]primitive.ObjectID{user}, event.Attendees...)
	return nil
}
