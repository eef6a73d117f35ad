package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Event is a gathering members can RSVP to. MaxAttendees is advisory only;
// the attendee list is never capped.
type Event struct {
	Id           primitive.ObjectID   `json:"id" bson:"_id,omitempty"`
	Title        string               `json:"title" bson:"title"`
	Description  string               `json:"description" bson:"description"`
	Date         time.Time            `json:"date" bson:"date"`
	Time         string               `json:"time" bson:"time"`
	Location     string               `json:"location" bson:"location"`
	MaxAttendees int                  `json:"maxAttendees" bson:"maxAttendees"`
	Category     string               `json:"category" bson:"category"`
	Image        string               `json:"image" bson:"image"`
	IsVirtual    bool                 `json:"isVirtual" bson:"isVirtual"`
	Attendees    []primitive.ObjectID `json:"attendees" bson:"attendees"`
	CreatedBy    primitive.ObjectID   `json:"createdBy" bson:"createdBy"`
	CreatedAt    time.Time            `json:"createdAt" bson:"createdAt"`
}

// HasAttendee reports whether id already RSVP'd.
func (e *Event) HasAttendee(id primitive.ObjectID) bool {
	for _, a := range e.Attendees {
		if a == id {
			return true
		}
	}
	return false
}
