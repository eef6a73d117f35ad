package core

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/alumniconnect/Backend-Alumni-Connect/src/apperr"
)

// ErrNotOwner rejects mutation of a resource by anyone but its creator.
var ErrNotOwner = apperr.New(apperr.CodeForbidden, "Not authorized")

// Authorize succeeds iff actor created the resource. Applied before every
// project or event update/delete.
func Authorize(actor, creator primitive.ObjectID) error {
	if actor != creator {
		return ErrNotOwner
	}
	return nil
}
