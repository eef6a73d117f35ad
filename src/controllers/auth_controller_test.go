package controllers

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/alumniconnect/Backend-Alumni-Connect/src/apperr"
)

func TestInsertUserErrorMapsDuplicateEmail(t *testing.T) {
	dup := mongo.WriteException{WriteErrors: []mongo.WriteError{{Code: 11000}}}

	err := insertUserError(dup)
	assert.True(t, apperr.IsCode(err, apperr.CodeConflict))
	assert.Equal(t, http.StatusConflict, apperr.HTTPStatus(err))
	assert.Equal(t, "Email already registered", apperr.UserMessage(err))
}

func TestInsertUserErrorHidesOtherFailures(t *testing.T) {
	err := insertUserError(errors.New("socket was unexpectedly closed"))

	assert.True(t, apperr.IsCode(err, apperr.CodeInternal))
	assert.Equal(t, http.StatusInternalServerError, apperr.HTTPStatus(err))
	assert.Equal(t, "Server error", apperr.UserMessage(err))
}
