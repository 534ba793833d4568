package errs

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotFound(t *testing.T) {
	err := NewNotFound("venue")

	assert.Equal(t, http.StatusNotFound, err.StatusCode)
	assert.Equal(t, "venue not found", err.Error())
	assert.True(t, IsNotFound(err))
	assert.False(t, IsPersistence(err))
	assert.Equal(t, "venue", EntityOf(err))
}

func TestKindsSurviveWrapping(t *testing.T) {
	wrapped := fmt.Errorf("show venue: %w", NewNotFound("venue"))

	assert.True(t, IsNotFound(wrapped))
	assert.Equal(t, http.StatusNotFound, StatusOf(wrapped))
	assert.Equal(t, "venue", EntityOf(wrapped))
}

func TestReferentialIntegrity(t *testing.T) {
	err := NewReferentialIntegrityError("show", "artist")

	assert.True(t, IsReferentialIntegrity(err))
	assert.Equal(t, "artist_id", err.Field)
	assert.Equal(t, http.StatusBadRequest, err.StatusCode)
	assert.Contains(t, err.Error(), "show references an unknown artist")
}

func TestNewDatabaseError(t *testing.T) {
	tests := []struct {
		name   string
		cause  error
		status int
		check  func(error) bool
	}{
		{"foreign key", errors.New("FOREIGN KEY constraint failed"), http.StatusBadRequest, IsReferentialIntegrity},
		{"duplicate", errors.New(`duplicate key value violates unique constraint "Venue_pkey"`), http.StatusConflict, IsPersistence},
		{"connection", errors.New("connection refused"), http.StatusServiceUnavailable, IsPersistence},
		{"timeout", errors.New("i/o timeout"), http.StatusServiceUnavailable, IsPersistence},
		{"other", errors.New("disk full"), http.StatusInternalServerError, IsPersistence},
		{"nil cause", nil, http.StatusInternalServerError, IsPersistence},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := NewDatabaseError("delete", "venue", tc.cause)
			assert.Equal(t, tc.status, err.StatusCode)
			assert.True(t, tc.check(err))
			assert.Equal(t, "venue", err.Entity)
		})
	}
}

func TestValidationError(t *testing.T) {
	err := NewValidationError("state", "must be a US state code")

	assert.True(t, IsValidation(err))
	assert.False(t, IsBadRequest(err))
	assert.Equal(t, "state", err.Field)
	assert.Equal(t, "validation failed: Invalid field state: must be a US state code", err.Error())
}

func TestGetFullError(t *testing.T) {
	inner := NewDatabaseError("find", "venues", errors.New("connection reset"))
	outer := NewInternalErrorWithCause("render venues", inner)

	full := outer.GetFullError()
	assert.Contains(t, full, "render venues")
	assert.Contains(t, full, "database unavailable")
	assert.Contains(t, full, "connection reset")
}

func TestStatusOfPlainError(t *testing.T) {
	assert.Equal(t, http.StatusInternalServerError, StatusOf(errors.New("boom")))
	assert.Equal(t, "", EntityOf(errors.New("boom")))
	assert.Equal(t, http.StatusBadRequest, StatusOf(NewBadRequestError("bad id")))
}
