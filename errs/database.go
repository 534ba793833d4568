package errs

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

var (
	// ErrNotFound means an id did not resolve to a row.
	ErrNotFound = errors.New("not found")
	// ErrReferentialIntegrity means a write referenced a row that does not exist.
	ErrReferentialIntegrity = errors.New("referential integrity violation")
	// ErrPersistence covers every store-level failure. The in-flight
	// transaction has always been rolled back when it is returned.
	ErrPersistence = errors.New("persistence failure")
)

func NewNotFound(entity string) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusNotFound,
		err:        fmt.Errorf("%s %w", entity, ErrNotFound),
		Entity:     entity,
	}
}

func NewReferentialIntegrityError(entity, referencedEntity string) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusBadRequest,
		err:        ErrReferentialIntegrity,
		Details:    fmt.Sprintf("%s references an unknown %s", entity, referencedEntity),
		Entity:     entity,
		Field:      referencedEntity + "_id",
	}
}

// NewDatabaseError creates a new database error with details about the operation
func NewDatabaseError(operation, entity string, cause error) *ApiErr {
	details := fmt.Sprintf("Failed to %s %s", operation, entity)

	// Check for common database errors and provide more specific messages
	if cause != nil {
		errStr := strings.ToLower(cause.Error())
		switch {
		case strings.Contains(errStr, "foreign key constraint"):
			return &ApiErr{
				StatusCode: http.StatusBadRequest,
				err:        ErrReferentialIntegrity,
				Details:    "The referenced resource does not exist or cannot be linked",
				Entity:     entity,
				Cause:      cause,
			}
		case strings.Contains(errStr, "duplicate key"), strings.Contains(errStr, "unique constraint"):
			return &ApiErr{
				StatusCode: http.StatusConflict,
				err:        fmt.Errorf("%s already exists: %w", entity, ErrPersistence),
				Details:    details,
				Entity:     entity,
				Cause:      cause,
			}
		case strings.Contains(errStr, "connection"), strings.Contains(errStr, "timeout"):
			return &ApiErr{
				StatusCode: http.StatusServiceUnavailable,
				err:        fmt.Errorf("database unavailable: %w", ErrPersistence),
				Details:    details,
				Entity:     entity,
				Cause:      cause,
			}
		}
	}

	// Generic database error
	return &ApiErr{
		StatusCode: http.StatusInternalServerError,
		err:        ErrPersistence,
		Details:    details,
		Entity:     entity,
		Cause:      cause,
	}
}

func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

func IsReferentialIntegrity(err error) bool {
	return errors.Is(err, ErrReferentialIntegrity)
}

func IsPersistence(err error) bool {
	return errors.Is(err, ErrPersistence)
}
