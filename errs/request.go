package errs

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrValidation marks malformed form input. It is raised before any
// repository call is made.
var ErrValidation = errors.New("validation failed")

func NewValidationError(fieldName, reason string) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusBadRequest,
		err:        ErrValidation,
		Details:    fmt.Sprintf("Invalid field %s: %s", fieldName, reason),
		Field:      fieldName,
	}
}

func NewMalformedFormError(cause error) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusBadRequest,
		err:        ErrValidation,
		Details:    "Malformed form payload",
		Field:      "payload",
		Cause:      cause,
	}
}

func IsValidation(err error) bool {
	return errors.Is(err, ErrValidation)
}
