package utils

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gofiber/fiber/v2"
)

// ConflictError is returned when a write collides with an existing record,
// e.g. a username that is already registered.
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string { return e.Message }

// AuthError is returned when credentials do not match.
type AuthError struct{}

func (e *AuthError) Error() string { return "Invalid credentials" }

// NotFoundError is returned when an id does not reference an existing record.
type NotFoundError struct {
	Resource string
}

func (e *NotFoundError) Error() string { return e.Resource + " not found" }

// ValidationError is returned when a request payload is missing a required
// field or carries a malformed value.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Reason
	}
	return fmt.Sprintf("%s %s", e.Field, e.Reason)
}

// StatusCode maps an error to the HTTP status it surfaces as.
func StatusCode(err error) int {
	code, _ := classify(err)
	return code
}

// PublicMessage is the message shown to the client for err. Internal
// failures never leak their cause.
func PublicMessage(err error) string {
	_, msg := classify(err)
	return msg
}

func classify(err error) (int, string) {
	var (
		conflict   *ConflictError
		authErr    *AuthError
		notFound   *NotFoundError
		validation *ValidationError
		fiberErr   *fiber.Error
	)
	switch {
	case errors.As(err, &conflict):
		return http.StatusBadRequest, conflict.Error()
	case errors.As(err, &authErr):
		return http.StatusUnauthorized, authErr.Error()
	case errors.As(err, &notFound):
		return http.StatusNotFound, notFound.Error()
	case errors.As(err, &validation):
		return http.StatusBadRequest, validation.Error()
	case errors.As(err, &fiberErr):
		return fiberErr.Code, fiberErr.Message
	default:
		return http.StatusInternalServerError, "Internal server error"
	}
}
