package domain

import (
	"errors"
	"fmt"
)

// Alert is a user-facing failure: a blocking title/message pair shown by the
// view layer. Every alert is terminal for the current action; the user may
// retry manually.
type Alert struct {
	Title   string
	Message string
}

func (a *Alert) Error() string {
	return a.Title + ": " + a.Message
}

// Validation and flow alerts. These are sentinels so call sites can test
// with errors.Is.
var (
	ErrInvalidPhone          = &Alert{"Invalid Phone", "Enter a valid 10-digit US number."}
	ErrMissingFields         = &Alert{"Missing Fields", "Name and Location are required."}
	ErrMissingBusinessFields = &Alert{"Missing Fields", "Name, Location and Business Name are required."}
	ErrInvalidEmail          = &Alert{"Invalid Email", "Enter a valid email address."}
	ErrRoleNotConfigured     = &Alert{"Configuration Error", "Customer role not found on server."}
	ErrNotRegistered         = &Alert{"Not Registered", "No account found for that number. Please register to continue."}
	ErrRolesUnavailable      = &Alert{"Error", "Could not load roles."}
	ErrTitleRequired         = &Alert{"Title required", "Please enter a title for your profile."}
	ErrProfileNotSaved       = &Alert{"Error", "Could not save your profile."}
)

// ServerFailure builds the generic lookup-failure alert, surfacing the
// numeric status code to the user.
func ServerFailure(status int) *Alert {
	return &Alert{"Server Error", fmt.Sprintf("Lookup failed with status %d.", status)}
}

// RegistrationFailure wraps a server-provided detail message, or the
// transport status text when the body carried none.
func RegistrationFailure(detail string) *Alert {
	if detail == "" {
		detail = "Please try again."
	}
	return &Alert{"Registration Failed", detail}
}

// Infrastructure sentinels, mapped to alerts at the service layer.
var (
	// ErrUserNotFound is returned by the remote gateway on a 404 lookup.
	ErrUserNotFound = errors.New("user not found")
	// ErrKeyNotFound is returned by a KVStore when a slot holds no value.
	ErrKeyNotFound = errors.New("key not found")
	// ErrNoSession is returned when the session slot is empty.
	ErrNoSession = errors.New("no active session")
)

// StatusError is a non-success remote response with no richer shape.
type StatusError struct {
	Code int
	Text string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("remote status %d %s", e.Code, e.Text)
}

// APIError is a non-success remote response carrying a FastAPI-style
// "detail" message extracted from the body.
type APIError struct {
	Status int
	Detail string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("remote error %d: %s", e.Status, e.Detail)
}
