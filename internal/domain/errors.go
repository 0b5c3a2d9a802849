package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for simple conditions without extra context.
var (
	ErrApplicationNotFound = errors.New("application not found")
	ErrVendorNotFound      = errors.New("vendor not found")
	ErrUserNotFound        = errors.New("user not found")
	ErrNotAuthorized       = errors.New("not authorized")
)

// ConflictError is returned when a user already holds an application or
// a vendor account and tries to acquire a second one.
type ConflictError struct {
	UserID string
	Reason string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("user %q: %s", e.UserID, e.Reason)
}

// TransitionError is returned when a lifecycle event is not allowed
// from the application's current status.
type TransitionError struct {
	Event   Event
	Current Status
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("event %q is not valid from status %q", e.Event, e.Current)
}

// InvalidStateError is returned when an operation that is not a
// lifecycle event (e.g. an owner edit) requires the application to be
// in a specific status and it is not.
type InvalidStateError struct {
	Op      string
	Current Status
}

func (e *InvalidStateError) Error() string {
	return fmt.Sprintf("cannot %s an application in status %q", e.Op, e.Current)
}

// ValidationError is returned when required business or banking fields
// are missing or malformed.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("missing or invalid fields: %s", strings.Join(e.Fields, ", "))
}
