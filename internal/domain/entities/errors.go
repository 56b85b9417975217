package entities

import "fmt"

// Domain errors raised by Session operations.
//
// They are returned as pointers and matched with errors.As, e.g.
//
//	var dup *DuplicateItemError
//	if errors.As(err, &dup) { ... }

// ValidationError reports a malformed identity or name field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// DuplicateItemError reports an AddItem for a product already in the session.
type DuplicateItemError struct {
	ProductID string
}

func (e *DuplicateItemError) Error() string {
	return fmt.Sprintf("product %s is already in the session", e.ProductID)
}

// InvalidQuantityError reports a quantity that is not strictly positive.
type InvalidQuantityError struct {
	Quantity int
}

func (e *InvalidQuantityError) Error() string {
	return fmt.Sprintf("quantity must be greater than zero, got %d", e.Quantity)
}

// InvalidStateTransitionError reports a lifecycle call from a status that does not permit it.
type InvalidStateTransitionError struct {
	From    SessionStatus
	To      SessionStatus
	Message string
}

func (e *InvalidStateTransitionError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("cannot transition from %s to %s", e.From, e.To)
	}
	return e.Message
}

// EmptySessionError reports email generation on a session with no items.
type EmptySessionError struct {
	SessionID string
}

func (e *EmptySessionError) Error() string {
	return "cannot generate emails for empty session"
}

func newValidationError(field, msg string) error {
	return &ValidationError{Field: field, Message: msg}
}
