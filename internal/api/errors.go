package api

import (
	"errors"
	"fmt"

	"storefront/internal/models"
)

// Kind classifies an error returned by the client
type Kind int

const (
	// KindNone means there was no error
	KindNone Kind = iota
	// KindExpected covers errors the screen has a flow for (the 406 conflict)
	KindExpected
	// KindUnexpected covers everything else
	KindUnexpected
)

func (k Kind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindExpected:
		return "expected"
	default:
		return "unexpected"
	}
}

// StatusError is returned for any non-2xx response
type StatusError struct {
	Method     string
	Path       string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("%s %s: unexpected status %d", e.Method, e.Path, e.StatusCode)
	}
	return fmt.Sprintf("%s %s: unexpected status %d: %s", e.Method, e.Path, e.StatusCode, e.Body)
}

// ConflictError is returned when creating an order is refused with 406
// because an open order already belongs to another restaurant. The status
// alone decides; DecodeErr is set when the body did not carry the names.
type ConflictError struct {
	models.ConflictPayload
	DecodeErr error
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("open order belongs to %q, cannot add food from %q", e.ExistingRestaurant, e.NewRestaurant)
}

// AsConflict reports whether err carries a ConflictError
func AsConflict(err error) (*ConflictError, bool) {
	var conflict *ConflictError
	if errors.As(err, &conflict) {
		return conflict, true
	}
	return nil, false
}

// Classify sorts err into expected and unexpected
func Classify(err error) Kind {
	if err == nil {
		return KindNone
	}
	if _, ok := AsConflict(err); ok {
		return KindExpected
	}
	return KindUnexpected
}
