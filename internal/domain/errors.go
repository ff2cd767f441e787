package domain

import (
	"errors"
	"fmt"
)

// Error message string constants - single source of truth for error messages
const (
	ErrMsgItemNotFound     = "item not found"
	ErrMsgMissingItemName  = "missing item name"
	ErrMsgInvalidLocation  = "invalid location"
	ErrMsgInvalidRecord    = "invalid item record"
	ErrMsgStoreUnavailable = "store unavailable"
)

// Common domain errors.
// Wrap these with fmt.Errorf("%w: %s", domain.ErrXxx, details) for context.
var (
	ErrItemNotFound    = errors.New(ErrMsgItemNotFound)
	ErrMissingItemName = errors.New(ErrMsgMissingItemName)
	ErrInvalidLocation = errors.New(ErrMsgInvalidLocation)
	ErrInvalidRecord   = errors.New(ErrMsgInvalidRecord)
)

// StoreError wraps any failure coming from the persistence layer.
// Users never see Err; it is logged and replaced by a generic reply.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("store %s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

// NewStoreError wraps err for operation op. A nil err stays nil.
func NewStoreError(op string, err error) error {
	if err == nil {
		return nil
	}
	return &StoreError{Op: op, Err: err}
}

// IsStoreError reports whether err came from the persistence layer.
func IsStoreError(err error) bool {
	var se *StoreError
	return errors.As(err, &se)
}
