package service

import (
	"errors"
	"fmt"
)

var (
	// ErrOrderNotFound is the normal outcome of looking up an id that was never issued.
	ErrOrderNotFound = errors.New("order not found")

	ErrEmptyCart          = errors.New("cart is empty")
	ErrCheckoutInProgress = errors.New("checkout already in progress")
	ErrPaymentDeclined    = errors.New("payment declined")
	ErrPaymentFailed      = errors.New("payment failed")
	ErrInvalidQuantity    = errors.New("invalid quantity")
)

// PersistenceError means a change could not be written to storage. The
// change was not applied, so the caller may retry.
type PersistenceError struct {
	Key string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("failed to persist %s: %v", e.Key, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}
