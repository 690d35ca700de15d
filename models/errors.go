package models

import (
	"errors"
	"fmt"
)

// Business-rule failures surfaced by checkout. Messages are user-facing
// and map to HTTP 400; anything else coming out of the storage layer maps
// to a generic 500.
var (
	ErrEmptyCart      = errors.New("Cart is empty")
	ErrInvalidAddress = errors.New("Valid shipping address is required")
)

type InsufficientStockError struct {
	ProductID   int
	ProductName string
	Requested   int
	Available   int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("Insufficient stock for product: %s", e.ProductName)
}

// IsBusinessError reports whether err should surface to the caller as a
// request_error rather than being masked as a storage failure.
func IsBusinessError(err error) bool {
	var stockErr *InsufficientStockError
	return errors.Is(err, ErrEmptyCart) ||
		errors.Is(err, ErrInvalidAddress) ||
		errors.As(err, &stockErr)
}
