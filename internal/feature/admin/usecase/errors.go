// Package usecase implements the business logic for the admin feature.
package usecase

import "errors"

var (
	// ErrOrderNotFound is returned when no order exists with the given ID.
	ErrOrderNotFound = errors.New("order not found")

	// ErrUserNotFound is returned when no user exists with the given ID.
	ErrUserNotFound = errors.New("user not found")

	// ErrInvalidStatus is returned when an order status update uses a value
	// outside the known status vocabulary.
	ErrInvalidStatus = errors.New("invalid order status")
)
