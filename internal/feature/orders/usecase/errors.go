// Package usecase implements the business logic for the orders feature.
package usecase

import "errors"

var (
	// ErrEmptyOrder is returned when an order is submitted without line items.
	ErrEmptyOrder = errors.New("order must contain at least one item")

	// ErrInvalidQuantity is returned when a line item quantity is not positive.
	ErrInvalidQuantity = errors.New("item quantity must be positive")

	// ErrInvalidUnitPrice is returned when a line item unit price is negative.
	ErrInvalidUnitPrice = errors.New("item price must not be negative")

	// ErrTotalMismatch is returned when the submitted total does not equal
	// the sum of quantity times unit price over all line items.
	ErrTotalMismatch = errors.New("total does not match line items")

	// ErrUnknownProduct is returned when a line item references a product
	// that does not exist. The whole order creation rolls back.
	ErrUnknownProduct = errors.New("item references unknown product")

	// ErrNumberTaken is returned by the repository when the generated order
	// number collides with an existing one. Creation is retried internally
	// with a fresh number and the error never reaches API callers.
	ErrNumberTaken = errors.New("order number already taken")
)
