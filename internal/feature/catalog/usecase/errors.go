// Package usecase implements the business logic for the catalog feature.
package usecase

import "errors"

var (
	// ErrProductNotFound is returned when no product exists with the given ID.
	ErrProductNotFound = errors.New("product not found")

	// ErrNegativePrice is returned when a write would store a negative price.
	ErrNegativePrice = errors.New("price must not be negative")

	// ErrNegativeStock is returned when a write would store a negative stock count.
	ErrNegativeStock = errors.New("stock must not be negative")
)
