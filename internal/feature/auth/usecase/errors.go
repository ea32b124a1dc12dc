// Package usecase implements the business logic for the auth feature.
package usecase

import "errors"

var (
	// ErrUserNotFound is returned when a user cannot be found by email or ID.
	ErrUserNotFound = errors.New("user not found")

	// ErrEmailAlreadyExists is returned when attempting to create a user with an email that already exists.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrInvalidCredentials is returned when email or password is wrong.
	// The same error covers both cases so accounts cannot be enumerated.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrPasswordTooShort is returned when a registration password is below
	// the minimum length. Transport-level binding enforces the same rule, so
	// this guards non-HTTP callers.
	ErrPasswordTooShort = errors.New("password must be at least 8 characters long")
)
