package domain

import "errors"

// Common domain errors used across the application.
var (
	// ErrInvalidID is returned when an ID is malformed or invalid.
	ErrInvalidID = errors.New("invalid ID")

	// ErrEmptyDetail is returned when a detail field is blank.
	ErrEmptyDetail = errors.New("detail cannot be empty")

	// ErrInvalidTransactionStatus is returned when a status is outside the
	// fixed transaction status set.
	ErrInvalidTransactionStatus = errors.New("invalid transaction status")
)
