package service

import "errors"

// Service errors returned by UserService. Callers use errors.Is to map them
// onto responses; storage failures are returned wrapped as they come.
var (
	// ErrEmailTaken indicates signup for an email that already has an account.
	ErrEmailTaken = errors.New("email not available")

	// ErrIncorrectCredentials is returned for every failed login, whether the
	// email is unknown or the password is wrong.
	ErrIncorrectCredentials = errors.New("incorrect credentials")

	// ErrInvalidUser indicates the signup data was rejected by the domain.
	ErrInvalidUser = errors.New("invalid user data")
)
