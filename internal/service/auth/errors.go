package auth

import (
	"errors"
	"fmt"
)

// Common authentication service errors
var (
	// ErrMissingToken indicates a token was expected but not provided.
	ErrMissingToken = errors.New("authentication token is missing")

	// ErrInvalidToken is the parent of every token verification failure.
	ErrInvalidToken = errors.New("invalid authentication token")

	// ErrMalformedToken indicates the token cannot be parsed or lacks claims.
	ErrMalformedToken = fmt.Errorf("%w: malformed", ErrInvalidToken)

	// ErrInvalidSignature indicates the signature or algorithm does not match.
	ErrInvalidSignature = fmt.Errorf("%w: signature invalid", ErrInvalidToken)

	// ErrExpiredToken indicates the token has expired.
	ErrExpiredToken = fmt.Errorf("%w: expired", ErrInvalidToken)

	// ErrInvalidCost indicates a bcrypt cost outside bcrypt's accepted range.
	ErrInvalidCost = errors.New("bcrypt cost out of range")

	// ErrPasswordTooLong indicates a password longer than bcrypt's 72-byte
	// input limit.
	ErrPasswordTooLong = errors.New("password exceeds 72 bytes")
)

// VerificationKind classifies why a token was rejected. Its value is the
// detail appended to "Invalid token." in API responses.
type VerificationKind string

// Verification failure kinds.
const (
	Malformed        VerificationKind = "jwt malformed"
	SignatureInvalid VerificationKind = "invalid signature"
	Expired          VerificationKind = "jwt expired"
)

// VerificationError is returned by TokenService.Verify for every rejected
// token. Cause keeps the underlying parser error for logging only.
type VerificationError struct {
	Kind  VerificationKind
	Cause error
}

// Error returns the client-safe detail of the failure.
func (e *VerificationError) Error() string {
	return string(e.Kind)
}

// Unwrap exposes the sentinel matching Kind, so callers can use errors.Is
// with ErrExpiredToken, ErrInvalidSignature, ErrMalformedToken or ErrInvalidToken.
func (e *VerificationError) Unwrap() error {
	switch e.Kind {
	case Expired:
		return ErrExpiredToken
	case SignatureInvalid:
		return ErrInvalidSignature
	default:
		return ErrMalformedToken
	}
}
