package mocks

import "github.com/phrazzld/ledger-api/internal/service/auth"

// MockPasswordHasher implements auth.PasswordHasher for testing
type MockPasswordHasher struct {
	// HashFn allows for custom hashing logic in tests
	HashFn func(plaintext string) (string, error)

	// VerifyFn allows for custom comparison logic in tests
	VerifyFn func(plaintext, hash string) bool

	// ShouldSucceed is returned by Verify when VerifyFn is nil
	ShouldSucceed bool

	// VerifyCalledWith records the arguments of every Verify call
	VerifyCalledWith []VerifyCall
}

// VerifyCall is one recorded Verify invocation.
type VerifyCall struct {
	Plaintext string
	Hash      string
}

var _ auth.PasswordHasher = (*MockPasswordHasher)(nil)

// Hash implements the auth.PasswordHasher interface
func (m *MockPasswordHasher) Hash(plaintext string) (string, error) {
	if m.HashFn != nil {
		return m.HashFn(plaintext)
	}
	return "hashed:" + plaintext, nil
}

// Verify implements the auth.PasswordHasher interface
func (m *MockPasswordHasher) Verify(plaintext, hash string) bool {
	m.VerifyCalledWith = append(m.VerifyCalledWith, VerifyCall{Plaintext: plaintext, Hash: hash})
	if m.VerifyFn != nil {
		return m.VerifyFn(plaintext, hash)
	}
	return m.ShouldSucceed
}
