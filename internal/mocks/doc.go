// Package mocks provides shared test doubles for the store and service
// interfaces.
//
// Most mocks are plain structs with one function field per method; an unset
// field falls back to a benign default and every call is recorded so tests
// can assert on it:
//
//	tokens := &mocks.MockTokenService{
//	    IssueFn: func(ctx context.Context, id uuid.UUID, email string) (string, error) {
//	        return "mocked-token", nil
//	    },
//	}
//
// TestifyMockUserStore is the testify/mock flavour, for tests that want
// argument matching and call expectations instead.
package mocks
