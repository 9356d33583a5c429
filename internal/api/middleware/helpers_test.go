package middleware

import "github.com/phrazzld/ledger-api/internal/config"

func testAuthConfig(secret string) config.AuthConfig {
	return config.AuthConfig{JWTSecret: secret, BcryptCost: 4}
}
