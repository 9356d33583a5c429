package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Auth     AuthConfig     `mapstructure:"auth"`
	API      APIConfig      `mapstructure:"api"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port                   int    `mapstructure:"port"                     validate:"required,gt=0,lt=65536"`
	LogLevel               string `mapstructure:"log_level"                validate:"required,oneof=debug info warn error"`
	ShutdownTimeoutSeconds int    `mapstructure:"shutdown_timeout_seconds" validate:"gt=0"`
}

// DatabaseConfig contains all database-related configuration settings.
type DatabaseConfig struct {
	// Driver is the database/sql driver name: "pgx" for PostgreSQL or
	// "sqlite" for an embedded database file.
	Driver       string `mapstructure:"driver"         validate:"required,oneof=pgx sqlite"`
	URL          string `mapstructure:"url"            validate:"required"`
	MaxOpenConns int    `mapstructure:"max_open_conns" validate:"gt=0"`
}

// AuthConfig contains all authentication and authorization settings.
type AuthConfig struct {
	JWTSecret  string `mapstructure:"jwt_secret"  validate:"required,min=32"`
	BcryptCost int    `mapstructure:"bcrypt_cost" validate:"min=4,max=31"`

	// TokenLifetimeMinutes adds an exp claim to issued tokens when positive.
	// Zero issues tokens without expiry.
	TokenLifetimeMinutes int `mapstructure:"token_lifetime_minutes" validate:"min=0"`
}

// APIConfig tunes HTTP response behaviour.
type APIConfig struct {
	// StrictNotFound answers missing records with 404 and duplicate emails
	// with 409 instead of an error envelope carried by a 200.
	StrictNotFound bool `mapstructure:"strict_not_found"`
}
