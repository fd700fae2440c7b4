package auth

import "time"

// Config holds configuration for admin authentication.
type Config struct {
	// JWTSecret signs and verifies admin tokens. Must be set in production.
	JWTSecret string `mapstructure:"jwt_secret" default:""`
	// JWTExpiresIn is the lifetime of an issued token.
	JWTExpiresIn time.Duration `mapstructure:"jwt_expires_in" default:"24h"`
	// Issuer is written to and required in the iss claim.
	Issuer string `mapstructure:"issuer" default:"site-cms"`
}
