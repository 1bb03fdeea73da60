package config

import (
	"fmt"
	"os"
	"strconv"
)

// JWTConfig holds settings for API token issuance and validation
type JWTConfig struct {
	Secret          string
	ExpirationHours int
}

// JWTFromEnv builds JWT settings from JWT_SECRET and JWT_EXPIRATION_HOURS
// (default 24). An unset JWT_SECRET returns (nil, nil): authentication is
// disabled and the server runs open. A set but invalid configuration is an
// error rather than a silent fallback to open mode.
func JWTFromEnv() (*JWTConfig, error) {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return nil, nil
	}

	expirationHours := 24
	if expirationStr := os.Getenv("JWT_EXPIRATION_HOURS"); expirationStr != "" {
		parsed, err := strconv.Atoi(expirationStr)
		if err != nil {
			return nil, fmt.Errorf("invalid JWT_EXPIRATION_HOURS: %v", err)
		}
		expirationHours = parsed
	}
	if expirationHours < 1 {
		return nil, fmt.Errorf("JWT_EXPIRATION_HOURS must be at least 1 hour, got: %d", expirationHours)
	}

	return &JWTConfig{Secret: secret, ExpirationHours: expirationHours}, nil
}
