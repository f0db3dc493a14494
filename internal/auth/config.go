package auth

import (
	"fmt"
	"time"
)

const (
	defaultIssuer   = "safety-tracker-backend"
	defaultTokenTTL = 8 * time.Hour
)

// AuthConfig holds the token settings used to issue and verify identities
type AuthConfig struct {
	JWTSecret string        `yaml:"jwt_secret" json:"jwt_secret"`
	Issuer    string        `yaml:"issuer" json:"issuer"`
	TokenTTL  time.Duration `yaml:"token_ttl" json:"token_ttl"`
}

// NewAuthConfig returns a config with default issuer and lifetime
func NewAuthConfig(secret string) *AuthConfig {
	return &AuthConfig{
		JWTSecret: secret,
		Issuer:    defaultIssuer,
		TokenTTL:  defaultTokenTTL,
	}
}

// ValidateConfig validates the authentication configuration
func (c *AuthConfig) ValidateConfig() error {
	if c.JWTSecret == "" {
		return fmt.Errorf("JWT secret is required")
	}
	if c.TokenTTL <= 0 {
		return fmt.Errorf("token lifetime must be positive")
	}
	return nil
}
