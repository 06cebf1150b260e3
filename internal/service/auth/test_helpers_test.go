package auth

import "github.com/medchart/medchart-api/internal/config"

// configWithSecret returns an AuthConfig with sensible test defaults and the
// given signing secret.
func configWithSecret(secret string) config.AuthConfig {
	return config.AuthConfig{
		JWTSecret:            secret,
		TokenLifetimeMinutes: 60,
		BcryptCost:           4,
	}
}
