// Package config defines the application's configuration structure and
// loads it from environment variables and optional .env files. All settings
// are validated at startup so misconfiguration fails fast rather than at
// first use.
package config
