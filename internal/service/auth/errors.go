package auth

import "errors"

// Common authentication service errors
var (
	// ErrInvalidToken indicates the token format is invalid or signature doesn't match
	ErrInvalidToken = errors.New("invalid authentication token")

	// ErrExpiredToken indicates the token has expired
	ErrExpiredToken = errors.New("authentication token has expired")

	// ErrTokenNotYetValid indicates the token is not yet valid (nbf claim in the future)
	ErrTokenNotYetValid = errors.New("authentication token not yet valid")

	// ErrMissingToken indicates a token was expected but not provided
	ErrMissingToken = errors.New("authentication token is missing")

	// ErrInvalidCredentials indicates the username or password did not match.
	// Deliberately does not distinguish an unknown username from a wrong
	// password.
	ErrInvalidCredentials = errors.New("invalid username or password")

	// ErrUsernameTaken indicates the requested username is already registered
	ErrUsernameTaken = errors.New("username already exists")

	// ErrEmailTaken indicates the requested email is already registered
	ErrEmailTaken = errors.New("email already registered")
)
