package service

import "errors"

// Common service errors - sentinel errors used across service implementations.
// Callers check for these with errors.Is(); the API layer maps them to HTTP
// status codes.
var (
	// ErrPatientNotFound indicates that the requested patient does not exist.
	// API layer should map this to HTTP 404 Not Found.
	ErrPatientNotFound = errors.New("patient not found")

	// ErrNoVitals indicates that a patient has no recorded vital signs.
	// API layer should map this to HTTP 404 Not Found.
	ErrNoVitals = errors.New("no vitals recorded for patient")
)
