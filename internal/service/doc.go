// Package service contains the application-specific use cases and business
// logic. It orchestrates interactions between domain objects and stores
// (defined in internal/store) to fulfill application features.
//
// Services validate and sanitize incoming data, apply transactional
// boundaries around writes, and translate store-level errors into
// service-level sentinel errors that the API layer maps to HTTP status
// codes. Services receive their dependencies through constructor
// injection and depend only on store interfaces, never on a specific
// database implementation.
package service
