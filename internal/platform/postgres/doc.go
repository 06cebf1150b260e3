// Package postgres provides PostgreSQL implementations of the store
// interfaces, using database/sql over the pgx stdlib driver. Driver errors
// are mapped to the sentinel errors defined in the store package so callers
// never depend on PostgreSQL error codes.
package postgres
