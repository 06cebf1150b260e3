// Package mocks provides centralized mock implementations for testing.
//
// Instead of defining inline mocks in individual test files, these
// standardized implementations are shared across test packages. Each mock
// exposes one function field per interface method; set the field to control
// behavior, or leave it nil to get a simple in-memory default.
package mocks
