// Package validation contains the pure field-level and record-level business
// rules applied to inbound data before it reaches storage. All functions are
// stateless and side-effect free, and are safe to call concurrently.
//
// Record-level validators aggregate every failing field into a FieldErrors
// map rather than stopping at the first failure, so a caller can report the
// complete error set in a single round trip.
package validation
