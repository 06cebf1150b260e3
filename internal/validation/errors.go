package validation

import (
	"fmt"
	"sort"
	"strings"
)

// FieldErrors maps a field name to a human-readable validation message.
// It implements error so that record-level validation outcomes can travel
// through ordinary error returns; the API layer unwraps it with errors.As
// to serialize the full field→message mapping.
type FieldErrors map[string]string

// Error implements the error interface. Fields are listed in sorted order
// so the message is deterministic.
func (e FieldErrors) Error() string {
	if len(e) == 0 {
		return "validation failed"
	}
	fields := make([]string, 0, len(e))
	for f := range e {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	var b strings.Builder
	b.WriteString("validation failed: ")
	for i, f := range fields {
		if i > 0 {
			b.WriteString("; ")
		}
		fmt.Fprintf(&b, "%s: %s", f, e[f])
	}
	return b.String()
}
