package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeText(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "plain text unchanged",
			input: "no special characters here",
			want:  "no special characters here",
		},
		{
			name:  "angle brackets escaped",
			input: "<b>hi</b>",
			want:  "&lt;b&gt;hi&lt;/b&gt;",
		},
		{
			name:  "quotes and apostrophes escaped",
			input: `she said "hi" to O'Brien`,
			want:  "she said &quot;hi&quot; to O&#x27;Brien",
		},
		{
			name:  "ampersand left alone",
			input: "Tom & Jerry",
			want:  "Tom & Jerry",
		},
		{
			name:  "surrounding whitespace trimmed",
			input: "  padded  ",
			want:  "padded",
		},
		{
			name:  "empty string passes through",
			input: "",
			want:  "",
		},
		{
			name:  "script tag neutralized",
			input: `<script>alert("x")</script>`,
			want:  "&lt;script&gt;alert(&quot;x&quot;)&lt;/script&gt;",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, SanitizeText(tc.input))
		})
	}
}
