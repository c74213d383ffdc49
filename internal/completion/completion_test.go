package completion_test

import (
	"testing"

	"github.com/ielts-companion/backend/internal/completion"
)

func TestExtractJSON(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "bare object",
			input: `{"a": 1}`,
			want:  `{"a": 1}`,
		},
		{
			name:  "wrapped in prose",
			input: "Sure, here you go: {\"a\": 1} Hope that helps!",
			want:  `{"a": 1}`,
		},
		{
			name:  "markdown fence",
			input: "```json\n{\"a\": {\"b\": 2}}\n```",
			want:  `{"a": {"b": 2}}`,
		},
		{
			name:  "braces inside strings",
			input: `{"text": "use {curly} braces", "n": 1}`,
			want:  `{"text": "use {curly} braces", "n": 1}`,
		},
		{
			name:  "escaped quote inside string",
			input: `{"text": "she said \"hi\" {x}"}`,
			want:  `{"text": "she said \"hi\" {x}"}`,
		},
		{
			name:  "no object",
			input: "just plain text",
			want:  "",
		},
		{
			name:  "unbalanced",
			input: `{"a": 1`,
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := completion.ExtractJSON(tt.input); got != tt.want {
				t.Errorf("ExtractJSON(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
