// Package completion is the boundary to an external text-generation
// provider. Callers build a Request and get back raw text; parsing the
// text into feature schemas is the caller's job.
package completion

import "context"

// Request describes a single completion exchange.
type Request struct {
	// System is the system instruction, may be empty.
	System string
	// Prompt is the user-facing prompt text.
	Prompt string
	// ImageBase64 is an optional base64-encoded JPEG attached to the
	// prompt (raw base64, no data-URL prefix).
	ImageBase64 string
	// JSONMode asks the provider to emit a JSON object.
	JSONMode bool
	// Temperature is passed through to the provider.
	Temperature float64
	// MaxTokens caps the response length when > 0.
	MaxTokens int
}

// Client generates text. Implementations may call an LLM API or return
// canned results (for tests).
type Client interface {
	Complete(ctx context.Context, req Request) (string, error)
}

// ExtractJSON finds the outermost JSON object in a string.
// It handles nested braces correctly and skips braces inside quoted
// strings, so it works on responses wrapped in prose or code fences.
func ExtractJSON(s string) string {
	start := -1
	depth := 0
	inString := false
	escaped := false

	for i, ch := range s {
		if escaped {
			escaped = false
			continue
		}
		if ch == '\\' && inString {
			escaped = true
			continue
		}
		if ch == '"' {
			inString = !inString
			continue
		}
		if inString {
			continue
		}

		if ch == '{' {
			if depth == 0 {
				start = i
			}
			depth++
		} else if ch == '}' {
			depth--
			if depth == 0 && start != -1 {
				return s[start : i+1]
			}
		}
	}
	return ""
}
