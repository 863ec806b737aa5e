package prism

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/tidwall/gjson"
)

// APIError is returned when the upstream API answers with a non-2xx status.
type APIError struct {
	Op         string
	StatusCode int
	Status     string
	Body       []byte
}

func (e *APIError) Error() string {
	if msg := e.Message(); msg != "" {
		return fmt.Sprintf("%s: upstream returned %s: %s", e.Op, e.Status, msg)
	}
	return fmt.Sprintf("%s: upstream returned %s", e.Op, e.Status)
}

// Message extracts a human-readable message from the error body, if the body
// carries one in a common field.
func (e *APIError) Message() string {
	for _, path := range []string{"error.message", "error", "message", "detail"} {
		if r := gjson.GetBytes(e.Body, path); r.Exists() && r.Type == gjson.String {
			return r.String()
		}
	}

	if !gjson.ValidBytes(e.Body) {
		return truncate(strings.TrimSpace(string(e.Body)), maxMessageBytes)
	}
	return ""
}

const maxMessageBytes = 200

// truncate cuts s to at most n bytes without splitting a rune.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}
