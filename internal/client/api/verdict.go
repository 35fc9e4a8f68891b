package api

import (
	"fmt"
	"sort"
	"strings"
)

// DefaultFailureMessage is used when a failure carries no text of its own
// and the operation has no fallback.
const DefaultFailureMessage = "Something went wrong. Please try again."

// Verdict is the resolved outcome of a create or update call.
type Verdict struct {
	Success bool
	Message string
	Data    map[string]any
}

// Resolve collapses a loosely shaped response body into a Verdict. First
// match wins:
//
//  1. "message" or "msg" contains "success" (case-insensitive) → success
//  2. "success" is true                                         → success
//  3. "success" is absent                                       → success
//  4. otherwise → failure with message, msg, error or fallback, in that order
//
// Rule 1 deliberately beats an explicit "success": false: the backend sends
// that pair on some successful creations.
func Resolve(body map[string]any, fallback string) Verdict {
	msg := textOf(body["message"])
	if msg == "" {
		msg = textOf(body["msg"])
	}

	if msg != "" && strings.Contains(strings.ToLower(msg), "success") {
		return Verdict{Success: true, Message: msg, Data: body}
	}

	flag, present := body["success"]
	if b, ok := flag.(bool); ok && b {
		return Verdict{Success: true, Message: msg, Data: body}
	}
	if !present {
		return Verdict{Success: true, Message: msg, Data: body}
	}

	reason := msg
	if reason == "" {
		reason = textOf(body["error"])
	}
	if reason == "" {
		reason = fallback
	}
	if reason == "" {
		reason = DefaultFailureMessage
	}
	return Verdict{Success: false, Message: reason, Data: body}
}

// textOf renders a message-like JSON value. Field error maps and lists,
// as produced by form validation on the server, are flattened.
func textOf(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(t)
	case []any:
		parts := make([]string, 0, len(t))
		for _, item := range t {
			if s := textOf(item); s != "" {
				parts = append(parts, s)
			}
		}
		return strings.Join(parts, "; ")
	case map[string]any:
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		parts := make([]string, 0, len(keys))
		for _, k := range keys {
			if s := textOf(t[k]); s != "" {
				parts = append(parts, k+": "+s)
			}
		}
		return strings.Join(parts, "; ")
	case bool:
		return ""
	default:
		return fmt.Sprint(t)
	}
}
