package models

import (
	"fmt"
	"strings"
)

// User is the profile object returned by OTP verification. Its shape is
// owned by the backend, so it is kept as a generic JSON object.
type User map[string]any

// ID returns the "id" field rendered as a string, or "" if absent.
func (u User) ID() string {
	v, ok := u["id"]
	if !ok || v == nil {
		return ""
	}
	if f, ok := v.(float64); ok && f == float64(int64(f)) {
		return fmt.Sprintf("%d", int64(f))
	}
	return fmt.Sprint(v)
}

// DisplayName picks the first non-empty of the usual name fields.
func (u User) DisplayName() string {
	for _, k := range []string{"full_name", "name", "username", "email", "phone_number"} {
		if s, ok := u[k].(string); ok && strings.TrimSpace(s) != "" {
			return s
		}
	}
	first, _ := u["first_name"].(string)
	last, _ := u["last_name"].(string)
	return strings.TrimSpace(first + " " + last)
}
