package api

import (
	"bytes"
	"encoding/json"
	"fmt"
)

func malformed(op string, err error) error {
	return &Error{
		Op:      op,
		Kind:    ErrMalformedResponse,
		Message: "The server sent a response that could not be read.",
		Err:     err,
	}
}

func decodeObject(op string, body []byte) (map[string]any, error) {
	var m map[string]any
	if err := json.Unmarshal(body, &m); err != nil {
		return nil, malformed(op, err)
	}
	if m == nil {
		return nil, malformed(op, fmt.Errorf("expected a JSON object, got %q", bytes.TrimSpace(body)))
	}
	return m, nil
}

// decodeResult reads the body of a create/update call. An empty body counts
// as an empty object.
func decodeResult(op string, body []byte) (map[string]any, error) {
	if len(bytes.TrimSpace(body)) == 0 {
		return map[string]any{}, nil
	}
	return decodeObject(op, body)
}

var listEnvelopeKeys = []string{"results", "data"}

// decodeList accepts a bare JSON array or an object wrapping the array
// under one of keys, "results" or "data".
func decodeList[T any](op string, body []byte, keys ...string) ([]T, error) {
	trimmed := bytes.TrimSpace(body)

	if len(trimmed) > 0 && trimmed[0] == '[' {
		var items []T
		if err := json.Unmarshal(trimmed, &items); err != nil {
			return nil, malformed(op, err)
		}
		return items, nil
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &envelope); err != nil {
		return nil, malformed(op, err)
	}

	for _, k := range append(keys, listEnvelopeKeys...) {
		raw, ok := envelope[k]
		if !ok {
			continue
		}
		var items []T
		if err := json.Unmarshal(raw, &items); err != nil {
			return nil, malformed(op, err)
		}
		return items, nil
	}
	return nil, malformed(op, fmt.Errorf("no list found in response"))
}
