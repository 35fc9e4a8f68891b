package models

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// Lookup is an entry of a reference list: complaint types, priorities,
// executives.
type Lookup struct {
	ID   string
	Name string
}

var lookupNameKeys = []string{"name", "title", "label", "full_name", "username", "type", "priority"}

func (l *Lookup) UnmarshalJSON(b []byte) error {
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		// plain string lists are used for priorities by some deployments
		var s string
		if err2 := json.Unmarshal(b, &s); err2 != nil {
			return err
		}
		l.ID, l.Name = s, s
		return nil
	}

	l.ID = stringify(m["id"])
	for _, k := range lookupNameKeys {
		if s, ok := m[k].(string); ok && s != "" {
			l.Name = s
			break
		}
	}
	if l.Name == "" {
		l.Name = l.ID
	}
	return nil
}

func stringify(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case float64:
		if t == float64(int64(t)) {
			return strconv.FormatInt(int64(t), 10)
		}
		return strconv.FormatFloat(t, 'f', -1, 64)
	default:
		return fmt.Sprint(t)
	}
}
