package adapters

import (
	"fmt"
	"time"
)

// Config is the merged per-source adapter configuration: the source-matrix
// entry's config plus any credential fields selected by rotation.
type Config map[string]interface{}

// String returns a string option or the fallback.
func (c Config) String(key, fallback string) string {
	if v, ok := c[key].(string); ok && v != "" {
		return v
	}
	return fallback
}

// Int returns an integer option or the fallback. JSON round-trips store
// numbers as float64, so both are accepted.
func (c Config) Int(key string, fallback int) int {
	switch v := c[key].(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	}
	return fallback
}

// Duration interprets an option holding seconds.
func (c Config) Duration(key string, fallback time.Duration) time.Duration {
	if n := c.Int(key, 0); n > 0 {
		return time.Duration(n) * time.Second
	}
	return fallback
}

// StringSlice returns a string-list option; scalar strings promote to a
// single-element slice.
func (c Config) StringSlice(key string) []string {
	switch v := c[key].(type) {
	case []string:
		return v
	case []interface{}:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	case string:
		if v != "" {
			return []string{v}
		}
	}
	return nil
}

// Map returns a nested object option.
func (c Config) Map(key string) map[string]interface{} {
	if v, ok := c[key].(map[string]interface{}); ok {
		return v
	}
	return nil
}

// MapSlice returns a list-of-objects option.
func (c Config) MapSlice(key string) []map[string]interface{} {
	raw, ok := c[key].([]interface{})
	if !ok {
		return nil
	}
	out := make([]map[string]interface{}, 0, len(raw))
	for _, item := range raw {
		if m, ok := item.(map[string]interface{}); ok {
			out = append(out, m)
		}
	}
	return out
}

// scalarString renders any scalar cell value as a string, the way
// heterogeneous provider frames require.
func scalarString(v interface{}) string {
	switch s := v.(type) {
	case nil:
		return ""
	case string:
		return s
	case float64:
		if s == float64(int64(s)) {
			return fmt.Sprintf("%d", int64(s))
		}
		return fmt.Sprintf("%v", s)
	default:
		return fmt.Sprintf("%v", s)
	}
}
