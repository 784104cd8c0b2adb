// Package jsonutil provides shared helpers for decoding API payloads:
// context-wrapped errors and loose field access on untyped objects.
package jsonutil

import (
	"encoding/json"
	"fmt"
	"strings"
)

// UnmarshalWithContext unmarshals JSON data into v and wraps any error
// with the provided context message.
func UnmarshalWithContext(data []byte, v interface{}, context string) error {
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("%s: %w", context, err)
	}
	return nil
}

// GetString safely extracts a string value from a map[string]interface{}.
// Returns the value if it's a non-blank string, otherwise returns empty string.
func GetString(m map[string]interface{}, key string) string {
	if val, ok := m[key].(string); ok && strings.TrimSpace(val) != "" {
		return val
	}
	return ""
}

// CollectStrings gathers the string value of key from every object in a
// []interface{} value, skipping entries that are not objects or lack it.
// FastAPI reports validation failures as {"detail": [{"msg": ...}, ...]}.
func CollectStrings(v interface{}, key string) []string {
	list, ok := v.([]interface{})
	if !ok {
		return nil
	}
	var out []string
	for _, item := range list {
		obj, ok := item.(map[string]interface{})
		if !ok {
			continue
		}
		if s := GetString(obj, key); s != "" {
			out = append(out, s)
		}
	}
	return out
}
