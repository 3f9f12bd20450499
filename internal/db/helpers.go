package db

import (
	"encoding/json"
	"strings"
)

// NullIfEmpty helps store optional strings without wiping existing data.
func NullIfEmpty(s string) any {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return s
}

// MarshalStringList encodes an ordered string list for a JSON column.
// nil encodes as an empty array so the column is never NULL.
func MarshalStringList(list []string) string {
	if list == nil {
		list = []string{}
	}
	b, err := json.Marshal(list)
	if err != nil {
		return "[]"
	}
	return string(b)
}

// UnmarshalStringList decodes a JSON column back into a string slice.
// Bad or empty payloads decode to an empty list rather than failing the scan.
func UnmarshalStringList(raw []byte) []string {
	if len(raw) == 0 {
		return []string{}
	}
	var out []string
	if err := json.Unmarshal(raw, &out); err != nil {
		return []string{}
	}
	if out == nil {
		return []string{}
	}
	return out
}
