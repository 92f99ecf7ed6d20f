package handler

import (
	"encoding/json"
	"strconv"
	"strings"
)

// StringList accepts either a JSON array of strings or a single comma-separated
// string. Both shapes normalize to trimmed, non-empty elements, so downstream
// code only ever sees a clean list.
type StringList []string

func (l *StringList) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err == nil {
		*l = splitCommaSeparated(raw)
		return nil
	}

	var items []string
	if err := json.Unmarshal(data, &items); err != nil {
		return err
	}

	out := make(StringList, 0, len(items))
	for _, item := range items {
		if trimmed := strings.TrimSpace(item); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	*l = out
	return nil
}

// FlexFloat parses a JSON number or a numeric string; the admin forms post
// numbers as text.
type FlexFloat float64

func (f *FlexFloat) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		if s == "" {
			*f = 0
			return nil
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return err
		}
		*f = FlexFloat(v)
		return nil
	}

	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*f = FlexFloat(v)
	return nil
}

// Helper to split comma-separated strings
func splitCommaSeparated(s string) StringList {
	var result StringList
	parts := strings.Split(s, ",")
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
