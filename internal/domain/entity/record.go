package entity

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Record is an opaque DTO exchanged with the admin API.
// Keys are the backend's JSON field names; numbers are kept as json.Number.
type Record map[string]any

func (r Record) ID() string {
	return Stringify(r["id"])
}

// Lookup resolves a dotted path ("features.max_ads") through nested objects.
func (r Record) Lookup(path string) (any, bool) {
	var cur any = map[string]any(r)
	for _, part := range strings.Split(path, ".") {
		m, ok := asMap(cur)
		if !ok {
			return nil, false
		}
		cur, ok = m[part]
		if !ok {
			return nil, false
		}
	}
	return cur, true
}

func (r Record) String(path string) string {
	v, _ := r.Lookup(path)
	return Stringify(v)
}

// Set assigns value at a dotted path, creating intermediate objects.
func (r Record) Set(path string, value any) {
	parts := strings.Split(path, ".")
	m := map[string]any(r)
	for _, part := range parts[:len(parts)-1] {
		next, ok := asMap(m[part])
		if !ok {
			next = make(map[string]any)
		}
		m[part] = next
		m = next
	}
	m[parts[len(parts)-1]] = value
}

func asMap(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case map[string]any:
		return m, true
	case Record:
		return m, true
	}
	return nil, false
}

// Stringify renders a decoded JSON value the way it should appear in a form field.
func Stringify(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case json.Number:
		return t.String()
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	case bool:
		return strconv.FormatBool(t)
	default:
		b, err := json.Marshal(t)
		if err != nil {
			return fmt.Sprint(t)
		}
		return string(b)
	}
}

// Truthy interprets booleans the backend sends as bool, number or string.
func Truthy(v any) bool {
	switch t := v.(type) {
	case bool:
		return t
	case json.Number:
		return t.String() != "0"
	case float64:
		return t != 0
	case int:
		return t != 0
	case string:
		b, err := strconv.ParseBool(t)
		return err == nil && b || t == "on" || t == "yes"
	}
	return false
}
