package trello

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// ParameterSet holds the logical parameters supplied for one tool invocation.
// A key absent from the map means the caller never supplied that parameter,
// which is distinct from the caller supplying an empty value. Values are the
// JSON-decoded argument types: string, float64, bool, []any, map[string]any
// or nil.
type ParameterSet map[string]any

// Get returns the raw value and whether the parameter was supplied at all.
func (p ParameterSet) Get(name string) (any, bool) {
	v, ok := p[name]
	return v, ok
}

// Present reports whether the parameter was supplied with a non-empty value.
func (p ParameterSet) Present(name string) bool {
	v, ok := p[name]
	return ok && !IsEmpty(v)
}

// String returns the parameter's wire-string form, or "" when unset.
func (p ParameterSet) String(name string) string {
	v, ok := p[name]
	if !ok {
		return ""
	}
	return stringify(v)
}

// IsEmpty reports whether a supplied value counts as missing: the nil
// sentinel, a string whose trimmed form is empty, or a list/mapping with zero
// entries. Anything else is present, including "0", false and the number 0.
func IsEmpty(v any) bool {
	switch t := v.(type) {
	case nil:
		return true
	case string:
		return strings.TrimSpace(t) == ""
	case []any:
		return len(t) == 0
	case []string:
		return len(t) == 0
	case map[string]any:
		return len(t) == 0
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Slice || rv.Kind() == reflect.Map {
		return rv.Len() == 0
	}
	return false
}

// stringify converts an argument value to the string form the wire payload
// carries. Numbers keep their shortest decimal form, booleans become
// "true"/"false", lists join with commas (the remote API's multi-value
// convention).
func stringify(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case bool:
		return strconv.FormatBool(t)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case int:
		return strconv.Itoa(t)
	case []any:
		parts := make([]string, 0, len(t))
		for _, item := range t {
			parts = append(parts, stringify(item))
		}
		return strings.Join(parts, ",")
	case []string:
		return strings.Join(t, ",")
	default:
		return fmt.Sprint(t)
	}
}
