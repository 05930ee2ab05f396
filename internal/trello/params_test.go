package trello

import "testing"

func TestIsEmpty(t *testing.T) {
	cases := []struct {
		name  string
		value any
		empty bool
	}{
		{"nil", nil, true},
		{"empty string", "", true},
		{"whitespace string", "   \t", true},
		{"empty list", []any{}, true},
		{"empty map", map[string]any{}, true},
		{"zero string", "0", false},
		{"false", false, false},
		{"zero number", float64(0), false},
		{"plain string", "abc", false},
		{"padded string", "  abc  ", false},
		{"list with item", []any{"x"}, false},
		{"map with entry", map[string]any{"k": "v"}, false},
	}
	for _, tc := range cases {
		if got := IsEmpty(tc.value); got != tc.empty {
			t.Errorf("%s: IsEmpty(%v) = %v, want %v", tc.name, tc.value, got, tc.empty)
		}
	}
}

func TestParameterSetPresent(t *testing.T) {
	params := ParameterSet{
		"supplied": "value",
		"blank":    "  ",
		"zero":     "0",
		"off":      false,
	}

	if params.Present("absent") {
		t.Error("absent parameter should not be present")
	}
	if params.Present("blank") {
		t.Error("blank parameter should not be present")
	}
	if !params.Present("supplied") {
		t.Error("supplied parameter should be present")
	}
	if !params.Present("zero") {
		t.Error("the string \"0\" should count as present")
	}
	if !params.Present("off") {
		t.Error("false should count as present")
	}
}

func TestParameterSetString(t *testing.T) {
	params := ParameterSet{
		"text":    "hello",
		"flag":    true,
		"whole":   float64(42),
		"decimal": float64(1.5),
		"list":    []any{"a", "b", "c"},
	}

	cases := []struct {
		name string
		want string
	}{
		{"text", "hello"},
		{"flag", "true"},
		{"whole", "42"},
		{"decimal", "1.5"},
		{"list", "a,b,c"},
		{"absent", ""},
	}
	for _, tc := range cases {
		if got := params.String(tc.name); got != tc.want {
			t.Errorf("String(%q) = %q, want %q", tc.name, got, tc.want)
		}
	}
}
