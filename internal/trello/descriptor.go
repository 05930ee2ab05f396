package trello

import (
	"regexp"
	"strings"
)

// Field declares one logical parameter of an endpoint.
type Field struct {
	Name     string // caller-facing logical name
	Wire     string // wire key, may contain '/' for nested keys; "" for path-only params
	Default  string // value omitted from the payload when the caller supplies it
	Required bool
	Desc     string // parameter description for the tool schema
}

// GroupMode selects how an exclusion group is enforced.
type GroupMode int

const (
	// ExactlyOne requires exactly one non-empty member: zero is a "missing
	// one of" fault, two or more an "ambiguous" fault.
	ExactlyOne GroupMode = iota
	// AtLeastOne requires one or more non-empty members; combinations are
	// allowed (copy-and-rename style endpoints).
	AtLeastOne
)

// ExclusiveGroup declares a set of logical parameters whose presence is
// constrained relative to each other.
type ExclusiveGroup struct {
	Members []string
	Mode    GroupMode
	ZeroMsg string // fault text when no member is supplied
	ManyMsg string // fault text when too many members are supplied (ExactlyOne)
}

// RequireRule declares a parameter that must accompany another. Checked after
// the exclusion groups, so a rule whose members collide with a group never
// fires ahead of the group fault.
type RequireRule struct {
	If   string // when this parameter is non-empty...
	Then string // ...this one must be too
	Msg  string
}

// AliasChain declares two or more logical parameters that address the same
// capability. The first non-empty alias wins; later non-empty aliases are
// dropped unless KeepFallback is set, in which case they are emitted under
// their own wire keys as informational fallback.
type AliasChain struct {
	Fields       []Field // precedence order
	KeepFallback bool
}

// Endpoint is the static declaration of one remote operation: method, path
// template, parameter requirements and the logical-to-wire field mapping.
// Constructed once at startup and never mutated.
type Endpoint struct {
	Name   string // tool name
	Desc   string // tool description
	Method string
	Path   string // template with {placeholders} naming logical parameters

	Fields  []Field // declared order drives the payload order
	Aliases []AliasChain
	Groups  []ExclusiveGroup
	Require []RequireRule

	// Check runs endpoint-specific value validation after the generic rules.
	// It returns a fault description, or "" when the parameters are fine.
	Check func(ParameterSet) string

	Action  string            // echoed in every envelope
	Echo    map[string]string // envelope key -> logical parameter to echo
	Extract map[string]string // envelope key -> result key (shallow, best-effort)
	Count   string            // envelope key for the list length of the result
	OK      string            // success message template, {param} placeholders
	Fail    string            // failure message template
}

var placeholderRe = regexp.MustCompile(`\{(\w+)\}`)

// PathParams returns the placeholder names in the path template, in order.
// The "token" placeholder is excluded: it resolves from the credential token
// in the dispatcher, not from caller parameters.
func (ep *Endpoint) PathParams() []string {
	matches := placeholderRe.FindAllStringSubmatch(ep.Path, -1)
	names := make([]string, 0, len(matches))
	for _, m := range matches {
		if m[1] == "token" {
			continue
		}
		names = append(names, m[1])
	}
	return names
}

// RequiredParams returns the logical parameters that must be non-empty:
// path placeholders plus fields declared Required, deduplicated in
// declaration order.
func (ep *Endpoint) RequiredParams() []string {
	seen := make(map[string]bool)
	var names []string
	add := func(n string) {
		if !seen[n] {
			seen[n] = true
			names = append(names, n)
		}
	}
	for _, n := range ep.PathParams() {
		add(n)
	}
	for _, f := range ep.Fields {
		if f.Required {
			add(f.Name)
		}
	}
	return names
}

// SchemaFields returns every declared logical parameter, plain fields first
// then alias chains, in declaration order. Used to build the tool schema and
// to pick caller arguments out of a request.
func (ep *Endpoint) SchemaFields() []Field {
	fields := make([]Field, 0, len(ep.Fields))
	fields = append(fields, ep.Fields...)
	for _, chain := range ep.Aliases {
		fields = append(fields, chain.Fields...)
	}
	return fields
}

// ResolvePath substitutes path placeholders with URL-escaped caller values.
// The "token" placeholder is left for the dispatcher.
func (ep *Endpoint) ResolvePath(params ParameterSet, escape func(string) string) string {
	return placeholderRe.ReplaceAllStringFunc(ep.Path, func(m string) string {
		name := strings.Trim(m, "{}")
		if name == "token" {
			return m
		}
		return escape(params.String(name))
	})
}
