package trello

import (
	"fmt"
	"strings"
)

// Missing returns the members of required whose value in params is unset or
// empty under the uniform emptiness rule, preserving the order of required.
func Missing(params ParameterSet, required []string) []string {
	var missing []string
	for _, name := range required {
		if !params.Present(name) {
			missing = append(missing, name)
		}
	}
	return missing
}

// validate runs the generic parameter rules for the endpoint: required set,
// exclusion groups, accompaniment rules, then the endpoint-specific check.
// It returns a fault description, or "" when the invocation may proceed.
func (ep *Endpoint) validate(params ParameterSet) string {
	if missing := Missing(params, ep.RequiredParams()); len(missing) > 0 {
		return fmt.Sprintf("Missing required parameter(s): %s", strings.Join(missing, ", "))
	}

	for _, g := range ep.Groups {
		supplied := 0
		for _, m := range g.Members {
			if params.Present(m) {
				supplied++
			}
		}
		switch {
		case supplied == 0:
			if g.ZeroMsg != "" {
				return g.ZeroMsg
			}
			return fmt.Sprintf("Must provide one of: %s", quoteList(g.Members))
		case supplied > 1 && g.Mode == ExactlyOne:
			if g.ManyMsg != "" {
				return g.ManyMsg
			}
			return fmt.Sprintf("Can only provide one of: %s", quoteList(g.Members))
		}
	}

	for _, r := range ep.Require {
		if params.Present(r.If) && !params.Present(r.Then) {
			if r.Msg != "" {
				return r.Msg
			}
			return fmt.Sprintf("'%s' is required when '%s' is provided", r.Then, r.If)
		}
	}

	if ep.Check != nil {
		return ep.Check(params)
	}
	return ""
}

func quoteList(names []string) string {
	quoted := make([]string, len(names))
	for i, n := range names {
		quoted[i] = "'" + n + "'"
	}
	return strings.Join(quoted, ", ")
}
