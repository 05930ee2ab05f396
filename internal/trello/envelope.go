package trello

import "strings"

// Envelope is the uniform wrapper returned for every tool invocation.
// Exactly one of the data-bearing success and the error-bearing failure
// branches is populated, and "successful" agrees with which one.
type Envelope map[string]any

// Successful reports which branch the envelope carries.
func (e Envelope) Successful() bool {
	ok, _ := e["successful"].(bool)
	return ok
}

// Success wraps a decoded result. Convenience fields named in the
// descriptor's Extract map are copied out of mapping results by shallow
// lookup; a missing key is simply left out, never a fault.
func (ep *Endpoint) Success(params ParameterSet, data any) Envelope {
	env := Envelope{
		"successful": true,
		"data":       data,
	}
	ep.decorate(env, params)

	if m, ok := data.(map[string]any); ok {
		for key, resultKey := range ep.Extract {
			if v, found := m[resultKey]; found {
				env[key] = v
			} else {
				env[key] = nil
			}
		}
	}
	if ep.Count != "" {
		if list, ok := data.([]any); ok {
			env[ep.Count] = len(list)
		} else {
			env[ep.Count] = 0
		}
	}
	if ep.OK != "" {
		env["message"] = renderMessage(ep.OK, params)
	}
	return env
}

// Failure wraps a fault description. Used for validation faults and dispatch
// errors alike; the caller never sees an uncaught error.
func (ep *Endpoint) Failure(params ParameterSet, fault string) Envelope {
	env := Envelope{
		"successful": false,
		"error":      fault,
	}
	ep.decorate(env, params)
	if ep.Fail != "" {
		env["message"] = renderMessage(ep.Fail, params)
	}
	return env
}

func (ep *Endpoint) decorate(env Envelope, params ParameterSet) {
	if ep.Action != "" {
		env["action"] = ep.Action
	}
	for key, param := range ep.Echo {
		if v, ok := params.Get(param); ok {
			env[key] = v
		} else {
			env[key] = nil
		}
	}
}

// renderMessage substitutes {param} placeholders with the supplied values.
// Unset parameters render as "".
func renderMessage(template string, params ParameterSet) string {
	return placeholderRe.ReplaceAllStringFunc(template, func(m string) string {
		return params.String(strings.Trim(m, "{}"))
	})
}
