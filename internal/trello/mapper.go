package trello

import "net/url"

// Payload is the ordered wire-format mapping produced by the field mapper.
// Insertion order follows the descriptor's declaration order.
type Payload struct {
	keys   []string
	values map[string]string
}

// NewPayload returns an empty payload.
func NewPayload() *Payload {
	return &Payload{values: make(map[string]string)}
}

// Set inserts or replaces a wire field.
func (p *Payload) Set(key, value string) {
	if _, ok := p.values[key]; !ok {
		p.keys = append(p.keys, key)
	}
	p.values[key] = value
}

// Get returns the value for a wire key and whether it is present.
func (p *Payload) Get(key string) (string, bool) {
	v, ok := p.values[key]
	return v, ok
}

// Keys returns the wire keys in insertion order.
func (p *Payload) Keys() []string {
	return append([]string(nil), p.keys...)
}

// Len returns the number of wire fields.
func (p *Payload) Len() int {
	if p == nil {
		return 0
	}
	return len(p.keys)
}

// Values converts the payload to url.Values for query or form encoding.
func (p *Payload) Values() url.Values {
	vals := make(url.Values, p.Len())
	if p != nil {
		for k, v := range p.values {
			vals.Set(k, v)
		}
	}
	return vals
}

// MapFields translates the supplied logical parameters into the wire payload.
// A parameter is skipped when it was not supplied, is empty, or equals its
// declared default. Path-only fields (empty wire key) never reach the
// payload. Alias chains resolve first-non-empty-wins; the losing aliases are
// dropped unless the chain keeps them as fallback.
func (ep *Endpoint) MapFields(params ParameterSet) *Payload {
	payload := NewPayload()

	for _, f := range ep.Fields {
		if f.Wire == "" || !params.Present(f.Name) {
			continue
		}
		value := params.String(f.Name)
		if f.Default != "" && value == f.Default {
			continue
		}
		payload.Set(f.Wire, value)
	}

	for _, chain := range ep.Aliases {
		won := false
		for _, f := range chain.Fields {
			if !params.Present(f.Name) {
				continue
			}
			if won && !chain.KeepFallback {
				break
			}
			payload.Set(f.Wire, params.String(f.Name))
			won = true
		}
	}

	return payload
}
