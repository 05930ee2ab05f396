package trello

import (
	"context"
	"net/url"

	"github.com/trellomcp/trello-mcp/internal/common"
)

// Engine drives one endpoint invocation end to end: validate the caller's
// parameters, translate them to the wire payload, dispatch the request and
// normalize the outcome. One engine serves every registered tool; each
// invocation has its own call stack and the engine holds no mutable state.
type Engine struct {
	client *Client
	logger *common.Logger
}

// NewEngine creates an engine on top of a dispatcher.
func NewEngine(client *Client, logger *common.Logger) *Engine {
	return &Engine{client: client, logger: logger}
}

// Client exposes the dispatcher for composite operations.
func (e *Engine) Client() *Client { return e.client }

// Call invokes one endpoint. Validation faults short-circuit with a failure
// envelope before any network I/O; dispatch faults collapse into the same
// envelope shape. Call never returns an error to the host runtime.
func (e *Engine) Call(ctx context.Context, ep *Endpoint, params ParameterSet) Envelope {
	if fault := ep.validate(params); fault != "" {
		e.logger.Debug().Str("tool", ep.Name).Str("fault", fault).Msg("validation failed")
		return ep.Failure(params, fault)
	}

	path := ep.ResolvePath(params, url.PathEscape)
	payload := ep.MapFields(params)

	data, err := e.client.Do(ctx, ep.Method, path, payload, nil)
	if err != nil {
		return ep.Failure(params, err.Error())
	}
	return ep.Success(params, data)
}
