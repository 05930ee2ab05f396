package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/trellomcp/trello-mcp/internal/common"
	"github.com/trellomcp/trello-mcp/internal/trello"
)

// paramSetFromRequest picks the declared schema fields out of the tool
// call arguments. Undeclared arguments are ignored rather than rejected,
// and absent arguments stay absent so the emptiness rules apply cleanly.
func paramSetFromRequest(request mcp.CallToolRequest, fields []trello.Field) trello.ParameterSet {
	args := request.GetArguments()
	params := trello.ParameterSet{}
	for _, f := range fields {
		if v, ok := args[f.Name]; ok {
			params[f.Name] = v
		}
	}
	return params
}

// envelopeResult serializes a response envelope as the tool result text.
// Validation and upstream failures are still successful tool calls; only a
// marshalling problem surfaces as a protocol error.
func envelopeResult(env trello.Envelope) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(env, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to serialize response: %v", err)), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}

// handleEndpoint returns the generic handler for a catalog descriptor.
func handleEndpoint(engine *trello.Engine, ep *trello.Endpoint, logger *common.Logger) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		logger.Debug().Str("tool", ep.Name).Msg("Handling tool call")
		params := paramSetFromRequest(request, ep.SchemaFields())
		return envelopeResult(engine.Call(ctx, ep, params))
	}
}

func handleAddChecklists(engine *trello.Engine, logger *common.Logger) server.ToolHandlerFunc {
	fields := []trello.Field{
		{Name: "id_card"}, {Name: "id_board"}, {Name: "name"},
		{Name: "id_checklist_source"}, {Name: "pos"},
	}
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		logger.Debug().Str("tool", "TRELLO_ADD_CHECKLISTS").Msg("Handling tool call")
		params := paramSetFromRequest(request, fields)
		return envelopeResult(engine.AddChecklist(ctx, params))
	}
}

func handleMoveAllCards(engine *trello.Engine, logger *common.Logger) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		logger.Debug().Str("tool", "TRELLO_ADD_LISTS_MOVE_ALL_CARDS_BY_ID_LIST").Msg("Handling tool call")
		args := request.GetArguments()
		idList, _ := args["id_list"].(string)
		idBoard, _ := args["id_board"].(string)
		return envelopeResult(engine.MoveAllCards(ctx, idList, idBoard))
	}
}

func handleActionMemberCreator(engine *trello.Engine, logger *common.Logger) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		logger.Debug().Str("tool", "TRELLO_GET_ACTIONS_MEMBER_CREATOR_BY_ID_ACTION").Msg("Handling tool call")
		args := request.GetArguments()
		idAction, _ := args["id_action"].(string)
		fields, _ := args["fields"].(string)
		return envelopeResult(engine.ActionMemberCreator(ctx, idAction, fields))
	}
}

// cardGetAll and cardGetField split TRELLO_CARD_GET_BY_ID_FIELD on its
// 'field' parameter: 'all' (or absent) fetches the whole card, anything
// else fetches that single field.
var cardGetAll = &trello.Endpoint{
	Name:   "TRELLO_CARD_GET_BY_ID_FIELD",
	Method: http.MethodGet,
	Path:   "/cards/{id_card}",
	Fields: []trello.Field{
		{Name: "id_card"},
	},
	Action: "get_card",
	Echo:   map[string]string{"card_id": "id_card", "field": "field"},
	OK:     "Successfully retrieved card {id_card}",
	Fail:   "Failed to retrieve card {id_card}",
}

var cardGetField = &trello.Endpoint{
	Name:   "TRELLO_CARD_GET_BY_ID_FIELD",
	Method: http.MethodGet,
	Path:   "/cards/{id_card}/{field}",
	Fields: []trello.Field{
		{Name: "id_card"},
		{Name: "field"},
	},
	Action: "get_card_field",
	Echo:   map[string]string{"card_id": "id_card", "field": "field"},
	OK:     "Successfully retrieved field '{field}' of card {id_card}",
	Fail:   "Failed to retrieve field '{field}' of card {id_card}",
}

func handleCardGetByField(engine *trello.Engine, logger *common.Logger) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		logger.Debug().Str("tool", "TRELLO_CARD_GET_BY_ID_FIELD").Msg("Handling tool call")
		args := request.GetArguments()
		params := trello.ParameterSet{}
		if v, ok := args["id_card"]; ok {
			params["id_card"] = v
		}
		field, _ := args["field"].(string)
		if field == "" || field == "all" {
			params["field"] = "all"
			return envelopeResult(engine.Call(ctx, cardGetAll, params))
		}
		params["field"] = field
		return envelopeResult(engine.Call(ctx, cardGetField, params))
	}
}

// calendarKeyEndpoint verifies board access before the feed URL is built;
// the URL itself is derived, not returned by the API.
var calendarKeyEndpoint = &trello.Endpoint{
	Name:   "TRELLO_ADD_BOARDS_CALENDAR_KEY_GENERATE_BY_ID_BOARD",
	Method: http.MethodGet,
	Path:   "/boards/{id_board}",
	Fields: []trello.Field{
		{Name: "id_board"},
	},
	Action: "get_calendar_feed_url",
	Echo:   map[string]string{"id_board": "id_board"},
	OK:     "Successfully retrieved calendar feed URL for board {id_board}",
	Fail:   "Failed to get calendar feed URL for board {id_board}",
}

func handleCalendarKey(engine *trello.Engine, logger *common.Logger) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		logger.Debug().Str("tool", calendarKeyEndpoint.Name).Msg("Handling tool call")
		params := paramSetFromRequest(request, calendarKeyEndpoint.Fields)
		env := engine.Call(ctx, calendarKeyEndpoint, params)
		if env.Successful() {
			env["calendar_url"] = fmt.Sprintf("https://trello.com/calendar/%s.ics", params.String("id_board"))
		}
		return envelopeResult(env)
	}
}
