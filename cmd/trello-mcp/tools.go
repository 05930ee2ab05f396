package main

import (
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/trellomcp/trello-mcp/internal/common"
	"github.com/trellomcp/trello-mcp/internal/trello"
)

// newEndpointTool builds the MCP tool definition for a catalog descriptor.
// Path parameters and required fields are marked required in the schema;
// everything else is optional. All parameters are strings on the wire.
func newEndpointTool(ep *trello.Endpoint) mcp.Tool {
	required := make(map[string]bool)
	for _, name := range ep.RequiredParams() {
		required[name] = true
	}

	opts := []mcp.ToolOption{mcp.WithDescription(ep.Desc)}
	for _, f := range ep.SchemaFields() {
		fieldOpts := []mcp.PropertyOption{mcp.Description(f.Desc)}
		if required[f.Name] {
			fieldOpts = append(fieldOpts, mcp.Required())
		}
		opts = append(opts, mcp.WithString(f.Name, fieldOpts...))
	}
	return mcp.NewTool(ep.Name, opts...)
}

// registerTools wires every catalog descriptor plus the composite
// operations onto the MCP server.
func registerTools(s *server.MCPServer, engine *trello.Engine, logger *common.Logger) {
	for _, ep := range catalog {
		s.AddTool(newEndpointTool(ep), handleEndpoint(engine, ep, logger))
	}

	s.AddTool(mcp.NewTool("TRELLO_ADD_CHECKLISTS",
		mcp.WithDescription("Add checklist to card or board. Creates a new checklist on a trello card or board, either empty or by copying an existing checklist. Provide id_card or id_board as the target."),
		mcp.WithString("id_card", mcp.Description("The ID of the card to add the checklist to.")),
		mcp.WithString("id_board", mcp.Description("The ID of the board to add the checklist to.")),
		mcp.WithString("name", mcp.Description("The name of the checklist to create.")),
		mcp.WithString("id_checklist_source", mcp.Description("The ID of an existing checklist to copy from.")),
		mcp.WithString("pos", mcp.Description("Position of the checklist (top, bottom, or a number).")),
	), handleAddChecklists(engine, logger))

	s.AddTool(mcp.NewTool("TRELLO_ADD_LISTS_MOVE_ALL_CARDS_BY_ID_LIST",
		mcp.WithDescription("Move all cards in list. Moves all cards from a source trello list to the first list of a destination board. Partial failures are reported per card."),
		mcp.WithString("id_list", mcp.Required(), mcp.Description("The ID of the source list to move all cards from.")),
		mcp.WithString("id_board", mcp.Required(), mcp.Description("The ID of the destination board to move the cards to.")),
	), handleMoveAllCards(engine, logger))

	s.AddTool(mcp.NewTool("TRELLO_GET_ACTIONS_MEMBER_CREATOR_BY_ID_ACTION",
		mcp.WithDescription("Get action member creator. Retrieves the member who created a specific trello action, with optional field filtering."),
		mcp.WithString("id_action", mcp.Required(), mcp.Description("The ID of the action to get the creator for.")),
		mcp.WithString("fields", mcp.Description("Comma-separated member fields to return, or 'all'.")),
	), handleActionMemberCreator(engine, logger))

	s.AddTool(mcp.NewTool("TRELLO_ADD_BOARDS_CALENDAR_KEY_GENERATE_BY_ID_BOARD",
		mcp.WithDescription("Get board calendar feed URL. Retrieves the calendar feed URL for the trello board specified by idboard for calendar integration."),
		mcp.WithString("id_board", mcp.Required(), mcp.Description("The ID of the board to get the calendar feed URL for.")),
	), handleCalendarKey(engine, logger))

	s.AddTool(mcp.NewTool("TRELLO_CARD_GET_BY_ID_FIELD",
		mcp.WithDescription("Get card by id or field. Retrieves a trello card by its id, either the full card ('all') or a single named field."),
		mcp.WithString("id_card", mcp.Required(), mcp.Description("The ID of the card to retrieve.")),
		mcp.WithString("field", mcp.Description("The card field to retrieve, or 'all' for the full card. Defaults to all.")),
	), handleCardGetByField(engine, logger))
}
