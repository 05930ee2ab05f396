package main

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/trellomcp/trello-mcp/internal/trello"
)

// catalog is the table of endpoint descriptors the generic engine serves.
// Each row collapses one near-identical tool into data: method, path
// template, parameter declarations with their wire names and defaults,
// exclusion rules, and the envelope decoration. The composite operations
// (bulk card move, checklist creation with a dynamic target, member-creator
// extraction) live in handlers.go instead.
var catalog = []*trello.Endpoint{

	// ---- Actions ----

	{
		Name:   "TRELLO_ACTION_GET_BOARD_BY_ID_ACTION",
		Desc:   "Get board by action id. Deprecated: use `get actions board by id action` instead. Retrieves details for the trello board associated with a specific action id.",
		Method: http.MethodGet,
		Path:   "/actions/{id_action}/board",
		Fields: []trello.Field{
			{Name: "id_action", Desc: "The ID of the action to retrieve board information for."},
			{Name: "fields", Wire: "fields", Default: "all", Desc: "Fields to return. Defaults to all."},
		},
		Action: "get_board_by_action",
		Echo:   map[string]string{"id_action": "id_action", "fields": "fields"},
		OK:     "Successfully retrieved board for action {id_action}",
		Fail:   "Failed to retrieve board for action {id_action}",
	},
	{
		Name:   "TRELLO_ACTION_GET_BY_ID",
		Desc:   "Get action by ID. Deprecated: use `get actions by id action` instead. Retrieves detailed information about a specific trello action by its id.",
		Method: http.MethodGet,
		Path:   "/actions/{id_action}",
		Fields: []trello.Field{
			{Name: "id_action", Desc: "The ID of the action to retrieve (required)."},
			{Name: "display", Wire: "display", Desc: "Display format for the action."},
			{Name: "entities", Wire: "entities", Desc: "Entities to include in the response."},
			{Name: "fields", Wire: "fields", Default: "all", Desc: "Fields to return. Defaults to all."},
			{Name: "member", Wire: "member", Desc: "Member information to include."},
			{Name: "member_creator", Wire: "memberCreator", Desc: "Member creator information to include."},
			{Name: "member_creator_fields", Wire: "memberCreatorFields", Default: "avatarHash,fullName,initials,username", Desc: "Member creator fields to return."},
			{Name: "member_fields", Wire: "memberFields", Default: "avatarHash,fullName,initials,username", Desc: "Member fields to return."},
		},
		Action: "get_action_by_id",
		Echo:   map[string]string{"id_action": "id_action"},
		OK:     "Successfully retrieved action {id_action}",
		Fail:   "Failed to retrieve action {id_action}",
	},
	{
		Name:   "TRELLO_ACTION_GET_LIST_BY_ID_ACTION",
		Desc:   "Get list by action id. Deprecated: use `get actions list by id action` instead. Retrieves the trello list associated with a specific action.",
		Method: http.MethodGet,
		Path:   "/actions/{id_action}/list",
		Fields: []trello.Field{
			{Name: "id_action", Desc: "The ID of the action to retrieve list information for."},
			{Name: "fields", Wire: "fields", Default: "all", Desc: "Fields to return. Defaults to all."},
		},
		Action: "get_list_by_action",
		Echo:   map[string]string{"id_action": "id_action", "fields": "fields"},
		OK:     "Successfully retrieved list for action {id_action}",
		Fail:   "Failed to retrieve list for action {id_action}",
	},
	{
		Name:   "TRELLO_GET_ACTIONS_BOARD_BY_ID_ACTION",
		Desc:   "Get board by action id. Retrieves details for the trello board associated with a specific action id, returning board information only.",
		Method: http.MethodGet,
		Path:   "/actions/{id_action}/board",
		Fields: []trello.Field{
			{Name: "id_action", Desc: "The ID of the action to get the board for."},
			{Name: "fields", Wire: "fields", Desc: "Fields to return. Defaults to all."},
		},
		Action: "get_actions_board",
		Echo:   map[string]string{"action_id": "id_action"},
		Extract: map[string]string{
			"board_id":   "id",
			"board_name": "name",
		},
		OK:   "Successfully retrieved board for action {id_action}",
		Fail: "Failed to retrieve board for action {id_action}",
	},
	{
		Name:   "TRELLO_GET_ACTIONS_BOARD_BY_ID_ACTION_BY_FIELD",
		Desc:   "Get a board field by action id. Retrieves a single field of the board associated with an action.",
		Method: http.MethodGet,
		Path:   "/actions/{id_action}/board/{field}",
		Fields: []trello.Field{
			{Name: "id_action", Desc: "The ID of the action to get the board field for."},
			{Name: "field", Desc: "The board field to retrieve (e.g. name, desc, closed)."},
		},
		Action: "get_actions_board_field",
		Echo:   map[string]string{"action_id": "id_action", "field": "field"},
		OK:     "Successfully retrieved board field '{field}' for action {id_action}",
		Fail:   "Failed to retrieve board field '{field}' for action {id_action}",
	},
	{
		Name:   "TRELLO_GET_ACTIONS_BY_ID_ACTION",
		Desc:   "Get action by ID. Retrieves detailed information about a specific trello action by its id.",
		Method: http.MethodGet,
		Path:   "/actions/{id_action}",
		Fields: []trello.Field{
			{Name: "id_action", Desc: "The ID of the action to retrieve (required)."},
			{Name: "display", Wire: "display", Desc: "Display format for the action."},
			{Name: "entities", Wire: "entities", Desc: "Entities to include in the response."},
			{Name: "fields", Wire: "fields", Default: "all", Desc: "Fields to return. Defaults to all."},
			{Name: "member", Wire: "member", Desc: "Member information to include."},
			{Name: "member_creator", Wire: "memberCreator", Desc: "Member creator information to include."},
			{Name: "member_creator_fields", Wire: "memberCreatorFields", Default: "avatarHash,fullName,initials,username", Desc: "Member creator fields to return."},
			{Name: "member_fields", Wire: "memberFields", Default: "avatarHash,fullName,initials,username", Desc: "Member fields to return."},
		},
		Action:  "get_action",
		Echo:    map[string]string{"action_id": "id_action"},
		Extract: map[string]string{"action_type": "type"},
		OK:      "Successfully retrieved action {id_action}",
		Fail:    "Failed to retrieve action {id_action}",
	},
	{
		Name:   "TRELLO_GET_ACTIONS_BY_ID_ACTION_BY_FIELD",
		Desc:   "Get an action field. Retrieves a single field of a trello action by its id.",
		Method: http.MethodGet,
		Path:   "/actions/{id_action}/{field}",
		Fields: []trello.Field{
			{Name: "id_action", Desc: "The ID of the action."},
			{Name: "field", Desc: "The action field to retrieve (e.g. type, date, data)."},
		},
		Action: "get_action_field",
		Echo:   map[string]string{"action_id": "id_action", "field": "field"},
		OK:     "Successfully retrieved field '{field}' for action {id_action}",
		Fail:   "Failed to retrieve field '{field}' for action {id_action}",
	},
	{
		Name:   "TRELLO_GET_ACTIONS_CARD_BY_ID_ACTION",
		Desc:   "Get card by action id. Retrieves the trello card associated with a specific action.",
		Method: http.MethodGet,
		Path:   "/actions/{id_action}/card",
		Fields: []trello.Field{
			{Name: "id_action", Desc: "The ID of the action to get the card for."},
			{Name: "fields", Wire: "fields", Default: "all", Desc: "Fields to return. Defaults to all."},
		},
		Action: "get_actions_card",
		Echo:   map[string]string{"action_id": "id_action"},
		Extract: map[string]string{
			"card_id":   "id",
			"card_name": "name",
		},
		OK:   "Successfully retrieved card for action {id_action}",
		Fail: "Failed to retrieve card for action {id_action}",
	},
	{
		Name:   "TRELLO_GET_ACTIONS_CARD_BY_ID_ACTION_BY_FIELD",
		Desc:   "Get a card field by action id. Retrieves a single field of the card associated with an action.",
		Method: http.MethodGet,
		Path:   "/actions/{id_action}/card/{field}",
		Fields: []trello.Field{
			{Name: "id_action", Desc: "The ID of the action to get the card field for."},
			{Name: "field", Desc: "The card field to retrieve (e.g. name, desc, due)."},
		},
		Action: "get_actions_card_field",
		Echo:   map[string]string{"action_id": "id_action", "field": "field"},
		OK:     "Successfully retrieved card field '{field}' for action {id_action}",
		Fail:   "Failed to retrieve card field '{field}' for action {id_action}",
	},
	{
		Name:   "TRELLO_GET_ACTIONS_DISPLAY_BY_ID_ACTION",
		Desc:   "Get action display. Retrieves the display information for a trello action.",
		Method: http.MethodGet,
		Path:   "/actions/{id_action}/display",
		Fields: []trello.Field{
			{Name: "id_action", Desc: "The ID of the action to get display information for."},
		},
		Action: "get_action_display",
		Echo:   map[string]string{"action_id": "id_action"},
		OK:     "Successfully retrieved display information for action {id_action}",
		Fail:   "Failed to retrieve display information for action {id_action}",
	},
	{
		Name:   "TRELLO_GET_ACTIONS_ENTITIES_BY_ID_ACTION",
		Desc:   "Get action entities. Retrieves the entities associated with a trello action.",
		Method: http.MethodGet,
		Path:   "/actions/{id_action}/entities",
		Fields: []trello.Field{
			{Name: "id_action", Desc: "The ID of the action to get entities for."},
		},
		Action: "get_action_entities",
		Echo:   map[string]string{"action_id": "id_action"},
		OK:     "Successfully retrieved entities for action {id_action}",
		Fail:   "Failed to retrieve entities for action {id_action}",
	},
	{
		Name:   "TRELLO_GET_ACTIONS_LIST_BY_ID_ACTION",
		Desc:   "Get list by action id. Retrieves the trello list associated with a specific action.",
		Method: http.MethodGet,
		Path:   "/actions/{id_action}/list",
		Fields: []trello.Field{
			{Name: "id_action", Desc: "The ID of the action to get the list for."},
			{Name: "fields", Wire: "fields", Default: "all", Desc: "Fields to return. Defaults to all."},
		},
		Action: "get_actions_list",
		Echo:   map[string]string{"action_id": "id_action"},
		Extract: map[string]string{
			"list_id":   "id",
			"list_name": "name",
		},
		OK:   "Successfully retrieved list for action {id_action}",
		Fail: "Failed to retrieve list for action {id_action}",
	},
	{
		Name:   "TRELLO_GET_ACTIONS_LIST_BY_ID_ACTION_BY_FIELD",
		Desc:   "Get a list field by action id. Retrieves a single field of the list associated with an action.",
		Method: http.MethodGet,
		Path:   "/actions/{id_action}/list/{field}",
		Fields: []trello.Field{
			{Name: "id_action", Desc: "The ID of the action to get the list field for."},
			{Name: "field", Desc: "The list field to retrieve (e.g. name, closed, pos)."},
		},
		Action: "get_actions_list_field",
		Echo:   map[string]string{"action_id": "id_action", "field": "field"},
		OK:     "Successfully retrieved list field '{field}' for action {id_action}",
		Fail:   "Failed to retrieve list field '{field}' for action {id_action}",
	},
	{
		Name:   "TRELLO_GET_ACTIONS_MEMBER_BY_ID_ACTION",
		Desc:   "Get member by action id. Retrieves the trello member associated with a specific action.",
		Method: http.MethodGet,
		Path:   "/actions/{id_action}/member",
		Fields: []trello.Field{
			{Name: "id_action", Desc: "The ID of the action to get the member for."},
			{Name: "fields", Wire: "fields", Default: "all", Desc: "Fields to return. Defaults to all."},
		},
		Action: "get_actions_member",
		Echo:   map[string]string{"action_id": "id_action"},
		Extract: map[string]string{
			"member_id":       "id",
			"member_username": "username",
		},
		OK:   "Successfully retrieved member for action {id_action}",
		Fail: "Failed to retrieve member for action {id_action}",
	},
	{
		Name:   "TRELLO_GET_ACTIONS_MEMBER_BY_ID_ACTION_BY_FIELD",
		Desc:   "Get a member field by action id. Retrieves a single field of the member associated with an action.",
		Method: http.MethodGet,
		Path:   "/actions/{id_action}/member/{field}",
		Fields: []trello.Field{
			{Name: "id_action", Desc: "The ID of the action to get the member field for."},
			{Name: "field", Desc: "The member field to retrieve (e.g. username, fullName)."},
		},
		Action: "get_actions_member_field",
		Echo:   map[string]string{"action_id": "id_action", "field": "field"},
		OK:     "Successfully retrieved member field '{field}' for action {id_action}",
		Fail:   "Failed to retrieve member field '{field}' for action {id_action}",
	},

	// ---- Boards ----

	{
		Name:   "TRELLO_ADD_BOARDS",
		Desc:   "Add board. Creates a new trello board; the 'name' parameter is required for creation, and various preferences can be customized or cloned from a source board.",
		Method: http.MethodPost,
		Path:   "/boards",
		Fields: []trello.Field{
			{Name: "name", Wire: "name", Required: true, Desc: "The name of the board to create (required)."},
			{Name: "closed", Wire: "closed", Desc: "Whether the board is closed."},
			{Name: "desc", Wire: "desc", Desc: "Description of the board."},
			{Name: "id_board_source", Wire: "idBoardSource", Desc: "ID of the board to copy from."},
			{Name: "id_organization", Wire: "idOrganization", Desc: "ID of the organization to add the board to."},
			{Name: "keep_from_source", Wire: "keepFromSource", Desc: "What to keep from the source board."},
			{Name: "label_names_blue", Wire: "labelNames/blue", Desc: "Name for blue label."},
			{Name: "label_names_green", Wire: "labelNames/green", Desc: "Name for green label."},
			{Name: "label_names_orange", Wire: "labelNames/orange", Desc: "Name for orange label."},
			{Name: "label_names_purple", Wire: "labelNames/purple", Desc: "Name for purple label."},
			{Name: "label_names_red", Wire: "labelNames/red", Desc: "Name for red label."},
			{Name: "label_names_yellow", Wire: "labelNames/yellow", Desc: "Name for yellow label."},
			{Name: "power_ups", Wire: "powerUps", Desc: "Power-ups to enable."},
			{Name: "prefs_background", Wire: "prefs/background", Desc: "Background preference."},
			{Name: "prefs_calendar_feed_enabled", Wire: "prefs/calendarFeedEnabled", Desc: "Whether calendar feed is enabled."},
			{Name: "prefs_card_aging", Wire: "prefs/cardAging", Desc: "Card aging preference."},
			{Name: "prefs_card_covers", Wire: "prefs/cardCovers", Desc: "Card covers preference."},
			{Name: "prefs_comments", Wire: "prefs/comments", Desc: "Comments preference."},
			{Name: "prefs_invitations", Wire: "prefs/invitations", Desc: "Invitations preference."},
			{Name: "prefs_permission_level", Wire: "prefs/permissionLevel", Desc: "Permission level preference."},
			{Name: "prefs_self_join", Wire: "prefs/selfJoin", Desc: "Self-join preference."},
			{Name: "prefs_voting", Wire: "prefs/voting", Desc: "Voting preference."},
			{Name: "subscribed", Wire: "subscribed", Desc: "Whether the user is subscribed to the board."},
		},
		Action:  "add_board",
		Echo:    map[string]string{"board_name": "name"},
		Extract: map[string]string{"board_id": "id"},
		OK:      "Successfully created board '{name}'",
		Fail:    "Failed to create board '{name}'",
	},
	{
		Name:   "TRELLO_ADD_BOARDS_EMAIL_KEY_GENERATE_BY_ID_BOARD",
		Desc:   "Generate email key for board. Generates a new email key for the trello board specified by idboard; this invalidates any previously existing email key.",
		Method: http.MethodPost,
		Path:   "/boards/{id_board}/emailKey/generate",
		Fields: []trello.Field{
			{Name: "id_board", Desc: "The ID of the board to generate an email key for."},
		},
		Action: "generate_email_key",
		Echo:   map[string]string{"id_board": "id_board"},
		OK:     "Successfully generated email key for board {id_board}",
		Fail:   "Failed to generate email key for board {id_board}",
	},
	{
		Name:   "TRELLO_ADD_BOARDS_LABELS_BY_ID_BOARD",
		Desc:   "Add a label to a board. Creates a new label on an existing trello board.",
		Method: http.MethodPost,
		Path:   "/boards/{id_board}/labels",
		Fields: []trello.Field{
			{Name: "id_board", Desc: "The ID of the board to add the label to."},
			{Name: "name", Wire: "name", Required: true, Desc: "The name of the label to create."},
			{Name: "color", Wire: "color", Desc: "The color of the label (red, yellow, orange, green, blue, purple, pink, lime, sky, grey)."},
		},
		Action:  "add_label_to_board",
		Echo:    map[string]string{"id_board": "id_board", "label_name": "name", "label_color": "color"},
		Extract: map[string]string{"label_id": "id"},
		OK:      "Successfully added label '{name}' to board {id_board}",
		Fail:    "Failed to add label '{name}' to board {id_board}",
	},
	{
		Name:   "TRELLO_ADD_BOARDS_LISTS_BY_ID_BOARD",
		Desc:   "Add new list to board. Creates a new, empty list on a specified, existing trello board.",
		Method: http.MethodPost,
		Path:   "/boards/{id_board}/lists",
		Fields: []trello.Field{
			{Name: "id_board", Desc: "The ID of the board to add the list to."},
			{Name: "name", Wire: "name", Required: true, Desc: "The name of the list to create."},
			{Name: "pos", Wire: "pos", Desc: "Position of the list (top, bottom, or a number)."},
		},
		Action:  "add_list_to_board",
		Echo:    map[string]string{"id_board": "id_board", "list_name": "name", "list_position": "pos"},
		Extract: map[string]string{"list_id": "id"},
		OK:      "Successfully added list '{name}' to board {id_board}",
		Fail:    "Failed to add list '{name}' to board {id_board}",
	},
	{
		Name:   "TRELLO_ADD_BOARDS_MARK_AS_VIEWED_BY_ID_BOARD",
		Desc:   "Mark board as viewed. Marks the trello board specified by idboard as viewed for the current user.",
		Method: http.MethodPost,
		Path:   "/boards/{id_board}/markAsViewed",
		Fields: []trello.Field{
			{Name: "id_board", Desc: "The ID of the board to mark as viewed."},
		},
		Action: "mark_board_as_viewed",
		Echo:   map[string]string{"id_board": "id_board"},
		OK:     "Successfully marked board {id_board} as viewed",
		Fail:   "Failed to mark board {id_board} as viewed",
	},
	{
		Name:   "TRELLO_ADD_BOARDS_POWER_UPS_BY_ID_BOARD",
		Desc:   "Get board power-ups. Retrieves the power-ups available and enabled on the trello board specified by idboard.",
		Method: http.MethodGet,
		Path:   "/boards/{id_board}/powerUps",
		Fields: []trello.Field{
			{Name: "id_board", Desc: "The ID of the board to get power-ups for."},
		},
		Action: "get_board_power_ups",
		Echo:   map[string]string{"id_board": "id_board"},
		OK:     "Successfully retrieved power-ups for board {id_board}",
		Fail:   "Failed to get power-ups for board {id_board}",
	},
	{
		Name:   "TRELLO_BOARD_CREATE_BOARD",
		Desc:   "Add board. <<deprecated: this action is deprecated. please use 'add boards' instead.>> Creates a new trello board, requiring the 'name' parameter.",
		Method: http.MethodPost,
		Path:   "/boards",
		Fields: []trello.Field{
			{Name: "name", Wire: "name", Required: true, Desc: "The name of the board (required)."},
			{Name: "desc", Wire: "desc", Desc: "Description of the board."},
			{Name: "closed", Wire: "closed", Desc: "Whether the board is closed."},
			{Name: "id_board_source", Wire: "idBoardSource", Desc: "ID of a board to copy from."},
			{Name: "id_organization", Wire: "idOrganization", Desc: "ID of the organization to add the board to."},
			{Name: "keep_from_source", Wire: "keepFromSource", Desc: "What to keep from the source board."},
			{Name: "subscribed", Wire: "subscribed", Desc: "Whether the user is subscribed to the board."},
			{Name: "power_ups", Wire: "powerUps", Desc: "Power-ups to enable on the board."},
			{Name: "label_names__blue", Wire: "labelNames/blue", Desc: "Name for blue label."},
			{Name: "label_names__green", Wire: "labelNames/green", Desc: "Name for green label."},
			{Name: "label_names__orange", Wire: "labelNames/orange", Desc: "Name for orange label."},
			{Name: "label_names__purple", Wire: "labelNames/purple", Desc: "Name for purple label."},
			{Name: "label_names__red", Wire: "labelNames/red", Desc: "Name for red label."},
			{Name: "label_names__yellow", Wire: "labelNames/yellow", Desc: "Name for yellow label."},
			{Name: "prefs__calendar_feed_enabled", Wire: "prefs/calendarFeedEnabled", Desc: "Whether calendar feed is enabled."},
		},
		// The new-format prefs__* names supersede the old-format prefs_*
		// ones; first non-empty wins and the loser is dropped.
		Aliases: []trello.AliasChain{
			{Fields: []trello.Field{
				{Name: "prefs__background", Wire: "prefs/background", Desc: "Background preference for the board."},
				{Name: "prefs_background", Wire: "prefs/background", Desc: "Background preference (old format)."},
			}},
			{Fields: []trello.Field{
				{Name: "prefs__card_aging", Wire: "prefs/cardAging", Desc: "Card aging preference."},
				{Name: "prefs_card_aging", Wire: "prefs/cardAging", Desc: "Card aging preference (old format)."},
			}},
			{Fields: []trello.Field{
				{Name: "prefs__card_covers", Wire: "prefs/cardCovers", Desc: "Card covers preference."},
				{Name: "prefs_card_covers", Wire: "prefs/cardCovers", Desc: "Card covers preference (old format)."},
			}},
			{Fields: []trello.Field{
				{Name: "prefs__comments", Wire: "prefs/comments", Desc: "Comments preference."},
				{Name: "prefs_comments", Wire: "prefs/comments", Desc: "Comments preference (old format)."},
			}},
			{Fields: []trello.Field{
				{Name: "prefs__invitations", Wire: "prefs/invitations", Desc: "Invitations preference."},
				{Name: "prefs_invitations", Wire: "prefs/invitations", Desc: "Invitations preference (old format)."},
			}},
			{Fields: []trello.Field{
				{Name: "prefs__permission_level", Wire: "prefs/permissionLevel", Desc: "Permission level for the board."},
				{Name: "prefs_permission_level", Wire: "prefs/permissionLevel", Desc: "Permission level (old format)."},
			}},
			{Fields: []trello.Field{
				{Name: "prefs__self_join", Wire: "prefs/selfJoin", Desc: "Self-join preference."},
				{Name: "prefs_self_join", Wire: "prefs/selfJoin", Desc: "Self-join preference (old format)."},
			}},
			{Fields: []trello.Field{
				{Name: "prefs__voting", Wire: "prefs/voting", Desc: "Voting preference."},
				{Name: "prefs_voting", Wire: "prefs/voting", Desc: "Voting preference (old format)."},
			}},
		},
		Action:  "create_board",
		Echo:    map[string]string{"board_name": "name", "organization_id": "id_organization"},
		Extract: map[string]string{"board_id": "id"},
		OK:      "Successfully created board '{name}'",
		Fail:    "Failed to create board '{name}'",
	},
	{
		Name:   "TRELLO_BOARD_FILTER_CARDS_BY_ID_BOARD",
		Desc:   "Get cards by filter from board. Deprecated: use `get boards cards by id board by filter`. Retrieves cards from a trello board using a filter.",
		Method: http.MethodGet,
		Path:   "/boards/{id_board}/cards",
		Fields: []trello.Field{
			{Name: "id_board", Desc: "The ID of the board to get cards from."},
			{Name: "filter", Wire: "filter", Required: true, Desc: "The filter to apply when retrieving cards."},
		},
		Action: "get_cards_by_filter",
		Echo:   map[string]string{"board_id": "id_board", "filter": "filter"},
		Count:  "cards_count",
		OK:     "Successfully retrieved cards from board {id_board} with filter '{filter}'",
		Fail:   "Failed to retrieve cards from board {id_board} with filter '{filter}'",
	},
	{
		Name:   "TRELLO_BOARD_GET_LISTS_BY_ID_BOARD",
		Desc:   "Get board's lists. Deprecated: retrieves lists from a specified trello board; use `get boards lists by id board`.",
		Method: http.MethodGet,
		Path:   "/boards/{id_board}/lists",
		Fields: []trello.Field{
			{Name: "id_board", Desc: "The ID of the board to get lists from."},
			{Name: "fields", Wire: "fields", Desc: "Fields to return. Defaults to all."},
			{Name: "filter", Wire: "filter", Desc: "Filter for lists. Defaults to open."},
			{Name: "cards", Wire: "cards", Desc: "Cards to include. Defaults to none."},
			{Name: "card_fields", Wire: "card_fields", Desc: "Card fields to return. Defaults to all."},
		},
		Action: "get_board_lists",
		Echo:   map[string]string{"board_id": "id_board"},
		Count:  "lists_count",
		OK:     "Successfully retrieved lists from board {id_board}",
		Fail:   "Failed to retrieve lists from board {id_board}",
	},
	{
		Name:   "TRELLO_GET_BOARDS_CARDS_BY_ID_BOARD",
		Desc:   "Get cards from board. Retrieves all cards from a specific trello board.",
		Method: http.MethodGet,
		Path:   "/boards/{id_board}/cards",
		Fields: []trello.Field{
			{Name: "id_board", Desc: "The ID of the board to get cards from."},
			{Name: "fields", Wire: "fields", Default: "all", Desc: "Fields to return. Defaults to all."},
			{Name: "actions", Wire: "actions", Desc: "Actions to include."},
			{Name: "attachments", Wire: "attachments", Desc: "Whether to include attachments."},
			{Name: "attachment_fields", Wire: "attachment_fields", Desc: "Attachment fields to return."},
			{Name: "members", Wire: "members", Desc: "Whether to include members."},
			{Name: "member_fields", Wire: "member_fields", Desc: "Member fields to return."},
			{Name: "check_item_states", Wire: "checkItemStates", Desc: "Whether to include check item states."},
			{Name: "checklists", Wire: "checklists", Desc: "Whether to include checklists."},
			{Name: "limit", Wire: "limit", Desc: "Maximum number of cards to return."},
			{Name: "since", Wire: "since", Desc: "Only return cards modified since this date."},
			{Name: "before", Wire: "before", Desc: "Only return cards modified before this date."},
			{Name: "filter", Wire: "filter", Desc: "Filter cards (all, closed, none, open, visible)."},
		},
		Action: "get_cards_from_board",
		Echo:   map[string]string{"id_board": "id_board"},
		Count:  "card_count",
		OK:     "Successfully retrieved cards from board {id_board}",
		Fail:   "Failed to retrieve cards from board {id_board}",
	},

	// ---- Cards ----

	{
		Name:   "TRELLO_ADD_CARDS",
		Desc:   "Add card. Creates a new card in a trello list; `idlist` is required, and if `idcardsource` is used, the source card must be accessible.",
		Method: http.MethodPost,
		Path:   "/cards",
		Fields: []trello.Field{
			{Name: "id_list", Wire: "idList", Required: true, Desc: "The ID of the list to add the card to (required)."},
			{Name: "name", Wire: "name", Desc: "The name of the card."},
			{Name: "desc", Wire: "desc", Desc: "Description of the card."},
			{Name: "closed", Wire: "closed", Desc: "Whether the card is closed."},
			{Name: "due", Wire: "due", Desc: "Due date for the card."},
			{Name: "file_source", Wire: "fileSource", Desc: "File source for the card."},
			{Name: "id_attachment_cover", Wire: "idAttachmentCover", Desc: "ID of attachment to use as cover."},
			{Name: "id_board", Wire: "idBoard", Desc: "ID of the board (if different from list's board)."},
			{Name: "id_card_source", Wire: "idCardSource", Desc: "ID of card to copy from."},
			{Name: "id_labels", Wire: "idLabels", Desc: "Comma-separated list of label IDs."},
			{Name: "id_members", Wire: "idMembers", Desc: "Comma-separated list of member IDs."},
			{Name: "keep_from_source", Wire: "keepFromSource", Desc: "What to keep from the source card."},
			{Name: "labels", Wire: "labels", Desc: "Comma-separated list of label names."},
			{Name: "pos", Wire: "pos", Desc: "Position of the card (top, bottom, or a number)."},
			{Name: "subscribed", Wire: "subscribed", Desc: "Whether the user is subscribed to the card."},
			{Name: "url_source", Wire: "urlSource", Desc: "URL source for the card."},
		},
		Action:  "add_card",
		Echo:    map[string]string{"id_list": "id_list", "card_name": "name"},
		Extract: map[string]string{"card_id": "id"},
		OK:      "Successfully created card in list {id_list}",
		Fail:    "Failed to create card in list {id_list}",
	},
	{
		Name:   "TRELLO_ADD_CARDS_ACTIONS_COMMENTS_BY_ID_CARD",
		Desc:   "Add comment to card. Adds a new text comment, which can include @mentions, to a trello card specified by its id.",
		Method: http.MethodPost,
		Path:   "/cards/{id_card}/actions/comments",
		Fields: []trello.Field{
			{Name: "id_card", Desc: "The ID of the card to add the comment to."},
			{Name: "text", Wire: "text", Required: true, Desc: "The text content of the comment to add."},
		},
		Action: "add_comment_to_card",
		Echo:   map[string]string{"id_card": "id_card", "comment_text": "text"},
		OK:     "Successfully added comment to card {id_card}",
		Fail:   "Failed to add comment to card {id_card}",
	},
	{
		Name:   "TRELLO_ADD_CARDS_CHECKLISTS_BY_ID_CARD",
		Desc:   "Add checklist to card via id. Adds a checklist to a trello card: use value to add a specific existing checklist, idchecklistsource to create a new checklist by copying an existing one, or name to create a new empty checklist from scratch.",
		Method: http.MethodPost,
		Path:   "/cards/{id_card}/checklists",
		Fields: []trello.Field{
			{Name: "id_card", Desc: "The ID of the card to add the checklist to."},
			{Name: "value", Wire: "value", Desc: "ID of an existing checklist to add to the card."},
			{Name: "id_checklist_source", Wire: "idChecklistSource", Desc: "ID of an existing checklist to copy from."},
			{Name: "name", Wire: "name", Desc: "Name for the new checklist (required when creating new or copying)."},
		},
		Groups: []trello.ExclusiveGroup{{
			Members: []string{"value", "id_checklist_source", "name"},
			Mode:    trello.ExactlyOne,
			ZeroMsg: "Must provide either 'value' (existing checklist ID), 'id_checklist_source' (to copy), or 'name' (to create new)",
			ManyMsg: "Can only provide one of: 'value', 'id_checklist_source', or 'name'",
		}},
		Require: []trello.RequireRule{{
			If:   "id_checklist_source",
			Then: "name",
			Msg:  "Name is required when copying a checklist",
		}},
		Action:  "add_checklist_to_card",
		Echo:    map[string]string{"id_card": "id_card"},
		Extract: map[string]string{"checklist_id": "id"},
		OK:      "Successfully added checklist to card {id_card}",
		Fail:    "Failed to add checklist to card {id_card}",
	},
	{
		Name:   "TRELLO_ADD_CARDS_CHECKLIST_CHECK_ITEM_BY_ID_CARD_BY_ID_CHECKLIST",
		Desc:   "Add check item to checklist. Adds a new check item to an existing checklist on a specific trello card.",
		Method: http.MethodPost,
		Path:   "/cards/{id_card}/checklist/{id_checklist}/checkItem",
		Fields: []trello.Field{
			{Name: "id_card", Desc: "The ID of the card containing the checklist."},
			{Name: "id_checklist", Desc: "The ID of the checklist to add the check item to."},
			{Name: "name", Wire: "name", Required: true, Desc: "The name/text of the check item to add."},
			{Name: "pos", Wire: "pos", Desc: "Position of the check item (top, bottom, or a number)."},
		},
		Action: "add_check_item_to_checklist",
		Echo: map[string]string{
			"id_card": "id_card", "id_checklist": "id_checklist",
			"check_item_name": "name", "check_item_position": "pos",
		},
		OK:   "Successfully added check item '{name}' to checklist {id_checklist} on card {id_card}",
		Fail: "Failed to add check item to checklist {id_checklist} on card {id_card}",
	},
	{
		Name:   "TRELLO_ADD_CARDS_ID_LABELS_BY_ID_CARD",
		Desc:   "Add label to card. Adds an existing label to a trello card; idcard identifies the card and value is the id of the label to add.",
		Method: http.MethodPost,
		Path:   "/cards/{id_card}/idLabels",
		Fields: []trello.Field{
			{Name: "id_card", Desc: "The ID of the card to add the label to."},
			{Name: "value", Wire: "value", Required: true, Desc: "The ID of the existing label to add to the card."},
		},
		Action: "add_label_to_card",
		Echo:   map[string]string{"id_card": "id_card", "label_id": "value"},
		OK:     "Successfully added label {value} to card {id_card}",
		Fail:   "Failed to add label {value} to card {id_card}",
	},
	{
		Name:   "TRELLO_ADD_CARDS_ID_MEMBERS_BY_ID_CARD",
		Desc:   "Add card member by id. Assigns a trello member to a specific trello card by card id (or short link) and member id.",
		Method: http.MethodPost,
		Path:   "/cards/{id_card}/idMembers",
		Fields: []trello.Field{
			{Name: "id_card", Desc: "The ID of the card to assign the member to."},
			{Name: "value", Wire: "value", Required: true, Desc: "The ID of the member to assign to the card."},
		},
		Action: "add_member_to_card",
		Echo:   map[string]string{"id_card": "id_card", "member_id": "value"},
		OK:     "Successfully assigned member {value} to card {id_card}",
		Fail:   "Failed to assign member {value} to card {id_card}",
	},
	{
		Name:   "TRELLO_ADD_CARDS_LABELS_BY_ID_CARD",
		Desc:   "Add labels to card. Adds a label to an existing trello card, defining the label by name and either color or the overriding value (which specifies color by name).",
		Method: http.MethodPost,
		Path:   "/cards/{id_card}/labels",
		Fields: []trello.Field{
			{Name: "id_card", Desc: "The ID of the card to add the label to."},
			{Name: "name", Wire: "name", Required: true, Desc: "The name of the label to add."},
		},
		// value overrides color; color rides along as informational fallback.
		Aliases: []trello.AliasChain{{
			KeepFallback: true,
			Fields: []trello.Field{
				{Name: "value", Wire: "value", Desc: "Override color by name (red, yellow, orange, green, blue, purple, pink, lime, sky, grey)."},
				{Name: "color", Wire: "color", Desc: "The color of the label (red, yellow, orange, green, blue, purple, pink, lime, sky, grey)."},
			},
		}},
		Action: "add_label_to_card",
		Echo:   map[string]string{"id_card": "id_card", "label_name": "name"},
		OK:     "Successfully added label '{name}' to card {id_card}",
		Fail:   "Failed to add label '{name}' to card {id_card}",
	},
	{
		Name:   "TRELLO_ADD_CARDS_STICKERS_BY_ID_CARD",
		Desc:   "Add sticker to card. Adds a sticker to a trello card, using a default sticker name (e.g., 'taco-cool') or a custom sticker id for the image.",
		Method: http.MethodPost,
		Path:   "/cards/{id_card}/stickers",
		Fields: []trello.Field{
			{Name: "id_card", Desc: "The ID of the card to add the sticker to."},
			{Name: "image", Wire: "image", Required: true, Desc: "The sticker image name (e.g., 'taco-cool') or custom sticker ID."},
			{Name: "left", Wire: "left", Desc: "Left position of the sticker on the card."},
			{Name: "top", Wire: "top", Desc: "Top position of the sticker on the card."},
			{Name: "rotate", Wire: "rotate", Desc: "Rotation angle of the sticker in degrees."},
			{Name: "z_index", Wire: "zIndex", Desc: "Z-index (layer order) of the sticker."},
		},
		Action: "add_sticker_to_card",
		Echo:   map[string]string{"id_card": "id_card", "sticker_image": "image"},
		OK:     "Successfully added sticker '{image}' to card {id_card}",
		Fail:   "Failed to add sticker '{image}' to card {id_card}",
	},
	{
		Name:   "TRELLO_CARD_UPDATE_ID_LIST_BY_ID_CARD",
		Desc:   "Update card list ID. Deprecated: moves a trello card to a different list on the same board. Use `update cards id list by id card` instead.",
		Method: http.MethodPut,
		Path:   "/cards/{id_card}",
		Fields: []trello.Field{
			{Name: "id_card", Desc: "The ID of the card to move."},
			{Name: "value", Wire: "idList", Required: true, Desc: "The ID of the destination list to move the card to."},
		},
		Action:  "update_card_list",
		Echo:    map[string]string{"card_id": "id_card", "destination_list_id": "value"},
		Extract: map[string]string{"card_name": "name"},
		OK:      "Successfully moved card {id_card} to list {value}",
		Fail:    "Failed to move card {id_card} to list {value}",
	},
	{
		Name:   "TRELLO_CARD_UPDATE_POS_BY_ID_CARD",
		Desc:   "Update card position. Updates a trello card's position within its list to 'top', 'bottom', or a specified 1-indexed positive integer.",
		Method: http.MethodPut,
		Path:   "/cards/{id_card}",
		Fields: []trello.Field{
			{Name: "id_card", Desc: "The ID of the card to update position for."},
			{Name: "value", Wire: "pos", Required: true, Desc: "The position value: 'top', 'bottom', or a 1-indexed positive integer."},
		},
		Check:   checkCardPosition,
		Action:  "update_card_position",
		Echo:    map[string]string{"card_id": "id_card", "position": "value"},
		Extract: map[string]string{"card_name": "name"},
		OK:      "Successfully updated card {id_card} position to {value}",
		Fail:    "Failed to update card {id_card} position",
	},
	{
		Name:   "TRELLO_CONVERT_CHECKLIST_ITEM_TO_CARD",
		Desc:   "Convert checklist item to card. Converts a checklist item into a new card (useful for promoting a subtask); this is irreversible via the api.",
		Method: http.MethodPost,
		Path:   "/cards/{id_card}/checklist/{id_checklist}/checkItem/{id_check_item}/convertToCard",
		Fields: []trello.Field{
			{Name: "id_card", Desc: "The ID of the card containing the checklist."},
			{Name: "id_checklist", Desc: "The ID of the checklist containing the item."},
			{Name: "id_check_item", Desc: "The ID of the checklist item to convert to a card."},
		},
		Action: "convert_checklist_item_to_card",
		Echo: map[string]string{
			"card_id": "id_card", "checklist_id": "id_checklist", "check_item_id": "id_check_item",
		},
		Extract: map[string]string{"new_card_id": "id", "new_card_name": "name"},
		OK:      "Successfully converted checklist item {id_check_item} to a new card",
		Fail:    "Failed to convert checklist item {id_check_item} to a card",
	},

	// ---- Checklists ----

	{
		Name:   "TRELLO_ADD_CHECKLISTS_CHECK_ITEMS_BY_ID_CHECKLIST",
		Desc:   "Add check item to checklist. Adds a new check item to a specified trello checklist; this action does not update existing check items.",
		Method: http.MethodPost,
		Path:   "/checklists/{id_checklist}/checkItems",
		Fields: []trello.Field{
			{Name: "id_checklist", Desc: "The ID of the checklist to add the check item to."},
			{Name: "name", Wire: "name", Required: true, Desc: "The name/text of the check item to add."},
			{Name: "checked", Wire: "checked", Desc: "Whether the check item should be checked (true/false)."},
			{Name: "pos", Wire: "pos", Desc: "Position of the check item (top, bottom, or a number)."},
		},
		Action: "add_check_item_to_checklist",
		Echo: map[string]string{
			"id_checklist": "id_checklist", "check_item_name": "name",
			"checked": "checked", "position": "pos",
		},
		OK:   "Successfully added check item '{name}' to checklist {id_checklist}",
		Fail: "Failed to add check item '{name}' to checklist {id_checklist}",
	},

	// ---- Labels ----

	{
		Name:   "TRELLO_ADD_LABELS",
		Desc:   "Create label on board. Creates a new label with a specified name (required) and color on a trello board (idboard required); this action defines the label but does not apply it to cards.",
		Method: http.MethodPost,
		Path:   "/boards/{id_board}/labels",
		Fields: []trello.Field{
			{Name: "id_board", Desc: "The ID of the board to create the label on."},
			{Name: "name", Wire: "name", Required: true, Desc: "The name of the label to create."},
			{Name: "color", Wire: "color", Desc: "The color of the label (red, yellow, orange, green, blue, purple, pink, lime, sky, grey)."},
		},
		Action:  "create_label_on_board",
		Echo:    map[string]string{"id_board": "id_board", "label_name": "name", "label_color": "color"},
		Extract: map[string]string{"label_id": "id"},
		OK:      "Successfully created label '{name}' on board {id_board}",
		Fail:    "Failed to create label '{name}' on board {id_board}",
	},

	// ---- Lists ----

	{
		Name:   "TRELLO_ADD_LISTS",
		Desc:   "Add new list to board. Creates a new list on a specified trello board, with options to copy an existing list, set its position and initial state.",
		Method: http.MethodPost,
		Path:   "/boards/{id_board}/lists",
		Fields: []trello.Field{
			{Name: "id_board", Desc: "The ID of the board to create the list on."},
			{Name: "id_list_source", Wire: "idListSource", Desc: "The ID of an existing list to copy from."},
			{Name: "name", Wire: "name", Desc: "The name of the list to create."},
			{Name: "pos", Wire: "pos", Desc: "Position of the list (top, bottom, or a number)."},
			{Name: "closed", Wire: "closed", Desc: "Whether the list should be closed/archived (true/false)."},
			{Name: "subscribed", Wire: "subscribed", Desc: "Whether the user should be subscribed to the list (true/false)."},
		},
		// Supplying both copies the source and renames the copy.
		Groups: []trello.ExclusiveGroup{{
			Members: []string{"name", "id_list_source"},
			Mode:    trello.AtLeastOne,
			ZeroMsg: "Must provide either 'name' (to create new) or 'id_list_source' (to copy)",
		}},
		Action: "add_list_to_board",
		Echo: map[string]string{
			"id_board": "id_board", "list_name": "name", "source_list_id": "id_list_source",
			"position": "pos", "closed": "closed", "subscribed": "subscribed",
		},
		Extract: map[string]string{"list_id": "id"},
		OK:      "Successfully created list '{name}' on board {id_board}",
		Fail:    "Failed to add list to board {id_board}",
	},
	{
		Name:   "TRELLO_ADD_LISTS_ARCHIVE_ALL_CARDS_BY_ID_LIST",
		Desc:   "Archive all cards in list. Archives all cards in a trello list; cards can be restored via the trello interface.",
		Method: http.MethodPost,
		Path:   "/lists/{id_list}/archiveAllCards",
		Fields: []trello.Field{
			{Name: "id_list", Desc: "The ID of the list to archive all cards from."},
		},
		Action: "archive_all_cards_in_list",
		Echo:   map[string]string{"id_list": "id_list"},
		OK:     "Successfully archived all cards in list {id_list}",
		Fail:   "Failed to archive cards in list {id_list}",
	},
	{
		Name:   "TRELLO_ADD_LISTS_CARDS_BY_ID_LIST",
		Desc:   "Add card to list. Creates a new card in a trello list, which must be specified by an existing and accessible idlist.",
		Method: http.MethodPost,
		Path:   "/cards",
		Fields: []trello.Field{
			{Name: "id_list", Wire: "idList", Required: true, Desc: "The ID of the list to add the card to."},
			{Name: "name", Wire: "name", Desc: "The name of the card to create."},
			{Name: "desc", Wire: "desc", Desc: "Description of the card."},
			{Name: "due", Wire: "due", Desc: "Due date for the card."},
			{Name: "id_members", Wire: "idMembers", Desc: "Comma-separated list of member IDs to assign to the card."},
			{Name: "labels", Wire: "labels", Desc: "Comma-separated list of label names or IDs to add to the card."},
		},
		Action: "add_card_to_list",
		Echo: map[string]string{
			"id_list": "id_list", "card_name": "name", "card_description": "desc",
			"due_date": "due", "member_ids": "id_members", "labels": "labels",
		},
		Extract: map[string]string{"card_id": "id"},
		OK:      "Successfully created card in list {id_list}",
		Fail:    "Failed to create card in list {id_list}",
	},

	// ---- Members ----

	{
		Name:   "TRELLO_ADD_MEMBERS_BOARD_STARS_BY_ID_MEMBER",
		Desc:   "Add board star to member. Stars a trello board for a member, optionally at a specified position; the board must exist and be accessible to the member.",
		Method: http.MethodPost,
		Path:   "/members/{id_member}/boardStars",
		Fields: []trello.Field{
			{Name: "id_member", Desc: "The ID of the member to star the board for."},
			{Name: "id_board", Wire: "idBoard", Required: true, Desc: "The ID of the board to star."},
			{Name: "pos", Wire: "pos", Desc: "Optional position for the starred board."},
		},
		Action: "add_board_star",
		Echo:   map[string]string{"member_id": "id_member", "board_id": "id_board", "position": "pos"},
		OK:     "Successfully starred board {id_board} for member {id_member}",
		Fail:   "Failed to star board {id_board} for member {id_member}",
	},
	{
		Name:   "TRELLO_ADD_MEMBERS_SAVED_SEARCHES_BY_ID_MEMBER",
		Desc:   "Add saved search for member. Creates a new saved search with a specified name, position, and query for a trello member.",
		Method: http.MethodPost,
		Path:   "/members/{id_member}/savedSearches",
		Fields: []trello.Field{
			{Name: "id_member", Desc: "The ID of the member to create the saved search for."},
			{Name: "name", Wire: "name", Required: true, Desc: "The name of the saved search."},
			{Name: "pos", Wire: "pos", Required: true, Desc: "The position of the saved search."},
			{Name: "query", Wire: "query", Required: true, Desc: "The search query for the saved search."},
		},
		Action: "add_saved_search",
		Echo: map[string]string{
			"member_id": "id_member", "search_name": "name", "position": "pos", "query": "query",
		},
		OK:   "Successfully created saved search '{name}' for member {id_member}",
		Fail: "Failed to create saved search '{name}' for member {id_member}",
	},

	// ---- Notifications ----

	{
		Name:   "TRELLO_ADD_NOTIFICATIONS_ALL_READ",
		Desc:   "Mark all notifications as read. Marks all trello notifications for the authenticated user as read across all boards; this action is permanent.",
		Method: http.MethodPost,
		Path:   "/notifications/all/read",
		Action: "mark_all_notifications_read",
		OK:     "Successfully marked all notifications as read",
		Fail:   "Failed to mark notifications as read",
	},

	// ---- Organizations ----

	{
		Name:   "TRELLO_ADD_ORGANIZATIONS",
		Desc:   "Create organization. Creates a new trello organization (workspace) with a displayname (required), and optionally a description, website, and various preferences.",
		Method: http.MethodPost,
		Path:   "/organizations",
		Fields: []trello.Field{
			{Name: "display_name", Wire: "displayName", Required: true, Desc: "The display name of the organization (required)."},
			{Name: "desc", Wire: "desc", Desc: "Description of the organization."},
			{Name: "name", Wire: "name", Desc: "The name of the organization."},
			{Name: "website", Wire: "website", Desc: "Website URL of the organization."},
			{Name: "prefs__associated_domain", Wire: "prefs/associatedDomain", Desc: "Associated domain for the organization."},
			{Name: "prefs__board_visibility_restrict__org", Wire: "prefs/boardVisibilityRestrict/org", Desc: "Restrict board visibility to organization members."},
			{Name: "prefs__board_visibility_restrict__private", Wire: "prefs/boardVisibilityRestrict/private", Desc: "Restrict private board visibility."},
			{Name: "prefs__board_visibility_restrict__public", Wire: "prefs/boardVisibilityRestrict/public", Desc: "Restrict public board visibility."},
			{Name: "prefs__external_members_disabled", Wire: "prefs/externalMembersDisabled", Desc: "Disable external members."},
			{Name: "prefs__google_apps_version", Wire: "prefs/googleAppsVersion", Desc: "Google Apps version."},
			{Name: "prefs__org_invite_restrict", Wire: "prefs/orgInviteRestrict", Desc: "Organization invite restrictions."},
			{Name: "prefs__permission_level", Wire: "prefs/permissionLevel", Desc: "Permission level for the organization."},
		},
		Action:  "create_organization",
		Echo:    map[string]string{"organization_name": "display_name"},
		Extract: map[string]string{"organization_id": "id"},
		OK:      "Successfully created organization '{display_name}'",
		Fail:    "Failed to create organization '{display_name}'",
	},

	// ---- Tokens ----

	{
		Name:   "TRELLO_ADD_TOKENS_WEBHOOKS_BY_TOKEN",
		Desc:   "Add token webhook. Creates a webhook for a trello token to monitor a trello model (idmodel) and send notifications to a callbackurl.",
		Method: http.MethodPost,
		Path:   "/tokens/{token}/webhooks",
		Fields: []trello.Field{
			{Name: "callback_url", Wire: "callbackURL", Required: true, Desc: "The callback URL where Trello will send webhook notifications. Must be publicly accessible."},
			{Name: "id_model", Wire: "idModel", Required: true, Desc: "The ID of the Trello model (board, card, etc.) to monitor."},
			{Name: "description", Wire: "description", Desc: "Description of the webhook."},
		},
		Action: "create_webhook",
		Echo: map[string]string{
			"callback_url": "callback_url", "model_id": "id_model", "description": "description",
		},
		Extract: map[string]string{"webhook_id": "id"},
		OK:      "Successfully created webhook for model {id_model} with callback URL {callback_url}",
		Fail:    "Failed to create webhook for model {id_model}",
	},
}

// checkCardPosition enforces the position contract: 'top', 'bottom', or a
// positive integer.
func checkCardPosition(params trello.ParameterSet) string {
	value := params.String("value")
	switch strings.ToLower(value) {
	case "top", "bottom":
		return ""
	}
	n, err := strconv.Atoi(value)
	if err != nil || n <= 0 {
		return "Position must be 'top', 'bottom', or a positive integer"
	}
	return ""
}

// endpointByName looks a descriptor up for tests and diagnostics.
func endpointByName(name string) (*trello.Endpoint, error) {
	for _, ep := range catalog {
		if ep.Name == name {
			return ep, nil
		}
	}
	return nil, fmt.Errorf("unknown tool: %s", name)
}
