package trello

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
)

// MoveAllCards moves every card from a source list into the first list of a
// destination board. It is a best-effort orchestration, not an atomic one:
// the source fetch and the destination lookup abort the whole operation on
// failure, but once the per-card loop starts, an individual failure is
// recorded and the loop continues. The result is a success envelope carrying
// attempted/succeeded/failed counts and the per-card failure reasons.
//
// The destination is whichever list the board endpoint returns first; when
// several lists share a position the remote's ordering decides.
func (e *Engine) MoveAllCards(ctx context.Context, idList, idBoard string) Envelope {
	params := ParameterSet{"id_list": idList, "id_board": idBoard}
	if missing := Missing(params, []string{"id_list", "id_board"}); len(missing) > 0 {
		return moveFailure(idList, idBoard,
			fmt.Sprintf("Missing required parameter(s): %s", strings.Join(missing, ", ")),
			fmt.Sprintf("Failed to move cards from list %s to board %s", idList, idBoard))
	}

	cardsPath := fmt.Sprintf("/lists/%s/cards", url.PathEscape(idList))
	cardsResult, err := e.client.Do(ctx, http.MethodGet, cardsPath, NewPayload(), nil)
	if err != nil {
		return moveFailure(idList, idBoard, err.Error(),
			"Failed to move cards: could not retrieve cards from source list")
	}
	cards, ok := cardsResult.([]any)
	if !ok {
		return moveFailure(idList, idBoard,
			"Failed to retrieve cards from source list",
			"Failed to move cards: could not retrieve cards from source list")
	}
	if len(cards) == 0 {
		return Envelope{
			"successful":           true,
			"data":                 map[string]any{"moved_cards": 0, "cards": []any{}},
			"action":               "move_all_cards_from_list_to_board",
			"id_list":              idList,
			"destination_board_id": idBoard,
			"moved_cards_count":    0,
			"message":              "No cards found in source list to move",
		}
	}

	listsPath := fmt.Sprintf("/boards/%s/lists", url.PathEscape(idBoard))
	listsResult, err := e.client.Do(ctx, http.MethodGet, listsPath, NewPayload(), nil)
	if err != nil {
		return moveFailure(idList, idBoard, err.Error(),
			"Failed to move cards: could not find lists in destination board")
	}
	lists, ok := listsResult.([]any)
	if !ok || len(lists) == 0 {
		return moveFailure(idList, idBoard,
			"Failed to retrieve lists from destination board",
			"Failed to move cards: could not find lists in destination board")
	}
	destListID := lookupString(lists[0], "id")
	if destListID == "" {
		return moveFailure(idList, idBoard,
			"No valid list found in destination board",
			"Failed to move cards: no valid list in destination board")
	}

	var moved, failed []map[string]any
	for _, raw := range cards {
		cardID := lookupString(raw, "id")
		if cardID == "" {
			continue
		}
		cardName := lookupString(raw, "name")
		if cardName == "" {
			cardName = "Unknown"
		}

		payload := NewPayload()
		payload.Set("idList", destListID)
		movePath := fmt.Sprintf("/cards/%s", url.PathEscape(cardID))
		if _, err := e.client.Do(ctx, http.MethodPut, movePath, payload, nil); err != nil {
			failed = append(failed, map[string]any{
				"id":    cardID,
				"name":  cardName,
				"error": err.Error(),
			})
			continue
		}
		moved = append(moved, map[string]any{
			"id":                  cardID,
			"name":                cardName,
			"destination_list_id": destListID,
		})
	}

	return Envelope{
		"successful": true,
		"data": map[string]any{
			"moved_cards":        moved,
			"failed_cards":       failed,
			"total_cards":        len(cards),
			"successfully_moved": len(moved),
			"failed":             len(failed),
		},
		"action":               "move_all_cards_from_list_to_board",
		"id_list":              idList,
		"destination_board_id": idBoard,
		"destination_list_id":  destListID,
		"moved_cards_count":    len(moved),
		"failed_cards_count":   len(failed),
		"message": fmt.Sprintf("Successfully moved %d out of %d cards from list %s to board %s",
			len(moved), len(cards), idList, idBoard),
	}
}

func moveFailure(idList, idBoard, fault, message string) Envelope {
	return Envelope{
		"successful":           false,
		"error":                fault,
		"action":               "move_all_cards_from_list_to_board",
		"id_list":              idList,
		"destination_board_id": idBoard,
		"message":              message,
	}
}

// ActionMemberCreator fetches an action and projects its creator, optionally
// filtered to a comma-separated field list. The creator block lives inside
// the action resource, so this is a fetch-then-extract composite rather than
// a direct endpoint.
func (e *Engine) ActionMemberCreator(ctx context.Context, idAction, fields string) Envelope {
	params := ParameterSet{"id_action": idAction, "fields": fields}
	if !params.Present("id_action") {
		return memberCreatorFailure(idAction, "Missing required parameter(s): id_action",
			fmt.Sprintf("Failed to retrieve action %s", idAction))
	}

	actionPath := fmt.Sprintf("/actions/%s", url.PathEscape(idAction))
	result, err := e.client.Do(ctx, http.MethodGet, actionPath, NewPayload(), nil)
	if err != nil {
		return memberCreatorFailure(idAction, err.Error(),
			fmt.Sprintf("Failed to retrieve action %s", idAction))
	}
	action, ok := result.(map[string]any)
	if !ok {
		return memberCreatorFailure(idAction, "Invalid action data received",
			fmt.Sprintf("Failed to retrieve action %s", idAction))
	}

	creator, _ := action["memberCreator"].(map[string]any)
	if len(creator) == 0 {
		return memberCreatorFailure(idAction, "No member creator information found for this action",
			fmt.Sprintf("Action %s does not have associated member creator information", idAction))
	}

	projected := creator
	if f := strings.TrimSpace(fields); f != "" && !strings.EqualFold(f, "all") {
		wanted := make(map[string]bool)
		for _, name := range strings.Split(f, ",") {
			wanted[strings.TrimSpace(name)] = true
		}
		projected = make(map[string]any)
		for k, v := range creator {
			if wanted[k] {
				projected[k] = v
			}
		}
	}

	return Envelope{
		"successful":                 true,
		"data":                       projected,
		"action":                     "get_member_creator_by_action_id",
		"action_id":                  idAction,
		"fields":                     fields,
		"member_creator_id":          creator["id"],
		"member_creator_username":    creator["username"],
		"member_creator_full_name":   creator["fullName"],
		"member_creator_avatar_hash": creator["avatarHash"],
		"message":                    fmt.Sprintf("Successfully retrieved member creator from action %s", idAction),
	}
}

func memberCreatorFailure(idAction, fault, message string) Envelope {
	return Envelope{
		"successful": false,
		"error":      fault,
		"action":     "get_member_creator_by_action_id",
		"action_id":  idAction,
		"message":    message,
	}
}

// lookupString pulls a string field out of a decoded mapping, tolerating any
// other shape.
func lookupString(v any, key string) string {
	m, ok := v.(map[string]any)
	if !ok {
		return ""
	}
	s, _ := m[key].(string)
	return s
}
