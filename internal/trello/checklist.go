package trello

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// AddChecklist creates a checklist on a card or a board. The target decides
// the endpoint, so this cannot be a plain descriptor: a card target wins when
// both are supplied, with the board id carried along as an informational
// field. Creation is by name, by copying an existing checklist, or both
// (copy and rename).
func (e *Engine) AddChecklist(ctx context.Context, params ParameterSet) Envelope {
	fail := func(fault, message string) Envelope {
		return Envelope{
			"successful": false,
			"error":      fault,
			"action":     "add_checklist",
			"message":    message,
		}
	}

	if !params.Present("id_card") && !params.Present("id_board") {
		return fail("Must provide either 'id_card' or 'id_board' (or both)",
			"Failed to add checklist: missing target (card or board)")
	}
	if !params.Present("name") && !params.Present("id_checklist_source") {
		return fail("Must provide either 'name' (to create new) or 'id_checklist_source' (to copy)",
			"Failed to add checklist: missing name or source")
	}

	payload := NewPayload()
	var path, targetType, targetID string
	if params.Present("id_card") {
		targetType, targetID = "card", params.String("id_card")
		path = fmt.Sprintf("/cards/%s/checklists", url.PathEscape(targetID))
		if params.Present("id_board") {
			payload.Set("idBoard", params.String("id_board"))
		}
	} else {
		targetType, targetID = "board", params.String("id_board")
		path = fmt.Sprintf("/boards/%s/checklists", url.PathEscape(targetID))
	}

	name := params.String("name")
	source := params.String("id_checklist_source")
	action := "create_new_checklist"
	message := fmt.Sprintf("Successfully created new checklist '%s' on %s %s", name, targetType, targetID)
	if params.Present("id_checklist_source") {
		payload.Set("idChecklistSource", source)
		if params.Present("name") {
			payload.Set("name", name)
		}
		action = "copy_checklist"
		message = fmt.Sprintf("Successfully copied checklist %s to %s %s", source, targetType, targetID)
		if params.Present("name") {
			message += fmt.Sprintf(" as '%s'", name)
		}
	} else {
		payload.Set("name", name)
	}
	if params.Present("pos") {
		payload.Set("pos", params.String("pos"))
	}

	data, err := e.client.Do(ctx, http.MethodPost, path, payload, nil)
	if err != nil {
		return fail(err.Error(), fmt.Sprintf("Failed to add checklist to %s %s", targetType, targetID))
	}

	return Envelope{
		"successful":          true,
		"data":                data,
		"action":              action,
		"target_type":         targetType,
		"target_id":           targetID,
		"checklist_name":      nilIfUnset(params, "name"),
		"source_checklist_id": nilIfUnset(params, "id_checklist_source"),
		"position":            nilIfUnset(params, "pos"),
		"message":             message,
	}
}

func nilIfUnset(params ParameterSet, name string) any {
	if v, ok := params.Get(name); ok {
		return v
	}
	return nil
}
