package trello

import (
	"net/http"
	"strings"
	"testing"
)

func TestMissingPreservesOrder(t *testing.T) {
	params := ParameterSet{"b": "present", "c": ""}
	missing := Missing(params, []string{"a", "b", "c", "d"})
	if len(missing) != 3 {
		t.Fatalf("expected 3 missing, got %v", missing)
	}
	want := []string{"a", "c", "d"}
	for i, name := range want {
		if missing[i] != name {
			t.Errorf("missing[%d] = %q, want %q", i, missing[i], name)
		}
	}
}

func TestValidateRequiredFromPathAndFields(t *testing.T) {
	ep := &Endpoint{
		Method: http.MethodPost,
		Path:   "/boards/{id_board}/labels",
		Fields: []Field{
			{Name: "id_board"},
			{Name: "name", Wire: "name", Required: true},
			{Name: "color", Wire: "color"},
		},
	}

	fault := ep.validate(ParameterSet{})
	if fault != "Missing required parameter(s): id_board, name" {
		t.Errorf("unexpected fault: %q", fault)
	}

	fault = ep.validate(ParameterSet{"id_board": "B1", "name": "Urgent"})
	if fault != "" {
		t.Errorf("expected no fault, got %q", fault)
	}
}

func TestValidateExactlyOneGroup(t *testing.T) {
	ep := &Endpoint{
		Path: "/cards/{id_card}/checklists",
		Fields: []Field{
			{Name: "id_card"},
			{Name: "value", Wire: "value"},
			{Name: "name", Wire: "name"},
		},
		Groups: []ExclusiveGroup{{
			Members: []string{"value", "name"},
			Mode:    ExactlyOne,
		}},
	}

	fault := ep.validate(ParameterSet{"id_card": "C1"})
	if fault != "Must provide one of: 'value', 'name'" {
		t.Errorf("zero members: unexpected fault %q", fault)
	}

	fault = ep.validate(ParameterSet{"id_card": "C1", "value": "V", "name": "N"})
	if fault != "Can only provide one of: 'value', 'name'" {
		t.Errorf("two members: unexpected fault %q", fault)
	}

	fault = ep.validate(ParameterSet{"id_card": "C1", "value": "V"})
	if fault != "" {
		t.Errorf("one member: unexpected fault %q", fault)
	}

	// An empty value does not count as supplied.
	fault = ep.validate(ParameterSet{"id_card": "C1", "value": "V", "name": "  "})
	if fault != "" {
		t.Errorf("blank second member: unexpected fault %q", fault)
	}
}

func TestValidateAtLeastOneGroupAllowsBoth(t *testing.T) {
	ep := &Endpoint{
		Path: "/boards/{id_board}/lists",
		Fields: []Field{
			{Name: "id_board"},
			{Name: "name", Wire: "name"},
			{Name: "id_list_source", Wire: "idListSource"},
		},
		Groups: []ExclusiveGroup{{
			Members: []string{"name", "id_list_source"},
			Mode:    AtLeastOne,
			ZeroMsg: "Must provide either 'name' (to create new) or 'id_list_source' (to copy)",
		}},
	}

	fault := ep.validate(ParameterSet{"id_board": "B1"})
	if !strings.Contains(fault, "Must provide either") {
		t.Errorf("zero members: unexpected fault %q", fault)
	}

	fault = ep.validate(ParameterSet{"id_board": "B1", "name": "Done", "id_list_source": "L1"})
	if fault != "" {
		t.Errorf("both members should be allowed, got %q", fault)
	}
}

func TestValidateGroupFaultPrecedesRequireRule(t *testing.T) {
	ep := &Endpoint{
		Path: "/cards/{id_card}/checklists",
		Fields: []Field{
			{Name: "id_card"},
			{Name: "value", Wire: "value"},
			{Name: "id_checklist_source", Wire: "idChecklistSource"},
			{Name: "name", Wire: "name"},
		},
		Groups: []ExclusiveGroup{{
			Members: []string{"value", "id_checklist_source", "name"},
			Mode:    ExactlyOne,
			ManyMsg: "Can only provide one of: 'value', 'id_checklist_source', or 'name'",
		}},
		Require: []RequireRule{{
			If:   "id_checklist_source",
			Then: "name",
			Msg:  "Name is required when copying a checklist",
		}},
	}

	// Supplying source and name trips the group before the accompaniment
	// rule could pass.
	fault := ep.validate(ParameterSet{"id_card": "C1", "id_checklist_source": "S1", "name": "Copy"})
	if fault != "Can only provide one of: 'value', 'id_checklist_source', or 'name'" {
		t.Errorf("unexpected fault: %q", fault)
	}
}

func TestValidateCheckHookRunsLast(t *testing.T) {
	ep := &Endpoint{
		Path: "/cards/{id_card}",
		Fields: []Field{
			{Name: "id_card"},
			{Name: "value", Wire: "pos", Required: true},
		},
		Check: func(params ParameterSet) string {
			if params.String("value") == "bad" {
				return "Position must be 'top', 'bottom', or a positive integer"
			}
			return ""
		},
	}

	// Missing parameters fault before the hook sees anything.
	fault := ep.validate(ParameterSet{"value": "bad"})
	if fault != "Missing required parameter(s): id_card" {
		t.Errorf("unexpected fault: %q", fault)
	}

	fault = ep.validate(ParameterSet{"id_card": "C1", "value": "bad"})
	if fault != "Position must be 'top', 'bottom', or a positive integer" {
		t.Errorf("unexpected fault: %q", fault)
	}

	fault = ep.validate(ParameterSet{"id_card": "C1", "value": "top"})
	if fault != "" {
		t.Errorf("unexpected fault: %q", fault)
	}
}

func TestPathParamsExcludeToken(t *testing.T) {
	ep := &Endpoint{Path: "/tokens/{token}/webhooks"}
	if got := ep.PathParams(); len(got) != 0 {
		t.Errorf("token placeholder should not be a caller parameter, got %v", got)
	}

	ep = &Endpoint{Path: "/cards/{id_card}/checklist/{id_checklist}/checkItem"}
	got := ep.PathParams()
	if len(got) != 2 || got[0] != "id_card" || got[1] != "id_checklist" {
		t.Errorf("unexpected path params: %v", got)
	}
}
