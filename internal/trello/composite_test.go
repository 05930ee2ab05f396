package trello

import (
	"context"
	"net/http"
	"strings"
	"testing"
)

// moveBackend scripts the three endpoints the bulk move touches.
type moveBackend struct {
	cards      string // body for GET /lists/{id}/cards
	lists      string // body for GET /boards/{id}/lists
	failCards  map[string]bool
	putTargets []string
	putLists   []string
}

func (b *moveBackend) handler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodGet && strings.HasSuffix(r.URL.Path, "/cards"):
			w.Write([]byte(b.cards))
		case r.Method == http.MethodGet && strings.HasSuffix(r.URL.Path, "/lists"):
			w.Write([]byte(b.lists))
		case r.Method == http.MethodPut:
			cardID := strings.TrimPrefix(r.URL.Path, "/cards/")
			b.putTargets = append(b.putTargets, cardID)
			r.ParseForm()
			b.putLists = append(b.putLists, r.PostForm.Get("idList"))
			if b.failCards[cardID] {
				w.WriteHeader(500)
				w.Write([]byte("boom"))
				return
			}
			w.Write([]byte(`{}`))
		default:
			w.WriteHeader(404)
		}
	}
}

func TestMoveAllCardsEmptySourceSkipsDestinationLookup(t *testing.T) {
	backend := &moveBackend{cards: `[]`}
	engine := newTestEngine(t, backend.handler())

	env := engine.MoveAllCards(context.Background(), "L1", "B2")

	if !env.Successful() {
		t.Fatalf("empty source is a success, got %v", env)
	}
	if env["moved_cards_count"] != 0 {
		t.Errorf("moved_cards_count = %v", env["moved_cards_count"])
	}
	if env["message"] != "No cards found in source list to move" {
		t.Errorf("message = %v", env["message"])
	}
	if len(backend.putTargets) != 0 {
		t.Errorf("no moves should be attempted, saw %v", backend.putTargets)
	}
}

func TestMoveAllCardsMissingParameters(t *testing.T) {
	engine := newTestEngine(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("validation fault must not reach the network")
	})

	env := engine.MoveAllCards(context.Background(), "", "B2")
	if env.Successful() {
		t.Fatal("expected failure envelope")
	}
	if env["error"] != "Missing required parameter(s): id_list" {
		t.Errorf("error = %v", env["error"])
	}
}

func TestMoveAllCardsDestinationFailureAbortsBeforeMoves(t *testing.T) {
	backend := &moveBackend{
		cards: `[{"id":"C1","name":"One"}]`,
		lists: `[]`,
	}
	engine := newTestEngine(t, backend.handler())

	env := engine.MoveAllCards(context.Background(), "L1", "B2")

	if env.Successful() {
		t.Fatal("expected failure envelope")
	}
	if len(backend.putTargets) != 0 {
		t.Errorf("zero moves should be attempted, saw %v", backend.putTargets)
	}
	if env["message"] != "Failed to move cards: could not find lists in destination board" {
		t.Errorf("message = %v", env["message"])
	}
}

func TestMoveAllCardsPartialFailureStaysSuccessful(t *testing.T) {
	backend := &moveBackend{
		cards:     `[{"id":"C1","name":"One"},{"id":"C2","name":"Two"},{"id":"C3","name":"Three"}]`,
		lists:     `[{"id":"DL1","name":"Inbox"},{"id":"DL2","name":"Later"}]`,
		failCards: map[string]bool{"C2": true},
	}
	engine := newTestEngine(t, backend.handler())

	env := engine.MoveAllCards(context.Background(), "L1", "B2")

	if !env.Successful() {
		t.Fatalf("partial failure is still a success envelope, got %v", env)
	}
	if len(backend.putTargets) != 3 {
		t.Fatalf("every card should be attempted, saw %v", backend.putTargets)
	}
	for _, dest := range backend.putLists {
		if dest != "DL1" {
			t.Errorf("destination must be the first list, got %v", backend.putLists)
		}
	}
	if env["moved_cards_count"] != 2 || env["failed_cards_count"] != 1 {
		t.Errorf("counts = %v / %v", env["moved_cards_count"], env["failed_cards_count"])
	}
	data := env["data"].(map[string]any)
	if data["total_cards"] != 3 {
		t.Errorf("total_cards = %v", data["total_cards"])
	}
	failed := data["failed_cards"].([]map[string]any)
	if len(failed) != 1 || failed[0]["id"] != "C2" {
		t.Errorf("failed_cards = %v", failed)
	}
	if env["message"] != "Successfully moved 2 out of 3 cards from list L1 to board B2" {
		t.Errorf("message = %v", env["message"])
	}
}

func TestMoveAllCardsFirstListWinsWhenPositionsTie(t *testing.T) {
	// Two destination lists share a position; whichever the remote returns
	// first receives the cards.
	backend := &moveBackend{
		cards: `[{"id":"C1","name":"One"}]`,
		lists: `[{"id":"DLA","pos":100},{"id":"DLB","pos":100}]`,
	}
	engine := newTestEngine(t, backend.handler())

	env := engine.MoveAllCards(context.Background(), "L1", "B2")
	if !env.Successful() {
		t.Fatalf("expected success, got %v", env)
	}
	if env["destination_list_id"] != "DLA" {
		t.Errorf("destination_list_id = %v, want DLA", env["destination_list_id"])
	}
}

func TestActionMemberCreatorProjectsFields(t *testing.T) {
	engine := newTestEngine(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"id":"A1","memberCreator":{"id":"M1","username":"alice","fullName":"Alice A","avatarHash":"abc","initials":"AA"}}`))
	})

	env := engine.ActionMemberCreator(context.Background(), "A1", "username,fullName")
	if !env.Successful() {
		t.Fatalf("expected success, got %v", env)
	}
	data := env["data"].(map[string]any)
	if len(data) != 2 || data["username"] != "alice" || data["fullName"] != "Alice A" {
		t.Errorf("projected data = %v", data)
	}
	// Convenience fields come from the full creator block, not the projection.
	if env["member_creator_id"] != "M1" {
		t.Errorf("member_creator_id = %v", env["member_creator_id"])
	}
	if env["member_creator_avatar_hash"] != "abc" {
		t.Errorf("member_creator_avatar_hash = %v", env["member_creator_avatar_hash"])
	}
}

func TestActionMemberCreatorAllFields(t *testing.T) {
	engine := newTestEngine(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"id":"A1","memberCreator":{"id":"M1","username":"alice"}}`))
	})

	env := engine.ActionMemberCreator(context.Background(), "A1", "all")
	if !env.Successful() {
		t.Fatalf("expected success, got %v", env)
	}
	data := env["data"].(map[string]any)
	if len(data) != 2 {
		t.Errorf("'all' must not filter, got %v", data)
	}
}

func TestActionMemberCreatorMissingCreator(t *testing.T) {
	engine := newTestEngine(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"id":"A1","type":"updateCard"}`))
	})

	env := engine.ActionMemberCreator(context.Background(), "A1", "")
	if env.Successful() {
		t.Fatal("expected failure envelope")
	}
	if env["error"] != "No member creator information found for this action" {
		t.Errorf("error = %v", env["error"])
	}
}
