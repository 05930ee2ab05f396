package trello

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/trellomcp/trello-mcp/internal/common"
)

type staticCreds struct {
	key, token string
}

func (c staticCreds) Credentials() (Credentials, error) {
	return Credentials{Key: c.key, Token: c.token}, nil
}

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	client := NewClient(srv.URL, staticCreds{key: "test-key", token: "test-token"}, 5*time.Second, common.NewSilentLogger())
	return client, srv
}

func TestDoMergesCredentialsIntoQueryForGet(t *testing.T) {
	var gotQuery map[string][]string
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		w.Write([]byte(`[]`))
	})

	payload := NewPayload()
	payload.Set("fields", "name,desc")
	if _, err := client.Do(context.Background(), http.MethodGet, "/boards/B1/cards", payload, nil); err != nil {
		t.Fatalf("Do failed: %v", err)
	}

	if got := gotQuery["key"]; len(got) != 1 || got[0] != "test-key" {
		t.Errorf("key = %v, want test-key", got)
	}
	if got := gotQuery["token"]; len(got) != 1 || got[0] != "test-token" {
		t.Errorf("token = %v, want test-token", got)
	}
	if got := gotQuery["fields"]; len(got) != 1 || got[0] != "name,desc" {
		t.Errorf("fields = %v, want name,desc", got)
	}
}

func TestDoMergesCredentialsIntoFormBodyForPost(t *testing.T) {
	var gotForm map[string][]string
	var gotContentType string
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotContentType = r.Header.Get("Content-Type")
		r.ParseForm()
		gotForm = r.PostForm
		w.Write([]byte(`{"id":"L1"}`))
	})

	payload := NewPayload()
	payload.Set("name", "Urgent")
	if _, err := client.Do(context.Background(), http.MethodPost, "/boards/B1/labels", payload, nil); err != nil {
		t.Fatalf("Do failed: %v", err)
	}

	if gotContentType != "application/x-www-form-urlencoded" {
		t.Errorf("Content-Type = %q", gotContentType)
	}
	if got := gotForm["key"]; len(got) != 1 || got[0] != "test-key" {
		t.Errorf("key = %v, want test-key", got)
	}
	if got := gotForm["name"]; len(got) != 1 || got[0] != "Urgent" {
		t.Errorf("name = %v, want Urgent", got)
	}
	if r := gotForm["token"]; len(r) != 1 {
		t.Errorf("token not in form body: %v", gotForm)
	}
}

func TestDoCredentialsWinKeyCollisions(t *testing.T) {
	var gotForm map[string][]string
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		r.ParseForm()
		gotForm = r.PostForm
		w.Write([]byte(`{}`))
	})

	// A caller-supplied "key" field must be overwritten, never duplicated.
	payload := NewPayload()
	payload.Set("key", "attacker")
	if _, err := client.Do(context.Background(), http.MethodPost, "/cards", payload, nil); err != nil {
		t.Fatalf("Do failed: %v", err)
	}
	if got := gotForm["key"]; len(got) != 1 || got[0] != "test-key" {
		t.Errorf("key = %v, want single test-key", got)
	}
}

func TestDoAlwaysSendsAcceptJSON(t *testing.T) {
	var gotAccept string
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAccept = r.Header.Get("Accept")
		w.Write([]byte(`{}`))
	})

	headers := http.Header{}
	headers.Set("Accept", "text/html")
	headers.Set("X-Extra", "yes")
	if _, err := client.Do(context.Background(), http.MethodGet, "/boards/B1", NewPayload(), headers); err != nil {
		t.Fatalf("Do failed: %v", err)
	}
	if gotAccept != "application/json" {
		t.Errorf("Accept = %q, caller headers must not displace it", gotAccept)
	}
}

func TestDoResolvesTokenPlaceholderFromCredentials(t *testing.T) {
	var gotPath string
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Write([]byte(`{"id":"W1"}`))
	})

	if _, err := client.Do(context.Background(), http.MethodPost, "/tokens/{token}/webhooks", NewPayload(), nil); err != nil {
		t.Fatalf("Do failed: %v", err)
	}
	if gotPath != "/tokens/test-token/webhooks" {
		t.Errorf("path = %q, want /tokens/test-token/webhooks", gotPath)
	}
}

func TestDoClassification(t *testing.T) {
	cases := []struct {
		name   string
		status int
		body   string
		check  func(t *testing.T, data any, err error)
	}{
		{
			name: "json object", status: 200, body: `{"id":"C1"}`,
			check: func(t *testing.T, data any, err error) {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				m, ok := data.(map[string]any)
				if !ok || m["id"] != "C1" {
					t.Errorf("data = %#v", data)
				}
			},
		},
		{
			name: "json array", status: 200, body: `[{"id":"C1"}]`,
			check: func(t *testing.T, data any, err error) {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if list, ok := data.([]any); !ok || len(list) != 1 {
					t.Errorf("data = %#v", data)
				}
			},
		},
		{
			name: "empty body", status: 200, body: "",
			check: func(t *testing.T, data any, err error) {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				m, ok := data.(map[string]any)
				if !ok || len(m) != 0 {
					t.Errorf("empty body should yield empty mapping, got %#v", data)
				}
			},
		},
		{
			name: "non-json body", status: 200, body: "plain text",
			check: func(t *testing.T, data any, err error) {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				m, ok := data.(map[string]any)
				if !ok || m["raw"] != "plain text" {
					t.Errorf("data = %#v", data)
				}
			},
		},
		{
			name: "not found", status: 404, body: "not found",
			check: func(t *testing.T, data any, err error) {
				apiErr, ok := err.(*APIError)
				if !ok {
					t.Fatalf("expected *APIError, got %v", err)
				}
				if apiErr.Status != 404 || apiErr.Body != "not found" {
					t.Errorf("APIError = %+v", apiErr)
				}
				if apiErr.Error() != "Trello API error 404: not found" {
					t.Errorf("Error() = %q", apiErr.Error())
				}
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
				w.Write([]byte(tc.body))
			})
			data, err := client.Do(context.Background(), http.MethodGet, "/x", NewPayload(), nil)
			tc.check(t, data, err)
		})
	}
}

func TestEnvCredentials(t *testing.T) {
	t.Setenv("TRELLO_API_KEY", "k1")
	t.Setenv("TRELLO_API_TOKEN", "t1")
	creds, err := EnvCredentials{}.Credentials()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if creds.Key != "k1" || creds.Token != "t1" {
		t.Errorf("creds = %+v", creds)
	}

	t.Setenv("TRELLO_API_TOKEN", "")
	if _, err := (EnvCredentials{}).Credentials(); err == nil {
		t.Error("missing token must be an error")
	} else if err.Error() != "missing required environment variable: TRELLO_API_TOKEN" {
		t.Errorf("error = %q", err.Error())
	}

	t.Setenv("TRELLO_API_KEY", "")
	if _, err := (EnvCredentials{}).Credentials(); err == nil {
		t.Error("missing key must be an error")
	} else if err.Error() != "missing required environment variable: TRELLO_API_KEY" {
		t.Errorf("error = %q", err.Error())
	}
}

func TestDoTransportFault(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // refuse connections

	client := NewClient(srv.URL, staticCreds{key: "k", token: "t"}, time.Second, common.NewSilentLogger())
	_, err := client.Do(context.Background(), http.MethodGet, "/boards/B1", NewPayload(), nil)
	apiErr, ok := err.(*APIError)
	if !ok {
		t.Fatalf("expected *APIError, got %v", err)
	}
	if apiErr.Status != 0 || apiErr.Err == nil {
		t.Errorf("transport fault should carry a wrapped error, got %+v", apiErr)
	}
}
