package trello

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/trellomcp/trello-mcp/internal/common"
)

// DefaultBaseURL is the remote API root. Trello uses a single base URL for
// all endpoints.
const DefaultBaseURL = "https://api.trello.com/1"

// Credentials carries the two secrets every request must present.
type Credentials struct {
	Key   string
	Token string
}

// CredentialProvider resolves credentials for one outgoing request.
// Implementations must be cheap: the dispatcher resolves on every request so
// environment changes take effect without a restart.
type CredentialProvider interface {
	Credentials() (Credentials, error)
}

// EnvCredentials resolves credentials from TRELLO_API_KEY and
// TRELLO_API_TOKEN. Absence of either is an error; main treats that as fatal
// at startup.
type EnvCredentials struct{}

func (EnvCredentials) Credentials() (Credentials, error) {
	key := os.Getenv("TRELLO_API_KEY")
	if key == "" {
		return Credentials{}, fmt.Errorf("missing required environment variable: TRELLO_API_KEY")
	}
	token := os.Getenv("TRELLO_API_TOKEN")
	if token == "" {
		return Credentials{}, fmt.Errorf("missing required environment variable: TRELLO_API_TOKEN")
	}
	return Credentials{Key: key, Token: token}, nil
}

// APIError reports a failed dispatch: a non-2xx response from the remote
// service, or a transport-level fault. The two are not distinguished in the
// envelope, only in internal diagnostics.
type APIError struct {
	Status int    // HTTP status, 0 for transport faults
	Body   string // raw response body, "" for transport faults
	Err    error  // underlying transport fault, nil for remote errors
}

func (e *APIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("Trello request failed: %v", e.Err)
	}
	return fmt.Sprintf("Trello API error %d: %s", e.Status, e.Body)
}

func (e *APIError) Unwrap() error { return e.Err }

// Client dispatches authenticated requests to the remote API and classifies
// the responses. It holds no mutable state; concurrent invocations share it
// safely.
type Client struct {
	baseURL    string
	httpClient *http.Client
	creds      CredentialProvider
	logger     *common.Logger
}

// NewClient creates a dispatcher targeting the given API base URL.
func NewClient(baseURL string, creds CredentialProvider, timeout time.Duration, logger *common.Logger) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		creds:      creds,
		logger:     logger,
	}
}

// Do sends one request and classifies the response. The path must already
// have its caller placeholders resolved; {token} resolves here from the
// credential token. Credentials merge into the query for GET and into the
// form body for every other method, and always win key collisions with
// caller-supplied fields. Extra headers merge in, but can never displace the
// Accept header.
//
// Classification: 2xx with a JSON body decodes to that value; a 2xx body that
// is not JSON yields {"raw": body}; a 2xx empty body yields an empty mapping.
// Anything else is an *APIError.
func (c *Client) Do(ctx context.Context, method, path string, payload *Payload, headers http.Header) (any, error) {
	creds, err := c.creds.Credentials()
	if err != nil {
		return nil, &APIError{Err: err}
	}
	path = strings.ReplaceAll(path, "{token}", url.PathEscape(creds.Token))

	log := c.logger.WithCorrelationId(uuid.NewString())
	log.Debug().
		Str("method", method).
		Str("path", path).
		Int("fields", payload.Len()).
		Msg("Trello API request")

	var bodyReader io.Reader
	query := ""
	if method == http.MethodGet {
		vals := payload.Values()
		vals.Set("key", creds.Key)
		vals.Set("token", creds.Token)
		query = "?" + vals.Encode()
	} else {
		vals := payload.Values()
		vals.Set("key", creds.Key)
		vals.Set("token", creds.Token)
		bodyReader = strings.NewReader(vals.Encode())
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path+query, bodyReader)
	if err != nil {
		return nil, &APIError{Err: err}
	}
	for key, vals := range headers {
		for _, v := range vals {
			req.Header.Add(key, v)
		}
	}
	req.Header.Set("Accept", "application/json")
	if bodyReader != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	duration := time.Since(start)
	if err != nil {
		log.Error().Err(err).Str("path", path).Dur("duration", duration).Msg("Trello API request failed")
		return nil, &APIError{Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return nil, &APIError{Err: fmt.Errorf("failed to read response: %w", err)}
	}

	log.Debug().
		Int("status_code", resp.StatusCode).
		Dur("duration", duration).
		Int("body_bytes", len(body)).
		Msg("Trello API response")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		log.Warn().Int("status_code", resp.StatusCode).Str("path", path).Msg("Trello API error")
		return nil, &APIError{Status: resp.StatusCode, Body: string(body)}
	}

	if len(body) == 0 {
		return map[string]any{}, nil
	}
	var decoded any
	if err := json.Unmarshal(body, &decoded); err != nil {
		return map[string]any{"raw": string(body)}, nil
	}
	return decoded, nil
}
