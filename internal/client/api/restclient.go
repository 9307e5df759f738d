package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/dayjournal/internal/client/jwtx"
	"github.com/dmitrijs2005/dayjournal/internal/client/models"
	"github.com/dmitrijs2005/dayjournal/internal/client/session"
	"github.com/dmitrijs2005/dayjournal/internal/client/token"
	"github.com/dmitrijs2005/dayjournal/internal/common"
	"github.com/dmitrijs2005/dayjournal/internal/logging"
)

// DefaultTimeout bounds every backend call. On timeout the call fails as a
// normal error; there is no automatic retry.
const DefaultTimeout = 10 * time.Second

// RESTClient is the concrete Client talking JSON over HTTP.
type RESTClient struct {
	baseURL    string
	httpClient *http.Client
	tokens     token.Store
	notifier   *session.Notifier
	log        logging.Logger

	// now is a test seam for credential expiry checks.
	now func() time.Time
}

func NewRESTClient(baseURL string, tokens token.Store, notifier *session.Notifier, log logging.Logger) *RESTClient {
	return &RESTClient{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: DefaultTimeout},
		tokens:     tokens,
		notifier:   notifier,
		log:        log,
		now:        time.Now,
	}
}

// errorBody is the shape of backend error responses.
type errorBody struct {
	Message string `json:"message"`
}

// expire drops the stored credential and tells the rest of the application
// that the session is gone. Best effort: a failed delete still publishes.
func (c *RESTClient) expire(ctx context.Context) {
	if err := c.tokens.Delete(ctx); err != nil {
		c.log.Error(ctx, "failed to delete credential", "error", err)
	}
	c.notifier.Publish()
}

// do runs the single request pipeline: credential lookup and local expiry
// check, send, 401 detection, error-body decoding, and response decoding
// into out (skipped when out is nil or the response has no content).
func (c *RESTClient) do(ctx context.Context, method, path string, body any, out any) error {
	log := c.log.With("request_id", uuid.NewString(), "method", method, "path", path)

	tok, err := c.tokens.Get(ctx)
	if err != nil {
		return fmt.Errorf("failed to read credential: %w", err)
	}
	if tok != "" && jwtx.Expired(tok, c.now()) {
		log.Warn(ctx, "credential expired locally, refusing to send request")
		c.expire(ctx)
		return common.ErrTokenExpired
	}

	var reqBody io.Reader
	var reqBytes []byte
	if body != nil {
		reqBytes, err = json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reqBody = bytes.NewReader(reqBytes)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if tok != "" {
		req.Header.Set("Authorization", "Bearer "+tok)
	}

	log.Info(ctx, "api request")
	if len(reqBytes) > 0 {
		log.Debug(ctx, "api request body", "body", string(reqBytes))
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Error(ctx, "api request failed", "error", err)
		return fmt.Errorf("%w: %v", common.ErrUnavailable, err)
	}
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Error(ctx, "failed to read response body", "error", err)
		return fmt.Errorf("%w: %v", common.ErrUnavailable, err)
	}

	log.Info(ctx, "api response", "status", resp.StatusCode)
	if len(respBytes) > 0 {
		log.Debug(ctx, "api response body", "body", string(respBytes))
	}

	if resp.StatusCode == http.StatusUnauthorized {
		log.Warn(ctx, "credential rejected by server")
		c.expire(ctx)
		return common.ErrorUnauthorized
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var eb errorBody
		_ = json.Unmarshal(respBytes, &eb)
		return &ServerError{Status: resp.StatusCode, Message: eb.Message}
	}

	if out != nil && len(respBytes) > 0 {
		if err := json.Unmarshal(respBytes, out); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}
	return nil
}

func (c *RESTClient) Register(ctx context.Context, req RegisterRequest) (*AuthResponse, error) {
	var resp AuthResponse
	if err := c.do(ctx, http.MethodPost, "/auth/register", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *RESTClient) Login(ctx context.Context, req LoginRequest) (*AuthResponse, error) {
	var resp AuthResponse
	if err := c.do(ctx, http.MethodPost, "/auth/login", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *RESTClient) ListEntries(ctx context.Context) ([]models.Entry, error) {
	var entries []models.Entry
	if err := c.do(ctx, http.MethodGet, "/entries", nil, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

func (c *RESTClient) CreateEntry(ctx context.Context, draft models.EntryDraft) (*models.Entry, error) {
	var entry models.Entry
	if err := c.do(ctx, http.MethodPost, "/entries", draft, &entry); err != nil {
		return nil, err
	}
	return &entry, nil
}

func (c *RESTClient) UpdateEntry(ctx context.Context, id int64, patch models.EntryPatch) (*models.Entry, error) {
	var entry models.Entry
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/entries/%d", id), patch, &entry); err != nil {
		return nil, err
	}
	return &entry, nil
}

func (c *RESTClient) DeleteEntry(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/entries/%d", id), nil, nil)
}

func (c *RESTClient) GetProfile(ctx context.Context) (*models.Profile, error) {
	var profile models.Profile
	if err := c.do(ctx, http.MethodGet, "/user/profile", nil, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

func (c *RESTClient) UpdateProfile(ctx context.Context, upd ProfileUpdate) error {
	return c.do(ctx, http.MethodPut, "/user/profile", upd, nil)
}

func (c *RESTClient) Frequency(ctx context.Context) ([]models.FrequencyBucket, error) {
	var buckets []models.FrequencyBucket
	if err := c.do(ctx, http.MethodGet, "/summary/frequency", nil, &buckets); err != nil {
		return nil, err
	}
	return buckets, nil
}

func (c *RESTClient) Categories(ctx context.Context) ([]models.CategoryCount, error) {
	var counts []models.CategoryCount
	if err := c.do(ctx, http.MethodGet, "/summary/categories", nil, &counts); err != nil {
		return nil, err
	}
	return counts, nil
}

func (c *RESTClient) WordCount(ctx context.Context) (*models.WordCount, error) {
	var wc models.WordCount
	if err := c.do(ctx, http.MethodGet, "/summary/word-count", nil, &wc); err != nil {
		return nil, err
	}
	return &wc, nil
}
