package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/agroassist/internal/logging"
)

const (
	HeaderRequestID = "X-Request-ID"
	contentTypeJSON = "application/json"
)

// TokenSource supplies the bearer token for outgoing requests.
type TokenSource interface {
	Get(ctx context.Context) (string, bool)
}

type Executor struct {
	baseURL    string
	httpClient *http.Client
	tokens     TokenSource
	logger     logging.Logger
}

// NewExecutor returns an executor for baseURL. A zero timeout leaves requests
// bounded only by their context.
func NewExecutor(baseURL string, tokens TokenSource, timeout time.Duration, logger logging.Logger) *Executor {
	return &Executor{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		tokens:     tokens,
		logger:     logger,
	}
}

func (e *Executor) BaseURL() string {
	return e.baseURL
}

func (e *Executor) Get(ctx context.Context, path string, out any) error {
	return e.Do(ctx, http.MethodGet, path, nil, out)
}

func (e *Executor) Post(ctx context.Context, path string, body, out any) error {
	return e.Do(ctx, http.MethodPost, path, body, out)
}

func (e *Executor) Put(ctx context.Context, path string, body, out any) error {
	return e.Do(ctx, http.MethodPut, path, body, out)
}

func (e *Executor) Delete(ctx context.Context, path string, out any) error {
	return e.Do(ctx, http.MethodDelete, path, nil, out)
}

// Do performs one request. body, when non-nil, is sent as JSON; a 2xx
// response is decoded into out unless out is nil or the body is empty.
func (e *Executor) Do(ctx context.Context, method, path string, body, out any) error {
	var payload io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%s %s: encode body: %w", method, path, err)
		}
		payload = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, e.baseURL+path, payload)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}

	requestID := uuid.NewString()
	req.Header.Set("Accept", contentTypeJSON)
	req.Header.Set(HeaderRequestID, requestID)
	if body != nil {
		req.Header.Set("Content-Type", contentTypeJSON)
	}
	if token, ok := e.tokens.Get(ctx); ok {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	log := e.logger.With("method", method, "path", path, "request_id", requestID)

	start := time.Now()
	resp, err := e.httpClient.Do(req)
	if err != nil {
		log.Error(ctx, "API request failed", "error", err)
		return fmt.Errorf("%s %s: %w: %w", method, path, ErrNetworkUnreachable, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Error(ctx, "API request failed", "status", resp.StatusCode, "error", err)
		return fmt.Errorf("%s %s: read body: %w: %w", method, path, ErrNetworkUnreachable, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		reqErr := &RequestError{StatusCode: resp.StatusCode, Message: errorMessage(resp.StatusCode, data)}
		log.Error(ctx, "API request failed", "status", resp.StatusCode, "error", reqErr.Message)
		return reqErr
	}

	log.Debug(ctx, "API request completed", "status", resp.StatusCode, "elapsed", time.Since(start))

	if out == nil || len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("%s %s: decode response: %w", method, path, err)
	}
	return nil
}

// errorMessage extracts the server message from an error body, falling back
// to the status when the body is not JSON or carries neither field.
func errorMessage(status int, data []byte) string {
	var body struct {
		Error   any `json:"error"`
		Message any `json:"message"`
	}
	if err := json.Unmarshal(data, &body); err != nil {
		return statusMessage(status)
	}
	if s, ok := body.Error.(string); ok && s != "" {
		return s
	}
	if s, ok := body.Message.(string); ok && s != "" {
		return s
	}
	return statusMessage(status)
}
