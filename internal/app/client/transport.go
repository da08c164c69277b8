package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"os"
	"strings"
	"sync"
	"time"

	"golang.org/x/exp/slog"

	"hardstore/internal/app/client/config"
)

// apiClient is the single point of outbound HTTP communication with the
// catalog backend. Every call carries Accept-Language and is bounded by the
// configured timeout. There is no retry: the configured retry count is
// deliberately unwired (see config.Config.RetryCount).
type apiClient struct {
	client    *http.Client
	log       *slog.Logger
	baseURL   string
	language  func() string
	userAgent string

	mu    sync.RWMutex
	token string
}

func newAPIClient(cfg *config.Config, log *slog.Logger, language func() string) *apiClient {
	client := &http.Client{
		Timeout: time.Duration(cfg.HTTPTimeout) * time.Second,
		Transport: &http.Transport{
			MaxIdleConns:        100,
			IdleConnTimeout:     90 * time.Second,
			MaxIdleConnsPerHost: 10,
		},
	}

	return &apiClient{
		client:    client,
		log:       log,
		baseURL:   strings.TrimRight(cfg.BaseURL, "/"),
		language:  language,
		userAgent: "Hardstore-Client/1.0",
	}
}

// SetToken sets the bearer token attached to subsequent requests.
func (a *apiClient) SetToken(token string) {
	a.mu.Lock()
	a.token = token
	a.mu.Unlock()
}

func (a *apiClient) getToken() string {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.token
}

func (a *apiClient) doRequest(ctx context.Context, method, path string, query url.Values, body any) (*http.Response, error) {
	var reqBody io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return nil, a.fail(method, path, &SetupError{Err: fmt.Errorf("marshal request body: %w", err)})
		}
		reqBody = bytes.NewBuffer(jsonData)
	}

	u := a.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reqBody)
	if err != nil {
		return nil, a.fail(method, path, &SetupError{Err: err})
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept-Language", a.acceptLanguage())
	req.Header.Set("User-Agent", a.userAgent)
	if token := a.getToken(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	a.log.Debug("sending request",
		"method", method,
		"url", req.URL.String(),
	)

	resp, err := a.client.Do(req)
	if err != nil {
		return nil, a.fail(method, path, classifyTransport(err))
	}

	return resp, nil
}

// parseResponse consumes resp, classifying status >= 400 as HTTPError and
// decoding the body into result otherwise. result may be nil.
func (a *apiClient) parseResponse(resp *http.Response, result any) error {
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return a.fail(resp.Request.Method, resp.Request.URL.Path, &NetworkError{Err: fmt.Errorf("read response: %w", err)})
	}

	a.log.Debug("received response",
		"status", resp.StatusCode,
		"bytes", len(body),
	)

	if resp.StatusCode >= http.StatusBadRequest {
		httpErr := &HTTPError{
			Status:  resp.StatusCode,
			Body:    body,
			Message: extractMessage(body),
		}
		return a.fail(resp.Request.Method, resp.Request.URL.Path, httpErr)
	}

	if result != nil {
		if err := json.Unmarshal(body, result); err != nil {
			return a.fail(resp.Request.Method, resp.Request.URL.Path, &NetworkError{Err: fmt.Errorf("parse response: %w", err)})
		}
	}

	return nil
}

// get issues a GET and decodes the response into result.
func (a *apiClient) get(ctx context.Context, path string, query url.Values, result any) error {
	resp, err := a.doRequest(ctx, http.MethodGet, path, query, nil)
	if err != nil {
		return err
	}
	return a.parseResponse(resp, result)
}

// post issues a POST with a JSON body and decodes the response into result.
func (a *apiClient) post(ctx context.Context, path string, query url.Values, body, result any) error {
	resp, err := a.doRequest(ctx, http.MethodPost, path, query, body)
	if err != nil {
		return err
	}
	return a.parseResponse(resp, result)
}

func (a *apiClient) put(ctx context.Context, path string, query url.Values, body, result any) error {
	resp, err := a.doRequest(ctx, http.MethodPut, path, query, body)
	if err != nil {
		return err
	}
	return a.parseResponse(resp, result)
}

func (a *apiClient) patch(ctx context.Context, path string, query url.Values, body, result any) error {
	resp, err := a.doRequest(ctx, http.MethodPatch, path, query, body)
	if err != nil {
		return err
	}
	return a.parseResponse(resp, result)
}

func (a *apiClient) delete(ctx context.Context, path string) error {
	resp, err := a.doRequest(ctx, http.MethodDelete, path, nil, nil)
	if err != nil {
		return err
	}
	return a.parseResponse(resp, nil)
}

// acceptLanguage resolves the persisted preference, falling back to "en" when
// nothing has been persisted yet.
func (a *apiClient) acceptLanguage() string {
	if a.language != nil {
		if lang := a.language(); lang != "" {
			return lang
		}
	}
	return "en"
}

// fail logs one diagnostic record per failure classification and returns the
// error unchanged.
func (a *apiClient) fail(method, path string, err error) error {
	var (
		netErr   *NetworkError
		httpErr  *HTTPError
		setupErr *SetupError
	)
	switch {
	case errors.As(err, &httpErr):
		a.log.Warn("request failed with server error",
			"method", method, "path", path,
			"status", httpErr.Status, "message", httpErr.Message,
		)
	case errors.As(err, &netErr):
		a.log.Warn("request failed with network error",
			"method", method, "path", path,
			"timeout", netErr.Timeout, "error", netErr.Err,
		)
	case errors.As(err, &setupErr):
		a.log.Error("request could not be built",
			"method", method, "path", path,
			"error", setupErr.Err,
		)
	}
	return err
}

func classifyTransport(err error) error {
	timeout := errors.Is(err, context.DeadlineExceeded) || os.IsTimeout(err)
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		timeout = true
	}
	return &NetworkError{Timeout: timeout, Err: err}
}

// extractMessage pulls the backend's message/error field out of an error body.
func extractMessage(body []byte) string {
	var payload struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return ""
	}
	if payload.Message != "" {
		return payload.Message
	}
	return payload.Error
}
