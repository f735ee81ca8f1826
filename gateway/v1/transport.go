package v1

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"timesheet.app/timesheet/gateway/v1/common"
)

// Transport handles low-level HTTP against the gateway script. Every
// operation is a GET with an action parameter.
type Transport struct {
	BaseURL    string
	AuthToken  string
	HTTPClient *http.Client
}

// NewTransport creates a transport with base URL and request timeout
func NewTransport(baseURL string, timeout time.Duration) *Transport {
	return &Transport{
		BaseURL:    baseURL,
		HTTPClient: &http.Client{Timeout: timeout},
	}
}

// helper: build full URL with action and query params
func (t *Transport) buildURL(action string, query map[string]string) (string, error) {
	u, err := url.Parse(t.BaseURL)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrNotConfigured, err)
	}
	q := u.Query()
	q.Set("action", action)
	for k, v := range query {
		q.Set(k, v)
	}
	u.RawQuery = q.Encode()
	return u.String(), nil
}

// Get calls action and decodes the JSON response into out, which may be nil.
func (t *Transport) Get(ctx context.Context, action string, query map[string]string, out any) error {
	if t.BaseURL == "" {
		return ErrNotConfigured
	}
	fullURL, err := t.buildURL(action, query)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Cache-Control", "no-cache")
	if t.AuthToken != "" {
		req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", t.AuthToken))
	}

	resp, err := t.HTTPClient.Do(req)
	if err != nil {
		return &TransportError{Action: action, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return &TransportError{Action: action, Err: err}
	}

	if resp.StatusCode >= 300 {
		return &TransportError{
			Action: action,
			Err:    fmt.Errorf("GET %s failed with status code %d: %s", action, resp.StatusCode, string(body)),
		}
	}

	var status common.StatusAPIResponse
	if err := json.Unmarshal(body, &status); err != nil {
		return fmt.Errorf("%s: %w", action, ErrInvalidResponse)
	}
	if msg := status.ErrorMessage(); msg != "" {
		return &RemoteError{Action: action, Message: msg}
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("%s: %w", action, ErrInvalidResponse)
	}
	return nil
}
