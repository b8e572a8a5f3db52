package news

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// DefaultSessionCookie is the cookie name the backend issues on login.
const DefaultSessionCookie = "session_token"

// Client is the SDK client for the news summary backend.
type Client struct {
	baseURL    string
	httpClient *http.Client
	cookieName string
	cookie     string
}

// ClientOption configures the client.
type ClientOption func(*Client)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(c *http.Client) ClientOption {
	return func(client *Client) {
		client.httpClient = c
	}
}

// WithTimeout sets the HTTP client timeout.
func WithTimeout(d time.Duration) ClientOption {
	return func(client *Client) {
		if client.httpClient == nil {
			client.httpClient = &http.Client{}
		}
		client.httpClient.Timeout = d
	}
}

// WithSessionCookie attaches the session cookie to every request.
func WithSessionCookie(value string) ClientOption {
	return func(client *Client) {
		client.cookie = value
	}
}

// WithSessionCookieName overrides the session cookie name.
func WithSessionCookieName(name string) ClientOption {
	return func(client *Client) {
		client.cookieName = name
	}
}

// NewClient creates a new SDK client. The backend proxy allows long-running
// generation calls, so the default timeout is generous.
func NewClient(baseURL string, opts ...ClientOption) *Client {
	c := &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		cookieName: DefaultSessionCookie,
		httpClient: &http.Client{
			Timeout: 20 * time.Minute,
		},
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// String creates a string pointer (helper for optional fields).
func String(s string) *string {
	return &s
}

// APIError is a non-2xx response from the backend. Detail carries the
// backend's user-facing message verbatim.
type APIError struct {
	Status int
	Detail string
}

func (e *APIError) Error() string {
	if e.Detail != "" {
		return e.Detail
	}
	return fmt.Sprintf("request failed with status %d", e.Status)
}

type errorBody struct {
	Detail string `json:"detail"`
}

// doRequest performs an HTTP request and decodes the JSON response.
func (c *Client) doRequest(ctx context.Context, method, path string, body interface{}, result interface{}) error {
	var bodyReader io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(jsonBody)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bodyReader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	c.decorateRequest(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return decodeAPIError(resp)
	}

	if result != nil {
		if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}

	return nil
}

// doMultipart performs a multipart/form-data POST.
func (c *Client) doMultipart(ctx context.Context, path string, fields map[string]string, fileField, fileName string, file io.Reader) error {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	for k, v := range fields {
		if err := w.WriteField(k, v); err != nil {
			return fmt.Errorf("write form field %s: %w", k, err)
		}
	}
	if file != nil {
		part, err := w.CreateFormFile(fileField, fileName)
		if err != nil {
			return fmt.Errorf("create form file: %w", err)
		}
		if _, err := io.Copy(part, file); err != nil {
			return fmt.Errorf("copy file contents: %w", err)
		}
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("close multipart writer: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, &buf)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", w.FormDataContentType())
	req.Header.Set("Accept", "application/json")
	c.decorateRequest(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return decodeAPIError(resp)
	}
	return nil
}

func (c *Client) decorateRequest(req *http.Request) {
	if c.cookie != "" {
		req.AddCookie(&http.Cookie{Name: c.cookieName, Value: c.cookie})
	}
	// Request IDs let backend logs be correlated with the client log.
	req.Header.Set("X-Request-ID", uuid.NewString())
}

func decodeAPIError(resp *http.Response) error {
	apiErr := &APIError{Status: resp.StatusCode}
	var body errorBody
	if err := json.NewDecoder(resp.Body).Decode(&body); err == nil {
		apiErr.Detail = body.Detail
	}
	return apiErr
}

// Initialize fetches the authoritative server snapshot that drives the UI.
func (c *Client) Initialize(ctx context.Context) (*InitSnapshot, error) {
	var result InitSnapshot
	if err := c.doRequest(ctx, http.MethodGet, "/news_summary/initialize", nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// HasValidSession reports whether the session cookie is still accepted.
func (c *Client) HasValidSession(ctx context.Context) (bool, error) {
	var result struct {
		Valid bool `json:"valid"`
	}
	if err := c.doRequest(ctx, http.MethodGet, "/users/has_valid_session", nil, &result); err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) && apiErr.Status == http.StatusUnauthorized {
			return false, nil
		}
		return false, err
	}
	return result.Valid, nil
}

func itoa(id int) string {
	return strconv.Itoa(id)
}
