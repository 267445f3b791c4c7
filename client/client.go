// Package client talks to the specification dashboard REST API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Client is an authenticated API client. Every call attaches the session's
// access token; a 401 triggers exactly one refresh and one retry.
type Client struct {
	baseURL    string
	httpClient *http.Client
	session    *Session
	log        *zap.Logger
	refreshMu  sync.Mutex
}

// Option configures a Client
type Option func(*Client)

// WithHTTPClient replaces the default HTTP client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithTimeout sets the per-request timeout of the default HTTP client
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.httpClient.Timeout = d }
}

// WithLogger sets the logger used for request tracing
func WithLogger(log *zap.Logger) Option {
	return func(c *Client) { c.log = log }
}

// New creates a client for the API rooted at baseURL (e.g.
// "http://localhost:8000")
func New(baseURL string, session *Session, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 30 * time.Second},
		session:    session,
		log:        zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Session returns the client's session
func (c *Client) Session() *Session { return c.session }

// Login exchanges credentials for a token pair and stores it in the session
func (c *Client) Login(ctx context.Context, email, password string) error {
	var tokens Tokens
	body := map[string]string{"email": email, "password": password}
	if err := c.send(ctx, http.MethodPost, "/api/token/", nil, body, "", &tokens); err != nil {
		return err
	}
	return c.session.Set(tokens)
}

// Logout forgets the stored tokens
func (c *Client) Logout() error {
	return c.session.Clear()
}

// do performs an authenticated JSON call
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	access := c.session.Tokens().Access
	err := c.send(ctx, method, path, query, body, access, out)
	if KindOf(err) != KindAuthentication || !isStatus(err, http.StatusUnauthorized) {
		return err
	}

	c.log.Debug("access token rejected, refreshing", zap.String("path", path))
	if err := c.refresh(ctx, access); err != nil {
		return err
	}
	return c.send(ctx, method, path, query, body, c.session.Tokens().Access, out)
}

// refresh exchanges the refresh token once. If another goroutine already
// replaced the rejected access token, its result is reused.
func (c *Client) refresh(ctx context.Context, rejected string) error {
	c.refreshMu.Lock()
	defer c.refreshMu.Unlock()

	tokens := c.session.Tokens()
	if tokens.Access != "" && tokens.Access != rejected {
		return nil
	}
	if tokens.Refresh == "" {
		_ = c.session.Clear()
		return ErrSessionExpired
	}

	var resp struct {
		Access string `json:"access"`
	}
	body := map[string]string{"refresh": tokens.Refresh}
	if err := c.send(ctx, http.MethodPost, "/api/token/refresh/", nil, body, "", &resp); err != nil {
		c.log.Info("refresh failed, clearing session", zap.Error(err))
		_ = c.session.Clear()
		return ErrSessionExpired
	}
	if resp.Access == "" {
		_ = c.session.Clear()
		return ErrSessionExpired
	}
	return c.session.SetAccess(resp.Access)
}

// send performs one HTTP exchange. out may be nil, a *[]byte for raw
// bodies, or a pointer to decode JSON into.
func (c *Client) send(ctx context.Context, method, path string, query url.Values, body any, access string, out any) error {
	target, err := c.target(path)
	if err != nil {
		return err
	}
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return &Error{Kind: KindNetwork, Message: "build request", Err: err}
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if access != "" {
		req.Header.Set("Authorization", "Bearer "+access)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &Error{Kind: KindNetwork, Message: method + " " + path, Err: err}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return &Error{Kind: KindNetwork, StatusCode: resp.StatusCode, Message: "read response", Err: err}
	}
	c.log.Debug("api call",
		zap.String("method", method),
		zap.String("path", path),
		zap.Int("status", resp.StatusCode),
		zap.Duration("latency", time.Since(start)),
	)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return errorFromResponse(resp.StatusCode, respBody)
	}

	switch dst := out.(type) {
	case nil:
		return nil
	case *[]byte:
		*dst = respBody
		return nil
	default:
		if len(respBody) == 0 {
			return nil
		}
		if err := json.Unmarshal(respBody, out); err != nil {
			return &Error{Kind: KindNetwork, StatusCode: resp.StatusCode, Message: "decode response", Err: err}
		}
		return nil
	}
}

func isStatus(err error, status int) bool {
	e, ok := err.(*Error)
	return ok && e.StatusCode == status
}

// target resolves path against the base URL. Absolute URLs, such as the next
// link of a page, must share the base URL's scheme and host so the access
// token never leaves the configured backend.
func (c *Client) target(path string) (string, error) {
	if !strings.HasPrefix(path, "http://") && !strings.HasPrefix(path, "https://") {
		return c.baseURL + path, nil
	}
	link, err := url.Parse(path)
	if err != nil {
		return "", &Error{Kind: KindNetwork, Message: "parse link " + path, Err: err}
	}
	base, err := url.Parse(c.baseURL)
	if err != nil {
		return "", &Error{Kind: KindNetwork, Message: "parse base url", Err: err}
	}
	if !strings.EqualFold(link.Scheme, base.Scheme) || !strings.EqualFold(link.Host, base.Host) {
		return "", &Error{Kind: KindNetwork, Message: fmt.Sprintf("refusing link to %s://%s outside %s", link.Scheme, link.Host, base.Host)}
	}
	return path, nil
}
