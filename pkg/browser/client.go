package browser

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// ErrNavigationTimeout reports that the remote browser could not finish
// loading the page within the configured bound.
var ErrNavigationTimeout = errors.New("browser: navigation timed out")

const defaultUserAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36"

// Client talks to a hosted headless-browser service over its REST API.
// Each scrape opens a fresh isolated session so no state leaks between
// targets.
type Client struct {
	baseURL    string
	token      string
	navTimeout time.Duration
	httpClient *http.Client
}

func NewClient(baseURL, token string, navTimeout time.Duration) *Client {
	if navTimeout <= 0 {
		navTimeout = 40 * time.Second
	}
	return &Client{
		baseURL:    baseURL,
		token:      token,
		navTimeout: navTimeout,
		httpClient: &http.Client{
			// Session calls must never outlive the navigation bound by much.
			Timeout: navTimeout + 20*time.Second,
		},
	}
}

// Session is one isolated remote browser context.
type Session struct {
	Id     string `json:"id"`
	client *Client
}

type navigateRequest struct {
	URL       string `json:"url"`
	WaitUntil string `json:"wait_until"`
	TimeoutMs int64  `json:"timeout_ms"`
	UserAgent string `json:"user_agent,omitempty"`
}

type contentResponse struct {
	Text string `json:"text"`
}

// OpenSession creates a remote browser session. The caller owns the session
// and must Close it on every path.
func (c *Client) OpenSession(ctx context.Context) (*Session, error) {
	var session Session
	if err := c.do(ctx, http.MethodPost, "/sessions", nil, &session); err != nil {
		return nil, fmt.Errorf("open browser session: %w", err)
	}
	if session.Id == "" {
		return nil, fmt.Errorf("open browser session: empty session id")
	}
	session.client = c
	return &session, nil
}

// Navigate loads the URL in the session with the client's navigation bound.
// A timeout on either side converts to ErrNavigationTimeout.
func (s *Session) Navigate(ctx context.Context, pageURL string) error {
	ctx, cancel := context.WithTimeout(ctx, s.client.navTimeout)
	defer cancel()

	req := navigateRequest{
		URL:       pageURL,
		WaitUntil: "domcontentloaded",
		TimeoutMs: s.client.navTimeout.Milliseconds(),
		UserAgent: defaultUserAgent,
	}

	err := s.client.do(ctx, http.MethodPost, "/sessions/"+s.Id+"/navigate", req, nil)
	if err != nil {
		if isTimeout(err) {
			return fmt.Errorf("%w: %s", ErrNavigationTimeout, pageURL)
		}
		return fmt.Errorf("navigate %s: %w", pageURL, err)
	}
	return nil
}

// TextContent returns the rendered page's visible text.
func (s *Session) TextContent(ctx context.Context) (string, error) {
	var res contentResponse
	if err := s.client.do(ctx, http.MethodGet, "/sessions/"+s.Id+"/content", nil, &res); err != nil {
		return "", fmt.Errorf("read page content: %w", err)
	}
	return res.Text, nil
}

// Close tears the remote session down. It uses its own short deadline so
// cleanup still runs when the caller's context is already cancelled.
func (s *Session) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return s.client.do(ctx, http.MethodDelete, "/sessions/"+s.Id, nil, nil)
}

func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		reader = bytes.NewBuffer(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	resBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	switch resp.StatusCode {
	case http.StatusOK, http.StatusCreated, http.StatusNoContent:
	case http.StatusRequestTimeout, http.StatusGatewayTimeout:
		return fmt.Errorf("%w: status %d", ErrNavigationTimeout, resp.StatusCode)
	default:
		return fmt.Errorf("browser service error: status %d, body: %s", resp.StatusCode, string(resBytes))
	}

	if out != nil && len(resBytes) > 0 {
		if err := json.Unmarshal(resBytes, out); err != nil {
			return fmt.Errorf("unmarshal response: %w", err)
		}
	}
	return nil
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, ErrNavigationTimeout) {
		return true
	}
	var urlErr *url.Error
	return errors.As(err, &urlErr) && urlErr.Timeout()
}
