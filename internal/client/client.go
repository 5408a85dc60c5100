// Package client is a Go client for the wish API, used by wishctl and the
// Discord bot.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/osse101/WishEval_Go/internal/domain"
	"github.com/osse101/WishEval_Go/internal/session"
)

// Client talks to the wish API on behalf of one session.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	maxRetries int
	retryDelay time.Duration

	mu        sync.RWMutex
	sessionID string
}

// Option configures a Client
type Option func(*Client)

// WithAPIKey sets the key sent on admin requests
func WithAPIKey(key string) Option {
	return func(c *Client) { c.apiKey = key }
}

// WithSessionID pins the session instead of adopting the one the server issues
func WithSessionID(id string) Option {
	return func(c *Client) { c.sessionID = id }
}

// WithHTTPClient replaces the default HTTP client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithRetry sets the retry budget for 5xx responses and transport errors
func WithRetry(maxRetries int, delay time.Duration) Option {
	return func(c *Client) {
		c.maxRetries = maxRetries
		c.retryDelay = delay
	}
}

// New creates a client for the API rooted at baseURL
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: DefaultTimeout},
		maxRetries: DefaultMaxRetries,
		retryDelay: DefaultRetryDelay,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SessionID returns the session the client is acting as. Empty until the
// server has issued one or WithSessionID was used.
func (c *Client) SessionID() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.sessionID
}

// APIError is a non-2xx response
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("API error (%d): %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("API returned status: %d", e.StatusCode)
}

// StatusCode extracts the HTTP status from err, or 0 when err is not an APIError
func StatusCode(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode
	}
	return 0
}

// WishResponse mirrors the server's wish payload
type WishResponse struct {
	Wish           *domain.Wish `json:"wish"`
	Message        string       `json:"message"`
	Celebration    string       `json:"celebration,omitempty"`
	RemainingSlots int          `json:"remaining_slots"`
}

// ShareLinkResponse mirrors GET /wish/share
type ShareLinkResponse struct {
	domain.ShareLink
	Message string `json:"message"`
}

// PolicyResponse mirrors GET /policy. The variant is kept raw.
type PolicyResponse struct {
	Active   json.RawMessage `json:"active"`
	Variants []string        `json:"variants"`
}

type messageResponse struct {
	Message string `json:"message"`
}

type luckResponse struct {
	WishID     string  `json:"wish_id"`
	FriendLuck float64 `json:"friend_luck"`
}

// Evaluate submits a wish for evaluation
func (c *Client) Evaluate(ctx context.Context, text string) (*WishResponse, error) {
	var out WishResponse
	err := c.do(ctx, http.MethodPost, PathWishEvaluate, map[string]string{"wish": text}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Current returns the session's wish
func (c *Client) Current(ctx context.Context) (*WishResponse, error) {
	var out WishResponse
	if err := c.do(ctx, http.MethodGet, PathWish, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Support uses one of the wish's support slots
func (c *Client) Support(ctx context.Context, slot int) (*WishResponse, error) {
	var out WishResponse
	if err := c.do(ctx, http.MethodPost, PathWishSupport, map[string]int{"slot": slot}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Reset clears the session's wish
func (c *Client) Reset(ctx context.Context) (string, error) {
	var out messageResponse
	if err := c.do(ctx, http.MethodPost, PathWishReset, nil, &out); err != nil {
		return "", err
	}
	return out.Message, nil
}

// Share returns the link friends open to send luck
func (c *Client) Share(ctx context.Context) (*ShareLinkResponse, error) {
	var out ShareLinkResponse
	if err := c.do(ctx, http.MethodGet, PathWishShare, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ViewShared opens a friend's wish by ID and text
func (c *Client) ViewShared(ctx context.Context, wishID, text string) (*domain.SharedWish, error) {
	params := url.Values{}
	params.Set(ParamWishID, wishID)
	params.Set(ParamWish, text)

	var out domain.SharedWish
	if err := c.do(ctx, http.MethodGet, PathShared+"?"+params.Encode(), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// SupportShared sends luck to a friend's wish
func (c *Client) SupportShared(ctx context.Context, wishID, text string) (*domain.SharedSupportResult, error) {
	req := map[string]string{ParamWishID: wishID, ParamWish: text}

	var out domain.SharedSupportResult
	if err := c.do(ctx, http.MethodPost, PathSharedSupport, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// FriendLuck returns the luck friends have sent to a wish
func (c *Client) FriendLuck(ctx context.Context, wishID string) (float64, error) {
	var out luckResponse
	if err := c.do(ctx, http.MethodGet, PathLuck+url.PathEscape(wishID), nil, &out); err != nil {
		return 0, err
	}
	return out.FriendLuck, nil
}

// Policy returns the active variant and the variant names
func (c *Client) Policy(ctx context.Context) (*PolicyResponse, error) {
	var out PolicyResponse
	if err := c.do(ctx, http.MethodGet, PathPolicy, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ReloadPolicy asks the server to re-read its policy file. Requires the API key.
func (c *Client) ReloadPolicy(ctx context.Context) (string, error) {
	var out messageResponse
	if err := c.do(ctx, http.MethodPost, PathAdminReloadPolicy, nil, &out); err != nil {
		return "", err
	}
	return out.Message, nil
}

// ParseShareLink pulls the wish ID and text out of a share link or bare query
// string. The server validates both.
func ParseShareLink(link string) (wishID, text string, err error) {
	raw := link
	if i := strings.IndexByte(link, '?'); i >= 0 {
		raw = link[i+1:]
	}
	values, err := url.ParseQuery(raw)
	if err != nil {
		return "", "", fmt.Errorf("parse share link: %w", err)
	}
	wishID, text = values.Get(ParamWishID), values.Get(ParamWish)
	if wishID == "" || text == "" {
		return "", "", fmt.Errorf("share link needs %s and %s", ParamWishID, ParamWish)
	}
	return wishID, text, nil
}

// do performs an HTTP request with retry logic and decodes a 2xx body into out
func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reqBody []byte
	if body != nil {
		var err error
		reqBody, err = json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal body: %w", err)
		}
	}

	resp, err := c.doWithRetry(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	c.adoptSession(resp)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return decodeAPIError(resp)
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

func (c *Client) doWithRetry(ctx context.Context, method, target string, reqBody []byte) (*http.Response, error) {
	var lastErr error
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		if attempt > 0 {
			// Exponential backoff with jitter
			delay := c.retryDelay*time.Duration(1<<uint(attempt-1)) + time.Duration(rand.IntN(100))*time.Millisecond
			slog.Debug("Retrying API request", "attempt", attempt, "url", target, "delay", delay)
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(delay):
			}
		}

		req, err := http.NewRequestWithContext(ctx, method, target, bytes.NewReader(reqBody))
		if err != nil {
			return nil, fmt.Errorf("failed to create request: %w", err)
		}
		req.Header.Set("Content-Type", "application/json")
		if c.apiKey != "" {
			req.Header.Set(HeaderAPIKey, c.apiKey)
		}
		if id := c.SessionID(); id != "" {
			req.Header.Set(session.HeaderName, id)
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			lastErr = err
			slog.Debug("API request failed", "error", err, "attempt", attempt)
			continue
		}

		// Success, client error, or a classifier timeout that a retry would only repeat
		if resp.StatusCode < 500 || resp.StatusCode == http.StatusGatewayTimeout {
			return resp, nil
		}

		_, _ = io.Copy(io.Discard, resp.Body)
		resp.Body.Close()
		lastErr = &APIError{StatusCode: resp.StatusCode}
		slog.Debug("Server error, will retry", "status", resp.StatusCode, "attempt", attempt)
	}

	return nil, fmt.Errorf("max retries exceeded: %w", lastErr)
}

func (c *Client) adoptSession(resp *http.Response) {
	id := resp.Header.Get(session.HeaderName)
	if id == "" {
		return
	}
	c.mu.Lock()
	if c.sessionID == "" {
		c.sessionID = id
	}
	c.mu.Unlock()
}

func decodeAPIError(resp *http.Response) error {
	var errResp struct {
		Error string `json:"error"`
	}
	data, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))
	if err := json.Unmarshal(data, &errResp); err == nil && errResp.Error != "" {
		return &APIError{StatusCode: resp.StatusCode, Message: errResp.Error}
	}
	return &APIError{StatusCode: resp.StatusCode, Message: strings.TrimSpace(string(data))}
}
