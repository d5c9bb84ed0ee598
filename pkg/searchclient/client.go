// Package searchclient is a Go client for the novel search API together with
// the two controllers that drive it: a debounced SuggestionBox and a
// ResultsPage state machine.
package searchclient

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const (
	defaultTimeout = 10 * time.Second
	maxBodyBytes   = 4 << 20
)

// Result is a single novel in a search or suggestion response.
type Result struct {
	ID               int64    `json:"id"`
	Title            string   `json:"title"`
	CoverURL         *string  `json:"cover_url"`
	ShortDescription string   `json:"short_description"`
	Status           string   `json:"status"`
	WordCount        int64    `json:"word_count"`
	AuthorName       *string  `json:"author_name"`
	Relevance        *float64 `json:"relevance,omitempty"`
}

// Meta describes a search response.
type Meta struct {
	Query   string `json:"query"`
	Count   int    `json:"count"`
	HasMore bool   `json:"hasMore"`
	Page    int    `json:"page"`
	Limit   int    `json:"limit"`
	Method  string `json:"method"`
	Time    string `json:"time"`
	Message string `json:"message"`
}

// SearchResponse is a page of search results.
type SearchResponse struct {
	Results []Result
	Meta    Meta
}

// Client talks to the search API.
type Client struct {
	base    *url.URL
	http    *http.Client
	session *Session
	log     *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithSession attaches a session whose token is sent as a bearer credential.
func WithSession(s *Session) Option {
	return func(c *Client) { c.session = s }
}

// WithLogger sets the logger used for request diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(c *Client) { c.log = l }
}

// New creates a Client for the API rooted at baseURL, e.g.
// "http://localhost:3001".
func New(baseURL string, opts ...Option) (*Client, error) {
	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("parse base url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("parse base url: unsupported scheme %q", u.Scheme)
	}

	c := &Client{
		base: u,
		http: &http.Client{Timeout: defaultTimeout},
		log:  slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Session returns the attached session, or nil.
func (c *Client) Session() *Session { return c.session }

// Search fetches one page of results for q. Zero page or limit leaves the
// choice to the server.
func (c *Client) Search(ctx context.Context, q string, page, limit int) (*SearchResponse, error) {
	params := url.Values{"q": {q}}
	if page > 0 {
		params.Set("page", strconv.Itoa(page))
	}
	if limit > 0 {
		params.Set("limit", strconv.Itoa(limit))
	}

	var env envelope
	if err := c.get(ctx, "/api/search", params, &env); err != nil {
		return nil, err
	}

	results, err := decodeResults(env.Data)
	if err != nil {
		return nil, err
	}
	var meta Meta
	if len(env.Meta) > 0 {
		if err := json.Unmarshal(env.Meta, &meta); err != nil {
			return nil, fmt.Errorf("decode search meta: %w", err)
		}
	}
	return &SearchResponse{Results: results, Meta: meta}, nil
}

// Suggest fetches title suggestions for q.
func (c *Client) Suggest(ctx context.Context, q string) ([]Result, error) {
	var env envelope
	if err := c.get(ctx, "/api/search/suggestions", url.Values{"q": {q}}, &env); err != nil {
		return nil, err
	}
	return decodeResults(env.Data)
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Meta    json.RawMessage `json:"meta"`
	Error   json.RawMessage `json:"error"`
	Code    string          `json:"code"`
}

func decodeResults(raw json.RawMessage) ([]Result, error) {
	results := []Result{}
	if len(raw) == 0 || string(raw) == "null" {
		return results, nil
	}
	if err := json.Unmarshal(raw, &results); err != nil {
		return nil, fmt.Errorf("decode results: %w", err)
	}
	return results, nil
}

func (c *Client) get(ctx context.Context, path string, params url.Values, env *envelope) error {
	u := *c.base
	u.Path = c.base.Path + path
	u.RawQuery = params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.session != nil {
		if token := c.session.Token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("GET %s: %w", path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	c.log.DebugContext(ctx, "search api call",
		slog.String("path", path),
		slog.Int("status", resp.StatusCode),
		slog.Duration("duration", time.Since(start)),
	)

	if resp.StatusCode == http.StatusUnauthorized && c.session != nil {
		c.session.Clear()
	}

	ct := resp.Header.Get("Content-Type")
	if !isJSON(ct) {
		return &NonJSONError{Status: resp.StatusCode, ContentType: ct, Snippet: snippet(body, SnippetLength)}
	}

	if err := json.Unmarshal(body, env); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}

	if resp.StatusCode >= http.StatusBadRequest || !env.Success {
		return apiError(resp.StatusCode, env)
	}
	return nil
}

func isJSON(contentType string) bool {
	mt, _, err := mime.ParseMediaType(contentType)
	return err == nil && mt == "application/json"
}

// apiError builds an APIError from a failure envelope. The error field may be
// a plain message or an object carrying code and message.
func apiError(status int, env *envelope) *APIError {
	e := &APIError{Status: status, Code: env.Code}

	var msg string
	if err := json.Unmarshal(env.Error, &msg); err == nil {
		e.Message = msg
	} else {
		var obj struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		}
		if err := json.Unmarshal(env.Error, &obj); err == nil {
			e.Message = obj.Message
			if e.Code == "" {
				e.Code = obj.Code
			}
		}
	}
	if e.Message == "" {
		e.Message = http.StatusText(status)
	}
	return e
}

// IsCanceled reports whether err stems from a cancelled request.
func IsCanceled(err error) bool {
	return errors.Is(err, context.Canceled)
}
