package searchclient

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"slices"
	"strings"
	"sync"
)

// PageState is the display state of a ResultsPage.
type PageState int

const (
	StatePrompt PageState = iota
	StateLoading
	StateError
	StateResults
)

func (s PageState) String() string {
	switch s {
	case StatePrompt:
		return "prompt"
	case StateLoading:
		return "loading"
	case StateError:
		return "error"
	case StateResults:
		return "results"
	}
	return fmt.Sprintf("PageState(%d)", int(s))
}

// ResultsView is a snapshot of a ResultsPage.
type ResultsView struct {
	State   PageState
	Query   string
	Results []Result
	Meta    Meta

	// Message and Hints describe a failure in StateError.
	Message string
	Hints   []string
	Err     error
}

type searcher interface {
	Search(ctx context.Context, q string, page, limit int) (*SearchResponse, error)
}

// ResultsPage drives the full results view for the q parameter of the
// current location.
type ResultsPage struct {
	api      searcher
	log      *slog.Logger
	page     int
	limit    int
	onChange func(ResultsView)

	mu     sync.Mutex
	view   ResultsView
	seq    uint64
	cancel context.CancelFunc
}

// PageOption configures a ResultsPage.
type PageOption func(*ResultsPage)

// WithPaging requests a specific page and page size. Zero values leave the
// choice to the server.
func WithPaging(page, limit int) PageOption {
	return func(p *ResultsPage) { p.page, p.limit = page, limit }
}

// WithPageLogger sets the logger for fetch failures.
func WithPageLogger(l *slog.Logger) PageOption {
	return func(p *ResultsPage) { p.log = l }
}

// OnResultsChange registers an observer called on every state transition.
func OnResultsChange(fn func(ResultsView)) PageOption {
	return func(p *ResultsPage) { p.onChange = fn }
}

// NewResultsPage creates a ResultsPage in StatePrompt.
func NewResultsPage(api searcher, opts ...PageOption) *ResultsPage {
	p := &ResultsPage{
		api:  api,
		log:  slog.New(slog.DiscardHandler),
		view: ResultsView{State: StatePrompt},
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// View returns the current view.
func (p *ResultsPage) View() ResultsView {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.snapshot()
}

// Visit renders location, e.g. "/search?q=dragon". A missing or blank q
// shows the prompt without a request. A new query cancels the fetch in
// flight and blocks until its own fetch settles.
func (p *ResultsPage) Visit(ctx context.Context, location string) ResultsView {
	u, err := url.Parse(location)
	q := ""
	if err == nil {
		q = strings.TrimSpace(u.Query().Get("q"))
	}

	p.mu.Lock()
	if q == "" {
		p.abortLocked()
		p.view = ResultsView{State: StatePrompt}
		v := p.snapshot()
		p.mu.Unlock()
		p.notify(v)
		return v
	}
	if q == p.view.Query && p.view.State != StatePrompt && p.view.State != StateError {
		v := p.snapshot()
		p.mu.Unlock()
		return v
	}
	p.mu.Unlock()

	return p.load(ctx, q)
}

// Retry re-issues the current query.
func (p *ResultsPage) Retry(ctx context.Context) ResultsView {
	p.mu.Lock()
	q := p.view.Query
	if q == "" {
		v := p.snapshot()
		p.mu.Unlock()
		return v
	}
	p.mu.Unlock()

	return p.load(ctx, q)
}

func (p *ResultsPage) load(ctx context.Context, q string) ResultsView {
	p.mu.Lock()
	p.abortLocked()
	ctx, cancel := context.WithCancel(ctx)
	p.cancel = cancel
	seq := p.seq
	p.view = ResultsView{State: StateLoading, Query: q}
	v := p.snapshot()
	p.mu.Unlock()
	p.notify(v)

	resp, err := p.api.Search(ctx, q, p.page, p.limit)

	p.mu.Lock()
	if seq != p.seq {
		// Superseded by a later Visit.
		v = p.snapshot()
		p.mu.Unlock()
		cancel()
		return v
	}
	cancel()
	p.cancel = nil
	if err != nil {
		p.log.Warn("search failed", slog.String("query", q), slog.String("error", err.Error()))
		p.view = errorView(q, err)
	} else {
		p.view = ResultsView{State: StateResults, Query: q, Results: resp.Results, Meta: resp.Meta}
	}
	v = p.snapshot()
	p.mu.Unlock()
	p.notify(v)
	return v
}

// abortLocked cancels the fetch in flight and marks its result stale.
func (p *ResultsPage) abortLocked() {
	if p.cancel != nil {
		p.cancel()
		p.cancel = nil
	}
	p.seq++
}

func (p *ResultsPage) snapshot() ResultsView {
	v := p.view
	v.Results = slices.Clone(p.view.Results)
	v.Hints = slices.Clone(p.view.Hints)
	return v
}

func (p *ResultsPage) notify(v ResultsView) {
	if p.onChange != nil {
		p.onChange(v)
	}
}

func errorView(q string, err error) ResultsView {
	v := ResultsView{State: StateError, Query: q, Err: err}

	var nonJSON *NonJSONError
	var apiErr *APIError
	switch {
	case errors.As(err, &nonJSON):
		v.Message = fmt.Sprintf("the server returned an unexpected response (status %d): %s", nonJSON.Status, nonJSON.Snippet)
		v.Hints = []string{
			"check that the API server is running at the configured address",
			"check that /api requests reach the API server and not a static file server or proxy error page",
		}
	case errors.As(err, &apiErr):
		v.Message = apiErr.Message
		if apiErr.Status >= 500 {
			v.Hints = []string{"the search service may be temporarily unavailable"}
		}
	case errors.Is(err, context.DeadlineExceeded):
		v.Message = "the search request timed out"
		v.Hints = []string{"check your network connection"}
	default:
		v.Message = err.Error()
		v.Hints = []string{"check your network connection", "check that the API server is running"}
	}
	v.Hints = append(v.Hints, "retry the search")
	return v
}
