package searchclient

import (
	"context"
	"log/slog"
	"slices"
	"strings"
	"sync"
	"time"
	"unicode/utf8"
)

const (
	// DebounceDelay is the quiet period after the last keystroke before
	// suggestions are fetched.
	DebounceDelay = 300 * time.Millisecond

	// MinSuggestLength is the shortest input, in characters, that triggers
	// a fetch.
	MinSuggestLength = 2
)

type suggester interface {
	Suggest(ctx context.Context, q string) ([]Result, error)
}

// SuggestionState is a snapshot of a SuggestionBox.
type SuggestionState struct {
	Text        string
	Open        bool
	Loading     bool
	Suggestions []Result
	LastError   error
}

// SuggestionBox drives type-ahead suggestions for a search input. Fetches
// are debounced, a newer fetch cancels the one in flight, and a response is
// applied only if no later fetch was issued.
type SuggestionBox struct {
	api      suggester
	nav      Navigator
	log      *slog.Logger
	delay    time.Duration
	onChange func(SuggestionState)

	mu       sync.Mutex
	state    SuggestionState
	timer    *time.Timer
	inputGen uint64
	fetchSeq uint64
	cancel   context.CancelFunc
	closed   bool
}

// BoxOption configures a SuggestionBox.
type BoxOption func(*SuggestionBox)

// WithDebounce overrides DebounceDelay.
func WithDebounce(d time.Duration) BoxOption {
	return func(b *SuggestionBox) { b.delay = d }
}

// WithBoxLogger sets the logger for fetch failures.
func WithBoxLogger(l *slog.Logger) BoxOption {
	return func(b *SuggestionBox) { b.log = l }
}

// OnSuggestionChange registers an observer called after every state change.
// It runs outside the box's lock and may be called from timer goroutines.
func OnSuggestionChange(fn func(SuggestionState)) BoxOption {
	return func(b *SuggestionBox) { b.onChange = fn }
}

// NewSuggestionBox creates a SuggestionBox fetching from api and navigating
// through nav.
func NewSuggestionBox(api suggester, nav Navigator, opts ...BoxOption) *SuggestionBox {
	b := &SuggestionBox{
		api:   api,
		nav:   nav,
		log:   slog.New(slog.DiscardHandler),
		delay: DebounceDelay,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// State returns a snapshot of the box.
func (b *SuggestionBox) State() SuggestionState {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.snapshot()
}

// Input records the current text of the search field and schedules a fetch.
// Input shorter than MinSuggestLength clears the suggestions without a
// request.
func (b *SuggestionBox) Input(text string) {
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return
	}

	b.state.Text = text
	b.state.Open = true
	b.stopTimerLocked()

	q := strings.TrimSpace(text)
	if utf8.RuneCountInString(q) < MinSuggestLength {
		b.cancelFetchLocked()
		b.state.Suggestions = nil
		b.state.Loading = false
		b.state.LastError = nil
	} else {
		gen := b.inputGen
		b.timer = time.AfterFunc(b.delay, func() { b.fetch(q, gen) })
	}

	st := b.snapshot()
	b.mu.Unlock()
	b.notify(st)
}

// Dismiss hides the suggestion panel and keeps the text.
func (b *SuggestionBox) Dismiss() {
	b.mu.Lock()
	b.state.Open = false
	st := b.snapshot()
	b.mu.Unlock()
	b.notify(st)
}

// Select fills the input with the i-th suggestion's title and navigates to
// its results page. It reports false for an out-of-range index.
func (b *SuggestionBox) Select(i int) bool {
	b.mu.Lock()
	if i < 0 || i >= len(b.state.Suggestions) {
		b.mu.Unlock()
		return false
	}
	title := b.state.Suggestions[i].Title
	b.state.Text = title
	b.state.Open = false
	b.stopTimerLocked()
	b.cancelFetchLocked()
	st := b.snapshot()
	b.mu.Unlock()

	b.notify(st)
	b.nav.Navigate(SearchLocation(title))
	return true
}

// Submit navigates to the results page for the trimmed text. Blank text is
// ignored and Submit reports false.
func (b *SuggestionBox) Submit() bool {
	b.mu.Lock()
	q := strings.TrimSpace(b.state.Text)
	if q == "" {
		b.mu.Unlock()
		return false
	}
	b.state.Open = false
	b.stopTimerLocked()
	b.cancelFetchLocked()
	st := b.snapshot()
	b.mu.Unlock()

	b.notify(st)
	b.nav.Navigate(SearchLocation(q))
	return true
}

// Close stops the pending timer and cancels any fetch in flight. The box
// ignores input afterwards.
func (b *SuggestionBox) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.closed = true
	b.stopTimerLocked()
	b.cancelFetchLocked()
}

func (b *SuggestionBox) fetch(q string, gen uint64) {
	b.mu.Lock()
	if b.closed || gen != b.inputGen {
		b.mu.Unlock()
		return
	}
	if b.cancel != nil {
		b.cancel()
	}
	ctx, cancel := context.WithCancel(context.Background())
	b.cancel = cancel
	b.fetchSeq++
	seq := b.fetchSeq
	b.state.Loading = true
	st := b.snapshot()
	b.mu.Unlock()
	b.notify(st)

	results, err := b.api.Suggest(ctx, q)

	b.mu.Lock()
	if seq != b.fetchSeq || b.closed {
		b.mu.Unlock()
		cancel()
		return
	}
	cancel()
	b.cancel = nil
	b.state.Loading = false
	if err != nil {
		b.log.Warn("fetch suggestions failed", slog.String("query", q), slog.String("error", err.Error()))
		b.state.LastError = err
	} else {
		b.state.Suggestions = results
		b.state.LastError = nil
	}
	st = b.snapshot()
	b.mu.Unlock()
	b.notify(st)
}

// stopTimerLocked invalidates any scheduled fetch, including one whose timer
// already fired.
func (b *SuggestionBox) stopTimerLocked() {
	b.inputGen++
	if b.timer != nil {
		b.timer.Stop()
		b.timer = nil
	}
}

// cancelFetchLocked aborts the fetch in flight and discards its response.
func (b *SuggestionBox) cancelFetchLocked() {
	if b.cancel != nil {
		b.cancel()
		b.cancel = nil
	}
	b.fetchSeq++
	b.state.Loading = false
}

func (b *SuggestionBox) snapshot() SuggestionState {
	st := b.state
	st.Suggestions = slices.Clone(b.state.Suggestions)
	return st
}

func (b *SuggestionBox) notify(st SuggestionState) {
	if b.onChange != nil {
		b.onChange(st)
	}
}
