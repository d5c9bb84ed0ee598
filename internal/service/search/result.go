package search

import (
	"time"

	"github.com/heartmarshall/novelreader-backend/internal/domain"
)

// Result is the outcome of a single search request.
type Result struct {
	Query   string
	Novels  []domain.NovelSummary
	Method  domain.SearchMethod
	Page    int
	Limit   int
	HasMore bool
	Elapsed time.Duration

	// Empty reports a blank query: no store round-trip was made and Method
	// is unset.
	Empty bool
}

// Count returns the number of novels in the result.
func (r *Result) Count() int { return len(r.Novels) }
