package domain

import (
	"time"
	"unicode/utf8"
)

// ShortDescriptionLength bounds NovelSummary.ShortDescription in runes.
const ShortDescriptionLength = 200

// NovelSummary is the search projection of a novel record.
type NovelSummary struct {
	ID               int64
	Title            string
	CoverURL         *string
	ShortDescription string
	Status           NovelStatus
	WordCount        int64
	AuthorName       *string

	// Relevance is set only by the full-text path.
	Relevance *float64
}

// Novel is a full novel record as shown on listing and detail pages.
type Novel struct {
	ID          int64
	Title       string
	CoverURL    *string
	Description string
	Status      NovelStatus
	WordCount   int64
	Category    *string
	AuthorName  *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Chapter is a single chapter of a novel. Content, NovelTitle and AuthorName
// are populated only when a single chapter is read.
type Chapter struct {
	ID         int64
	NovelID    int64
	Number     int
	Title      string
	WordCount  int64
	CreatedAt  time.Time
	Content    string
	NovelTitle string
	AuthorName *string
}

// Category groups novels by genre.
type Category struct {
	ID          int64
	Name        string
	Slug        string
	Description *string
	IsFeatured  bool
	SortOrder   int
}

// TruncateRunes cuts s to at most n runes.
func TruncateRunes(s string, n int) string {
	if n <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	i := 0
	for pos := range s {
		if i == n {
			return s[:pos]
		}
		i++
	}
	return s
}
