package search

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/heartmarshall/novelreader-backend/internal/domain"
)

// Search runs a paginated novel search.
//
// A blank query yields an Empty result without touching the store. Full-text
// is attempted first; its failures, other than cancellation, are logged and
// treated as zero rows. The substring query runs only when full-text produced
// nothing, and its errors are returned.
func (s *Service) Search(ctx context.Context, input SearchInput) (*Result, error) {
	start := time.Now()

	if err := input.Validate(); err != nil {
		return nil, err
	}
	in := input.normalize(s.cfg.DefaultLimit, s.cfg.MaxLimit)

	if in.Query == "" {
		return &Result{
			Novels:  []domain.NovelSummary{},
			Page:    in.Page,
			Limit:   in.Limit,
			Empty:   true,
			Elapsed: time.Since(start),
		}, nil
	}

	if err := validateQuery(in.Query, s.cfg.MaxQueryLength); err != nil {
		return nil, err
	}

	page := domain.PageRequest{Page: in.Page, Limit: in.Limit}

	novels, err := s.novels.SearchFullText(ctx, in.Query, page)
	method := domain.SearchMethodFullText
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return nil, fmt.Errorf("search fulltext: %w", err)
		}
		s.log.WarnContext(ctx, "fulltext search failed, falling back to substring match",
			slog.String("query", in.Query),
			slog.Bool("unavailable", errors.Is(err, domain.ErrFullTextUnavailable)),
			slog.String("error", err.Error()),
		)
		novels = nil
	}

	if len(novels) == 0 {
		method = domain.SearchMethodLike
		novels, err = s.novels.SearchLike(ctx, in.Query, page)
		if err != nil {
			return nil, fmt.Errorf("search like: %w", err)
		}
	}
	if novels == nil {
		novels = []domain.NovelSummary{}
	}
	for i := range novels {
		novels[i].ShortDescription = domain.TruncateRunes(novels[i].ShortDescription, s.cfg.DescriptionLength)
	}

	result := &Result{
		Query:   in.Query,
		Novels:  novels,
		Method:  method,
		Page:    in.Page,
		Limit:   in.Limit,
		HasMore: len(novels) == in.Limit,
		Elapsed: time.Since(start),
	}

	s.log.InfoContext(ctx, "search completed",
		slog.String("query", in.Query),
		slog.Int("page", in.Page),
		slog.Int("limit", in.Limit),
		slog.Int("count", len(novels)),
		slog.String("method", method.String()),
		slog.Duration("duration", result.Elapsed),
	)

	return result, nil
}
