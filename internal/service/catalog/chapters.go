package catalog

import (
	"context"
	"fmt"

	"github.com/heartmarshall/novelreader-backend/internal/domain"
	"github.com/heartmarshall/novelreader-backend/internal/validate"
)

// ListChapters returns the table of contents of a novel.
func (s *Service) ListChapters(ctx context.Context, novelID int64) ([]domain.Chapter, error) {
	if err := validate.Var("id", novelID, "gt=0"); err != nil {
		return nil, err
	}

	chapters, err := s.chapters.ListByNovel(ctx, novelID)
	if err != nil {
		return nil, fmt.Errorf("list chapters: %w", err)
	}
	if chapters == nil {
		chapters = []domain.Chapter{}
	}
	return chapters, nil
}

// GetChapter returns one chapter of a novel with its content.
func (s *Service) GetChapter(ctx context.Context, novelID, chapterID int64) (*domain.Chapter, error) {
	if err := validate.Var("novelId", novelID, "gt=0"); err != nil {
		return nil, err
	}
	if err := validate.Var("chapterId", chapterID, "gt=0"); err != nil {
		return nil, err
	}

	c, err := s.chapters.Get(ctx, novelID, chapterID)
	if err != nil {
		return nil, fmt.Errorf("get chapter: %w", err)
	}
	return c, nil
}
