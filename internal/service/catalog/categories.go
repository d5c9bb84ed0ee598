package catalog

import (
	"context"
	"fmt"
	"strings"

	"github.com/heartmarshall/novelreader-backend/internal/adapter/sqlstore/novel"
	"github.com/heartmarshall/novelreader-backend/internal/domain"
	"github.com/heartmarshall/novelreader-backend/internal/validate"
)

// ListCategories returns every category, featured first.
func (s *Service) ListCategories(ctx context.Context) ([]domain.Category, error) {
	categories, err := s.categories.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	if categories == nil {
		categories = []domain.Category{}
	}
	return categories, nil
}

// GetCategory returns a category by slug.
func (s *Service) GetCategory(ctx context.Context, slug string) (*domain.Category, error) {
	slug = strings.TrimSpace(slug)
	if err := validate.Var("slug", slug, "required"); err != nil {
		return nil, err
	}

	c, err := s.categories.GetBySlug(ctx, slug)
	if err != nil {
		return nil, fmt.Errorf("get category: %w", err)
	}
	return c, nil
}

// ListCategoryNovels returns a category's novels, most recently updated first.
// An unknown slug yields an empty page.
func (s *Service) ListCategoryNovels(ctx context.Context, input ListCategoryNovelsInput) (*NovelPage, error) {
	input.Slug = strings.TrimSpace(input.Slug)
	if err := input.Validate(); err != nil {
		return nil, err
	}

	page := pageOrDefault(input.Page)
	limit := limitOrDefault(input.Limit, DefaultCategoryNovelLimit)
	pr := domain.PageRequest{Page: page, Limit: limit}

	novels, total, err := s.novels.List(ctx, novel.Filter{
		Category: input.Slug,
		SortBy:   novel.SortByUpdatedAt,
		Limit:    limit,
		Offset:   pr.Offset(),
	})
	if err != nil {
		return nil, fmt.Errorf("list category novels: %w", err)
	}

	return newNovelPage(novels, page, limit, total), nil
}
