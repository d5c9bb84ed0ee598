package rest

import (
	"context"

	"github.com/heartmarshall/novelreader-backend/internal/domain"
	"github.com/heartmarshall/novelreader-backend/internal/service/catalog"
	"github.com/heartmarshall/novelreader-backend/internal/service/search"
)

var (
	_ searchService  = &searchServiceMock{}
	_ catalogService = &catalogServiceMock{}
)

type searchServiceMock struct {
	SearchFunc  func(ctx context.Context, input search.SearchInput) (*search.Result, error)
	SuggestFunc func(ctx context.Context, q string) ([]domain.NovelSummary, error)

	searchCalls  []search.SearchInput
	suggestCalls []string
}

func (m *searchServiceMock) Search(ctx context.Context, input search.SearchInput) (*search.Result, error) {
	m.searchCalls = append(m.searchCalls, input)
	return m.SearchFunc(ctx, input)
}

func (m *searchServiceMock) Suggest(ctx context.Context, q string) ([]domain.NovelSummary, error) {
	m.suggestCalls = append(m.suggestCalls, q)
	return m.SuggestFunc(ctx, q)
}

type catalogServiceMock struct {
	ListNovelsFunc         func(ctx context.Context, input catalog.ListNovelsInput) (*catalog.NovelPage, error)
	GetNovelFunc           func(ctx context.Context, id int64) (*domain.Novel, error)
	ListChaptersFunc       func(ctx context.Context, novelID int64) ([]domain.Chapter, error)
	GetChapterFunc         func(ctx context.Context, novelID, chapterID int64) (*domain.Chapter, error)
	ListCategoriesFunc     func(ctx context.Context) ([]domain.Category, error)
	GetCategoryFunc        func(ctx context.Context, slug string) (*domain.Category, error)
	ListCategoryNovelsFunc func(ctx context.Context, input catalog.ListCategoryNovelsInput) (*catalog.NovelPage, error)
}

func (m *catalogServiceMock) ListNovels(ctx context.Context, input catalog.ListNovelsInput) (*catalog.NovelPage, error) {
	return m.ListNovelsFunc(ctx, input)
}

func (m *catalogServiceMock) GetNovel(ctx context.Context, id int64) (*domain.Novel, error) {
	return m.GetNovelFunc(ctx, id)
}

func (m *catalogServiceMock) ListChapters(ctx context.Context, novelID int64) ([]domain.Chapter, error) {
	return m.ListChaptersFunc(ctx, novelID)
}

func (m *catalogServiceMock) GetChapter(ctx context.Context, novelID, chapterID int64) (*domain.Chapter, error) {
	return m.GetChapterFunc(ctx, novelID, chapterID)
}

func (m *catalogServiceMock) ListCategories(ctx context.Context) ([]domain.Category, error) {
	return m.ListCategoriesFunc(ctx)
}

func (m *catalogServiceMock) GetCategory(ctx context.Context, slug string) (*domain.Category, error) {
	return m.GetCategoryFunc(ctx, slug)
}

func (m *catalogServiceMock) ListCategoryNovels(ctx context.Context, input catalog.ListCategoryNovelsInput) (*catalog.NovelPage, error) {
	return m.ListCategoryNovelsFunc(ctx, input)
}
