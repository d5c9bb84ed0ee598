package catalog

import (
	"context"
	"sync"

	"github.com/heartmarshall/novelreader-backend/internal/adapter/sqlstore/novel"
	"github.com/heartmarshall/novelreader-backend/internal/domain"
)

var (
	_ novelRepo    = &novelRepoMock{}
	_ chapterRepo  = &chapterRepoMock{}
	_ categoryRepo = &categoryRepoMock{}
)

type novelRepoMock struct {
	GetByIDFunc func(ctx context.Context, id int64) (*domain.Novel, error)
	ListFunc    func(ctx context.Context, f novel.Filter) ([]domain.Novel, int, error)

	calls struct {
		GetByID []struct {
			Ctx context.Context
			ID  int64
		}
		List []struct {
			Ctx context.Context
			F   novel.Filter
		}
	}
	lockGetByID sync.RWMutex
	lockList    sync.RWMutex
}

func (mock *novelRepoMock) GetByID(ctx context.Context, id int64) (*domain.Novel, error) {
	if mock.GetByIDFunc == nil {
		panic("novelRepoMock.GetByIDFunc: method is nil but novelRepo.GetByID was just called")
	}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, struct {
		Ctx context.Context
		ID  int64
	}{Ctx: ctx, ID: id})
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *novelRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  int64
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *novelRepoMock) List(ctx context.Context, f novel.Filter) ([]domain.Novel, int, error) {
	if mock.ListFunc == nil {
		panic("novelRepoMock.ListFunc: method is nil but novelRepo.List was just called")
	}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, struct {
		Ctx context.Context
		F   novel.Filter
	}{Ctx: ctx, F: f})
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, f)
}

func (mock *novelRepoMock) ListCalls() []struct {
	Ctx context.Context
	F   novel.Filter
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

type chapterRepoMock struct {
	ListByNovelFunc func(ctx context.Context, novelID int64) ([]domain.Chapter, error)
	GetFunc         func(ctx context.Context, novelID, chapterID int64) (*domain.Chapter, error)
}

func (mock *chapterRepoMock) ListByNovel(ctx context.Context, novelID int64) ([]domain.Chapter, error) {
	if mock.ListByNovelFunc == nil {
		panic("chapterRepoMock.ListByNovelFunc: method is nil but chapterRepo.ListByNovel was just called")
	}
	return mock.ListByNovelFunc(ctx, novelID)
}

func (mock *chapterRepoMock) Get(ctx context.Context, novelID, chapterID int64) (*domain.Chapter, error) {
	if mock.GetFunc == nil {
		panic("chapterRepoMock.GetFunc: method is nil but chapterRepo.Get was just called")
	}
	return mock.GetFunc(ctx, novelID, chapterID)
}

type categoryRepoMock struct {
	ListFunc      func(ctx context.Context) ([]domain.Category, error)
	GetBySlugFunc func(ctx context.Context, slug string) (*domain.Category, error)
}

func (mock *categoryRepoMock) List(ctx context.Context) ([]domain.Category, error) {
	if mock.ListFunc == nil {
		panic("categoryRepoMock.ListFunc: method is nil but categoryRepo.List was just called")
	}
	return mock.ListFunc(ctx)
}

func (mock *categoryRepoMock) GetBySlug(ctx context.Context, slug string) (*domain.Category, error) {
	if mock.GetBySlugFunc == nil {
		panic("categoryRepoMock.GetBySlugFunc: method is nil but categoryRepo.GetBySlug was just called")
	}
	return mock.GetBySlugFunc(ctx, slug)
}
