package search

import (
	"context"
	"sync"

	"github.com/heartmarshall/novelreader-backend/internal/domain"
)

var _ novelSearcher = &novelSearcherMock{}

type novelSearcherMock struct {
	SearchFullTextFunc func(ctx context.Context, term string, page domain.PageRequest) ([]domain.NovelSummary, error)
	SearchLikeFunc     func(ctx context.Context, term string, page domain.PageRequest) ([]domain.NovelSummary, error)
	SuggestByTitleFunc func(ctx context.Context, term string, limit int) ([]domain.NovelSummary, error)

	calls struct {
		SearchFullText []struct {
			Ctx  context.Context
			Term string
			Page domain.PageRequest
		}
		SearchLike []struct {
			Ctx  context.Context
			Term string
			Page domain.PageRequest
		}
		SuggestByTitle []struct {
			Ctx   context.Context
			Term  string
			Limit int
		}
	}
	lockSearchFullText sync.RWMutex
	lockSearchLike     sync.RWMutex
	lockSuggestByTitle sync.RWMutex
}

func (mock *novelSearcherMock) SearchFullText(ctx context.Context, term string, page domain.PageRequest) ([]domain.NovelSummary, error) {
	if mock.SearchFullTextFunc == nil {
		panic("novelSearcherMock.SearchFullTextFunc: method is nil but novelSearcher.SearchFullText was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Term string
		Page domain.PageRequest
	}{Ctx: ctx, Term: term, Page: page}
	mock.lockSearchFullText.Lock()
	mock.calls.SearchFullText = append(mock.calls.SearchFullText, callInfo)
	mock.lockSearchFullText.Unlock()
	return mock.SearchFullTextFunc(ctx, term, page)
}

func (mock *novelSearcherMock) SearchFullTextCalls() []struct {
	Ctx  context.Context
	Term string
	Page domain.PageRequest
} {
	mock.lockSearchFullText.RLock()
	calls := mock.calls.SearchFullText
	mock.lockSearchFullText.RUnlock()
	return calls
}

func (mock *novelSearcherMock) SearchLike(ctx context.Context, term string, page domain.PageRequest) ([]domain.NovelSummary, error) {
	if mock.SearchLikeFunc == nil {
		panic("novelSearcherMock.SearchLikeFunc: method is nil but novelSearcher.SearchLike was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Term string
		Page domain.PageRequest
	}{Ctx: ctx, Term: term, Page: page}
	mock.lockSearchLike.Lock()
	mock.calls.SearchLike = append(mock.calls.SearchLike, callInfo)
	mock.lockSearchLike.Unlock()
	return mock.SearchLikeFunc(ctx, term, page)
}

func (mock *novelSearcherMock) SearchLikeCalls() []struct {
	Ctx  context.Context
	Term string
	Page domain.PageRequest
} {
	mock.lockSearchLike.RLock()
	calls := mock.calls.SearchLike
	mock.lockSearchLike.RUnlock()
	return calls
}

func (mock *novelSearcherMock) SuggestByTitle(ctx context.Context, term string, limit int) ([]domain.NovelSummary, error) {
	if mock.SuggestByTitleFunc == nil {
		panic("novelSearcherMock.SuggestByTitleFunc: method is nil but novelSearcher.SuggestByTitle was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Term  string
		Limit int
	}{Ctx: ctx, Term: term, Limit: limit}
	mock.lockSuggestByTitle.Lock()
	mock.calls.SuggestByTitle = append(mock.calls.SuggestByTitle, callInfo)
	mock.lockSuggestByTitle.Unlock()
	return mock.SuggestByTitleFunc(ctx, term, limit)
}

func (mock *novelSearcherMock) SuggestByTitleCalls() []struct {
	Ctx   context.Context
	Term  string
	Limit int
} {
	mock.lockSuggestByTitle.RLock()
	calls := mock.calls.SuggestByTitle
	mock.lockSuggestByTitle.RUnlock()
	return calls
}
