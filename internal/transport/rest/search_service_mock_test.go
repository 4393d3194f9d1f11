package rest

import (
	"context"
	"github.com/heartmarshall/exhibit-backend/internal/service/search"
	"sync"
)

var _ searchService = &searchServiceMock{}

type searchServiceMock struct {
	SearchFunc func(ctx context.Context, input search.SearchInput) (*search.SearchResult, error)

	calls struct {
		Search []struct {
			Ctx   context.Context
			Input search.SearchInput
		}
	}
	lockSearch sync.RWMutex
}

func (mock *searchServiceMock) Search(ctx context.Context, input search.SearchInput) (*search.SearchResult, error) {
	if mock.SearchFunc == nil {
		panic("searchServiceMock.SearchFunc: method is nil but searchService.Search was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input search.SearchInput
	}{Ctx: ctx, Input: input}
	mock.lockSearch.Lock()
	mock.calls.Search = append(mock.calls.Search, callInfo)
	mock.lockSearch.Unlock()
	return mock.SearchFunc(ctx, input)
}

func (mock *searchServiceMock) SearchCalls() []struct {
	Ctx   context.Context
	Input search.SearchInput
} {
	mock.lockSearch.RLock()
	calls := mock.calls.Search
	mock.lockSearch.RUnlock()
	return calls
}
