package search

import (
	"context"
	"github.com/heartmarshall/exhibit-backend/internal/domain"
	"sync"
)

var _ keywordIndex = &keywordIndexMock{}

type keywordIndexMock struct {
	LookupAllFunc func(ctx context.Context) ([]domain.Item, error)

	LookupKeywordFunc func(ctx context.Context, label string) ([]domain.KeywordHit, error)

	calls struct {
		LookupAll []struct {
			Ctx context.Context
		}
		LookupKeyword []struct {
			Ctx   context.Context
			Label string
		}
	}
	lockLookupAll     sync.RWMutex
	lockLookupKeyword sync.RWMutex
}

func (mock *keywordIndexMock) LookupAll(ctx context.Context) ([]domain.Item, error) {
	if mock.LookupAllFunc == nil {
		panic("keywordIndexMock.LookupAllFunc: method is nil but keywordIndex.LookupAll was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockLookupAll.Lock()
	mock.calls.LookupAll = append(mock.calls.LookupAll, callInfo)
	mock.lockLookupAll.Unlock()
	return mock.LookupAllFunc(ctx)
}

func (mock *keywordIndexMock) LookupAllCalls() []struct {
	Ctx context.Context
} {
	mock.lockLookupAll.RLock()
	calls := mock.calls.LookupAll
	mock.lockLookupAll.RUnlock()
	return calls
}

func (mock *keywordIndexMock) LookupKeyword(ctx context.Context, label string) ([]domain.KeywordHit, error) {
	if mock.LookupKeywordFunc == nil {
		panic("keywordIndexMock.LookupKeywordFunc: method is nil but keywordIndex.LookupKeyword was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Label string
	}{Ctx: ctx, Label: label}
	mock.lockLookupKeyword.Lock()
	mock.calls.LookupKeyword = append(mock.calls.LookupKeyword, callInfo)
	mock.lockLookupKeyword.Unlock()
	return mock.LookupKeywordFunc(ctx, label)
}

func (mock *keywordIndexMock) LookupKeywordCalls() []struct {
	Ctx   context.Context
	Label string
} {
	mock.lockLookupKeyword.RLock()
	calls := mock.calls.LookupKeyword
	mock.lockLookupKeyword.RUnlock()
	return calls
}
