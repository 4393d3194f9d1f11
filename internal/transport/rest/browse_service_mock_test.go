package rest

import (
	"context"
	"github.com/heartmarshall/exhibit-backend/internal/domain"
	"github.com/heartmarshall/exhibit-backend/internal/service/browse"
	"sync"
)

var _ browseService = &browseServiceMock{}

type browseServiceMock struct {
	GetItemFunc       func(ctx context.Context, key domain.ItemKey, identity string) (*browse.ItemDetail, error)
	ListKeywordsFunc  func(ctx context.Context) ([]string, error)
	ListRollItemsFunc func(ctx context.Context, lib domain.LibraryID, id domain.RollID, identity string) (*browse.RollContents, error)
	ListRollsFunc     func(ctx context.Context, identity string) ([]domain.Roll, error)

	calls struct {
		GetItem []struct {
			Ctx      context.Context
			Key      domain.ItemKey
			Identity string
		}
		ListKeywords []struct {
			Ctx context.Context
		}
		ListRollItems []struct {
			Ctx      context.Context
			Lib      domain.LibraryID
			ID       domain.RollID
			Identity string
		}
		ListRolls []struct {
			Ctx      context.Context
			Identity string
		}
	}
	lockGetItem       sync.RWMutex
	lockListKeywords  sync.RWMutex
	lockListRollItems sync.RWMutex
	lockListRolls     sync.RWMutex
}

func (mock *browseServiceMock) GetItem(ctx context.Context, key domain.ItemKey, identity string) (*browse.ItemDetail, error) {
	if mock.GetItemFunc == nil {
		panic("browseServiceMock.GetItemFunc: method is nil but browseService.GetItem was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		Key      domain.ItemKey
		Identity string
	}{Ctx: ctx, Key: key, Identity: identity}
	mock.lockGetItem.Lock()
	mock.calls.GetItem = append(mock.calls.GetItem, callInfo)
	mock.lockGetItem.Unlock()
	return mock.GetItemFunc(ctx, key, identity)
}

func (mock *browseServiceMock) GetItemCalls() []struct {
	Ctx      context.Context
	Key      domain.ItemKey
	Identity string
} {
	mock.lockGetItem.RLock()
	calls := mock.calls.GetItem
	mock.lockGetItem.RUnlock()
	return calls
}

func (mock *browseServiceMock) ListKeywords(ctx context.Context) ([]string, error) {
	if mock.ListKeywordsFunc == nil {
		panic("browseServiceMock.ListKeywordsFunc: method is nil but browseService.ListKeywords was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockListKeywords.Lock()
	mock.calls.ListKeywords = append(mock.calls.ListKeywords, callInfo)
	mock.lockListKeywords.Unlock()
	return mock.ListKeywordsFunc(ctx)
}

func (mock *browseServiceMock) ListKeywordsCalls() []struct {
	Ctx context.Context
} {
	mock.lockListKeywords.RLock()
	calls := mock.calls.ListKeywords
	mock.lockListKeywords.RUnlock()
	return calls
}

func (mock *browseServiceMock) ListRollItems(ctx context.Context, lib domain.LibraryID, id domain.RollID, identity string) (*browse.RollContents, error) {
	if mock.ListRollItemsFunc == nil {
		panic("browseServiceMock.ListRollItemsFunc: method is nil but browseService.ListRollItems was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		Lib      domain.LibraryID
		ID       domain.RollID
		Identity string
	}{Ctx: ctx, Lib: lib, ID: id, Identity: identity}
	mock.lockListRollItems.Lock()
	mock.calls.ListRollItems = append(mock.calls.ListRollItems, callInfo)
	mock.lockListRollItems.Unlock()
	return mock.ListRollItemsFunc(ctx, lib, id, identity)
}

func (mock *browseServiceMock) ListRollItemsCalls() []struct {
	Ctx      context.Context
	Lib      domain.LibraryID
	ID       domain.RollID
	Identity string
} {
	mock.lockListRollItems.RLock()
	calls := mock.calls.ListRollItems
	mock.lockListRollItems.RUnlock()
	return calls
}

func (mock *browseServiceMock) ListRolls(ctx context.Context, identity string) ([]domain.Roll, error) {
	if mock.ListRollsFunc == nil {
		panic("browseServiceMock.ListRollsFunc: method is nil but browseService.ListRolls was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		Identity string
	}{Ctx: ctx, Identity: identity}
	mock.lockListRolls.Lock()
	mock.calls.ListRolls = append(mock.calls.ListRolls, callInfo)
	mock.lockListRolls.Unlock()
	return mock.ListRollsFunc(ctx, identity)
}

func (mock *browseServiceMock) ListRollsCalls() []struct {
	Ctx      context.Context
	Identity string
} {
	mock.lockListRolls.RLock()
	calls := mock.calls.ListRolls
	mock.lockListRolls.RUnlock()
	return calls
}
