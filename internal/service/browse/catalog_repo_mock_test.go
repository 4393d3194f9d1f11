package browse

import (
	"context"
	"github.com/heartmarshall/exhibit-backend/internal/domain"
	"sync"
)

var _ catalogRepo = &catalogRepoMock{}

type catalogRepoMock struct {
	GetItemFunc func(ctx context.Context, key domain.ItemKey) (*domain.Item, error)

	GetRollFunc func(ctx context.Context, lib domain.LibraryID, id domain.RollID) (*domain.Roll, error)

	KeywordsByItemsFunc func(ctx context.Context, keys []domain.ItemKey) ([]domain.ItemKeyword, error)

	ListKeywordsFunc func(ctx context.Context) ([]string, error)

	ListRollItemsFunc func(ctx context.Context, lib domain.LibraryID, id domain.RollID, limit int) ([]domain.Item, error)

	ListRollsFunc func(ctx context.Context) ([]domain.Roll, error)

	calls struct {
		GetItem []struct {
			Ctx context.Context
			Key domain.ItemKey
		}
		GetRoll []struct {
			Ctx context.Context
			Lib domain.LibraryID
			Id  domain.RollID
		}
		KeywordsByItems []struct {
			Ctx  context.Context
			Keys []domain.ItemKey
		}
		ListKeywords []struct {
			Ctx context.Context
		}
		ListRollItems []struct {
			Ctx   context.Context
			Lib   domain.LibraryID
			Id    domain.RollID
			Limit int
		}
		ListRolls []struct {
			Ctx context.Context
		}
	}
	lockGetItem         sync.RWMutex
	lockGetRoll         sync.RWMutex
	lockKeywordsByItems sync.RWMutex
	lockListKeywords    sync.RWMutex
	lockListRollItems   sync.RWMutex
	lockListRolls       sync.RWMutex
}

func (mock *catalogRepoMock) GetItem(ctx context.Context, key domain.ItemKey) (*domain.Item, error) {
	if mock.GetItemFunc == nil {
		panic("catalogRepoMock.GetItemFunc: method is nil but catalogRepo.GetItem was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Key domain.ItemKey
	}{Ctx: ctx, Key: key}
	mock.lockGetItem.Lock()
	mock.calls.GetItem = append(mock.calls.GetItem, callInfo)
	mock.lockGetItem.Unlock()
	return mock.GetItemFunc(ctx, key)
}

func (mock *catalogRepoMock) GetItemCalls() []struct {
	Ctx context.Context
	Key domain.ItemKey
} {
	mock.lockGetItem.RLock()
	calls := mock.calls.GetItem
	mock.lockGetItem.RUnlock()
	return calls
}

func (mock *catalogRepoMock) GetRoll(ctx context.Context, lib domain.LibraryID, id domain.RollID) (*domain.Roll, error) {
	if mock.GetRollFunc == nil {
		panic("catalogRepoMock.GetRollFunc: method is nil but catalogRepo.GetRoll was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Lib domain.LibraryID
		Id  domain.RollID
	}{Ctx: ctx, Lib: lib, Id: id}
	mock.lockGetRoll.Lock()
	mock.calls.GetRoll = append(mock.calls.GetRoll, callInfo)
	mock.lockGetRoll.Unlock()
	return mock.GetRollFunc(ctx, lib, id)
}

func (mock *catalogRepoMock) GetRollCalls() []struct {
	Ctx context.Context
	Lib domain.LibraryID
	Id  domain.RollID
} {
	mock.lockGetRoll.RLock()
	calls := mock.calls.GetRoll
	mock.lockGetRoll.RUnlock()
	return calls
}

func (mock *catalogRepoMock) KeywordsByItems(ctx context.Context, keys []domain.ItemKey) ([]domain.ItemKeyword, error) {
	if mock.KeywordsByItemsFunc == nil {
		panic("catalogRepoMock.KeywordsByItemsFunc: method is nil but catalogRepo.KeywordsByItems was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Keys []domain.ItemKey
	}{Ctx: ctx, Keys: keys}
	mock.lockKeywordsByItems.Lock()
	mock.calls.KeywordsByItems = append(mock.calls.KeywordsByItems, callInfo)
	mock.lockKeywordsByItems.Unlock()
	return mock.KeywordsByItemsFunc(ctx, keys)
}

func (mock *catalogRepoMock) KeywordsByItemsCalls() []struct {
	Ctx  context.Context
	Keys []domain.ItemKey
} {
	mock.lockKeywordsByItems.RLock()
	calls := mock.calls.KeywordsByItems
	mock.lockKeywordsByItems.RUnlock()
	return calls
}

func (mock *catalogRepoMock) ListKeywords(ctx context.Context) ([]string, error) {
	if mock.ListKeywordsFunc == nil {
		panic("catalogRepoMock.ListKeywordsFunc: method is nil but catalogRepo.ListKeywords was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockListKeywords.Lock()
	mock.calls.ListKeywords = append(mock.calls.ListKeywords, callInfo)
	mock.lockListKeywords.Unlock()
	return mock.ListKeywordsFunc(ctx)
}

func (mock *catalogRepoMock) ListKeywordsCalls() []struct {
	Ctx context.Context
} {
	mock.lockListKeywords.RLock()
	calls := mock.calls.ListKeywords
	mock.lockListKeywords.RUnlock()
	return calls
}

func (mock *catalogRepoMock) ListRollItems(ctx context.Context, lib domain.LibraryID, id domain.RollID, limit int) ([]domain.Item, error) {
	if mock.ListRollItemsFunc == nil {
		panic("catalogRepoMock.ListRollItemsFunc: method is nil but catalogRepo.ListRollItems was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Lib   domain.LibraryID
		Id    domain.RollID
		Limit int
	}{Ctx: ctx, Lib: lib, Id: id, Limit: limit}
	mock.lockListRollItems.Lock()
	mock.calls.ListRollItems = append(mock.calls.ListRollItems, callInfo)
	mock.lockListRollItems.Unlock()
	return mock.ListRollItemsFunc(ctx, lib, id, limit)
}

func (mock *catalogRepoMock) ListRollItemsCalls() []struct {
	Ctx   context.Context
	Lib   domain.LibraryID
	Id    domain.RollID
	Limit int
} {
	mock.lockListRollItems.RLock()
	calls := mock.calls.ListRollItems
	mock.lockListRollItems.RUnlock()
	return calls
}

func (mock *catalogRepoMock) ListRolls(ctx context.Context) ([]domain.Roll, error) {
	if mock.ListRollsFunc == nil {
		panic("catalogRepoMock.ListRollsFunc: method is nil but catalogRepo.ListRolls was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockListRolls.Lock()
	mock.calls.ListRolls = append(mock.calls.ListRolls, callInfo)
	mock.lockListRolls.Unlock()
	return mock.ListRollsFunc(ctx)
}

func (mock *catalogRepoMock) ListRollsCalls() []struct {
	Ctx context.Context
} {
	mock.lockListRolls.RLock()
	calls := mock.calls.ListRolls
	mock.lockListRolls.RUnlock()
	return calls
}
