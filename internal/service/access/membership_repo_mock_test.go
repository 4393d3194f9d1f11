package access

import (
	"context"
	"github.com/heartmarshall/exhibit-backend/internal/domain"
	"sync"
)

var _ membershipRepo = &membershipRepoMock{}

type membershipRepoMock struct {
	GroupIDsByUsernameFunc func(ctx context.Context, username string) ([]domain.GroupID, error)

	calls struct {
		GroupIDsByUsername []struct {
			Ctx      context.Context
			Username string
		}
	}
	lockGroupIDsByUsername sync.RWMutex
}

func (mock *membershipRepoMock) GroupIDsByUsername(ctx context.Context, username string) ([]domain.GroupID, error) {
	if mock.GroupIDsByUsernameFunc == nil {
		panic("membershipRepoMock.GroupIDsByUsernameFunc: method is nil but membershipRepo.GroupIDsByUsername was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		Username string
	}{Ctx: ctx, Username: username}
	mock.lockGroupIDsByUsername.Lock()
	mock.calls.GroupIDsByUsername = append(mock.calls.GroupIDsByUsername, callInfo)
	mock.lockGroupIDsByUsername.Unlock()
	return mock.GroupIDsByUsernameFunc(ctx, username)
}

func (mock *membershipRepoMock) GroupIDsByUsernameCalls() []struct {
	Ctx      context.Context
	Username string
} {
	mock.lockGroupIDsByUsername.RLock()
	calls := mock.calls.GroupIDsByUsername
	mock.lockGroupIDsByUsername.RUnlock()
	return calls
}
