package search

import (
	"context"
	"github.com/heartmarshall/exhibit-backend/internal/domain"
	"sync"
)

var _ callerResolver = &callerResolverMock{}

type callerResolverMock struct {
	ResolveFunc func(ctx context.Context, identity string) (domain.Caller, error)

	calls struct {
		Resolve []struct {
			Ctx      context.Context
			Identity string
		}
	}
	lockResolve sync.RWMutex
}

func (mock *callerResolverMock) Resolve(ctx context.Context, identity string) (domain.Caller, error) {
	if mock.ResolveFunc == nil {
		panic("callerResolverMock.ResolveFunc: method is nil but callerResolver.Resolve was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		Identity string
	}{Ctx: ctx, Identity: identity}
	mock.lockResolve.Lock()
	mock.calls.Resolve = append(mock.calls.Resolve, callInfo)
	mock.lockResolve.Unlock()
	return mock.ResolveFunc(ctx, identity)
}

func (mock *callerResolverMock) ResolveCalls() []struct {
	Ctx      context.Context
	Identity string
} {
	mock.lockResolve.RLock()
	calls := mock.calls.Resolve
	mock.lockResolve.RUnlock()
	return calls
}
