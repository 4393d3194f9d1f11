package middleware

import (
	"sync"
)

var _ identityValidator = &identityValidatorMock{}

type identityValidatorMock struct {
	ValidateIdentityFunc func(token string) (string, error)

	calls struct {
		ValidateIdentity []struct {
			Token string
		}
	}
	lockValidateIdentity sync.RWMutex
}

func (mock *identityValidatorMock) ValidateIdentity(token string) (string, error) {
	if mock.ValidateIdentityFunc == nil {
		panic("identityValidatorMock.ValidateIdentityFunc: method is nil but identityValidator.ValidateIdentity was just called")
	}
	callInfo := struct {
		Token string
	}{Token: token}
	mock.lockValidateIdentity.Lock()
	mock.calls.ValidateIdentity = append(mock.calls.ValidateIdentity, callInfo)
	mock.lockValidateIdentity.Unlock()
	return mock.ValidateIdentityFunc(token)
}

func (mock *identityValidatorMock) ValidateIdentityCalls() []struct {
	Token string
} {
	mock.lockValidateIdentity.RLock()
	calls := mock.calls.ValidateIdentity
	mock.lockValidateIdentity.RUnlock()
	return calls
}
