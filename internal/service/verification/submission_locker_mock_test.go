package verification

import (
	"context"
	"sync"
)

var _ submissionLocker = &submissionLockerMock{}

type submissionLockerMock struct {
	LockFunc func(ctx context.Context, key string) (func(), error)

	calls struct {
		Lock []struct {
			Ctx context.Context
			Key string
		}
	}
	lockLock sync.RWMutex
}

func (mock *submissionLockerMock) Lock(ctx context.Context, key string) (func(), error) {
	if mock.LockFunc == nil {
		panic("submissionLockerMock.LockFunc: method is nil but submissionLocker.Lock was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Key string
	}{Ctx: ctx, Key: key}
	mock.lockLock.Lock()
	mock.calls.Lock = append(mock.calls.Lock, callInfo)
	mock.lockLock.Unlock()
	return mock.LockFunc(ctx, key)
}

func (mock *submissionLockerMock) LockCalls() []struct {
	Ctx context.Context
	Key string
} {
	mock.lockLock.RLock()
	calls := mock.calls.Lock
	mock.lockLock.RUnlock()
	return calls
}
