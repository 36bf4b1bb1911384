package rest

import (
	"context"
	"sync"

	"github.com/heartmarshall/incentive-ledger/internal/domain"
	"github.com/heartmarshall/incentive-ledger/internal/visibility"
)

var _ planLister = &planListerMock{}

type planListerMock struct {
	ListVisibleFunc func(ctx context.Context, acc *domain.Account, q visibility.Query) ([]domain.PlanView, error)

	calls struct {
		ListVisible []struct {
			Ctx context.Context
			Acc *domain.Account
			Q   visibility.Query
		}
	}
	lockListVisible sync.RWMutex
}

func (mock *planListerMock) ListVisible(ctx context.Context, acc *domain.Account, q visibility.Query) ([]domain.PlanView, error) {
	if mock.ListVisibleFunc == nil {
		panic("planListerMock.ListVisibleFunc: method is nil but planLister.ListVisible was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Acc *domain.Account
		Q   visibility.Query
	}{Ctx: ctx, Acc: acc, Q: q}
	mock.lockListVisible.Lock()
	mock.calls.ListVisible = append(mock.calls.ListVisible, callInfo)
	mock.lockListVisible.Unlock()
	return mock.ListVisibleFunc(ctx, acc, q)
}

func (mock *planListerMock) ListVisibleCalls() []struct {
	Ctx context.Context
	Acc *domain.Account
	Q   visibility.Query
} {
	mock.lockListVisible.RLock()
	calls := mock.calls.ListVisible
	mock.lockListVisible.RUnlock()
	return calls
}
