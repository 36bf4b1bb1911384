package plan

import (
	"context"
	"sync"

	"github.com/heartmarshall/incentive-ledger/internal/domain"
)

var _ settlementRepo = &settlementRepoMock{}

type settlementRepoMock struct {
	DeleteAllFunc func(ctx context.Context) (int64, error)
	InsertFunc    func(ctx context.Context, s *domain.Settlement) error

	calls struct {
		DeleteAll []struct {
			Ctx context.Context
		}
		Insert []struct {
			Ctx context.Context
			S   *domain.Settlement
		}
	}
	lockDeleteAll sync.RWMutex
	lockInsert    sync.RWMutex
}

func (mock *settlementRepoMock) DeleteAll(ctx context.Context) (int64, error) {
	if mock.DeleteAllFunc == nil {
		panic("settlementRepoMock.DeleteAllFunc: method is nil but settlementRepo.DeleteAll was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockDeleteAll.Lock()
	mock.calls.DeleteAll = append(mock.calls.DeleteAll, callInfo)
	mock.lockDeleteAll.Unlock()
	return mock.DeleteAllFunc(ctx)
}

func (mock *settlementRepoMock) DeleteAllCalls() []struct {
	Ctx context.Context
} {
	mock.lockDeleteAll.RLock()
	calls := mock.calls.DeleteAll
	mock.lockDeleteAll.RUnlock()
	return calls
}

func (mock *settlementRepoMock) Insert(ctx context.Context, s *domain.Settlement) error {
	if mock.InsertFunc == nil {
		panic("settlementRepoMock.InsertFunc: method is nil but settlementRepo.Insert was just called")
	}
	callInfo := struct {
		Ctx context.Context
		S   *domain.Settlement
	}{Ctx: ctx, S: s}
	mock.lockInsert.Lock()
	mock.calls.Insert = append(mock.calls.Insert, callInfo)
	mock.lockInsert.Unlock()
	return mock.InsertFunc(ctx, s)
}

func (mock *settlementRepoMock) InsertCalls() []struct {
	Ctx context.Context
	S   *domain.Settlement
} {
	mock.lockInsert.RLock()
	calls := mock.calls.Insert
	mock.lockInsert.RUnlock()
	return calls
}
