package verification

import (
	"context"
	"sync"

	"github.com/heartmarshall/incentive-ledger/internal/domain"
)

var _ settlementRepo = &settlementRepoMock{}

type settlementRepoMock struct {
	InsertFunc             func(ctx context.Context, s *domain.Settlement) error
	OwnerOfTransactionFunc func(ctx context.Context, txID string) (string, error)

	calls struct {
		Insert []struct {
			Ctx context.Context
			S   *domain.Settlement
		}
		OwnerOfTransaction []struct {
			Ctx  context.Context
			TxID string
		}
	}
	lockInsert             sync.RWMutex
	lockOwnerOfTransaction sync.RWMutex
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

func (mock *settlementRepoMock) OwnerOfTransaction(ctx context.Context, txID string) (string, error) {
	if mock.OwnerOfTransactionFunc == nil {
		panic("settlementRepoMock.OwnerOfTransactionFunc: method is nil but settlementRepo.OwnerOfTransaction was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		TxID string
	}{Ctx: ctx, TxID: txID}
	mock.lockOwnerOfTransaction.Lock()
	mock.calls.OwnerOfTransaction = append(mock.calls.OwnerOfTransaction, callInfo)
	mock.lockOwnerOfTransaction.Unlock()
	return mock.OwnerOfTransactionFunc(ctx, txID)
}

func (mock *settlementRepoMock) OwnerOfTransactionCalls() []struct {
	Ctx  context.Context
	TxID string
} {
	mock.lockOwnerOfTransaction.RLock()
	calls := mock.calls.OwnerOfTransaction
	mock.lockOwnerOfTransaction.RUnlock()
	return calls
}
