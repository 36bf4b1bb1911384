package ingest

import (
	"context"
	"sync"

	"github.com/heartmarshall/incentive-ledger/internal/domain"
)

var _ planRepo = &planRepoMock{}

type planRepoMock struct {
	BulkInsertFunc func(ctx context.Context, records []domain.PlanRecord) (int, error)

	calls struct {
		BulkInsert []struct {
			Ctx     context.Context
			Records []domain.PlanRecord
		}
	}
	lockBulkInsert sync.RWMutex
}

func (mock *planRepoMock) BulkInsert(ctx context.Context, records []domain.PlanRecord) (int, error) {
	if mock.BulkInsertFunc == nil {
		panic("planRepoMock.BulkInsertFunc: method is nil but planRepo.BulkInsert was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		Records []domain.PlanRecord
	}{Ctx: ctx, Records: records}
	mock.lockBulkInsert.Lock()
	mock.calls.BulkInsert = append(mock.calls.BulkInsert, callInfo)
	mock.lockBulkInsert.Unlock()
	return mock.BulkInsertFunc(ctx, records)
}

func (mock *planRepoMock) BulkInsertCalls() []struct {
	Ctx     context.Context
	Records []domain.PlanRecord
} {
	mock.lockBulkInsert.RLock()
	calls := mock.calls.BulkInsert
	mock.lockBulkInsert.RUnlock()
	return calls
}
