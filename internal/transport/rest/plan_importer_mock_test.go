package rest

import (
	"context"
	"sync"

	"github.com/heartmarshall/incentive-ledger/internal/service/ingest"
)

var _ planImporter = &planImporterMock{}

type planImporterMock struct {
	ImportFunc func(ctx context.Context, input ingest.ImportInput) (*ingest.ImportResult, error)

	calls struct {
		Import []struct {
			Ctx   context.Context
			Input ingest.ImportInput
		}
	}
	lockImport sync.RWMutex
}

func (mock *planImporterMock) Import(ctx context.Context, input ingest.ImportInput) (*ingest.ImportResult, error) {
	if mock.ImportFunc == nil {
		panic("planImporterMock.ImportFunc: method is nil but planImporter.Import was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input ingest.ImportInput
	}{Ctx: ctx, Input: input}
	mock.lockImport.Lock()
	mock.calls.Import = append(mock.calls.Import, callInfo)
	mock.lockImport.Unlock()
	return mock.ImportFunc(ctx, input)
}

func (mock *planImporterMock) ImportCalls() []struct {
	Ctx   context.Context
	Input ingest.ImportInput
} {
	mock.lockImport.RLock()
	calls := mock.calls.Import
	mock.lockImport.RUnlock()
	return calls
}
