package verification

import (
	"context"
	"sync"
	"time"

	"github.com/heartmarshall/incentive-ledger/internal/domain"
)

var _ proofStore = &proofStoreMock{}

type proofStoreMock struct {
	SaveProofFunc func(ctx context.Context, plan *domain.PlanRecord, filename string, contentType string, data []byte, at time.Time) (string, error)

	calls struct {
		SaveProof []struct {
			Ctx         context.Context
			Plan        *domain.PlanRecord
			Filename    string
			ContentType string
			Data        []byte
			At          time.Time
		}
	}
	lockSaveProof sync.RWMutex
}

func (mock *proofStoreMock) SaveProof(ctx context.Context, plan *domain.PlanRecord, filename string, contentType string, data []byte, at time.Time) (string, error) {
	if mock.SaveProofFunc == nil {
		panic("proofStoreMock.SaveProofFunc: method is nil but proofStore.SaveProof was just called")
	}
	callInfo := struct {
		Ctx         context.Context
		Plan        *domain.PlanRecord
		Filename    string
		ContentType string
		Data        []byte
		At          time.Time
	}{Ctx: ctx, Plan: plan, Filename: filename, ContentType: contentType, Data: data, At: at}
	mock.lockSaveProof.Lock()
	mock.calls.SaveProof = append(mock.calls.SaveProof, callInfo)
	mock.lockSaveProof.Unlock()
	return mock.SaveProofFunc(ctx, plan, filename, contentType, data, at)
}

func (mock *proofStoreMock) SaveProofCalls() []struct {
	Ctx         context.Context
	Plan        *domain.PlanRecord
	Filename    string
	ContentType string
	Data        []byte
	At          time.Time
} {
	mock.lockSaveProof.RLock()
	calls := mock.calls.SaveProof
	mock.lockSaveProof.RUnlock()
	return calls
}
