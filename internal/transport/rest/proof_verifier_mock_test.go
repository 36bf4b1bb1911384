package rest

import (
	"context"
	"sync"

	"github.com/heartmarshall/incentive-ledger/internal/domain"
	"github.com/heartmarshall/incentive-ledger/internal/service/verification"
)

var _ proofVerifier = &proofVerifierMock{}

type proofVerifierMock struct {
	VerifyFunc func(ctx context.Context, acc *domain.Account, input verification.VerifyInput) (*verification.VerifyResult, error)

	calls struct {
		Verify []struct {
			Ctx   context.Context
			Acc   *domain.Account
			Input verification.VerifyInput
		}
	}
	lockVerify sync.RWMutex
}

func (mock *proofVerifierMock) Verify(ctx context.Context, acc *domain.Account, input verification.VerifyInput) (*verification.VerifyResult, error) {
	if mock.VerifyFunc == nil {
		panic("proofVerifierMock.VerifyFunc: method is nil but proofVerifier.Verify was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Acc   *domain.Account
		Input verification.VerifyInput
	}{Ctx: ctx, Acc: acc, Input: input}
	mock.lockVerify.Lock()
	mock.calls.Verify = append(mock.calls.Verify, callInfo)
	mock.lockVerify.Unlock()
	return mock.VerifyFunc(ctx, acc, input)
}

func (mock *proofVerifierMock) VerifyCalls() []struct {
	Ctx   context.Context
	Acc   *domain.Account
	Input verification.VerifyInput
} {
	mock.lockVerify.RLock()
	calls := mock.calls.Verify
	mock.lockVerify.RUnlock()
	return calls
}
