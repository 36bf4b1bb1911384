package verification

import (
	"sync"

	"github.com/heartmarshall/incentive-ledger/internal/domain"
)

var _ accessPolicy = &accessPolicyMock{}

type accessPolicyMock struct {
	CanSeeFunc func(acc *domain.Account, rec *domain.PlanRecord) bool

	calls struct {
		CanSee []struct {
			Acc *domain.Account
			Rec *domain.PlanRecord
		}
	}
	lockCanSee sync.RWMutex
}

func (mock *accessPolicyMock) CanSee(acc *domain.Account, rec *domain.PlanRecord) bool {
	if mock.CanSeeFunc == nil {
		panic("accessPolicyMock.CanSeeFunc: method is nil but accessPolicy.CanSee was just called")
	}
	callInfo := struct {
		Acc *domain.Account
		Rec *domain.PlanRecord
	}{Acc: acc, Rec: rec}
	mock.lockCanSee.Lock()
	mock.calls.CanSee = append(mock.calls.CanSee, callInfo)
	mock.lockCanSee.Unlock()
	return mock.CanSeeFunc(acc, rec)
}

func (mock *accessPolicyMock) CanSeeCalls() []struct {
	Acc *domain.Account
	Rec *domain.PlanRecord
} {
	mock.lockCanSee.RLock()
	calls := mock.calls.CanSee
	mock.lockCanSee.RUnlock()
	return calls
}
