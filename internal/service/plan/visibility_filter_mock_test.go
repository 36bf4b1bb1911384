package plan

import (
	"sync"

	"github.com/Masterminds/squirrel"
	"github.com/heartmarshall/incentive-ledger/internal/domain"
	"github.com/heartmarshall/incentive-ledger/internal/visibility"
)

var _ visibilityFilter = &visibilityFilterMock{}

type visibilityFilterMock struct {
	PredicateFunc func(acc *domain.Account, q visibility.Query) (squirrel.Sqlizer, error)

	calls struct {
		Predicate []struct {
			Acc *domain.Account
			Q   visibility.Query
		}
	}
	lockPredicate sync.RWMutex
}

func (mock *visibilityFilterMock) Predicate(acc *domain.Account, q visibility.Query) (squirrel.Sqlizer, error) {
	if mock.PredicateFunc == nil {
		panic("visibilityFilterMock.PredicateFunc: method is nil but visibilityFilter.Predicate was just called")
	}
	callInfo := struct {
		Acc *domain.Account
		Q   visibility.Query
	}{Acc: acc, Q: q}
	mock.lockPredicate.Lock()
	mock.calls.Predicate = append(mock.calls.Predicate, callInfo)
	mock.lockPredicate.Unlock()
	return mock.PredicateFunc(acc, q)
}

func (mock *visibilityFilterMock) PredicateCalls() []struct {
	Acc *domain.Account
	Q   visibility.Query
} {
	mock.lockPredicate.RLock()
	calls := mock.calls.Predicate
	mock.lockPredicate.RUnlock()
	return calls
}
