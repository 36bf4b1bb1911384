package rest

import (
	"context"
	"sync"

	"github.com/heartmarshall/incentive-ledger/internal/domain"
	"github.com/heartmarshall/incentive-ledger/internal/service/plan"
)

var _ planAdmin = &planAdminMock{}

type planAdminMock struct {
	LeaderboardFunc func(ctx context.Context, acc *domain.Account, company string, month int) ([]domain.LeaderboardRow, error)
	OverrideFunc    func(ctx context.Context, acc *domain.Account, input plan.OverrideInput) (*plan.OverrideResult, error)
	ResetFunc       func(ctx context.Context, acc *domain.Account) (plan.ResetResult, error)
	SearchFunc      func(ctx context.Context, acc *domain.Account, input plan.SearchInput) ([]domain.PlanView, error)
	StatsFunc       func(ctx context.Context, acc *domain.Account, input plan.StatsInput) (domain.PlanStats, error)

	calls struct {
		Leaderboard []struct {
			Ctx     context.Context
			Acc     *domain.Account
			Company string
			Month   int
		}
		Override []struct {
			Ctx   context.Context
			Acc   *domain.Account
			Input plan.OverrideInput
		}
		Reset []struct {
			Ctx context.Context
			Acc *domain.Account
		}
		Search []struct {
			Ctx   context.Context
			Acc   *domain.Account
			Input plan.SearchInput
		}
		Stats []struct {
			Ctx   context.Context
			Acc   *domain.Account
			Input plan.StatsInput
		}
	}
	lockLeaderboard sync.RWMutex
	lockOverride    sync.RWMutex
	lockReset       sync.RWMutex
	lockSearch      sync.RWMutex
	lockStats       sync.RWMutex
}

func (mock *planAdminMock) Leaderboard(ctx context.Context, acc *domain.Account, company string, month int) ([]domain.LeaderboardRow, error) {
	if mock.LeaderboardFunc == nil {
		panic("planAdminMock.LeaderboardFunc: method is nil but planAdmin.Leaderboard was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		Acc     *domain.Account
		Company string
		Month   int
	}{Ctx: ctx, Acc: acc, Company: company, Month: month}
	mock.lockLeaderboard.Lock()
	mock.calls.Leaderboard = append(mock.calls.Leaderboard, callInfo)
	mock.lockLeaderboard.Unlock()
	return mock.LeaderboardFunc(ctx, acc, company, month)
}

func (mock *planAdminMock) LeaderboardCalls() []struct {
	Ctx     context.Context
	Acc     *domain.Account
	Company string
	Month   int
} {
	mock.lockLeaderboard.RLock()
	calls := mock.calls.Leaderboard
	mock.lockLeaderboard.RUnlock()
	return calls
}

func (mock *planAdminMock) Override(ctx context.Context, acc *domain.Account, input plan.OverrideInput) (*plan.OverrideResult, error) {
	if mock.OverrideFunc == nil {
		panic("planAdminMock.OverrideFunc: method is nil but planAdmin.Override was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Acc   *domain.Account
		Input plan.OverrideInput
	}{Ctx: ctx, Acc: acc, Input: input}
	mock.lockOverride.Lock()
	mock.calls.Override = append(mock.calls.Override, callInfo)
	mock.lockOverride.Unlock()
	return mock.OverrideFunc(ctx, acc, input)
}

func (mock *planAdminMock) OverrideCalls() []struct {
	Ctx   context.Context
	Acc   *domain.Account
	Input plan.OverrideInput
} {
	mock.lockOverride.RLock()
	calls := mock.calls.Override
	mock.lockOverride.RUnlock()
	return calls
}

func (mock *planAdminMock) Reset(ctx context.Context, acc *domain.Account) (plan.ResetResult, error) {
	if mock.ResetFunc == nil {
		panic("planAdminMock.ResetFunc: method is nil but planAdmin.Reset was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Acc *domain.Account
	}{Ctx: ctx, Acc: acc}
	mock.lockReset.Lock()
	mock.calls.Reset = append(mock.calls.Reset, callInfo)
	mock.lockReset.Unlock()
	return mock.ResetFunc(ctx, acc)
}

func (mock *planAdminMock) ResetCalls() []struct {
	Ctx context.Context
	Acc *domain.Account
} {
	mock.lockReset.RLock()
	calls := mock.calls.Reset
	mock.lockReset.RUnlock()
	return calls
}

func (mock *planAdminMock) Search(ctx context.Context, acc *domain.Account, input plan.SearchInput) ([]domain.PlanView, error) {
	if mock.SearchFunc == nil {
		panic("planAdminMock.SearchFunc: method is nil but planAdmin.Search was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Acc   *domain.Account
		Input plan.SearchInput
	}{Ctx: ctx, Acc: acc, Input: input}
	mock.lockSearch.Lock()
	mock.calls.Search = append(mock.calls.Search, callInfo)
	mock.lockSearch.Unlock()
	return mock.SearchFunc(ctx, acc, input)
}

func (mock *planAdminMock) SearchCalls() []struct {
	Ctx   context.Context
	Acc   *domain.Account
	Input plan.SearchInput
} {
	mock.lockSearch.RLock()
	calls := mock.calls.Search
	mock.lockSearch.RUnlock()
	return calls
}

func (mock *planAdminMock) Stats(ctx context.Context, acc *domain.Account, input plan.StatsInput) (domain.PlanStats, error) {
	if mock.StatsFunc == nil {
		panic("planAdminMock.StatsFunc: method is nil but planAdmin.Stats was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Acc   *domain.Account
		Input plan.StatsInput
	}{Ctx: ctx, Acc: acc, Input: input}
	mock.lockStats.Lock()
	mock.calls.Stats = append(mock.calls.Stats, callInfo)
	mock.lockStats.Unlock()
	return mock.StatsFunc(ctx, acc, input)
}

func (mock *planAdminMock) StatsCalls() []struct {
	Ctx   context.Context
	Acc   *domain.Account
	Input plan.StatsInput
} {
	mock.lockStats.RLock()
	calls := mock.calls.Stats
	mock.lockStats.RUnlock()
	return calls
}
