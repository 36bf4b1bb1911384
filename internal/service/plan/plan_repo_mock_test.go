package plan

import (
	"context"
	"sync"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/heartmarshall/incentive-ledger/internal/domain"
)

var _ planRepo = &planRepoMock{}

type planRepoMock struct {
	DeleteAllFunc      func(ctx context.Context) (int64, error)
	GetByIDFunc        func(ctx context.Context, id uuid.UUID) (*domain.PlanRecord, error)
	LeaderboardFunc    func(ctx context.Context, where squirrel.Sqlizer) ([]domain.LeaderboardRow, error)
	ListWithLatestFunc func(ctx context.Context, where squirrel.Sqlizer) ([]domain.PlanView, error)
	StatsFunc          func(ctx context.Context, where squirrel.Sqlizer) (domain.PlanStats, error)
	UpdateStatusFunc   func(ctx context.Context, id uuid.UUID, status domain.Status) error

	calls struct {
		DeleteAll []struct {
			Ctx context.Context
		}
		GetByID []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
		Leaderboard []struct {
			Ctx   context.Context
			Where squirrel.Sqlizer
		}
		ListWithLatest []struct {
			Ctx   context.Context
			Where squirrel.Sqlizer
		}
		Stats []struct {
			Ctx   context.Context
			Where squirrel.Sqlizer
		}
		UpdateStatus []struct {
			Ctx    context.Context
			Id     uuid.UUID
			Status domain.Status
		}
	}
	lockDeleteAll      sync.RWMutex
	lockGetByID        sync.RWMutex
	lockLeaderboard    sync.RWMutex
	lockListWithLatest sync.RWMutex
	lockStats          sync.RWMutex
	lockUpdateStatus   sync.RWMutex
}

func (mock *planRepoMock) DeleteAll(ctx context.Context) (int64, error) {
	if mock.DeleteAllFunc == nil {
		panic("planRepoMock.DeleteAllFunc: method is nil but planRepo.DeleteAll was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockDeleteAll.Lock()
	mock.calls.DeleteAll = append(mock.calls.DeleteAll, callInfo)
	mock.lockDeleteAll.Unlock()
	return mock.DeleteAllFunc(ctx)
}

func (mock *planRepoMock) DeleteAllCalls() []struct {
	Ctx context.Context
} {
	mock.lockDeleteAll.RLock()
	calls := mock.calls.DeleteAll
	mock.lockDeleteAll.RUnlock()
	return calls
}

func (mock *planRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.PlanRecord, error) {
	if mock.GetByIDFunc == nil {
		panic("planRepoMock.GetByIDFunc: method is nil but planRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  uuid.UUID
	}{Ctx: ctx, Id: id}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *planRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *planRepoMock) Leaderboard(ctx context.Context, where squirrel.Sqlizer) ([]domain.LeaderboardRow, error) {
	if mock.LeaderboardFunc == nil {
		panic("planRepoMock.LeaderboardFunc: method is nil but planRepo.Leaderboard was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Where squirrel.Sqlizer
	}{Ctx: ctx, Where: where}
	mock.lockLeaderboard.Lock()
	mock.calls.Leaderboard = append(mock.calls.Leaderboard, callInfo)
	mock.lockLeaderboard.Unlock()
	return mock.LeaderboardFunc(ctx, where)
}

func (mock *planRepoMock) LeaderboardCalls() []struct {
	Ctx   context.Context
	Where squirrel.Sqlizer
} {
	mock.lockLeaderboard.RLock()
	calls := mock.calls.Leaderboard
	mock.lockLeaderboard.RUnlock()
	return calls
}

func (mock *planRepoMock) ListWithLatest(ctx context.Context, where squirrel.Sqlizer) ([]domain.PlanView, error) {
	if mock.ListWithLatestFunc == nil {
		panic("planRepoMock.ListWithLatestFunc: method is nil but planRepo.ListWithLatest was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Where squirrel.Sqlizer
	}{Ctx: ctx, Where: where}
	mock.lockListWithLatest.Lock()
	mock.calls.ListWithLatest = append(mock.calls.ListWithLatest, callInfo)
	mock.lockListWithLatest.Unlock()
	return mock.ListWithLatestFunc(ctx, where)
}

func (mock *planRepoMock) ListWithLatestCalls() []struct {
	Ctx   context.Context
	Where squirrel.Sqlizer
} {
	mock.lockListWithLatest.RLock()
	calls := mock.calls.ListWithLatest
	mock.lockListWithLatest.RUnlock()
	return calls
}

func (mock *planRepoMock) Stats(ctx context.Context, where squirrel.Sqlizer) (domain.PlanStats, error) {
	if mock.StatsFunc == nil {
		panic("planRepoMock.StatsFunc: method is nil but planRepo.Stats was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Where squirrel.Sqlizer
	}{Ctx: ctx, Where: where}
	mock.lockStats.Lock()
	mock.calls.Stats = append(mock.calls.Stats, callInfo)
	mock.lockStats.Unlock()
	return mock.StatsFunc(ctx, where)
}

func (mock *planRepoMock) StatsCalls() []struct {
	Ctx   context.Context
	Where squirrel.Sqlizer
} {
	mock.lockStats.RLock()
	calls := mock.calls.Stats
	mock.lockStats.RUnlock()
	return calls
}

func (mock *planRepoMock) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.Status) error {
	if mock.UpdateStatusFunc == nil {
		panic("planRepoMock.UpdateStatusFunc: method is nil but planRepo.UpdateStatus was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Id     uuid.UUID
		Status domain.Status
	}{Ctx: ctx, Id: id, Status: status}
	mock.lockUpdateStatus.Lock()
	mock.calls.UpdateStatus = append(mock.calls.UpdateStatus, callInfo)
	mock.lockUpdateStatus.Unlock()
	return mock.UpdateStatusFunc(ctx, id, status)
}

func (mock *planRepoMock) UpdateStatusCalls() []struct {
	Ctx    context.Context
	Id     uuid.UUID
	Status domain.Status
} {
	mock.lockUpdateStatus.RLock()
	calls := mock.calls.UpdateStatus
	mock.lockUpdateStatus.RUnlock()
	return calls
}
