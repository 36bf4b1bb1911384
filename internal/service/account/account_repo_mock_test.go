package account

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/heartmarshall/incentive-ledger/internal/domain"
)

var _ accountRepo = &accountRepoMock{}

type accountRepoMock struct {
	CreateFunc            func(ctx context.Context, a *domain.Account) error
	GetByEmailFunc        func(ctx context.Context, email string) (*domain.Account, error)
	GetByIDFunc           func(ctx context.Context, id uuid.UUID) (*domain.Account, error)
	ListFunc              func(ctx context.Context, company string) ([]domain.Account, error)
	UpdateGroupAccessFunc func(ctx context.Context, id uuid.UUID, group string) (*domain.Account, error)

	calls struct {
		Create []struct {
			Ctx context.Context
			A   *domain.Account
		}
		GetByEmail []struct {
			Ctx   context.Context
			Email string
		}
		GetByID []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
		List []struct {
			Ctx     context.Context
			Company string
		}
		UpdateGroupAccess []struct {
			Ctx   context.Context
			Id    uuid.UUID
			Group string
		}
	}
	lockCreate            sync.RWMutex
	lockGetByEmail        sync.RWMutex
	lockGetByID           sync.RWMutex
	lockList              sync.RWMutex
	lockUpdateGroupAccess sync.RWMutex
}

func (mock *accountRepoMock) Create(ctx context.Context, a *domain.Account) error {
	if mock.CreateFunc == nil {
		panic("accountRepoMock.CreateFunc: method is nil but accountRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		A   *domain.Account
	}{Ctx: ctx, A: a}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, a)
}

func (mock *accountRepoMock) CreateCalls() []struct {
	Ctx context.Context
	A   *domain.Account
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *accountRepoMock) GetByEmail(ctx context.Context, email string) (*domain.Account, error) {
	if mock.GetByEmailFunc == nil {
		panic("accountRepoMock.GetByEmailFunc: method is nil but accountRepo.GetByEmail was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Email string
	}{Ctx: ctx, Email: email}
	mock.lockGetByEmail.Lock()
	mock.calls.GetByEmail = append(mock.calls.GetByEmail, callInfo)
	mock.lockGetByEmail.Unlock()
	return mock.GetByEmailFunc(ctx, email)
}

func (mock *accountRepoMock) GetByEmailCalls() []struct {
	Ctx   context.Context
	Email string
} {
	mock.lockGetByEmail.RLock()
	calls := mock.calls.GetByEmail
	mock.lockGetByEmail.RUnlock()
	return calls
}

func (mock *accountRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Account, error) {
	if mock.GetByIDFunc == nil {
		panic("accountRepoMock.GetByIDFunc: method is nil but accountRepo.GetByID was just called")
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

func (mock *accountRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *accountRepoMock) List(ctx context.Context, company string) ([]domain.Account, error) {
	if mock.ListFunc == nil {
		panic("accountRepoMock.ListFunc: method is nil but accountRepo.List was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		Company string
	}{Ctx: ctx, Company: company}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, company)
}

func (mock *accountRepoMock) ListCalls() []struct {
	Ctx     context.Context
	Company string
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *accountRepoMock) UpdateGroupAccess(ctx context.Context, id uuid.UUID, group string) (*domain.Account, error) {
	if mock.UpdateGroupAccessFunc == nil {
		panic("accountRepoMock.UpdateGroupAccessFunc: method is nil but accountRepo.UpdateGroupAccess was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Id    uuid.UUID
		Group string
	}{Ctx: ctx, Id: id, Group: group}
	mock.lockUpdateGroupAccess.Lock()
	mock.calls.UpdateGroupAccess = append(mock.calls.UpdateGroupAccess, callInfo)
	mock.lockUpdateGroupAccess.Unlock()
	return mock.UpdateGroupAccessFunc(ctx, id, group)
}

func (mock *accountRepoMock) UpdateGroupAccessCalls() []struct {
	Ctx   context.Context
	Id    uuid.UUID
	Group string
} {
	mock.lockUpdateGroupAccess.RLock()
	calls := mock.calls.UpdateGroupAccess
	mock.lockUpdateGroupAccess.RUnlock()
	return calls
}
