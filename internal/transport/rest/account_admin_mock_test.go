package rest

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/heartmarshall/incentive-ledger/internal/domain"
	"github.com/heartmarshall/incentive-ledger/internal/service/account"
)

var _ accountAdmin = &accountAdminMock{}

type accountAdminMock struct {
	GetByIDFunc   func(ctx context.Context, id uuid.UUID) (*domain.Account, error)
	ListFunc      func(ctx context.Context, company string) ([]domain.Account, error)
	ProvisionFunc func(ctx context.Context, input account.ProvisionInput) (*domain.Account, error)
	SetGroupFunc  func(ctx context.Context, id uuid.UUID, group string) (*domain.Account, error)

	calls struct {
		GetByID []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
		List []struct {
			Ctx     context.Context
			Company string
		}
		Provision []struct {
			Ctx   context.Context
			Input account.ProvisionInput
		}
		SetGroup []struct {
			Ctx   context.Context
			Id    uuid.UUID
			Group string
		}
	}
	lockGetByID   sync.RWMutex
	lockList      sync.RWMutex
	lockProvision sync.RWMutex
	lockSetGroup  sync.RWMutex
}

func (mock *accountAdminMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Account, error) {
	if mock.GetByIDFunc == nil {
		panic("accountAdminMock.GetByIDFunc: method is nil but accountAdmin.GetByID was just called")
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

func (mock *accountAdminMock) GetByIDCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *accountAdminMock) List(ctx context.Context, company string) ([]domain.Account, error) {
	if mock.ListFunc == nil {
		panic("accountAdminMock.ListFunc: method is nil but accountAdmin.List was just called")
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

func (mock *accountAdminMock) ListCalls() []struct {
	Ctx     context.Context
	Company string
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *accountAdminMock) Provision(ctx context.Context, input account.ProvisionInput) (*domain.Account, error) {
	if mock.ProvisionFunc == nil {
		panic("accountAdminMock.ProvisionFunc: method is nil but accountAdmin.Provision was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input account.ProvisionInput
	}{Ctx: ctx, Input: input}
	mock.lockProvision.Lock()
	mock.calls.Provision = append(mock.calls.Provision, callInfo)
	mock.lockProvision.Unlock()
	return mock.ProvisionFunc(ctx, input)
}

func (mock *accountAdminMock) ProvisionCalls() []struct {
	Ctx   context.Context
	Input account.ProvisionInput
} {
	mock.lockProvision.RLock()
	calls := mock.calls.Provision
	mock.lockProvision.RUnlock()
	return calls
}

func (mock *accountAdminMock) SetGroup(ctx context.Context, id uuid.UUID, group string) (*domain.Account, error) {
	if mock.SetGroupFunc == nil {
		panic("accountAdminMock.SetGroupFunc: method is nil but accountAdmin.SetGroup was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Id    uuid.UUID
		Group string
	}{Ctx: ctx, Id: id, Group: group}
	mock.lockSetGroup.Lock()
	mock.calls.SetGroup = append(mock.calls.SetGroup, callInfo)
	mock.lockSetGroup.Unlock()
	return mock.SetGroupFunc(ctx, id, group)
}

func (mock *accountAdminMock) SetGroupCalls() []struct {
	Ctx   context.Context
	Id    uuid.UUID
	Group string
} {
	mock.lockSetGroup.RLock()
	calls := mock.calls.SetGroup
	mock.lockSetGroup.RUnlock()
	return calls
}
