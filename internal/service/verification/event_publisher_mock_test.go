package verification

import (
	"context"
	"sync"

	"github.com/heartmarshall/incentive-ledger/internal/domain"
)

var _ eventPublisher = &eventPublisherMock{}

type eventPublisherMock struct {
	PublishSettlementFunc func(ctx context.Context, ev domain.SettlementEvent) error

	calls struct {
		PublishSettlement []struct {
			Ctx context.Context
			Ev  domain.SettlementEvent
		}
	}
	lockPublishSettlement sync.RWMutex
}

func (mock *eventPublisherMock) PublishSettlement(ctx context.Context, ev domain.SettlementEvent) error {
	if mock.PublishSettlementFunc == nil {
		panic("eventPublisherMock.PublishSettlementFunc: method is nil but eventPublisher.PublishSettlement was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Ev  domain.SettlementEvent
	}{Ctx: ctx, Ev: ev}
	mock.lockPublishSettlement.Lock()
	mock.calls.PublishSettlement = append(mock.calls.PublishSettlement, callInfo)
	mock.lockPublishSettlement.Unlock()
	return mock.PublishSettlementFunc(ctx, ev)
}

func (mock *eventPublisherMock) PublishSettlementCalls() []struct {
	Ctx context.Context
	Ev  domain.SettlementEvent
} {
	mock.lockPublishSettlement.RLock()
	calls := mock.calls.PublishSettlement
	mock.lockPublishSettlement.RUnlock()
	return calls
}
