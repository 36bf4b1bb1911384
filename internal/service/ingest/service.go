// Package ingest turns raw spreadsheet rows into plan records.
package ingest

import (
	"context"
	"log/slog"
	"time"

	"github.com/heartmarshall/incentive-ledger/internal/domain"
)

// planRepo defines the plan record operations needed by the service.
type planRepo interface {
	BulkInsert(ctx context.Context, records []domain.PlanRecord) (int, error)
}

// txManager defines the transaction manager interface needed by the service.
type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service imports plan records.
type Service struct {
	log   *slog.Logger
	plans planRepo
	tx    txManager
	now   func() time.Time
}

// NewService creates a new ingest service instance.
func NewService(logger *slog.Logger, plans planRepo, tx txManager) *Service {
	return &Service{
		log:   logger.With("service", "ingest"),
		plans: plans,
		tx:    tx,
		now:   time.Now,
	}
}
