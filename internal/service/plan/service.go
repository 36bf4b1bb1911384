// Package plan serves the ledger: visible plan records, admin search and
// aggregates, operator overrides and bulk reset.
package plan

import (
	"context"
	"log/slog"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/heartmarshall/incentive-ledger/internal/domain"
	"github.com/heartmarshall/incentive-ledger/internal/visibility"
)

// planRepo defines the plan record operations needed by the service.
type planRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.PlanRecord, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.Status) error
	ListWithLatest(ctx context.Context, where squirrel.Sqlizer) ([]domain.PlanView, error)
	Stats(ctx context.Context, where squirrel.Sqlizer) (domain.PlanStats, error)
	Leaderboard(ctx context.Context, where squirrel.Sqlizer) ([]domain.LeaderboardRow, error)
	DeleteAll(ctx context.Context) (int64, error)
}

// settlementRepo defines the settlement ledger operations needed by the service.
type settlementRepo interface {
	Insert(ctx context.Context, s *domain.Settlement) error
	DeleteAll(ctx context.Context) (int64, error)
}

// txManager defines the transaction manager interface needed by the service.
type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// visibilityFilter turns an account and its query into a ledger predicate.
type visibilityFilter interface {
	Predicate(acc *domain.Account, q visibility.Query) (squirrel.Sqlizer, error)
}

// proofStore persists an uploaded proof and returns its storage path.
type proofStore interface {
	SaveProof(ctx context.Context, plan *domain.PlanRecord, filename, contentType string, data []byte, at time.Time) (string, error)
}

// eventPublisher announces recorded settlements.
type eventPublisher interface {
	PublishSettlement(ctx context.Context, ev domain.SettlementEvent) error
}

// Service implements the ledger query and admin surface.
type Service struct {
	log         *slog.Logger
	plans       planRepo
	settlements settlementRepo
	tx          txManager
	filter      visibilityFilter
	proofs      proofStore
	events      eventPublisher
	now         func() time.Time
}

// Deps groups the collaborators of the plan service.
type Deps struct {
	Plans       planRepo
	Settlements settlementRepo
	Tx          txManager
	Filter      visibilityFilter
	Proofs      proofStore
	Events      eventPublisher
}

// NewService creates a new plan service instance.
func NewService(logger *slog.Logger, deps Deps) *Service {
	return &Service{
		log:         logger.With("service", "plan"),
		plans:       deps.Plans,
		settlements: deps.Settlements,
		tx:          deps.Tx,
		filter:      deps.Filter,
		proofs:      deps.Proofs,
		events:      deps.Events,
		now:         time.Now,
	}
}
