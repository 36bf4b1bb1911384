// Package verification decides whether a submitted payment proof settles a
// plan record and records the outcome in the ledger.
package verification

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/incentive-ledger/internal/domain"
)

// planRepo defines the plan record operations needed by the service.
type planRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.PlanRecord, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.Status) error
}

// settlementRepo defines the settlement ledger operations needed by the service.
type settlementRepo interface {
	Insert(ctx context.Context, s *domain.Settlement) error
	OwnerOfTransaction(ctx context.Context, txID string) (string, error)
}

// txManager defines the transaction manager interface needed by the service.
type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// accessPolicy decides whether an account may act on a plan record.
type accessPolicy interface {
	CanSee(acc *domain.Account, rec *domain.PlanRecord) bool
}

// proofStore persists the uploaded proof and returns its storage path.
type proofStore interface {
	SaveProof(ctx context.Context, plan *domain.PlanRecord, filename, contentType string, data []byte, at time.Time) (string, error)
}

// receiptAnalyzer reads a receipt image.
type receiptAnalyzer interface {
	Analyze(ctx context.Context, image []byte, contentType string, rc domain.ReceiptContext) (domain.ExtractionResult, error)
}

// submissionLocker serializes submissions for the same plan record.
// Lock returns domain.ErrConflict when the key stays busy.
type submissionLocker interface {
	Lock(ctx context.Context, key string) (release func(), err error)
}

// eventPublisher announces recorded settlements.
type eventPublisher interface {
	PublishSettlement(ctx context.Context, ev domain.SettlementEvent) error
}

// recorder receives verification metrics.
type recorder interface {
	RecordDecision(outcome domain.Outcome, gate string)
	RecordAnalyzer(ok bool, elapsed time.Duration)
}

// Service verifies payment proofs.
type Service struct {
	log         *slog.Logger
	plans       planRepo
	settlements settlementRepo
	tx          txManager
	access      accessPolicy
	proofs      proofStore
	analyzer    receiptAnalyzer
	locker      submissionLocker
	events      eventPublisher
	metrics     recorder
	now         func() time.Time
}

// Deps groups the collaborators of the verification service.
type Deps struct {
	Plans       planRepo
	Settlements settlementRepo
	Tx          txManager
	Access      accessPolicy
	Proofs      proofStore
	Analyzer    receiptAnalyzer
	Locker      submissionLocker
	Events      eventPublisher
	Metrics     recorder
}

// NewService creates a new verification service instance.
func NewService(logger *slog.Logger, deps Deps) *Service {
	return &Service{
		log:         logger.With("service", "verification"),
		plans:       deps.Plans,
		settlements: deps.Settlements,
		tx:          deps.Tx,
		access:      deps.Access,
		proofs:      deps.Proofs,
		analyzer:    deps.Analyzer,
		locker:      deps.Locker,
		events:      deps.Events,
		metrics:     deps.Metrics,
		now:         time.Now,
	}
}
