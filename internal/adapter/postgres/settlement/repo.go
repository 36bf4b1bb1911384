// Package settlement implements the settlement ledger using PostgreSQL.
package settlement

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/incentive-ledger/internal/adapter/postgres"
	"github.com/heartmarshall/incentive-ledger/internal/domain"
)

const (
	table = "settlements"

	// transactionIDIndex enforces ledger-wide uniqueness of receipt
	// transaction ids.
	transactionIDIndex = "ux_settlements_transaction_id"
)

var columns = []string{
	"id", "plan_id", "amount_paid", "proof_path", "mode",
	"transaction_id", "log", "created_at",
}

// Repo provides settlement persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new settlement repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type row struct {
	ID            uuid.UUID       `db:"id"`
	PlanID        uuid.UUID       `db:"plan_id"`
	AmountPaid    int64           `db:"amount_paid"`
	ProofPath     *string         `db:"proof_path"`
	Mode          string          `db:"mode"`
	TransactionID *string         `db:"transaction_id"`
	Log           json.RawMessage `db:"log"`
	CreatedAt     time.Time       `db:"created_at"`
}

func (r row) toDomain() domain.Settlement {
	return domain.Settlement{
		ID:            r.ID,
		PlanID:        r.PlanID,
		AmountPaid:    r.AmountPaid,
		ProofPath:     r.ProofPath,
		Mode:          domain.PaymentMode(r.Mode),
		TransactionID: r.TransactionID,
		Log:           r.Log,
		CreatedAt:     r.CreatedAt,
	}
}

// Insert appends a settlement to the ledger. A transaction id that is already
// recorded yields domain.ErrDuplicateTransaction; an unknown plan yields
// domain.ErrNotFound.
func (r *Repo) Insert(ctx context.Context, s *domain.Settlement) error {
	log := s.Log
	if len(log) == 0 {
		log = json.RawMessage(`{}`)
	}

	sql, args, err := postgres.Builder.
		Insert(table).
		Columns(columns...).
		Values(s.ID, s.PlanID, s.AmountPaid, s.ProofPath, string(s.Mode),
			s.TransactionID, []byte(log), s.CreatedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert settlement: %w", err)
	}

	if _, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, sql, args...); err != nil {
		if postgres.IsUniqueViolation(err, transactionIDIndex) {
			return fmt.Errorf("settlement %s: %w", s.ID, domain.ErrDuplicateTransaction)
		}
		return postgres.MapError(err, "settlement", s.ID)
	}
	return nil
}

// OwnerOfTransaction returns the doctor name of the plan record whose
// settlement already carries txID, or domain.ErrNotFound.
func (r *Repo) OwnerOfTransaction(ctx context.Context, txID string) (string, error) {
	sql, args, err := postgres.Builder.
		Select("p.doctor_name").
		From(table + " s").
		Join("plan_records p ON p.id = s.plan_id").
		Where(squirrel.Eq{"s.transaction_id": txID}).
		OrderBy("s.created_at").
		Limit(1).
		ToSql()
	if err != nil {
		return "", fmt.Errorf("build transaction owner query: %w", err)
	}

	var doctor string
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &doctor, sql, args...); err != nil {
		return "", postgres.MapError(err, "transaction", txID)
	}
	return doctor, nil
}

// LatestByPlan returns the authoritative settlement of a plan record.
func (r *Repo) LatestByPlan(ctx context.Context, planID uuid.UUID) (*domain.Settlement, error) {
	sql, args, err := postgres.Builder.
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"plan_id": planID}).
		OrderBy("created_at DESC", "id DESC").
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build latest settlement query: %w", err)
	}

	var dst row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &dst, sql, args...); err != nil {
		return nil, postgres.MapError(err, "settlement", planID)
	}
	s := dst.toDomain()
	return &s, nil
}

// DeleteAll removes the whole settlement history.
func (r *Repo) DeleteAll(ctx context.Context) (int64, error) {
	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, "DELETE FROM "+table)
	if err != nil {
		return 0, fmt.Errorf("delete settlements: %w", err)
	}
	return tag.RowsAffected(), nil
}
