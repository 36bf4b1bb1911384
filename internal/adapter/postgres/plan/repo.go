// Package plan implements the plan record ledger using PostgreSQL.
//
// Read queries accept a WHERE predicate over unqualified plan_records
// columns, as produced by visibility.Filter.Predicate. Every read joins the
// latest settlement of each plan (by created_at, then id) so that amounts
// shown, summed and ranked always come from the authoritative settlement.
package plan

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	postgres "github.com/heartmarshall/incentive-ledger/internal/adapter/postgres"
	"github.com/heartmarshall/incentive-ledger/internal/domain"
)

const table = "plan_records"

var columns = []string{
	"id", "company", "region", "district", "group_name", "manager_name",
	"doctor_name", "phone", "specialty", "workplace", "card_number",
	"target_amount", "planned_mode", "currency", "month",
	"status_kind", "status_amount", "created_at", "updated_at",
}

// latestSettlement exposes amount_paid and proof_path of each plan's newest
// settlement under the alias ls.
const latestSettlement = `LEFT JOIN LATERAL (
	SELECT s.amount_paid, s.proof_path
	FROM settlements s
	WHERE s.plan_id = p.id
	ORDER BY s.created_at DESC, s.id DESC
	LIMIT 1
) ls ON true`

// Repo provides plan record persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new plan repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type row struct {
	ID           uuid.UUID `db:"id"`
	Company      string    `db:"company"`
	Region       string    `db:"region"`
	District     string    `db:"district"`
	GroupName    string    `db:"group_name"`
	ManagerName  string    `db:"manager_name"`
	DoctorName   string    `db:"doctor_name"`
	Phone        string    `db:"phone"`
	Specialty    string    `db:"specialty"`
	Workplace    string    `db:"workplace"`
	CardNumber   string    `db:"card_number"`
	TargetAmount int64     `db:"target_amount"`
	PlannedMode  string    `db:"planned_mode"`
	Currency     string    `db:"currency"`
	Month        int       `db:"month"`
	StatusKind   string    `db:"status_kind"`
	StatusAmount int64     `db:"status_amount"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}

type viewRow struct {
	row
	AmountPaid *int64  `db:"amount_paid"`
	ProofPath  *string `db:"proof_path"`
}

func (r row) toDomain() domain.PlanRecord {
	return domain.PlanRecord{
		ID:           r.ID,
		Company:      r.Company,
		Region:       r.Region,
		District:     r.District,
		Group:        r.GroupName,
		ManagerName:  r.ManagerName,
		DoctorName:   r.DoctorName,
		Phone:        r.Phone,
		Specialty:    r.Specialty,
		Workplace:    r.Workplace,
		CardNumber:   r.CardNumber,
		TargetAmount: r.TargetAmount,
		PlannedMode:  domain.PaymentMode(r.PlannedMode),
		Currency:     domain.Currency(r.Currency),
		Month:        r.Month,
		Status:       domain.Status{Kind: domain.StatusKind(r.StatusKind), Amount: r.StatusAmount},
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
}

func (v viewRow) toDomain() domain.PlanView {
	out := domain.PlanView{PlanRecord: v.row.toDomain(), ProofPath: v.ProofPath}
	if v.AmountPaid != nil {
		out.AmountPaid = *v.AmountPaid
	}
	return out
}

func qualified(cols []string) []string {
	out := make([]string, len(cols))
	for i, c := range cols {
		out[i] = "p." + c
	}
	return out
}

// ---------------------------------------------------------------------------
// Writes
// ---------------------------------------------------------------------------

// BulkInsert inserts records in a single batch and returns how many rows were
// written. Run it inside TxManager.RunInTx to make the import atomic.
func (r *Repo) BulkInsert(ctx context.Context, records []domain.PlanRecord) (int, error) {
	if len(records) == 0 {
		return 0, nil
	}

	batch := &pgx.Batch{}
	for i := range records {
		p := &records[i]
		sql, args, err := postgres.Builder.
			Insert(table).
			Columns(columns...).
			Values(p.ID, p.Company, p.Region, p.District, p.Group, p.ManagerName,
				p.DoctorName, p.Phone, p.Specialty, p.Workplace, p.CardNumber,
				p.TargetAmount, string(p.PlannedMode), string(p.Currency), p.Month,
				string(p.Status.Kind), p.Status.Amount, p.CreatedAt, p.UpdatedAt).
			ToSql()
		if err != nil {
			return 0, fmt.Errorf("build insert plan: %w", err)
		}
		batch.Queue(sql, args...)
	}

	br := postgres.QuerierFromCtx(ctx, r.db).SendBatch(ctx, batch)
	defer br.Close()

	for i := range records {
		if _, err := br.Exec(); err != nil {
			return i, postgres.MapError(err, "plan_record", records[i].ID)
		}
	}
	return len(records), nil
}

// UpdateStatus sets the settlement state of a plan record.
func (r *Repo) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.Status) error {
	sql, args, err := postgres.Builder.
		Update(table).
		Set("status_kind", string(status.Kind)).
		Set("status_amount", status.Amount).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update plan status: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "plan_record", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("plan_record %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// DeleteAll removes every plan record. Settlements must be deleted first.
func (r *Repo) DeleteAll(ctx context.Context) (int64, error) {
	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, "DELETE FROM "+table)
	if err != nil {
		return 0, fmt.Errorf("delete plan records: %w", err)
	}
	return tag.RowsAffected(), nil
}

// ---------------------------------------------------------------------------
// Reads
// ---------------------------------------------------------------------------

// GetByID returns a plan record by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.PlanRecord, error) {
	sql, args, err := postgres.Builder.
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select plan: %w", err)
	}

	var dst row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &dst, sql, args...); err != nil {
		return nil, postgres.MapError(err, "plan_record", id)
	}
	p := dst.toDomain()
	return &p, nil
}

// ListWithLatest returns the plan records matching where, each with its latest
// settlement, ordered by doctor name then id. A nil where matches all rows.
func (r *Repo) ListWithLatest(ctx context.Context, where squirrel.Sqlizer) ([]domain.PlanView, error) {
	sql, args, err := postgres.Builder.
		Select(append(qualified(columns), "ls.amount_paid", "ls.proof_path")...).
		From(table + " p").
		JoinClause(latestSettlement).
		Where(where).
		OrderBy("p.doctor_name", "p.id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list plans: %w", err)
	}

	var rows []viewRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, sql, args...); err != nil {
		return nil, fmt.Errorf("list plans: %w", err)
	}

	out := make([]domain.PlanView, len(rows))
	for i := range rows {
		out[i] = rows[i].toDomain()
	}
	return out, nil
}

type statsRow struct {
	TotalDoctors int64 `db:"total_doctors"`
	TotalBudget  int64 `db:"total_budget"`
	TotalPaid    int64 `db:"total_paid"`
	Pending      int64 `db:"pending"`
	Verified     int64 `db:"verified"`
}

// Stats summarizes the plan records matching where.
func (r *Repo) Stats(ctx context.Context, where squirrel.Sqlizer) (domain.PlanStats, error) {
	sql, args, err := postgres.Builder.
		Select(
			"count(*) AS total_doctors",
			"coalesce(sum(p.target_amount), 0)::bigint AS total_budget",
			"coalesce(sum(ls.amount_paid), 0)::bigint AS total_paid",
			"count(*) FILTER (WHERE p.status_kind = 'pending') AS pending",
			"count(*) FILTER (WHERE p.status_kind = 'verified') AS verified",
		).
		From(table + " p").
		JoinClause(latestSettlement).
		Where(where).
		ToSql()
	if err != nil {
		return domain.PlanStats{}, fmt.Errorf("build plan stats: %w", err)
	}

	var dst statsRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &dst, sql, args...); err != nil {
		return domain.PlanStats{}, fmt.Errorf("plan stats: %w", err)
	}

	return domain.PlanStats{
		TotalDoctors: dst.TotalDoctors,
		TotalBudget:  dst.TotalBudget,
		TotalPaid:    dst.TotalPaid,
		TotalDebt:    max(dst.TotalBudget-dst.TotalPaid, 0),
		Pending:      dst.Pending,
		Verified:     dst.Verified,
	}, nil
}

type leaderboardRow struct {
	Region    string `db:"region"`
	GroupName string `db:"group_name"`
	Target    int64  `db:"target"`
	Paid      int64  `db:"paid"`
}

// Leaderboard aggregates target and paid amounts per region and group, with
// the largest debt first. Debt is target minus paid and may be negative.
func (r *Repo) Leaderboard(ctx context.Context, where squirrel.Sqlizer) ([]domain.LeaderboardRow, error) {
	sql, args, err := postgres.Builder.
		Select(
			"p.region",
			"p.group_name",
			"coalesce(sum(p.target_amount), 0)::bigint AS target",
			"coalesce(sum(ls.amount_paid), 0)::bigint AS paid",
		).
		From(table + " p").
		JoinClause(latestSettlement).
		Where(where).
		GroupBy("p.region", "p.group_name").
		OrderBy(
			"coalesce(sum(p.target_amount), 0) - coalesce(sum(ls.amount_paid), 0) DESC",
			"p.region",
			"p.group_name",
		).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build leaderboard: %w", err)
	}

	var rows []leaderboardRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, sql, args...); err != nil {
		return nil, fmt.Errorf("leaderboard: %w", err)
	}

	out := make([]domain.LeaderboardRow, len(rows))
	for i, lr := range rows {
		out[i] = domain.LeaderboardRow{
			Region: lr.Region,
			Group:  lr.GroupName,
			Target: lr.Target,
			Paid:   lr.Paid,
			Debt:   lr.Target - lr.Paid,
		}
	}
	return out, nil
}
