package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/incentive-ledger/internal/domain"
)

// UniqueSuffix returns a short unique string for generating non-conflicting test data.
func UniqueSuffix() string {
	return uuid.New().String()[:8]
}

// UniqueCompany returns a company name no other test uses, so visibility
// queries in parallel tests do not see each other's rows.
func UniqueCompany() string {
	return "Co-" + UniqueSuffix()
}

// SeedAccount inserts a manager account scoped to company with the given
// group access and regions.
func SeedAccount(t *testing.T, pool *pgxpool.Pool, company, group string, regions ...string) domain.Account {
	t.Helper()

	now := time.Now().UTC().Truncate(time.Microsecond)
	if regions == nil {
		regions = []string{}
	}
	acc := domain.Account{
		ID:           uuid.New(),
		Email:        "manager-" + UniqueSuffix() + "@example.com",
		PasswordHash: "$2a$04$not-a-real-hash",
		Role:         domain.RoleManager,
		Company:      company,
		Regions:      regions,
		GroupAccess:  group,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO accounts (id, email, password_hash, role, company, regions, group_access, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		acc.ID, acc.Email, acc.PasswordHash, string(acc.Role), acc.Company, acc.Regions, acc.GroupAccess, acc.CreatedAt, acc.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedAccount: %v", err)
	}
	return acc
}

// PlanOption customizes a seeded plan record.
type PlanOption func(p *domain.PlanRecord)

// WithGroup sets the plan group.
func WithGroup(g string) PlanOption { return func(p *domain.PlanRecord) { p.Group = g } }

// WithDistrict sets the plan district.
func WithDistrict(d string) PlanOption { return func(p *domain.PlanRecord) { p.District = d } }

// WithDoctor sets the doctor name.
func WithDoctor(n string) PlanOption { return func(p *domain.PlanRecord) { p.DoctorName = n } }

// WithTarget sets the target amount.
func WithTarget(amount int64) PlanOption { return func(p *domain.PlanRecord) { p.TargetAmount = amount } }

// WithMonth sets the plan month.
func WithMonth(m int) PlanOption { return func(p *domain.PlanRecord) { p.Month = m } }

// WithStatus sets the plan status.
func WithStatus(s domain.Status) PlanOption { return func(p *domain.PlanRecord) { p.Status = s } }

// SeedPlan inserts a pending cash plan record. Defaults: month 12, target
// 500000 UZS, doctor "Dr <suffix>".
func SeedPlan(t *testing.T, pool *pgxpool.Pool, company, region string, opts ...PlanOption) domain.PlanRecord {
	t.Helper()

	now := time.Now().UTC().Truncate(time.Microsecond)
	p := domain.PlanRecord{
		ID:           uuid.New(),
		Company:      company,
		Region:       region,
		DoctorName:   "Dr " + UniqueSuffix(),
		TargetAmount: 500000,
		PlannedMode:  domain.PaymentModeCash,
		Currency:     domain.CurrencyUZS,
		Month:        12,
		Status:       domain.PendingStatus(),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	for _, opt := range opts {
		opt(&p)
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO plan_records (id, company, region, district, group_name, doctor_name, target_amount,
		                           planned_mode, currency, month, status_kind, status_amount, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`,
		p.ID, p.Company, p.Region, p.District, p.Group, p.DoctorName, p.TargetAmount,
		string(p.PlannedMode), string(p.Currency), p.Month, string(p.Status.Kind), p.Status.Amount, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedPlan: %v", err)
	}
	return p
}

// SeedSettlement inserts a settlement for planID created at the given time.
func SeedSettlement(t *testing.T, pool *pgxpool.Pool, planID uuid.UUID, amount int64, txID *string, at time.Time) domain.Settlement {
	t.Helper()

	s := domain.Settlement{
		ID:            uuid.New(),
		PlanID:        planID,
		AmountPaid:    amount,
		Mode:          domain.PaymentModeCard,
		TransactionID: txID,
		Log:           []byte(`{}`),
		CreatedAt:     at.UTC().Truncate(time.Microsecond),
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO settlements (id, plan_id, amount_paid, mode, transaction_id, log, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		s.ID, s.PlanID, s.AmountPaid, string(s.Mode), s.TransactionID, s.Log, s.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedSettlement: %v", err)
	}
	return s
}
