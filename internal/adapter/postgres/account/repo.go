// Package account implements the Account repository using PostgreSQL.
package account

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/incentive-ledger/internal/adapter/postgres"
	"github.com/heartmarshall/incentive-ledger/internal/domain"
)

const table = "accounts"

var columns = []string{
	"id", "email", "password_hash", "role", "company",
	"regions", "group_access", "created_at", "updated_at",
}

// Repo provides account persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new account repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type row struct {
	ID           uuid.UUID `db:"id"`
	Email        string    `db:"email"`
	PasswordHash string    `db:"password_hash"`
	Role         string    `db:"role"`
	Company      string    `db:"company"`
	Regions      []string  `db:"regions"`
	GroupAccess  string    `db:"group_access"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}

func (r row) toDomain() domain.Account {
	regions := r.Regions
	if regions == nil {
		regions = []string{}
	}
	return domain.Account{
		ID:           r.ID,
		Email:        r.Email,
		PasswordHash: r.PasswordHash,
		Role:         domain.Role(r.Role),
		Company:      r.Company,
		Regions:      regions,
		GroupAccess:  r.GroupAccess,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
}

// Create inserts a new account. A taken email maps to domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, a *domain.Account) error {
	regions := a.Regions
	if regions == nil {
		regions = []string{}
	}

	sql, args, err := postgres.Builder.
		Insert(table).
		Columns(columns...).
		Values(a.ID, a.Email, a.PasswordHash, string(a.Role), a.Company,
			regions, a.GroupAccess, a.CreatedAt, a.UpdatedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert account: %w", err)
	}

	if _, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, sql, args...); err != nil {
		return postgres.MapError(err, "account", a.ID)
	}
	return nil
}

// GetByID returns an account by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Account, error) {
	return r.getOne(ctx, squirrel.Eq{"id": id}, id)
}

// GetByEmail returns an account by its login email.
func (r *Repo) GetByEmail(ctx context.Context, email string) (*domain.Account, error) {
	return r.getOne(ctx, squirrel.Eq{"email": email}, uuid.Nil)
}

func (r *Repo) getOne(ctx context.Context, where squirrel.Sqlizer, id uuid.UUID) (*domain.Account, error) {
	sql, args, err := postgres.Builder.Select(columns...).From(table).Where(where).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select account: %w", err)
	}

	var dst row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &dst, sql, args...); err != nil {
		return nil, postgres.MapError(err, "account", id)
	}
	a := dst.toDomain()
	return &a, nil
}

// UpdateGroupAccess reassigns the account's group access code.
func (r *Repo) UpdateGroupAccess(ctx context.Context, id uuid.UUID, group string) (*domain.Account, error) {
	sql, args, err := postgres.Builder.
		Update(table).
		Set("group_access", group).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update account: %w", err)
	}

	var dst row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &dst, sql, args...); err != nil {
		return nil, postgres.MapError(err, "account", id)
	}
	a := dst.toDomain()
	return &a, nil
}

// List returns accounts ordered by email. An empty company lists all.
func (r *Repo) List(ctx context.Context, company string) ([]domain.Account, error) {
	q := postgres.Builder.Select(columns...).From(table).OrderBy("email")
	if company != "" {
		q = q.Where(squirrel.Eq{"company": company})
	}
	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list accounts: %w", err)
	}

	var rows []row
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, sql, args...); err != nil {
		return nil, fmt.Errorf("list accounts: %w", err)
	}

	out := make([]domain.Account, len(rows))
	for i := range rows {
		out[i] = rows[i].toDomain()
	}
	return out, nil
}
