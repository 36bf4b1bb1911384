// Package account implements login, provisioning and access reassignment.
package account

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/incentive-ledger/internal/config"
	"github.com/heartmarshall/incentive-ledger/internal/domain"
)

// accountRepo defines the account repository interface needed by the service.
type accountRepo interface {
	Create(ctx context.Context, a *domain.Account) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Account, error)
	GetByEmail(ctx context.Context, email string) (*domain.Account, error)
	UpdateGroupAccess(ctx context.Context, id uuid.UUID, group string) (*domain.Account, error)
	List(ctx context.Context, company string) ([]domain.Account, error)
}

// tokenManager defines the access token operations needed by the service.
type tokenManager interface {
	IssueAccessToken(acc *domain.Account) (string, time.Time, error)
	ValidateAccessToken(token string) (uuid.UUID, domain.Role, error)
}

// Service implements account operations.
type Service struct {
	log      *slog.Logger
	accounts accountRepo
	tokens   tokenManager
	cfg      config.AuthConfig
	now      func() time.Time
}

// NewService creates a new account service instance.
func NewService(logger *slog.Logger, accounts accountRepo, tokens tokenManager, cfg config.AuthConfig) *Service {
	return &Service{
		log:      logger.With("service", "account"),
		accounts: accounts,
		tokens:   tokens,
		cfg:      cfg,
		now:      time.Now,
	}
}

// LoginResult is returned by a successful login.
type LoginResult struct {
	AccessToken string
	ExpiresAt   time.Time
	Account     *domain.Account
}
