package account

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/incentive-ledger/internal/auth"
	"github.com/heartmarshall/incentive-ledger/internal/domain"
)

// GetByID returns the account, e.g. to resolve the caller of a request.
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*domain.Account, error) {
	acc, err := s.accounts.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("account.GetByID: %w", err)
	}
	return acc, nil
}

// Provision creates an account. Manager regions are normalized to canonical
// ids; admins never carry company scope.
func (s *Service) Provision(ctx context.Context, input ProvisionInput) (*domain.Account, error) {
	input.normalize()
	if err := input.Validate(); err != nil {
		return nil, err
	}

	hash, err := auth.HashPassword(input.Password, s.cfg.BcryptCost)
	if err != nil {
		return nil, fmt.Errorf("account.Provision: %w", err)
	}

	now := s.now().UTC()
	acc := &domain.Account{
		ID:           uuid.New(),
		Email:        input.Email,
		PasswordHash: hash,
		Role:         input.Role,
		Regions:      []string{},
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if input.Role == domain.RoleManager {
		acc.Company = input.Company
		acc.GroupAccess = input.GroupAccess
		acc.Regions = domain.NormalizeRegions(input.Regions)
	}

	if err := s.accounts.Create(ctx, acc); err != nil {
		return nil, fmt.Errorf("account.Provision: %w", err)
	}

	s.log.InfoContext(ctx, "account provisioned",
		slog.String("account_id", acc.ID.String()),
		slog.String("role", acc.Role.String()),
		slog.String("company", acc.Company),
		slog.Any("regions", acc.Regions))

	return acc, nil
}

// SetGroup reassigns the group access code of an account.
func (s *Service) SetGroup(ctx context.Context, id uuid.UUID, group string) (*domain.Account, error) {
	group = strings.ToUpper(strings.TrimSpace(group))
	if group == "" {
		return nil, domain.NewValidationError("group_access", "required")
	}

	acc, err := s.accounts.UpdateGroupAccess(ctx, id, group)
	if err != nil {
		return nil, fmt.Errorf("account.SetGroup: %w", err)
	}

	s.log.InfoContext(ctx, "group access changed",
		slog.String("account_id", id.String()),
		slog.String("group_access", group))

	return acc, nil
}

// List returns the accounts of a company, or every account when company is
// empty.
func (s *Service) List(ctx context.Context, company string) ([]domain.Account, error) {
	list, err := s.accounts.List(ctx, strings.TrimSpace(company))
	if err != nil {
		return nil, fmt.Errorf("account.List: %w", err)
	}
	return list, nil
}
