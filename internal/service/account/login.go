package account

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/incentive-ledger/internal/auth"
	"github.com/heartmarshall/incentive-ledger/internal/domain"
)

// Login authenticates an account with email + password.
// Returns ErrUnauthorized if the email is unknown or the password is wrong.
func (s *Service) Login(ctx context.Context, input LoginInput) (*LoginResult, error) {
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))
	if err := input.Validate(); err != nil {
		return nil, err
	}

	acc, err := s.accounts.GetByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrUnauthorized
		}
		return nil, fmt.Errorf("account.Login get account: %w", err)
	}

	ok, err := auth.CheckPassword(acc.PasswordHash, input.Password)
	if err != nil {
		return nil, fmt.Errorf("account.Login: %w", err)
	}
	if !ok {
		s.log.WarnContext(ctx, "login rejected", slog.String("account_id", acc.ID.String()))
		return nil, domain.ErrUnauthorized
	}

	token, expires, err := s.tokens.IssueAccessToken(acc)
	if err != nil {
		return nil, fmt.Errorf("account.Login issue token: %w", err)
	}

	s.log.InfoContext(ctx, "account logged in",
		slog.String("account_id", acc.ID.String()),
		slog.String("role", acc.Role.String()))

	return &LoginResult{AccessToken: token, ExpiresAt: expires, Account: acc}, nil
}

// ValidateToken resolves an access token into the account ID and role.
// Any failure is reported as ErrUnauthorized.
func (s *Service) ValidateToken(token string) (uuid.UUID, domain.Role, error) {
	id, role, err := s.tokens.ValidateAccessToken(token)
	if err != nil {
		return uuid.Nil, "", fmt.Errorf("%w: %v", domain.ErrUnauthorized, err)
	}
	return id, role, nil
}
