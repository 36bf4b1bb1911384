package plan

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/incentive-ledger/internal/domain"
)

// Reset deletes every settlement and then every plan record in one
// transaction. Accounts are kept. A nil account is the operator CLI.
func (s *Service) Reset(ctx context.Context, acc *domain.Account) (ResetResult, error) {
	if acc != nil && !acc.IsAdmin() {
		return ResetResult{}, domain.ErrForbidden
	}

	var res ResetResult
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		n, err := s.settlements.DeleteAll(ctx)
		if err != nil {
			return fmt.Errorf("delete settlements: %w", err)
		}
		res.Settlements = n

		n, err = s.plans.DeleteAll(ctx)
		if err != nil {
			return fmt.Errorf("delete plans: %w", err)
		}
		res.Plans = n
		return nil
	})
	if err != nil {
		return ResetResult{}, fmt.Errorf("plan.Reset: %w", err)
	}

	s.log.WarnContext(ctx, "ledger reset",
		slog.Int64("settlements", res.Settlements),
		slog.Int64("plans", res.Plans))
	return res, nil
}
