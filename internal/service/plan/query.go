package plan

import (
	"context"
	"fmt"

	"github.com/heartmarshall/incentive-ledger/internal/domain"
	"github.com/heartmarshall/incentive-ledger/internal/visibility"
)

// ListVisible returns the plan records the account may see, each with its
// latest settlement. Managers are pinned to their own tenancy; admins must
// name a company.
func (s *Service) ListVisible(ctx context.Context, acc *domain.Account, q visibility.Query) ([]domain.PlanView, error) {
	if q.Month < 0 || q.Month > 12 {
		return nil, domain.NewValidationError("month", "must be between 1 and 12")
	}

	where, err := s.filter.Predicate(acc, q)
	if err != nil {
		return nil, err
	}

	views, err := s.plans.ListWithLatest(ctx, where)
	if err != nil {
		return nil, fmt.Errorf("plan.ListVisible: %w", err)
	}
	return views, nil
}

// Search is the admin search across one company.
func (s *Service) Search(ctx context.Context, acc *domain.Account, input SearchInput) ([]domain.PlanView, error) {
	if !acc.IsAdmin() {
		return nil, domain.ErrForbidden
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	return s.ListVisible(ctx, acc, visibility.Query{
		Company: input.Company,
		Region:  input.Region,
		Group:   input.Group,
		Doctor:  input.Doctor,
		Month:   input.Month,
	})
}

// Stats summarizes one company, optionally narrowed to a region and month.
func (s *Service) Stats(ctx context.Context, acc *domain.Account, input StatsInput) (domain.PlanStats, error) {
	if !acc.IsAdmin() {
		return domain.PlanStats{}, domain.ErrForbidden
	}
	if err := input.Validate(); err != nil {
		return domain.PlanStats{}, err
	}

	where, err := s.filter.Predicate(acc, visibility.Query{
		Company: input.Company,
		Region:  input.Region,
		Month:   input.Month,
	})
	if err != nil {
		return domain.PlanStats{}, err
	}

	stats, err := s.plans.Stats(ctx, where)
	if err != nil {
		return domain.PlanStats{}, fmt.Errorf("plan.Stats: %w", err)
	}
	return stats, nil
}

// Leaderboard aggregates one company by region and group, highest debt first.
func (s *Service) Leaderboard(ctx context.Context, acc *domain.Account, company string, month int) ([]domain.LeaderboardRow, error) {
	if !acc.IsAdmin() {
		return nil, domain.ErrForbidden
	}
	if err := (StatsInput{Company: company, Month: month}).Validate(); err != nil {
		return nil, err
	}

	where, err := s.filter.Predicate(acc, visibility.Query{Company: company, Month: month})
	if err != nil {
		return nil, err
	}

	rows, err := s.plans.Leaderboard(ctx, where)
	if err != nil {
		return nil, fmt.Errorf("plan.Leaderboard: %w", err)
	}
	return rows, nil
}
