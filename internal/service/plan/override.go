package plan

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/incentive-ledger/internal/domain"
)

// overrideLog is the settlement log of an operator correction.
type overrideLog struct {
	ManualOverride bool   `json:"manual_override"`
	AdminComment   string `json:"admin_comment,omitempty"`
	AdminID        string `json:"admin_id"`
}

// Override records an operator correction. It bypasses the verification gates:
// a manual settlement is appended and the plan status is set directly.
func (s *Service) Override(ctx context.Context, acc *domain.Account, input OverrideInput) (*OverrideResult, error) {
	if !acc.IsAdmin() {
		return nil, domain.ErrForbidden
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	plan, err := s.plans.GetByID(ctx, input.PlanID)
	if err != nil {
		return nil, fmt.Errorf("plan.Override get plan: %w", err)
	}

	now := s.now().UTC()
	settlement := &domain.Settlement{
		ID:         uuid.New(),
		PlanID:     plan.ID,
		AmountPaid: input.AmountPaid,
		Mode:       domain.PaymentModeManual,
		CreatedAt:  now,
	}

	if len(input.File) > 0 {
		path, err := s.proofs.SaveProof(ctx, plan, input.FileName, input.ContentType, input.File, now)
		if err != nil {
			return nil, fmt.Errorf("plan.Override store proof: %w", err)
		}
		settlement.ProofPath = &path
	}

	settlement.Log, err = json.Marshal(overrideLog{
		ManualOverride: true,
		AdminComment:   strings.TrimSpace(input.Comment),
		AdminID:        acc.ID.String(),
	})
	if err != nil {
		return nil, fmt.Errorf("plan.Override marshal log: %w", err)
	}

	status := overrideStatus(plan.TargetAmount, input)
	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		if err := s.settlements.Insert(ctx, settlement); err != nil {
			return err
		}
		return s.plans.UpdateStatus(ctx, plan.ID, status)
	})
	if err != nil {
		return nil, fmt.Errorf("plan.Override record: %w", err)
	}

	updated := *plan
	updated.Status = status
	updated.UpdatedAt = now

	if err := s.events.PublishSettlement(ctx, domain.NewSettlementEvent(domain.SourceOverride, plan, settlement, status)); err != nil {
		s.log.WarnContext(ctx, "settlement event not published",
			slog.String("plan_id", plan.ID.String()),
			slog.String("error", err.Error()))
	}

	s.log.InfoContext(ctx, "plan overridden",
		slog.String("plan_id", plan.ID.String()),
		slog.String("admin_id", acc.ID.String()),
		slog.String("status", status.Kind.String()),
		slog.Int64("amount_paid", input.AmountPaid))

	return &OverrideResult{Plan: &updated, Settlement: settlement}, nil
}

// overrideStatus resolves the status an override sets. Without an explicit
// kind it follows the paid amount; with one, the amount carried is the
// difference from the target in the direction the kind implies.
func overrideStatus(target int64, input OverrideInput) domain.Status {
	kind := domain.StatusKind(strings.ToLower(strings.TrimSpace(input.Status)))
	diff := target - input.AmountPaid

	switch kind {
	case "":
		return domain.StatusFromDifference(diff)
	case domain.StatusUnderpaid:
		return domain.Status{Kind: kind, Amount: max(diff, 0)}
	case domain.StatusOverpaid:
		return domain.Status{Kind: kind, Amount: max(-diff, 0)}
	default:
		return domain.Status{Kind: kind}
	}
}
