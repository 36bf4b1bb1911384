package verification

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/incentive-ledger/internal/domain"
)

// Verify stores the proof, analyzes it, runs the gates and, on acceptance,
// appends a settlement and updates the plan status in one transaction.
//
// Gate rejections and manual review are reported through the result's
// Decision, not as errors. The proof is kept whatever the outcome.
func (s *Service) Verify(ctx context.Context, acc *domain.Account, input VerifyInput) (*VerifyResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	plan, err := s.plans.GetByID(ctx, input.PlanID)
	if err != nil {
		return nil, fmt.Errorf("verification.Verify get plan: %w", err)
	}
	if !s.access.CanSee(acc, plan) {
		return nil, domain.ErrForbidden
	}

	release, err := s.locker.Lock(ctx, "plan:"+plan.ID.String())
	if err != nil {
		return nil, fmt.Errorf("verification.Verify lock plan: %w", err)
	}
	defer release()

	now := s.now().UTC()
	proofPath, err := s.proofs.SaveProof(ctx, plan, input.FileName, input.ContentType, input.File, now)
	if err != nil {
		return nil, fmt.Errorf("verification.Verify store proof: %w", err)
	}

	mode := domain.ParsePaymentMode(input.PaymentMethod)
	ex := s.analyze(ctx, plan, mode, input)

	txID := strings.TrimSpace(ex.TransactionID())
	lookup, err := s.duplicateLookup(ctx, txID)
	if err != nil {
		return nil, fmt.Errorf("verification.Verify duplicate lookup: %w", err)
	}

	result := &VerifyResult{
		Decision:   Decide(plan, mode, ex, lookup),
		Plan:       plan,
		ProofPath:  proofPath,
		Extraction: ex,
	}

	if result.Decision.Accepted() {
		settlement, err := s.record(ctx, plan, mode, txID, proofPath, ex, result.Decision, now)
		switch {
		case errors.Is(err, domain.ErrDuplicateTransaction):
			// Lost the race against a concurrent submission of the same receipt.
			doctor, ownerErr := s.settlements.OwnerOfTransaction(ctx, txID)
			if ownerErr != nil {
				s.log.WarnContext(ctx, "duplicate owner lookup failed", slog.String("error", ownerErr.Error()))
			}
			result.Decision = domain.Decision{
				Outcome: domain.OutcomeRejected,
				Gate:    GateDuplicate,
				Reason:  duplicateReason(txID, doctor),
				Status:  plan.Status,
			}
		case err != nil:
			return nil, fmt.Errorf("verification.Verify record settlement: %w", err)
		default:
			updated := *plan
			updated.Status = result.Decision.Status
			updated.UpdatedAt = now
			result.Plan = &updated
			result.SettlementID = &settlement.ID
			s.publish(ctx, domain.NewSettlementEvent(domain.SourceVerification, plan, settlement, result.Decision.Status))
		}
	}

	s.metrics.RecordDecision(result.Decision.Outcome, result.Decision.Gate)
	s.log.InfoContext(ctx, "proof verified",
		slog.String("plan_id", plan.ID.String()),
		slog.String("account_id", acc.ID.String()),
		slog.String("mode", mode.String()),
		slog.String("outcome", result.Decision.Outcome.String()),
		slog.String("gate", result.Decision.Gate),
		slog.String("status", result.Decision.Status.Kind.String()))

	return result, nil
}

func (s *Service) analyze(ctx context.Context, plan *domain.PlanRecord, mode domain.PaymentMode, input VerifyInput) domain.ExtractionResult {
	start := s.now()
	ex, err := s.analyzer.Analyze(ctx, input.File, input.ContentType, domain.NewReceiptContext(plan, mode))
	s.metrics.RecordAnalyzer(err == nil, s.now().Sub(start))
	if err != nil {
		s.log.WarnContext(ctx, "receipt analysis failed, degrading to manual review",
			slog.String("plan_id", plan.ID.String()),
			slog.String("error", err.Error()))
		return domain.DegradedExtraction(err)
	}
	return ex
}

// duplicateLookup resolves the advisory duplicate check up front so that the
// gate chain stays free of I/O.
func (s *Service) duplicateLookup(ctx context.Context, txID string) (DuplicateLookup, error) {
	if txID == "" {
		return nil, nil
	}
	doctor, err := s.settlements.OwnerOfTransaction(ctx, txID)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return func(string) (string, bool) { return "", false }, nil
	case err != nil:
		return nil, err
	}
	return func(id string) (string, bool) {
		if id != txID {
			return "", false
		}
		return doctor, true
	}, nil
}

func (s *Service) record(
	ctx context.Context,
	plan *domain.PlanRecord,
	mode domain.PaymentMode,
	txID, proofPath string,
	ex domain.ExtractionResult,
	d domain.Decision,
	now time.Time,
) (*domain.Settlement, error) {
	log, err := json.Marshal(ex)
	if err != nil {
		return nil, fmt.Errorf("marshal extraction: %w", err)
	}

	settlement := &domain.Settlement{
		ID:         uuid.New(),
		PlanID:     plan.ID,
		AmountPaid: d.AmountPaid,
		ProofPath:  &proofPath,
		Mode:       mode,
		Log:        log,
		CreatedAt:  now,
	}
	if txID != "" {
		settlement.TransactionID = &txID
	}

	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		if err := s.settlements.Insert(ctx, settlement); err != nil {
			return err
		}
		return s.plans.UpdateStatus(ctx, plan.ID, d.Status)
	})
	if err != nil {
		return nil, err
	}
	return settlement, nil
}

func (s *Service) publish(ctx context.Context, ev domain.SettlementEvent) {
	if err := s.events.PublishSettlement(ctx, ev); err != nil {
		s.log.WarnContext(ctx, "settlement event not published",
			slog.String("plan_id", ev.PlanID.String()),
			slog.String("error", err.Error()))
	}
}
