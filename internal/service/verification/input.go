package verification

import (
	"github.com/google/uuid"

	"github.com/heartmarshall/incentive-ledger/internal/domain"
)

// VerifyInput is one proof submission.
type VerifyInput struct {
	PlanID        uuid.UUID
	PaymentMethod string
	FileName      string
	ContentType   string
	File          []byte
}

// Validate validates the submission.
func (i VerifyInput) Validate() error {
	var errs []domain.FieldError

	if i.PlanID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "plan_id", Message: "required"})
	}
	if len(i.File) == 0 {
		errs = append(errs, domain.FieldError{Field: "file", Message: "required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// VerifyResult is the outcome of one submission.
type VerifyResult struct {
	Decision   domain.Decision
	Plan       *domain.PlanRecord
	ProofPath  string
	Extraction domain.ExtractionResult
	// SettlementID is set when the submission was accepted.
	SettlementID *uuid.UUID
}
