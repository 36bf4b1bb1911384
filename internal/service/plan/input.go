package plan

import (
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/incentive-ledger/internal/domain"
)

// SearchInput holds the admin search filters. Company is required.
type SearchInput struct {
	Company string
	Region  string
	Group   string
	Doctor  string
	Month   int
}

// StatsInput holds the filters of the admin dashboard.
type StatsInput struct {
	Company string
	Region  string
	Month   int
}

func validateMonth(month int, errs []domain.FieldError) []domain.FieldError {
	if month < 0 || month > 12 {
		errs = append(errs, domain.FieldError{Field: "month", Message: "must be between 1 and 12"})
	}
	return errs
}

// Validate validates the search filters.
func (i SearchInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.Company) == "" {
		errs = append(errs, domain.FieldError{Field: "company", Message: "required"})
	}
	errs = validateMonth(i.Month, errs)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// Validate validates the dashboard filters.
func (i StatsInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.Company) == "" {
		errs = append(errs, domain.FieldError{Field: "company", Message: "required"})
	}
	errs = validateMonth(i.Month, errs)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// OverrideInput is an operator correction of one plan record. Status may be
// left empty to derive it from the paid amount.
type OverrideInput struct {
	PlanID      uuid.UUID
	AmountPaid  int64
	Status      string
	Comment     string
	FileName    string
	ContentType string
	File        []byte
}

// Validate validates the override.
func (i OverrideInput) Validate() error {
	var errs []domain.FieldError

	if i.PlanID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "plan_id", Message: "required"})
	}
	if i.AmountPaid < 0 {
		errs = append(errs, domain.FieldError{Field: "amount_paid", Message: "must not be negative"})
	}
	if s := strings.TrimSpace(i.Status); s != "" && !domain.StatusKind(strings.ToLower(s)).IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "unknown status"})
	}
	if len(i.Comment) > 1000 {
		errs = append(errs, domain.FieldError{Field: "comment", Message: "too long"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// OverrideResult is the outcome of an operator override.
type OverrideResult struct {
	Plan       *domain.PlanRecord
	Settlement *domain.Settlement
}

// ResetResult reports what a bulk reset removed.
type ResetResult struct {
	Settlements int64
	Plans       int64
}
