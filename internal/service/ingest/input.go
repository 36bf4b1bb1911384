package ingest

import (
	"strings"

	"github.com/heartmarshall/incentive-ledger/internal/domain"
)

// ImportInput is one spreadsheet worth of rows for a company and month.
type ImportInput struct {
	Company string
	Month   int
	Rows    []domain.RawPlanRow
}

func (i *ImportInput) normalize() {
	i.Company = strings.TrimSpace(i.Company)
	if i.Month == 0 {
		i.Month = domain.DefaultPlanMonth
	}
}

// Validate validates the import.
func (i ImportInput) Validate() error {
	var errs []domain.FieldError

	if i.Company == "" {
		errs = append(errs, domain.FieldError{Field: "company", Message: "required"})
	}
	if i.Month < 1 || i.Month > 12 {
		errs = append(errs, domain.FieldError{Field: "month", Message: "must be between 1 and 12"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ImportResult reports what an import did. Warnings name rows that were
// imported with a questionable value.
type ImportResult struct {
	Inserted int
	Skipped  int
	Warnings []string
}
