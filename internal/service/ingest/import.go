package ingest

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/incentive-ledger/internal/domain"
)

// Import cleans the rows and inserts them as pending plan records in one
// transaction. Blank rows and repeated header rows are skipped.
func (s *Service) Import(ctx context.Context, input ImportInput) (*ImportResult, error) {
	input.normalize()
	if err := input.Validate(); err != nil {
		return nil, err
	}

	now := s.now().UTC()
	res := &ImportResult{Warnings: []string{}}
	records := make([]domain.PlanRecord, 0, len(input.Rows))
	for _, raw := range input.Rows {
		rec, warnings, ok := buildRecord(input.Company, input.Month, raw)
		if !ok {
			res.Skipped++
			continue
		}
		rec.CreatedAt = now
		rec.UpdatedAt = now
		records = append(records, rec)
		res.Warnings = append(res.Warnings, warnings...)
	}

	if len(records) > 0 {
		err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
			n, err := s.plans.BulkInsert(ctx, records)
			res.Inserted = n
			return err
		})
		if err != nil {
			return nil, fmt.Errorf("ingest.Import: %w", err)
		}
	}

	s.log.InfoContext(ctx, "plan records imported",
		slog.String("company", input.Company),
		slog.Int("month", input.Month),
		slog.Int("inserted", res.Inserted),
		slog.Int("skipped", res.Skipped),
		slog.Int("warnings", len(res.Warnings)))

	return res, nil
}

// buildRecord cleans one row. ok is false for rows that are not data.
func buildRecord(company string, month int, raw domain.RawPlanRow) (rec domain.PlanRecord, warnings []string, ok bool) {
	name := strings.TrimSpace(raw.DoctorName)
	amount, amountOK := cleanAmount(raw.Amount)

	if name == "" && amount == 0 {
		return domain.PlanRecord{}, nil, false
	}
	if isHeaderLabel(name) {
		return domain.PlanRecord{}, nil, false
	}

	if !amountOK {
		warnings = append(warnings, fmt.Sprintf("row %d: amount %q is not a number, imported as 0", raw.Line, raw.Amount))
	}
	if name == "" {
		name = "Unknown"
		warnings = append(warnings, fmt.Sprintf("row %d: doctor name missing", raw.Line))
	}

	group := strings.ToUpper(strings.TrimSpace(raw.Group))
	if group == "" {
		group = domain.UnassignedGroup
	}

	return domain.PlanRecord{
		ID:           uuid.New(),
		Company:      company,
		Region:       domain.NormalizeRegion(raw.Region),
		District:     strings.TrimSpace(raw.District),
		Group:        group,
		ManagerName:  strings.TrimSpace(raw.Manager),
		DoctorName:   name,
		Phone:        cleanPhone(raw.Phone),
		Specialty:    strings.TrimSpace(raw.Specialty),
		Workplace:    strings.TrimSpace(raw.Workplace),
		CardNumber:   strings.TrimSpace(raw.CardNumber),
		TargetAmount: amount,
		PlannedMode:  detectMode(raw.Mode),
		Currency:     detectCurrency(raw.Mode, raw.Amount),
		Month:        month,
		Status:       domain.PendingStatus(),
	}, warnings, true
}
