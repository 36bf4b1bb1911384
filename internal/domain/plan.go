package domain

import (
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
)

// PlanRecord is a single doctor/target assignment.
type PlanRecord struct {
	ID           uuid.UUID
	Company      string
	Region       string
	District     string
	Group        string
	ManagerName  string
	DoctorName   string
	Phone        string
	Specialty    string
	Workplace    string
	CardNumber   string
	TargetAmount int64
	PlannedMode  PaymentMode
	Currency     Currency
	Month        int
	Status       Status
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Status is the settlement state of a plan record. Amount carries the
// shortfall for underpaid records and the excess for overpaid ones.
type Status struct {
	Kind   StatusKind
	Amount int64
}

// PendingStatus is the initial state of every ingested record.
func PendingStatus() Status { return Status{Kind: StatusPending} }

// StatusFromDifference classifies target minus paid.
func StatusFromDifference(diff int64) Status {
	switch {
	case diff == 0:
		return Status{Kind: StatusVerified}
	case diff > 0:
		return Status{Kind: StatusUnderpaid, Amount: diff}
	default:
		return Status{Kind: StatusOverpaid, Amount: -diff}
	}
}

// Label renders the status the way operators read it.
func (s Status) Label(cur Currency) string {
	if cur == "" {
		cur = CurrencyUZS
	}
	switch s.Kind {
	case StatusVerified:
		return "Verified"
	case StatusUnderpaid:
		return fmt.Sprintf("Underpaid (Debt: %s %s)", FormatAmount(s.Amount), cur)
	case StatusOverpaid:
		return fmt.Sprintf("Overpaid (+%s %s)", FormatAmount(s.Amount), cur)
	default:
		return "Pending"
	}
}

// StatusLabel renders the record's status in its own currency.
func (p *PlanRecord) StatusLabel() string { return p.Status.Label(p.Currency) }

// PlanView is a plan record together with its latest settlement.
type PlanView struct {
	PlanRecord
	AmountPaid int64
	ProofPath  *string
}

// PlanStats summarizes a slice of the ledger. Paid sums the latest settlement
// of each plan record; Debt is never negative.
type PlanStats struct {
	TotalDoctors int64
	TotalBudget  int64
	TotalPaid    int64
	TotalDebt    int64
	Pending      int64
	Verified     int64
}

// LeaderboardRow aggregates targets and payments for one region and group.
type LeaderboardRow struct {
	Region string
	Group  string
	Target int64
	Paid   int64
	Debt   int64
}

// FormatAmount renders n with comma thousands separators.
func FormatAmount(n int64) string {
	s := strconv.FormatInt(n, 10)
	neg := false
	if n < 0 {
		neg = true
		s = s[1:]
	}

	out := make([]byte, 0, len(s)+len(s)/3)
	for i := range len(s) {
		if i > 0 && (len(s)-i)%3 == 0 {
			out = append(out, ',')
		}
		out = append(out, s[i])
	}
	if neg {
		return "-" + string(out)
	}
	return string(out)
}

var monthNames = [...]string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// MonthName returns the English month name for 1..12.
func MonthName(m int) string {
	if m < 1 || m > 12 {
		return "Unknown"
	}
	return monthNames[m-1]
}
