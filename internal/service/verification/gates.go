package verification

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/heartmarshall/incentive-ledger/internal/domain"
)

// Rejection reasons, as shown to managers.
const (
	reasonNoDate = "Month Missing. The receipt must specify at least the Month and Year. " +
		"Blank date lines are not allowed."
	reasonNoAuth = "No Authentication. Paper receipts must have at least a signature OR a stamp " +
		"for verification."
	reasonIdentity     = "Identity Mismatch. Could not verify Doctor Name or Phone."
	reasonManualReview = "Automatic verification is unavailable for this receipt. " +
		"It has been stored and queued for manual review."
	reasonNoAmount = "No payment amount could be read from the receipt. " +
		"It has been stored and queued for manual review."
)

// Gate names, used as the rejection label in metrics and logs.
const (
	GateDate      = "date"
	GateAuth      = "authentication"
	GateMonth     = "month"
	GateIdentity  = "identity"
	GateDuplicate = "duplicate"
)

// DuplicateLookup reports the doctor whose settlement already carries txID.
type DuplicateLookup func(txID string) (doctor string, found bool)

// submission is what every gate inspects.
type submission struct {
	plan *domain.PlanRecord
	mode domain.PaymentMode
	ex   *domain.ExtractionResult
	dup  DuplicateLookup
}

// gate returns a non-empty rejection reason when the submission fails it.
type gate struct {
	name  string
	check func(s *submission) string
}

// gates run in order; the first failure decides.
var gates = []gate{
	{GateDate, checkDate},
	{GateAuth, checkAuthentication},
	{GateMonth, checkMonth},
	{GateIdentity, checkIdentity},
	{GateDuplicate, checkDuplicate},
}

func checkDate(s *submission) string {
	if domain.IsFalse(s.ex.HasCompleteDate) {
		return reasonNoDate
	}
	return ""
}

func checkAuthentication(s *submission) string {
	if !s.mode.IsPhysical() {
		return ""
	}
	if domain.IsTrue(s.ex.HasSignature) || domain.IsTrue(s.ex.HasStamp) {
		return ""
	}
	return reasonNoAuth
}

func checkMonth(s *submission) string {
	m := s.ex.ExtractedMonth
	if m == nil || *m == s.plan.Month {
		return ""
	}
	found := "nothing"
	if *m != 0 {
		found = strconv.Itoa(*m)
	}
	return fmt.Sprintf("Wrong Month. Found %s, expected %s (%d).", found, domain.MonthName(s.plan.Month), s.plan.Month)
}

func checkIdentity(s *submission) string {
	if domain.IsFalse(s.ex.IdentityMatch) {
		return reasonIdentity
	}
	return ""
}

func checkDuplicate(s *submission) string {
	txID := strings.TrimSpace(s.ex.TransactionID())
	if txID == "" || s.dup == nil {
		return ""
	}
	doctor, found := s.dup(txID)
	if !found {
		return ""
	}
	return duplicateReason(txID, doctor)
}

func duplicateReason(txID, doctor string) string {
	if doctor == "" {
		doctor = "Unknown"
	}
	return fmt.Sprintf("Duplicate Receipt. This transaction ID (%s) was already used for doctor: %s. "+
		"Each receipt can only be submitted once.", txID, doctor)
}

// Decide runs the gate chain over one analyzed submission.
//
// A degraded extraction, or one that passes every gate without an amount,
// goes to manual review. Otherwise the first failing gate rejects, and a
// submission passing all gates is accepted with the status derived from
// target minus extracted amount.
func Decide(plan *domain.PlanRecord, mode domain.PaymentMode, ex domain.ExtractionResult, dup DuplicateLookup) domain.Decision {
	if ex.Failed {
		return domain.Decision{Outcome: domain.OutcomeManualReview, Reason: reasonManualReview, Status: plan.Status}
	}

	s := &submission{plan: plan, mode: mode, ex: &ex, dup: dup}
	for _, g := range gates {
		if reason := g.check(s); reason != "" {
			return domain.Decision{Outcome: domain.OutcomeRejected, Gate: g.name, Reason: reason, Status: plan.Status}
		}
	}

	if ex.ExtractedAmount == nil {
		return domain.Decision{Outcome: domain.OutcomeManualReview, Reason: reasonNoAmount, Status: plan.Status}
	}

	paid := *ex.ExtractedAmount
	cur := plan.Currency
	if cur == "" {
		cur = domain.CurrencyUZS
	}
	return domain.Decision{
		Outcome:    domain.OutcomeAccepted,
		Reason:     fmt.Sprintf("Payment verified: %s %s", domain.FormatAmount(paid), cur),
		Status:     domain.StatusFromDifference(plan.TargetAmount - paid),
		AmountPaid: paid,
	}
}
