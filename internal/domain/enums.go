package domain

import "strings"

// Role represents the authorization level of an account.
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleManager Role = "manager"
)

func (r Role) String() string { return string(r) }

func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleManager:
		return true
	}
	return false
}

// IsAdmin reports whether the role has global company scope.
func (r Role) IsAdmin() bool { return r == RoleAdmin }

// PaymentMode is the way a doctor was paid.
type PaymentMode string

const (
	PaymentModeCash   PaymentMode = "cash"
	PaymentModeCard   PaymentMode = "card"
	PaymentModeManual PaymentMode = "manual"
)

func (m PaymentMode) String() string { return string(m) }

func (m PaymentMode) IsValid() bool {
	switch m {
	case PaymentModeCash, PaymentModeCard, PaymentModeManual:
		return true
	}
	return false
}

// IsPhysical reports whether the mode relies on a paper receipt.
func (m PaymentMode) IsPhysical() bool { return m == PaymentModeCash }

// PromptLabel is the human label handed to the receipt analyzer.
func (m PaymentMode) PromptLabel() string {
	if m.IsPhysical() {
		return "Cash/Paper"
	}
	return "Card/Click"
}

// ParsePaymentMode maps a submitted payment method to a mode.
// Anything that is not "cash" is treated as an electronic payment.
func ParsePaymentMode(s string) PaymentMode {
	if strings.EqualFold(strings.TrimSpace(s), "cash") {
		return PaymentModeCash
	}
	return PaymentModeCard
}

// Currency of a plan target.
type Currency string

const (
	CurrencyUZS Currency = "UZS"
	CurrencyUSD Currency = "USD"
)

func (c Currency) String() string { return string(c) }

func (c Currency) IsValid() bool {
	switch c {
	case CurrencyUZS, CurrencyUSD:
		return true
	}
	return false
}

// StatusKind is the state of a plan record in the settlement state machine.
type StatusKind string

const (
	StatusPending   StatusKind = "pending"
	StatusVerified  StatusKind = "verified"
	StatusUnderpaid StatusKind = "underpaid"
	StatusOverpaid  StatusKind = "overpaid"
)

func (k StatusKind) String() string { return string(k) }

func (k StatusKind) IsValid() bool {
	switch k {
	case StatusPending, StatusVerified, StatusUnderpaid, StatusOverpaid:
		return true
	}
	return false
}

// Outcome is the result class of a verification attempt.
type Outcome string

const (
	OutcomeAccepted     Outcome = "accepted"
	OutcomeRejected     Outcome = "rejected"
	OutcomeManualReview Outcome = "manual_review"
)

func (o Outcome) String() string { return string(o) }
