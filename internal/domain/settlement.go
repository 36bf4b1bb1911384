package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Settlement is a recorded payment attempt against a plan record.
type Settlement struct {
	ID            uuid.UUID
	PlanID        uuid.UUID
	AmountPaid    int64
	ProofPath     *string
	Mode          PaymentMode
	TransactionID *string
	Log           json.RawMessage
	CreatedAt     time.Time
}

// Decision is the gatekeeper's verdict on one submission.
type Decision struct {
	Outcome Outcome
	// Gate names the failing gate of a rejection.
	Gate       string
	Reason     string
	Status     Status
	AmountPaid int64
}

// Accepted reports whether the submission settled the plan record.
func (d Decision) Accepted() bool { return d.Outcome == OutcomeAccepted }

// SettlementEventType is the type of every settlement event.
const SettlementEventType = "settlement.recorded"

// Settlement sources.
const (
	SourceVerification = "verification"
	SourceOverride     = "override"
)

// SettlementEvent announces a settlement appended to the ledger.
type SettlementEvent struct {
	Type          string     `json:"type"`
	Source        string     `json:"source"`
	SettlementID  uuid.UUID  `json:"settlement_id"`
	PlanID        uuid.UUID  `json:"plan_id"`
	Company       string     `json:"company"`
	Region        string     `json:"region"`
	Group         string     `json:"group"`
	Month         int        `json:"month"`
	Status        StatusKind `json:"status"`
	StatusLabel   string     `json:"status_label"`
	AmountPaid    int64      `json:"amount_paid"`
	Mode          string     `json:"mode"`
	TransactionID *string    `json:"transaction_id,omitempty"`
	OccurredAt    time.Time  `json:"occurred_at"`
}

// NewSettlementEvent describes s, recorded against plan with the given
// resulting status.
func NewSettlementEvent(source string, plan *PlanRecord, s *Settlement, status Status) SettlementEvent {
	return SettlementEvent{
		Type:          SettlementEventType,
		Source:        source,
		SettlementID:  s.ID,
		PlanID:        plan.ID,
		Company:       plan.Company,
		Region:        plan.Region,
		Group:         plan.Group,
		Month:         plan.Month,
		Status:        status.Kind,
		StatusLabel:   status.Label(plan.Currency),
		AmountPaid:    s.AmountPaid,
		Mode:          s.Mode.String(),
		TransactionID: s.TransactionID,
		OccurredAt:    s.CreatedAt,
	}
}
