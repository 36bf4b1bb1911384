package domain

// ExtractionResult is what the receipt analyzer read from a proof image.
// Every field is optional: the analyzer may omit any of them or fail outright.
// It is persisted only as the settlement's opaque log.
type ExtractionResult struct {
	ExtractedName          *string  `json:"extracted_name"`
	ExtractedPhone         *string  `json:"extracted_phone"`
	ExtractedPhoneLast4    *string  `json:"extracted_phone_last4"`
	ExtractedAmount        *int64   `json:"extracted_amount"`
	ExtractedMonth         *int     `json:"extracted_month"`
	ExtractedTransactionID *string  `json:"extracted_transaction_id"`
	HasCompleteDate        *bool    `json:"has_complete_date"`
	HasSignature           *bool    `json:"has_signature"`
	HasStamp               *bool    `json:"has_stamp"`
	IsAuthentic            *bool    `json:"is_authentic"`
	IdentityMatch          *bool    `json:"identity_match"`
	PhoneMatched           *bool    `json:"phone_matched,omitempty"`
	Last4Matched           *bool    `json:"last4_matched,omitempty"`
	NameMatched            *bool    `json:"name_matched,omitempty"`
	Confidence             *float64 `json:"confidence,omitempty"`
	Reason                 string   `json:"reason,omitempty"`

	// Failed marks a degraded result produced when the analyzer call itself
	// failed or returned something unparseable.
	Failed bool   `json:"failed,omitempty"`
	Error  string `json:"error,omitempty"`
}

// DegradedExtraction is the result used when the analyzer is unavailable.
// All business flags are left unset.
func DegradedExtraction(err error) ExtractionResult {
	msg := "analyzer failed"
	if err != nil {
		msg = err.Error()
	}
	return ExtractionResult{Failed: true, Error: msg}
}

// TransactionID returns the extracted transaction id, or "" when absent.
func (r ExtractionResult) TransactionID() string {
	if r.ExtractedTransactionID == nil {
		return ""
	}
	return *r.ExtractedTransactionID
}

// IsTrue reports whether an optional flag was explicitly reported as true.
func IsTrue(b *bool) bool { return b != nil && *b }

// IsFalse reports whether an optional flag was explicitly reported as false.
func IsFalse(b *bool) bool { return b != nil && !*b }

// ReceiptContext is what the analyzer is told about the expected receipt.
type ReceiptContext struct {
	DoctorName   string
	Phone        string
	TargetAmount int64
	Mode         PaymentMode
	Currency     Currency
	Month        int
}

// NewReceiptContext builds the analyzer context for a submission against plan.
func NewReceiptContext(plan *PlanRecord, mode PaymentMode) ReceiptContext {
	cur := plan.Currency
	if cur == "" {
		cur = CurrencyUZS
	}
	return ReceiptContext{
		DoctorName:   plan.DoctorName,
		Phone:        plan.Phone,
		TargetAmount: plan.TargetAmount,
		Mode:         mode,
		Currency:     cur,
		Month:        plan.Month,
	}
}
