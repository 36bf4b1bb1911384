package ingest

import (
	"strings"

	"github.com/shopspring/decimal"
	"github.com/ttacon/libphonenumber"

	"github.com/heartmarshall/incentive-ledger/internal/domain"
)

// phoneRegion is the default region for numbers written without a country code.
const phoneRegion = "UZ"

var (
	cardMarkers = []string{"card", "karta", "карт", "click", "plastik"}
	usdMarkers  = []string{"usd", "dollar", "доллар", "$"}
)

// cleanAmount keeps digits, the decimal point and the sign, and truncates to
// whole units. ok is false when text was present but not a number.
func cleanAmount(raw string) (amount int64, ok bool) {
	var b strings.Builder
	for _, r := range raw {
		if (r >= '0' && r <= '9') || r == '.' || r == '-' {
			b.WriteRune(r)
		}
	}
	s := b.String()
	if s == "" {
		return 0, strings.TrimSpace(raw) == ""
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, false
	}
	return d.IntPart(), true
}

// cleanPhone strips everything but digits. Valid Uzbek numbers are reduced to
// their national significant number; anything else keeps its digits.
func cleanPhone(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	digits := b.String()
	if digits == "" {
		return ""
	}

	num, err := libphonenumber.Parse(digits, phoneRegion)
	if err != nil || !libphonenumber.IsValidNumberForRegion(num, phoneRegion) {
		return digits
	}
	return libphonenumber.GetNationalSignificantNumber(num)
}

func containsAny(s string, markers []string) bool {
	for _, m := range markers {
		if strings.Contains(s, m) {
			return true
		}
	}
	return false
}

// detectMode reads the planned payment mode from free text. Cash unless the
// text names a card payment.
func detectMode(text string) domain.PaymentMode {
	if containsAny(strings.ToLower(text), cardMarkers) {
		return domain.PaymentModeCard
	}
	return domain.PaymentModeCash
}

// detectCurrency reads the target currency from free text.
func detectCurrency(texts ...string) domain.Currency {
	for _, t := range texts {
		if containsAny(strings.ToLower(t), usdMarkers) {
			return domain.CurrencyUSD
		}
	}
	return domain.CurrencyUZS
}

// isHeaderLabel reports doctor-name cells that repeat the sheet header.
func isHeaderLabel(name string) bool {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "фио", "ф.и.о", "врач", "name", "doctor":
		return true
	}
	return false
}
