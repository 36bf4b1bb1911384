package analyzer

import (
	"fmt"
	"strings"

	"github.com/heartmarshall/incentive-ledger/internal/domain"
)

// buildPrompt renders the forensic instructions for one receipt.
func buildPrompt(rc domain.ReceiptContext) string {
	var b strings.Builder

	fmt.Fprintf(&b, `ROLE: Senior Forensic Auditor. Verify this Uzbek payment receipt (РЕЦЕПТ).

CONTEXT:
- Expected Doctor Name: %q
- Expected Phone: %q
- Expected Amount: %d
- Payment Mode: %s
- Expected Currency: %s
- Expected Month: %s (%d)

RULES:

1. PHONE NUMBER EXTRACTION (highest priority):
   - Look for digits near "Телефон:", "Tel:", "Phone:".
   - Uzbek formats: (XX) XXX XXXX, +998XXXXXXXXX, 9X XXX XXXX.
   - Put all readable digits in extracted_phone, ignoring spaces, dashes and parentheses.
   - Put the last 4 readable digits in extracted_phone_last4.

2. IDENTITY (soft matching, handwriting is often messy):
   a) Full phone: the last 9 digits equal the expected phone's -> identity_match = true, phone_matched = true.
   b) Last 4 digits equal the expected phone's last 4 -> identity_match = true, last4_matched = true.
   c) Fuzzy name match, Latin and Cyrillic interchangeable, partial matches allowed -> identity_match = true, name_matched = true.
   If any of these match, identity_match = true.

3. NAME: look near "Ф.И.О врача:", "ФИО:", "Врач:", "Shifokor:" and extract what you can.

4. DATE (be lenient):
   - Any ink or marks on the date lines -> has_complete_date = true.
   - Only completely blank date lines -> has_complete_date = false.
   - If the month is messy or ambiguous, assume it is %d and set extracted_month = %d.

5. AUTHENTICITY:
`, rc.DoctorName, rc.Phone, rc.TargetAmount, rc.Mode.PromptLabel(), currencyLabel(rc.Currency),
		domain.MonthName(rc.Month), rc.Month, rc.Month, rc.Month)

	if rc.Mode.IsPhysical() {
		b.WriteString(`   - Look for a handwritten signature near "Imzo" or "Подпись" -> has_signature.
   - Look for an official ink stamp (blue or purple circle) -> has_stamp.
   - is_authentic = true if either is present, false if both are missing.
`)
	} else {
		b.WriteString(`   - Electronic payment: signature and stamp are not required.
   - Set has_signature = true, has_stamp = true, is_authentic = true.
`)
	}

	b.WriteString("\n")
	b.WriteString(amountRules(rc))

	b.WriteString(`
7. TRANSACTION ID: look for "ID транзакции", "Transaction ID", "Чек №", "Check #" and copy the identifier
   into extracted_transaction_id.

OUTPUT STRICTLY AS JSON, no markdown, no explanation:
{
  "extracted_name": "name found on receipt",
  "extracted_phone": "809039992",
  "extracted_phone_last4": "9992",
  "extracted_amount": 500000,
  "extracted_month": 11,
  "extracted_transaction_id": "290022691",
  "has_complete_date": true,
  "has_signature": true,
  "has_stamp": true,
  "is_authentic": true,
  "identity_match": true,
  "phone_matched": true,
  "last4_matched": false,
  "name_matched": false,
  "confidence": 0.95,
  "reason": "how identity was verified"
}
`)
	return b.String()
}

func currencyLabel(c domain.Currency) string {
	if c == domain.CurrencyUSD {
		return "USD (Dollars)"
	}
	return "UZS (So'm)"
}

func amountRules(rc domain.ReceiptContext) string {
	if rc.Currency == domain.CurrencyUSD {
		return fmt.Sprintf(`6. AMOUNT (dollar mode):
   - Expected amount is around $ %s.
   - Check "Рекомендация:", then "Количество:", the signature area and "Сумма:".
   - The written number is the exact dollar amount. Do not multiply it.
`, domain.FormatAmount(rc.TargetAmount))
	}

	return fmt.Sprintf(`6. AMOUNT (UZS mode):
   - Expected amount is around %s UZS.
   - Check "Рекомендация:", then "Количество:", the signature area and "Сумма:".
   - A quantity like "3000 МЛ" is the amount; ignore the unit.
   - Doctors abbreviate. For a small number N pick the reading closest to the expected amount:
     N x 1,000 (shorthand, "500" -> 500,000) or N x 12,000 (dollars written on a UZS receipt, "50" -> 600,000).
   - Always return the full UZS value, never the abbreviated number.
`, domain.FormatAmount(rc.TargetAmount))
}
