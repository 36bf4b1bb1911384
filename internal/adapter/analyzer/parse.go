package analyzer

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/heartmarshall/incentive-ledger/internal/domain"
)

var errNoJSON = errors.New("no JSON object found in response")

// extractJSON returns the outermost JSON object in s, dropping markdown
// fences and surrounding prose.
func extractJSON(s string) (string, error) {
	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start == -1 || end == -1 || end <= start {
		return "", errNoJSON
	}
	return s[start : end+1], nil
}

// parseResult decodes the model answer. Models are inconsistent about JSON
// types, so booleans, numbers and strings are read leniently.
func parseResult(text string) (domain.ExtractionResult, error) {
	raw, err := extractJSON(text)
	if err != nil {
		return domain.ExtractionResult{}, err
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal([]byte(raw), &fields); err != nil {
		return domain.ExtractionResult{}, fmt.Errorf("decode response: %w", err)
	}

	r := domain.ExtractionResult{
		ExtractedName:          stringField(fields["extracted_name"]),
		ExtractedPhone:         stringField(fields["extracted_phone"]),
		ExtractedPhoneLast4:    stringField(fields["extracted_phone_last4"]),
		ExtractedAmount:        intField(fields["extracted_amount"]),
		ExtractedTransactionID: stringField(fields["extracted_transaction_id"]),
		HasCompleteDate:        boolField(fields["has_complete_date"]),
		HasSignature:           boolField(fields["has_signature"]),
		HasStamp:               boolField(fields["has_stamp"]),
		IsAuthentic:            boolField(fields["is_authentic"]),
		IdentityMatch:          boolField(fields["identity_match"]),
		PhoneMatched:           boolField(fields["phone_matched"]),
		Last4Matched:           boolField(fields["last4_matched"]),
		NameMatched:            boolField(fields["name_matched"]),
		Confidence:             floatField(fields["confidence"]),
	}
	if m := intField(fields["extracted_month"]); m != nil {
		month := int(*m)
		r.ExtractedMonth = &month
	}
	if reason := stringField(fields["reason"]); reason != nil {
		r.Reason = *reason
	}
	return r, nil
}

// scalar unwraps a raw JSON value into a Go value. Absent and null give nil.
// Numbers stay json.Number so long transaction ids keep every digit.
func scalar(raw json.RawMessage) any {
	if len(raw) == 0 {
		return nil
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil
	}
	return v
}

func boolField(raw json.RawMessage) *bool {
	var b bool
	switch v := scalar(raw).(type) {
	case bool:
		b = v
	case json.Number:
		f, err := v.Float64()
		if err != nil {
			return nil
		}
		b = f != 0
	case string:
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "true", "yes", "1":
			b = true
		case "false", "no", "0":
			b = false
		default:
			return nil
		}
	default:
		return nil
	}
	return &b
}

func stringField(raw json.RawMessage) *string {
	var s string
	switch v := scalar(raw).(type) {
	case string:
		s = strings.TrimSpace(v)
	case json.Number:
		s = v.String()
	default:
		return nil
	}
	if s == "" {
		return nil
	}
	return &s
}

var (
	minInt64 = decimal.NewFromInt(math.MinInt64)
	maxInt64 = decimal.NewFromInt(math.MaxInt64)
)

// currencyMarks may lead or trail a string amount.
var currencyMarks = []string{"uzs", "usd", "so'm", "som", "sum", "сум", "сўм", "$"}

// intField accepts numbers and numeric strings such as "500 000",
// "1,200,000.50" or "1,200,000 UZS". Fractions are truncated. Anything that
// does not parse or does not fit in int64 gives nil.
func intField(raw json.RawMessage) *int64 {
	var text string
	switch v := scalar(raw).(type) {
	case json.Number:
		text = v.String()
	case string:
		text = cleanAmount(v)
	default:
		return nil
	}

	d, err := decimal.NewFromString(text)
	if err != nil {
		return nil
	}
	d = d.Truncate(0)
	if d.LessThan(minInt64) || d.GreaterThan(maxInt64) {
		return nil
	}
	n := d.IntPart()
	return &n
}

// cleanAmount drops whitespace, thousands commas and a currency mark.
func cleanAmount(s string) string {
	s = strings.Join(strings.Fields(strings.ToLower(s)), "")
	s = strings.ReplaceAll(s, ",", "")
	for _, mark := range currencyMarks {
		s = strings.TrimPrefix(s, mark)
		s = strings.TrimSuffix(s, mark)
	}
	return s
}

func floatField(raw json.RawMessage) *float64 {
	var f float64
	switch v := scalar(raw).(type) {
	case json.Number:
		parsed, err := v.Float64()
		if err != nil {
			return nil
		}
		f = parsed
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return nil
		}
		f = parsed
	default:
		return nil
	}
	return &f
}
