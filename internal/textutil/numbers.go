package textutil

import (
	"strings"

	"github.com/shopspring/decimal"
)

// ParseDecimal parses a number out of loosely formatted source text.
// It tolerates thousands separators, currency prefixes like "Rs." and
// surrounding whitespace. Returns false for anything that does not
// reduce to a plain decimal number.
func ParseDecimal(s string) (decimal.Decimal, bool) {
	cleaned := strings.TrimSpace(s)
	cleaned = strings.TrimPrefix(cleaned, "Rs.")
	cleaned = strings.TrimPrefix(cleaned, "Rs")
	cleaned = strings.TrimSpace(cleaned)
	cleaned = strings.ReplaceAll(cleaned, ",", "")
	if cleaned == "" {
		return decimal.Decimal{}, false
	}

	// Reject anything with leftover alphabetic noise; decimal.NewFromString
	// accepts exponents, which never appear in these sources.
	for _, r := range cleaned {
		if (r < '0' || r > '9') && r != '.' && r != '-' && r != '+' {
			return decimal.Decimal{}, false
		}
	}

	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Decimal{}, false
	}
	return d, true
}

// ParseNonNegativeDecimal is ParseDecimal restricted to values >= 0.
// Table cells holding dates or codes fail here rather than producing
// bogus negative rates.
func ParseNonNegativeDecimal(s string) (decimal.Decimal, bool) {
	d, ok := ParseDecimal(s)
	if !ok || d.IsNegative() {
		return decimal.Decimal{}, false
	}
	return d, true
}

// Flatten collapses all whitespace runs (including newlines) into single
// spaces. Extractors match against flattened text so markup churn in the
// sources does not break anchor patterns.
func Flatten(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
