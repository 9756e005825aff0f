package phone

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/nyaruka/phonenumbers"
)

// placeholders upstream sometimes sends instead of a real origin number.
var placeholders = map[string]bool{
	"":           true,
	"unknown":    true,
	"anonymous":  true,
	"restricted": true,
	"+266696687": true, // spells "anonymous" on a keypad
}

// IsPlaceholder reports whether a raw origin number is missing or one of the
// known placeholder values.
func IsPlaceholder(raw string) bool {
	return placeholders[strings.ToLower(strings.TrimSpace(raw))]
}

// Normalize reduces a phone number to its digits-only national form, stripping
// formatting and the country code, so that numbers from different sources can
// be compared. Falls back to plain digit stripping when parsing fails.
func Normalize(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}

	parsed, err := phonenumbers.Parse(raw, "US")
	if err == nil && phonenumbers.IsPossibleNumber(parsed) {
		return phonenumbers.GetNationalSignificantNumber(parsed)
	}

	digits := stripNonDigits(raw)
	// NANP numbers carry a leading 1 country code
	if len(digits) == 11 && strings.HasPrefix(digits, "1") {
		digits = digits[1:]
	}
	return digits
}

// SameNumber reports whether two raw numbers refer to the same line after
// normalization.
func SameNumber(a, b string) bool {
	na, nb := Normalize(a), Normalize(b)
	return na != "" && na == nb
}

// ToE164 formats a raw number as E.164 for storage.
func ToE164(raw, region string) (string, error) {
	if raw == "" {
		return "", fmt.Errorf("phone number cannot be empty")
	}

	if region == "" {
		region = "US"
	}

	parsed, err := phonenumbers.Parse(raw, region)
	if err != nil {
		return "", fmt.Errorf("failed to parse phone number: %w", err)
	}

	return phonenumbers.Format(parsed, phonenumbers.E164), nil
}

func stripNonDigits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}
