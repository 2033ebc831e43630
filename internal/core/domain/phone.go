package domain

import "strings"

// US numbers only: exactly 10 digits, rendered as (XXX) XXX-XXXX and
// submitted as +1XXXXXXXXXX. Non-US numbers are an intentional scope limit,
// not a gap.

const phoneDigits = 10

// PhoneDigits strips every non-digit rune and truncates to 10 digits.
func PhoneDigits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
			if b.Len() == phoneDigits {
				break
			}
		}
	}
	return b.String()
}

// FormatPhone renders raw input progressively as the user types:
//
//	"123"        → "123"
//	"123456"     → "(123) 456"
//	"1234567890" → "(123) 456-7890"
//
// Punctuation in the input is ignored, so the function is idempotent on its
// own output.
func FormatPhone(s string) string {
	d := PhoneDigits(s)
	switch {
	case len(d) < 4:
		return d
	case len(d) < 7:
		return "(" + d[:3] + ") " + d[3:]
	default:
		return "(" + d[:3] + ") " + d[3:6] + "-" + d[6:]
	}
}

// ValidPhone reports whether the input contains exactly 10 digits, in any
// formatting.
func ValidPhone(s string) bool {
	n := 0
	for _, r := range s {
		if r >= '0' && r <= '9' {
			n++
		}
	}
	return n == phoneDigits
}

// CanonicalPhone composes the submission form, +1 followed by the 10 digits.
// The input must already satisfy ValidPhone.
func CanonicalPhone(s string) string {
	return "+1" + PhoneDigits(s)
}
