package format

import "strings"

// PhoneMaskLength is the length of a fully formatted phone value,
// "+7 (XXX) XXX-XX-XX".
const PhoneMaskLength = 18

// phoneDigits is how many digits the mask consumes, country digit included.
const phoneDigits = 11

// Phone formats raw keyboard input into the fixed Russian phone mask. All
// non-digit characters are stripped first, which makes the formatter
// idempotent: re-formatting a formatted value extracts the same digits and
// rebuilds the same string. The leading digit is always rendered as the
// country 7 regardless of what was typed; digits past the eleventh are
// dropped.
func Phone(raw string) string {
	digits := digitsOnly(raw)
	if digits == "" {
		return ""
	}
	if len(digits) > phoneDigits {
		digits = digits[:phoneDigits]
	}

	var b strings.Builder
	b.WriteString("+7")
	if len(digits) <= 1 {
		return b.String()
	}

	b.WriteString(" (")
	b.WriteString(slice(digits, 1, 4))
	if len(digits) <= 4 {
		return b.String()
	}

	b.WriteString(") ")
	b.WriteString(slice(digits, 4, 7))
	if len(digits) <= 7 {
		return b.String()
	}

	b.WriteString("-")
	b.WriteString(slice(digits, 7, 9))
	if len(digits) <= 9 {
		return b.String()
	}

	b.WriteString("-")
	b.WriteString(slice(digits, 9, 11))
	return b.String()
}

// PhoneComplete reports whether a formatted value carries all eleven digits,
// i.e. fills the entire mask.
func PhoneComplete(formatted string) bool {
	return len(formatted) == PhoneMaskLength
}

func digitsOnly(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func slice(digits string, from, to int) string {
	if from >= len(digits) {
		return ""
	}
	if to > len(digits) {
		to = len(digits)
	}
	return digits[from:to]
}
