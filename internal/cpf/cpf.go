// Package cpf formats and validates CPF numbers (the 11-digit Brazilian
// tax id). Both functions are pure: no state, no errors — invalid input
// simply fails validation, and formatting is best-effort so it can drive
// live masking of a partially typed field.
package cpf

import "strings"

// Format strips every non-digit rune from raw and re-applies the canonical
// mask NNN.NNN.NNN-NN. Partial input is masked progressively ("5299" becomes
// "529.9"), and anything beyond 11 digits is truncated. Format is idempotent:
// Format(Format(x)) == Format(x).
func Format(raw string) string {
	d := digits(raw)
	if len(d) > 11 {
		d = d[:11]
	}

	var b strings.Builder
	for i, r := range d {
		switch i {
		case 3, 6:
			b.WriteByte('.')
		case 9:
			b.WriteByte('-')
		}
		b.WriteRune(r)
	}
	return b.String()
}

// IsValid reports whether candidate is a well-formed CPF. Formatting is
// ignored: the input is reduced to digits first. A candidate fails when it
// does not have exactly 11 digits, when all digits are identical (000... up
// to 999... are rejected outright), or when the two trailing check digits do
// not match the weighted-sum computation over the leading nine.
func IsValid(candidate string) bool {
	d := digits(candidate)
	if len(d) != 11 {
		return false
	}
	if allSame(d) {
		return false
	}

	base := d[:9]
	d1 := checkDigit(base, 10)
	d2 := checkDigit(base+string(rune('0'+d1)), 11)

	return int(d[9]-'0') == d1 && int(d[10]-'0') == d2
}

// checkDigit computes one verification digit: digit i (0-indexed) is
// weighted by (factor - i), the sum is multiplied by 10 and reduced
// mod 11 mod 10.
func checkDigit(base string, factor int) int {
	sum := 0
	for i, r := range base {
		sum += int(r-'0') * (factor - i)
	}
	return sum * 10 % 11 % 10
}

func digits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func allSame(s string) bool {
	for i := 1; i < len(s); i++ {
		if s[i] != s[0] {
			return false
		}
	}
	return true
}
