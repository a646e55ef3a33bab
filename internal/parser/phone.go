package parser

import (
	"regexp"
	"strings"
)

var nonDigits = regexp.MustCompile(`\D+`)

// Colombian international dialing prefixes, longest first so that
// "00573..." is not consumed as "0057" plus a stray digit.
var mobilePrefixes = []string{"00573", "0057", "057", "57"}

// Digits strips every non-digit rune from s.
func Digits(s string) string {
	return nonDigits.ReplaceAllString(s, "")
}

// NormalizeMobile reports whether s holds a Colombian mobile number and
// returns it normalized to its 10-digit form.
//
// Accepted shapes, after discarding separators and punctuation:
//
//	3001234567
//	573001234567
//	0573001234567
//	00573001234567
//
// Anything else, including landlines and cédula numbers, is rejected.
func NormalizeMobile(s string) (string, bool) {
	digits := Digits(s)

	candidates := []string{digits}
	for _, prefix := range mobilePrefixes {
		if strings.HasPrefix(digits, prefix) {
			candidates = append(candidates, digits[len(prefix):])
		}
	}

	for _, candidate := range candidates {
		if len(candidate) == 10 && candidate[0] == '3' {
			return candidate, true
		}
	}

	return "", false
}
