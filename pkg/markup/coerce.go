package markup

import (
	"strconv"
	"strings"
)

// Coerce converts a raw markup string into a typed scalar. Parsers are tried
// in a fixed order: integer, float, case-insensitive "true"/"false", and
// finally the original string. "1.0" is a float, "1e3" is a float, "TRUE" is a
// bool, and "hello" stays a string.
//
// Integers are limited to int64. Larger integral literals such as
// "99999999999999999999" fall back to float64 and lose precision. Both
// numeric forms accept single underscores between digits, so "1_000" is 1000
// and "1_0.5" is 10.5.
func Coerce(raw string) any {
	if value, ok := parseInt(raw); ok {
		return value
	}
	if value, ok := parseFloat(raw); ok {
		return value
	}
	switch strings.ToLower(raw) {
	case "true":
		return true
	case "false":
		return false
	}
	return raw
}

// parseInt accepts optional surrounding whitespace, an optional sign, and
// decimal digits with single underscores between them.
func parseInt(raw string) (int, bool) {
	trimmed := strings.TrimSpace(raw)
	digits, ok := stripDigitSeparators(trimmed)
	if !ok {
		return 0, false
	}
	value, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		return 0, false
	}
	return int(value), true
}

// parseFloat accepts decimal and exponent forms, inf and nan, with the same
// digit separators as parseInt. Hex floats are rejected.
func parseFloat(raw string) (float64, bool) {
	trimmed := strings.TrimSpace(raw)
	if strings.ContainsAny(trimmed, "xXpP") {
		return 0, false
	}
	digits, ok := stripDigitSeparators(trimmed)
	if !ok {
		return 0, false
	}
	value, err := strconv.ParseFloat(digits, 64)
	if err != nil {
		// Out of range literals still parse to ±Inf.
		if numErr, ok := err.(*strconv.NumError); ok && numErr.Err == strconv.ErrRange {
			return value, true
		}
		return 0, false
	}
	return value, true
}

func stripDigitSeparators(raw string) (string, bool) {
	if !strings.Contains(raw, "_") {
		return raw, raw != ""
	}
	var b strings.Builder
	prevDigit := false
	for idx, r := range raw {
		switch {
		case r >= '0' && r <= '9':
			prevDigit = true
			b.WriteRune(r)
		case r == '_':
			if !prevDigit || idx == len(raw)-1 {
				return "", false
			}
			next := raw[idx+1]
			if next < '0' || next > '9' {
				return "", false
			}
			prevDigit = false
		default:
			prevDigit = false
			b.WriteRune(r)
		}
	}
	return b.String(), true
}
