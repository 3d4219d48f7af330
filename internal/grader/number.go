package grader

import (
	"strconv"
	"strings"
	"unitgrader/pkg/serrors"

	"github.com/go-faster/errors"
)

// NormalizeNumber returns a canonical form of a numeric string that
// strconv.ParseFloat understands.
//
// The accepted syntax is the plain decimal float syntax:
//   - Surrounding whitespace is ignored
//   - An optional sign, digits with an optional fraction and exponent
//   - "inf", "infinity" and "nan" in any letter case, each optionally signed
//   - Underscores grouping digits, only between two digits ("1_000")
//
// Hexadecimal literals are rejected.
func NormalizeNumber(raw string) (string, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return "", serrors.With(serrors.ErrInvalidNumber, "empty numeric string")
	}
	if strings.ContainsAny(s, "xXpP") {
		return "", serrors.With(serrors.ErrInvalidNumber, "%q is not a decimal number", raw)
	}

	if strings.Contains(s, "_") {
		for i := range len(s) {
			if s[i] != '_' {
				continue
			}
			if i == 0 || i == len(s)-1 || !isDigit(s[i-1]) || !isDigit(s[i+1]) {
				return "", serrors.With(serrors.ErrInvalidNumber, "misplaced underscore in %q", raw)
			}
		}
		s = strings.ReplaceAll(s, "_", "")
	}

	// strconv rejects a signed NaN
	if t := strings.TrimLeft(s, "+-"); len(s)-len(t) == 1 && strings.EqualFold(t, "nan") {
		s = t
	}

	return s, nil
}

// ParseNumber parses a numeric string as a float64. Values beyond the float64
// range parse to ±Inf rather than failing.
func ParseNumber(raw string) (float64, error) {
	s, err := NormalizeNumber(raw)
	if err != nil {
		return 0, err
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		var numErr *strconv.NumError
		if errors.As(err, &numErr) && errors.Is(numErr.Err, strconv.ErrRange) {
			return v, nil
		}

		return 0, serrors.Wrap(serrors.ErrInvalidNumber, err, "could not parse number")
	}

	return v, nil
}

// IsNumeric reports whether raw is a valid numeric string.
func IsNumeric(raw string) bool {
	_, err := ParseNumber(raw)

	return err == nil
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }
