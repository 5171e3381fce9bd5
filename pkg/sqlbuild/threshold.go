package sqlbuild

import (
	"errors"
	"math"
	"strconv"
	"strings"

	"github.com/dmitrymomot/jobboard/core"
)

// ParseThreshold validates a numeric filter value taken from a query string.
//
// Blank input means the criterion is absent (ok is false). Anything that is
// not a finite number is a validation error. "0" is a present threshold.
// The returned value is the canonical decimal form of the number, suitable
// for binding.
func ParseThreshold(name, raw string) (value string, ok bool, err error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", false, nil
	}

	n, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(n) || math.IsInf(n, 0) {
		return "", false, errors.Join(ErrInvalidNumber, core.Invalid(name, "must be a number"))
	}

	return strconv.FormatFloat(n, 'f', -1, 64), true, nil
}
