package canon

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

var errNonFinite = errors.New("NaN and Infinity have no JSON representation")

// FormatNumber renders f the way ECMAScript's Number.prototype.toString
// does, which is the number form RFC 8785 mandates.
func FormatNumber(f float64) (string, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return "", errNonFinite
	}
	if f == 0 {
		return "0", nil // also -0
	}

	abs := math.Abs(f)
	if abs >= 1e21 || abs < 1e-6 {
		return trimExponent(strconv.FormatFloat(f, 'e', -1, 64)), nil
	}
	return strconv.FormatFloat(f, 'f', -1, 64), nil
}

// trimExponent drops the zero padding Go puts on exponents: 1e-07 -> 1e-7.
func trimExponent(s string) string {
	i := strings.IndexByte(s, 'e')
	if i < 0 || i+2 >= len(s) {
		return s
	}
	exp := strings.TrimLeft(s[i+2:], "0")
	if exp == "" {
		exp = "0"
	}
	return s[:i+2] + exp
}
