package plannerconfig

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrInvalidInput is returned when form text is not a finite number
var ErrInvalidInput = errors.New("invalid parameter input")

// ParseValue parses operator input as a finite float. Surrounding whitespace is
// ignored; anything else that is not a complete number is rejected, including
// NaN and infinities.
func ParseValue(text string) (float64, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return 0, fmt.Errorf("%w: empty value", ErrInvalidInput)
	}

	v, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", ErrInvalidInput, text)
	}
	if !IsFinite(v) {
		return 0, fmt.Errorf("%w: %q is not finite", ErrInvalidInput, text)
	}

	return v, nil
}

// FormatValue renders v the way it is shown in a form field: plain decimal
// notation, switching to an exponent only for very large or tiny magnitudes
func FormatValue(v float64) string {
	if abs := math.Abs(v); abs >= 1e21 || (abs != 0 && abs < 1e-6) {
		return strconv.FormatFloat(v, 'g', -1, 64)
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// IsFinite reports whether v can be committed as a parameter value
func IsFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
