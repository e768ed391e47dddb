package gpa

import (
	"math"
	"strconv"
	"strings"
)

// Sanity bounds for a GPA value. Values outside this range are treated as
// data entry errors, not as a different grading scale.
const (
	MinGPA = 0.0
	MaxGPA = 5.0
)

// ParseGPA parses a raw cell value into a GPA. Returns false for empty,
// non-numeric and out-of-range values; malformed data never produces an
// error, it is simply not a GPA.
func ParseGPA(raw string) (float64, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, false
	}

	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, false
	}

	if math.IsNaN(value) || value < MinGPA || value > MaxGPA {
		return 0, false
	}

	return value, true
}
