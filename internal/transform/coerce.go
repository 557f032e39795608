// Package transform implements the cleaning stage of the load: scalar
// coercion, valid-key set construction, foreign-key resolution, and the five
// per-entity row transformers.
//
// Every function here is total over malformed input. A value that cannot be
// coerced surfaces as an absence flag (or a per-column default), never as an
// error: one bad field must not abort a row, and one bad row must not abort
// the run.
package transform

import (
	"math"
	"strconv"
	"strings"
)

// Int coerces a raw text field into an integer. It tolerates thousands
// separators ("553,465") and decimal renderings of integral values ("4.0"),
// which some ERP exports emit for integer columns. The second return value is
// false when the input is empty or unparseable.
func Int(raw string) (int64, bool) {
	f, ok := Float(raw)
	if !ok {
		return 0, false
	}
	f = math.Trunc(f)
	// Reject values outside the int64 range rather than wrapping.
	if f < math.MinInt64 || f >= math.MaxInt64 {
		return 0, false
	}
	return int64(f), true
}

// Float coerces a raw text field into a real number, tolerating thousands
// separators ("1,234.50"). The second return value is false when the input is
// empty or unparseable.
func Float(raw string) (float64, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, false
	}
	s = strings.ReplaceAll(s, ",", "")
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsInf(f, 0) || math.IsNaN(f) {
		return 0, false
	}
	return f, true
}

// intOr coerces raw and falls back to def when the value is absent.
func intOr(raw string, def int64) int64 {
	if v, ok := Int(raw); ok {
		return v
	}
	return def
}

// floatOr coerces raw and falls back to def when the value is absent.
func floatOr(raw string, def float64) float64 {
	if v, ok := Float(raw); ok {
		return v
	}
	return def
}

// textOr returns raw trimmed, or def when raw is blank.
func textOr(raw, def string) string {
	if s := strings.TrimSpace(raw); s != "" {
		return s
	}
	return def
}
