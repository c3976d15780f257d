package types

import (
	"fmt"
	"time"
)

const methodDate = "Date"

// maxTimestampMillis is the largest magnitude, in milliseconds, a timestamp may have;
// bounds beyond it fall back to the defaults.
const maxTimestampMillis = 8640000000000000

// Default date bounds. Both are fixed instants so unseeded defaults never
// depend on the wall clock.
var (
	DefaultDateMin = time.Date(1990, time.January, 1, 0, 0, 0, 0, time.UTC)
	DefaultDateMax = time.Date(2100, time.January, 1, 0, 0, 0, 0, time.UTC)
)

// DateInit bounds a date draw. Zero values select DefaultDateMin and
// DefaultDateMax.
type DateInit struct {
	Min time.Time
	Max time.Time
}

// Date draws a UTC instant uniformly in [Min, Max] with millisecond resolution.
func (t *Types) Date(init DateInit) (time.Time, error) {
	min := resolveBound(init.Min, DefaultDateMin)
	max := resolveBound(init.Max, DefaultDateMax)
	if min > max {
		return time.Time{}, fmt.Errorf("%s: min=%d max=%d: %w", methodDate, min, max, ErrInvalidRange)
	}

	ms := Draw(t.engine(), NumberInit{Min: float64(min), Max: float64(max), Precision: 1})

	return time.UnixMilli(int64(ms)).UTC(), nil
}

// DateUpTo draws a date between DefaultDateMin and max.
func (t *Types) DateUpTo(max time.Time) (time.Time, error) {
	return t.Date(DateInit{Max: max})
}

// Datetime draws a date in the default range. It cannot fail.
func (t *Types) Datetime() time.Time {
	d, _ := t.Date(DateInit{})

	return d
}

func resolveBound(v, fallback time.Time) int64 {
	if v.IsZero() {
		return fallback.UnixMilli()
	}
	ms := v.UnixMilli()
	if ms < -maxTimestampMillis || ms > maxTimestampMillis {
		return fallback.UnixMilli()
	}

	return ms
}
