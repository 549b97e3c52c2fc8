package ingest

import "time"

const (
	// layoutFractional is the canonical output layout: six-digit
	// microseconds, always present.
	layoutFractional = "2006-01-02T15:04:05.000000"
	layoutWhole      = "2006-01-02T15:04:05"
)

// ParseTimestamp accepts the input schema's ISO-8601 subset: UTC,
// fractional seconds optional.
func ParseTimestamp(s string) (time.Time, error) {
	if t, err := time.Parse(layoutFractional, s); err == nil {
		return t.UTC(), nil
	}
	t, err := time.Parse(layoutWhole, s)
	if err != nil {
		return time.Time{}, err
	}
	return t.UTC(), nil
}

// FormatTimestamp renders the canonical output form: six-digit
// microseconds, rounded to nearest.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Round(time.Microsecond).Format(layoutFractional)
}
