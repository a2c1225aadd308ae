package internal

import (
	"strings"
	"time"

	"github.com/dromara/carbon/v2"
)

const (
	DateLayout = time.DateOnly
	TimeLayout = "15:04"
)

// IsAbsentDate reports whether v carries no date at all.
func IsAbsentDate(v any) bool {
	switch d := v.(type) {
	case nil:
		return true
	case string:
		return strings.TrimSpace(d) == ""
	case time.Time:
		return d.IsZero()
	case *time.Time:
		return d == nil || d.IsZero()
	case *carbon.Carbon:
		return d == nil || d.IsEmpty() || d.IsZero()
	case carbon.Carbon:
		return d.IsEmpty() || d.IsZero()
	}
	return false
}

// FormatDate canonicalizes a date-like value to YYYY-MM-DD.
// time.Time values are formatted in their own location; "today" and
// "yesterday" are resolved against the host's local clock.
func FormatDate(v any) (string, error) {
	if IsAbsentDate(v) {
		return "", InvalidArgument("Please specify a valid date.")
	}

	switch d := v.(type) {
	case string:
		return formatDateString(d)
	case time.Time:
		return d.Format(DateLayout), nil
	case *time.Time:
		return d.Format(DateLayout), nil
	case *carbon.Carbon:
		return formatCarbon(d)
	case carbon.Carbon:
		return formatCarbon(&d)
	}

	return "", InvalidArgumentf("Date used must be a date/time value or a string in the format YYYY-MM-DD; supplied argument is a %T", v)
}

func formatCarbon(c *carbon.Carbon) (string, error) {
	if c.HasError() || c.IsInvalid() {
		return "", InvalidArgumentf("Invalid date: %s. Use the format YYYY-MM-DD.", c.String())
	}
	return c.ToDateString(), nil
}

// formatDateString keeps the calendar date as written: a string with an
// explicit offset is formatted in that offset, never in the host's zone.
func formatDateString(s string) (string, error) {
	s = strings.TrimSpace(s)

	switch strings.ToLower(s) {
	case "today":
		return carbon.Now(carbon.Local).ToDateString(), nil
	case "yesterday":
		return carbon.Yesterday(carbon.Local).ToDateString(), nil
	}

	c := carbon.Parse(s, carbon.UTC)
	if c.HasError() || c.IsInvalid() {
		return "", InvalidArgumentf("Invalid date: %s. Use the format YYYY-MM-DD.", s)
	}

	// strings without an offset parse as UTC, which leaves them unchanged
	t, err := time.Parse(c.CurrentLayout(), s)
	if err != nil {
		return "", InvalidArgumentf("Invalid date: %s. Use the format YYYY-MM-DD.", s)
	}
	return t.Format(DateLayout), nil
}

// FormatTime canonicalizes a HH:MM string, e.g. "9:05" becomes "09:05".
func FormatTime(s string) (string, error) {
	t, err := time.Parse(TimeLayout, strings.TrimSpace(s))
	if err != nil {
		return "", InvalidArgumentf("Invalid time: %s. Time must be in the format HH:MM.", s)
	}
	return t.Format(TimeLayout), nil
}
