package util

import (
	"errors"
	"strings"
	"time"
)

// ParseDateRange parses optional start/end filter strings. Each accepts
// RFC3339 or YYYY-MM-DD; a date-only end is widened to the end of that day,
// so the returned end bound is always exclusive. Reversed bounds are swapped.
func ParseDateRange(startStr, endStr *string) (start time.Time, hasStart bool, endExclusive time.Time, hasEnd bool, err error) {
	rawStart, startOk, _, err := parseDateInput(startStr)
	if err != nil {
		return time.Time{}, false, time.Time{}, false, err
	}
	rawEnd, endOk, endDateOnly, err := parseDateInput(endStr)
	if err != nil {
		return time.Time{}, false, time.Time{}, false, err
	}

	if startOk && endOk && rawEnd.Before(rawStart) {
		rawStart, rawEnd = rawEnd, rawStart
	}

	if startOk {
		start = rawStart
		hasStart = true
	}
	if endOk {
		endExclusive = rawEnd
		if endDateOnly {
			endExclusive = rawEnd.AddDate(0, 0, 1)
		}
		hasEnd = true
	}
	return start, hasStart, endExclusive, hasEnd, nil
}

func parseDateInput(s *string) (t time.Time, ok bool, dateOnly bool, err error) {
	if s == nil {
		return time.Time{}, false, false, nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return time.Time{}, false, false, nil
	}
	if tt, e := time.Parse(time.RFC3339, trimmed); e == nil {
		return tt, true, false, nil
	}
	if tt, e := time.Parse("2006-01-02", trimmed); e == nil {
		return tt, true, true, nil
	}
	return time.Time{}, false, false, errors.New("invalid date format (use YYYY-MM-DD or RFC3339)")
}
