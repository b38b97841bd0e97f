// utils/timeutil.go
package utils

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// MinuteOfDay parses "HH:MM" into minutes past midnight.
// Returns -1 for anything it cannot parse; callers treat that as absent.
func MinuteOfDay(s string) int {
	parts := strings.SplitN(strings.TrimSpace(s), ":", 2)
	if len(parts) != 2 {
		return -1
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil {
		return -1
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil {
		return -1
	}
	if h < 0 || m < 0 || m > 59 {
		return -1
	}
	return h*60 + m
}

// FormatMinute renders minutes past midnight as "HH:MM".
func FormatMinute(m int) string {
	if m < 0 {
		m = 0
	}
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}

// ParseDate reads a plan date ("2006-01-02"). ok is false when the date
// does not parse; the planner then skips any weekday-based rule.
func ParseDate(s string) (time.Time, bool) {
	t, err := time.Parse("2006-01-02", strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
