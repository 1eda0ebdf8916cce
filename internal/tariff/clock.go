package tariff

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/sunbird-energy/sunbird/internal/domain"
)

const minutesPerDay = 24 * 60

// ParseClockTime converts an "HH:MM" string to minutes since midnight.
func ParseClockTime(s string) (int, error) {
	hh, mm, ok := strings.Cut(s, ":")
	if !ok {
		return 0, fmt.Errorf("malformed clock time %q", s)
	}
	hour, err := strconv.Atoi(hh)
	if err != nil {
		return 0, fmt.Errorf("malformed clock time %q: %w", s, err)
	}
	minute, err := strconv.Atoi(mm)
	if err != nil {
		return 0, fmt.Errorf("malformed clock time %q: %w", s, err)
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, fmt.Errorf("clock time %q out of range", s)
	}
	return hour*60 + minute, nil
}

// timeInRange reports whether t falls within [start, end), in minutes since
// midnight. When start > end the range wraps past midnight and covers
// [start, 1440) plus [0, end).
func timeInRange(t, start, end int) bool {
	if start <= end {
		return t >= start && t < end
	}
	return t >= start && t < minutesPerDay || t >= 0 && t < end
}

// PeriodFor resolves the rate period containing the given clock time.
// Periods are checked in fixed order peak, standard, off-peak and the first
// matching range wins; unmatched times bill at the standard rate. Malformed
// range boundaries are skipped.
func PeriodFor(minutes int, periods domain.TimePeriods) string {
	ordered := []struct {
		name   string
		ranges []domain.TimePeriod
	}{
		{"peak", periods.Peak},
		{"standard", periods.Standard},
		{"offPeak", periods.OffPeak},
	}
	for _, p := range ordered {
		for _, r := range p.ranges {
			start, err := ParseClockTime(r.Start)
			if err != nil {
				continue
			}
			end, err := ParseClockTime(r.End)
			if err != nil {
				continue
			}
			if timeInRange(minutes, start, end) {
				return p.name
			}
		}
	}
	return "standard"
}
