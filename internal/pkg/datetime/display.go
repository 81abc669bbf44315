package datetime

import (
	"fmt"
	"strings"
)

// CombineDateAndTimeForDisplay renders "{day} {month} à {HH:MM}", for example
// "1 mars à 09:30".
func CombineDateAndTimeForDisplay(date CalendarDate, t ClockTime, l Locale) string {
	return fmt.Sprintf("%d %s %s %s", date.Day, l.MonthName(date.Month), l.connector, t.String())
}

// FormatDateTime parses an event date and start time and renders them with
// CombineDateAndTimeForDisplay.
func FormatDateTime(date, startTime string, l Locale) (string, error) {
	d, err := ParseDate(date)
	if err != nil {
		return "", err
	}

	t, err := ExtractClockTime(startTime)
	if err != nil {
		return "", err
	}

	return CombineDateAndTimeForDisplay(d, t, l), nil
}

// FormatDuration turns "HH:MM:SS" into words, e.g. "2 heures 15 minutes".
// Zero parts are omitted, seconds are ignored and a zero duration gives "".
func FormatDuration(duration string, l Locale) (string, error) {
	parts := strings.Split(strings.TrimSpace(duration), ":")
	if len(parts) != 3 {
		return "", formatError("duration", duration)
	}

	vals := [3]int{}
	for i, p := range parts {
		maxLen := 2
		if i == 0 {
			maxLen = 0
		}
		n, ok := parseUnsigned(p, maxLen)
		if !ok {
			return "", formatError("duration", duration)
		}
		vals[i] = n
	}
	hours, minutes := vals[0], vals[1]
	if minutes > 59 || vals[2] > 59 {
		return "", formatError("duration", duration)
	}

	var words []string
	if hours > 0 {
		words = append(words, fmt.Sprintf("%d %s", hours, l.unit(l.hour, hours)))
	}
	if minutes > 0 {
		words = append(words, fmt.Sprintf("%d %s", minutes, l.unit(l.minute, minutes)))
	}

	return strings.Join(words, " "), nil
}
