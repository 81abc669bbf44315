package datetime

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// isoOffset is added to ISO-8601 timestamps before the clock time is read.
const isoOffset = time.Hour

const pickerLayout = "Mon, 02 Jan 2006 15:04:05"

var isoLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
}

// ClockTime is a time of day.
type ClockTime struct {
	Hour   int
	Minute int
	Second int
}

// ParseClockTime parses "HH:MM" or "HH:MM:SS".
func ParseClockTime(s string) (ClockTime, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) != 2 && len(parts) != 3 {
		return ClockTime{}, formatError("time", s)
	}

	vals := [3]int{}
	for i, p := range parts {
		n, ok := parseUnsigned(p, 2)
		if !ok {
			return ClockTime{}, formatError("time", s)
		}
		vals[i] = n
	}

	c := ClockTime{Hour: vals[0], Minute: vals[1], Second: vals[2]}
	if c.Hour > 23 || c.Minute > 59 || c.Second > 59 {
		return ClockTime{}, formatError("time", s)
	}

	return c, nil
}

// ExtractClockTime reads the time of day out of a picker timestamp
// ("Wed, 01 Mar 2025 09:30:02 GMT", fifth space separated field), an ISO-8601
// timestamp (shifted by one hour first) or a bare "HH:MM[:SS]".
func ExtractClockTime(ts string) (ClockTime, error) {
	ts = strings.TrimSpace(ts)
	if ts == "" {
		return ClockTime{}, formatError("timestamp", ts)
	}

	if looksISO(ts) {
		t, ok := parseISO(ts)
		if !ok {
			return ClockTime{}, formatError("timestamp", ts)
		}
		t = t.Add(isoOffset)
		return ClockTime{Hour: t.Hour(), Minute: t.Minute(), Second: t.Second()}, nil
	}

	fields := strings.Fields(ts)
	switch {
	case len(fields) >= 5:
		c, err := ParseClockTime(fields[4])
		if err != nil {
			return ClockTime{}, formatError("timestamp", ts)
		}
		return c, nil
	case len(fields) == 1:
		return ParseClockTime(fields[0])
	default:
		return ClockTime{}, formatError("timestamp", ts)
	}
}

func (c ClockTime) MinuteOfDay() int {
	return c.Hour*60 + c.Minute
}

// String formats c as "HH:MM".
func (c ClockTime) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour, c.Minute)
}

// WithSeconds formats c as "HH:MM:SS".
func (c ClockTime) WithSeconds() string {
	return fmt.Sprintf("%02d:%02d:%02d", c.Hour, c.Minute, c.Second)
}

func (c ClockTime) seconds() int {
	return c.Hour*3600 + c.Minute*60 + c.Second
}

// PickerTimestamp builds the timestamp a time picker is pre-filled with: the
// given day at c, seconds fixed to 2, formatted like
// "Mon, 02 Jan 2006 15:04:02 GMT".
func PickerTimestamp(c ClockTime, day time.Time) string {
	y, m, d := day.Date()
	t := time.Date(y, m, d, c.Hour, c.Minute, 2, 0, time.UTC)
	return t.Format(pickerLayout) + " GMT"
}

func parseISO(s string) (time.Time, bool) {
	for _, layout := range isoLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func looksISO(s string) bool {
	return len(s) > 10 && s[4] == '-' && s[7] == '-' && s[10] == 'T'
}

func parseUnsigned(s string, maxLen int) (int, bool) {
	if s == "" || (maxLen > 0 && len(s) > maxLen) {
		return 0, false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, false
		}
	}

	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return n, true
}
