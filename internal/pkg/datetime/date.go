package datetime

import (
	"fmt"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

// CalendarDate is a day without time of day or zone.
type CalendarDate struct {
	Year  int
	Month time.Month
	Day   int
}

// ParseDate accepts "YYYY-MM-DD" or an RFC 3339 timestamp, in which case only
// the date part is kept.
func ParseDate(s string) (CalendarDate, error) {
	s = strings.TrimSpace(s)

	if t, err := time.Parse(dateLayout, s); err == nil {
		return calendarDateOf(t), nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return calendarDateOf(t), nil
	}

	return CalendarDate{}, formatError("date", s)
}

// ParsePickedDate reads the date a user picked in a form. Date pickers send
// the chosen day as an ISO-8601 timestamp, which is shifted by the same
// isoOffset as ExtractClockTime before the date is taken, so a French
// midnight sent as "2025-03-01T23:00:00.000Z" is 2 March. Plain
// "YYYY-MM-DD" is read as is.
func ParsePickedDate(s string) (CalendarDate, error) {
	s = strings.TrimSpace(s)

	if looksISO(s) {
		t, ok := parseISO(s)
		if !ok {
			return CalendarDate{}, formatError("date", s)
		}
		return calendarDateOf(t.Add(isoOffset)), nil
	}

	if t, err := time.Parse(dateLayout, s); err == nil {
		return calendarDateOf(t), nil
	}

	return CalendarDate{}, formatError("date", s)
}

// ParseTimestamp returns the instant a date string denotes. A bare
// "YYYY-MM-DD" is midnight UTC.
func ParseTimestamp(s string) (time.Time, error) {
	s = strings.TrimSpace(s)

	if t, err := time.Parse(dateLayout, s); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}

	return time.Time{}, formatError("date", s)
}

func calendarDateOf(t time.Time) CalendarDate {
	y, m, d := t.Date()
	return CalendarDate{Year: y, Month: m, Day: d}
}

func (d CalendarDate) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// In returns midnight of d in loc.
func (d CalendarDate) In(loc *time.Location) time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, loc)
}

func (d CalendarDate) Before(o CalendarDate) bool {
	return d.key() < o.key()
}

func (d CalendarDate) After(o CalendarDate) bool {
	return d.key() > o.key()
}

func (d CalendarDate) key() int {
	return d.Year*10000 + int(d.Month)*100 + d.Day
}

func (d CalendarDate) valid() bool {
	if d.Year < 0 || d.Year > 9999 || d.Month < time.January || d.Month > time.December {
		return false
	}
	return calendarDateOf(d.In(time.UTC)) == d
}

// DateInput is either a raw string passed through untouched or a structured
// calendar value.
type DateInput struct {
	raw        string
	date       CalendarDate
	structured bool
}

func RawDate(s string) DateInput {
	return DateInput{raw: s}
}

func StructuredDate(year int, month time.Month, day int) DateInput {
	return DateInput{
		date:       CalendarDate{Year: year, Month: month, Day: day},
		structured: true,
	}
}

// DateOf takes the calendar date of t in t's own location.
func DateOf(t time.Time) DateInput {
	return DateInput{date: calendarDateOf(t), structured: true}
}

// NormalizeDate renders structured input as zero-padded "YYYY-MM-DD". Raw
// input is returned unchanged.
func NormalizeDate(in DateInput) (string, error) {
	if !in.structured {
		return in.raw, nil
	}

	if !in.date.valid() {
		return "", formatError("date", fmt.Sprintf("%d-%d-%d", in.date.Year, int(in.date.Month), in.date.Day))
	}

	return in.date.String(), nil
}
