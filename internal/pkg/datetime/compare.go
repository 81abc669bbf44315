package datetime

import (
	"fmt"
	"time"
)

// IsLaterThan reports whether end is strictly after start, compared at minute
// precision.
func IsLaterThan(end, start ClockTime) bool {
	return end.MinuteOfDay() > start.MinuteOfDay()
}

func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// Today is the calendar date of now in now's location.
func Today(now time.Time) CalendarDate {
	return calendarDateOf(now)
}

// IsAtLeastTomorrow reports whether date (at midnight) is strictly after the
// start of tomorrow, which means the date is two or more days away.
func IsAtLeastTomorrow(date CalendarDate, now time.Time) bool {
	threshold := StartOfDay(now).AddDate(0, 0, 1)
	return date.In(now.Location()).After(threshold)
}

// BookingWindow returns the first and last dates a new event can be placed on.
func BookingWindow(now time.Time) (first, last CalendarDate) {
	start := StartOfDay(now)
	return calendarDateOf(start.AddDate(0, 0, 1)), calendarDateOf(start.AddDate(1, 0, 1))
}

func IsWithinBookingWindow(date CalendarDate, now time.Time) bool {
	first, last := BookingWindow(now)
	return !date.Before(first) && !date.After(last)
}

// DurationBetween renders end-start as "HH:MM:SS". An end before start wraps
// past midnight.
func DurationBetween(start, end ClockTime) string {
	diff := end.seconds() - start.seconds()
	if diff < 0 {
		diff += 24 * 3600
	}
	return fmt.Sprintf("%02d:%02d:%02d", diff/3600, diff%3600/60, diff%60)
}
