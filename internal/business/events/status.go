package events

import (
	"fmt"
	"time"

	"github.com/Bourichi-Taha/Everlasting-client/internal/model"
	"github.com/Bourichi-Taha/Everlasting-client/internal/pkg/datetime"
)

// Classify puts an event in exactly one status bucket relative to now.
// Cancellation wins over everything, then same calendar day, then past or
// upcoming.
func Classify(e *model.Event, now time.Time) (model.Status, error) {
	if e.Canceled {
		return model.StatusCanceled, nil
	}

	date, err := datetime.ParseDate(e.Date)
	if err != nil {
		return "", fmt.Errorf("classify event %d: %w", e.ID, err)
	}

	today := datetime.Today(now)
	switch {
	case date == today:
		return model.StatusToday, nil
	case date.Before(today):
		return model.StatusPast, nil
	default:
		return model.StatusUpcoming, nil
	}
}

// MatchesStatusFilter is false for unknown statuses and for events whose date
// can't be read.
func MatchesStatusFilter(e *model.Event, requested model.Status, now time.Time) bool {
	if !requested.Valid() {
		return false
	}

	status, err := Classify(e, now)
	if err != nil {
		return false
	}

	return status == requested
}
