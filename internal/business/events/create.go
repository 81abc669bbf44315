package events

import (
	"context"
	"fmt"

	"github.com/Bourichi-Taha/Everlasting-client/internal/model"
	"github.com/Bourichi-Taha/Everlasting-client/internal/pkg/datetime"
)

// CreateEvent stores the location and the event in one transaction. Input is
// expected to have passed CheckEventInput.
func (s *Service) CreateEvent(ctx context.Context, ownerID int64, info *model.EventCreate) (*model.Event, error) {
	event := *info
	if err := normalizeTimes(&event); err != nil {
		return nil, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	locationID, err := s.locationsRepository.CreateLocation(ctx, tx, &event.Location)
	if err != nil {
		return nil, fmt.Errorf("locationsRepository.CreateLocation: %w", err)
	}
	event.Location.ID = locationID

	id, err := s.eventsRepository.CreateEvent(ctx, tx, ownerID, &event)
	if err != nil {
		return nil, fmt.Errorf("eventsRepository.CreateEvent: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit tx: %w", err)
	}

	s.invalidate(ctx)

	return &model.Event{
		ID:          id,
		OwnerID:     ownerID,
		EventCreate: event,
	}, nil
}

// normalizeTimes rewrites start and end as "HH:MM:SS" and derives the
// duration.
func normalizeTimes(e *model.EventCreate) error {
	start, err := datetime.ExtractClockTime(e.StartTime)
	if err != nil {
		return fmt.Errorf("start time: %w", err)
	}

	end, err := datetime.ExtractClockTime(e.EndTime)
	if err != nil {
		return fmt.Errorf("end time: %w", err)
	}

	e.StartTime = start.WithSeconds()
	e.EndTime = end.WithSeconds()
	e.Duration = datetime.DurationBetween(start, end)

	return nil
}
