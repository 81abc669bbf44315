package events

import (
	"context"
	"fmt"
	"time"

	"github.com/Bourichi-Taha/Everlasting-client/internal/model"
	"github.com/Bourichi-Taha/Everlasting-client/internal/pkg/datetime"
)

// Editable reports whether the event may still be changed: it must not be
// canceled and must be at least two days away.
func Editable(e *model.Event, now time.Time) bool {
	if e.Canceled {
		return false
	}

	date, err := datetime.ParseDate(e.Date)
	if err != nil {
		return false
	}

	return datetime.IsAtLeastTomorrow(date, now)
}

// UpdateEvent replaces the event's details. The checks run under the row
// lock so a concurrent Subscribe cannot push registrations past the new
// MaxNumParticipants.
func (s *Service) UpdateEvent(ctx context.Context, userID, id int64, info *model.EventCreate, now time.Time) error {
	event := *info
	if err := normalizeTimes(&event); err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	if err := s.eventsRepository.LockEvent(ctx, tx, id); err != nil {
		return fmt.Errorf("eventsRepository.LockEvent: %w", err)
	}

	old, err := s.eventsRepository.GetEventByID(ctx, tx, id)
	if err != nil {
		return fmt.Errorf("get old event: %w", err)
	}

	switch {
	case old.OwnerID != userID:
		return model.ErrForbidden
	case old.Canceled:
		return model.ErrEventCanceled
	case !Editable(old, now):
		return model.ErrNotEditable
	case event.MaxNumParticipants < old.RegisteredNumber():
		return model.ErrTooFewSeats
	}

	if event.ImagePath == "" {
		event.ImagePath = old.ImagePath
	}
	event.Location.ID = old.Location.ID

	if err := s.locationsRepository.UpdateLocation(ctx, tx, &event.Location); err != nil {
		return fmt.Errorf("locationsRepository.UpdateLocation: %w", err)
	}

	if err := s.eventsRepository.UpdateEvent(ctx, tx, id, &event); err != nil {
		return fmt.Errorf("eventsRepository.UpdateEvent: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}

	s.invalidate(ctx)

	return nil
}
