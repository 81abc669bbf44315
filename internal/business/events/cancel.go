package events

import (
	"context"
	"fmt"

	"github.com/Bourichi-Taha/Everlasting-client/internal/model"
)

// CancelEvent marks the event canceled. Canceling twice is a no-op.
func (s *Service) CancelEvent(ctx context.Context, userID, id int64) error {
	event, err := s.eventsRepository.GetEventByID(ctx, s.db, id)
	if err != nil {
		return fmt.Errorf("eventsRepository.GetEventByID: %w", err)
	}

	if event.OwnerID != userID {
		return model.ErrForbidden
	}
	if event.Canceled {
		return nil
	}

	if err := s.eventsRepository.CancelEvent(ctx, s.db, id); err != nil {
		return fmt.Errorf("eventsRepository.CancelEvent: %w", err)
	}

	s.invalidate(ctx)

	return nil
}
