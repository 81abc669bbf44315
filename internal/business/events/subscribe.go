package events

import (
	"context"
	"errors"
	"fmt"

	"github.com/Bourichi-Taha/Everlasting-client/internal/model"
)

func (s *Service) Subscribe(ctx context.Context, userID, eventID int64) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	if err := s.eventsRepository.LockEvent(ctx, tx, eventID); err != nil {
		return fmt.Errorf("eventsRepository.LockEvent: %w", err)
	}

	event, err := s.eventsRepository.GetEventByID(ctx, tx, eventID)
	if err != nil {
		return fmt.Errorf("eventsRepository.GetEventByID: %w", err)
	}

	switch {
	case event.Canceled:
		return model.ErrEventCanceled
	case event.IsRegistered(userID):
		return model.ErrAlreadySubscribed
	case event.IsFull():
		return model.ErrEventFull
	}

	if err := s.eventsRepository.AddRegistration(ctx, tx, eventID, userID); err != nil {
		if errors.Is(err, model.ErrAlreadyExists) {
			return model.ErrAlreadySubscribed
		}
		return fmt.Errorf("eventsRepository.AddRegistration: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}

	s.invalidate(ctx)

	return nil
}

func (s *Service) Unsubscribe(ctx context.Context, userID, eventID int64) error {
	event, err := s.eventsRepository.GetEventByID(ctx, s.db, eventID)
	if err != nil {
		return fmt.Errorf("eventsRepository.GetEventByID: %w", err)
	}

	if !event.IsRegistered(userID) {
		return model.ErrNotSubscribed
	}

	if err := s.eventsRepository.RemoveRegistration(ctx, s.db, eventID, userID); err != nil {
		return fmt.Errorf("eventsRepository.RemoveRegistration: %w", err)
	}

	s.invalidate(ctx)

	return nil
}
