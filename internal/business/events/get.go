package events

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Bourichi-Taha/Everlasting-client/internal/model"
)

func (s *Service) ListEvents(ctx context.Context, criteria model.FilterCriteria, now time.Time) ([]*model.Event, error) {
	all, err := s.allEvents(ctx)
	if err != nil {
		return nil, err
	}

	return Apply(all, criteria, now), nil
}

func (s *Service) allEvents(ctx context.Context) ([]*model.Event, error) {
	cached, err := s.cache.GetEvents(ctx)
	switch {
	case err == nil:
		return cached, nil
	case !errors.Is(err, model.ErrNoRecord):
		s.logger.Warnw("events cache read failed", "err", err)
	}

	gen, genErr := s.cache.Generation(ctx)
	if genErr != nil {
		s.logger.Warnw("events cache generation read failed", "err", genErr)
	}

	events, err := s.eventsRepository.GetEvents(ctx, s.db, model.EventsFilter{})
	if err != nil {
		return nil, fmt.Errorf("eventsRepository.GetEvents: %w", err)
	}

	if genErr != nil {
		return events, nil
	}

	stored, err := s.cache.SetEvents(ctx, gen, events)
	switch {
	case err != nil:
		s.logger.Warnw("events cache write failed", "err", err)
	case !stored:
		s.logger.Debugw("events changed while loading, list not cached", "generation", gen)
	}

	return events, nil
}

func (s *Service) GetEvent(ctx context.Context, id int64) (*model.Event, error) {
	event, err := s.eventsRepository.GetEventByID(ctx, s.db, id)
	if err != nil {
		return nil, fmt.Errorf("eventsRepository.GetEventByID: %w", err)
	}

	return event, nil
}

// ListOwnEvents returns the events created by userID, soonest first.
func (s *Service) ListOwnEvents(ctx context.Context, userID int64, now time.Time) ([]*model.Event, error) {
	events, err := s.eventsRepository.GetEvents(ctx, s.db, model.EventsFilter{OwnerID: userID})
	if err != nil {
		return nil, fmt.Errorf("eventsRepository.GetEvents: %w", err)
	}

	return Apply(events, model.FilterCriteria{SortOrder: model.SortAsc}, now), nil
}

// ListRegisteredEvents returns the events userID subscribed to, soonest first.
func (s *Service) ListRegisteredEvents(ctx context.Context, userID int64, now time.Time) ([]*model.Event, error) {
	events, err := s.eventsRepository.GetEvents(ctx, s.db, model.EventsFilter{RegisteredID: userID})
	if err != nil {
		return nil, fmt.Errorf("eventsRepository.GetEvents: %w", err)
	}

	return Apply(events, model.FilterCriteria{SortOrder: model.SortAsc}, now), nil
}
