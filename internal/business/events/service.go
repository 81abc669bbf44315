package events

import (
	"context"

	"github.com/Bourichi-Taha/Everlasting-client/internal/database"
	"github.com/Bourichi-Taha/Everlasting-client/internal/model"
	"go.uber.org/zap"
)

type Service struct {
	db                  database.PGX
	logger              *zap.SugaredLogger
	eventsRepository    eventsRepository
	locationsRepository locationsRepository
	cache               eventsCache
}

type eventsRepository interface {
	CreateEvent(ctx context.Context, q database.Queryable, ownerID int64, event *model.EventCreate) (int64, error)
	GetEventByID(ctx context.Context, q database.Queryable, id int64) (*model.Event, error)
	GetEvents(ctx context.Context, q database.Queryable, filter model.EventsFilter) ([]*model.Event, error)
	LockEvent(ctx context.Context, q database.Queryable, id int64) error
	UpdateEvent(ctx context.Context, q database.Queryable, id int64, event *model.EventCreate) error
	CancelEvent(ctx context.Context, q database.Queryable, id int64) error
	AddRegistration(ctx context.Context, q database.Queryable, eventID, userID int64) error
	RemoveRegistration(ctx context.Context, q database.Queryable, eventID, userID int64) error
}

type locationsRepository interface {
	CreateLocation(ctx context.Context, q database.Queryable, location *model.Location) (int64, error)
	UpdateLocation(ctx context.Context, q database.Queryable, location *model.Location) error
}

// eventsCache holds the unfiltered event list. GetEvents returns
// model.ErrNoRecord on a miss. SetEvents stores only if no Invalidate happened
// since Generation returned gen.
type eventsCache interface {
	GetEvents(ctx context.Context) ([]*model.Event, error)
	Generation(ctx context.Context) (int64, error)
	SetEvents(ctx context.Context, gen int64, events []*model.Event) (bool, error)
	Invalidate(ctx context.Context) error
}

func NewService(
	db database.PGX,
	logger *zap.SugaredLogger,
	eventsRepo eventsRepository,
	locationsRepo locationsRepository,
	cache eventsCache,
) *Service {
	return &Service{
		db:                  db,
		logger:              logger,
		eventsRepository:    eventsRepo,
		locationsRepository: locationsRepo,
		cache:               cache,
	}
}

// invalidate drops the cached list after a write. Failing to do so is logged,
// not returned, since the write itself succeeded.
func (s *Service) invalidate(ctx context.Context) {
	if err := s.cache.Invalidate(ctx); err != nil {
		s.logger.Errorw("failed to invalidate events cache", "err", err)
	}
}
