package events

import (
	"context"
	"errors"
	"testing"

	"github.com/Bourichi-Taha/Everlasting-client/internal/database"
	"github.com/Bourichi-Taha/Everlasting-client/internal/model"
	"github.com/jackc/pgx/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeTx struct {
	database.Tx
	committed bool
}

func (t *fakeTx) Commit(context.Context) error {
	t.committed = true
	return nil
}

func (t *fakeTx) Rollback(context.Context) error {
	return nil
}

type fakeDB struct {
	database.PGX
	txs []*fakeTx
}

func (db *fakeDB) BeginTx(context.Context, *pgx.TxOptions) (database.Tx, error) {
	tx := &fakeTx{}
	db.txs = append(db.txs, tx)
	return tx, nil
}

type fakeEventsRepo struct {
	events map[int64]*model.Event
	nextID int64
	lists  int
	locked []int64
	// duringList runs once after GetEvents took its snapshot.
	duringList func()
}

func newFakeEventsRepo(events ...*model.Event) *fakeEventsRepo {
	r := &fakeEventsRepo{events: map[int64]*model.Event{}, nextID: 100}
	for _, e := range events {
		r.events[e.ID] = e
	}
	return r
}

func (r *fakeEventsRepo) CreateEvent(_ context.Context, _ database.Queryable, ownerID int64, event *model.EventCreate) (int64, error) {
	r.nextID++
	r.events[r.nextID] = &model.Event{ID: r.nextID, OwnerID: ownerID, EventCreate: *event}
	return r.nextID, nil
}

func (r *fakeEventsRepo) GetEventByID(_ context.Context, _ database.Queryable, id int64) (*model.Event, error) {
	e, ok := r.events[id]
	if !ok {
		return nil, model.ErrNoRecord
	}
	cp := *e
	cp.RegisteredIDs = append([]int64(nil), e.RegisteredIDs...)
	return &cp, nil
}

func (r *fakeEventsRepo) GetEvents(_ context.Context, _ database.Queryable, filter model.EventsFilter) ([]*model.Event, error) {
	r.lists++
	var res []*model.Event
	for _, e := range r.events {
		if filter.OwnerID != 0 && e.OwnerID != filter.OwnerID {
			continue
		}
		if filter.RegisteredID != 0 && !e.IsRegistered(filter.RegisteredID) {
			continue
		}
		cp := *e
		cp.RegisteredIDs = append([]int64(nil), e.RegisteredIDs...)
		res = append(res, &cp)
	}
	if hook := r.duringList; hook != nil {
		r.duringList = nil
		hook()
	}
	return res, nil
}

func (r *fakeEventsRepo) LockEvent(_ context.Context, _ database.Queryable, id int64) error {
	if _, ok := r.events[id]; !ok {
		return model.ErrNoRecord
	}
	r.locked = append(r.locked, id)
	return nil
}

func (r *fakeEventsRepo) UpdateEvent(_ context.Context, _ database.Queryable, id int64, event *model.EventCreate) error {
	r.events[id].EventCreate = *event
	return nil
}

func (r *fakeEventsRepo) CancelEvent(_ context.Context, _ database.Queryable, id int64) error {
	r.events[id].Canceled = true
	return nil
}

func (r *fakeEventsRepo) AddRegistration(_ context.Context, _ database.Queryable, eventID, userID int64) error {
	r.events[eventID].RegisteredIDs = append(r.events[eventID].RegisteredIDs, userID)
	return nil
}

func (r *fakeEventsRepo) RemoveRegistration(_ context.Context, _ database.Queryable, eventID, userID int64) error {
	e := r.events[eventID]
	for i, id := range e.RegisteredIDs {
		if id == userID {
			e.RegisteredIDs = append(e.RegisteredIDs[:i], e.RegisteredIDs[i+1:]...)
			return nil
		}
	}
	return model.ErrNoRecord
}

type fakeLocationsRepo struct {
	created []model.Location
	updated []model.Location
}

func (r *fakeLocationsRepo) CreateLocation(_ context.Context, _ database.Queryable, l *model.Location) (int64, error) {
	r.created = append(r.created, *l)
	return int64(len(r.created)), nil
}

func (r *fakeLocationsRepo) UpdateLocation(_ context.Context, _ database.Queryable, l *model.Location) error {
	r.updated = append(r.updated, *l)
	return nil
}

type fakeCache struct {
	events      []*model.Event
	hit         bool
	gen         int64
	invalidated int
	getErr      error
}

func (c *fakeCache) GetEvents(context.Context) ([]*model.Event, error) {
	if c.getErr != nil {
		return nil, c.getErr
	}
	if !c.hit {
		return nil, model.ErrNoRecord
	}
	return c.events, nil
}

func (c *fakeCache) Generation(context.Context) (int64, error) {
	return c.gen, nil
}

func (c *fakeCache) SetEvents(_ context.Context, gen int64, events []*model.Event) (bool, error) {
	if gen != c.gen {
		return false, nil
	}
	c.events = events
	c.hit = true
	return true, nil
}

func (c *fakeCache) Invalidate(context.Context) error {
	c.invalidated++
	c.gen++
	c.hit = false
	return nil
}

type fixture struct {
	db        *fakeDB
	repo      *fakeEventsRepo
	locations *fakeLocationsRepo
	cache     *fakeCache
	service   *Service
}

func newFixture(events ...*model.Event) *fixture {
	f := &fixture{
		db:        &fakeDB{},
		repo:      newFakeEventsRepo(events...),
		locations: &fakeLocationsRepo{},
		cache:     &fakeCache{},
	}
	f.service = NewService(f.db, zap.NewNop().Sugar(), f.repo, f.locations, f.cache)
	return f
}

func owned(e *model.Event, owner int64) *model.Event {
	e.OwnerID = owner
	return e
}

func TestListEventsUsesCache(t *testing.T) {
	f := newFixture(
		event(1, "2025-03-10", "Music", "France"),
		event(2, "2025-03-05", "Sport", "France"),
	)
	ctx := context.Background()

	got, err := f.service.ListEvents(ctx, model.FilterCriteria{SortOrder: model.SortAsc}, refNow)
	require.NoError(t, err)
	assert.Equal(t, []int64{2, 1}, ids(got))
	assert.Equal(t, 1, f.repo.lists)

	got, err = f.service.ListEvents(ctx, model.FilterCriteria{Categories: []string{"Music"}}, refNow)
	require.NoError(t, err)
	assert.Equal(t, []int64{1}, ids(got))
	assert.Equal(t, 1, f.repo.lists)
}

func TestListEventsDoesNotCacheListLoadedBeforeMutation(t *testing.T) {
	f := newFixture(event(1, "2025-03-10", "Music", "France"))
	f.repo.events[1].MaxNumParticipants = 5
	ctx := context.Background()

	f.repo.duringList = func() {
		require.NoError(t, f.service.Subscribe(ctx, 7, 1))
	}

	got, err := f.service.ListEvents(ctx, model.FilterCriteria{}, refNow)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Empty(t, got[0].RegisteredIDs)
	assert.False(t, f.cache.hit)

	got, err = f.service.ListEvents(ctx, model.FilterCriteria{}, refNow)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, []int64{7}, got[0].RegisteredIDs)
	assert.Equal(t, 2, f.repo.lists)
	assert.True(t, f.cache.hit)
}

func TestListEventsFallsBackOnCacheError(t *testing.T) {
	f := newFixture(event(1, "2025-03-10", "Music", "France"))
	f.cache.getErr = errors.New("connection refused")

	got, err := f.service.ListEvents(context.Background(), model.FilterCriteria{}, refNow)
	require.NoError(t, err)
	assert.Equal(t, []int64{1}, ids(got))
}

func TestCreateEvent(t *testing.T) {
	f := newFixture()
	in := validInput()
	in.StartTime = "Mon, 10 Mar 2025 20:00:02 GMT"
	in.EndTime = "Mon, 10 Mar 2025 22:15:02 GMT"

	created, err := f.service.CreateEvent(context.Background(), 7, in)
	require.NoError(t, err)

	assert.Equal(t, int64(7), created.OwnerID)
	assert.Equal(t, "20:00:02", created.StartTime)
	assert.Equal(t, "22:15:02", created.EndTime)
	assert.Equal(t, "02:15:00", created.Duration)
	assert.Equal(t, int64(1), created.Location.ID)
	require.Len(t, f.db.txs, 1)
	assert.True(t, f.db.txs[0].committed)
	assert.Equal(t, 1, f.cache.invalidated)

	assert.Equal(t, "Mon, 10 Mar 2025 20:00:02 GMT", in.StartTime, "input is not modified")
}

func TestUpdateEvent(t *testing.T) {
	e := owned(event(1, "2025-03-10", "Music", "France"), 7)
	e.Location.ID = 3

	tests := []struct {
		name       string
		userID     int64
		date       string
		cancel     bool
		registered []int64
		seats      int
		want       error
	}{
		{name: "owner, far enough", userID: 7, date: "2025-03-10"},
		{name: "seats equal to registrations", userID: 7, date: "2025-03-10", registered: []int64{1, 2}, seats: 2},
		{name: "fewer seats than registrations", userID: 7, date: "2025-03-10", registered: []int64{1, 2, 3}, seats: 2, want: model.ErrTooFewSeats},
		{name: "missing", userID: 7, date: "2025-03-10", want: model.ErrNoRecord},
		{name: "not owner", userID: 8, date: "2025-03-10", want: model.ErrForbidden},
		{name: "tomorrow is too late", userID: 7, date: "2025-03-02", want: model.ErrNotEditable},
		{name: "canceled", userID: 7, date: "2025-03-10", cancel: true, want: model.ErrEventCanceled},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cp := *e
			cp.Date = tt.date
			cp.Canceled = tt.cancel
			cp.RegisteredIDs = tt.registered
			f := newFixture(&cp)

			in := validInput()
			in.Name = "Renamed"
			if tt.seats != 0 {
				in.MaxNumParticipants = tt.seats
			}
			id := int64(1)
			if tt.want == model.ErrNoRecord {
				id = 42
			}
			err := f.service.UpdateEvent(context.Background(), tt.userID, id, in, refNow)

			if tt.want != nil {
				assert.ErrorIs(t, err, tt.want)
				assert.Equal(t, 0, f.cache.invalidated)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, []int64{1}, f.repo.locked)
			assert.Equal(t, "Renamed", f.repo.events[1].Name)
			assert.Equal(t, "02:00:00", f.repo.events[1].Duration)
			require.Len(t, f.locations.updated, 1)
			assert.Equal(t, int64(3), f.locations.updated[0].ID)
			assert.Equal(t, 1, f.cache.invalidated)
		})
	}
}

func TestCancelEvent(t *testing.T) {
	f := newFixture(owned(event(1, "2025-03-10", "Music", "France"), 7))
	ctx := context.Background()

	assert.ErrorIs(t, f.service.CancelEvent(ctx, 8, 1), model.ErrForbidden)
	assert.ErrorIs(t, f.service.CancelEvent(ctx, 7, 2), model.ErrNoRecord)

	require.NoError(t, f.service.CancelEvent(ctx, 7, 1))
	assert.True(t, f.repo.events[1].Canceled)
	require.NoError(t, f.service.CancelEvent(ctx, 7, 1))
	assert.Equal(t, 1, f.cache.invalidated)
}

func TestSubscribe(t *testing.T) {
	full := event(2, "2025-03-10", "", "")
	full.MaxNumParticipants = 1
	full.RegisteredIDs = []int64{9}

	canceled := event(3, "2025-03-10", "", "")
	canceled.MaxNumParticipants = 5
	canceled.Canceled = true

	open := event(1, "2025-03-10", "", "")
	open.MaxNumParticipants = 2
	open.RegisteredIDs = []int64{9}

	f := newFixture(open, full, canceled)
	ctx := context.Background()

	assert.ErrorIs(t, f.service.Subscribe(ctx, 5, 2), model.ErrEventFull)
	assert.ErrorIs(t, f.service.Subscribe(ctx, 5, 3), model.ErrEventCanceled)
	assert.ErrorIs(t, f.service.Subscribe(ctx, 9, 1), model.ErrAlreadySubscribed)
	assert.ErrorIs(t, f.service.Subscribe(ctx, 5, 42), model.ErrNoRecord)

	require.NoError(t, f.service.Subscribe(ctx, 5, 1))
	assert.Equal(t, []int64{9, 5}, f.repo.events[1].RegisteredIDs)
	assert.Contains(t, f.repo.locked, int64(1))
	assert.Equal(t, 1, f.cache.invalidated)

	assert.ErrorIs(t, f.service.Subscribe(ctx, 6, 1), model.ErrEventFull)
}

func TestUnsubscribe(t *testing.T) {
	e := event(1, "2025-03-10", "", "")
	e.MaxNumParticipants = 2
	e.RegisteredIDs = []int64{9}
	f := newFixture(e)
	ctx := context.Background()

	assert.ErrorIs(t, f.service.Unsubscribe(ctx, 5, 1), model.ErrNotSubscribed)

	require.NoError(t, f.service.Unsubscribe(ctx, 9, 1))
	assert.Empty(t, f.repo.events[1].RegisteredIDs)
	assert.Equal(t, 1, f.cache.invalidated)
}

func TestListOwnAndRegistered(t *testing.T) {
	a := owned(event(1, "2025-03-10", "", ""), 7)
	b := owned(event(2, "2025-03-05", "", ""), 7)
	c := owned(event(3, "2025-03-06", "", ""), 8)
	c.RegisteredIDs = []int64{7}
	f := newFixture(a, b, c)
	ctx := context.Background()

	own, err := f.service.ListOwnEvents(ctx, 7, refNow)
	require.NoError(t, err)
	assert.Equal(t, []int64{2, 1}, ids(own))

	registered, err := f.service.ListRegisteredEvents(ctx, 7, refNow)
	require.NoError(t, err)
	assert.Equal(t, []int64{3}, ids(registered))
}

func TestEditable(t *testing.T) {
	assert.True(t, Editable(event(1, "2025-03-03", "", ""), refNow))
	assert.False(t, Editable(event(1, "2025-03-02", "", ""), refNow))
	assert.False(t, Editable(event(1, "bad", "", ""), refNow))

	canceled := event(1, "2025-04-01", "", "")
	canceled.Canceled = true
	assert.False(t, Editable(canceled, refNow))
}
