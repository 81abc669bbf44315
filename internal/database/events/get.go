package events

import (
	"context"
	"errors"
	"fmt"

	"github.com/Bourichi-Taha/Everlasting-client/internal/database"
	"github.com/Bourichi-Taha/Everlasting-client/internal/model"
	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v4"
)

func (*Repository) GetEventByID(ctx context.Context, q database.Queryable, id int64) (*model.Event, error) {
	qb := baseQuery.
		Where(sq.Eq{"e.id": id})

	dto := &eventDTO{}
	if err := q.Get(ctx, dto, qb); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrNoRecord
		}
		return nil, fmt.Errorf("SQL request: %w", err)
	}

	return mapToEvent(dto), nil
}

func (*Repository) GetEvents(ctx context.Context, q database.Queryable, filter model.EventsFilter) ([]*model.Event, error) {
	qb := baseQuery.
		OrderBy("e.date", "e.id")

	if filter.OwnerID != 0 {
		qb = qb.Where(sq.Eq{"e.owner_id": filter.OwnerID})
	}

	if filter.RegisteredID != 0 {
		qb = qb.Where(sq.Expr(
			"e.id IN (SELECT event_id FROM "+database.RegistrationsTable+" WHERE user_id = ?)",
			filter.RegisteredID,
		))
	}

	var dtos []*eventDTO
	if err := q.Select(ctx, &dtos, qb); err != nil {
		return nil, fmt.Errorf("SQL request: %w", err)
	}

	res := make([]*model.Event, len(dtos))
	for i, d := range dtos {
		res[i] = mapToEvent(d)
	}

	return res, nil
}

// LockEvent takes a row lock on the event until the transaction ends.
func (*Repository) LockEvent(ctx context.Context, q database.Queryable, id int64) error {
	qb := database.PSQL.
		Select("id").
		From(database.EventsTable).
		Where(sq.Eq{"id": id}).
		Suffix("FOR UPDATE")

	var locked int64
	if err := q.Get(ctx, &locked, qb); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.ErrNoRecord
		}
		return fmt.Errorf("SQL request: %w", err)
	}

	return nil
}
