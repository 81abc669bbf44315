package events

import (
	"context"
	"fmt"

	"github.com/Bourichi-Taha/Everlasting-client/internal/database"
	"github.com/Bourichi-Taha/Everlasting-client/internal/model"
	sq "github.com/Masterminds/squirrel"
)

func (*Repository) AddRegistration(ctx context.Context, q database.Queryable, eventID, userID int64) error {
	qb := database.PSQL.
		Insert(database.RegistrationsTable).
		Columns("event_id", "user_id").
		Values(eventID, userID)

	if _, err := q.Exec(ctx, qb); err != nil {
		if database.IsUniqueViolation(err) {
			return model.ErrAlreadyExists
		}
		return fmt.Errorf("SQL request: %w", err)
	}

	return nil
}

func (*Repository) RemoveRegistration(ctx context.Context, q database.Queryable, eventID, userID int64) error {
	qb := database.PSQL.
		Delete(database.RegistrationsTable).
		Where(sq.Eq{"event_id": eventID, "user_id": userID})

	return execOne(ctx, q, qb)
}
