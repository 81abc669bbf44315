package events

import (
	"context"
	"fmt"

	"github.com/Bourichi-Taha/Everlasting-client/internal/database"
	"github.com/Bourichi-Taha/Everlasting-client/internal/model"
	"github.com/Bourichi-Taha/Everlasting-client/internal/pkg/datetime"
	sq "github.com/Masterminds/squirrel"
)

func (*Repository) UpdateEvent(ctx context.Context, q database.Queryable, id int64, event *model.EventCreate) error {
	date, err := datetime.ParseTimestamp(event.Date)
	if err != nil {
		return err
	}

	qb := database.PSQL.
		Update(database.EventsTable).
		SetMap(map[string]interface{}{
			"name":                 event.Name,
			"description":          event.Description,
			"max_num_participants": event.MaxNumParticipants,
			"date":                 date,
			"start_time":           event.StartTime,
			"end_time":             event.EndTime,
			"duration":             event.Duration,
			"image_path":           event.ImagePath,
			"category_id":          event.CategoryID,
		}).
		Where(sq.Eq{"id": id})

	return execOne(ctx, q, qb)
}

// CancelEvent is a soft delete: the row stays and is reported as canceled.
func (*Repository) CancelEvent(ctx context.Context, q database.Queryable, id int64) error {
	qb := database.PSQL.
		Update(database.EventsTable).
		Set("canceled", true).
		Where(sq.Eq{"id": id})

	return execOne(ctx, q, qb)
}

func execOne(ctx context.Context, q database.Queryable, qb sq.Sqlizer) error {
	tag, err := q.Exec(ctx, qb)
	if err != nil {
		return fmt.Errorf("SQL request: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return model.ErrNoRecord
	}

	return nil
}
