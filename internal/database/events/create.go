package events

import (
	"context"
	"fmt"

	"github.com/Bourichi-Taha/Everlasting-client/internal/database"
	"github.com/Bourichi-Taha/Everlasting-client/internal/model"
	"github.com/Bourichi-Taha/Everlasting-client/internal/pkg/datetime"
)

func (*Repository) CreateEvent(ctx context.Context, q database.Queryable, ownerID int64, event *model.EventCreate) (int64, error) {
	date, err := datetime.ParseTimestamp(event.Date)
	if err != nil {
		return 0, err
	}

	qb := database.PSQL.
		Insert(database.EventsTable).
		Columns(
			"name",
			"description",
			"max_num_participants",
			"date",
			"start_time",
			"end_time",
			"duration",
			"image_path",
			"owner_id",
			"category_id",
			"location_id",
		).
		Values(
			event.Name,
			event.Description,
			event.MaxNumParticipants,
			date,
			event.StartTime,
			event.EndTime,
			event.Duration,
			event.ImagePath,
			ownerID,
			event.CategoryID,
			event.Location.ID,
		).
		Suffix("returning id")

	var id int64
	if err := q.Get(ctx, &id, qb); err != nil {
		return 0, fmt.Errorf("SQL request: %w", err)
	}

	return id, nil
}
