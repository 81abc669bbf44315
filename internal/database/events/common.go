package events

import (
	"github.com/Bourichi-Taha/Everlasting-client/internal/database"
)

type Repository struct{}

func NewRepository() *Repository {
	return &Repository{}
}

var baseQuery = database.PSQL.
	Select(
		"e.id",
		"e.name",
		"e.description",
		"e.max_num_participants",
		"to_char(e.date, 'YYYY-MM-DD') AS date",
		"e.start_time",
		"e.end_time",
		"e.duration",
		"e.image_path",
		"e.canceled",
		"e.owner_id",
		"u.username AS owner_name",
		"e.category_id",
		"c.name AS category_name",
		"l.id AS location_id",
		"l.country",
		"l.state_province",
		"l.city",
		"l.address",
		"l.postal_code",
		"COALESCE(array_agg(r.user_id ORDER BY r.user_id) FILTER (WHERE r.user_id IS NOT NULL), '{}') AS registered_ids",
	).
	From(database.EventsTable + " e").
	Join(database.UsersTable + " u ON u.id = e.owner_id").
	Join(database.CategoriesTable + " c ON c.id = e.category_id").
	Join(database.LocationsTable + " l ON l.id = e.location_id").
	LeftJoin(database.RegistrationsTable + " r ON r.event_id = e.id").
	GroupBy("e.id", "u.username", "c.name", "l.id")
