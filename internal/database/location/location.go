package location

import (
	"context"
	"fmt"

	"github.com/Bourichi-Taha/Everlasting-client/internal/database"
	"github.com/Bourichi-Taha/Everlasting-client/internal/model"
	sq "github.com/Masterminds/squirrel"
)

type Repository struct{}

func NewRepository() *Repository {
	return &Repository{}
}

func (*Repository) CreateLocation(ctx context.Context, q database.Queryable, location *model.Location) (int64, error) {
	qb := database.PSQL.
		Insert(database.LocationsTable).
		Columns("country", "state_province", "city", "address", "postal_code").
		Values(
			location.Country,
			location.StateProvince,
			location.City,
			location.Address,
			location.PostalCode,
		).
		Suffix("returning id")

	var id int64
	if err := q.Get(ctx, &id, qb); err != nil {
		return 0, fmt.Errorf("SQL request: %w", err)
	}

	return id, nil
}

func (*Repository) UpdateLocation(ctx context.Context, q database.Queryable, location *model.Location) error {
	qb := database.PSQL.
		Update(database.LocationsTable).
		SetMap(map[string]interface{}{
			"country":        location.Country,
			"state_province": location.StateProvince,
			"city":           location.City,
			"address":        location.Address,
			"postal_code":    location.PostalCode,
		}).
		Where(sq.Eq{"id": location.ID})

	tag, err := q.Exec(ctx, qb)
	if err != nil {
		return fmt.Errorf("SQL request: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrNoRecord
	}

	return nil
}
