package category

import (
	"context"
	"errors"
	"fmt"

	"github.com/Bourichi-Taha/Everlasting-client/internal/database"
	"github.com/Bourichi-Taha/Everlasting-client/internal/model"
	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v4"
)

type Repository struct{}

func NewRepository() *Repository {
	return &Repository{}
}

type categoryDTO struct {
	ID   int64
	Name string
}

var baseQuery = database.PSQL.
	Select("id", "name").
	From(database.CategoriesTable)

func (*Repository) GetCategories(ctx context.Context, q database.Queryable) ([]*model.Category, error) {
	var dtos []*categoryDTO
	if err := q.Select(ctx, &dtos, baseQuery.OrderBy("name")); err != nil {
		return nil, fmt.Errorf("SQL request: %w", err)
	}

	res := make([]*model.Category, len(dtos))
	for i, d := range dtos {
		res[i] = &model.Category{ID: d.ID, Name: d.Name}
	}

	return res, nil
}

func (*Repository) GetCategoryByID(ctx context.Context, q database.Queryable, id int64) (*model.Category, error) {
	dto := &categoryDTO{}
	if err := q.Get(ctx, dto, baseQuery.Where(sq.Eq{"id": id})); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrNoRecord
		}
		return nil, fmt.Errorf("SQL request: %w", err)
	}

	return &model.Category{ID: dto.ID, Name: dto.Name}, nil
}
