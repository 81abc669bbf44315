package user

import (
	"context"
	"errors"
	"fmt"

	"github.com/Bourichi-Taha/Everlasting-client/internal/database"
	"github.com/Bourichi-Taha/Everlasting-client/internal/model"
	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v4"
)

// GetUserByEmail expects an already lowercased email.
func (*Repository) GetUserByEmail(ctx context.Context, q database.Queryable, email string) (*model.User, error) {
	user, err := getUser(ctx, q, sq.Eq{"email": email})
	if err != nil {
		return nil, fmt.Errorf("user.GetUserByEmail: %w", err)
	}

	return user, nil
}

func (*Repository) GetUserByID(ctx context.Context, q database.Queryable, id int64) (*model.User, error) {
	user, err := getUser(ctx, q, sq.Eq{"id": id})
	if err != nil {
		return nil, fmt.Errorf("user.GetUserByID: %w", err)
	}

	return user, nil
}

func getUser(ctx context.Context, q database.Queryable, predicate sq.Eq) (*model.User, error) {
	dto := &userDTO{}
	if err := q.Get(ctx, dto, baseQuery.Where(predicate).Limit(1)); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrNoRecord
		}
		return nil, fmt.Errorf("SQL request: %w", err)
	}

	return mapToUser(dto), nil
}
