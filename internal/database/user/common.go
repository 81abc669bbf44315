package user

import (
	"github.com/Bourichi-Taha/Everlasting-client/internal/database"
)

type Repository struct{}

func NewRepository() *Repository {
	return &Repository{}
}

var baseQuery = database.PSQL.
	Select(
		"id",
		"username",
		"email",
		"password_hash",
	).
	From(database.UsersTable)
