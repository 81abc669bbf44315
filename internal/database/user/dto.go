package user

import (
	"github.com/Bourichi-Taha/Everlasting-client/internal/model"
)

type userDTO struct {
	ID           int64
	Username     string
	Email        string
	PasswordHash []byte
}

func mapToUser(dto *userDTO) *model.User {
	return &model.User{
		ID: dto.ID,
		UserCreate: model.UserCreate{
			Username:     dto.Username,
			Email:        dto.Email,
			PasswordHash: dto.PasswordHash,
		},
	}
}
