package model

type UserCreate struct {
	Username     string
	Email        string
	PasswordHash []byte
}

type User struct {
	ID int64
	UserCreate
}

type Category struct {
	ID   int64
	Name string
}
