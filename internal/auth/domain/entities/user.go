package entities

import (
	"errors"
	"time"
)

// Ошибки валидации доменной сущности пользователя.
var (
	ErrEmptyAccountID = errors.New("account ID cannot be empty")
	ErrEmptyNickname  = errors.New("nickname cannot be empty")
	ErrInvalidEmail   = errors.New("invalid email format")
	ErrUnknownRole    = errors.New("unknown role")
)

// Role - плоский строковый тег роли пользователя.
type Role string

// Поддерживаемые роли.
const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

// IsValid проверяет, что роль входит в число поддерживаемых.
func (r Role) IsValid() bool {
	return r == RoleUser || r == RoleAdmin
}

// User представляет основную сущность аккаунта.
type User struct {
	ID           string
	AccountID    string
	Email        string
	Nickname     string
	DisplayName  string
	PasswordHash string
	Role         Role
	Gender       string
	BirthDate    *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
