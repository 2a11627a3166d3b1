package services

import "context"

// PasswordService определяет операции одностороннего хэширования пароля.
type PasswordService interface {
	Hash(ctx context.Context, password string) (string, error)

	Verify(ctx context.Context, password, hash string) (bool, error)
}
