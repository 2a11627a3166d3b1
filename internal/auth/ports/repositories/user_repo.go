package repositories

import (
	"context"

	"newshub/internal/auth/domain/entities"
)

// UserRepository определяет интерфейс хранилища учетных записей.
type UserRepository interface {
	Create(ctx context.Context, user *entities.User) (*entities.User, error)

	FindByID(ctx context.Context, id string) (*entities.User, error)

	FindByAccountID(ctx context.Context, accountID string) (*entities.User, error)

	ExistsByAccountID(ctx context.Context, accountID string) (bool, error)

	ExistsByEmail(ctx context.Context, email string) (bool, error)

	ExistsByNickname(ctx context.Context, nickname string) (bool, error)

	Update(ctx context.Context, user *entities.User) (*entities.User, error)

	Delete(ctx context.Context, id string) error
}
