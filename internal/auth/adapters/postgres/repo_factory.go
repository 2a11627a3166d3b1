package postgres

import (
	"newshub/internal/auth/ports/repositories"
)

// RepositoryFactory создает репозитории для работы с PostgreSQL.
type RepositoryFactory struct {
	userRepo repositories.UserRepository
}

// NewRepositoryFactory создает новую фабрику репозиториев.
func NewRepositoryFactory(pool PgxPoolInterface) *RepositoryFactory {
	return &RepositoryFactory{
		userRepo: NewUserRepository(pool),
	}
}

// UserRepository возвращает репозиторий учетных записей.
func (f *RepositoryFactory) UserRepository() repositories.UserRepository {
	return f.userRepo
}
