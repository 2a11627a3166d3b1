package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"

	"newshub/internal/auth/domain/entities"
	"newshub/internal/auth/domain/services"
	"newshub/internal/auth/ports/repositories"
	"newshub/pkg/logger"
)

// PgxPoolInterface описывает используемое подмножество pgxpool.Pool.
type PgxPoolInterface interface {
	QueryRow(ctx context.Context, query string, args ...interface{}) pgx.Row
	Exec(ctx context.Context, query string, args ...interface{}) (pgconn.CommandTag, error)
	Query(ctx context.Context, query string, args ...interface{}) (pgx.Rows, error)
	Begin(ctx context.Context) (pgx.Tx, error)
	Close()
}

const userColumns = "id, account_id, email, nickname, display_name, password_hash, role, gender, birth_date, created_at, updated_at"

// UserRepository реализует интерфейс repositories.UserRepository для работы с Postgres.
type UserRepository struct {
	pool PgxPoolInterface
}

// NewUserRepository создает новый экземпляр репозитория учетных записей.
func NewUserRepository(pool PgxPoolInterface) repositories.UserRepository {
	return &UserRepository{pool: pool}
}

func scanUser(row pgx.Row) (*entities.User, error) {
	var user entities.User
	err := row.Scan(
		&user.ID,
		&user.AccountID,
		&user.Email,
		&user.Nickname,
		&user.DisplayName,
		&user.PasswordHash,
		&user.Role,
		&user.Gender,
		&user.BirthDate,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByID находит учетную запись по внутреннему ID.
func (r *UserRepository) FindByID(ctx context.Context, id string) (*entities.User, error) {
	log := logger.Log(ctx).With(zap.String("repository", "user"), zap.String("method", "FindByID"))

	query := `
        SELECT ` + userColumns + `
        FROM users
        WHERE id = $1
    `

	user, err := scanUser(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Debug(ctx, "user not found", zap.String("id", id))
			return nil, services.ErrUserNotFound
		}
		log.Error(ctx, "error finding user by id", zap.Error(err))
		return nil, fmt.Errorf("error querying user by id: %w", err)
	}

	return user, nil
}

// FindByAccountID находит учетную запись по идентификатору аккаунта.
func (r *UserRepository) FindByAccountID(ctx context.Context, accountID string) (*entities.User, error) {
	log := logger.Log(ctx).With(zap.String("repository", "user"), zap.String("method", "FindByAccountID"))

	query := `
        SELECT ` + userColumns + `
        FROM users
        WHERE account_id = $1
    `

	user, err := scanUser(r.pool.QueryRow(ctx, query, accountID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Debug(ctx, "user not found", zap.String("accountID", accountID))
			return nil, services.ErrUserNotFound
		}
		log.Error(ctx, "error finding user by account id", zap.Error(err))
		return nil, fmt.Errorf("error querying user by account id: %w", err)
	}

	return user, nil
}

// ExistsByAccountID проверяет занятость идентификатора аккаунта.
func (r *UserRepository) ExistsByAccountID(ctx context.Context, accountID string) (bool, error) {
	return r.exists(ctx, "ExistsByAccountID", "account_id", accountID)
}

// ExistsByEmail проверяет занятость email.
func (r *UserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return r.exists(ctx, "ExistsByEmail", "email", email)
}

// ExistsByNickname проверяет занятость псевдонима.
func (r *UserRepository) ExistsByNickname(ctx context.Context, nickname string) (bool, error) {
	return r.exists(ctx, "ExistsByNickname", "nickname", nickname)
}

func (r *UserRepository) exists(ctx context.Context, method, column, value string) (bool, error) {
	log := logger.Log(ctx).With(zap.String("repository", "user"), zap.String("method", method))

	query := fmt.Sprintf(`
        SELECT EXISTS (
            SELECT 1 FROM users WHERE %s = $1
        )
    `, column)

	var exists bool
	if err := r.pool.QueryRow(ctx, query, value).Scan(&exists); err != nil {
		log.Error(ctx, "error checking user existence", zap.Error(err), zap.String("column", column))
		return false, fmt.Errorf("error checking user existence by %s: %w", column, err)
	}

	return exists, nil
}

// Create создает новую учетную запись.
func (r *UserRepository) Create(ctx context.Context, user *entities.User) (*entities.User, error) {
	log := logger.Log(ctx).With(zap.String("repository", "user"), zap.String("method", "Create"))

	query := `
        INSERT INTO users (account_id, email, nickname, display_name, password_hash, role, gender, birth_date)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
        RETURNING ` + userColumns + `
    `

	createdUser, err := scanUser(r.pool.QueryRow(ctx, query,
		user.AccountID,
		user.Email,
		user.Nickname,
		user.DisplayName,
		user.PasswordHash,
		user.Role,
		user.Gender,
		user.BirthDate,
	))
	if err != nil {
		log.Error(ctx, "error creating user", zap.Error(err))
		return nil, fmt.Errorf("error creating user: %w", err)
	}

	return createdUser, nil
}

// Update обновляет учетную запись, в том числе хэш пароля при его сбросе.
func (r *UserRepository) Update(ctx context.Context, user *entities.User) (*entities.User, error) {
	log := logger.Log(ctx).With(zap.String("repository", "user"), zap.String("method", "Update"))

	query := `
        UPDATE users
        SET email = $2, nickname = $3, display_name = $4, password_hash = $5, role = $6, gender = $7, birth_date = $8, updated_at = $9
        WHERE id = $1
        RETURNING ` + userColumns + `
    `

	now := time.Now().UTC()

	updatedUser, err := scanUser(r.pool.QueryRow(ctx, query,
		user.ID,
		user.Email,
		user.Nickname,
		user.DisplayName,
		user.PasswordHash,
		user.Role,
		user.Gender,
		user.BirthDate,
		now,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Debug(ctx, "user not found for update", zap.String("id", user.ID))
			return nil, services.ErrUserNotFound
		}
		log.Error(ctx, "error updating user", zap.Error(err))
		return nil, fmt.Errorf("error updating user: %w", err)
	}

	return updatedUser, nil
}

// Delete удаляет учетную запись по ID.
func (r *UserRepository) Delete(ctx context.Context, id string) error {
	log := logger.Log(ctx).With(zap.String("repository", "user"), zap.String("method", "Delete"))

	query := `
        DELETE FROM users
        WHERE id = $1
    `

	result, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		log.Error(ctx, "error deleting user", zap.Error(err))
		return fmt.Errorf("error deleting user: %w", err)
	}

	if result.RowsAffected() == 0 {
		log.Debug(ctx, "user not found for deletion", zap.String("id", id))
		return services.ErrUserNotFound
	}

	return nil
}
