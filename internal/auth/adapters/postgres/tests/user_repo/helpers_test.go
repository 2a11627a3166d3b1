package userrepo_test

import (
	"errors"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"

	"newshub/internal/auth/domain/entities"
)

var errDatabaseConnection = errors.New("database connection error")

var userColumns = []string{
	"id", "account_id", "email", "nickname", "display_name",
	"password_hash", "role", "gender", "birth_date", "created_at", "updated_at",
}

func newTestUser() entities.User {
	now := time.Now().UTC().Truncate(time.Microsecond)
	return entities.User{
		ID:           "test-user-id",
		AccountID:    "alice01",
		Email:        "alice@example.com",
		Nickname:     "alice",
		DisplayName:  "Alice",
		PasswordHash: "hashed_password",
		Role:         entities.RoleUser,
		Gender:       "",
		BirthDate:    nil,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func userRows(user entities.User) *pgxmock.Rows {
	return pgxmock.NewRows(userColumns).
		AddRow(user.ID, user.AccountID, user.Email, user.Nickname, user.DisplayName,
			user.PasswordHash, user.Role, user.Gender, user.BirthDate, user.CreatedAt, user.UpdatedAt)
}

func assertUserEquals(t *testing.T, expected *entities.User, actual *entities.User) {
	t.Helper()

	assert.Equal(t, expected.ID, actual.ID)
	assert.Equal(t, expected.AccountID, actual.AccountID)
	assert.Equal(t, expected.Email, actual.Email)
	assert.Equal(t, expected.Nickname, actual.Nickname)
	assert.Equal(t, expected.DisplayName, actual.DisplayName)
	assert.Equal(t, expected.PasswordHash, actual.PasswordHash)
	assert.Equal(t, expected.Role, actual.Role)
	assert.Equal(t, expected.CreatedAt, actual.CreatedAt)
	assert.Equal(t, expected.UpdatedAt, actual.UpdatedAt)
}
