package authusecase_test

import (
	"context"
	"fmt"
	"time"

	"github.com/stretchr/testify/mock"

	"newshub/internal/auth/domain/entities"
	"newshub/internal/auth/domain/services"
)

const (
	ErrCreateUser        = "failed to create user"
	ErrFindUserByID      = "failed to find user by ID"
	ErrFindUserByAccount = "failed to find user by account ID"
	ErrUpdateUser        = "failed to update user"
	ErrDeleteUser        = "error when deleting user"
)

// nolint:gosec
const (
	ErrStoreRefreshToken   = "error when storing refresh token"
	ErrConsumeRefreshToken = "error when consuming refresh token"
	ErrDropRefreshToken    = "error when deleting refresh token"
	ErrRevokeToken         = "error when revoking access token"
	ErrCheckRevocation     = "error when checking revocation"
	ErrStoreCode           = "error when storing verification code"
	ErrGetCode             = "error when reading verification code"
	ErrDropCode            = "error when deleting verification code"
)

type mockUserRepository struct {
	mock.Mock
}

func (m *mockUserRepository) Create(ctx context.Context, user *entities.User) (*entities.User, error) {
	args := m.Called(ctx, user)
	if args.Get(0) == nil {
		err := args.Error(1)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrCreateUser, err)
		}
		return nil, nil
	}
	return args.Get(0).(*entities.User), nil
}

func (m *mockUserRepository) FindByID(ctx context.Context, id string) (*entities.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		err := args.Error(1)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrFindUserByID, err)
		}
		return nil, nil
	}
	return args.Get(0).(*entities.User), nil
}

func (m *mockUserRepository) FindByAccountID(ctx context.Context, accountID string) (*entities.User, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		err := args.Error(1)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrFindUserByAccount, err)
		}
		return nil, nil
	}
	return args.Get(0).(*entities.User), nil
}

func (m *mockUserRepository) ExistsByAccountID(ctx context.Context, accountID string) (bool, error) {
	args := m.Called(ctx, accountID)
	return args.Bool(0), args.Error(1)
}

func (m *mockUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func (m *mockUserRepository) ExistsByNickname(ctx context.Context, nickname string) (bool, error) {
	args := m.Called(ctx, nickname)
	return args.Bool(0), args.Error(1)
}

func (m *mockUserRepository) Update(ctx context.Context, user *entities.User) (*entities.User, error) {
	args := m.Called(ctx, user)
	if args.Get(0) == nil {
		err := args.Error(1)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrUpdateUser, err)
		}
		return nil, nil
	}
	return args.Get(0).(*entities.User), nil
}

func (m *mockUserRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	if err := args.Error(0); err != nil {
		return fmt.Errorf("%s: %w", ErrDeleteUser, err)
	}
	return nil
}

type mockSessionRepository struct {
	mock.Mock
}

func (m *mockSessionRepository) StoreRefreshToken(ctx context.Context, userID, token string, ttl time.Duration) error {
	err := m.Called(ctx, userID, token, ttl).Error(0)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrStoreRefreshToken, err)
	}
	return nil
}

func (m *mockSessionRepository) ConsumeRefreshToken(ctx context.Context, userID, token string) (bool, bool, error) {
	args := m.Called(ctx, userID, token)
	if err := args.Error(2); err != nil {
		return false, false, fmt.Errorf("%s: %w", ErrConsumeRefreshToken, err)
	}
	return args.Bool(0), args.Bool(1), nil
}

func (m *mockSessionRepository) DeleteRefreshToken(ctx context.Context, userID string) error {
	err := m.Called(ctx, userID).Error(0)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrDropRefreshToken, err)
	}
	return nil
}

func (m *mockSessionRepository) RevokeAccessToken(ctx context.Context, tokenID string, ttl time.Duration) error {
	err := m.Called(ctx, tokenID, ttl).Error(0)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrRevokeToken, err)
	}
	return nil
}

func (m *mockSessionRepository) IsAccessTokenRevoked(ctx context.Context, tokenID string) (bool, error) {
	args := m.Called(ctx, tokenID)
	if err := args.Error(1); err != nil {
		return false, fmt.Errorf("%s: %w", ErrCheckRevocation, err)
	}
	return args.Bool(0), nil
}

func (m *mockSessionRepository) StoreVerificationCode(ctx context.Context, email, code string, ttl time.Duration) error {
	err := m.Called(ctx, email, code, ttl).Error(0)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrStoreCode, err)
	}
	return nil
}

func (m *mockSessionRepository) GetVerificationCode(ctx context.Context, email string) (string, error) {
	args := m.Called(ctx, email)
	if err := args.Error(1); err != nil {
		return "", fmt.Errorf("%s: %w", ErrGetCode, err)
	}
	return args.String(0), nil
}

func (m *mockSessionRepository) DeleteVerificationCode(ctx context.Context, email string) error {
	err := m.Called(ctx, email).Error(0)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrDropCode, err)
	}
	return nil
}

type mockPasswordService struct {
	mock.Mock
}

func (m *mockPasswordService) Hash(ctx context.Context, password string) (string, error) {
	args := m.Called(ctx, password)
	return args.String(0), args.Error(1)
}

func (m *mockPasswordService) Verify(ctx context.Context, password, hash string) (bool, error) {
	args := m.Called(ctx, password, hash)
	return args.Bool(0), args.Error(1)
}

type mockTokenService struct {
	mock.Mock
}

func (m *mockTokenService) GenerateAccessToken(ctx context.Context, userID string, role entities.Role) (string, time.Time, error) {
	args := m.Called(ctx, userID, role)
	return args.String(0), args.Get(1).(time.Time), args.Error(2)
}

func (m *mockTokenService) GenerateRefreshToken(ctx context.Context, userID string) (string, time.Time, error) {
	args := m.Called(ctx, userID)
	return args.String(0), args.Get(1).(time.Time), args.Error(2)
}

func (m *mockTokenService) ValidateAccessToken(ctx context.Context, token string) (*services.TokenInfo, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*services.TokenInfo), args.Error(1)
}

func (m *mockTokenService) ValidateRefreshToken(ctx context.Context, token string) (*services.TokenInfo, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*services.TokenInfo), args.Error(1)
}

func (m *mockTokenService) DecodeToken(ctx context.Context, token string) (*services.TokenInfo, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*services.TokenInfo), args.Error(1)
}

type mockCodeGenerator struct {
	mock.Mock
}

func (m *mockCodeGenerator) Generate(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}
