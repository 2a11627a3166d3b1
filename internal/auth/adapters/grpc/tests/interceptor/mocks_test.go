package interceptor_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"newshub/internal/auth/domain/services"
	"newshub/internal/auth/ports/api"
)

type mockAuthUseCase struct {
	mock.Mock
}

func (m *mockAuthUseCase) SignUp(ctx context.Context, input api.SignUpInput) error {
	args := m.Called(ctx, input)
	return args.Error(0)
}

func (m *mockAuthUseCase) SignIn(ctx context.Context, accountID, password string) (*services.TokenPair, error) {
	args := m.Called(ctx, accountID, password)
	pair, _ := args.Get(0).(*services.TokenPair)
	return pair, args.Error(1)
}

func (m *mockAuthUseCase) RefreshTokens(ctx context.Context, refreshToken string) (*services.TokenPair, error) {
	args := m.Called(ctx, refreshToken)
	pair, _ := args.Get(0).(*services.TokenPair)
	return pair, args.Error(1)
}

func (m *mockAuthUseCase) Logout(ctx context.Context, accessToken string) error {
	args := m.Called(ctx, accessToken)
	return args.Error(0)
}

func (m *mockAuthUseCase) ValidateAccessToken(ctx context.Context, accessToken string) (*services.TokenInfo, error) {
	args := m.Called(ctx, accessToken)
	info, _ := args.Get(0).(*services.TokenInfo)
	return info, args.Error(1)
}

func (m *mockAuthUseCase) DeleteAccount(ctx context.Context, subjectID string) error {
	args := m.Called(ctx, subjectID)
	return args.Error(0)
}

func (m *mockAuthUseCase) IssueVerificationCode(ctx context.Context, email string) (string, error) {
	args := m.Called(ctx, email)
	return args.String(0), args.Error(1)
}

func (m *mockAuthUseCase) ConfirmVerificationCode(ctx context.Context, email, code string) error {
	args := m.Called(ctx, email, code)
	return args.Error(0)
}
