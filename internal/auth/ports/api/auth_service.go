package api

import (
	"context"
	"time"

	"newshub/internal/auth/domain/services"
)

// SignUpInput содержит данные регистрации нового аккаунта.
type SignUpInput struct {
	AccountID   string
	Password    string
	DisplayName string
	Nickname    string
	Email       string
	Gender      string
	BirthDate   *time.Time
}

// AuthUseCase определяет основной порт операций аутентификации
// и жизненного цикла токенов сессии.
type AuthUseCase interface {
	SignUp(ctx context.Context, input SignUpInput) error

	SignIn(ctx context.Context, accountID, password string) (*services.TokenPair, error)

	RefreshTokens(ctx context.Context, refreshToken string) (*services.TokenPair, error)

	Logout(ctx context.Context, accessToken string) error

	ValidateAccessToken(ctx context.Context, accessToken string) (*services.TokenInfo, error)

	DeleteAccount(ctx context.Context, subjectID string) error

	IssueVerificationCode(ctx context.Context, email string) (string, error)

	ConfirmVerificationCode(ctx context.Context, email, code string) error
}
