package repositories

import (
	"context"
	"time"
)

// SessionRepository определяет интерфейс быстрого хранилища состояния сессий
// с истекающими ключами: refresh-токены, черный список access-токенов и
// коды подтверждения email. Каждая операция - атомарная операция хранилища.
type SessionRepository interface {
	StoreRefreshToken(ctx context.Context, userID, token string, ttl time.Duration) error

	// ConsumeRefreshToken атомарно сравнивает предъявленный токен с записью
	// сессии и удаляет запись при совпадении. found сообщает, была ли запись,
	// matched - совпал ли токен; запись удаляется только при matched.
	ConsumeRefreshToken(ctx context.Context, userID, token string) (found bool, matched bool, err error)

	DeleteRefreshToken(ctx context.Context, userID string) error

	RevokeAccessToken(ctx context.Context, tokenID string, ttl time.Duration) error

	IsAccessTokenRevoked(ctx context.Context, tokenID string) (bool, error)

	StoreVerificationCode(ctx context.Context, email, code string, ttl time.Duration) error

	GetVerificationCode(ctx context.Context, email string) (string, error)

	DeleteVerificationCode(ctx context.Context, email string) error
}
