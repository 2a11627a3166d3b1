package services

import (
	"time"

	"newshub/internal/auth/domain/entities"
)

// TokenPair представляет пару токенов аутентификации.
// Сервис не хранит пару после выдачи, только производное состояние сессии.
type TokenPair struct {
	UserID       string
	Nickname     string
	AccessToken  string
	RefreshToken string
	ExpiresAt    time.Time
}

// TokenInfo - декодированное представление claims токена.
type TokenInfo struct {
	SubjectID string
	Role      entities.Role
	TokenID   string
	ExpiresAt time.Time
}

// NewTokenInfo создает TokenInfo. Пустой subject недопустим.
func NewTokenInfo(subjectID string, role entities.Role, tokenID string, expiresAt time.Time) (*TokenInfo, error) {
	if subjectID == "" {
		return nil, ErrInvalidToken
	}
	return &TokenInfo{
		SubjectID: subjectID,
		Role:      role,
		TokenID:   tokenID,
		ExpiresAt: expiresAt,
	}, nil
}

// Remaining возвращает оставшееся время жизни токена.
// Нулевое время истечения означает "уже истек".
func (t *TokenInfo) Remaining() time.Duration {
	if t.ExpiresAt.IsZero() {
		return 0
	}
	return time.Until(t.ExpiresAt)
}

// IsExpired сообщает, истек ли токен на момент проверки.
func (t *TokenInfo) IsExpired() bool {
	return t.Remaining() <= 0
}
