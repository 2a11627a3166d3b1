package services

import (
	"context"
	"time"

	"newshub/internal/auth/domain/entities"
	"newshub/internal/auth/domain/services"
)

// TokenService определяет интерфейс кодека токенов.
type TokenService interface {
	GenerateAccessToken(ctx context.Context, userID string, role entities.Role) (string, time.Time, error)

	GenerateRefreshToken(ctx context.Context, userID string) (string, time.Time, error)

	ValidateAccessToken(ctx context.Context, token string) (*services.TokenInfo, error)

	ValidateRefreshToken(ctx context.Context, token string) (*services.TokenInfo, error)

	// DecodeToken разбирает токен, не проверяя срок действия.
	// Используется при выходе из системы для отзыва уже истекших токенов.
	DecodeToken(ctx context.Context, token string) (*services.TokenInfo, error)
}
