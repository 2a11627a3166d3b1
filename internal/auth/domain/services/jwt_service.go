package services

import (
	"errors"
	"time"

	"newshub/internal/auth/domain/entities"
)

// JWTErrors содержит низкоуровневые ошибки кодека JWT.
var (
	ErrInvalidJWTToken    = errors.New("invalid JWT token")
	ErrExpiredJWTToken    = errors.New("JWT token has expired")
	ErrGeneratingJWTToken = errors.New("failed to generate JWT token")
)

// TokenType разделяет назначение токена на уровне claims.
// Токен одного типа не принимается на пути проверки другого.
type TokenType string

// Поддерживаемые типы токенов.
const (
	TokenTypeAccess  TokenType = "access"
	TokenTypeRefresh TokenType = "refresh"
)

// JWTConfig содержит настройки кодека JWT.
type JWTConfig struct {
	SecretKey       []byte
	AccessTokenTTL  time.Duration
	RefreshTokenTTL time.Duration
}

// JWTClaims определяет доменную структуру данных токена.
// Refresh-токен несет только субъект, access-токен - субъект, роль и jti.
type JWTClaims struct {
	SubjectID string
	Role      entities.Role
	TokenID   string
	TokenType TokenType
	IssuedAt  time.Time
	ExpiresAt time.Time
}
