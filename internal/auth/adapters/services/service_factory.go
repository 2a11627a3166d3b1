// Package services предоставляет фабрику для создания и доступа к сервисам
// аутентификации: хэширование паролей, кодек JWT и генерация кодов подтверждения.
package services

import (
	"time"

	"newshub/internal/auth/ports/services"
)

// ServiceFactory создает все необходимые сервисы для аутентификации.
type ServiceFactory struct {
	passwordService services.PasswordService
	tokenService    services.TokenService
	codeGenerator   services.CodeGenerator
}

// NewServiceFactory создает новую фабрику сервисов.
func NewServiceFactory(
	jwtSecretKey string,
	accessTokenTTL, refreshTokenTTL time.Duration,
	bcryptCost int,
	codeLength int,
) *ServiceFactory {
	return &ServiceFactory{
		passwordService: NewBcrypt(bcryptCost),
		tokenService:    NewJWT(jwtSecretKey, accessTokenTTL, refreshTokenTTL),
		codeGenerator:   NewCodeGenerator(codeLength),
	}
}

// PasswordService возвращает сервис для работы с паролями.
func (f *ServiceFactory) PasswordService() services.PasswordService {
	return f.passwordService
}

// TokenService возвращает кодек токенов.
func (f *ServiceFactory) TokenService() services.TokenService {
	return f.tokenService
}

// CodeGenerator возвращает генератор кодов подтверждения.
func (f *ServiceFactory) CodeGenerator() services.CodeGenerator {
	return f.codeGenerator
}
