package services

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"

	svc "newshub/internal/auth/ports/services"
)

const errMsgFailedToGenerateCode = "failed to generate verification code"

// ServiceCode реализует интерфейс CodeGenerator на криптографически
// стойком источнике случайности с равномерным распределением.
type ServiceCode struct {
	length int
	bound  *big.Int
}

// NewCodeGenerator создает генератор числовых кодов фиксированной длины.
func NewCodeGenerator(length int) svc.CodeGenerator {
	bound := big.NewInt(10)
	bound.Exp(bound, big.NewInt(int64(length)), nil)
	return &ServiceCode{length: length, bound: bound}
}

// Generate возвращает числовой код фиксированной длины с ведущими нулями.
func (s *ServiceCode) Generate(_ context.Context) (string, error) {
	n, err := rand.Int(rand.Reader, s.bound)
	if err != nil {
		return "", fmt.Errorf("%s: %w", errMsgFailedToGenerateCode, err)
	}

	return fmt.Sprintf("%0*d", s.length, n), nil
}
