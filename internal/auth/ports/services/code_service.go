package services

import "context"

// CodeGenerator определяет источник кодов подтверждения фиксированной длины.
type CodeGenerator interface {
	Generate(ctx context.Context) (string, error)
}
