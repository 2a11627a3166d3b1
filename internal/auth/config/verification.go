package config

import "time"

// VerificationConfig содержит настройки кодов подтверждения email.
type VerificationConfig struct {
	CodeLength int    `yaml:"code_length" env:"AUTH_VERIFICATION_CODE_LENGTH" env-default:"6"`
	CodeTTL    string `yaml:"code_ttl" env:"AUTH_VERIFICATION_CODE_TTL" env-default:"5m"`
}

// GetCodeTTL возвращает время жизни кода подтверждения.
func (c *VerificationConfig) GetCodeTTL() time.Duration {
	duration, err := time.ParseDuration(c.CodeTTL)
	if err != nil {
		return 5 * time.Minute
	}
	return duration
}
