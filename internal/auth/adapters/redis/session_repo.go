// Package redis содержит реализацию хранилища состояния сессий поверх Redis.
package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"newshub/internal/auth/config"
	"newshub/internal/auth/domain/services"
	"newshub/internal/auth/ports/repositories"
	redisdb "newshub/pkg/db/redis"
	"newshub/pkg/logger"
)

// Префиксы ключей хранилища сессий.
const (
	refreshKeyPrefix   = "refresh:"
	blacklistKeyPrefix = "blacklist:"
	verifyKeyPrefix    = "verify:"

	revokedMarker = "revoked"
)

// Статусы атомарного сравнения-с-удалением записи сессии.
const (
	consumeStatusMissing  = 0
	consumeStatusConsumed = 1
	consumeStatusMismatch = 2
)

// consumeRefreshScript атомарно сравнивает запись сессии с предъявленным
// токеном и удаляет ее только при совпадении.
const consumeRefreshScript = `local v = redis.call('GET', KEYS[1])
if v == false then
  return 0
end
if v == ARGV[1] then
  redis.call('DEL', KEYS[1])
  return 1
end
return 2`

// Константы для логирования.
const (
	LogMethodStoreRefresh   = "StoreRefreshToken"
	LogMethodConsumeRefresh = "ConsumeRefreshToken"
	LogMethodDropRefresh    = "DeleteRefreshToken"
	LogMethodRevoke         = "RevokeAccessToken"
	LogMethodIsRevoked      = "IsAccessTokenRevoked"
	LogMethodStoreCode      = "StoreVerificationCode"
	LogMethodGetCode        = "GetVerificationCode"
	LogMethodDropCode       = "DeleteVerificationCode"
	LogMethodClose          = "Close"

	ErrorFailedToConnect = "failed to connect to redis"
	ErrorFailedToGet     = "failed to get value from redis"
	ErrorFailedToSet     = "failed to set value in redis"
	ErrorFailedToDelete  = "failed to delete value from redis"
	ErrorFailedToConsume = "failed to consume session record in redis"
	ErrorFailedToClose   = "failed to close redis connection"
)

// SessionRepository реализует интерфейс repositories.SessionRepository.
// Истечение записей полностью делегировано нативному TTL Redis,
// фоновых чисток нет.
type SessionRepository struct {
	client *redisdb.Client
}

// NewSessionRepository создает хранилище сессий и проверяет соединение.
func NewSessionRepository(ctx context.Context, cfg *config.RedisConfig) (*SessionRepository, error) {
	client, err := redisdb.NewClient(ctx, &redisdb.Config{
		Host:         cfg.Host,
		Port:         cfg.Port,
		Password:     cfg.Password,
		DB:           cfg.DB,
		PoolSize:     cfg.PoolSize,
		DialTimeout:  cfg.ConnectTimeout,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %w", ErrorFailedToConnect, services.ErrStoreUnavailable, err)
	}

	return &SessionRepository{client: client}, nil
}

// NewSessionRepositoryWithClient создает хранилище поверх готового клиента.
func NewSessionRepositoryWithClient(client *redisdb.Client) repositories.SessionRepository {
	return &SessionRepository{client: client}
}

// StoreRefreshToken атомарно перезаписывает запись сессии субъекта.
// Предыдущий refresh-токен при этом перестает быть действительным.
func (r *SessionRepository) StoreRefreshToken(ctx context.Context, userID, token string, ttl time.Duration) error {
	return r.set(ctx, LogMethodStoreRefresh, refreshKeyPrefix+userID, token, ttl)
}

// ConsumeRefreshToken атомарно сравнивает предъявленный токен с записью
// сессии субъекта и удаляет запись при совпадении. Сравнение и удаление
// выполняются одним серверным скриптом, двум конкурентным обменам одного
// токена не достанется по записи.
func (r *SessionRepository) ConsumeRefreshToken(ctx context.Context, userID, token string) (bool, bool, error) {
	log := logger.Log(ctx).With(zap.String("method", LogMethodConsumeRefresh), zap.String("userID", userID))

	result, err := r.client.Eval(ctx, consumeRefreshScript, []string{refreshKeyPrefix + userID}, token)
	if err != nil {
		log.Error(ctx, ErrorFailedToConsume, zap.Error(err))
		return false, false, fmt.Errorf("%s: %w: %w", ErrorFailedToConsume, services.ErrStoreUnavailable, err)
	}

	status, ok := result.(int64)
	if !ok {
		log.Error(ctx, ErrorFailedToConsume, zap.Any("result", result))
		return false, false, fmt.Errorf("%s: %w: unexpected script result", ErrorFailedToConsume, services.ErrStoreUnavailable)
	}

	switch status {
	case consumeStatusConsumed:
		return true, true, nil
	case consumeStatusMismatch:
		return true, false, nil
	default:
		return false, false, nil
	}
}

// DeleteRefreshToken удаляет запись сессии субъекта.
func (r *SessionRepository) DeleteRefreshToken(ctx context.Context, userID string) error {
	return r.delete(ctx, LogMethodDropRefresh, refreshKeyPrefix+userID)
}

// RevokeAccessToken помечает access-токен отозванным на остаток его жизни.
func (r *SessionRepository) RevokeAccessToken(ctx context.Context, tokenID string, ttl time.Duration) error {
	return r.set(ctx, LogMethodRevoke, blacklistKeyPrefix+tokenID, revokedMarker, ttl)
}

// IsAccessTokenRevoked проверяет наличие токена в списке отозванных.
func (r *SessionRepository) IsAccessTokenRevoked(ctx context.Context, tokenID string) (bool, error) {
	value, err := r.get(ctx, LogMethodIsRevoked, blacklistKeyPrefix+tokenID)
	if err != nil {
		return false, err
	}
	return value != "", nil
}

// StoreVerificationCode перезаписывает невостребованный код для email.
func (r *SessionRepository) StoreVerificationCode(ctx context.Context, email, code string, ttl time.Duration) error {
	return r.set(ctx, LogMethodStoreCode, verifyKeyPrefix+email, code, ttl)
}

// GetVerificationCode возвращает выданный код или пустую строку.
func (r *SessionRepository) GetVerificationCode(ctx context.Context, email string) (string, error) {
	return r.get(ctx, LogMethodGetCode, verifyKeyPrefix+email)
}

// DeleteVerificationCode потребляет код подтверждения.
func (r *SessionRepository) DeleteVerificationCode(ctx context.Context, email string) error {
	return r.delete(ctx, LogMethodDropCode, verifyKeyPrefix+email)
}

// Close закрывает соединение с Redis.
func (r *SessionRepository) Close() error {
	if err := r.client.Close(); err != nil {
		return fmt.Errorf("%s: %w", ErrorFailedToClose, err)
	}
	return nil
}

func (r *SessionRepository) get(ctx context.Context, method, key string) (string, error) {
	log := logger.Log(ctx).With(zap.String("method", method), zap.String("key", key))

	value, err := r.client.Get(ctx, key)
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return "", nil
		}
		log.Error(ctx, ErrorFailedToGet, zap.Error(err))
		return "", fmt.Errorf("%s: %w: %w", ErrorFailedToGet, services.ErrStoreUnavailable, err)
	}

	return value, nil
}

func (r *SessionRepository) set(ctx context.Context, method, key, value string, ttl time.Duration) error {
	log := logger.Log(ctx).With(zap.String("method", method), zap.String("key", key))

	if err := r.client.Set(ctx, key, value, ttl); err != nil {
		log.Error(ctx, ErrorFailedToSet, zap.Error(err))
		return fmt.Errorf("%s: %w: %w", ErrorFailedToSet, services.ErrStoreUnavailable, err)
	}

	return nil
}

func (r *SessionRepository) delete(ctx context.Context, method, key string) error {
	log := logger.Log(ctx).With(zap.String("method", method), zap.String("key", key))

	if err := r.client.Delete(ctx, key); err != nil {
		log.Error(ctx, ErrorFailedToDelete, zap.Error(err))
		return fmt.Errorf("%s: %w: %w", ErrorFailedToDelete, services.ErrStoreUnavailable, err)
	}

	return nil
}
