package grpc

import (
	"context"
	"strings"

	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"newshub/internal/auth/domain/services"
	"newshub/internal/auth/ports/api"
	"newshub/pkg/logger"
)

// Константы для логирования.
const (
	LogAuthInterceptor = "auth interceptor"

	ErrorNoMetadata         = "no metadata provided"
	ErrorNoAuthHeader       = "no authorization header provided"
	ErrorInvalidTokenFormat = "invalid token format"
	ErrorTokenRejected      = "access token rejected"
)

const bearerPrefix = "Bearer "

// tokenInfoKeyType - тип ключа контекста для предотвращения коллизий.
type tokenInfoKeyType struct{}

var tokenInfoKey = tokenInfoKeyType{}

// TokenInfoFromContext извлекает проверенные claims запроса из контекста.
func TokenInfoFromContext(ctx context.Context) (*services.TokenInfo, bool) {
	info, ok := ctx.Value(tokenInfoKey).(*services.TokenInfo)
	return info, ok
}

// NewAuthInterceptor создает перехватчик, проверяющий bearer-токен один раз
// на запрос и передающий субъект и роль дальше по цепочке через контекст.
// Методы из skipMethods (например, health check) пропускаются без проверки.
func NewAuthInterceptor(authUseCase api.AuthUseCase, skipMethods ...string) grpc.UnaryServerInterceptor {
	skip := make(map[string]struct{}, len(skipMethods))
	for _, method := range skipMethods {
		skip[method] = struct{}{}
	}

	return func(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
		if _, ok := skip[info.FullMethod]; ok {
			return handler(ctx, req)
		}

		log := logger.Log(ctx).With(zap.String("interceptor", "auth"), zap.String("grpcMethod", info.FullMethod))
		log.Debug(ctx, LogAuthInterceptor)

		md, ok := metadata.FromIncomingContext(ctx)
		if !ok {
			log.Debug(ctx, ErrorNoMetadata)
			return nil, status.Error(codes.Unauthenticated, ErrorNoMetadata)
		}

		values := md.Get("authorization")
		if len(values) == 0 {
			log.Debug(ctx, ErrorNoAuthHeader)
			return nil, status.Error(codes.Unauthenticated, ErrorNoAuthHeader)
		}

		authHeader := values[0]
		if !strings.HasPrefix(authHeader, bearerPrefix) {
			log.Debug(ctx, ErrorInvalidTokenFormat)
			return nil, status.Error(codes.Unauthenticated, ErrorInvalidTokenFormat)
		}

		tokenInfo, err := authUseCase.ValidateAccessToken(ctx, strings.TrimPrefix(authHeader, bearerPrefix))
		if err != nil {
			log.Debug(ctx, ErrorTokenRejected, zap.Error(err))
			return nil, status.Error(codes.Unauthenticated, ErrorTokenRejected)
		}

		return handler(context.WithValue(ctx, tokenInfoKey, tokenInfo), req)
	}
}
