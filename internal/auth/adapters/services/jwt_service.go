package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"newshub/internal/auth/domain/entities"
	"newshub/internal/auth/domain/services"
	svc "newshub/internal/auth/ports/services"
	"newshub/pkg/logger"
)

// Константы для работы с JWT.
const (
	methodGenerateAccessToken  = "GenerateAccessToken"
	methodGenerateRefreshToken = "GenerateRefreshToken"
	methodValidateAccessToken  = "ValidateAccessToken"
	methodValidateRefreshToken = "ValidateRefreshToken"
	methodDecodeToken          = "DecodeToken"
	msgGeneratingAccessToken   = "generating access token"
	msgGeneratingRefreshToken  = "generating refresh token"
	msgValidatingToken         = "validating token"
	msgTokenGenerated          = "token generated successfully"
	msgTokenValidated          = "token validated successfully"
	msgInvalidToken            = "invalid token format"
	msgInvalidClaims           = "invalid token claims"
	msgWrongTokenType          = "token type mismatch"
	msgTokenExpired            = "token has expired"
	msgEmptySecretKey          = "empty secret key provided"
	//nolint:gosec
	errSigningToken = "error signing token"
	//nolint:gosec
	errParsingToken       = "error parsing token"
	errCtxGeneratingToken = "generating token"
	errCtxParsingToken    = "parsing token"
	errCtxValidatingToken = "validating token"
	errCtxDecodingToken   = "decoding token"
)

// ErrInvalidAlgorithm представляет статическую ошибку неверного алгоритма подписи.
var ErrInvalidAlgorithm = errors.New("invalid signing algorithm")

// Claims используется для адаптации между доменной моделью и библиотекой JWT.
type Claims struct {
	SubjectID string `json:"user_id"`
	Role      string `json:"role,omitempty"`
	TokenType string `json:"token_type,omitempty"`
	jwt.RegisteredClaims
}

// ServiceJWT реализует интерфейс TokenService.
type ServiceJWT struct {
	config services.JWTConfig
}

// NewJWT создает новый экземпляр кодека JWT.
func NewJWT(secretKey string, accessTokenTTL, refreshTokenTTL time.Duration) svc.TokenService {
	return &ServiceJWT{
		config: services.JWTConfig{
			SecretKey:       []byte(secretKey),
			AccessTokenTTL:  accessTokenTTL,
			RefreshTokenTTL: refreshTokenTTL,
		},
	}
}

// domainToJWTClaims преобразует доменные claims в формат библиотеки JWT.
func domainToJWTClaims(claims services.JWTClaims) Claims {
	return Claims{
		SubjectID: claims.SubjectID,
		Role:      string(claims.Role),
		TokenType: string(claims.TokenType),
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        claims.TokenID,
			ExpiresAt: jwt.NewNumericDate(claims.ExpiresAt),
			IssuedAt:  jwt.NewNumericDate(claims.IssuedAt),
			Subject:   claims.SubjectID,
		},
	}
}

// jwtToTokenInfo преобразует claims формата библиотеки JWT в TokenInfo.
// Claims с неизвестной ролью отвергаются.
func jwtToTokenInfo(claims *Claims) (*services.TokenInfo, error) {
	role := entities.Role(claims.Role)
	if claims.Role != "" && !role.IsValid() {
		return nil, fmt.Errorf("role %q: %w", claims.Role, entities.ErrUnknownRole)
	}

	var expiresAt time.Time
	if claims.ExpiresAt != nil {
		expiresAt = claims.ExpiresAt.Time
	}

	return services.NewTokenInfo(claims.SubjectID, role, claims.ID, expiresAt)
}

// GenerateAccessToken генерирует access-токен с субъектом, ролью и jti.
func (s *ServiceJWT) GenerateAccessToken(ctx context.Context, userID string, role entities.Role) (string, time.Time, error) {
	log := logger.Log(ctx).With(
		zap.String("method", methodGenerateAccessToken),
		zap.String("userID", userID),
	)
	log.Debug(ctx, msgGeneratingAccessToken)

	now := time.Now()
	expiresAt := now.Add(s.config.AccessTokenTTL)

	return s.sign(ctx, log, services.JWTClaims{
		SubjectID: userID,
		Role:      role,
		TokenID:   uuid.New().String(),
		TokenType: services.TokenTypeAccess,
		IssuedAt:  now,
		ExpiresAt: expiresAt,
	})
}

// GenerateRefreshToken генерирует refresh-токен, несущий только субъект.
func (s *ServiceJWT) GenerateRefreshToken(ctx context.Context, userID string) (string, time.Time, error) {
	log := logger.Log(ctx).With(
		zap.String("method", methodGenerateRefreshToken),
		zap.String("userID", userID),
	)
	log.Debug(ctx, msgGeneratingRefreshToken)

	now := time.Now()
	expiresAt := now.Add(s.config.RefreshTokenTTL)

	return s.sign(ctx, log, services.JWTClaims{
		SubjectID: userID,
		TokenType: services.TokenTypeRefresh,
		IssuedAt:  now,
		ExpiresAt: expiresAt,
	})
}

func (s *ServiceJWT) sign(ctx context.Context, log *logger.Logger, claims services.JWTClaims) (string, time.Time, error) {
	if len(s.config.SecretKey) == 0 {
		log.Error(ctx, msgEmptySecretKey)
		return "", time.Time{}, fmt.Errorf("%s: %w: empty secret key", errCtxGeneratingToken, services.ErrGeneratingJWTToken)
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, domainToJWTClaims(claims))

	tokenString, err := token.SignedString(s.config.SecretKey)
	if err != nil {
		log.Error(ctx, errSigningToken, zap.Error(err))
		return "", time.Time{}, fmt.Errorf("%s: %w: %w", errCtxGeneratingToken, services.ErrGeneratingJWTToken, err)
	}

	log.Debug(ctx, msgTokenGenerated, zap.Time("expiresAt", claims.ExpiresAt))
	return tokenString, claims.ExpiresAt, nil
}

// ValidateAccessToken проверяет подпись, срок действия и тип access-токена.
// Refresh-токен, предъявленный как access-токен, отвергается.
func (s *ServiceJWT) ValidateAccessToken(ctx context.Context, tokenString string) (*services.TokenInfo, error) {
	return s.validate(ctx, methodValidateAccessToken, tokenString, services.TokenTypeAccess)
}

// ValidateRefreshToken проверяет подпись, срок действия и тип refresh-токена.
func (s *ServiceJWT) ValidateRefreshToken(ctx context.Context, tokenString string) (*services.TokenInfo, error) {
	return s.validate(ctx, methodValidateRefreshToken, tokenString, services.TokenTypeRefresh)
}

func (s *ServiceJWT) validate(ctx context.Context, method, tokenString string, want services.TokenType) (*services.TokenInfo, error) {
	log := logger.Log(ctx).With(zap.String("method", method))
	log.Debug(ctx, msgValidatingToken)

	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, s.keyFunc)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			log.Debug(ctx, msgTokenExpired)
			return nil, fmt.Errorf("%s: %w", errCtxValidatingToken, services.ErrExpiredJWTToken)
		}
		log.Debug(ctx, errParsingToken, zap.Error(err))
		return nil, fmt.Errorf("%s: %w: %w", errCtxParsingToken, services.ErrInvalidJWTToken, err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		log.Debug(ctx, msgInvalidToken)
		return nil, fmt.Errorf("%s: %w", errCtxValidatingToken, services.ErrInvalidJWTToken)
	}

	if claims.TokenType != string(want) {
		log.Debug(ctx, msgWrongTokenType, zap.String("tokenType", claims.TokenType))
		return nil, fmt.Errorf("%s: %w: %s", errCtxValidatingToken, services.ErrInvalidJWTToken, msgWrongTokenType)
	}

	info, err := jwtToTokenInfo(claims)
	if err != nil {
		log.Debug(ctx, msgInvalidClaims, zap.Error(err))
		return nil, fmt.Errorf("%s: %w: %w", errCtxValidatingToken, services.ErrInvalidJWTToken, err)
	}

	log.Debug(ctx, msgTokenValidated, zap.String("userID", info.SubjectID))
	return info, nil
}

// DecodeToken разбирает токен с проверкой подписи, но без проверки срока действия.
func (s *ServiceJWT) DecodeToken(ctx context.Context, tokenString string) (*services.TokenInfo, error) {
	log := logger.Log(ctx).With(zap.String("method", methodDecodeToken))

	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, s.keyFunc, jwt.WithoutClaimsValidation())
	if err != nil {
		log.Debug(ctx, errParsingToken, zap.Error(err))
		return nil, fmt.Errorf("%s: %w: %w", errCtxDecodingToken, services.ErrInvalidJWTToken, err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok {
		log.Debug(ctx, msgInvalidToken)
		return nil, fmt.Errorf("%s: %w", errCtxDecodingToken, services.ErrInvalidJWTToken)
	}

	info, err := jwtToTokenInfo(claims)
	if err != nil {
		log.Debug(ctx, msgInvalidClaims, zap.Error(err))
		return nil, fmt.Errorf("%s: %w: %w", errCtxDecodingToken, services.ErrInvalidJWTToken, err)
	}

	return info, nil
}

func (s *ServiceJWT) keyFunc(token *jwt.Token) (interface{}, error) {
	if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
		return nil, fmt.Errorf("%w: %v", ErrInvalidAlgorithm, token.Header["alg"])
	}
	return s.config.SecretKey, nil
}
