package services

import "net/http"

// Error - типизированная ошибка аутентификационного сервиса.
// Несет машинно-проверяемый код и HTTP-эквивалент статуса.
type Error struct {
	code    string
	status  int
	message string
}

// Error возвращает текст ошибки.
func (e *Error) Error() string {
	return e.message
}

// Code возвращает машинно-проверяемый код ошибки.
func (e *Error) Code() string {
	return e.code
}

// HTTPStatus возвращает HTTP-эквивалент статуса ошибки.
func (e *Error) HTTPStatus() int {
	return e.status
}

// Ошибки домена аутентификации. Ошибки с кодом AUTHENTICATION_FAILED
// намеренно не различают отсутствующий аккаунт, неверный пароль и
// неверный код подтверждения во внешнем представлении.
var (
	ErrInvalidCredentials = &Error{
		code:    "AUTHENTICATION_FAILED",
		status:  http.StatusUnauthorized,
		message: "invalid account ID or password",
	}
	ErrAccountConflict = &Error{
		code:    "DUPLICATE_ACCOUNT",
		status:  http.StatusConflict,
		message: "account ID, nickname or email already in use",
	}
	ErrInvalidRefreshToken = &Error{
		code:    "INVALID_REFRESH_TOKEN",
		status:  http.StatusUnauthorized,
		message: "refresh token is expired, malformed or superseded",
	}
	ErrUserNotFound = &Error{
		code:    "USER_NOT_FOUND",
		status:  http.StatusNotFound,
		message: "user not found",
	}
	ErrInvalidToken = &Error{
		code:    "AUTHENTICATION_FAILED",
		status:  http.StatusUnauthorized,
		message: "invalid access token",
	}
	ErrExpiredToken = &Error{
		code:    "AUTHENTICATION_FAILED",
		status:  http.StatusUnauthorized,
		message: "access token has expired",
	}
	ErrRevokedToken = &Error{
		code:    "AUTHENTICATION_FAILED",
		status:  http.StatusUnauthorized,
		message: "access token has been revoked",
	}
	ErrCodeNotFound = &Error{
		code:    "VERIFICATION_CODE_NOT_FOUND",
		status:  http.StatusNotFound,
		message: "verification code not found or expired",
	}
	ErrCodeMismatch = &Error{
		code:    "AUTHENTICATION_FAILED",
		status:  http.StatusUnauthorized,
		message: "verification code does not match",
	}
	ErrTokenGenerationFailed = &Error{
		code:    "TOKEN_GENERATION_FAILED",
		status:  http.StatusInternalServerError,
		message: "failed to generate authentication tokens",
	}
	ErrStoreUnavailable = &Error{
		code:    "STORE_UNAVAILABLE",
		status:  http.StatusServiceUnavailable,
		message: "backing store is unavailable",
	}
)
