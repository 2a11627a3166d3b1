// Package app содержит сценарии использования аутентификационного сервиса.
package app

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"newshub/internal/auth/domain/entities"
	"newshub/internal/auth/domain/services"
	"newshub/internal/auth/ports/api"
	"newshub/internal/auth/ports/repositories"
	svc "newshub/internal/auth/ports/services"
	"newshub/pkg/logger"

	"go.uber.org/zap"
)

const (
	methodSignUp         = "SignUp"
	methodSignIn         = "SignIn"
	methodRefreshTokens  = "RefreshTokens"
	methodLogout         = "Logout"
	methodValidateToken  = "ValidateAccessToken"
	methodDeleteAccount  = "DeleteAccount"
	methodIssueCode      = "IssueVerificationCode"
	methodConfirmCode    = "ConfirmVerificationCode"
	methodGenerateTokens = "generateTokenPair"

	msgStartSignUp          = "starting account sign-up"
	msgInvalidEmailFormat   = "invalid email format"
	msgEmptyAccountID       = "empty account ID provided"
	msgEmptyNickname        = "empty nickname provided"
	msgInvalidPassword      = "invalid password"
	msgAccountIDTaken       = "account ID already in use"
	msgNicknameTaken        = "nickname already in use"
	msgEmailTaken           = "email already in use"
	msgAccountCreated       = "account created successfully"
	msgSignInAttempt        = "sign-in attempt"
	msgSignInNonExistent    = "sign-in attempt with non-existent account"
	msgInvalidPasswordAuth  = "invalid password provided"
	msgUserSignedIn         = "user signed in successfully"
	msgRefreshingTokens     = "refreshing tokens"
	msgNoSessionRecord      = "no session record for subject"
	msgSupersededToken      = "presented refresh token does not match session record"
	msgTokensRefreshed      = "tokens refreshed successfully"
	msgProcessingLogout     = "processing logout request"
	msgUndecodableToken     = "logout with undecodable token, nothing to revoke"
	msgUserLoggedOut        = "user logged out successfully"
	msgTokenRevokedCheck    = "access token found in revocation list"
	msgDeletingAccount      = "deleting account"
	msgAccountDeleted       = "account deleted, session state purged"
	msgIssuingCode          = "issuing verification code"
	msgCodeIssued           = "verification code issued"
	msgConfirmingCode       = "confirming verification code"
	msgCodeAbsent           = "no outstanding verification code"
	msgCodeMismatch         = "verification code mismatch"
	msgCodeConfirmed        = "verification code confirmed and consumed"
	msgTokenPairGenerated   = "token pair generated successfully"
	msgSessionRecordWritten = "session record overwritten"

	msgErrCheckExistingUser   = "failed to check existing account"
	msgErrHashPassword        = "failed to hash password"
	msgErrCreateUser          = "failed to create account"
	msgErrFindingUser         = "error finding account"
	msgErrVerifyingPassword   = "error verifying password"
	msgErrGenerateTokens      = "failed to generate tokens"
	msgErrInvalidRefreshToken = "invalid refresh token"
	msgErrReadSessionRecord   = "failed to read session record"
	msgErrRevokeAccessToken   = "failed to revoke access token"
	msgErrDropSessionRecord   = "failed to drop session record"
	msgErrCheckRevocation     = "failed to check token revocation"
	msgErrDeleteUser          = "failed to delete account"
	msgErrGenerateCode        = "failed to generate verification code"
	msgErrStoreCode           = "failed to store verification code"
	msgErrReadCode            = "failed to read verification code"
	msgErrConsumeCode         = "failed to consume verification code"
	msgErrStoreRefreshToken   = "failed to store refresh token"

	errCtxValidatingAccountID = "validating account ID"
	errCtxValidatingNickname  = "validating nickname"
	errCtxValidatingEmail     = "validating email"
	errCtxValidatingPassword  = "validating password"
	errCtxCheckingAccountID   = "checking account ID uniqueness"
	errCtxCheckingNickname    = "checking nickname uniqueness"
	errCtxCheckingEmail       = "checking email uniqueness"
	errCtxHashingPassword     = "hashing password"
	errCtxCreatingUser        = "creating account"
	errCtxInvalidCredentials  = "invalid credentials"
	errCtxFindingUser         = "finding account"
	errCtxVerifyingPassword   = "verifying password"
	errCtxGeneratingTokens    = "generating tokens"
	errCtxVerifyingRefresh    = "verifying refresh token"
	errCtxReadingSession      = "reading session record"
	errCtxSupersededToken     = "superseded refresh token"
	errCtxRevokingToken       = "revoking access token"
	errCtxDroppingSession     = "dropping session record"
	errCtxValidatingToken     = "validating access token"
	errCtxCheckingRevocation  = "checking revocation list"
	errCtxTokenRevoked        = "token revoked"
	errCtxDeletingUser        = "deleting account"
	errCtxGeneratingCode      = "generating verification code"
	errCtxStoringCode         = "storing verification code"
	errCtxReadingCode         = "reading verification code"
	errCtxCodeAbsent          = "verification code absent"
	errCtxCodeMismatch        = "verification code mismatch"
	errCtxConsumingCode       = "consuming verification code"
	errCtxStoringRefreshToken = "storing refresh token"
)

// AuthUseCaseImpl реализует интерфейс AuthUseCase.
type AuthUseCaseImpl struct {
	userRepo    repositories.UserRepository
	sessionRepo repositories.SessionRepository
	passwordSvc svc.PasswordService
	tokenSvc    svc.TokenService
	codeGen     svc.CodeGenerator
	codeTTL     time.Duration
}

// NewAuthUseCase создает новый экземпляр сервиса аутентификации.
func NewAuthUseCase(
	userRepo repositories.UserRepository,
	sessionRepo repositories.SessionRepository,
	passwordSvc svc.PasswordService,
	tokenSvc svc.TokenService,
	codeGen svc.CodeGenerator,
	codeTTL time.Duration,
) api.AuthUseCase {
	return &AuthUseCaseImpl{
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
		passwordSvc: passwordSvc,
		tokenSvc:    tokenSvc,
		codeGen:     codeGen,
		codeTTL:     codeTTL,
	}
}

// SignUp создает новый аккаунт с предоставленными учетными данными.
// Токены при регистрации не выдаются, вход выполняется отдельно.
func (a *AuthUseCaseImpl) SignUp(ctx context.Context, input api.SignUpInput) error {
	log := logger.Log(ctx).With(zap.String("method", methodSignUp), zap.String("accountID", input.AccountID))
	log.Debug(ctx, msgStartSignUp)

	if input.AccountID == "" {
		log.Debug(ctx, msgEmptyAccountID)
		return fmt.Errorf("%s: %w", errCtxValidatingAccountID, entities.ErrEmptyAccountID)
	}
	if input.Nickname == "" {
		log.Debug(ctx, msgEmptyNickname)
		return fmt.Errorf("%s: %w", errCtxValidatingNickname, entities.ErrEmptyNickname)
	}
	if err := validateEmail(input.Email); err != nil {
		log.Debug(ctx, msgInvalidEmailFormat, zap.Error(err))
		return fmt.Errorf("%s: %w", errCtxValidatingEmail, err)
	}
	if input.Password == "" {
		log.Debug(ctx, msgInvalidPassword)
		return fmt.Errorf("%s: %w", errCtxValidatingPassword, services.ErrInvalidPassword)
	}

	// Поле, вызвавшее конфликт, видно только в логах и контексте ошибки,
	// машинный код наружу всегда один - DUPLICATE_ACCOUNT.
	exists, err := a.userRepo.ExistsByAccountID(ctx, input.AccountID)
	if err != nil {
		log.Error(ctx, msgErrCheckExistingUser, zap.Error(err))
		return fmt.Errorf("%s: %w", errCtxCheckingAccountID, err)
	}
	if exists {
		log.Debug(ctx, msgAccountIDTaken)
		return fmt.Errorf("%s: %w", errCtxCheckingAccountID, services.ErrAccountConflict)
	}

	exists, err = a.userRepo.ExistsByNickname(ctx, input.Nickname)
	if err != nil {
		log.Error(ctx, msgErrCheckExistingUser, zap.Error(err))
		return fmt.Errorf("%s: %w", errCtxCheckingNickname, err)
	}
	if exists {
		log.Debug(ctx, msgNicknameTaken)
		return fmt.Errorf("%s: %w", errCtxCheckingNickname, services.ErrAccountConflict)
	}

	exists, err = a.userRepo.ExistsByEmail(ctx, input.Email)
	if err != nil {
		log.Error(ctx, msgErrCheckExistingUser, zap.Error(err))
		return fmt.Errorf("%s: %w", errCtxCheckingEmail, err)
	}
	if exists {
		log.Debug(ctx, msgEmailTaken)
		return fmt.Errorf("%s: %w", errCtxCheckingEmail, services.ErrAccountConflict)
	}

	hashedPassword, err := a.passwordSvc.Hash(ctx, input.Password)
	if err != nil {
		log.Error(ctx, msgErrHashPassword, zap.Error(err))
		return fmt.Errorf("%s: %w", errCtxHashingPassword, err)
	}

	newUser := &entities.User{
		AccountID:    input.AccountID,
		Email:        input.Email,
		Nickname:     input.Nickname,
		DisplayName:  input.DisplayName,
		PasswordHash: hashedPassword,
		Role:         entities.RoleUser,
		Gender:       input.Gender,
		BirthDate:    input.BirthDate,
	}

	createdUser, err := a.userRepo.Create(ctx, newUser)
	if err != nil {
		log.Error(ctx, msgErrCreateUser, zap.Error(err))
		return fmt.Errorf("%s: %w", errCtxCreatingUser, err)
	}

	log.Info(ctx, msgAccountCreated, zap.String("userID", createdUser.ID))
	return nil
}

// SignIn аутентифицирует пользователя по идентификатору аккаунта и паролю.
// Отсутствующий аккаунт и неверный пароль наружу неразличимы.
func (a *AuthUseCaseImpl) SignIn(ctx context.Context, accountID, password string) (*services.TokenPair, error) {
	log := logger.Log(ctx).With(zap.String("method", methodSignIn), zap.String("accountID", accountID))
	log.Debug(ctx, msgSignInAttempt)

	user, err := a.userRepo.FindByAccountID(ctx, accountID)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			log.Debug(ctx, msgSignInNonExistent)
			return nil, fmt.Errorf("%s: %w", errCtxInvalidCredentials, services.ErrInvalidCredentials)
		}
		log.Error(ctx, msgErrFindingUser, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxFindingUser, err)
	}

	valid, err := a.passwordSvc.Verify(ctx, password, user.PasswordHash)
	if err != nil {
		log.Error(ctx, msgErrVerifyingPassword, zap.Error(err), zap.String("userID", user.ID))
		return nil, fmt.Errorf("%s: %w", errCtxVerifyingPassword, err)
	}
	if !valid {
		log.Debug(ctx, msgInvalidPasswordAuth, zap.String("userID", user.ID))
		return nil, fmt.Errorf("%s: %w", errCtxInvalidCredentials, services.ErrInvalidCredentials)
	}

	tokenPair, err := a.generateTokenPair(ctx, user)
	if err != nil {
		log.Error(ctx, msgErrGenerateTokens, zap.Error(err), zap.String("userID", user.ID))
		return nil, fmt.Errorf("%s: %w", errCtxGeneratingTokens, err)
	}

	log.Info(ctx, msgUserSignedIn, zap.String("userID", user.ID))
	return tokenPair, nil
}

// RefreshTokens ротирует пару токенов по действующему refresh-токену.
// Токен, не совпадающий с записью сессии, отвергается даже при валидной подписи.
func (a *AuthUseCaseImpl) RefreshTokens(ctx context.Context, refreshToken string) (*services.TokenPair, error) {
	log := logger.Log(ctx).With(zap.String("method", methodRefreshTokens))
	log.Debug(ctx, msgRefreshingTokens)

	info, err := a.tokenSvc.ValidateRefreshToken(ctx, refreshToken)
	if err != nil {
		log.Debug(ctx, msgErrInvalidRefreshToken, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxVerifyingRefresh, services.ErrInvalidRefreshToken)
	}

	log = log.With(zap.String("userID", info.SubjectID))

	// Сверка с записью сессии и ее удаление происходят одной атомарной
	// операцией хранилища, повтор того же токена записи уже не найдет.
	found, matched, err := a.sessionRepo.ConsumeRefreshToken(ctx, info.SubjectID, refreshToken)
	if err != nil {
		log.Error(ctx, msgErrReadSessionRecord, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxReadingSession, err)
	}
	if !found {
		log.Debug(ctx, msgNoSessionRecord)
		return nil, fmt.Errorf("%s: %w", errCtxReadingSession, services.ErrInvalidRefreshToken)
	}
	if !matched {
		log.Warn(ctx, msgSupersededToken)
		return nil, fmt.Errorf("%s: %w", errCtxSupersededToken, services.ErrInvalidRefreshToken)
	}

	user, err := a.userRepo.FindByID(ctx, info.SubjectID)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			log.Debug(ctx, msgSignInNonExistent)
			return nil, fmt.Errorf("%s: %w", errCtxFindingUser, services.ErrInvalidRefreshToken)
		}
		log.Error(ctx, msgErrFindingUser, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxFindingUser, err)
	}

	tokenPair, err := a.generateTokenPair(ctx, user)
	if err != nil {
		log.Error(ctx, msgErrGenerateTokens, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxGeneratingTokens, err)
	}

	log.Info(ctx, msgTokensRefreshed)
	return tokenPair, nil
}

// Logout отзывает access-токен и удаляет запись сессии субъекта.
// Операция идемпотентна: выход с уже невалидным токеном не является ошибкой.
func (a *AuthUseCaseImpl) Logout(ctx context.Context, accessToken string) error {
	log := logger.Log(ctx).With(zap.String("method", methodLogout))
	log.Debug(ctx, msgProcessingLogout)

	info, err := a.tokenSvc.DecodeToken(ctx, accessToken)
	if err != nil {
		log.Debug(ctx, msgUndecodableToken, zap.Error(err))
		return nil
	}

	log = log.With(zap.String("userID", info.SubjectID))

	// Запись в черный список не нужна дольше, чем токен прожил бы сам.
	if remaining := info.Remaining(); remaining > 0 && info.TokenID != "" {
		if err := a.sessionRepo.RevokeAccessToken(ctx, info.TokenID, remaining); err != nil {
			log.Error(ctx, msgErrRevokeAccessToken, zap.Error(err))
			return fmt.Errorf("%s: %w", errCtxRevokingToken, err)
		}
	}

	if err := a.sessionRepo.DeleteRefreshToken(ctx, info.SubjectID); err != nil {
		log.Error(ctx, msgErrDropSessionRecord, zap.Error(err))
		return fmt.Errorf("%s: %w", errCtxDroppingSession, err)
	}

	log.Info(ctx, msgUserLoggedOut)
	return nil
}

// ValidateAccessToken проверяет подпись и срок действия токена,
// затем его отсутствие в списке отозванных.
func (a *AuthUseCaseImpl) ValidateAccessToken(ctx context.Context, accessToken string) (*services.TokenInfo, error) {
	log := logger.Log(ctx).With(zap.String("method", methodValidateToken))

	info, err := a.tokenSvc.ValidateAccessToken(ctx, accessToken)
	if err != nil {
		if errors.Is(err, services.ErrExpiredJWTToken) {
			return nil, fmt.Errorf("%s: %w", errCtxValidatingToken, services.ErrExpiredToken)
		}
		return nil, fmt.Errorf("%s: %w", errCtxValidatingToken, services.ErrInvalidToken)
	}

	revoked, err := a.sessionRepo.IsAccessTokenRevoked(ctx, info.TokenID)
	if err != nil {
		log.Error(ctx, msgErrCheckRevocation, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxCheckingRevocation, err)
	}
	if revoked {
		log.Debug(ctx, msgTokenRevokedCheck, zap.String("userID", info.SubjectID))
		return nil, fmt.Errorf("%s: %w", errCtxTokenRevoked, services.ErrRevokedToken)
	}

	return info, nil
}

// DeleteAccount удаляет аккаунт и связанное с ним состояние сессии.
// Невыкупленный access-токен остается действительным не дольше своего TTL.
func (a *AuthUseCaseImpl) DeleteAccount(ctx context.Context, subjectID string) error {
	log := logger.Log(ctx).With(zap.String("method", methodDeleteAccount), zap.String("userID", subjectID))
	log.Debug(ctx, msgDeletingAccount)

	if _, err := a.userRepo.FindByID(ctx, subjectID); err != nil {
		log.Debug(ctx, msgErrFindingUser, zap.Error(err))
		return fmt.Errorf("%s: %w", errCtxFindingUser, err)
	}

	if err := a.userRepo.Delete(ctx, subjectID); err != nil {
		log.Error(ctx, msgErrDeleteUser, zap.Error(err))
		return fmt.Errorf("%s: %w", errCtxDeletingUser, err)
	}

	if err := a.sessionRepo.DeleteRefreshToken(ctx, subjectID); err != nil {
		log.Error(ctx, msgErrDropSessionRecord, zap.Error(err))
		return fmt.Errorf("%s: %w", errCtxDroppingSession, err)
	}

	log.Info(ctx, msgAccountDeleted)
	return nil
}

// IssueVerificationCode выдает код подтверждения для email,
// замещая любой невостребованный код для того же адреса.
func (a *AuthUseCaseImpl) IssueVerificationCode(ctx context.Context, email string) (string, error) {
	log := logger.Log(ctx).With(zap.String("method", methodIssueCode), zap.String("email", email))
	log.Debug(ctx, msgIssuingCode)

	if err := validateEmail(email); err != nil {
		log.Debug(ctx, msgInvalidEmailFormat, zap.Error(err))
		return "", fmt.Errorf("%s: %w", errCtxValidatingEmail, err)
	}

	code, err := a.codeGen.Generate(ctx)
	if err != nil {
		log.Error(ctx, msgErrGenerateCode, zap.Error(err))
		return "", fmt.Errorf("%s: %w", errCtxGeneratingCode, err)
	}

	if err := a.sessionRepo.StoreVerificationCode(ctx, email, code, a.codeTTL); err != nil {
		log.Error(ctx, msgErrStoreCode, zap.Error(err))
		return "", fmt.Errorf("%s: %w", errCtxStoringCode, err)
	}

	log.Info(ctx, msgCodeIssued)
	return code, nil
}

// ConfirmVerificationCode сверяет код с выданным и потребляет его.
// Сравнение строгое, несовпадение не расходует запись.
func (a *AuthUseCaseImpl) ConfirmVerificationCode(ctx context.Context, email, code string) error {
	log := logger.Log(ctx).With(zap.String("method", methodConfirmCode), zap.String("email", email))
	log.Debug(ctx, msgConfirmingCode)

	stored, err := a.sessionRepo.GetVerificationCode(ctx, email)
	if err != nil {
		log.Error(ctx, msgErrReadCode, zap.Error(err))
		return fmt.Errorf("%s: %w", errCtxReadingCode, err)
	}
	if stored == "" {
		log.Debug(ctx, msgCodeAbsent)
		return fmt.Errorf("%s: %w", errCtxCodeAbsent, services.ErrCodeNotFound)
	}
	if stored != code {
		log.Debug(ctx, msgCodeMismatch)
		return fmt.Errorf("%s: %w", errCtxCodeMismatch, services.ErrCodeMismatch)
	}

	if err := a.sessionRepo.DeleteVerificationCode(ctx, email); err != nil {
		log.Error(ctx, msgErrConsumeCode, zap.Error(err))
		return fmt.Errorf("%s: %w", errCtxConsumingCode, err)
	}

	log.Info(ctx, msgCodeConfirmed)
	return nil
}

// Вспомогательная функция для генерации пары токенов.
// Перезапись записи сессии делает предыдущий refresh-токен недействительным.
func (a *AuthUseCaseImpl) generateTokenPair(ctx context.Context, user *entities.User) (*services.TokenPair, error) {
	log := logger.Log(ctx).With(
		zap.String("method", methodGenerateTokens),
		zap.String("userID", user.ID),
	)

	accessToken, accessExpires, err := a.tokenSvc.GenerateAccessToken(ctx, user.ID, user.Role)
	if err != nil {
		log.Error(ctx, msgErrGenerateTokens, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxGeneratingTokens, services.ErrTokenGenerationFailed)
	}

	refreshToken, refreshExpires, err := a.tokenSvc.GenerateRefreshToken(ctx, user.ID)
	if err != nil {
		log.Error(ctx, msgErrGenerateTokens, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxGeneratingTokens, services.ErrTokenGenerationFailed)
	}

	if err := a.sessionRepo.StoreRefreshToken(ctx, user.ID, refreshToken, time.Until(refreshExpires)); err != nil {
		log.Error(ctx, msgErrStoreRefreshToken, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxStoringRefreshToken, err)
	}

	log.Debug(ctx, msgTokenPairGenerated)
	log.Debug(ctx, msgSessionRecordWritten, zap.Time("expiresAt", refreshExpires))

	return &services.TokenPair{
		UserID:       user.ID,
		Nickname:     user.Nickname,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresAt:    accessExpires,
	}, nil
}

// Валидация email.
func validateEmail(email string) error {
	if email == "" {
		return entities.ErrInvalidEmail
	}

	emailRegex := regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	if !emailRegex.MatchString(email) {
		return entities.ErrInvalidEmail
	}

	return nil
}
