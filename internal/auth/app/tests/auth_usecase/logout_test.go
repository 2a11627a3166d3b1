package authusecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"newshub/internal/auth/app"
	"newshub/internal/auth/domain/services"
)

func TestLogout(t *testing.T) {
	userID := "user-123"
	tokenID := "jti-abc"
	accessToken := "access-token-123"

	liveInfo := &services.TokenInfo{
		SubjectID: userID,
		TokenID:   tokenID,
		ExpiresAt: time.Now().Add(10 * time.Minute),
	}

	expiredInfo := &services.TokenInfo{
		SubjectID: userID,
		TokenID:   tokenID,
		ExpiresAt: time.Now().Add(-time.Minute),
	}

	tests := []struct {
		name         string
		token        string
		setupMocks   func(mockSessionRepo *mockSessionRepository, mockTokenSvc *mockTokenService)
		expectedErr  error
		errorContext string
	}{
		{
			name:  "success - live token revoked and session dropped",
			token: accessToken,
			setupMocks: func(mockSessionRepo *mockSessionRepository, mockTokenSvc *mockTokenService) {
				mockTokenSvc.On("DecodeToken", mock.Anything, accessToken).Return(liveInfo, nil).Once()
				mockSessionRepo.On("RevokeAccessToken", mock.Anything, tokenID,
					mock.AnythingOfType("time.Duration")).Return(nil).Once()
				mockSessionRepo.On("DeleteRefreshToken", mock.Anything, userID).Return(nil).Once()
			},
		},
		{
			name:  "success - expired token skips revocation list",
			token: accessToken,
			setupMocks: func(mockSessionRepo *mockSessionRepository, mockTokenSvc *mockTokenService) {
				mockTokenSvc.On("DecodeToken", mock.Anything, accessToken).Return(expiredInfo, nil).Once()
				mockSessionRepo.On("DeleteRefreshToken", mock.Anything, userID).Return(nil).Once()
			},
		},
		{
			name:  "success - undecodable token is a no-op",
			token: "garbage",
			setupMocks: func(_ *mockSessionRepository, mockTokenSvc *mockTokenService) {
				mockTokenSvc.On("DecodeToken", mock.Anything, "garbage").
					Return(nil, services.ErrInvalidJWTToken).Once()
			},
		},
		{
			name:  "error - revocation list write fails",
			token: accessToken,
			setupMocks: func(mockSessionRepo *mockSessionRepository, mockTokenSvc *mockTokenService) {
				mockTokenSvc.On("DecodeToken", mock.Anything, accessToken).Return(liveInfo, nil).Once()
				mockSessionRepo.On("RevokeAccessToken", mock.Anything, tokenID,
					mock.AnythingOfType("time.Duration")).Return(services.ErrStoreUnavailable).Once()
			},
			expectedErr:  services.ErrStoreUnavailable,
			errorContext: "revoking access token",
		},
		{
			name:  "error - session record drop fails",
			token: accessToken,
			setupMocks: func(mockSessionRepo *mockSessionRepository, mockTokenSvc *mockTokenService) {
				mockTokenSvc.On("DecodeToken", mock.Anything, accessToken).Return(liveInfo, nil).Once()
				mockSessionRepo.On("RevokeAccessToken", mock.Anything, tokenID,
					mock.AnythingOfType("time.Duration")).Return(nil).Once()
				mockSessionRepo.On("DeleteRefreshToken", mock.Anything, userID).
					Return(services.ErrStoreUnavailable).Once()
			},
			expectedErr:  services.ErrStoreUnavailable,
			errorContext: "dropping session record",
		},
	}

	for _, ttt := range tests {
		t.Run(ttt.name, func(t *testing.T) {
			mockUserRepo := new(mockUserRepository)
			mockSessionRepo := new(mockSessionRepository)
			mockPasswordSvc := new(mockPasswordService)
			mockTokenSvc := new(mockTokenService)
			mockCodeGen := new(mockCodeGenerator)

			ttt.setupMocks(mockSessionRepo, mockTokenSvc)

			authUseCase := app.NewAuthUseCase(mockUserRepo, mockSessionRepo, mockPasswordSvc, mockTokenSvc, mockCodeGen, codeTTL)

			err := authUseCase.Logout(context.Background(), ttt.token)

			if ttt.expectedErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, ttt.expectedErr)
				assert.Contains(t, err.Error(), ttt.errorContext)
			} else {
				require.NoError(t, err)
			}

			mockSessionRepo.AssertExpectations(t)
			mockTokenSvc.AssertExpectations(t)
		})
	}
}

// Повторный выход с тем же токеном не является ошибкой.
func TestLogoutIsIdempotent(t *testing.T) {
	userID := "user-123"
	tokenID := "jti-abc"
	accessToken := "access-token-123"

	info := &services.TokenInfo{
		SubjectID: userID,
		TokenID:   tokenID,
		ExpiresAt: time.Now().Add(10 * time.Minute),
	}

	mockUserRepo := new(mockUserRepository)
	mockSessionRepo := new(mockSessionRepository)
	mockPasswordSvc := new(mockPasswordService)
	mockTokenSvc := new(mockTokenService)
	mockCodeGen := new(mockCodeGenerator)

	mockTokenSvc.On("DecodeToken", mock.Anything, accessToken).Return(info, nil).Twice()
	mockSessionRepo.On("RevokeAccessToken", mock.Anything, tokenID,
		mock.AnythingOfType("time.Duration")).Return(nil).Twice()
	mockSessionRepo.On("DeleteRefreshToken", mock.Anything, userID).Return(nil).Twice()

	authUseCase := app.NewAuthUseCase(mockUserRepo, mockSessionRepo, mockPasswordSvc, mockTokenSvc, mockCodeGen, codeTTL)
	ctx := context.Background()

	require.NoError(t, authUseCase.Logout(ctx, accessToken))
	require.NoError(t, authUseCase.Logout(ctx, accessToken))

	mockSessionRepo.AssertExpectations(t)
	mockTokenSvc.AssertExpectations(t)
}
