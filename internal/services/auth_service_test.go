package services

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/poofware/blog-api/internal/dtos"
	"github.com/poofware/blog-api/internal/models"
	"github.com/poofware/blog-api/internal/utils"
)

func registerRequest() dtos.RegisterRequest {
	return dtos.RegisterRequest{
		Name:     "Alice",
		Username: "a1",
		Email:    "a1@x.com",
		Password: "correct horse",
	}
}

func newAuthServiceForTest(userRepo *MockUserRepository, tokenRepo *MockTokenRepository) AuthService {
	cfg := testConfig()
	return NewAuthService(userRepo, tokenRepo, NewJWTService(cfg, tokenRepo), cfg)
}

func TestRegisterSuccessHashesPassword(t *testing.T) {
	userRepo := &MockUserRepository{}
	tokenRepo := &MockTokenRepository{}
	svc := newAuthServiceForTest(userRepo, tokenRepo)

	userRepo.On("GetByUsername", mock.Anything, "a1").Return(nil, nil)
	userRepo.On("GetByEmail", mock.Anything, "a1@x.com").Return(nil, nil)
	userRepo.On("Create", mock.Anything, mock.AnythingOfType("*models.User")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*models.User).ID = 1
		}).
		Return(nil)

	u, err := svc.Register(context.Background(), registerRequest())
	require.NoError(t, err)
	require.NotNil(t, u)

	assert.Equal(t, int64(1), u.ID)
	assert.NotEqual(t, "correct horse", u.Password, "password must never be stored verbatim")
	assert.True(t, utils.CheckPasswordHash("correct horse", u.Password))
}

func TestRegisterDuplicateUsernameConflicts(t *testing.T) {
	userRepo := &MockUserRepository{}
	tokenRepo := &MockTokenRepository{}
	svc := newAuthServiceForTest(userRepo, tokenRepo)

	userRepo.On("GetByUsername", mock.Anything, "a1").Return(&models.User{ID: 9, Username: "a1"}, nil)

	_, err := svc.Register(context.Background(), registerRequest())
	require.Error(t, err)

	var appErr *utils.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, http.StatusConflict, appErr.StatusCode)
	assert.Equal(t, utils.ErrCodeConflict, appErr.Code)

	userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestRegisterDuplicateEmailConflicts(t *testing.T) {
	userRepo := &MockUserRepository{}
	tokenRepo := &MockTokenRepository{}
	svc := newAuthServiceForTest(userRepo, tokenRepo)

	userRepo.On("GetByUsername", mock.Anything, "a1").Return(nil, nil)
	userRepo.On("GetByEmail", mock.Anything, "a1@x.com").Return(&models.User{ID: 9, Email: "a1@x.com"}, nil)

	_, err := svc.Register(context.Background(), registerRequest())
	require.Error(t, err)

	var appErr *utils.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, http.StatusConflict, appErr.StatusCode)
}

func TestRegisterMapsConstraintRaceToConflict(t *testing.T) {
	userRepo := &MockUserRepository{}
	tokenRepo := &MockTokenRepository{}
	svc := newAuthServiceForTest(userRepo, tokenRepo)

	userRepo.On("GetByUsername", mock.Anything, "a1").Return(nil, nil)
	userRepo.On("GetByEmail", mock.Anything, "a1@x.com").Return(nil, nil)
	userRepo.On("Create", mock.Anything, mock.Anything).Return(utils.ErrEmailExists)

	_, err := svc.Register(context.Background(), registerRequest())
	require.Error(t, err)

	var appErr *utils.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, http.StatusConflict, appErr.StatusCode)
}

func TestLoginSuccessReturnsToken(t *testing.T) {
	hashed, err := utils.HashPassword("p")
	require.NoError(t, err)

	userRepo := &MockUserRepository{}
	tokenRepo := &MockTokenRepository{}
	svc := newAuthServiceForTest(userRepo, tokenRepo)

	stored := &models.User{ID: 3, Name: "A", Username: "a1", Email: "a1@x.com", Password: hashed}
	userRepo.On("GetByUsernameOrEmail", mock.Anything, "a1").Return(stored, nil)
	tokenRepo.On("IsTokenBlacklisted", mock.Anything, mock.Anything).Return(false, nil)

	u, token, err := svc.Login(context.Background(), "a1", "p")
	require.NoError(t, err)
	require.NotNil(t, u)
	assert.NotEmpty(t, token)
	assert.Equal(t, int64(3), u.ID)

	// Round-trip: the issued token carries exactly the stored identity.
	jwtSvc := NewJWTService(testConfig(), tokenRepo)
	claims, err := jwtSvc.ValidateAccessToken(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, int64(3), claims.UserID)
	assert.Equal(t, "a1", claims.Username())
	assert.Equal(t, "a1@x.com", claims.Email)
}

func TestLoginWrongPasswordUnauthorized(t *testing.T) {
	hashed, err := utils.HashPassword("p")
	require.NoError(t, err)

	userRepo := &MockUserRepository{}
	tokenRepo := &MockTokenRepository{}
	svc := newAuthServiceForTest(userRepo, tokenRepo)

	stored := &models.User{ID: 3, Username: "a1", Email: "a1@x.com", Password: hashed}
	userRepo.On("GetByUsernameOrEmail", mock.Anything, "a1").Return(stored, nil)

	_, _, err = svc.Login(context.Background(), "a1", "wrong")
	require.Error(t, err)

	var appErr *utils.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, http.StatusUnauthorized, appErr.StatusCode)
	assert.Equal(t, utils.ErrCodeInvalidCredentials, appErr.Code)
}

func TestLoginUnknownIdentifierUnauthorized(t *testing.T) {
	userRepo := &MockUserRepository{}
	tokenRepo := &MockTokenRepository{}
	svc := newAuthServiceForTest(userRepo, tokenRepo)

	userRepo.On("GetByUsernameOrEmail", mock.Anything, "nobody").Return(nil, nil)

	_, _, err := svc.Login(context.Background(), "nobody", "p")
	require.Error(t, err)

	var appErr *utils.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, http.StatusUnauthorized, appErr.StatusCode)
}

func TestLogoutBlacklistsTokenUntilExpiry(t *testing.T) {
	userRepo := &MockUserRepository{}
	tokenRepo := &MockTokenRepository{}
	svc := newAuthServiceForTest(userRepo, tokenRepo)

	expiry := time.Now().Add(30 * time.Minute)
	claims := &Claims{
		UserID: 3,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        "jti-123",
			ExpiresAt: jwt.NewNumericDate(expiry),
		},
	}

	tokenRepo.On("BlacklistToken", mock.Anything, "jti-123", mock.MatchedBy(func(at time.Time) bool {
		return at.Equal(claims.ExpiresAt.Time)
	})).Return(nil)

	require.NoError(t, svc.Logout(context.Background(), claims))
	tokenRepo.AssertExpectations(t)
}

func TestLogoutWithoutTokenIDFails(t *testing.T) {
	userRepo := &MockUserRepository{}
	tokenRepo := &MockTokenRepository{}
	svc := newAuthServiceForTest(userRepo, tokenRepo)

	err := svc.Logout(context.Background(), &Claims{UserID: 3})
	require.Error(t, err)

	var appErr *utils.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, http.StatusBadRequest, appErr.StatusCode)

	tokenRepo.AssertNotCalled(t, "BlacklistToken", mock.Anything, mock.Anything, mock.Anything)
}

func TestLogoutMissingExpiryDefaultsToConfiguredLifetime(t *testing.T) {
	userRepo := &MockUserRepository{}
	tokenRepo := &MockTokenRepository{}
	svc := newAuthServiceForTest(userRepo, tokenRepo)

	claims := &Claims{
		UserID:           3,
		RegisteredClaims: jwt.RegisteredClaims{ID: "jti-456"},
	}

	before := time.Now().Add(testConfig().TokenExpiry)
	tokenRepo.On("BlacklistToken", mock.Anything, "jti-456", mock.MatchedBy(func(at time.Time) bool {
		// now + configured lifetime, allowing for test scheduling slack
		return !at.Before(before.Add(-time.Minute)) && !at.After(before.Add(time.Minute))
	})).Return(nil)

	require.NoError(t, svc.Logout(context.Background(), claims))
	tokenRepo.AssertExpectations(t)
}
