package services

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/poofware/blog-api/internal/config"
	"github.com/poofware/blog-api/internal/dtos"
	"github.com/poofware/blog-api/internal/models"
	"github.com/poofware/blog-api/internal/repositories"
	"github.com/poofware/blog-api/internal/utils"
)

type AuthService interface {
	Register(ctx context.Context, req dtos.RegisterRequest) (*models.User, error)

	// Login accepts either the username or the email as identifier and
	// returns the user plus a freshly minted access token.
	Login(ctx context.Context, identifier, password string) (*models.User, string, error)

	// Logout blacklists the caller's current token by its jti until the
	// token's natural expiry.
	Logout(ctx context.Context, claims *Claims) error
}

type authService struct {
	userRepo   repositories.UserRepository
	tokenRepo  repositories.TokenRepository
	jwtService JWTService
	cfg        *config.Config
}

func NewAuthService(
	userRepo repositories.UserRepository,
	tokenRepo repositories.TokenRepository,
	jwtService JWTService,
	cfg *config.Config,
) AuthService {
	return &authService{
		userRepo:   userRepo,
		tokenRepo:  tokenRepo,
		jwtService: jwtService,
		cfg:        cfg,
	}
}

// ---------------------------------------------------------------------
// Register
// ---------------------------------------------------------------------

func (s *authService) Register(ctx context.Context, req dtos.RegisterRequest) (*models.User, error) {
	if existing, err := s.userRepo.GetByUsername(ctx, req.Username); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, conflictError("Username is already taken", utils.ErrUsernameExists)
	}

	if existing, err := s.userRepo.GetByEmail(ctx, req.Email); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, conflictError("Email is already registered", utils.ErrEmailExists)
	}

	// Stored as a salted bcrypt hash, never plaintext.
	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	u := &models.User{
		Name:     req.Name,
		Username: req.Username,
		Email:    req.Email,
		Password: hashed,
	}

	if err := s.userRepo.Create(ctx, u); err != nil {
		// Two registrations can race past the pre-checks; the unique
		// constraints are the arbiter.
		switch {
		case errors.Is(err, utils.ErrUsernameExists):
			return nil, conflictError("Username is already taken", err)
		case errors.Is(err, utils.ErrEmailExists):
			return nil, conflictError("Email is already registered", err)
		}
		return nil, err
	}

	return u, nil
}

// ---------------------------------------------------------------------
// Login
// ---------------------------------------------------------------------

func (s *authService) Login(ctx context.Context, identifier, password string) (*models.User, string, error) {
	u, err := s.userRepo.GetByUsernameOrEmail(ctx, identifier)
	if err != nil {
		return nil, "", err
	}

	// Same failure for unknown identifier and wrong password; do not leak
	// which one it was.
	if u == nil || !utils.CheckPasswordHash(password, u.Password) {
		return nil, "", &utils.AppError{
			StatusCode: http.StatusUnauthorized,
			Code:       utils.ErrCodeInvalidCredentials,
			Message:    "Invalid username/email or password",
			Err:        utils.ErrInvalidCredentials,
		}
	}

	token, err := s.jwtService.GenerateAccessToken(ctx, u)
	if err != nil {
		utils.Logger.WithError(err).Error("Failed to generate access token (login)")
		return nil, "", err
	}

	return u, token, nil
}

// ---------------------------------------------------------------------
// Logout
// ---------------------------------------------------------------------

func (s *authService) Logout(ctx context.Context, claims *Claims) error {
	if claims == nil || claims.ID == "" {
		return &utils.AppError{
			StatusCode: http.StatusBadRequest,
			Code:       utils.ErrCodeUnauthorized,
			Message:    "You are not currently logged in",
			Err:        utils.ErrNotLoggedIn,
		}
	}

	// Retain the ledger entry until the token's own expiry; when the exp
	// claim is missing, fall back to now + configured lifetime.
	expiresAt := time.Now().Add(s.cfg.TokenExpiry)
	if claims.ExpiresAt != nil {
		expiresAt = claims.ExpiresAt.Time
	}

	return s.tokenRepo.BlacklistToken(ctx, claims.ID, expiresAt)
}

func conflictError(message string, err error) *utils.AppError {
	return &utils.AppError{
		StatusCode: http.StatusConflict,
		Code:       utils.ErrCodeConflict,
		Message:    message,
		Err:        err,
	}
}
