package services

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/poofware/blog-api/internal/config"
	"github.com/poofware/blog-api/internal/models"
	"github.com/poofware/blog-api/internal/repositories"
	"github.com/poofware/blog-api/internal/utils"
)

// RoleUser is the only role issued; every registered account gets it.
const RoleUser = "User"

// Claims is the typed claim set embedded in every access token. It is
// parsed and validated exactly once, in ValidateAccessToken; downstream
// code never touches raw claims again.
type Claims struct {
	UserID int64  `json:"uid"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// Username is the token subject.
func (c *Claims) Username() string { return c.Subject }

// ---------------------------------------------------------------------
// JWTService interface
// ---------------------------------------------------------------------

type JWTService interface {
	// GenerateAccessToken mints a signed HS256 token for the user with a
	// fresh jti per call, so a later revocation targets this single
	// issuance rather than all of the user's tokens. Stateless.
	GenerateAccessToken(ctx context.Context, user *models.User) (string, error)

	// ValidateAccessToken verifies signature, issuer, audience and expiry,
	// then consults the revocation ledger. The ledger lookup runs only
	// after the signature is known good, so forged tokens never trigger a
	// DB round-trip. Returns utils.ErrTokenRevoked for blacklisted tokens.
	ValidateAccessToken(ctx context.Context, tokenString string) (*Claims, error)
}

// ---------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------

type jwtService struct {
	cfg       *config.Config
	tokenRepo repositories.TokenRepository
}

func NewJWTService(cfg *config.Config, tokenRepo repositories.TokenRepository) JWTService {
	return &jwtService{cfg: cfg, tokenRepo: tokenRepo}
}

func (j *jwtService) GenerateAccessToken(ctx context.Context, user *models.User) (string, error) {
	now := time.Now()
	claims := &Claims{
		UserID: user.ID,
		Email:  user.Email,
		Role:   RoleUser,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    j.cfg.JWTIssuer,
			Subject:   user.Username,
			Audience:  jwt.ClaimStrings{j.cfg.JWTAudience},
			ExpiresAt: jwt.NewNumericDate(now.Add(j.cfg.TokenExpiry)),
			IssuedAt:  jwt.NewNumericDate(now),
			ID:        uuid.NewString(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(j.cfg.JWTKey)
}

func (j *jwtService) ValidateAccessToken(ctx context.Context, tokenString string) (*Claims, error) {
	claims := &Claims{}
	_, err := jwt.ParseWithClaims(
		tokenString,
		claims,
		func(token *jwt.Token) (any, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, errors.New("unexpected signing method")
			}
			return j.cfg.JWTKey, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(j.cfg.JWTIssuer),
		jwt.WithAudience(j.cfg.JWTAudience),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return nil, err
	}

	if claims.ID == "" {
		return nil, errors.New("missing jti claim")
	}

	revoked, err := j.tokenRepo.IsTokenBlacklisted(ctx, claims.ID)
	if err != nil {
		return nil, err
	}
	if revoked {
		return nil, utils.ErrTokenRevoked
	}

	return claims, nil
}
