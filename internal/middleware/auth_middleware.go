package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/poofware/blog-api/internal/services"
	"github.com/poofware/blog-api/internal/utils"
)

type contextKey string

// ContextKeyClaims carries the validated *services.Claims for the request.
const ContextKeyClaims = contextKey("authClaims")

// AuthMiddleware guards protected endpoints. The JWT is read from
// Authorization: Bearer ...; a missing, malformed, expired or revoked
// token yields 401 with a distinct error code. On success the typed
// claims are attached to the request context for downstream handlers.
func AuthMiddleware(jwtService services.JWTService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenStr, err := extractAccessToken(r)
			if err != nil {
				utils.RespondErrorWithCode(
					w, http.StatusUnauthorized, utils.ErrCodeUnauthorized, err.Error(), nil,
				)
				return
			}

			claims, vErr := jwtService.ValidateAccessToken(r.Context(), tokenStr)
			if vErr != nil {
				switch {
				case errors.Is(vErr, jwt.ErrTokenExpired):
					utils.RespondErrorWithCode(
						w, http.StatusUnauthorized, utils.ErrCodeTokenExpired, "Token expired", nil, vErr,
					)
				case errors.Is(vErr, utils.ErrTokenRevoked):
					utils.RespondErrorWithCode(
						w, http.StatusUnauthorized, utils.ErrCodeTokenRevoked, "Token has been revoked", nil, vErr,
					)
				default:
					utils.RespondErrorWithCode(
						w, http.StatusUnauthorized, utils.ErrCodeUnauthorized, "Invalid token", nil, vErr,
					)
				}
				return
			}

			ctx := context.WithValue(r.Context(), ContextKeyClaims, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// ClaimsFromContext returns the validated claims attached by AuthMiddleware.
func ClaimsFromContext(ctx context.Context) (*services.Claims, bool) {
	claims, ok := ctx.Value(ContextKeyClaims).(*services.Claims)
	return claims, ok
}

func extractAccessToken(r *http.Request) (string, error) {
	h := r.Header.Get("Authorization")
	if !strings.HasPrefix(h, "Bearer ") {
		return "", errors.New("missing Authorization header")
	}
	return strings.TrimPrefix(h, "Bearer "), nil
}
