package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/poofware/blog-api/internal/models"
)

// TokenRepository is the revocation ledger for access tokens. Logout
// blacklists a token's JTI until its natural expiry; the auth middleware
// consults IsTokenBlacklisted on every authenticated request, so the lookup
// is indexed by token_id.
type TokenRepository interface {
	// BlacklistToken idempotently records that tokenID is no longer valid.
	// expiresAt bounds how long the entry must be retained.
	BlacklistToken(ctx context.Context, tokenID string, expiresAt time.Time) error

	IsTokenBlacklisted(ctx context.Context, tokenID string) (bool, error)

	// CleanupExpiredBlacklistedTokens purges ledger entries whose retention
	// window has passed. Run off the request hot path.
	CleanupExpiredBlacklistedTokens(ctx context.Context) error
}

type tokenRepository struct {
	db DB
}

func NewTokenRepository(db DB) TokenRepository {
	return &tokenRepository{db: db}
}

func (r *tokenRepository) BlacklistToken(ctx context.Context, tokenID string, expiresAt time.Time) error {
	entry := models.BlacklistedToken{
		ID:        uuid.New(),
		TokenID:   tokenID,
		ExpiresAt: expiresAt,
	}
	query := `
        INSERT INTO blacklisted_tokens (id, token_id, expires_at, created_at)
        VALUES ($1, $2, $3, NOW())
        ON CONFLICT (token_id) DO NOTHING
    `
	_, err := r.db.Exec(ctx, query, entry.ID, entry.TokenID, entry.ExpiresAt)
	return err
}

func (r *tokenRepository) IsTokenBlacklisted(ctx context.Context, tokenID string) (bool, error) {
	query := `
        SELECT EXISTS (
            SELECT 1 FROM blacklisted_tokens
            WHERE token_id = $1 AND expires_at > NOW()
        )
    `
	var exists bool
	err := r.db.QueryRow(ctx, query, tokenID).Scan(&exists)
	return exists, err
}

func (r *tokenRepository) CleanupExpiredBlacklistedTokens(ctx context.Context) error {
	query := `DELETE FROM blacklisted_tokens WHERE expires_at < NOW()`
	_, err := r.db.Exec(ctx, query)
	return err
}
