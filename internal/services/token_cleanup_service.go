package services

import (
	"context"
	"errors"
	"io"
	"strings"
	"time"

	"github.com/jackc/pgconn"
	"github.com/poofware/blog-api/internal/repositories"
	"github.com/poofware/blog-api/internal/utils"
)

// One retry on transient network errors (EOF, closed connection) with a
// small back-off.
const cleanupRetryDelay = 3 * time.Second

// TokenCleanupService purges expired blacklist entries each night so the
// revocation ledger stays bounded. Expired entries are already ignored on
// the hot-path lookup; this reclaims the storage.
type TokenCleanupService interface {
	CleanupDaily(ctx context.Context) error
}

type tokenCleanupService struct {
	tokenRepo repositories.TokenRepository
}

func NewTokenCleanupService(tokenRepo repositories.TokenRepository) TokenCleanupService {
	return &tokenCleanupService{tokenRepo: tokenRepo}
}

// runWithRetry executes op(ctx) and, if it returns a transient network
// error (EOF, pgconn safe-to-retry, or the common closed-connection
// message), waits a moment then retries once.
func (s *tokenCleanupService) runWithRetry(
	ctx context.Context,
	op func(context.Context) error,
) error {
	if err := op(ctx); err != nil {
		if errors.Is(err, io.EOF) || pgconn.SafeToRetry(err) ||
			strings.Contains(err.Error(), "connection was closed") {
			utils.Logger.WithError(err).Warn("token cleanup hit transient DB error; retrying once")
			time.Sleep(cleanupRetryDelay)
			return op(ctx)
		}
		return err
	}
	return nil
}

func (s *tokenCleanupService) CleanupDaily(ctx context.Context) error {
	if err := s.runWithRetry(ctx, s.tokenRepo.CleanupExpiredBlacklistedTokens); err != nil {
		utils.Logger.WithError(err).Error("Failed to cleanup expired blacklisted_tokens")
		return err
	}

	utils.Logger.Info("Daily blacklisted-token cleanup completed successfully.")
	return nil
}
