package models

import (
	"time"

	"github.com/google/uuid"
)

// BlacklistedToken is the revocation-ledger entry for a logged-out access
// token. Rows are irrelevant once ExpiresAt passes and are purged nightly.
type BlacklistedToken struct {
	ID        uuid.UUID `json:"id"`
	TokenID   string    `json:"token_id"`   // JTI (JWT ID) claim from the token
	ExpiresAt time.Time `json:"expires_at"` // natural expiry of the revoked token
	CreatedAt time.Time `json:"created_at"` // time when the token was blacklisted
}
