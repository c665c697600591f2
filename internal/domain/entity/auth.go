package entity

import (
	"time"

	"github.com/google/uuid"
)

// RefreshToken is a persisted session credential tied to a client. Logging out
// revokes every token the client holds, matching the bearer-token semantics of
// the admin API.
type RefreshToken struct {
	ID        uuid.UUID
	ClientID  uuid.UUID
	TokenHash string
	ExpiresAt time.Time
	CreatedAt time.Time
}

// IsExpired reports whether the token is past its expiry.
func (t *RefreshToken) IsExpired() bool {
	return time.Now().After(t.ExpiresAt)
}
