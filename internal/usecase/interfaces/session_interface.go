package interfaces

import (
	"context"
	"time"
)

// MaxSessionLifetime bounds every admin session token, including those issued
// without SESSION_TTL, so revocation entries can always expire.
const MaxSessionLifetime = 30 * 24 * time.Hour

// SessionClaims is what a verified admin session token carries.
type SessionClaims struct {
	TokenID   string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// ISessionTokens issues and verifies the signed token stored in the admin cookie.
type ISessionTokens interface {
	Issue(ctx context.Context) (token string, claims SessionClaims, err error)
	Verify(ctx context.Context, token string) (SessionClaims, error)
}

// ISessionRevocations remembers tokens invalidated by logout.
type ISessionRevocations interface {
	Revoke(ctx context.Context, tokenID string, ttl time.Duration) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}
