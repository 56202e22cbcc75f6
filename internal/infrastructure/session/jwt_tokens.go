package session

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"time"

	"probuilder/internal/usecase/interfaces"

	"github.com/golang-jwt/jwt"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const adminSubject = "admin"

var ErrInvalidSessionToken = errors.New("invalid session token")

// JWTTokens signs admin session tokens with HS256.
//
// A token carries no identity beyond "admin": the site has a single shared
// password, so the token id only exists to make logout revocable.
type JWTTokens struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

var _ interfaces.ISessionTokens = (*JWTTokens)(nil)

// NewJWTTokens builds the signer. An empty secret is replaced by a random one,
// so sessions do not survive a restart. ttl <= 0 (or above
// interfaces.MaxSessionLifetime) issues tokens valid for MaxSessionLifetime.
func NewJWTTokens(secret string, ttl time.Duration) (*JWTTokens, error) {
	key := []byte(secret)
	if len(key) == 0 {
		key = make([]byte, 32)
		if _, err := rand.Read(key); err != nil {
			return nil, fmt.Errorf("generate session secret: %w", err)
		}
		logrus.Warn("[admin][session] SESSION_SECRET not set; using a random per-process secret")
	}
	return &JWTTokens{secret: key, ttl: ttl, now: time.Now}, nil
}

func (j *JWTTokens) Issue(_ context.Context) (string, interfaces.SessionClaims, error) {
	now := j.now().UTC()
	claims := jwt.StandardClaims{
		Id:       uuid.NewString(),
		Subject:  adminSubject,
		IssuedAt: now.Unix(),
	}
	lifetime := j.ttl
	if lifetime <= 0 || lifetime > interfaces.MaxSessionLifetime {
		lifetime = interfaces.MaxSessionLifetime
	}
	claims.ExpiresAt = now.Add(lifetime).Unix()

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(j.secret)
	if err != nil {
		return "", interfaces.SessionClaims{}, fmt.Errorf("sign session token: %w", err)
	}
	return signed, toSessionClaims(claims), nil
}

func (j *JWTTokens) Verify(_ context.Context, token string) (interfaces.SessionClaims, error) {
	claims := &jwt.StandardClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return j.secret, nil
	})
	if err != nil {
		return interfaces.SessionClaims{}, fmt.Errorf("%w: %v", ErrInvalidSessionToken, err)
	}
	if !parsed.Valid || claims.Subject != adminSubject || claims.Id == "" {
		return interfaces.SessionClaims{}, ErrInvalidSessionToken
	}
	return toSessionClaims(*claims), nil
}

func toSessionClaims(c jwt.StandardClaims) interfaces.SessionClaims {
	out := interfaces.SessionClaims{
		TokenID:  c.Id,
		IssuedAt: time.Unix(c.IssuedAt, 0).UTC(),
	}
	if c.ExpiresAt > 0 {
		out.ExpiresAt = time.Unix(c.ExpiresAt, 0).UTC()
	}
	return out
}
