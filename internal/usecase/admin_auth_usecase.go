package usecase

import (
	"context"
	"crypto/subtle"
	"errors"
	"time"

	"probuilder/internal/domain/entities"
	"probuilder/internal/usecase/interfaces"

	"github.com/sirupsen/logrus"
)

var ErrInvalidAdminPassword = errors.New("invalid admin password")

// IAdminAuthUseCase is the admin session gate.
//
// Two states only: a browser is either authenticated or not. Login moves it to
// authenticated when the shared password matches, Logout moves it back.
type IAdminAuthUseCase interface {
	Login(ctx context.Context, password string) (string, entities.AdminSession, error)
	Resolve(ctx context.Context, token string) entities.AdminSession
	Logout(ctx context.Context, session entities.AdminSession) error
}

type AdminAuthUseCase struct {
	password    string
	tokens      interfaces.ISessionTokens
	revocations interfaces.ISessionRevocations
}

var _ IAdminAuthUseCase = (*AdminAuthUseCase)(nil)

// NewAdminAuthUseCase builds the gate. revocations may be nil, in which case
// logout only drops the cookie on the browser side.
func NewAdminAuthUseCase(password string, tokens interfaces.ISessionTokens, revocations interfaces.ISessionRevocations) *AdminAuthUseCase {
	return &AdminAuthUseCase{password: password, tokens: tokens, revocations: revocations}
}

func (u *AdminAuthUseCase) Login(ctx context.Context, password string) (string, entities.AdminSession, error) {
	if u.password == "" || subtle.ConstantTimeCompare([]byte(password), []byte(u.password)) != 1 {
		logrus.Warn("[admin][auth] login rejected: incorrect password")
		return "", entities.UnauthenticatedSession(), ErrInvalidAdminPassword
	}

	token, claims, err := u.tokens.Issue(ctx)
	if err != nil {
		return "", entities.UnauthenticatedSession(), err
	}
	logrus.WithField("token_id", claims.TokenID).Info("[admin][auth] login accepted")
	return token, sessionFromClaims(claims), nil
}

// Resolve turns a cookie value into a session. Any problem with the token
// yields an unauthenticated session rather than an error.
func (u *AdminAuthUseCase) Resolve(ctx context.Context, token string) entities.AdminSession {
	if token == "" {
		return entities.UnauthenticatedSession()
	}

	claims, err := u.tokens.Verify(ctx, token)
	if err != nil {
		logrus.WithError(err).Debug("[admin][auth] session token rejected")
		return entities.UnauthenticatedSession()
	}

	if u.revocations != nil {
		revoked, err := u.revocations.IsRevoked(ctx, claims.TokenID)
		if err != nil {
			logrus.WithError(err).WithField("token_id", claims.TokenID).Warn("[admin][auth] revocation check failed")
			return entities.UnauthenticatedSession()
		}
		if revoked {
			return entities.UnauthenticatedSession()
		}
	}
	return sessionFromClaims(claims)
}

func (u *AdminAuthUseCase) Logout(ctx context.Context, session entities.AdminSession) error {
	if !session.IsAuthenticated() || u.revocations == nil {
		return nil
	}

	ttl := interfaces.MaxSessionLifetime
	if !session.ExpiresAt.IsZero() {
		ttl = time.Until(session.ExpiresAt)
		if ttl <= 0 {
			return nil
		}
	}
	if err := u.revocations.Revoke(ctx, session.TokenID, ttl); err != nil {
		return err
	}
	logrus.WithField("token_id", session.TokenID).Info("[admin][auth] session revoked")
	return nil
}

func sessionFromClaims(c interfaces.SessionClaims) entities.AdminSession {
	return entities.AdminSession{
		Authenticated: true,
		TokenID:       c.TokenID,
		IssuedAt:      c.IssuedAt,
		ExpiresAt:     c.ExpiresAt,
	}
}
