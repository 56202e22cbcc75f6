package middleware

import (
	"net/http"
	"time"

	"probuilder/internal/domain/entities"
	"probuilder/internal/usecase"

	"github.com/gin-gonic/gin"
)

const (
	AdminSessionCookie = "probuilder_admin"
	adminSessionKey    = "admin_session"
)

// CookieOptions controls how the admin session cookie is written.
type CookieOptions struct {
	Secure bool
	// MaxAge of zero writes a browser-session cookie.
	MaxAge time.Duration
}

// AdminSession resolves the session cookie once per request and stores the
// resulting entities.AdminSession in the gin context.
func AdminSession(auth usecase.IAdminAuthUseCase) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(AdminSessionCookie)
		if err != nil {
			token = ""
		}
		SetAdminSession(c, auth.Resolve(c.Request.Context(), token))
		c.Next()
	}
}

func SetAdminSession(c *gin.Context, s entities.AdminSession) {
	c.Set(adminSessionKey, s)
}

// AdminSessionFrom returns the session resolved by AdminSession, or an
// unauthenticated one when the middleware did not run.
func AdminSessionFrom(c *gin.Context) entities.AdminSession {
	v, ok := c.Get(adminSessionKey)
	if !ok {
		return entities.UnauthenticatedSession()
	}
	s, ok := v.(entities.AdminSession)
	if !ok {
		return entities.UnauthenticatedSession()
	}
	return s
}

func SetAdminSessionCookie(c *gin.Context, token string, opts CookieOptions) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(AdminSessionCookie, token, int(opts.MaxAge.Seconds()), "/", "", opts.Secure, true)
}

func ClearAdminSessionCookie(c *gin.Context, opts CookieOptions) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(AdminSessionCookie, "", -1, "/", "", opts.Secure, true)
}
