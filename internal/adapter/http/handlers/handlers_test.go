package handlers

import (
	"net/http"
	"testing"

	"probuilder/internal/adapter/http/middleware"
	"probuilder/internal/adapter/http/views"
	"probuilder/internal/domain/entities"

	"github.com/gin-gonic/gin"
)

var authenticated = entities.AdminSession{Authenticated: true, TokenID: "tok-1"}

// newTestRouter returns an engine with the site templates and a middleware
// injecting the given session in place of the cookie resolution.
func newTestRouter(t *testing.T, session entities.AdminSession) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	tmpl, err := views.Templates()
	if err != nil {
		t.Fatalf("parse templates: %v", err)
	}
	r := gin.New()
	r.SetHTMLTemplate(tmpl)
	r.Use(func(c *gin.Context) {
		middleware.SetAdminSession(c, session)
		c.Next()
	})
	return r
}

func assertRedirectToAdmin(t *testing.T, code int, header http.Header) {
	t.Helper()
	if code != http.StatusFound {
		t.Fatalf("expected 302, got %d", code)
	}
	if loc := header.Get("Location"); loc != "/admin" {
		t.Fatalf("expected redirect to /admin, got %q", loc)
	}
}
