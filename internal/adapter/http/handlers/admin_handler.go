package handlers

import (
	"errors"
	"net/http"

	request "probuilder/internal/adapter/http/dto/request"
	response "probuilder/internal/adapter/http/dto/response"
	"probuilder/internal/adapter/http/middleware"
	"probuilder/internal/usecase"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

const adminPath = "/admin"

// AdminHandler serves the password-gated admin panel.
//
// Every action reads the AdminSession resolved by middleware.AdminSession and
// hands it to the use cases; an unauthenticated browser never reaches the store.
type AdminHandler struct {
	quotes  usecase.IQuoteRequestUseCase
	auth    usecase.IAdminAuthUseCase
	cookies middleware.CookieOptions
}

func NewAdminHandler(quotes usecase.IQuoteRequestUseCase, auth usecase.IAdminAuthUseCase, cookies middleware.CookieOptions) *AdminHandler {
	return &AdminHandler{quotes: quotes, auth: auth, cookies: cookies}
}

// Panel shows the login form, or the list of requests for an authenticated admin.
func (h *AdminHandler) Panel(c *gin.Context) {
	session := middleware.AdminSessionFrom(c)
	if !session.IsAuthenticated() {
		h.renderLogin(c, http.StatusOK, "")
		return
	}

	list, err := h.quotes.List(c.Request.Context(), session)
	if err != nil {
		if errors.Is(err, usecase.ErrAdminNotAuthenticated) {
			h.renderLogin(c, http.StatusOK, "")
			return
		}
		log.WithError(err).Error("[admin][handler] failed listing quote requests")
		renderError(c, mapQuoteRequestError(err))
		return
	}

	c.HTML(http.StatusOK, "admin.html", gin.H{
		"title":         "Admin",
		"authenticated": true,
		"requests":      response.FromQuoteRequests(list),
	})
}

func (h *AdminHandler) Login(c *gin.Context) {
	var form request.AdminLoginForm
	_ = c.ShouldBind(&form)

	token, _, err := h.auth.Login(c.Request.Context(), form.Password)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidAdminPassword) {
			h.renderLogin(c, http.StatusOK, msgIncorrectPassword)
			return
		}
		log.WithError(err).Error("[admin][handler] failed issuing session")
		renderError(c, mapQuoteRequestError(err))
		return
	}

	middleware.SetAdminSessionCookie(c, token, h.cookies)
	c.Redirect(http.StatusFound, adminPath)
}

func (h *AdminHandler) Logout(c *gin.Context) {
	if err := h.auth.Logout(c.Request.Context(), middleware.AdminSessionFrom(c)); err != nil {
		log.WithError(err).Warn("[admin][handler] failed revoking session")
	}
	middleware.ClearAdminSessionCookie(c, h.cookies)
	c.Redirect(http.StatusFound, adminPath)
}

// AcceptRequest marks a request as Aceite. Unauthenticated calls and unknown
// ids change nothing and land back on the panel.
func (h *AdminHandler) AcceptRequest(c *gin.Context) {
	id := c.Param("id")
	_, err := h.quotes.Accept(c.Request.Context(), middleware.AdminSessionFrom(c), id)
	if err != nil && !h.logIgnorable(err, id, "accept") {
		log.WithError(err).WithField("id", id).Error("[admin][handler] failed accepting quote request")
		renderError(c, mapQuoteRequestError(err))
		return
	}
	c.Redirect(http.StatusFound, adminPath)
}

func (h *AdminHandler) DeleteRequest(c *gin.Context) {
	id := c.Param("id")
	err := h.quotes.Delete(c.Request.Context(), middleware.AdminSessionFrom(c), id)
	if err != nil && !h.logIgnorable(err, id, "delete") {
		log.WithError(err).WithField("id", id).Error("[admin][handler] failed deleting quote request")
		renderError(c, mapQuoteRequestError(err))
		return
	}
	c.Redirect(http.StatusFound, adminPath)
}

// ProjectImage streams the image attached to a request.
func (h *AdminHandler) ProjectImage(c *gin.Context) {
	id := c.Param("id")
	rc, contentType, err := h.quotes.OpenImage(c.Request.Context(), middleware.AdminSessionFrom(c), id)
	if err != nil {
		if errors.Is(err, usecase.ErrAdminNotAuthenticated) {
			c.Redirect(http.StatusFound, adminPath)
			return
		}
		appErr := mapQuoteRequestError(err)
		if appErr.HTTPStatus >= http.StatusInternalServerError {
			log.WithError(err).WithField("id", id).Error("[admin][handler] failed opening project image")
		}
		renderError(c, appErr)
		return
	}
	defer rc.Close()

	c.DataFromReader(http.StatusOK, -1, contentType, rc, map[string]string{
		"Cache-Control": "private, max-age=300",
	})
}

func (h *AdminHandler) logIgnorable(err error, id, action string) bool {
	entry := log.WithFields(log.Fields{"id": id, "action": action})
	switch {
	case errors.Is(err, usecase.ErrAdminNotAuthenticated):
		entry.Info("[admin][handler] ignored action without an authenticated session")
	case errors.Is(err, usecase.ErrQuoteRequestNotFound), errors.Is(err, usecase.ErrInvalidQuoteRequestID):
		entry.Warn("[admin][handler] ignored action on unknown quote request")
	default:
		return false
	}
	return true
}

func (h *AdminHandler) renderLogin(c *gin.Context, status int, message string) {
	c.HTML(status, "admin.html", gin.H{
		"title":         "Admin",
		"authenticated": false,
		"error":         message,
	})
}
