package handlers

import (
	"net/http"

	request "probuilder/internal/adapter/http/dto/request"
	"probuilder/internal/usecase"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// QuoteRequestHandler serves the public pages and the quote request form.
type QuoteRequestHandler struct {
	usecase       usecase.IQuoteRequestUseCase
	maxImageBytes int64
}

func NewQuoteRequestHandler(uc usecase.IQuoteRequestUseCase, maxImageBytes int64) *QuoteRequestHandler {
	if maxImageBytes <= 0 {
		maxImageBytes = usecase.DefaultMaxProjectImageBytes
	}
	return &QuoteRequestHandler{usecase: uc, maxImageBytes: maxImageBytes}
}

func (h *QuoteRequestHandler) Index(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", gin.H{"form": request.QuoteRequestForm{}})
}

func (h *QuoteRequestHandler) Remodelacao(c *gin.Context) {
	c.HTML(http.StatusOK, "remodelacao.html", gin.H{"title": "Remodelação"})
}

func (h *QuoteRequestHandler) Pintura(c *gin.Context) {
	c.HTML(http.StatusOK, "pintura.html", gin.H{"title": "Pintura"})
}

// SubmitQuoteRequest handles the "Solicite um Orçamento" form.
//
// The body is capped before parsing. Field presence is checked by the use case
// before the attached image, so validation messages follow that order.
// Validation problems re-render the form with the submitted values and a 400;
// anything else unexpected renders the error page.
func (h *QuoteRequestHandler) SubmitQuoteRequest(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, request.BodyLimit(h.maxImageBytes))

	var form request.QuoteRequestForm
	if err := c.ShouldBind(&form); err != nil {
		if request.IsBodyTooLarge(err) {
			log.WithError(err).Warn("[quote][handler] form body over limit")
			h.renderForm(c, http.StatusBadRequest, form, mapQuoteRequestError(usecase.ErrProjectImageTooLarge).Message)
			return
		}
		log.WithError(err).Warn("[quote][handler] invalid form payload")
		h.renderForm(c, http.StatusBadRequest, form, msgMissingFields)
		return
	}

	image, err := request.ReadProjectImage(c, h.maxImageBytes)
	if err != nil {
		log.WithError(err).Error("[quote][handler] failed reading project image")
		renderError(c, mapQuoteRequestError(err))
		return
	}

	created, err := h.usecase.Submit(c.Request.Context(), form.ToInput(image))
	if err != nil {
		appErr := mapQuoteRequestError(err)
		if appErr.HTTPStatus == http.StatusBadRequest {
			h.renderForm(c, appErr.HTTPStatus, form, appErr.Message)
			return
		}
		log.WithError(err).Error("[quote][handler] failed to submit quote request")
		renderError(c, appErr)
		return
	}

	log.WithField("id", created.ID).Info("[quote][handler] quote request received")
	c.HTML(http.StatusOK, "index.html", gin.H{
		"form":    request.QuoteRequestForm{},
		"success": msgQuoteRequestSent,
	})
}

func (h *QuoteRequestHandler) renderForm(c *gin.Context, status int, form request.QuoteRequestForm, message string) {
	c.HTML(status, "index.html", gin.H{
		"form":  form,
		"error": message,
	})
}
