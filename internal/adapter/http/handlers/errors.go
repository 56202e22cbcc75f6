package handlers

import (
	"errors"
	"net/http"

	"probuilder/internal/usecase"
	"probuilder/pkg"

	"github.com/gin-gonic/gin"
)

const (
	msgQuoteRequestSent    = "Obrigado! O seu pedido de orçamento foi enviado com sucesso. Entraremos em contacto brevemente."
	msgMissingFields       = "Por favor preencha todos os campos obrigatórios."
	msgIncorrectPassword   = "Palavra-passe incorreta."
	msgInternalError       = "Ocorreu um erro interno."
	msgImageTooLarge       = "A imagem excede o tamanho máximo permitido."
	msgImageNotImage       = "O ficheiro enviado não é uma imagem válida."
	msgQuoteRequestMissing = "Pedido de orçamento não encontrado."
	msgImageMissing        = "Imagem não encontrada."
	msgLoginRequired       = "É necessário iniciar sessão na área de administração."
)

func mapQuoteRequestError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrMissingQuoteRequestField):
		return pkg.NewDomainErrorSimple("MISSING_FIELDS", msgMissingFields, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrProjectImageTooLarge):
		return pkg.NewDomainErrorSimple("IMAGE_TOO_LARGE", msgImageTooLarge, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrProjectImageNotImage):
		return pkg.NewDomainErrorSimple("IMAGE_NOT_IMAGE", msgImageNotImage, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidQuoteRequestID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Pedido inválido.", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrQuoteRequestNotFound):
		return pkg.NewDomainErrorSimple("QUOTE_REQUEST_NOT_FOUND", msgQuoteRequestMissing, http.StatusNotFound)
	case errors.Is(err, usecase.ErrQuoteRequestImageNotFound):
		return pkg.NewDomainErrorSimple("IMAGE_NOT_FOUND", msgImageMissing, http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvalidStatusTransition):
		return pkg.NewDomainErrorSimple("INVALID_STATUS_TRANSITION", "Estado do pedido inválido.", http.StatusConflict)
	case errors.Is(err, usecase.ErrInvalidAdminPassword):
		return pkg.NewDomainErrorSimple("INVALID_PASSWORD", msgIncorrectPassword, http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrAdminNotAuthenticated):
		return pkg.NewDomainErrorSimple("NOT_AUTHENTICATED", msgLoginRequired, http.StatusUnauthorized)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", msgInternalError, err, http.StatusInternalServerError)
	}
}

func renderError(c *gin.Context, appErr *pkg.AppError) {
	c.HTML(appErr.HTTPStatus, "error.html", gin.H{
		"title":   "Erro",
		"code":    appErr.Code,
		"message": appErr.Message,
	})
}
