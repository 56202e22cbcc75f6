package handlers

import (
	"bytes"
	"context"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"probuilder/internal/adapter/http/handlers/mocks"
	"probuilder/internal/domain/entities"
	"probuilder/internal/usecase"

	"go.uber.org/mock/gomock"
)

func quoteForm() url.Values {
	return url.Values{
		"contact_name":  {"Ana"},
		"contact_email": {"ana@example.com"},
		"service":       {"pintura"},
		"description":   {"Pintar sala"},
	}
}

func quoteMultipart(t *testing.T, image []byte) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	mw := multipart.NewWriter(body)
	for k, v := range quoteForm() {
		if err := mw.WriteField(k, v[0]); err != nil {
			t.Fatalf("write field: %v", err)
		}
	}
	fw, err := mw.CreateFormFile("project_image", "sala.png")
	if err != nil {
		t.Fatalf("create file: %v", err)
	}
	_, _ = fw.Write(image)
	if err := mw.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	return body, mw.FormDataContentType()
}

func postForm(path string, form url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func TestQuoteRequestHandler_Pages(t *testing.T) {
	for path, want := range map[string]string{
		"/":            "Solicite um Orçamento",
		"/remodelacao": "Remodelação",
		"/pintura":     "Pintura",
	} {
		t.Run(path, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			uc := mocks.NewMockIQuoteRequestUseCase(ctrl)
			h := NewQuoteRequestHandler(uc, 0)

			r := newTestRouter(t, entities.UnauthenticatedSession())
			r.GET("/", h.Index)
			r.GET("/remodelacao", h.Remodelacao)
			r.GET("/pintura", h.Pintura)

			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))

			if w.Code != http.StatusOK {
				t.Fatalf("expected 200, got %d", w.Code)
			}
			if !strings.Contains(w.Body.String(), want) {
				t.Fatalf("body missing %q", want)
			}
		})
	}
}

func TestQuoteRequestHandler_SubmitQuoteRequest(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIQuoteRequestUseCase(ctrl)
		h := NewQuoteRequestHandler(uc, 0)

		r := newTestRouter(t, entities.UnauthenticatedSession())
		r.POST("/", h.SubmitQuoteRequest)

		uc.EXPECT().Submit(gomock.Any(), usecase.SubmitQuoteRequestInput{
			ContactName:  "Ana",
			ContactEmail: "ana@example.com",
			Service:      "pintura",
			Description:  "Pintar sala",
		}).Return(entities.QuoteRequest{ID: "q1", Status: entities.QuoteRequestStatusPendente}, nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, postForm("/", quoteForm()))

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if !strings.Contains(w.Body.String(), "Obrigado! O seu pedido de orçamento foi enviado com sucesso.") {
			t.Fatalf("confirmation message missing")
		}
	})

	t.Run("missing field re-renders the form", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIQuoteRequestUseCase(ctrl)
		h := NewQuoteRequestHandler(uc, 0)

		r := newTestRouter(t, entities.UnauthenticatedSession())
		r.POST("/", h.SubmitQuoteRequest)

		form := quoteForm()
		form.Set("description", " ")
		uc.EXPECT().Submit(gomock.Any(), gomock.Any()).Return(entities.QuoteRequest{}, usecase.ErrMissingQuoteRequestField)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, postForm("/", form))

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		body := w.Body.String()
		if !strings.Contains(body, "Por favor preencha todos os campos obrigatórios.") {
			t.Fatalf("missing field message not rendered")
		}
		if !strings.Contains(body, `value="ana@example.com"`) {
			t.Fatalf("submitted values not kept in the form")
		}
	})

	t.Run("store failure renders error page", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIQuoteRequestUseCase(ctrl)
		h := NewQuoteRequestHandler(uc, 0)

		r := newTestRouter(t, entities.UnauthenticatedSession())
		r.POST("/", h.SubmitQuoteRequest)

		uc.EXPECT().Submit(gomock.Any(), gomock.Any()).Return(entities.QuoteRequest{}, errors.New("dynamodb down"))

		w := httptest.NewRecorder()
		r.ServeHTTP(w, postForm("/", quoteForm()))

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
		if !strings.Contains(w.Body.String(), "Ocorreu um erro interno.") {
			t.Fatalf("error message missing")
		}
		if strings.Contains(w.Body.String(), "dynamodb down") {
			t.Fatalf("internal cause leaked to the page")
		}
	})

	t.Run("oversized image is left to the use case", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIQuoteRequestUseCase(ctrl)
		h := NewQuoteRequestHandler(uc, 4)

		r := newTestRouter(t, entities.UnauthenticatedSession())
		r.POST("/", h.SubmitQuoteRequest)

		body, ct := quoteMultipart(t, []byte("0123456789"))
		uc.EXPECT().Submit(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, in usecase.SubmitQuoteRequestInput) (entities.QuoteRequest, error) {
				if in.Image == nil || len(in.Image.Data) != 5 {
					t.Fatalf("expected image capped at limit+1, got %+v", in.Image)
				}
				return entities.QuoteRequest{}, usecase.ErrProjectImageTooLarge
			})

		req := httptest.NewRequest(http.MethodPost, "/", body)
		req.Header.Set("Content-Type", ct)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		if !strings.Contains(w.Body.String(), "A imagem excede o tamanho máximo permitido.") {
			t.Fatalf("image size message missing")
		}
	})

	t.Run("body over the form limit is cut before binding", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIQuoteRequestUseCase(ctrl)
		h := NewQuoteRequestHandler(uc, 4)

		r := newTestRouter(t, entities.UnauthenticatedSession())
		r.POST("/", h.SubmitQuoteRequest)

		body, ct := quoteMultipart(t, bytes.Repeat([]byte("x"), 2<<20))

		req := httptest.NewRequest(http.MethodPost, "/", body)
		req.Header.Set("Content-Type", ct)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		if !strings.Contains(w.Body.String(), "A imagem excede o tamanho máximo permitido.") {
			t.Fatalf("image size message missing")
		}
	})

	t.Run("image passed to the use case", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIQuoteRequestUseCase(ctrl)
		h := NewQuoteRequestHandler(uc, 0)

		r := newTestRouter(t, entities.UnauthenticatedSession())
		r.POST("/", h.SubmitQuoteRequest)

		body, ct := quoteMultipart(t, []byte("png-bytes"))

		uc.EXPECT().Submit(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, in usecase.SubmitQuoteRequestInput) (entities.QuoteRequest, error) {
				if in.Image == nil || string(in.Image.Data) != "png-bytes" || in.Image.Filename != "sala.png" {
					t.Fatalf("unexpected image: %+v", in.Image)
				}
				return entities.QuoteRequest{ID: "q1"}, nil
			})

		req := httptest.NewRequest(http.MethodPost, "/", body)
		req.Header.Set("Content-Type", ct)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestMapQuoteRequestError(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{usecase.ErrMissingQuoteRequestField, http.StatusBadRequest},
		{usecase.ErrProjectImageTooLarge, http.StatusBadRequest},
		{usecase.ErrProjectImageNotImage, http.StatusBadRequest},
		{usecase.ErrInvalidQuoteRequestID, http.StatusBadRequest},
		{usecase.ErrQuoteRequestNotFound, http.StatusNotFound},
		{usecase.ErrQuoteRequestImageNotFound, http.StatusNotFound},
		{usecase.ErrInvalidStatusTransition, http.StatusConflict},
		{usecase.ErrAdminNotAuthenticated, http.StatusUnauthorized},
		{usecase.ErrInvalidAdminPassword, http.StatusUnauthorized},
		{errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		if got := mapQuoteRequestError(tc.err).HTTPStatus; got != tc.want {
			t.Fatalf("%v: expected %d, got %d", tc.err, tc.want, got)
		}
	}
}

func TestMapQuoteRequestError_AuthMessages(t *testing.T) {
	notAuth := mapQuoteRequestError(usecase.ErrAdminNotAuthenticated)
	badPassword := mapQuoteRequestError(usecase.ErrInvalidAdminPassword)

	if notAuth.Code == badPassword.Code {
		t.Fatalf("expected distinct codes, both %s", notAuth.Code)
	}
	if notAuth.Message == "Palavra-passe incorreta." {
		t.Fatalf("missing session must not read as a wrong password")
	}
	if badPassword.Message != "Palavra-passe incorreta." {
		t.Fatalf("unexpected password message %q", badPassword.Message)
	}
}
