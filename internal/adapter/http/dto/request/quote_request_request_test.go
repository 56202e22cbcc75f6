package request

import (
	"bytes"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func multipartBody(t *testing.T, fields map[string]string, file []byte) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	for k, v := range fields {
		if err := w.WriteField(k, v); err != nil {
			t.Fatalf("write field: %v", err)
		}
	}
	if file != nil {
		fw, err := w.CreateFormFile(ProjectImageField, "sala.png")
		if err != nil {
			t.Fatalf("create file: %v", err)
		}
		_, _ = fw.Write(file)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	return body, w.FormDataContentType()
}

func newContext(req *http.Request) *gin.Context {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = req
	return c
}

func TestQuoteRequestForm_Binding(t *testing.T) {
	form := url.Values{
		"contact_name":  {"Ana"},
		"contact_email": {"ana@example.com"},
		"service":       {"pintura"},
		"description":   {"Pintar sala"},
	}
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	c := newContext(req)

	var f QuoteRequestForm
	if err := c.ShouldBind(&f); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	in := f.ToInput(nil)
	if in.ContactName != "Ana" || in.ContactEmail != "ana@example.com" || in.Service != "pintura" || in.Description != "Pintar sala" {
		t.Fatalf("unexpected input: %+v", in)
	}
	if in.Image != nil {
		t.Fatalf("expected no image")
	}
}

func TestReadProjectImage(t *testing.T) {
	t.Run("urlencoded form has no image", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("contact_name=Ana"))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		img, err := ReadProjectImage(newContext(req), 10)
		if err != nil || img != nil {
			t.Fatalf("expected nil, nil; got %v, %v", img, err)
		}
	})

	t.Run("multipart without file", func(t *testing.T) {
		body, ct := multipartBody(t, map[string]string{"contact_name": "Ana"}, nil)
		req := httptest.NewRequest(http.MethodPost, "/", body)
		req.Header.Set("Content-Type", ct)
		img, err := ReadProjectImage(newContext(req), 10)
		if err != nil || img != nil {
			t.Fatalf("expected nil, nil; got %v, %v", img, err)
		}
	})

	t.Run("file within limit", func(t *testing.T) {
		body, ct := multipartBody(t, nil, []byte("12345"))
		req := httptest.NewRequest(http.MethodPost, "/", body)
		req.Header.Set("Content-Type", ct)
		img, err := ReadProjectImage(newContext(req), 10)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if img == nil || string(img.Data) != "12345" || img.Filename != "sala.png" {
			t.Fatalf("unexpected image: %+v", img)
		}
	})

	t.Run("file over limit is capped, not rejected", func(t *testing.T) {
		body, ct := multipartBody(t, nil, bytes.Repeat([]byte("x"), 64))
		req := httptest.NewRequest(http.MethodPost, "/", body)
		req.Header.Set("Content-Type", ct)
		img, err := ReadProjectImage(newContext(req), 10)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if img == nil || len(img.Data) != 11 {
			t.Fatalf("expected 11 bytes read, got %+v", img)
		}
	})
}

func TestAdminLoginForm_Binding(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/admin", strings.NewReader("password=admin"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	c := newContext(req)

	var f AdminLoginForm
	if err := c.ShouldBind(&f); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f.Password != "admin" {
		t.Fatalf("expected admin, got %q", f.Password)
	}
}

func TestBodyLimit(t *testing.T) {
	if got := BodyLimit(10); got != 10+1<<20 {
		t.Fatalf("unexpected limit %d", got)
	}

	w := httptest.NewRecorder()
	body := http.MaxBytesReader(w, io.NopCloser(strings.NewReader("0123456789")), 4)
	_, err := io.ReadAll(body)
	if !IsBodyTooLarge(err) {
		t.Fatalf("expected body too large, got %v", err)
	}
	if IsBodyTooLarge(errors.New("other")) {
		t.Fatalf("unexpected match")
	}
}
