package site

import (
	"context"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-chi/chi/v5"

	"github.com/kawalpreet/folio/internal/assets"
	"github.com/kawalpreet/folio/internal/contact"
	"github.com/kawalpreet/folio/internal/db"
	"github.com/kawalpreet/folio/internal/portfolio"
)

func setupHandler(t *testing.T, assetsDir string) (*chi.Mux, *contact.Store) {
	t.Helper()
	database, err := db.OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory: %v", err)
	}
	t.Cleanup(func() { database.Close() })

	store := contact.NewStore(database)
	sink := contact.LogSink{Logger: log.New(io.Discard, "", 0)}
	svc := contact.NewService(contact.NewDispatcher(store, sink))

	renderer, err := NewRenderer()
	if err != nil {
		t.Fatalf("NewRenderer: %v", err)
	}
	h := NewHandler(portfolio.NewStore(portfolio.Default()), svc, renderer, assetsDir, assets.Filter{})
	t.Cleanup(h.Close)

	r := chi.NewRouter()
	RegisterRoutes(r, h)
	RegisterLiveRoutes(r, h)
	return r, store
}

func postForm(r http.Handler, values url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/contact", strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHandleIndex(t *testing.T) {
	r, _ := setupHandler(t, "")

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Errorf("Content-Type = %q", ct)
	}

	doc, err := goquery.NewDocumentFromReader(w.Body)
	if err != nil {
		t.Fatalf("parsing page: %v", err)
	}
	if live, _ := doc.Find("body").Attr("data-live"); live != "/ws/page" {
		t.Errorf("data-live = %q", live)
	}
	if endpoint, _ := doc.Find("#contact-form").Attr("data-endpoint"); endpoint != "/api/contact" {
		t.Errorf("data-endpoint = %q", endpoint)
	}
}

func TestHandleContactFormValid(t *testing.T) {
	r, store := setupHandler(t, "")

	w := postForm(r, url.Values{"name": {"Jane"}, "email": {"jane@x.com"}, "message": {"Hi"}})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	doc, err := goquery.NewDocumentFromReader(w.Body)
	if err != nil {
		t.Fatalf("parsing page: %v", err)
	}
	if got := doc.Find("#form-notice").Text(); got != contact.SuccessNotice {
		t.Errorf("notice = %q", got)
	}
	for _, id := range []string{"#name", "#email"} {
		if v, _ := doc.Find(id).Attr("value"); v != "" {
			t.Errorf("%s value = %q, want empty", id, v)
		}
	}
	if got := doc.Find("#message").Text(); got != "" {
		t.Errorf("message = %q, want empty", got)
	}

	msgs, err := store.List(context.Background(), contact.ListFilter{})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(msgs) != 1 {
		t.Fatalf("expected 1 stored message, got %d", len(msgs))
	}
	if msgs[0].Name != "Jane" || msgs[0].Status != contact.StatusDelivered {
		t.Errorf("unexpected message: %+v", msgs[0])
	}
}

func TestHandleContactFormInvalid(t *testing.T) {
	r, store := setupHandler(t, "")

	w := postForm(r, url.Values{"name": {""}, "email": {"bad"}, "message": {""}})
	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", w.Code)
	}

	doc, err := goquery.NewDocumentFromReader(w.Body)
	if err != nil {
		t.Fatalf("parsing page: %v", err)
	}
	want := map[string]string{
		"name":    "Name is required",
		"email":   "Email is invalid",
		"message": "Message is required",
	}
	for field, msg := range want {
		if got := doc.Find(`[data-error-for="` + field + `"]`).Text(); got != msg {
			t.Errorf("%s error = %q, want %q", field, got, msg)
		}
	}
	if v, _ := doc.Find("#email").Attr("value"); v != "bad" {
		t.Errorf("email value = %q, want it kept", v)
	}

	n, err := store.Count(context.Background(), "")
	if err != nil {
		t.Fatalf("Count: %v", err)
	}
	if n != 0 {
		t.Errorf("invalid submission stored %d rows", n)
	}
}

func TestHandleStaticRoutes(t *testing.T) {
	r, _ := setupHandler(t, "")

	tests := []struct {
		path        string
		contentType string
	}{
		{"/style.css", "text/css"},
		{"/script.js", "text/javascript"},
		{"/placeholder.svg?height=200&width=300", "image/svg+xml"},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if w.Code != http.StatusOK {
				t.Fatalf("expected 200, got %d", w.Code)
			}
			if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, tt.contentType) {
				t.Errorf("Content-Type = %q, want %s", ct, tt.contentType)
			}
		})
	}
}

func TestPlaceholderDimensions(t *testing.T) {
	if got := dimension("300", 400); got != 300 {
		t.Errorf("dimension(300) = %d", got)
	}
	if got := dimension("", 400); got != 400 {
		t.Errorf("dimension(\"\") = %d", got)
	}
	if got := dimension("-5", 400); got != 400 {
		t.Errorf("dimension(-5) = %d", got)
	}
	if got := dimension("99999", 400); got != maxPlaceholder {
		t.Errorf("dimension(99999) = %d", got)
	}
	if svg := string(placeholderSVG(300, 200)); !strings.Contains(svg, `width="300" height="200"`) {
		t.Errorf("unexpected svg: %s", svg)
	}
}

func TestHandleAssets(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "resume.pdf"), []byte("%PDF-1.4"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte("SECRET=1"), 0o644); err != nil {
		t.Fatal(err)
	}
	r, _ := setupHandler(t, dir)

	req := httptest.NewRequest(http.MethodGet, "/resume.pdf", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK || w.Body.String() != "%PDF-1.4" {
		t.Errorf("resume: status %d body %q", w.Code, w.Body.String())
	}

	for _, p := range []string{"/.env", "/missing.png"} {
		req := httptest.NewRequest(http.MethodGet, p, nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusNotFound {
			t.Errorf("%s: expected 404, got %d", p, w.Code)
		}
	}
}
