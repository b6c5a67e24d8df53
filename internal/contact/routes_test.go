package contact

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
)

func setupTestRouter(t *testing.T) (*chi.Mux, *Store) {
	t.Helper()
	store := setupTestStore(t)
	svc := NewService(NewDispatcher(store, &recordingSink{}))
	r := chi.NewRouter()
	RegisterRoutes(r, svc)
	return r, store
}

func postJSON(r http.Handler, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHandleSubmitSent(t *testing.T) {
	r, store := setupTestRouter(t)

	w := postJSON(r, `{"name":"Jane","email":"jane@x.com","message":"Hi"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp submitResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp.Status != "sent" || resp.Message != SuccessNotice {
		t.Errorf("unexpected response: %+v", resp)
	}

	n, err := store.Count(context.Background(), StatusDelivered)
	if err != nil {
		t.Fatalf("Count: %v", err)
	}
	if n != 1 {
		t.Errorf("expected 1 delivered message, got %d", n)
	}
}

func TestHandleSubmitInvalid(t *testing.T) {
	r, store := setupTestRouter(t)

	w := postJSON(r, `{"name":"","email":"bad","message":""}`)
	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", w.Code)
	}

	var resp submitResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	want := map[string]string{
		"name":    "Name is required",
		"email":   "Email is invalid",
		"message": "Message is required",
	}
	if len(resp.Errors) != len(want) {
		t.Fatalf("errors = %v", resp.Errors)
	}
	for k, v := range want {
		if resp.Errors[k] != v {
			t.Errorf("errors[%s] = %q, want %q", k, resp.Errors[k], v)
		}
	}

	n, err := store.Count(context.Background(), "")
	if err != nil {
		t.Fatalf("Count: %v", err)
	}
	if n != 0 {
		t.Errorf("invalid submission was stored (%d rows)", n)
	}
}

func TestHandleSubmitBadBody(t *testing.T) {
	r, _ := setupTestRouter(t)

	w := postJSON(r, `{"name":`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestHandleSubmitTooLarge(t *testing.T) {
	r, _ := setupTestRouter(t)

	big := strings.Repeat("a", maxBodyBytes+1)
	w := postJSON(r, `{"name":"Jane","email":"jane@x.com","message":"`+big+`"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for oversized body, got %d", w.Code)
	}
}

func TestHandleSubmitStoresRequestMeta(t *testing.T) {
	r, store := setupTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/contact",
		strings.NewReader(`{"name":"Jane","email":"jane@x.com","message":"Hi"}`))
	req.Header.Set("User-Agent", "folio-test")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	msgs, err := store.List(context.Background(), ListFilter{})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(msgs) != 1 || msgs[0].UserAgent != "folio-test" || msgs[0].RemoteAddr == "" {
		t.Errorf("unexpected stored meta: %+v", msgs)
	}
}
