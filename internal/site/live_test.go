package site

import (
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"

	"github.com/kawalpreet/folio/internal/assets"
	"github.com/kawalpreet/folio/internal/contact"
	"github.com/kawalpreet/folio/internal/db"
	"github.com/kawalpreet/folio/internal/nav"
	"github.com/kawalpreet/folio/internal/portfolio"
)

func dialLive(t *testing.T) *websocket.Conn {
	t.Helper()
	r, _ := setupHandler(t, "")
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + livePath
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	t.Cleanup(func() { conn.Close() })
	conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	return conn
}

func readState(t *testing.T, conn *websocket.Conn) stateResponse {
	t.Helper()
	var resp stateResponse
	if err := conn.ReadJSON(&resp); err != nil {
		t.Fatalf("read: %v", err)
	}
	if resp.Type != "state" {
		t.Fatalf("expected state message, got %+v", resp)
	}
	return resp
}

var liveLayout = nav.Layout{
	nav.Hero:     {Top: 0, Height: 800},
	nav.About:    {Top: 800, Height: 600},
	nav.Skills:   {Top: 1400, Height: 700},
	nav.Projects: {Top: 2100, Height: 900},
	nav.Contact:  {Top: 3000, Height: 700},
}

func TestLiveInitialState(t *testing.T) {
	conn := dialLive(t)

	st := readState(t, conn)
	if st.Active != nav.Hero || st.MenuOpen {
		t.Errorf("initial state = %+v", st)
	}
}

func TestLiveScroll(t *testing.T) {
	conn := dialLive(t)
	readState(t, conn)

	// Stays in hero: no reply expected, so follow with one that moves.
	if err := conn.WriteJSON(liveRequest{Type: "scroll", Offset: 10, Sections: liveLayout}); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := conn.WriteJSON(liveRequest{Type: "scroll", Offset: 750, Sections: liveLayout}); err != nil {
		t.Fatalf("write: %v", err)
	}

	st := readState(t, conn)
	if st.Active != nav.About {
		t.Errorf("active = %s, want about", st.Active)
	}
}

func TestLiveMenuAndNavigate(t *testing.T) {
	conn := dialLive(t)
	readState(t, conn)

	if err := conn.WriteJSON(liveRequest{Type: "toggle_menu"}); err != nil {
		t.Fatalf("write: %v", err)
	}
	if st := readState(t, conn); !st.MenuOpen {
		t.Error("expected menu open after toggle")
	}

	if err := conn.WriteJSON(liveRequest{Type: "navigate", Section: nav.Skills}); err != nil {
		t.Fatalf("write: %v", err)
	}
	var to scrollToResponse
	if err := conn.ReadJSON(&to); err != nil {
		t.Fatalf("read: %v", err)
	}
	if to.Type != "scroll_to" || to.Section != nav.Skills {
		t.Errorf("scroll_to = %+v", to)
	}
	if st := readState(t, conn); st.MenuOpen {
		t.Error("expected menu closed after navigating")
	}
}

func TestLiveErrors(t *testing.T) {
	conn := dialLive(t)
	readState(t, conn)

	tests := []struct {
		name string
		msg  string
		want string
	}{
		{"bad json", `{"type":`, "invalid message format"},
		{"unknown type", `{"type":"dance"}`, "unknown message type: dance"},
		{"unknown section", `{"type":"navigate","section":"blog"}`, "unknown section: blog"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := conn.WriteMessage(websocket.TextMessage, []byte(tt.msg)); err != nil {
				t.Fatalf("write: %v", err)
			}
			var resp errorResponse
			if err := conn.ReadJSON(&resp); err != nil {
				t.Fatalf("read: %v", err)
			}
			if resp.Type != "error" || resp.Message != tt.want {
				t.Errorf("got %+v, want error %q", resp, tt.want)
			}
		})
	}

	// The session survives bad input.
	if err := conn.WriteJSON(liveRequest{Type: "toggle_menu"}); err != nil {
		t.Fatalf("write: %v", err)
	}
	if st := readState(t, conn); !st.MenuOpen {
		t.Error("expected menu open")
	}
}

func dialWithOrigin(t *testing.T, allowed func(string) bool, origin string) (*websocket.Conn, *http.Response, error) {
	t.Helper()
	database, err := db.OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory: %v", err)
	}
	t.Cleanup(func() { database.Close() })
	svc := contact.NewService(contact.NewDispatcher(contact.NewStore(database), contact.LogSink{Logger: log.New(io.Discard, "", 0)}))
	renderer, err := NewRenderer()
	if err != nil {
		t.Fatalf("NewRenderer: %v", err)
	}
	h := NewHandler(portfolio.NewStore(portfolio.Default()), svc, renderer, "", assets.Filter{})
	h.AllowOrigins(allowed)
	t.Cleanup(h.Close)

	r := chi.NewRouter()
	RegisterLiveRoutes(r, h)
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	header := http.Header{}
	header.Set("Origin", origin)
	conn, resp, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http")+livePath, header)
	if conn != nil {
		t.Cleanup(func() { conn.Close() })
	}
	return conn, resp, err
}

func TestLiveRejectsForeignOrigin(t *testing.T) {
	_, resp, err := dialWithOrigin(t, nil, "https://evil.example")
	if err == nil {
		t.Fatal("expected handshake to fail")
	}
	if resp == nil || resp.StatusCode != http.StatusForbidden {
		t.Errorf("expected 403, got %v", resp)
	}
}

func TestLiveAllowsListedOrigin(t *testing.T) {
	allowed := func(origin string) bool { return origin == "https://kawal.dev" }

	conn, _, err := dialWithOrigin(t, allowed, "https://kawal.dev")
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	if st := readState(t, conn); st.Active != nav.Hero {
		t.Errorf("initial state = %+v", st)
	}

	if _, _, err := dialWithOrigin(t, allowed, "https://other.example"); err == nil {
		t.Error("unlisted origin should be rejected")
	}
}
