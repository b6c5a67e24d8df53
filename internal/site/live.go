package site

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/gorilla/websocket"

	"github.com/kawalpreet/folio/internal/nav"
	"github.com/kawalpreet/folio/internal/page"
)

// maxLiveMessage bounds one client message; a scroll report with five
// sections is well under this.
const maxLiveMessage = 4 << 10

// checkOrigin accepts same-origin pages and, when an allow-list is set,
// any origin it admits. Requests without an Origin header are not from a
// browser and pass.
func (h *Handler) checkOrigin(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	if origin == "" {
		return true
	}
	if u, err := url.Parse(origin); err == nil && strings.EqualFold(u.Host, r.Host) {
		return true
	}
	return h.originAllowed != nil && h.originAllowed(origin)
}

// liveRequest is the incoming websocket message format.
type liveRequest struct {
	Type     string        `json:"type"` // "scroll", "toggle_menu" or "navigate"
	Offset   float64       `json:"offset"`
	Sections nav.Layout    `json:"sections"`
	Section  nav.SectionID `json:"section"`
}

type stateResponse struct {
	Type     string        `json:"type"`
	Active   nav.SectionID `json:"active"`
	MenuOpen bool          `json:"menu_open"`
}

type scrollToResponse struct {
	Type    string        `json:"type"`
	Section nav.SectionID `json:"section"`
}

type errorResponse struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

func (h *Handler) handleLive(w http.ResponseWriter, r *http.Request) {
	upgrader := websocket.Upgrader{CheckOrigin: h.checkOrigin}
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("site: websocket upgrade: %v", err)
		return
	}
	defer conn.Close()
	conn.SetReadLimit(maxLiveMessage)

	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-h.shutdown:
			conn.WriteControl(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseGoingAway, "server shutting down"),
				time.Now().Add(time.Second))
			conn.Close()
		case <-done:
		}
	}()

	newSession(conn).run(r.Context())
}

// session is one visitor's page, driven over a websocket. Only the read
// loop touches the controller and writes to the connection.
type session struct {
	conn *websocket.Conn
	ctrl *page.Controller
}

func newSession(conn *websocket.Conn) *session {
	s := &session{conn: conn}
	s.ctrl = page.NewController(page.EffectsFunc(s.apply))
	return s
}

func (s *session) apply(_ context.Context, in page.Intent) error {
	if to, ok := in.(page.ScrollTo); ok {
		return s.conn.WriteJSON(scrollToResponse{Type: "scroll_to", Section: to.Section})
	}
	return nil
}

func (s *session) run(ctx context.Context) {
	s.ctrl.Attach()
	defer s.ctrl.Detach()

	if err := s.sendState(); err != nil {
		log.Printf("site: websocket write: %v", err)
		return
	}

	for {
		_, msg, err := s.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("site: websocket read: %v", err)
			}
			return
		}

		var req liveRequest
		if err := json.Unmarshal(msg, &req); err != nil {
			s.sendError("invalid message format")
			continue
		}
		ev, err := req.event()
		if err != nil {
			s.sendError(err.Error())
			continue
		}

		before := s.ctrl.State()
		if _, err := s.ctrl.Dispatch(ctx, ev); err != nil {
			log.Printf("site: websocket write: %v", err)
			return
		}
		if _, scrolled := ev.(page.Scrolled); scrolled && s.ctrl.State().Active == before.Active {
			continue
		}
		if err := s.sendState(); err != nil {
			log.Printf("site: websocket write: %v", err)
			return
		}
	}
}

func (req liveRequest) event() (page.Event, error) {
	switch req.Type {
	case "scroll":
		return page.Scrolled{Offset: req.Offset, Layout: req.Sections}, nil
	case "toggle_menu":
		return page.MenuToggled{}, nil
	case "navigate":
		id, ok := nav.Parse(string(req.Section))
		if !ok {
			return nil, fmt.Errorf("unknown section: %s", req.Section)
		}
		return page.Navigated{Section: id}, nil
	default:
		return nil, fmt.Errorf("unknown message type: %s", req.Type)
	}
}

func (s *session) sendState() error {
	st := s.ctrl.State()
	return s.conn.WriteJSON(stateResponse{Type: "state", Active: st.Active, MenuOpen: st.MenuOpen})
}

func (s *session) sendError(message string) {
	if err := s.conn.WriteJSON(errorResponse{Type: "error", Message: message}); err != nil {
		log.Printf("site: websocket write error: %v", err)
	}
}
