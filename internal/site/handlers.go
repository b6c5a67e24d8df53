package site

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"net/http"
	"path"
	"path/filepath"
	"strconv"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/kawalpreet/folio/internal/assets"
	"github.com/kawalpreet/folio/internal/contact"
	"github.com/kawalpreet/folio/internal/page"
	"github.com/kawalpreet/folio/internal/portfolio"
)

const (
	livePath        = "/ws/page"
	contactFormPath = "/contact"
	contactAPIPath  = "/api/contact"

	maxFormBytes   = 64 << 10
	formThrottle   = 8
	maxPlaceholder = 2000
)

// Handler serves the page, its assets, and the live page session.
type Handler struct {
	profiles  *portfolio.Store
	contact   *contact.Service
	renderer  *Renderer
	assetsDir string
	filter    assets.Filter

	originAllowed func(origin string) bool

	shutdown  chan struct{}
	closeOnce sync.Once
}

// NewHandler creates a Handler. assetsDir may be empty.
func NewHandler(profiles *portfolio.Store, svc *contact.Service, renderer *Renderer, assetsDir string, filter assets.Filter) *Handler {
	return &Handler{
		profiles:  profiles,
		contact:   svc,
		renderer:  renderer,
		assetsDir: assetsDir,
		filter:    filter,
		shutdown:  make(chan struct{}),
	}
}

// AllowOrigins sets the check applied to cross-origin live sessions. Without
// one, only same-origin pages may connect.
func (h *Handler) AllowOrigins(allowed func(origin string) bool) {
	h.originAllowed = allowed
}

// Close ends every live session.
func (h *Handler) Close() {
	h.closeOnce.Do(func() { close(h.shutdown) })
}

// RegisterRoutes mounts the page, the no-JavaScript contact form, and the
// static assets.
func RegisterRoutes(r chi.Router, h *Handler) {
	r.Get("/", h.handleIndex)
	r.With(middleware.Throttle(formThrottle)).Post(contactFormPath, h.handleContactForm)
	r.Get("/style.css", handleStyle)
	r.Get("/script.js", handleScript)
	r.Get("/placeholder.svg", handlePlaceholder)
	if h.assetsDir != "" {
		r.Get("/*", h.handleAsset)
	}
}

// RegisterLiveRoutes mounts the websocket session. It must not sit behind
// middleware that buffers or times out responses.
func RegisterLiveRoutes(r chi.Router, h *Handler) {
	r.Get(livePath, h.handleLive)
}

func (h *Handler) handleIndex(w http.ResponseWriter, r *http.Request) {
	h.render(w, http.StatusOK, page.Initial())
}

// handleContactForm runs a form post through the page reducer, delivering
// valid submissions, and re-renders the page with the resulting state.
func (h *Handler) handleContactForm(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxFormBytes)
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	meta := contact.RequestMeta(r)
	ctrl := page.NewController(page.EffectsFunc(func(ctx context.Context, in page.Intent) error {
		d, ok := in.(page.Deliver)
		if !ok {
			return nil
		}
		_, _, err := h.contact.Submit(ctx, d.Submission, meta)
		return err
	}))

	ctx := r.Context()
	for _, f := range contact.Fields {
		if _, err := ctrl.Dispatch(ctx, page.InputChanged{Field: f, Value: r.PostFormValue(string(f))}); err != nil {
			log.Printf("site: contact form: %v", err)
		}
	}
	if _, err := ctrl.Dispatch(ctx, page.Submitted{}); err != nil {
		log.Printf("site: contact form: %v", err)
		http.Error(w, "could not save message", http.StatusInternalServerError)
		return
	}

	st := ctrl.State()
	status := http.StatusOK
	if !st.Errors.Valid() {
		status = http.StatusUnprocessableEntity
	}
	h.render(w, status, st)
}

func (h *Handler) render(w http.ResponseWriter, status int, st page.State) {
	v := h.renderer.NewView(h.profiles.Get(), st)
	v.FormAction = contactFormPath + "#contact"
	v.Endpoint = contactAPIPath
	v.LiveURL = livePath

	var buf bytes.Buffer
	if err := h.renderer.Render(&buf, v); err != nil {
		log.Printf("site: %v", err)
		http.Error(w, "could not render page", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	buf.WriteTo(w)
}

func (h *Handler) handleAsset(w http.ResponseWriter, r *http.Request) {
	rel := path.Clean("/" + chi.URLParam(r, "*"))[1:]
	if rel == "" || !h.filter.Allowed(rel) {
		http.NotFound(w, r)
		return
	}
	http.ServeFile(w, r, filepath.Join(h.assetsDir, filepath.FromSlash(rel)))
}

func handleStyle(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/css; charset=utf-8")
	w.Write([]byte(cssContent))
}

func handleScript(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/javascript; charset=utf-8")
	w.Write([]byte(jsContent))
}

// handlePlaceholder draws a neutral image of the requested size, used until
// real photos are added to the assets directory.
func handlePlaceholder(w http.ResponseWriter, r *http.Request) {
	width := dimension(r.URL.Query().Get("width"), 400)
	height := dimension(r.URL.Query().Get("height"), 400)
	w.Header().Set("Content-Type", "image/svg+xml")
	w.Header().Set("Cache-Control", "public, max-age=86400")
	w.Write(placeholderSVG(width, height))
}

func dimension(raw string, fallback int) int {
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return fallback
	}
	return min(n, maxPlaceholder)
}

func placeholderSVG(width, height int) []byte {
	return []byte(fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d" preserveAspectRatio="xMidYMid slice">`+
		`<rect width="100%%" height="100%%" fill="#e2e8f0"/>`+
		`<path d="M0 %d L%d %d L%d %d L%d %d Z" fill="#cbd5e1"/>`+
		`</svg>`,
		width, height, width, height,
		height, width/3, height/2, width/2, height*2/3, width, height))
}
