// Package site renders the portfolio page, serves it with a live page
// session, and exports it as a static site.
package site

import (
	"bytes"
	"fmt"
	"html/template"
	"io"
	"time"

	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"

	"github.com/kawalpreet/folio/internal/contact"
	"github.com/kawalpreet/folio/internal/nav"
	"github.com/kawalpreet/folio/internal/page"
	"github.com/kawalpreet/folio/internal/portfolio"
)

// View is everything the page template needs.
type View struct {
	Profile       *portfolio.Profile
	State         page.State
	Links         []nav.Link
	Year          int
	BasePath      string
	FormAction    string // no-JavaScript form target; empty omits the attribute
	Endpoint      string // JSON endpoint the script posts to; empty validates locally
	LiveURL       string // websocket path for the live session; empty disables it
	SuccessNotice string
}

// Renderer turns a profile and page state into HTML.
type Renderer struct {
	md   goldmark.Markdown
	tmpl *template.Template
	now  func() time.Time
}

// NewRenderer parses the page template.
func NewRenderer() (*Renderer, error) {
	r := &Renderer{
		md: goldmark.New(
			goldmark.WithExtensions(
				extension.GFM,
				highlighting.NewHighlighting(
					highlighting.WithStyle("github"),
				),
			),
			goldmark.WithParserOptions(
				parser.WithAutoHeadingID(),
			),
		),
		now: time.Now,
	}

	tmpl, err := template.New("page").Funcs(template.FuncMap{
		"markdown": r.markdown,
	}).Parse(pageTemplate)
	if err != nil {
		return nil, fmt.Errorf("parsing page template: %w", err)
	}
	r.tmpl = tmpl
	return r, nil
}

// NewView fills the fields of a View that do not depend on the request.
func (r *Renderer) NewView(p *portfolio.Profile, st page.State) View {
	return View{
		Profile:       p,
		State:         st,
		Links:         nav.Links(),
		Year:          r.now().Year(),
		SuccessNotice: contact.SuccessNotice,
	}
}

// Render writes the page.
func (r *Renderer) Render(w io.Writer, v View) error {
	if err := r.tmpl.Execute(w, v); err != nil {
		return fmt.Errorf("rendering page: %w", err)
	}
	return nil
}

// markdown converts paragraphs of owner-authored markdown to HTML. Raw HTML
// in the source is not passed through.
func (r *Renderer) markdown(paragraphs []string) (template.HTML, error) {
	var buf bytes.Buffer
	for _, p := range paragraphs {
		if err := r.md.Convert([]byte(p), &buf); err != nil {
			return "", fmt.Errorf("converting markdown: %w", err)
		}
	}
	return template.HTML(buf.String()), nil
}
