package site

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kawalpreet/folio/internal/contact"
	"github.com/kawalpreet/folio/internal/nav"
	"github.com/kawalpreet/folio/internal/page"
	"github.com/kawalpreet/folio/internal/portfolio"
)

func renderDoc(t *testing.T, v View) *goquery.Document {
	t.Helper()
	r, err := NewRenderer()
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, r.Render(&buf, v))

	doc, err := goquery.NewDocumentFromReader(&buf)
	require.NoError(t, err)
	return doc
}

func testView(t *testing.T, st page.State) View {
	t.Helper()
	r, err := NewRenderer()
	require.NoError(t, err)
	r.now = func() time.Time { return time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC) }
	return r.NewView(portfolio.Default(), st)
}

func TestRenderSectionsAndNav(t *testing.T) {
	doc := renderDoc(t, testView(t, page.Initial()))

	for _, id := range nav.Sections {
		assert.Equal(t, 1, doc.Find("section#"+string(id)).Length(), "section %s", id)
	}

	links := doc.Find(".nav-desktop a.nav-link")
	require.Equal(t, len(nav.Sections), links.Length())
	links.Each(func(i int, s *goquery.Selection) {
		href, _ := s.Attr("href")
		assert.Equal(t, "#"+string(nav.Sections[i]), href)
	})

	active := doc.Find(".nav-desktop a.nav-link.active")
	require.Equal(t, 1, active.Length())
	assert.Equal(t, "Home", active.Text())
}

func TestRenderActiveSectionAndMenu(t *testing.T) {
	st := page.Initial()
	st.Active = nav.Projects
	st.MenuOpen = true
	doc := renderDoc(t, testView(t, st))

	assert.Equal(t, "Projects", doc.Find(".nav-desktop a.active").Text())
	assert.True(t, doc.Find("#mobile-menu").HasClass("open"))
	expanded, _ := doc.Find("#menu-toggle").Attr("aria-expanded")
	assert.Equal(t, "true", expanded)
	active, _ := doc.Find("body").Attr("data-active")
	assert.Equal(t, "projects", active)
}

func TestRenderContent(t *testing.T) {
	doc := renderDoc(t, testView(t, page.Initial()))

	assert.Contains(t, doc.Find("#hero h1").Text(), "Kawal Preet Kaur")
	assert.Equal(t, 3, doc.Find("#about .prose p").Length(), "markdown paragraphs")
	assert.Equal(t, 6, doc.Find("#projects article.project").Length())
	assert.Equal(t, 1, doc.Find("#projects article.project.featured").Length())
	assert.Equal(t, 4, doc.Find("#skills .skill-group").Length())
	assert.Equal(t, 4, doc.Find("#skills .bar-fill").Length())

	resume, ok := doc.Find(`a[href="/resume.pdf"]`).First().Attr("href")
	assert.True(t, ok)
	assert.Equal(t, "/resume.pdf", resume)
	assert.Contains(t, doc.Find("footer").Text(), "2025")
}

func TestRenderMarkdownInAbout(t *testing.T) {
	p := portfolio.Default()
	p.About.Paragraphs = []string{"I like **Go** and <script>alert(1)</script>"}

	r, err := NewRenderer()
	require.NoError(t, err)
	doc := renderDoc(t, r.NewView(p, page.Initial()))

	assert.Equal(t, "Go", doc.Find("#about .prose strong").Text())
	assert.Equal(t, 0, doc.Find("#about script").Length())
}

func TestRenderFormErrors(t *testing.T) {
	st := page.Initial()
	st.Form = contact.Submission{Email: "bad"}
	st.Errors = contact.Validate(st.Form)
	doc := renderDoc(t, testView(t, st))

	assert.Equal(t, "Name is required", strings.TrimSpace(doc.Find(`[data-error-for="name"]`).Text()))
	assert.Equal(t, "Email is invalid", strings.TrimSpace(doc.Find(`[data-error-for="email"]`).Text()))
	assert.Equal(t, "Message is required", strings.TrimSpace(doc.Find(`[data-error-for="message"]`).Text()))
	assert.True(t, doc.Find("#email").HasClass("invalid"))

	value, _ := doc.Find("#email").Attr("value")
	assert.Equal(t, "bad", value)
	_, hidden := doc.Find("#form-notice").Attr("hidden")
	assert.True(t, hidden)
}

func TestRenderNoticeAndCleanForm(t *testing.T) {
	st := page.Initial()
	st.Notice = page.SuccessNotice
	doc := renderDoc(t, testView(t, st))

	assert.Equal(t, page.SuccessNotice, doc.Find("#form-notice").Text())
	doc.Find("[data-error-for]").Each(func(_ int, s *goquery.Selection) {
		_, hidden := s.Attr("hidden")
		assert.True(t, hidden)
	})
}

func TestRenderEndpoints(t *testing.T) {
	v := testView(t, page.Initial())
	doc := renderDoc(t, v)
	_, hasAction := doc.Find("#contact-form").Attr("action")
	_, hasEndpoint := doc.Find("#contact-form").Attr("data-endpoint")
	_, hasLive := doc.Find("body").Attr("data-live")
	assert.False(t, hasAction)
	assert.False(t, hasEndpoint)
	assert.False(t, hasLive)

	v.FormAction = "/contact#contact"
	v.Endpoint = "/api/contact"
	v.LiveURL = "/ws/page"
	doc = renderDoc(t, v)
	action, _ := doc.Find("#contact-form").Attr("action")
	endpoint, _ := doc.Find("#contact-form").Attr("data-endpoint")
	live, _ := doc.Find("body").Attr("data-live")
	assert.Equal(t, "/contact#contact", action)
	assert.Equal(t, "/api/contact", endpoint)
	assert.Equal(t, "/ws/page", live)
}
