package site

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/kawalpreet/folio/internal/assets"
	"github.com/kawalpreet/folio/internal/page"
	"github.com/kawalpreet/folio/internal/portfolio"
	"github.com/kawalpreet/folio/internal/progress"
)

// Generator exports the page as a static site.
type Generator struct {
	Profile   *portfolio.Profile
	Renderer  *Renderer
	OutputDir string
	AssetsDir string
	Filter    assets.Filter
	// Endpoint is the contact API the exported form posts to. When empty
	// the form only validates locally.
	Endpoint string
	Reporter progress.Reporter
}

// Result summarises an export.
type Result struct {
	Files           int
	AssetsCopied    int
	AssetsUnchanged int
}

// Generate writes index.html, the stylesheet, the script and the assets
// into OutputDir.
func (g *Generator) Generate() (Result, error) {
	var res Result

	files, err := assets.Collect(g.AssetsDir, g.Filter)
	if err != nil {
		return res, err
	}
	if err := os.MkdirAll(g.OutputDir, 0o755); err != nil {
		return res, fmt.Errorf("creating output dir: %w", err)
	}

	rep := g.Reporter
	if rep == nil {
		rep = progress.Nop{}
	}
	static := []struct {
		name  string
		write func(path string) error
	}{
		{"index.html", g.writeIndex},
		{"style.css", writeString(cssContent)},
		{"script.js", writeString(jsContent)},
		{"placeholder.svg", writeBytes(placeholderSVG(400, 400))},
	}

	rep.Start(len(static) + len(files))
	step := 0
	for _, s := range static {
		step++
		rep.Update(step, s.name)
		if err := s.write(filepath.Join(g.OutputDir, s.name)); err != nil {
			return res, fmt.Errorf("writing %s: %w", s.name, err)
		}
		res.Files++
	}

	for _, f := range files {
		step++
		rep.Update(step, f.RelPath)
		copied, err := assets.Copy(f, g.OutputDir)
		if err != nil {
			return res, err
		}
		if copied {
			res.AssetsCopied++
		} else {
			res.AssetsUnchanged++
		}
	}
	rep.Finish()
	return res, nil
}

func (g *Generator) writeIndex(path string) error {
	v := g.Renderer.NewView(g.Profile, page.Initial())
	v.Endpoint = g.Endpoint

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := g.Renderer.Render(f, v); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func writeString(content string) func(string) error {
	return writeBytes([]byte(content))
}

func writeBytes(content []byte) func(string) error {
	return func(path string) error {
		return os.WriteFile(path, content, 0o644)
	}
}
