package preview

import (
	"embed"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"strings"
	"sync"

	"github.com/flosch/pongo2/v6"

	"github.com/goliatone/go-uidom/pkg/toolkit/headless"
)

//go:embed templates/*.html
var templateFS embed.FS

const pageTemplate = "templates/preview.html"

// Option configures an HTML renderer.
type Option func(*HTMLRenderer)

// WithTitle sets the page heading. Defaults to "UI preview".
func WithTitle(title string) Option {
	return func(r *HTMLRenderer) {
		if trimmed := strings.TrimSpace(title); trimmed != "" {
			r.title = trimmed
		}
	}
}

// WithSource records the markup path shown under the heading.
func WithSource(path string) Option {
	return func(r *HTMLRenderer) {
		r.source = strings.TrimSpace(path)
	}
}

// HTMLRenderer renders widget outlines into a standalone HTML page backed by
// a pongo2 template set.
type HTMLRenderer struct {
	mu     sync.Mutex
	set    *pongo2.TemplateSet
	page   *pongo2.Template
	title  string
	source string
}

// NewHTMLRenderer constructs a renderer using the embedded page template.
func NewHTMLRenderer(options ...Option) *HTMLRenderer {
	r := &HTMLRenderer{
		set:   pongo2.NewSet("uidom-preview", pongo2.NewFSLoader(templateFS)),
		title: "UI preview",
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(r)
	}
	return r
}

// Render writes the page for roots to w.
func (r *HTMLRenderer) Render(w io.Writer, roots []*headless.Widget) error {
	if r == nil || r.set == nil {
		return errors.New("preview: html renderer is nil")
	}
	tmpl, err := r.template()
	if err != nil {
		return err
	}

	rows := sanitizeRows(Snapshot(roots))
	ctx := pongo2.Context{
		"title":  r.title,
		"source": r.source,
		"rows":   rows,
		"count":  len(rows),
	}
	if err := tmpl.ExecuteWriter(ctx, w); err != nil {
		return fmt.Errorf("preview: execute template %q: %w", pageTemplate, err)
	}
	return nil
}

func (r *HTMLRenderer) template() (*pongo2.Template, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.page != nil {
		return r.page, nil
	}
	tmpl, err := r.set.FromFile(pageTemplate)
	if err != nil {
		return nil, fmt.Errorf("preview: load template %q: %w", pageTemplate, err)
	}
	r.page = tmpl
	return tmpl, nil
}

// HTML renders roots with a default renderer.
func HTML(w io.Writer, roots []*headless.Widget, options ...Option) error {
	return NewHTMLRenderer(options...).Render(w, roots)
}

// TemplatesFS exposes the embedded page template so callers can copy or
// extend it.
func TemplatesFS() fs.FS {
	sub, err := fs.Sub(templateFS, "templates")
	if err != nil {
		return templateFS
	}
	return sub
}
