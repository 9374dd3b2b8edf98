// Package web renders the HTML pages of the read-only checklist viewer from
// embedded templates.
package web

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
)

//go:embed templates/*.html
var templateFiles embed.FS

// Pages renders the viewer templates.
type Pages struct {
	tmpl *template.Template
}

// IndexData is the input of the index page.
type IndexData struct {
	Names []string
}

// ListData is the input of a single checklist page.
type ListData struct {
	Name  string
	Steps []string
}

// NewPages parses the embedded templates.
func NewPages() (*Pages, error) {
	tmpl, err := template.ParseFS(templateFiles, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return &Pages{tmpl: tmpl}, nil
}

// MustPages is NewPages for startup code; the templates are compiled in, so
// a failure is a programming error.
func MustPages() *Pages {
	p, err := NewPages()
	if err != nil {
		panic(err)
	}
	return p
}

// Index writes the index page listing every checklist name.
func (p *Pages) Index(w io.Writer, data IndexData) error {
	return p.render(w, "index.html", data)
}

// List writes the page for one checklist.
func (p *Pages) List(w io.Writer, data ListData) error {
	return p.render(w, "list.html", data)
}

// render executes into a buffer first so a template error never leaves a
// half-written page behind.
func (p *Pages) render(w io.Writer, name string, data any) error {
	var buf bytes.Buffer
	if err := p.tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		return fmt.Errorf("render %s: %w", name, err)
	}
	_, err := buf.WriteTo(w)
	return err
}
