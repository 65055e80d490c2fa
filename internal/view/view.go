package view

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"sync"

	"github.com/gofiber/fiber/v2"
)

//go:embed templates/*.html
var templatesFS embed.FS

// Engine renders the embedded HTML templates. Templates are addressed by file
// name without extension, so templates/index.html is "index".
type Engine struct {
	once sync.Once
	tmpl *template.Template
	err  error
}

var _ fiber.Views = (*Engine)(nil)

// New returns an Engine over the embedded templates.
func New() *Engine {
	return &Engine{}
}

// Load parses the templates. It is safe to call more than once.
func (e *Engine) Load() error {
	e.once.Do(func() {
		e.tmpl, e.err = template.New("").ParseFS(templatesFS, "templates/*.html")
		if e.err != nil {
			e.err = fmt.Errorf("parse templates: %w", e.err)
		}
	})
	return e.err
}

// Render executes the named template with binding into w. Layouts are not supported.
func (e *Engine) Render(w io.Writer, name string, binding interface{}, _ ...string) error {
	if err := e.Load(); err != nil {
		return err
	}
	t := e.tmpl.Lookup(name + ".html")
	if t == nil {
		return fmt.Errorf("template %q not found", name)
	}
	return t.Execute(w, binding)
}
