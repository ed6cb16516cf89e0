// Package views renders the site's HTML pages. Templates are embedded at
// build time and parsed once on startup; every page template is combined
// with the shared layout.
package views

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"path/filepath"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
)

//go:embed templates/*.html
var templatesFS embed.FS

// Views implements echo.Renderer over the embedded templates.
type Views struct {
	templates map[string]*template.Template
}

func New() (*Views, error) {
	v := &Views{templates: make(map[string]*template.Template)}

	pages, err := fs.Glob(templatesFS, "templates/*.html")
	if err != nil {
		return nil, err
	}

	const layout = "templates/layout.html"
	for _, page := range pages {
		if page == layout {
			continue
		}
		name := strings.TrimSuffix(filepath.Base(page), ".html")
		tmpl, err := template.New("").Funcs(templateFuncs()).ParseFS(templatesFS, layout, page)
		if err != nil {
			return nil, fmt.Errorf("err parsing template %s: %w", name, err)
		}
		v.templates[name] = tmpl
	}

	return v, nil
}

func (v *Views) Render(w io.Writer, name string, data any, c echo.Context) error {
	tmpl, ok := v.templates[name]
	if !ok {
		return fmt.Errorf("unknown template: %s", name)
	}
	return tmpl.ExecuteTemplate(w, "layout", data)
}

func templateFuncs() template.FuncMap {
	return template.FuncMap{
		"date": func(t time.Time) string {
			return t.Format("January 2, 2006")
		},
		"datetime": func(t time.Time) string {
			return t.Format("Jan 2, 2006 at 3:04 PM")
		},
		"title": func(s string) string {
			if s == "" {
				return s
			}
			return strings.ToUpper(s[:1]) + s[1:]
		},
	}
}
