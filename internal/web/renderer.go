// Package web holds the embedded HTML templates and translation dictionaries.
package web

import (
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"path"
	"strings"

	"github.com/gin-gonic/gin/render"
)

//go:embed templates i18n
var assets embed.FS

// Renderer is a gin HTMLRender with one template set per page, each parsed
// together with its section layout.
type Renderer struct {
	templates map[string]*template.Template
	Dict      *Dictionary
}

var _ render.HTMLRender = (*Renderer)(nil)

func NewRenderer() (*Renderer, error) {
	dict, err := LoadDictionary(assets, "i18n")
	if err != nil {
		return nil, err
	}

	r := &Renderer{templates: make(map[string]*template.Template), Dict: dict}
	for _, section := range []string{"public", "admin"} {
		pages, err := fs.Glob(assets, path.Join("templates", section, "*.html"))
		if err != nil {
			return nil, err
		}
		layout := path.Join("templates", "layout", section+".html")
		for _, page := range pages {
			t, err := template.New(path.Base(layout)).Funcs(dict.funcMap()).ParseFS(assets, layout, page)
			if err != nil {
				return nil, fmt.Errorf("parse %s: %w", page, err)
			}
			name := section + "/" + strings.TrimSuffix(path.Base(page), ".html")
			r.templates[name] = t
		}
	}
	return r, nil
}

// Instance renders the named page ("public/index", "admin/dashboard") inside its layout.
func (r *Renderer) Instance(name string, data any) render.Render {
	t, ok := r.templates[name]
	if !ok {
		panic("web: unknown template " + name)
	}
	return render.HTML{Template: t, Name: "layout", Data: data}
}

// Has reports whether a page template exists.
func (r *Renderer) Has(name string) bool {
	_, ok := r.templates[name]
	return ok
}
