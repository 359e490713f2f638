// Package view renders the site's HTML pages and SVG glyphs.
package view

import (
	"embed"
	"fmt"
	"html/template"
	"io"

	"imagine-algorithm/pkg/questionnaire"
)

//go:embed templates/*.html
var templatesFS embed.FS

const (
	PageHome          = "home"
	PageWorkshop      = "workshop"
	PageNotFound      = "not_found"
	PageDataTool      = "data_tool"
	PageDataSetTool   = "data_set_tool"
	PageConsideration = "consideration"
)

var pages = []string{PageHome, PageWorkshop, PageNotFound, PageDataTool, PageDataSetTool, PageConsideration}

const tileSize = 120

// Page is the data every template receives.
type Page struct {
	Title      string
	ShowReturn bool
	Data       any
}

type Renderer struct {
	templates map[string]*template.Template
}

var funcs = template.FuncMap{
	"tile": func(points int, active bool) template.HTML {
		return inline(func(w io.Writer) { WriteTile(w, points, active, tileSize) })
	},
	"card": func(sides int, color string) template.HTML {
		return inline(func(w io.Writer) { WriteCard(w, sides, color, 500) })
	},
	"seconds": func(ticks int) string {
		return fmt.Sprintf("%.1f", float64(ticks)/10)
	},
	"percent": func(step, total int) int {
		if total == 0 {
			return 0
		}
		return step * 100 / total
	},
	"shape":   questionnaire.ShapeFor,
	"closing": func() string { return questionnaire.Closing },
}

// NewRenderer parses every page against the shared base layout.
func NewRenderer() (*Renderer, error) {
	r := &Renderer{templates: make(map[string]*template.Template, len(pages))}
	for _, name := range pages {
		t, err := template.New(name).Funcs(funcs).ParseFS(templatesFS, "templates/base.html", "templates/"+name+".html")
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", name, err)
		}
		r.templates[name] = t
	}
	return r, nil
}

func (r *Renderer) Render(w io.Writer, name string, page Page) error {
	t, ok := r.templates[name]
	if !ok {
		return fmt.Errorf("unknown page %q", name)
	}
	return t.ExecuteTemplate(w, "base", page)
}
