package main

import (
	"html/template"
	"io/fs"
	"path/filepath"
	"time"

	"github.com/apiflux/blogapi/internal/blogservice"
	"github.com/apiflux/blogapi/ui"
)

// templateData is the single payload type every page template receives.
// Pages use the fields that apply to them and ignore the rest.
type templateData struct {
	Blog       *blogservice.Blog
	Blogs      []blogservice.Blog
	Comments   []blogservice.Comment
	Pagination blogservice.Pagination
	BlogID     int
}

var templateFuncs = template.FuncMap{
	"humanDate": func(t time.Time) string {
		return t.Format("2 Jan 2006 at 15:04")
	},
	"add": func(a, b int) int { return a + b },
	"sub": func(a, b int) int { return a - b },
}

func newTemplateCache() (map[string]*template.Template, error) {
	cache := map[string]*template.Template{}

	pages, err := fs.Glob(ui.Files, "html/pages/*.html")
	if err != nil {
		return nil, err
	}

	for _, page := range pages {
		name := filepath.Base(page)

		ts, err := template.New(name).Funcs(templateFuncs).ParseFS(ui.Files, "html/base.html", page)
		if err != nil {
			return nil, err
		}

		cache[name] = ts
	}

	return cache, nil
}
