// Package web holds the server-rendered page templates.
package web

import (
	"embed"
	"html/template"
	"slices"

	"fyyur/internal/presenter"
)

//go:embed templates/*.html
var templateFS embed.FS

func FuncMap() template.FuncMap {
	return template.FuncMap{
		"datetime": presenter.FormatDisplay,
		"has": func(list []string, s string) bool {
			return slices.Contains(list, s)
		},
	}
}

// Templates parses every page and layout template. Page templates are named by file name.
func Templates() (*template.Template, error) {
	return template.New("").Funcs(FuncMap()).ParseFS(templateFS, "templates/*.html")
}
