// internal/web/embed.go
package web

import (
	"embed"
	"html/template"
)

//go:embed templates/*
var templatesFS embed.FS

func loadTemplates() *template.Template {
	return template.Must(template.ParseFS(templatesFS, "templates/*.html"))
}
