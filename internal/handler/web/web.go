package web

import (
	"embed"
	"html/template"
)

//go:embed templates/*.html
var FS embed.FS

// Templates parses the page templates; names are the file base names.
func Templates() (*template.Template, error) {
	return template.ParseFS(FS, "templates/*.html")
}
