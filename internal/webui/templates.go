package webui

import (
	"embed"
	"html/template"
)

//go:embed templates/*.html
var files embed.FS

// Templates parses the embedded page templates. Each template is addressed
// by its base filename, e.g. c.HTML(http.StatusOK, "upload.html", data).
func Templates() *template.Template {
	return template.Must(template.ParseFS(files, "templates/*.html"))
}
