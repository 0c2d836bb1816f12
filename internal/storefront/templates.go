package storefront

import (
	"embed"
	"html/template"
)

// PageTemplate is the name the storefront page is rendered under.
const PageTemplate = "page.tmpl"

//go:embed templates/*.tmpl
var templatesFS embed.FS

// Templates parses the embedded page templates.
func Templates() (*template.Template, error) {
	return template.New("").Funcs(template.FuncMap{
		"stars": stars,
	}).ParseFS(templatesFS, "templates/*.tmpl")
}

func stars(n int) []struct{} {
	if n < 0 {
		n = 0
	}
	return make([]struct{}, n)
}
