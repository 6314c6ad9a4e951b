// Package templates embeds the server-rendered pages.
package templates

import (
	"embed"
	"html/template"

	"github.com/lin-avraham/Pizza2/utils"
)

//go:embed *.html
var files embed.FS

var funcs = template.FuncMap{
	"price": utils.FormatPrice,
}

// Load parses every page together so they can share the layout blocks.
func Load() (*template.Template, error) {
	return template.New("").Funcs(funcs).ParseFS(files, "*.html")
}
