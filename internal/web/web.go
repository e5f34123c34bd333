// Package web embarque les gabarits HTML de la vitrine.
package web

import (
	"embed"
	"html/template"
)

//go:embed templates/*.html
var files embed.FS

// Templates analyse tous les gabarits ; chaque page est nommée d'après son
// fichier (home.html, cart.html...) et partage header/footer de _layout.html.
func Templates() (*template.Template, error) {
	return template.New("").ParseFS(files, "templates/*.html")
}
