// Package markup renders the fixed HTML skeletons for game tiles and pages.
//
// The skeletons are embedded text/template files, deliberately not
// html/template: the portal substitutes values verbatim, and the only
// transformations it expects are the two escape helpers in this package.
// Auto-escaping would mangle the game markup the tiles carry.
package markup

import (
	"embed"
	"io"
	"text/template"
)

//go:embed templates/*.html.tmpl
var templateFS embed.FS

var templates = template.Must(template.New("markup").Funcs(template.FuncMap{
	"quot":   QuoteEscape,
	"srcdoc": SrcdocEscape,
}).ParseFS(templateFS, "templates/*.html.tmpl"))

// Tile holds the values substituted into the tile fragment.
type Tile struct {
	Name      string // display name, shown under the cover
	ImagePath string // cover path, referenced as-is and never embedded
	HTML      string // raw game markup, stored quote-escaped in a hidden node
}

// Page holds the values substituted into the standalone page document.
type Page struct {
	Title    string
	CoverURI string // data: URI for the cover image
	GameHTML string // raw game document, escaped into the iframe srcdoc
}

// RenderTile writes the portal tile fragment for t to w.
func RenderTile(w io.Writer, t Tile) error {
	return templates.ExecuteTemplate(w, "tile.html.tmpl", t)
}

// RenderPage writes the standalone page document for p to w.
func RenderPage(w io.Writer, p Page) error {
	return templates.ExecuteTemplate(w, "page.html.tmpl", p)
}
