// Package page assembles the standalone HTML document for a single game.
//
// A page bundles everything into one file: the cover image embedded as a
// base64 data URI, the title, and the game document itself inlined through an
// iframe srcdoc attribute.
package page

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/anonychat/gameforge/internal/datauri"
	"github.com/anonychat/gameforge/internal/markup"
)

// Validation errors returned by Input.Validate.
var (
	ErrMissingTitle  = errors.New("game title is required")
	ErrMissingHTML   = errors.New("game html file is required")
	ErrMissingCover  = errors.New("cover image is required")
	ErrMissingOutDir = errors.New("output folder is required")
)

// Input carries the four user-supplied values for a page.
type Input struct {
	Title     string // page title, also drives the output filename
	HTMLPath  string // file holding the game document
	CoverPath string // cover image, embedded as a data URI
	OutDir    string // destination folder; must already exist
}

// Options tweaks how the cover is embedded.
type Options struct {
	Optimize    bool // re-encode the cover (downscale + JPEG) before embedding
	MaxWidth    int  // downscale target when Optimize is set
	JPEGQuality int  // JPEG quality when Optimize is set
}

// Normalize trims surrounding whitespace from every field.
func (in Input) Normalize() Input {
	in.Title = strings.TrimSpace(in.Title)
	in.HTMLPath = strings.TrimSpace(in.HTMLPath)
	in.CoverPath = strings.TrimSpace(in.CoverPath)
	in.OutDir = strings.TrimSpace(in.OutDir)
	return in
}

// Validate reports the first missing required field. Fields are checked after
// trimming, so whitespace-only values count as missing.
func (in Input) Validate() error {
	in = in.Normalize()
	switch {
	case in.Title == "":
		return ErrMissingTitle
	case in.HTMLPath == "":
		return ErrMissingHTML
	case in.CoverPath == "":
		return ErrMissingCover
	case in.OutDir == "":
		return ErrMissingOutDir
	}
	return nil
}

// Build reads the game document and the cover, embeds the cover as a data
// URI, and renders the full page. Validation runs before any I/O.
func Build(in Input, opts Options) (string, error) {
	if err := in.Validate(); err != nil {
		return "", err
	}
	in = in.Normalize()

	html, err := os.ReadFile(in.HTMLPath)
	if err != nil {
		return "", fmt.Errorf("reading game html: %w", err)
	}

	var uri string
	if opts.Optimize {
		uri, err = datauri.FromFileOptimized(in.CoverPath, opts.MaxWidth, opts.JPEGQuality)
	} else {
		uri, err = datauri.FromFile(in.CoverPath)
	}
	if err != nil {
		return "", fmt.Errorf("embedding cover: %w", err)
	}

	var buf bytes.Buffer
	err = markup.RenderPage(&buf, markup.Page{
		Title:    in.Title,
		CoverURI: uri,
		GameHTML: string(html),
	})
	if err != nil {
		return "", fmt.Errorf("rendering page: %w", err)
	}
	return buf.String(), nil
}

// Filename derives the output file name from a title: characters outside
// A-Za-z0-9, space, underscore and hyphen are dropped, trailing spaces are
// trimmed, and ".html" is appended. A title with nothing left after
// filtering yields the bare ".html".
func Filename(title string) string {
	var b strings.Builder
	for _, r := range title {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ', r == '_', r == '-':
			b.WriteRune(r)
		}
	}
	return strings.TrimRight(b.String(), " ") + ".html"
}

// Write builds the page and writes it into in.OutDir under Filename. The
// destination folder is not created; writing into a missing folder fails the
// way any unwritable destination does. Returns the path written.
func Write(in Input, opts Options) (string, error) {
	out, err := Build(in, opts)
	if err != nil {
		return "", err
	}
	in = in.Normalize()

	path := filepath.Join(in.OutDir, Filename(in.Title))
	if err := os.WriteFile(path, []byte(out), 0o644); err != nil {
		return "", fmt.Errorf("writing page: %w", err)
	}
	return path, nil
}
