// Package tile builds the portal grid tile for a single game.
//
// A tile is an HTML fragment: a cover image referenced by path, the game name,
// and the raw game markup hidden in a text node the portal reads back when the
// tile is clicked.
package tile

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/anonychat/gameforge/internal/markup"
)

// Validation errors returned by Input.Validate.
var (
	ErrMissingName  = errors.New("game name is required")
	ErrMissingImage = errors.New("cover image is required")
	ErrMissingHTML  = errors.New("game html is required")
)

// Input carries the three user-supplied values for a tile.
type Input struct {
	Name      string // display name, also drives the default filename
	ImagePath string // cover image, referenced by path and never embedded
	HTML      string // raw game markup
}

// Normalize trims surrounding whitespace from every field.
func (in Input) Normalize() Input {
	in.Name = strings.TrimSpace(in.Name)
	in.ImagePath = strings.TrimSpace(in.ImagePath)
	in.HTML = strings.TrimSpace(in.HTML)
	return in
}

// Validate reports the first missing required field. Fields are checked after
// trimming, so whitespace-only values count as missing.
func (in Input) Validate() error {
	in = in.Normalize()
	switch {
	case in.Name == "":
		return ErrMissingName
	case in.ImagePath == "":
		return ErrMissingImage
	case in.HTML == "":
		return ErrMissingHTML
	}
	return nil
}

// Build renders the tile fragment for in.
func Build(in Input) (string, error) {
	if err := in.Validate(); err != nil {
		return "", err
	}
	in = in.Normalize()

	var buf bytes.Buffer
	err := markup.RenderTile(&buf, markup.Tile{
		Name:      in.Name,
		ImagePath: in.ImagePath,
		HTML:      in.HTML,
	})
	if err != nil {
		return "", fmt.Errorf("rendering tile: %w", err)
	}
	return buf.String(), nil
}

// DefaultFilename returns the suggested save name for a game: the trimmed
// name with spaces replaced by underscores, suffixed ".html".
func DefaultFilename(name string) string {
	return strings.ReplaceAll(strings.TrimSpace(name), " ", "_") + ".html"
}

// Write renders the tile and writes it to path as UTF-8 text. Validation runs
// before any I/O, so a refused input leaves no file behind.
func Write(path string, in Input) error {
	out, err := Build(in)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, []byte(out), 0o644); err != nil {
		return fmt.Errorf("writing tile: %w", err)
	}
	return nil
}
