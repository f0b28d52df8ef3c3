package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/anonychat/gameforge/internal/config"
	"github.com/anonychat/gameforge/internal/style"
	"github.com/anonychat/gameforge/internal/tile"
	"github.com/anonychat/gameforge/internal/tui"
)

func newTileCmd(stdout, stderr io.Writer) *cobra.Command {
	var (
		name        string
		image       string
		htmlFile    string
		out         string
		interactive bool
	)

	cmd := &cobra.Command{
		Use:   "tile",
		Short: "Generate a portal grid tile for a game",
		Long: `Generate the HTML tile snippet the portal grid shows for a game.

The tile references the cover image by path (it is not embedded) and
carries the raw game markup in a hidden node, double quotes escaped.
The default filename is the game name with spaces replaced by
underscores, plus ".html".

On a terminal, missing inputs launch an interactive form instead.

Examples:
  gameforge tile --name "Neon Drift" --image covers/neon.png --html-file game.html
  cat game.html | gameforge tile --name "Neon Drift" --image covers/neon.png --html-file -
  gameforge tile -i                                  # force the interactive form`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTile(cmd.InOrStdin(), stdout, name, image, htmlFile, out, interactive)
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Game display name")
	cmd.Flags().StringVar(&image, "image", "", "Cover image path, referenced as-is in the tile")
	cmd.Flags().StringVar(&htmlFile, "html-file", "", "File holding the game HTML ('-' reads stdin)")
	cmd.Flags().StringVar(&out, "out", "", "Output file path (default: output dir + name-derived filename)")
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "Launch the interactive form")

	return cmd
}

func runTile(stdin io.Reader, stdout io.Writer, name, image, htmlFile, out string, interactive bool) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	missing := strings.TrimSpace(name) == "" ||
		strings.TrimSpace(image) == "" ||
		strings.TrimSpace(htmlFile) == ""
	if interactive || (missing && isInteractiveTerminal()) {
		html, err := readHTMLInput(stdin, htmlFile)
		if err != nil {
			return err
		}
		return runForm(stdout, tui.Config{
			Mode:          tui.ModeTile,
			TileInput:     tile.Input{Name: name, ImagePath: image, HTML: html},
			TileOut:       out,
			DefaultOutDir: cfg.OutputDir,
			GenerateTile:  writeTile(cfg),
		})
	}

	html, err := readHTMLInput(stdin, htmlFile)
	if err != nil {
		return err
	}

	in := tile.Input{Name: name, ImagePath: image, HTML: html}
	if err := in.Validate(); err != nil {
		return hintWrap(err)
	}

	path, err := writeTile(cfg)(in, out)
	if err != nil {
		return hintWrap(err)
	}
	fmt.Fprintf(stdout, "%s Written: %s\n", style.Success.Render(style.IconPass), style.Bold.Render(path))
	return nil
}

// writeTile returns the generation callback shared by the flag path and the
// interactive form: it resolves an empty output path against the configured
// output directory and writes the tile.
func writeTile(cfg *config.Config) func(in tile.Input, outPath string) (string, error) {
	return func(in tile.Input, outPath string) (string, error) {
		if strings.TrimSpace(outPath) == "" {
			outPath = filepath.Join(cfg.OutputDir, tile.DefaultFilename(in.Name))
		}
		if err := tile.Write(outPath, in); err != nil {
			return "", err
		}
		return outPath, nil
	}
}

// readHTMLInput loads the game HTML named by htmlFile: a file path, "-" for
// stdin, or empty for no input (left to presence validation).
func readHTMLInput(stdin io.Reader, htmlFile string) (string, error) {
	switch strings.TrimSpace(htmlFile) {
	case "":
		return "", nil
	case "-":
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("reading game html from stdin: %w", err)
		}
		return string(data), nil
	default:
		data, err := os.ReadFile(strings.TrimSpace(htmlFile))
		if err != nil {
			return "", fmt.Errorf("reading game html: %w", err)
		}
		return string(data), nil
	}
}
