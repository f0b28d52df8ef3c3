package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/anonychat/gameforge/internal/config"
	"github.com/anonychat/gameforge/internal/page"
	"github.com/anonychat/gameforge/internal/style"
	"github.com/anonychat/gameforge/internal/tui"
)

func newPageCmd(stdout, stderr io.Writer) *cobra.Command {
	var (
		title       string
		htmlFile    string
		cover       string
		outDir      string
		optimize    bool
		interactive bool
	)

	cmd := &cobra.Command{
		Use:   "page",
		Short: "Generate a standalone HTML page for a game",
		Long: `Generate a complete standalone HTML page for a game.

The cover image is embedded as a base64 data URI (subtype taken from
the file extension, content never inspected) and the game document is
inlined through an iframe srcdoc attribute with quotes escaped and
newlines collapsed. The output filename is the title stripped to
letters, digits, spaces, hyphens and underscores, plus ".html".

On a terminal, missing inputs launch an interactive form instead.

Examples:
  gameforge page --title "Neon Drift" --html-file game.html --cover covers/neon.png
  gameforge page --title "Neon Drift" --html-file game.html --cover covers/neon.png --out-dir dist
  gameforge page --optimize ...                      # re-encode the cover (downscale + JPEG)
  gameforge page -i                                  # force the interactive form`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runPage(stdout, stderr, title, htmlFile, cover, outDir, optimize, interactive)
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Page title, also drives the output filename")
	cmd.Flags().StringVar(&htmlFile, "html-file", "", "File holding the game document")
	cmd.Flags().StringVar(&cover, "cover", "", "Cover image to embed (png/jpg/jpeg/webp)")
	cmd.Flags().StringVar(&outDir, "out-dir", "", "Output folder (default: configured output dir, else current dir)")
	cmd.Flags().BoolVar(&optimize, "optimize", false, "Re-encode the cover before embedding")
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "Launch the interactive form")

	return cmd
}

func runPage(stdout, stderr io.Writer, title, htmlFile, cover, outDir string, optimize, interactive bool) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	missing := strings.TrimSpace(title) == "" ||
		strings.TrimSpace(htmlFile) == "" ||
		strings.TrimSpace(cover) == ""
	if interactive || (missing && isInteractiveTerminal()) {
		return runForm(stdout, tui.Config{
			Mode: tui.ModePage,
			PageInput: page.Input{
				Title:     title,
				HTMLPath:  htmlFile,
				CoverPath: cover,
				OutDir:    outDir,
			},
			Optimize:      optimize,
			DefaultOutDir: cfg.OutputDir,
			GeneratePage:  writePage(cfg),
		})
	}

	in := page.Input{
		Title:     title,
		HTMLPath:  htmlFile,
		CoverPath: cover,
		OutDir:    resolveOutDir(outDir, cfg),
	}
	if err := in.Validate(); err != nil {
		return hintWrap(err)
	}

	// Re-encoding a large cover can take a moment.
	sp := style.StartSpinner(stderr, "Generating page...")
	path, err := writePage(cfg)(in, optimize)
	sp.Stop()
	if err != nil {
		return hintWrap(err)
	}
	fmt.Fprintf(stdout, "%s Written: %s\n", style.Success.Render(style.IconPass), style.Bold.Render(path))
	return nil
}

// writePage returns the generation callback shared by the flag path and the
// interactive form.
func writePage(cfg *config.Config) func(in page.Input, optimize bool) (string, error) {
	return func(in page.Input, optimize bool) (string, error) {
		return page.Write(in, page.Options{
			Optimize:    optimize,
			MaxWidth:    cfg.Image.MaxWidth,
			JPEGQuality: cfg.Image.JPEGQuality,
		})
	}
}

// resolveOutDir applies the flag > config > current-dir precedence for the
// output folder. The folder itself is never created here.
func resolveOutDir(flagValue string, cfg *config.Config) string {
	if v := strings.TrimSpace(flagValue); v != "" {
		return v
	}
	if cfg.OutputDir != "" {
		return cfg.OutputDir
	}
	return "."
}
