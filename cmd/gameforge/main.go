// gameforge is the AnonyChat game builder CLI — it assembles the static HTML
// tiles and standalone pages the portal serves for each game.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/anonychat/gameforge/internal/style"
	"github.com/spf13/cobra"
)

// Version metadata injected via ldflags.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// errExit is a sentinel error returned by cobra RunE functions to signal
// non-zero exit. The command has already written its own error to stderr.
var errExit = errors.New("exit")

// run executes the gameforge CLI with the given args.
func run(args []string, stdout, stderr io.Writer) int {
	root := newRootCmd(stdout, stderr)
	if args == nil {
		args = []string{}
	}
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)
	if err := root.Execute(); err != nil {
		if !errors.Is(err, errExit) {
			fmt.Fprintf(stderr, "gameforge: %v\n", err)
			var hinted *HintedError
			if errors.As(err, &hinted) {
				fmt.Fprintf(stderr, "  %s\n", style.Dim.Render(hinted.Hint))
			}
		}
		return 1
	}
	return 0
}

// newRootCmd creates the root cobra command with all subcommands.
func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	root := &cobra.Command{
		Use:   "gameforge",
		Short: "Build HTML tiles and pages for AnonyChat games",
		Long: `gameforge assembles the static HTML the AnonyChat portal serves for
each game: grid tiles referencing a cover image, and standalone pages
with the cover embedded as a data URI and the game inlined in an iframe.

Run 'gameforge tile' or 'gameforge page' with no flags on a terminal to
get an interactive form.`,
		SilenceErrors: true,
		SilenceUsage:  true,
		Args:          cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return cmd.Help()
			}
			fmt.Fprintf(stderr, "gameforge: unknown command %q\n", args[0]) //nolint:errcheck // best-effort stderr
			return errExit
		},
	}
	root.PersistentFlags().String("color", "auto", "Color output: always, auto, never")
	root.PersistentPreRunE = func(cmd *cobra.Command, _ []string) error {
		colorMode, _ := cmd.Flags().GetString("color")
		switch colorMode {
		case "always", "auto", "never":
			style.SetColorMode(colorMode)
			return nil
		default:
			return fmt.Errorf("invalid --color value %q: must be always, auto, or never", colorMode)
		}
	}
	root.AddCommand(
		newTileCmd(stdout, stderr),
		newPageCmd(stdout, stderr),
		newPreviewCmd(stdout, stderr),
		newConfigCmd(stdout, stderr),
		newVersionCmd(stdout),
	)
	return root
}
