package main

import (
	"fmt"
	"io"
	"os"

	bubbletea "github.com/charmbracelet/bubbletea"
	isatty "github.com/mattn/go-isatty"

	"github.com/anonychat/gameforge/internal/style"
	"github.com/anonychat/gameforge/internal/tui"
)

// isInteractiveTerminal reports whether both ends of the session are a TTY,
// which is what makes the interactive forms usable.
func isInteractiveTerminal() bool {
	return isTTY(os.Stdin) && isTTY(os.Stdout)
}

func isTTY(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// runForm launches the interactive form and reports its outcome the same way
// the flag-driven paths do.
func runForm(stdout io.Writer, cfg tui.Config) error {
	p := bubbletea.NewProgram(tui.New(cfg), bubbletea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("interactive form: %w", err)
	}

	res := final.(tui.Model).Result()
	switch {
	case res.Canceled:
		fmt.Fprintln(stdout, style.Dim.Render("Canceled — nothing written."))
		return nil
	case res.Err != nil:
		return res.Err
	}

	fmt.Fprintf(stdout, "%s Written: %s\n", style.Success.Render(style.IconPass), style.Bold.Render(res.Path))
	fmt.Fprintf(stdout, "\n  %s\n", style.Dim.Render("Next: check it with 'gameforge preview'."))
	return nil
}
