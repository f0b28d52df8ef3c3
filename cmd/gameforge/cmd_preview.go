package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/anonychat/gameforge/internal/config"
	"github.com/anonychat/gameforge/internal/preview"
	"github.com/anonychat/gameforge/internal/style"
)

func newPreviewCmd(stdout, stderr io.Writer) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "preview [dir]",
		Short: "Serve generated output over HTTP for browser checks",
		Long: `Serve a folder of generated tiles and pages on a loopback address so
they can be checked in a real browser. "/" lists the folder's .html
files, newest first.

With no argument the configured output directory is served, falling
back to the current directory. Stop with ctrl+c.

Examples:
  gameforge preview                    # serve the configured output dir
  gameforge preview dist               # serve ./dist
  gameforge preview --addr :8080       # override preview.addr`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := ""
			if len(args) == 1 {
				dir = args[0]
			}
			return runPreview(cmd.Context(), stdout, stderr, dir, addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (default: config preview.addr)")

	return cmd
}

func runPreview(ctx context.Context, stdout, stderr io.Writer, dir, addr string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	if strings.TrimSpace(dir) == "" {
		dir = cfg.OutputDir
		if dir == "" {
			dir = "."
		}
	}
	if strings.TrimSpace(addr) == "" {
		addr = cfg.Preview.Addr
	}

	info, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("preview directory: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("preview directory: %s is not a directory", dir)
	}

	logger := slog.New(slog.NewTextHandler(stderr, nil))
	srv := preview.New(dir, logger)

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Fprintf(stdout, "%s Previewing %s at %s\n",
		style.Info.Render("▸"), style.Bold.Render(dir), style.Bold.Render("http://"+addr))
	fmt.Fprintf(stdout, "  %s\n", style.Dim.Render("ctrl+c to stop"))

	return srv.Start(ctx, addr)
}
