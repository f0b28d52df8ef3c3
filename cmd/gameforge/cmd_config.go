package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/anonychat/gameforge/internal/config"
	"github.com/anonychat/gameforge/internal/style"
)

func newConfigCmd(stdout, stderr io.Writer) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show the effective gameforge configuration",
		Long: `Print the effective configuration and where it came from.

The config file is optional and lives at
$XDG_CONFIG_HOME/gameforge/config.yaml (fallback
~/.config/gameforge/config.yaml). A missing file means built-in
defaults; flags always override the file.

Use 'gameforge config init' to write a commented starter file.`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runConfigShow(stdout)
		},
	}

	cmd.AddCommand(newConfigInitCmd(stdout, stderr))

	return cmd
}

func runConfigShow(stdout io.Writer) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	path := config.Path()
	if _, err := os.Stat(path); err == nil {
		fmt.Fprintln(stdout, style.Dim.Render("# "+path))
	} else {
		fmt.Fprintln(stdout, style.Dim.Render("# built-in defaults ("+path+" not present)"))
	}

	out, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	fmt.Fprint(stdout, string(out))
	return nil
}

func newConfigInitCmd(stdout, _ io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Write a commented default config file",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			path, err := config.Init()
			if err != nil {
				return err
			}
			fmt.Fprintf(stdout, "%s Wrote %s\n", style.Success.Render(style.IconPass), style.Bold.Render(path))
			return nil
		},
	}
}
