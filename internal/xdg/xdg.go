// Package xdg provides XDG Base Directory support for gameforge.
package xdg

import (
	"os"
	"path/filepath"
)

const appName = "gameforge"

// ConfigHome returns the XDG config home directory.
// Uses $XDG_CONFIG_HOME if set, otherwise ~/.config.
func ConfigHome() string {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return dir
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config")
}

// ConfigDir returns the gameforge config directory: ConfigHome()/gameforge.
func ConfigDir() string {
	return filepath.Join(ConfigHome(), appName)
}
