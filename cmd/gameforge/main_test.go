package main

import (
	"bytes"
	"strings"
	"testing"
)

func TestNoArgsShowsHelp(t *testing.T) {
	t.Parallel()
	var stdout, stderr bytes.Buffer
	code := run([]string{}, &stdout, &stderr)
	if code != 0 {
		t.Fatalf("exit code = %d, stderr: %s", code, stderr.String())
	}
	for _, cmd := range []string{"tile", "page", "preview", "config", "version"} {
		if !strings.Contains(stdout.String(), cmd) {
			t.Errorf("help missing command %q", cmd)
		}
	}
}

func TestUnknownCommand(t *testing.T) {
	t.Parallel()
	var stdout, stderr bytes.Buffer
	code := run([]string{"frobnicate"}, &stdout, &stderr)
	if code != 1 {
		t.Fatalf("exit code = %d, want 1", code)
	}
	if !strings.Contains(stderr.String(), "unknown command") {
		t.Errorf("stderr = %q, want an unknown-command error", stderr.String())
	}
}

func TestInvalidColorFlag(t *testing.T) {
	t.Parallel()
	var stdout, stderr bytes.Buffer
	code := run([]string{"--color", "sometimes", "version"}, &stdout, &stderr)
	if code != 1 {
		t.Fatalf("exit code = %d, want 1", code)
	}
	if !strings.Contains(stderr.String(), "--color") {
		t.Errorf("stderr = %q, want the --color error", stderr.String())
	}
}

func TestVersionOutput(t *testing.T) {
	t.Parallel()
	var stdout, stderr bytes.Buffer
	code := run([]string{"version"}, &stdout, &stderr)
	if code != 0 {
		t.Fatalf("exit code = %d, stderr: %s", code, stderr.String())
	}
	if !strings.Contains(stdout.String(), "gameforge dev") {
		t.Errorf("stdout = %q, want version line", stdout.String())
	}
}

func TestHintPrintedForMissingField(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	var stdout, stderr bytes.Buffer
	code := run([]string{"tile", "--image", "c.png"}, &stdout, &stderr)
	if code != 1 {
		t.Fatalf("exit code = %d, want 1", code)
	}
	if !strings.Contains(stderr.String(), "interactive form") {
		t.Errorf("stderr = %q, want the interactive-form hint", stderr.String())
	}
}
