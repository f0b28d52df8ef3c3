package main

import (
	"bytes"
	"encoding/base64"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestPageWritesDocument(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	dir := t.TempDir()
	outDir := filepath.Join(dir, "out")
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		t.Fatalf("creating out dir: %v", err)
	}

	htmlPath := filepath.Join(dir, "game.html")
	gameHTML := "<p class=\"intro\">line one</p>\n<p>line two</p>"
	if err := os.WriteFile(htmlPath, []byte(gameHTML), 0o644); err != nil {
		t.Fatalf("writing game html: %v", err)
	}

	coverPath := filepath.Join(dir, "cover.png")
	coverBytes := []byte{0x89, 'P', 'N', 'G', 0x00, 0x01, 0x02}
	if err := os.WriteFile(coverPath, coverBytes, 0o644); err != nil {
		t.Fatalf("writing cover: %v", err)
	}

	var stdout, stderr bytes.Buffer
	code := run([]string{
		"page",
		"--title", "Neon Drift: Remastered!",
		"--html-file", htmlPath,
		"--cover", coverPath,
		"--out-dir", outDir,
	}, &stdout, &stderr)
	if code != 0 {
		t.Fatalf("exit code = %d, stderr: %s", code, stderr.String())
	}

	// Filename keeps only letters, digits, spaces, hyphens, underscores.
	outPath := filepath.Join(outDir, "Neon Drift Remastered.html")
	data, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}
	out := string(data)

	wantURI := "data:image/png;base64," + base64.StdEncoding.EncodeToString(coverBytes)
	if !strings.Contains(out, wantURI) {
		t.Error("output missing the byte-identical cover data URI")
	}
	if !strings.Contains(out, "&quot;intro&quot;") {
		t.Error("srcdoc quotes not escaped")
	}
	if !strings.Contains(out, "line one</p> <p>line two") {
		t.Error("srcdoc newlines not collapsed to spaces")
	}
}

func TestPageMissingTitleRefuses(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	dir := t.TempDir()
	outDir := filepath.Join(dir, "out")
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		t.Fatalf("creating out dir: %v", err)
	}

	var stdout, stderr bytes.Buffer
	code := run([]string{
		"page",
		"--html-file", filepath.Join(dir, "game.html"),
		"--cover", filepath.Join(dir, "cover.png"),
		"--out-dir", outDir,
	}, &stdout, &stderr)
	if code != 1 {
		t.Fatalf("exit code = %d, want 1", code)
	}
	if !strings.Contains(stderr.String(), "game title is required") {
		t.Errorf("stderr = %q, want the missing-title error", stderr.String())
	}

	entries, err := os.ReadDir(outDir)
	if err != nil {
		t.Fatalf("reading out dir: %v", err)
	}
	if len(entries) != 0 {
		t.Error("refused generation must not write a file")
	}
}

func TestPageMissingOutDirFails(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	dir := t.TempDir()

	htmlPath := filepath.Join(dir, "game.html")
	if err := os.WriteFile(htmlPath, []byte("<p>hi</p>"), 0o644); err != nil {
		t.Fatalf("writing game html: %v", err)
	}
	coverPath := filepath.Join(dir, "c.jpg")
	if err := os.WriteFile(coverPath, []byte("jpg"), 0o644); err != nil {
		t.Fatalf("writing cover: %v", err)
	}

	// The output folder is never created for the user.
	var stdout, stderr bytes.Buffer
	code := run([]string{
		"page",
		"--title", "Game",
		"--html-file", htmlPath,
		"--cover", coverPath,
		"--out-dir", filepath.Join(dir, "does-not-exist"),
	}, &stdout, &stderr)
	if code != 1 {
		t.Fatalf("exit code = %d, want 1", code)
	}
}
