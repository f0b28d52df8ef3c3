package page

import (
	"bytes"
	"encoding/base64"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// writeFixtures lays out a game html file and a fake cover, returning a valid
// Input pointing at them.
func writeFixtures(t *testing.T) (Input, []byte) {
	t.Helper()
	dir := t.TempDir()

	htmlPath := filepath.Join(dir, "game.html")
	if err := os.WriteFile(htmlPath, []byte("<p class=\"a\">one</p>\n<p>two</p>"), 0o644); err != nil {
		t.Fatal(err)
	}

	cover := []byte("fake png bytes \x00\x01")
	coverPath := filepath.Join(dir, "cover.png")
	if err := os.WriteFile(coverPath, cover, 0o644); err != nil {
		t.Fatal(err)
	}

	outDir := filepath.Join(dir, "out")
	if err := os.Mkdir(outDir, 0o755); err != nil {
		t.Fatal(err)
	}

	return Input{
		Title:     "Space Raiders",
		HTMLPath:  htmlPath,
		CoverPath: coverPath,
		OutDir:    outDir,
	}, cover
}

func TestValidate(t *testing.T) {
	in, _ := writeFixtures(t)
	tests := []struct {
		name    string
		mutate  func(*Input)
		wantErr error
	}{
		{"all set", func(in *Input) {}, nil},
		{"missing title", func(in *Input) { in.Title = " " }, ErrMissingTitle},
		{"missing html", func(in *Input) { in.HTMLPath = "" }, ErrMissingHTML},
		{"missing cover", func(in *Input) { in.CoverPath = "" }, ErrMissingCover},
		{"missing out dir", func(in *Input) { in.OutDir = "" }, ErrMissingOutDir},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := in
			tt.mutate(&got)
			if err := got.Validate(); !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestBuild(t *testing.T) {
	in, cover := writeFixtures(t)
	got, err := Build(in, Options{})
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	if !strings.Contains(got, "<title>Space Raiders</title>") {
		t.Error("page is missing the title")
	}
	if !strings.Contains(got, `srcdoc="<p class=&quot;a&quot;>one</p> <p>two</p>"`) {
		t.Error("srcdoc should hold the flattened, quote-escaped game html")
	}

	// The embedded URI must round-trip to the original cover bytes.
	start := strings.Index(got, "data:image/png;base64,")
	if start < 0 {
		t.Fatal("page is missing the cover data URI")
	}
	payload := got[start+len("data:image/png;base64,"):]
	payload = payload[:strings.IndexByte(payload, '"')]
	decoded, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		t.Fatalf("decoding cover payload: %v", err)
	}
	if !bytes.Equal(decoded, cover) {
		t.Error("decoded cover differs from the original file")
	}
}

func TestBuild_Refused(t *testing.T) {
	in, _ := writeFixtures(t)
	in.Title = ""
	if _, err := Build(in, Options{}); !errors.Is(err, ErrMissingTitle) {
		t.Errorf("Build() = %v, want %v", err, ErrMissingTitle)
	}
}

func TestBuild_MissingHTMLFile(t *testing.T) {
	in, _ := writeFixtures(t)
	in.HTMLPath = filepath.Join(t.TempDir(), "nope.html")
	if _, err := Build(in, Options{}); err == nil {
		t.Error("Build() with a missing html file should fail")
	}
}

func TestFilename(t *testing.T) {
	tests := []struct {
		name  string
		title string
		want  string
	}{
		{"plain", "Space Raiders", "Space Raiders.html"},
		{"punctuation dropped", "Space Raiders: 2!", "Space Raiders 2.html"},
		{"underscore and hyphen kept", "pac_man-2", "pac_man-2.html"},
		{"unicode dropped", "Pac-Man ★", "Pac-Man.html"},
		{"trailing space trimmed", "Maze ", "Maze.html"},
		{"nothing left", "★★★", ".html"},
		{"empty", "", ".html"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Filename(tt.title); got != tt.want {
				t.Errorf("Filename(%q) = %q, want %q", tt.title, got, tt.want)
			}
		})
	}
}

func TestWrite(t *testing.T) {
	in, _ := writeFixtures(t)
	in.Title = "Space Raiders: 2"

	path, err := Write(in, Options{})
	if err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if got := filepath.Base(path); got != "Space Raiders 2.html" {
		t.Errorf("written filename = %q, want %q", got, "Space Raiders 2.html")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "<!DOCTYPE html>") {
		t.Error("written file is missing the document skeleton")
	}
}

func TestWrite_DoesNotCreateOutDir(t *testing.T) {
	in, _ := writeFixtures(t)
	in.OutDir = filepath.Join(in.OutDir, "missing")
	if _, err := Write(in, Options{}); err == nil {
		t.Error("Write() into a missing folder should fail, not create it")
	}
}

func TestWrite_RefusedLeavesNoFile(t *testing.T) {
	in, _ := writeFixtures(t)
	in.CoverPath = ""
	if _, err := Write(in, Options{}); !errors.Is(err, ErrMissingCover) {
		t.Fatalf("Write() = %v, want %v", err, ErrMissingCover)
	}
	entries, err := os.ReadDir(in.OutDir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Error("refused generation must not create files")
	}
}
