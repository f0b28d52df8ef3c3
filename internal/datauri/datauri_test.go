package datauri

import (
	"bytes"
	"encoding/base64"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSubtype(t *testing.T) {
	tests := []struct {
		name string
		path string
		want string
	}{
		{"png", "covers/game.png", "png"},
		{"jpg stays jpg", "game.jpg", "jpg"},
		{"jpeg", "game.jpeg", "jpeg"},
		{"webp", "art/cover.webp", "webp"},
		{"uppercase lowered", "COVER.PNG", "png"},
		{"mixed case", "shot.JpG", "jpg"},
		{"no extension", "cover", ""},
		{"dotfile counts as extension", "dir.d/cover.gif", "gif"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Subtype(tt.path); got != tt.want {
				t.Errorf("Subtype(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}

func TestEncode(t *testing.T) {
	got := Encode("png", []byte{0x89, 0x50, 0x4e, 0x47})
	want := "data:image/png;base64,iVBORw=="
	if got != want {
		t.Errorf("Encode() = %q, want %q", got, want)
	}
}

func TestEncode_EmptySubtype(t *testing.T) {
	// An extensionless file still produces a syntactically shaped URI.
	got := Encode("", []byte("x"))
	if !strings.HasPrefix(got, "data:image/;base64,") {
		t.Errorf("Encode() = %q, want data:image/;base64, prefix", got)
	}
}

func TestFromFile_RoundTrip(t *testing.T) {
	// Content is never inspected, so arbitrary bytes exercise the round trip.
	raw := []byte("definitely not a real png \x00\x01\x02")
	path := filepath.Join(t.TempDir(), "cover.png")
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		t.Fatal(err)
	}

	uri, err := FromFile(path)
	if err != nil {
		t.Fatalf("FromFile() error = %v", err)
	}
	payload, ok := strings.CutPrefix(uri, "data:image/png;base64,")
	if !ok {
		t.Fatalf("FromFile() = %q, want data:image/png;base64, prefix", uri)
	}
	decoded, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		t.Fatalf("decoding payload: %v", err)
	}
	if !bytes.Equal(decoded, raw) {
		t.Errorf("decoded payload = %q, want original bytes %q", decoded, raw)
	}
}

func TestFromFile_Missing(t *testing.T) {
	if _, err := FromFile(filepath.Join(t.TempDir(), "nope.png")); err == nil {
		t.Error("FromFile() on a missing file should fail")
	}
}

// testPNG encodes a wide solid-color image as PNG.
func testPNG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: 30, G: 41, B: 59, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func TestReencode_DownscalesWideImages(t *testing.T) {
	out, err := Reencode(testPNG(t, 200, 100), 50, 80)
	if err != nil {
		t.Fatalf("Reencode() error = %v", err)
	}
	img, format, err := image.Decode(bytes.NewReader(out))
	if err != nil {
		t.Fatalf("decoding output: %v", err)
	}
	if format != "jpeg" {
		t.Errorf("output format = %q, want jpeg", format)
	}
	if got := img.Bounds().Dx(); got != 50 {
		t.Errorf("output width = %d, want 50", got)
	}
	if got := img.Bounds().Dy(); got != 25 {
		t.Errorf("output height = %d, want 25", got)
	}
}

func TestReencode_KeepsNarrowImages(t *testing.T) {
	out, err := Reencode(testPNG(t, 40, 40), 50, 80)
	if err != nil {
		t.Fatalf("Reencode() error = %v", err)
	}
	img, _, err := image.Decode(bytes.NewReader(out))
	if err != nil {
		t.Fatalf("decoding output: %v", err)
	}
	if got := img.Bounds().Dx(); got != 40 {
		t.Errorf("output width = %d, want 40 (no upscaling)", got)
	}
}

func TestReencode_RejectsGarbage(t *testing.T) {
	if _, err := Reencode([]byte("not an image"), 800, 80); err == nil {
		t.Error("Reencode() on garbage should fail")
	}
}

func TestFromFileOptimized_SubtypeIsJPEG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cover.png")
	if err := os.WriteFile(path, testPNG(t, 10, 10), 0o644); err != nil {
		t.Fatal(err)
	}
	uri, err := FromFileOptimized(path, 800, 80)
	if err != nil {
		t.Fatalf("FromFileOptimized() error = %v", err)
	}
	if !strings.HasPrefix(uri, "data:image/jpeg;base64,") {
		t.Errorf("FromFileOptimized() = %.40q, want data:image/jpeg prefix", uri)
	}
}
