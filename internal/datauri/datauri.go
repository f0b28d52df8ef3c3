// Package datauri turns image files into data: URIs for inline embedding.
package datauri

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
)

// Subtype returns the MIME subtype used in path's data URI: the lowercase
// file extension without the dot. The file content is never inspected, so a
// mislabeled file yields a mislabeled URI.
func Subtype(path string) string {
	return strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
}

// Encode builds a data: URI carrying data as base64 under the given image
// MIME subtype.
func Encode(subtype string, data []byte) string {
	return "data:image/" + subtype + ";base64," + base64.StdEncoding.EncodeToString(data)
}

// FromFile reads path and embeds its bytes verbatim. Decoding the base64
// payload of the result yields the original file content.
func FromFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading image: %w", err)
	}
	return Encode(Subtype(path), data), nil
}

// Reencode decodes an image (PNG, JPEG, GIF or WebP), scales it down to
// maxWidth when wider, and re-encodes it as JPEG at the given quality.
func Reencode(data []byte, maxWidth, quality int) ([]byte, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}

	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	// Resize if wider than max
	if w > maxWidth {
		newH := h * maxWidth / w
		dst := image.NewRGBA(image.Rect(0, 0, maxWidth, newH))
		draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)
		img = dst
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: quality}); err != nil {
		return nil, fmt.Errorf("encode jpeg: %w", err)
	}
	return buf.Bytes(), nil
}

// FromFileOptimized reads path, re-encodes the image via Reencode, and embeds
// the result. The URI subtype is always jpeg, matching the new payload rather
// than the original file name.
func FromFileOptimized(path string, maxWidth, quality int) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading image: %w", err)
	}
	out, err := Reencode(data, maxWidth, quality)
	if err != nil {
		return "", err
	}
	return Encode("jpeg", out), nil
}
