package preview

import (
	"bytes"
	"context"
	"fmt"
	"html"
	"io"
	"net/url"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/a-h/templ"
)

// Entry describes one generated HTML file in the preview directory.
type Entry struct {
	Name    string
	Size    int64
	ModTime time.Time
}

// ListPages returns the .html files directly inside dir, newest first.
func ListPages(dir string) ([]Entry, error) {
	dirents, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var entries []Entry
	for _, de := range dirents {
		if de.IsDir() || !strings.EqualFold(filepath.Ext(de.Name()), ".html") {
			continue
		}
		info, err := de.Info()
		if err != nil {
			continue
		}
		entries = append(entries, Entry{
			Name:    de.Name(),
			Size:    info.Size(),
			ModTime: info.ModTime(),
		})
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].ModTime.After(entries[j].ModTime)
	})
	return entries, nil
}

// Index returns a templ component rendering the generated-output listing.
func Index(dir string, entries []Entry) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var buf bytes.Buffer
		renderIndex(&buf, dir, entries)
		_, err := w.Write(buf.Bytes())
		return err
	})
}

func renderIndex(buf *bytes.Buffer, dir string, entries []Entry) {
	buf.WriteString(`<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="utf-8">
  <title>gameforge preview</title>
  <style>
    body { max-width: 640px; margin: 40px auto; padding: 0 16px; background: #0f172a; color: #f1f5f9; font-family: Arial, Helvetica, sans-serif; }
    h1 { font-size: 1.3rem; }
    p.dir { color: #94a3b8; font-size: 0.9rem; }
    ul { list-style: none; padding: 0; }
    li { margin: 8px 0; padding: 10px 14px; background: #1e293b; border-radius: 10px; display: flex; justify-content: space-between; gap: 12px; }
    a { color: #38bdf8; text-decoration: none; overflow-wrap: anywhere; }
    a:hover { text-decoration: underline; }
    span.meta { color: #94a3b8; font-size: 0.85rem; white-space: nowrap; }
    p.empty { color: #94a3b8; }
  </style>
</head>
<body>
  <h1>gameforge preview</h1>
`)
	fmt.Fprintf(buf, "  <p class=\"dir\">%s</p>\n", html.EscapeString(dir))

	if len(entries) == 0 {
		buf.WriteString("  <p class=\"empty\">No generated .html files here yet.</p>\n")
	} else {
		buf.WriteString("  <ul>\n")
		for _, e := range entries {
			fmt.Fprintf(buf, "    <li><a href=\"/%s\">%s</a><span class=\"meta\">%s · %s</span></li>\n",
				url.PathEscape(e.Name), html.EscapeString(e.Name),
				formatSize(e.Size), e.ModTime.Format("2006-01-02 15:04"))
		}
		buf.WriteString("  </ul>\n")
	}

	buf.WriteString("</body>\n</html>\n")
}

func formatSize(n int64) string {
	switch {
	case n >= 1<<20:
		return fmt.Sprintf("%.1f MB", float64(n)/(1<<20))
	case n >= 1<<10:
		return fmt.Sprintf("%.1f KB", float64(n)/(1<<10))
	default:
		return fmt.Sprintf("%d B", n)
	}
}
