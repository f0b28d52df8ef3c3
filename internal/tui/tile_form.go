package tui

import (
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	bubbletea "github.com/charmbracelet/bubbletea"

	"github.com/anonychat/gameforge/internal/tile"
)

// Tile form field indices.
const (
	tileFieldName = iota
	tileFieldImage
	tileFieldHTML
	tileFieldOut
	tileFieldCount
)

type tileFormModel struct {
	name   textinput.Model
	image  textinput.Model
	html   textarea.Model
	out    textinput.Model
	outDir string // default folder for the save path
	cursor int
	err    string
}

func newTileForm(prefill tile.Input, outPath, outDir string) *tileFormModel {
	name := textinput.New()
	name.Placeholder = "Neon Drift"
	name.SetValue(prefill.Name)
	name.Focus()
	name.CharLimit = 200
	name.Width = 50

	image := textinput.New()
	image.Placeholder = "covers/neon.png"
	image.SetValue(prefill.ImagePath)
	image.CharLimit = 500
	image.Width = 50

	html := textarea.New()
	html.Placeholder = "<canvas id=\"game\"></canvas>..."
	html.SetValue(prefill.HTML)
	html.CharLimit = 0
	html.ShowLineNumbers = false
	html.SetWidth(60)
	html.SetHeight(8)

	out := textinput.New()
	out.Placeholder = "Neon_Drift.html"
	out.SetValue(outPath)
	out.CharLimit = 500
	out.Width = 50

	return &tileFormModel{
		name:   name,
		image:  image,
		html:   html,
		out:    out,
		outDir: outDir,
	}
}

func (m *tileFormModel) setSize(w, h int) {
	if w > 20 {
		m.html.SetWidth(min(w-8, 100))
	}
	m.html.SetHeight(min(max(h-12, 3), 12))
}

func (m *tileFormModel) focusCurrent() {
	m.name.Blur()
	m.image.Blur()
	m.html.Blur()
	m.out.Blur()

	switch m.cursor {
	case tileFieldName:
		m.name.Focus()
	case tileFieldImage:
		m.image.Focus()
	case tileFieldHTML:
		m.html.Focus()
	case tileFieldOut:
		m.out.Focus()
	}
}

func (m *tileFormModel) moveCursor(delta int) {
	m.cursor = (m.cursor + delta + tileFieldCount) % tileFieldCount

	// First visit to the save field suggests a name-derived path.
	if m.cursor == tileFieldOut && m.out.Value() == "" && strings.TrimSpace(m.name.Value()) != "" {
		m.out.SetValue(filepath.Join(m.outDir, tile.DefaultFilename(m.name.Value())))
		m.out.CursorEnd()
	}

	m.focusCurrent()
	m.err = ""
}

func (m *tileFormModel) update(msg bubbletea.Msg) (*tileFormModel, bubbletea.Cmd) {
	if msg, ok := msg.(bubbletea.KeyMsg); ok {
		switch {
		case key.Matches(msg, keys.Back):
			return nil, nil

		case key.Matches(msg, keys.Submit):
			return m, m.submit()

		case key.Matches(msg, keys.Next),
			msg.Type == bubbletea.KeyDown && m.cursor != tileFieldHTML:
			m.moveCursor(1)
			return m, nil

		case key.Matches(msg, keys.Prev),
			msg.Type == bubbletea.KeyUp && m.cursor != tileFieldHTML:
			m.moveCursor(-1)
			return m, nil

		case key.Matches(msg, keys.Confirm) && m.cursor == tileFieldName:
			m.moveCursor(1)
			return m, nil

		case key.Matches(msg, keys.Confirm) && m.cursor == tileFieldImage:
			return m, m.requestImagePick()

		case key.Matches(msg, keys.Confirm) && m.cursor == tileFieldOut:
			return m, m.submit()
		}
	}

	// Pass through to the active input; enter inside the textarea stays a
	// newline.
	var cmd bubbletea.Cmd
	switch m.cursor {
	case tileFieldName:
		m.name, cmd = m.name.Update(msg)
	case tileFieldImage:
		m.image, cmd = m.image.Update(msg)
	case tileFieldHTML:
		m.html, cmd = m.html.Update(msg)
	case tileFieldOut:
		m.out, cmd = m.out.Update(msg)
	}
	return m, cmd
}

func (m *tileFormModel) requestImagePick() bubbletea.Cmd {
	startDir := ""
	if v := strings.TrimSpace(m.image.Value()); v != "" {
		startDir = filepath.Dir(v)
	}
	return func() bubbletea.Msg {
		return pickRequestMsg{
			field:    tileFieldImage,
			title:    "Select cover image",
			types:    []string{".png", ".jpg", ".jpeg", ".webp"},
			startDir: startDir,
		}
	}
}

func (m *tileFormModel) setPicked(res pickResultMsg) {
	if res.canceled || res.field != tileFieldImage {
		return
	}
	m.image.SetValue(res.path)
	m.image.CursorEnd()
}

func (m *tileFormModel) submit() bubbletea.Cmd {
	in := tile.Input{
		Name:      m.name.Value(),
		ImagePath: m.image.Value(),
		HTML:      m.html.Value(),
	}
	if err := in.Validate(); err != nil {
		m.err = err.Error()
		return nil
	}

	out := strings.TrimSpace(m.out.Value())
	if out == "" {
		out = filepath.Join(m.outDir, tile.DefaultFilename(in.Name))
	}

	msg := tileSubmitMsg{input: in, outPath: out}
	return func() bubbletea.Msg { return msg }
}

func (m *tileFormModel) view() string {
	var b strings.Builder

	b.WriteString("  " + styleConfirm.Render("Tile Generator: portal grid snippet") + "\n\n")

	fields := []struct {
		label string
		view  string
	}{
		{"Name:     ", m.name.View()},
		{"Cover:    ", m.image.View()},
	}
	for i, f := range fields {
		b.WriteString(cursorMark(i == m.cursor) + styleLabel.Render(f.label) + f.view + "\n")
	}

	b.WriteString(cursorMark(m.cursor == tileFieldHTML) + styleLabel.Render("Game HTML:") + "\n")
	b.WriteString(indent(m.html.View(), "    ") + "\n")

	b.WriteString(cursorMark(m.cursor == tileFieldOut) + styleLabel.Render("Save as:  ") + m.out.View() + "\n")

	if m.err != "" {
		b.WriteString("\n  " + styleError.Render(m.err) + "\n")
	}
	b.WriteString("\n" + styleDim.Render("  tab: fields   enter: pick/next   ctrl+s: generate   esc: cancel") + "\n")
	return b.String()
}

func cursorMark(active bool) string {
	if active {
		return styleConfirm.Render("> ")
	}
	return "  "
}

func indent(s, prefix string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = prefix + line
	}
	return strings.Join(lines, "\n")
}
