package tui

import (
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	bubbletea "github.com/charmbracelet/bubbletea"

	"github.com/anonychat/gameforge/internal/page"
)

// Page form field indices.
const (
	pageFieldTitle = iota
	pageFieldHTML
	pageFieldCover
	pageFieldOutDir
	pageFieldOptimize
	pageFieldCount
)

type pageFormModel struct {
	title    textinput.Model
	html     textinput.Model
	cover    textinput.Model
	outDir   textinput.Model
	optimize bool
	cursor   int
	err      string
}

func newPageForm(prefill page.Input, optimize bool, defaultOutDir string) *pageFormModel {
	title := textinput.New()
	title.Placeholder = "Space Raiders"
	title.SetValue(prefill.Title)
	title.Focus()
	title.CharLimit = 200
	title.Width = 50

	html := textinput.New()
	html.Placeholder = "game.html"
	html.SetValue(prefill.HTMLPath)
	html.CharLimit = 500
	html.Width = 50

	cover := textinput.New()
	cover.Placeholder = "covers/raiders.png"
	cover.SetValue(prefill.CoverPath)
	cover.CharLimit = 500
	cover.Width = 50

	outDir := textinput.New()
	outDir.Placeholder = "."
	outDir.CharLimit = 500
	outDir.Width = 50
	switch {
	case prefill.OutDir != "":
		outDir.SetValue(prefill.OutDir)
	case defaultOutDir != "":
		outDir.SetValue(defaultOutDir)
	}

	return &pageFormModel{
		title:    title,
		html:     html,
		cover:    cover,
		outDir:   outDir,
		optimize: optimize,
	}
}

func (m *pageFormModel) setSize(_, _ int) {}

func (m *pageFormModel) focusCurrent() {
	m.title.Blur()
	m.html.Blur()
	m.cover.Blur()
	m.outDir.Blur()

	switch m.cursor {
	case pageFieldTitle:
		m.title.Focus()
	case pageFieldHTML:
		m.html.Focus()
	case pageFieldCover:
		m.cover.Focus()
	case pageFieldOutDir:
		m.outDir.Focus()
	}
}

func (m *pageFormModel) moveCursor(delta int) {
	m.cursor = (m.cursor + delta + pageFieldCount) % pageFieldCount
	m.focusCurrent()
	m.err = ""
}

func (m *pageFormModel) update(msg bubbletea.Msg) (*pageFormModel, bubbletea.Cmd) {
	if msg, ok := msg.(bubbletea.KeyMsg); ok {
		switch {
		case key.Matches(msg, keys.Back):
			return nil, nil

		case key.Matches(msg, keys.Submit):
			return m, m.submit()

		case key.Matches(msg, keys.Next), msg.Type == bubbletea.KeyDown:
			m.moveCursor(1)
			return m, nil

		case key.Matches(msg, keys.Prev), msg.Type == bubbletea.KeyUp:
			m.moveCursor(-1)
			return m, nil

		case key.Matches(msg, keys.Confirm) && m.cursor == pageFieldTitle:
			m.moveCursor(1)
			return m, nil

		case key.Matches(msg, keys.Confirm) && m.cursor == pageFieldHTML:
			return m, m.requestPick(pageFieldHTML)

		case key.Matches(msg, keys.Confirm) && m.cursor == pageFieldCover:
			return m, m.requestPick(pageFieldCover)

		case key.Matches(msg, keys.Confirm) && m.cursor == pageFieldOutDir:
			return m, m.requestPick(pageFieldOutDir)

		case key.Matches(msg, keys.Confirm) && m.cursor == pageFieldOptimize:
			return m, m.submit()

		case m.cursor == pageFieldOptimize &&
			(msg.Type == bubbletea.KeyLeft || msg.Type == bubbletea.KeyRight ||
				msg.Type == bubbletea.KeySpace):
			m.optimize = !m.optimize
			return m, nil
		}
	}

	var cmd bubbletea.Cmd
	switch m.cursor {
	case pageFieldTitle:
		m.title, cmd = m.title.Update(msg)
	case pageFieldHTML:
		m.html, cmd = m.html.Update(msg)
	case pageFieldCover:
		m.cover, cmd = m.cover.Update(msg)
	case pageFieldOutDir:
		m.outDir, cmd = m.outDir.Update(msg)
	}
	return m, cmd
}

func (m *pageFormModel) requestPick(field int) bubbletea.Cmd {
	var req pickRequestMsg
	switch field {
	case pageFieldHTML:
		req = pickRequestMsg{
			field: field,
			title: "Select game HTML file",
			types: []string{".html", ".htm"},
		}
		if v := strings.TrimSpace(m.html.Value()); v != "" {
			req.startDir = filepath.Dir(v)
		}
	case pageFieldCover:
		req = pickRequestMsg{
			field: field,
			title: "Select cover image",
			types: []string{".png", ".jpg", ".jpeg", ".webp"},
		}
		if v := strings.TrimSpace(m.cover.Value()); v != "" {
			req.startDir = filepath.Dir(v)
		}
	case pageFieldOutDir:
		req = pickRequestMsg{
			field:   field,
			title:   "Select output folder",
			dirOnly: true,
		}
		if v := strings.TrimSpace(m.outDir.Value()); v != "" {
			req.startDir = v
		}
	}
	return func() bubbletea.Msg { return req }
}

func (m *pageFormModel) setPicked(res pickResultMsg) {
	if res.canceled {
		return
	}
	switch res.field {
	case pageFieldHTML:
		m.html.SetValue(res.path)
		m.html.CursorEnd()
	case pageFieldCover:
		m.cover.SetValue(res.path)
		m.cover.CursorEnd()
	case pageFieldOutDir:
		m.outDir.SetValue(res.path)
		m.outDir.CursorEnd()
	}
}

func (m *pageFormModel) submit() bubbletea.Cmd {
	in := page.Input{
		Title:     m.title.Value(),
		HTMLPath:  m.html.Value(),
		CoverPath: m.cover.Value(),
		OutDir:    m.outDir.Value(),
	}
	if err := in.Validate(); err != nil {
		m.err = err.Error()
		return nil
	}

	msg := pageSubmitMsg{input: in, optimize: m.optimize}
	return func() bubbletea.Msg { return msg }
}

func (m *pageFormModel) view() string {
	var b strings.Builder

	b.WriteString("  " + styleConfirm.Render("Page Generator: standalone game page") + "\n\n")

	fields := []struct {
		label string
		view  string
	}{
		{"Title:     ", m.title.View()},
		{"Game HTML: ", m.html.View()},
		{"Cover:     ", m.cover.View()},
		{"Output in: ", m.outDir.View()},
		{"Optimize:  ", m.optimizeView()},
	}
	for i, f := range fields {
		b.WriteString(cursorMark(i == m.cursor) + styleLabel.Render(f.label) + f.view + "\n")
	}

	if m.err != "" {
		b.WriteString("\n  " + styleError.Render(m.err) + "\n")
	}
	b.WriteString("\n" + styleDim.Render("  tab: fields   enter: pick/next   ctrl+s: generate   esc: cancel") + "\n")
	return b.String()
}

func (m *pageFormModel) optimizeView() string {
	state := "[ ] off"
	if m.optimize {
		state = "[x] on"
	}
	state += styleDim.Render("  downscale cover and embed as JPEG")
	if m.cursor == pageFieldOptimize {
		return state + styleDim.Render("  ←/→")
	}
	return state
}
