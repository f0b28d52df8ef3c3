package tui

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/filepicker"
	"github.com/charmbracelet/bubbles/key"
	bubbletea "github.com/charmbracelet/bubbletea"
)

// pickerModel wraps the bubbles file picker so forms can request a path and
// get a pickResultMsg back.
type pickerModel struct {
	fp    filepicker.Model
	field int
	title string
	err   string
}

func newPicker(req pickRequestMsg, width, height int) (*pickerModel, bubbletea.Cmd) {
	fp := filepicker.New()
	fp.AllowedTypes = req.types
	fp.DirAllowed = req.dirOnly
	fp.FileAllowed = !req.dirOnly

	dir := req.startDir
	if dir == "" {
		if wd, err := os.Getwd(); err == nil {
			dir = wd
		}
	}
	fp.CurrentDirectory = dir

	// esc cancels the picker instead of walking up a directory.
	fp.KeyMap.Back = key.NewBinding(
		key.WithKeys("h", "backspace", "left"),
		key.WithHelp("h", "back"),
	)

	fp.AutoHeight = false
	m := &pickerModel{fp: fp, field: req.field, title: req.title}
	m.setSize(width, height)
	return m, m.fp.Init()
}

func (m *pickerModel) setSize(_, h int) {
	if h > 8 {
		m.fp.Height = h - 8 // room for title, current dir, error, hints
	} else {
		m.fp.Height = 3
	}
}

// update returns a nil model when the picker is finished, either canceled or
// with a selection delivered through the returned command.
func (m *pickerModel) update(msg bubbletea.Msg) (*pickerModel, bubbletea.Cmd) {
	if msg, ok := msg.(bubbletea.KeyMsg); ok {
		m.err = ""
		if key.Matches(msg, keys.Back) {
			field := m.field
			return nil, func() bubbletea.Msg {
				return pickResultMsg{field: field, canceled: true}
			}
		}
	}

	var cmd bubbletea.Cmd
	m.fp, cmd = m.fp.Update(msg)

	if didSelect, path := m.fp.DidSelectFile(msg); didSelect {
		field := m.field
		return nil, func() bubbletea.Msg {
			return pickResultMsg{field: field, path: path}
		}
	}
	if didSelect, path := m.fp.DidSelectDisabledFile(msg); didSelect {
		m.err = filepath.Base(path) + " is not a supported file type"
	}
	return m, cmd
}

func (m *pickerModel) view() string {
	var b strings.Builder
	b.WriteString("  " + styleConfirm.Render(m.title) + "\n")
	b.WriteString("  " + styleDim.Render(m.fp.CurrentDirectory) + "\n\n")
	b.WriteString(m.fp.View())
	if m.err != "" {
		b.WriteString("  " + styleError.Render(m.err) + "\n")
	}
	return b.String()
}
