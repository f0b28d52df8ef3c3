// Package tui implements the interactive generator forms: a tile form and a
// page form, each with file pickers, inline validation, and an async
// generation step.
package tui

import (
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	bubbletea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/anonychat/gameforge/internal/page"
	"github.com/anonychat/gameforge/internal/tile"
)

// Mode selects which generator form the TUI hosts.
type Mode int

const (
	ModeTile Mode = iota
	ModePage
)

// Config holds the parameters needed to launch the TUI.
type Config struct {
	Mode Mode

	// Pre-filled field values, usually from flags. May be zero.
	TileInput tile.Input
	TileOut   string
	PageInput page.Input
	Optimize  bool

	// DefaultOutDir seeds the save locations when no explicit output is set.
	DefaultOutDir string

	// Generation callbacks so the command layer and tests control the side
	// effects. GenerateTile writes a tile to outPath; GeneratePage writes a
	// page into its input's output folder. Both return the path written.
	GenerateTile func(in tile.Input, outPath string) (string, error)
	GeneratePage func(in page.Input, optimize bool) (string, error)
}

// Result is what the command layer reads back after the program exits.
type Result struct {
	Path     string
	Err      error
	Canceled bool
}

// Model is the root TUI model that routes between the form, the file picker,
// the working spinner, and the result screen.
type Model struct {
	cfg      Config
	active   activeView
	tile     *tileFormModel
	page     *pageFormModel
	picker   *pickerModel
	spinner  spinner.Model
	bar      statusBar
	width    int
	height   int
	result   Result
	quitting bool
}

// New creates a new root TUI model for cfg.
func New(cfg Config) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = styleSpinner

	m := Model{
		cfg:     cfg,
		active:  viewForm,
		spinner: sp,
	}
	switch cfg.Mode {
	case ModePage:
		m.page = newPageForm(cfg.PageInput, cfg.Optimize, cfg.DefaultOutDir)
		m.bar = newStatusBar("gameforge · page generator")
	default:
		m.tile = newTileForm(cfg.TileInput, cfg.TileOut, cfg.DefaultOutDir)
		m.bar = newStatusBar("gameforge · tile generator")
	}
	return m
}

// Result returns the generation outcome. Meaningful once the program has
// finished.
func (m Model) Result() Result {
	return m.result
}

// Init starts cursor blinking on the first field.
func (m Model) Init() bubbletea.Cmd {
	return textinput.Blink
}

// Update processes messages.
func (m Model) Update(msg bubbletea.Msg) (bubbletea.Model, bubbletea.Cmd) {
	switch msg := msg.(type) {
	case bubbletea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.quitting = true
			m.result.Canceled = true
			return m, bubbletea.Quit
		}

	case bubbletea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.bar.width = msg.Width
		if m.tile != nil {
			m.tile.setSize(msg.Width, msg.Height-1) // -1 for statusbar
		}
		if m.page != nil {
			m.page.setSize(msg.Width, msg.Height-1)
		}
		if m.picker != nil {
			m.picker.setSize(msg.Width, msg.Height-1)
		}

	case pickRequestMsg:
		var cmd bubbletea.Cmd
		m.picker, cmd = newPicker(msg, m.width, m.height-1)
		m.active = viewPicker
		return m, cmd

	case pickResultMsg:
		m.active = viewForm
		m.picker = nil
		if m.tile != nil {
			m.tile.setPicked(msg)
		}
		if m.page != nil {
			m.page.setPicked(msg)
		}
		return m, textinput.Blink

	case tileSubmitMsg:
		m.active = viewWorking
		return m, bubbletea.Batch(m.spinner.Tick, generateTile(m.cfg, msg))

	case pageSubmitMsg:
		m.active = viewWorking
		return m, bubbletea.Batch(m.spinner.Tick, generatePage(m.cfg, msg))

	case generatedMsg:
		m.active = viewResult
		m.result.Path = msg.path
		m.result.Err = msg.err
		return m, nil

	case spinner.TickMsg:
		if m.active != viewWorking {
			return m, nil
		}
		var cmd bubbletea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	// Delegate to the active view.
	switch m.active {
	case viewForm:
		return m.updateForm(msg)
	case viewPicker:
		var cmd bubbletea.Cmd
		m.picker, cmd = m.picker.update(msg)
		if m.picker == nil {
			m.active = viewForm
		}
		return m, cmd
	case viewResult:
		return m.updateResult(msg)
	}
	return m, nil
}

func (m Model) updateForm(msg bubbletea.Msg) (bubbletea.Model, bubbletea.Cmd) {
	var cmd bubbletea.Cmd
	if m.page != nil {
		m.page, cmd = m.page.update(msg)
		if m.page == nil {
			m.quitting = true
			m.result.Canceled = true
			return m, bubbletea.Quit
		}
		return m, cmd
	}

	m.tile, cmd = m.tile.update(msg)
	if m.tile == nil {
		m.quitting = true
		m.result.Canceled = true
		return m, bubbletea.Quit
	}
	return m, cmd
}

func (m Model) updateResult(msg bubbletea.Msg) (bubbletea.Model, bubbletea.Cmd) {
	key, ok := msg.(bubbletea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.String() {
	case "enter":
		if m.result.Err != nil {
			// Back to the form so the inputs can be fixed.
			m.result = Result{}
			m.active = viewForm
			return m, textinput.Blink
		}
		m.quitting = true
		return m, bubbletea.Quit
	case "q", "esc":
		m.quitting = true
		return m, bubbletea.Quit
	}
	return m, nil
}

// View renders the current view.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var content string
	var hints string

	switch m.active {
	case viewForm:
		if m.page != nil {
			content = m.page.view()
		} else {
			content = m.tile.view()
		}
		hints = "tab: fields  ctrl+s: generate  esc: cancel"
	case viewPicker:
		content = m.picker.view()
		hints = "j/k: navigate  enter: select  esc: cancel"
	case viewWorking:
		content = "\n  " + m.spinner.View() + "Generating..."
		hints = "ctrl+c: abort"
	case viewResult:
		content = m.resultView()
		if m.result.Err != nil {
			hints = "enter: edit inputs  q: quit"
		} else {
			hints = "enter/q: quit"
		}
	}

	// Pad content to fill available height.
	contentHeight := m.height - 1 // 1 for statusbar
	content = lipgloss.NewStyle().
		Width(m.width).
		Height(contentHeight).
		Render(content)

	bar := m.bar.render(hints)

	return content + "\n" + bar
}

func (m Model) resultView() string {
	if m.result.Err != nil {
		return "\n  " + styleError.Render("✖ "+m.result.Err.Error()) + "\n"
	}
	return "\n  " + styleSuccess.Render("✓ Written") + " " + styleTitle.Render(m.result.Path) + "\n"
}

// --- async commands ---

func generateTile(cfg Config, msg tileSubmitMsg) bubbletea.Cmd {
	return func() bubbletea.Msg {
		path, err := cfg.GenerateTile(msg.input, msg.outPath)
		return generatedMsg{path: path, err: err}
	}
}

func generatePage(cfg Config, msg pageSubmitMsg) bubbletea.Cmd {
	return func() bubbletea.Msg {
		path, err := cfg.GeneratePage(msg.input, msg.optimize)
		return generatedMsg{path: path, err: err}
	}
}
