package tui

import (
	"github.com/anonychat/gameforge/internal/page"
	"github.com/anonychat/gameforge/internal/tile"
)

// activeView identifies which view is currently displayed.
type activeView int

const (
	viewForm activeView = iota
	viewPicker
	viewWorking
	viewResult
)

// tileSubmitMsg carries validated tile form values ready for generation.
type tileSubmitMsg struct {
	input   tile.Input
	outPath string
}

// pageSubmitMsg carries validated page form values ready for generation.
type pageSubmitMsg struct {
	input    page.Input
	optimize bool
}

// generatedMsg carries the outcome of a generation run.
type generatedMsg struct {
	path string
	err  error
}

// pickRequestMsg asks the root model to open the file picker for a form field.
type pickRequestMsg struct {
	field    int      // form field index that receives the result
	title    string   // picker heading
	dirOnly  bool     // pick a directory instead of a file
	types    []string // selectable extensions; nil allows any file
	startDir string   // initial directory; empty falls back to the cwd
}

// pickResultMsg returns the chosen path to the form.
type pickResultMsg struct {
	field    int
	path     string
	canceled bool
}
