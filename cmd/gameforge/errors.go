package main

import (
	"errors"
	"io/fs"

	"github.com/anonychat/gameforge/internal/page"
	"github.com/anonychat/gameforge/internal/tile"
)

// HintedError wraps an error with a user-facing recovery hint.
type HintedError struct {
	Err  error
	Hint string
}

func (h *HintedError) Error() string { return h.Err.Error() }
func (h *HintedError) Unwrap() error { return h.Err }

// hintWrap attaches a recovery hint to the common generation failures.
func hintWrap(err error) error {
	if err == nil {
		return nil
	}
	var hint string
	switch {
	case errors.Is(err, tile.ErrMissingName),
		errors.Is(err, tile.ErrMissingImage),
		errors.Is(err, tile.ErrMissingHTML):
		hint = "Run 'gameforge tile' with no flags on a terminal for the interactive form."
	case errors.Is(err, page.ErrMissingTitle),
		errors.Is(err, page.ErrMissingHTML),
		errors.Is(err, page.ErrMissingCover),
		errors.Is(err, page.ErrMissingOutDir):
		hint = "Run 'gameforge page' with no flags on a terminal for the interactive form."
	case errors.Is(err, fs.ErrNotExist):
		hint = "Check the input paths — nothing was written."
	default:
		return err
	}
	return &HintedError{Err: err, Hint: hint}
}
