// Package ui draws the game to the terminal with tcell. Rendering is
// split between Screen, which owns the terminal, and Renderer, which
// knows the game's views.
package ui

import "github.com/gdamore/tcell/v2"

// Screen owns the terminal. It narrows tcell.Screen to the handful of
// calls the renderer needs and pins the default style.
type Screen struct {
	tc tcell.Screen
}

// NewScreen takes over the terminal and switches it to cell mode.
// Callers must Close before the process exits, or the shell is left in
// a raw state.
func NewScreen() (*Screen, error) {
	tc, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := tc.Init(); err != nil {
		return nil, err
	}
	tc.SetStyle(tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite))
	tc.Clear()
	return &Screen{tc: tc}, nil
}

// newScreenFrom wraps an already-initialized tcell screen. Tests use
// this with tcell's simulation screen.
func newScreenFrom(tc tcell.Screen) *Screen {
	return &Screen{tc: tc}
}

// Close releases the terminal back to the shell.
func (s *Screen) Close() { s.tc.Fini() }

// PollEvent blocks until the next key or resize event arrives.
func (s *Screen) PollEvent() tcell.Event { return s.tc.PollEvent() }

// Clear wipes the back buffer.
func (s *Screen) Clear() { s.tc.Clear() }

// Show pushes the back buffer to the terminal.
func (s *Screen) Show() { s.tc.Show() }

// Sync redraws every cell, discarding what tcell believes is already
// on screen. Used after a resize.
func (s *Screen) Sync() { s.tc.Sync() }

// SetContent places one rune at (x, y).
func (s *Screen) SetContent(x, y int, r rune, style tcell.Style) {
	s.tc.SetContent(x, y, r, nil, style)
}

// Size returns the terminal dimensions in cells.
func (s *Screen) Size() (width, height int) { return s.tc.Size() }
