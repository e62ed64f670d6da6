// Package terminal adapts a tcell screen to the simulation: scoped acquisition of the alternate
// screen and raw mode, a braille canvas renderer, and quit-key polling.
package terminal

import (
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"
)

// Session holds the terminal in alternate-screen raw mode until Release
type Session struct {
	screen tcell.Screen
	events chan tcell.Event
	quit   chan struct{}

	releaseOnce sync.Once
}

// Acquire initializes screen, or the process terminal when screen is nil. On success the caller
// must Release the session on every exit path.
func Acquire(screen tcell.Screen) (*Session, error) {
	if screen == nil {
		var err error
		if screen, err = tcell.NewScreen(); err != nil {
			return nil, errors.Wrap(err, "[Acquire] failed to open terminal")
		}
	}
	if err := screen.Init(); err != nil {
		return nil, errors.Wrap(err, "[Acquire] failed to enter raw mode")
	}

	screen.SetStyle(tcell.StyleDefault)
	screen.HideCursor()
	screen.Clear()

	s := &Session{
		screen: screen,
		events: make(chan tcell.Event, 16),
		quit:   make(chan struct{}),
	}
	go screen.ChannelEvents(s.events, s.quit)
	return s, nil
}

// Size returns the terminal size in character cells
func (s *Session) Size() (height, width int) {
	width, height = s.screen.Size()
	return height, width
}

// Release restores the terminal. Only the first call has any effect.
func (s *Session) Release() {
	s.releaseOnce.Do(func() {
		close(s.quit)
		s.screen.Fini()
	})
}

// Renderer returns a Renderer drawing onto this session's screen
func (s *Session) Renderer() *Renderer {
	return NewRenderer(s.screen)
}

// Input returns an InputSource reading this session's key events
func (s *Session) Input() *Input {
	return &Input{screen: s.screen, events: s.events}
}
