package terminal

import (
	"time"

	"github.com/gdamore/tcell/v2"
)

// Input polls a session's event stream for quit keys
type Input struct {
	screen tcell.Screen
	events <-chan tcell.Event
}

// PollQuit consumes events for up to timeout and reports whether a quit key arrived. A closed
// event stream counts as quit.
func (in *Input) PollQuit(timeout time.Duration) bool {
	timer := time.NewTimer(timeout)
	defer timer.Stop()

	for {
		select {
		case ev, ok := <-in.events:
			if !ok {
				return true
			}
			if IsQuit(ev) {
				return true
			}
			if _, resized := ev.(*tcell.EventResize); resized {
				in.screen.Sync()
			}
		case <-timer.C:
			return false
		}
	}
}

// IsQuit reports whether ev is q, Esc or Ctrl+C
func IsQuit(ev tcell.Event) bool {
	key, ok := ev.(*tcell.EventKey)
	if !ok {
		return false
	}
	switch key.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return key.Rune() == 'q' || key.Rune() == 'Q'
	}
	return false
}
