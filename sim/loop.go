// Package sim drives the simulation: render the committed generation, poll for quit, wait out
// the tick, advance, repeat.
package sim

import (
	"context"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"

	"github.com/sheikhrachel/termgol/model"
	"github.com/sheikhrachel/termgol/utils"
)

// Renderer draws one frame of live cells
type Renderer interface {
	Draw(live []model.Point, cellColor, background tcell.Color, gridHeight, gridWidth int)
}

// InputSource reports whether the user asked to quit, waiting at most timeout
type InputSource interface {
	PollQuit(timeout time.Duration) bool
}

// State is the loop's lifecycle state
type State int

const (
	Running State = iota
	Stopped
)

func (s State) String() string {
	if s == Stopped {
		return "Stopped"
	}
	return "Running"
}

// MaxPollTimeout caps how long a single input poll may block
const MaxPollTimeout = 16 * time.Millisecond

// Loop owns the grid, the rule engine and the per-frame scratch state for one run
type Loop struct {
	grid     *model.Grid
	engine   *model.Engine
	renderer Renderer
	input    InputSource
	settings utils.Settings
	stats    *utils.Stats

	state      State
	generation int
	live       []model.Point
	sleep      func(ctx context.Context, d time.Duration)
}

// New wires a loop around an already seeded grid
func New(
	grid *model.Grid,
	engine *model.Engine,
	renderer Renderer,
	input InputSource,
	settings utils.Settings,
	stats *utils.Stats,
) (*Loop, error) {
	if err := engine.Supports(grid.GetHeight(), grid.GetWidth()); err != nil {
		return nil, errors.Wrap(err, "[sim.New] grid does not fit the edge policy")
	}
	if stats == nil {
		stats = utils.NewStats()
	}
	return &Loop{
		grid:     grid,
		engine:   engine,
		renderer: renderer,
		input:    input,
		settings: settings,
		stats:    stats,
		state:    Running,
		sleep:    sleepContext,
	}, nil
}

// State returns the current lifecycle state
func (l *Loop) State() State {
	return l.state
}

// Generation returns how many generations have been committed
func (l *Loop) Generation() int {
	return l.generation
}

// Stats returns the run statistics
func (l *Loop) Stats() *utils.Stats {
	return l.stats
}

// PollTimeout is the input poll budget for a tick: a quarter of the tick, capped at
// MaxPollTimeout, so quitting stays responsive without the poll eating the frame.
func PollTimeout(tick time.Duration) time.Duration {
	return max(time.Millisecond, min(tick/4, MaxPollTimeout))
}

// Run renders and advances generations until the input source reports quit or ctx is done
func (l *Loop) Run(ctx context.Context) {
	pollTimeout := PollTimeout(l.settings.TickInterval)

	for l.state == Running {
		frameStart := time.Now()

		// render the committed generation before advancing it
		l.live = l.grid.LiveCells(l.live)
		l.renderer.Draw(l.live, l.settings.CellColor, l.settings.BackgroundColor,
			l.grid.GetHeight(), l.grid.GetWidth())
		l.stats.Update(l.generation, len(l.live), frameStart)
		l.stats.Trend = l.grid.Observe()

		if l.input.PollQuit(pollTimeout) || ctx.Err() != nil {
			l.state = Stopped
			break
		}

		if remaining := l.settings.TickInterval - time.Since(frameStart); remaining > 0 {
			l.sleep(ctx, remaining)
		}
		if ctx.Err() != nil {
			l.state = Stopped
			break
		}

		l.engine.Step(l.grid)
		l.generation++
	}
}

func sleepContext(ctx context.Context, d time.Duration) {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
	case <-timer.C:
	}
}
