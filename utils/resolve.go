package utils

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"

	"github.com/sheikhrachel/termgol/rules"
)

// RangeError reports a numeric setting outside its valid range
type RangeError struct {
	Field string
	Value string
	Min   string
	Max   string
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("invalid %s %s: must be between %s and %s", e.Field, e.Value, e.Min, e.Max)
}

// ValueError reports a setting that does not name anything known
type ValueError struct {
	Field  string
	Value  string
	Reason string
}

func (e *ValueError) Error() string {
	return fmt.Sprintf("invalid %s %q: %s", e.Field, e.Value, e.Reason)
}

// Settings is the validated, immutable configuration for a run
type Settings struct {
	Density          int
	SpawnProbability float64
	TickInterval     time.Duration
	CellColor        tcell.Color
	BackgroundColor  tcell.Color
	Edge             rules.EdgePolicy
	Workers          int
	Seed             int64
}

// Resolve validates every field of c and converts it to Settings. The first invalid field is
// reported; nothing is clamped silently.
func Resolve(c Config) (Settings, error) {
	if c.Density < MinDensity || c.Density > MaxDensity {
		return Settings{}, intRangeError("density", c.Density, MinDensity, MaxDensity)
	}
	if math.IsNaN(c.SpawnRate) || c.SpawnRate < MinSpawnRate || c.SpawnRate > MaxSpawnRate {
		return Settings{}, errors.WithStack(&RangeError{
			Field: "spawn rate",
			Value: fmt.Sprint(c.SpawnRate),
			Min:   fmt.Sprint(MinSpawnRate),
			Max:   fmt.Sprint(MaxSpawnRate),
		})
	}
	if c.Speed < MinSpeed || c.Speed > MaxSpeed {
		return Settings{}, intRangeError("tick interval (ms)", c.Speed, MinSpeed, MaxSpeed)
	}
	if c.Workers < MinWorkers || c.Workers > MaxWorkers {
		return Settings{}, intRangeError("workers", c.Workers, MinWorkers, MaxWorkers)
	}

	cellColor, err := ParseColor("cell color", c.CellColor)
	if err != nil {
		return Settings{}, err
	}
	background, err := ParseColor("background color", c.BackgroundColor)
	if err != nil {
		return Settings{}, err
	}

	edge, ok := rules.ParseEdgePolicy(c.Edge)
	if !ok {
		return Settings{}, errors.WithStack(&ValueError{
			Field:  "edge policy",
			Value:  c.Edge,
			Reason: fmt.Sprintf("must be %s or %s", rules.Clipped, rules.Toroidal),
		})
	}

	return Settings{
		Density:          c.Density,
		SpawnProbability: c.SpawnRate,
		TickInterval:     c.TickInterval(),
		CellColor:        cellColor,
		BackgroundColor:  background,
		Edge:             edge,
		Workers:          c.Workers,
		Seed:             c.Seed,
	}, nil
}

// ParseColor accepts a terminal color name, "#rrggbb", or "default" for the terminal's own color
func ParseColor(field, name string) (tcell.Color, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "default" || name == "reset" {
		return tcell.ColorDefault, nil
	}
	if c := tcell.GetColor(name); c != tcell.ColorDefault {
		return c, nil
	}
	return tcell.ColorDefault, errors.WithStack(&ValueError{
		Field:  field,
		Value:  name,
		Reason: "must be a color name, #rrggbb, or default",
	})
}

func intRangeError(field string, value, lo, hi int) error {
	return errors.WithStack(&RangeError{
		Field: field,
		Value: fmt.Sprint(value),
		Min:   fmt.Sprint(lo),
		Max:   fmt.Sprint(hi),
	})
}
