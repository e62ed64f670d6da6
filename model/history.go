package model

// Trend classifies how the population has behaved over the last few generations
type Trend int

const (
	Active Trend = iota
	Stable
	Oscillating
	Extinct
)

func (t Trend) String() string {
	switch t {
	case Stable:
		return "Stable"
	case Oscillating:
		return "Oscillating"
	case Extinct:
		return "Extinct"
	default:
		return "Active"
	}
}

// Observe fingerprints the committed generation, compares it against recent history and records
// it. Repeating the previous generation is Stable, repeating one two or three back is
// Oscillating.
func (g *Grid) Observe() Trend {
	if g.CountLivingCells() == 0 {
		g.remember(Fingerprint{})
		return Extinct
	}

	current := g.Fingerprint()
	trend := Active
	n := g.recorded
	switch {
	case n >= 1 && g.history[n-1] == current:
		trend = Stable
	case n >= 2 && g.history[n-2] == current,
		n >= 3 && g.history[n-3] == current:
		trend = Oscillating
	}
	g.remember(current)
	return trend
}

func (g *Grid) remember(sum Fingerprint) {
	// Keep only the last few states to detect cycles
	if g.recorded == historySize {
		copy(g.history[:], g.history[1:])
		g.recorded--
	}
	g.history[g.recorded] = sum
	g.recorded++
}
