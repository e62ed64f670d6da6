package rules

import (
	"fmt"
	"strings"
)

// EdgePolicy decides what a neighbor offset that leaves the grid refers to
type EdgePolicy int

const (
	// Clipped treats everything outside the grid as permanently dead
	Clipped EdgePolicy = iota
	// Toroidal wraps rows and columns around to the opposite edge
	Toroidal
)

func (p EdgePolicy) String() string {
	switch p {
	case Clipped:
		return "clipped"
	case Toroidal:
		return "toroidal"
	default:
		return fmt.Sprintf("EdgePolicy(%d)", int(p))
	}
}

// ParseEdgePolicy maps a policy name to its EdgePolicy
func ParseEdgePolicy(name string) (EdgePolicy, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "clipped", "clip", "bounded":
		return Clipped, true
	case "toroidal", "torus", "wrap":
		return Toroidal, true
	default:
		return Clipped, false
	}
}

// MinToroidalSide is the smallest grid side the toroidal policy accepts. Below it a wrapped
// offset lands back on the cell itself or counts one neighbor twice.
const MinToroidalSide = 3
