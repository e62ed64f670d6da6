package model

import (
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/termgol/rules"
)

// Engine computes successive generations of a Grid under one edge policy
type Engine struct {
	edge    rules.EdgePolicy
	workers int
	pool    *BufferPool
}

// NewEngine returns an Engine. workers > 1 splits each advance into that many row bands
// computed concurrently; a nil pool allocates a fresh buffer per generation.
func NewEngine(edge rules.EdgePolicy, workers int, pool *BufferPool) *Engine {
	return &Engine{
		edge:    edge,
		workers: max(1, workers),
		pool:    pool,
	}
}

// Edge returns the engine's edge policy
func (e *Engine) Edge() rules.EdgePolicy {
	return e.edge
}

// Supports reports whether the engine can advance a grid of the given size
func (e *Engine) Supports(height, width int) error {
	if e.edge == rules.Toroidal && (height < rules.MinToroidalSide || width < rules.MinToroidalSide) {
		return errors.Errorf("[Supports] %s edges need a grid of at least %dx%d, got %dx%d",
			e.edge, rules.MinToroidalSide, rules.MinToroidalSide, height, width)
	}
	return nil
}

// Advance computes the next generation of g into a staging buffer without touching g
func (e *Engine) Advance(g *Grid) *Buffer {
	var next *Buffer
	if e.pool != nil {
		next = e.pool.Get(g.height, g.width)
	} else {
		next = NewBuffer(g.height, g.width)
	}

	if e.workers == 1 || g.height < 2 {
		e.advanceRows(g, next, 0, g.height)
		return next
	}

	var (
		eg            errgroup.Group
		numWorkers    = min(e.workers, g.height)
		rowsPerWorker = (g.height + numWorkers - 1) / numWorkers // Ceiling division
	)

	for i := range numWorkers {
		var (
			startRow = i * rowsPerWorker
			endRow   = min(startRow+rowsPerWorker, g.height)
		)
		if startRow >= g.height {
			break
		}

		eg.Go(func() error {
			e.advanceRows(g, next, startRow, endRow)
			return nil
		})
	}

	// bands only read g and write disjoint rows of next, so they cannot fail
	_ = eg.Wait()

	return next
}

// Recycle hands a committed buffer back for reuse by a later Advance
func (e *Engine) Recycle(b *Buffer) {
	if e.pool != nil {
		e.pool.Put(b)
	}
}

// Step advances g by one generation in place
func (e *Engine) Step(g *Grid) {
	next := e.Advance(g)
	g.Commit(next)
	e.Recycle(next)
}

func (e *Engine) advanceRows(g *Grid, next *Buffer, startRow, endRow int) {
	for y := startRow; y < endRow; y++ {
		for x := 0; x < g.width; x++ {
			idx := y*g.width + x
			if rules.ApplyConwayRules(g.CountNeighbors(y, x, e.edge), g.cells[idx] == Alive) {
				next.cells[idx] = Alive
			} else {
				next.cells[idx] = Dead
			}
		}
	}
}

// CountNeighbors counts the living cells in the Moore neighborhood of (row, column)
func (g *Grid) CountNeighbors(row, column int, edge rules.EdgePolicy) int {
	if edge == rules.Toroidal {
		return g.countNeighborsToroidal(row, column)
	}
	return g.countNeighborsClipped(row, column)
}

// countNeighborsClipped only visits in-bounds neighbors; everything past an edge is dead
func (g *Grid) countNeighborsClipped(row, column int) int {
	count := 0

	// Calculate bounds once using efficient integer min/max
	minX := max(0, column-1)
	maxX := min(g.width-1, column+1)
	minY := max(0, row-1)
	maxY := min(g.height-1, row+1)

	for ny := minY; ny <= maxY; ny++ {
		for nx := minX; nx <= maxX; nx++ {
			if nx == column && ny == row {
				continue // Skip the cell itself
			}
			if g.cells[ny*g.width+nx] == Alive {
				count++
			}
		}
	}

	return count
}

func (g *Grid) countNeighborsToroidal(row, column int) int {
	count := 0
	for _, off := range rules.MooreOffsets {
		ny := (row + off[0] + g.height) % g.height
		nx := (column + off[1] + g.width) % g.width
		if g.cells[ny*g.width+nx] == Alive {
			count++
		}
	}
	return count
}
