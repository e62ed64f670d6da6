package model

import (
	"crypto/md5"
	"fmt"
	"hash"

	"github.com/pkg/errors"
)

// Cell is the state of a single grid position
type Cell uint8

const (
	Dead Cell = iota
	Alive
)

// Point is a (row, column) grid coordinate
type Point struct {
	Row    int
	Column int
}

// historySize is how many generation fingerprints are kept for stagnation detection
const historySize = 5

// Grid is the committed generation of the game board, stored row-major
type Grid struct {
	width  int
	height int
	cells  []Cell

	history  [historySize]Fingerprint // recent generations, oldest first
	recorded int
	hasher   hash.Hash
	hashRow  []byte
	sum      Fingerprint
}

// Fingerprint is an MD5 digest of a generation
type Fingerprint [md5.Size]byte

// NewGrid allocates a height x width grid with every cell dead
func NewGrid(height, width int) (*Grid, error) {
	if height <= 0 || width <= 0 {
		return nil, errors.Errorf("[NewGrid] grid must be at least 1x1, got %dx%d", height, width)
	}
	return &Grid{
		width:  width,
		height: height,
		cells:  make([]Cell, height*width),
	}, nil
}

// GetWidth returns the width of the grid
func (g *Grid) GetWidth() int {
	return g.width
}

// GetHeight returns the height of the grid
func (g *Grid) GetHeight() int {
	return g.height
}

func (g *Grid) index(row, column int) int {
	if row < 0 || row >= g.height || column < 0 || column >= g.width {
		panic(fmt.Sprintf("model: cell (%d,%d) outside %dx%d grid", row, column, g.height, g.width))
	}
	return row*g.width + column
}

// Get returns the state of a cell. Out of bounds coordinates panic.
func (g *Grid) Get(row, column int) Cell {
	return g.cells[g.index(row, column)]
}

// Set sets the state of a cell. Out of bounds coordinates panic.
func (g *Grid) Set(row, column int, c Cell) {
	g.cells[g.index(row, column)] = c
}

// SeedRandom independently brings each cell to life with probability p
func (g *Grid) SeedRandom(src RandomSource, p float64) {
	for i := range g.cells {
		if src.BoolWithProbability(p) {
			g.cells[i] = Alive
		} else {
			g.cells[i] = Dead
		}
	}
	g.recorded = 0
}

// Commit replaces the grid contents with the staged generation. The buffer is left holding the
// previous generation so it can be reused as the next staging area.
func (g *Grid) Commit(next *Buffer) {
	if next.height != g.height || next.width != g.width {
		panic(fmt.Sprintf("model: commit of %dx%d buffer into %dx%d grid",
			next.height, next.width, g.height, g.width))
	}
	g.cells, next.cells = next.cells, g.cells
}

// LiveCells appends every living coordinate to dst[:0] in row-major order and returns it.
// Passing the previous frame's slice back in keeps rendering allocation free.
func (g *Grid) LiveCells(dst []Point) []Point {
	dst = dst[:0]
	for i, c := range g.cells {
		if c == Alive {
			dst = append(dst, Point{Row: i / g.width, Column: i % g.width})
		}
	}
	return dst
}

// CountLivingCells returns the total number of living cells
func (g *Grid) CountLivingCells() (count int) {
	for _, c := range g.cells {
		if c == Alive {
			count++
		}
	}
	return
}

// Fingerprint returns an MD5 digest of the current grid state. The hasher and row scratch are
// reused, so repeated calls do not allocate.
func (g *Grid) Fingerprint() Fingerprint {
	if g.hasher == nil {
		g.hasher = md5.New()
	}
	if len(g.hashRow) != g.width {
		g.hashRow = make([]byte, g.width)
	}
	g.hasher.Reset()
	for y := range g.height {
		row := g.cells[y*g.width : (y+1)*g.width]
		for x, c := range row {
			g.hashRow[x] = byte(c)
		}
		g.hasher.Write(g.hashRow)
	}
	g.hasher.Sum(g.sum[:0])
	return g.sum
}
