package model

import "sync"

// Buffer stages the next generation while the committed Grid is still being read
type Buffer struct {
	width  int
	height int
	cells  []Cell
}

// NewBuffer allocates a height x width staging buffer
func NewBuffer(height, width int) *Buffer {
	b := &Buffer{}
	b.Reset(height, width)
	return b
}

// Reset resizes the buffer to new dimensions, reusing its storage when it is large enough
func (b *Buffer) Reset(height, width int) {
	b.height = height
	b.width = width
	if cap(b.cells) < height*width {
		b.cells = make([]Cell, height*width)
		return
	}
	b.cells = b.cells[:height*width]
}

// Get returns the staged state of a cell
func (b *Buffer) Get(row, column int) Cell {
	return b.cells[row*b.width+column]
}

// BufferPool recycles staging buffers between generations
type BufferPool struct {
	pool sync.Pool
}

func NewBufferPool() *BufferPool {
	return &BufferPool{
		pool: sync.Pool{
			New: func() interface{} {
				return &Buffer{}
			},
		},
	}
}

// Get retrieves a buffer from the pool, resetting its dimensions. The contents are stale; the
// rule engine overwrites every cell before the buffer is committed.
func (p *BufferPool) Get(height, width int) *Buffer {
	b := p.pool.Get().(*Buffer)
	b.Reset(height, width)
	return b
}

// Put returns a buffer to the pool for reuse
func (p *BufferPool) Put(b *Buffer) {
	if b == nil {
		return
	}
	p.pool.Put(b)
}
