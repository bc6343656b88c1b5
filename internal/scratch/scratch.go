// Package scratch pools float64 work buffers for the refresh-rate hot
// paths (smoothing padding, convolution temporaries). Buffers hold no
// state between uses; Get always returns zeroed samples.
package scratch

import "sync"

// Buffer is a reusable float64 work area.
type Buffer struct {
	samples []float64
}

// Samples returns the underlying slice.
func (b *Buffer) Samples() []float64 {
	return b.samples
}

// Len returns the current number of samples.
func (b *Buffer) Len() int {
	return len(b.samples)
}

// Resize sets the length to n, reusing existing capacity when possible,
// and zeroes the samples.
func (b *Buffer) Resize(n int) {
	if n < 0 {
		n = 0
	}
	if n <= cap(b.samples) {
		b.samples = b.samples[:n]
		clear(b.samples)
		return
	}
	b.samples = make([]float64, n)
}

// Pool hands out Buffers backed by a sync.Pool. It is safe for concurrent
// use.
type Pool struct {
	pool sync.Pool
}

// NewPool returns a Pool ready for use.
func NewPool() *Pool {
	return &Pool{
		pool: sync.Pool{
			New: func() any {
				return &Buffer{}
			},
		},
	}
}

// Get returns a zeroed Buffer of the requested length. Callers return it
// with Put when done.
func (p *Pool) Get(length int) *Buffer {
	b := p.pool.Get().(*Buffer)
	b.Resize(length)
	return b
}

// Put returns b to the pool. The caller must not use b afterwards.
func (p *Pool) Put(b *Buffer) {
	if b == nil {
		return
	}
	p.pool.Put(b)
}

var shared = NewPool()

// Get takes a zeroed Buffer of the given length from the shared pool.
func Get(length int) *Buffer {
	return shared.Get(length)
}

// Put returns b to the shared pool.
func Put(b *Buffer) {
	shared.Put(b)
}
