package filter

import "sync"

// maxPooledElems caps the size of scratch slices kept for reuse.
const maxPooledElems = 16 * 1024 * 1024

// scratchBuffer wraps a slice for sync.Pool to avoid allocation warnings.
type scratchBuffer[T uint16 | uint32 | byte] struct {
	data []T
}

// scratchPool hands out zeroed temporary slices for the blur passes.
type scratchPool[T uint16 | uint32 | byte] struct {
	pool sync.Pool
}

// get returns a zeroed slice of exactly n elements.
func (p *scratchPool[T]) get(n int) []T {
	if v, ok := p.pool.Get().(*scratchBuffer[T]); ok && cap(v.data) >= n {
		buf := v.data[:n]
		clear(buf)
		return buf
	}
	return make([]T, n)
}

// put returns buf to the pool unless it is too large to keep around.
func (p *scratchPool[T]) put(buf []T) {
	if cap(buf) == 0 || cap(buf) > maxPooledElems {
		return
	}
	p.pool.Put(&scratchBuffer[T]{data: buf[:cap(buf)]})
}

var (
	bytePool   scratchPool[byte]
	uint16Pool scratchPool[uint16]
	uint32Pool scratchPool[uint32]
)
