package filter

import "github.com/gogpu/toolkit/internal/image"

// Test helper functions shared across filter tests.

// uniformBuffer returns a buffer of layout l where every pixel is px.
func uniformBuffer(l image.Layout, px ...byte) []byte {
	buf := l.Alloc()
	stride := l.Stride()
	for i := 0; i < len(buf); i += stride {
		copy(buf[i:i+stride], px)
	}
	return buf
}

// patternBuffer returns a deterministic non-uniform buffer of layout l.
func patternBuffer(l image.Layout) []byte {
	buf := l.Alloc()
	var v uint32 = 2463534242
	for i := range buf {
		// xorshift32
		v ^= v << 13
		v ^= v >> 17
		v ^= v << 5
		buf[i] = byte(v)
	}
	return buf
}

// inside reports whether (x, y) lies in the half-open rectangle r.
func inside(r image.Rect, x, y int) bool {
	return x >= r.MinX && x < r.MaxX && y >= r.MinY && y < r.MaxY
}

// absDiff returns |a-b| for bytes.
func absDiff(a, b byte) int {
	if a > b {
		return int(a - b)
	}
	return int(b - a)
}
