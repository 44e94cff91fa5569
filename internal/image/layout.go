// Package image provides the pixel buffer layout shared by every toolkit kernel,
// byte clamping helpers and the bicubic resize engine.
package image

// PaddedStride returns the number of bytes a pixel of vectorSize channels
// occupies in a buffer. Three-channel pixels are padded to four bytes to match
// common bitmap and GPU layouts.
func PaddedStride(vectorSize int) int {
	if vectorSize == 3 {
		return 4
	}
	return vectorSize
}

// Layout describes a row-major pixel buffer.
type Layout struct {
	SizeX      int
	SizeY      int
	VectorSize int
}

// Stride returns the bytes per pixel.
func (l Layout) Stride() int {
	return PaddedStride(l.VectorSize)
}

// RowBytes returns the bytes per row.
func (l Layout) RowBytes() int {
	return l.SizeX * l.Stride()
}

// Len returns the number of bytes the buffer must hold.
func (l Layout) Len() int {
	return l.SizeX * l.SizeY * l.Stride()
}

// PixelOffset returns the byte offset of pixel (x, y).
func (l Layout) PixelOffset(x, y int) int {
	return (y*l.SizeX + x) * l.Stride()
}

// Lanes returns how many lanes of each pixel a kernel processes.
// Padded three-channel pixels are processed as four lanes so that the
// padding byte is carried through identically.
func (l Layout) Lanes() int {
	return l.Stride()
}

// Alloc returns a zeroed buffer sized for the layout.
func (l Layout) Alloc() []byte {
	return make([]byte, l.Len())
}

// Rect is a half-open pixel rectangle.
type Rect struct {
	MinX, MinY int
	MaxX, MaxY int
}

// Full returns the rectangle covering the whole layout.
func (l Layout) Full() Rect {
	return Rect{MaxX: l.SizeX, MaxY: l.SizeY}
}

// Empty reports whether the rectangle contains no pixels.
func (r Rect) Empty() bool {
	return r.MinX >= r.MaxX || r.MinY >= r.MaxY
}

// Dx returns the rectangle width.
func (r Rect) Dx() int { return r.MaxX - r.MinX }

// Dy returns the rectangle height.
func (r Rect) Dy() int { return r.MaxY - r.MinY }

// ForEachPixel calls fn with the byte offset of every pixel of r, row by row.
func (l Layout) ForEachPixel(r Rect, fn func(x, y, off int)) {
	stride := l.Stride()
	for y := r.MinY; y < r.MaxY; y++ {
		off := l.PixelOffset(r.MinX, y)
		for x := r.MinX; x < r.MaxX; x++ {
			fn(x, y, off)
			off += stride
		}
	}
}

// ZeroOutside clears every pixel of buf that lies outside r.
func (l Layout) ZeroOutside(buf []byte, r Rect) {
	rowBytes := l.RowBytes()
	stride := l.Stride()
	for y := 0; y < l.SizeY; y++ {
		row := buf[y*rowBytes : (y+1)*rowBytes]
		if y < r.MinY || y >= r.MaxY {
			clear(row)
			continue
		}
		clear(row[:r.MinX*stride])
		clear(row[r.MaxX*stride:])
	}
}
