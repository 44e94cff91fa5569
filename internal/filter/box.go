package filter

import (
	"errors"

	"github.com/gogpu/toolkit/internal/image"
)

// ErrUnavailable indicates a BoxConvolver cannot run on this machine or for
// this input. Callers should fall back to PortableBoxConvolver.
var ErrUnavailable = errors.New("filter: box convolver unavailable")

// BoxConvolver computes a separable box blur.
//
// Convolve averages every pixel of src inside r over a (2*radius+1)^2 window,
// clamping taps to the image edges, and writes the result into dst at the same
// offsets. Pixels of dst outside r are left untouched. src and dst share layout
// l and must not alias.
type BoxConvolver interface {
	// Name identifies the implementation in logs.
	Name() string

	// Convolve blurs src into dst. A non-nil error means dst may hold partial
	// output and the caller must recompute it with another convolver.
	Convolve(src, dst []byte, l image.Layout, radius int, r image.Rect) error
}

// PortableBoxConvolver is the reference sliding-sum implementation.
// It never fails. Each pass divides its running sum by the window size with
// integer truncation.
type PortableBoxConvolver struct{}

// Name returns "portable".
func (PortableBoxConvolver) Name() string { return "portable" }

// Convolve implements BoxConvolver.
func (PortableBoxConvolver) Convolve(src, dst []byte, l image.Layout, radius int, r image.Rect) error {
	if r.Empty() {
		return nil
	}

	lanes := l.Lanes()
	stride := l.Stride()
	rowBytes := l.RowBytes()
	window := uint32(2*radius + 1)
	maxX := l.SizeX - 1
	maxY := l.SizeY - 1

	// Rows that feed the vertical pass.
	y0 := max(0, r.MinY-radius)
	y1 := min(l.SizeY, r.MaxY+radius)
	rowLen := r.Dx() * lanes

	tmp := bytePool.get((y1 - y0) * rowLen)
	defer bytePool.put(tmp)

	// Pass 1: horizontal, src -> tmp.
	for y := y0; y < y1; y++ {
		row := src[y*rowBytes : (y+1)*rowBytes]
		out := tmp[(y-y0)*rowLen : (y-y0+1)*rowLen]
		for c := 0; c < lanes; c++ {
			var sum uint32
			for k := -radius; k <= radius; k++ {
				sum += uint32(row[image.ClampIndex(r.MinX+k, maxX)*stride+c])
			}
			o := c
			for x := r.MinX; x < r.MaxX; x++ {
				out[o] = byte(sum / window)
				o += lanes
				sum += uint32(row[image.ClampIndex(x+radius+1, maxX)*stride+c])
				sum -= uint32(row[image.ClampIndex(x-radius, maxX)*stride+c])
			}
		}
	}

	// Pass 2: vertical, tmp -> dst, one running sum per column lane.
	tmpRow := func(y int) []byte {
		i := image.ClampIndex(y, maxY) - y0
		return tmp[i*rowLen : (i+1)*rowLen]
	}

	sums := uint32Pool.get(rowLen)
	defer uint32Pool.put(sums)

	for k := -radius; k <= radius; k++ {
		for i, v := range tmpRow(r.MinY + k) {
			sums[i] += uint32(v)
		}
	}

	for y := r.MinY; y < r.MaxY; y++ {
		off := l.PixelOffset(r.MinX, y)
		for i := 0; i < rowLen; i += lanes {
			for c := 0; c < lanes; c++ {
				dst[off+c] = byte(sums[i+c] / window)
			}
			off += stride
		}
		if y+1 == r.MaxY {
			break
		}
		in, out := tmpRow(y+radius+1), tmpRow(y-radius)
		for i := range sums {
			sums[i] += uint32(in[i]) - uint32(out[i])
		}
	}

	return nil
}
