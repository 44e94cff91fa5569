package filter

import (
	"fmt"
	"math/bits"

	"golang.org/x/sys/cpu"

	"github.com/gogpu/toolkit/internal/image"
)

// AcceleratedBoxConvolver is the fast box blur path.
//
// The horizontal pass packs the four channels of an RGBA pixel into one
// uint64 (16 bits per lane) and slides all four sums with a single add and
// subtract. Row sums are kept unnormalised and the vertical pass divides once
// by (2*radius+1)^2 through an exact multiply-shift reciprocal, so the result
// is floor(windowSum / area). The portable path truncates after each pass and
// may therefore be one level lower.
type AcceleratedBoxConvolver struct {
	available bool
}

// NewAcceleratedBoxConvolver probes the CPU and returns the accelerated
// convolver. On machines without 64-bit wide integer units Convolve reports
// ErrUnavailable.
func NewAcceleratedBoxConvolver() *AcceleratedBoxConvolver {
	return &AcceleratedBoxConvolver{available: hasWideIntegerUnits()}
}

// hasWideIntegerUnits reports whether packed 64-bit lane arithmetic pays off.
func hasWideIntegerUnits() bool {
	if bits.UintSize != 64 {
		return false
	}
	return cpu.X86.HasAVX2 || cpu.ARM64.HasASIMD || cpu.S390X.HasVX
}

// Available reports whether Convolve can run on this machine.
func (a *AcceleratedBoxConvolver) Available() bool {
	return a != nil && a.available
}

// Name returns "accelerated".
func (a *AcceleratedBoxConvolver) Name() string { return "accelerated" }

// maxAcceleratedRadius bounds the window so that packed horizontal lanes stay
// below 1<<16 and the reciprocal division stays exact (255*area^2 < 2^32).
const maxAcceleratedRadius = 31

// Convolve implements BoxConvolver.
func (a *AcceleratedBoxConvolver) Convolve(src, dst []byte, l image.Layout, radius int, r image.Rect) error {
	if !a.Available() {
		return ErrUnavailable
	}
	if radius > maxAcceleratedRadius {
		return fmt.Errorf("radius %d exceeds packed lane range: %w", radius, ErrUnavailable)
	}
	if l.Lanes() != 1 && l.Lanes() != 4 {
		return fmt.Errorf("%d lanes per pixel: %w", l.Lanes(), ErrUnavailable)
	}
	if r.Empty() {
		return nil
	}

	lanes := l.Lanes()
	y0 := max(0, r.MinY-radius)
	y1 := min(l.SizeY, r.MaxY+radius)
	rowLen := r.Dx() * lanes

	tmp := uint16Pool.get((y1 - y0) * rowLen)
	defer uint16Pool.put(tmp)

	for y := y0; y < y1; y++ {
		row := src[y*l.RowBytes() : (y+1)*l.RowBytes()]
		out := tmp[(y-y0)*rowLen : (y-y0+1)*rowLen]
		if lanes == 4 {
			horizontalPacked(row, out, l.SizeX, radius, r.MinX, r.MaxX)
		} else {
			horizontalSingle(row, out, l.SizeX, radius, r.MinX, r.MaxX)
		}
	}

	verticalReciprocal(tmp, dst, l, radius, r, y0)
	return nil
}

// loadPacked spreads the RGBA bytes of pixel x into four 16-bit lanes.
func loadPacked(row []byte, x int) uint64 {
	p := row[x*4 : x*4+4 : x*4+4]
	return uint64(p[0]) | uint64(p[1])<<16 | uint64(p[2])<<32 | uint64(p[3])<<48
}

// horizontalPacked writes unnormalised window sums for pixels [minX, maxX).
// Adding the incoming pixel before removing the outgoing one keeps every lane
// non-negative, so no borrow crosses lanes.
func horizontalPacked(row []byte, out []uint16, width, radius, minX, maxX int) {
	last := width - 1
	var sum uint64
	for k := -radius; k <= radius; k++ {
		sum += loadPacked(row, image.ClampIndex(minX+k, last))
	}
	o := 0
	for x := minX; x < maxX; x++ {
		out[o+0] = uint16(sum)
		out[o+1] = uint16(sum >> 16)
		out[o+2] = uint16(sum >> 32)
		out[o+3] = uint16(sum >> 48)
		o += 4
		sum += loadPacked(row, image.ClampIndex(x+radius+1, last))
		sum -= loadPacked(row, image.ClampIndex(x-radius, last))
	}
}

// horizontalSingle is horizontalPacked for single-channel rows.
func horizontalSingle(row []byte, out []uint16, width, radius, minX, maxX int) {
	last := width - 1
	var sum uint32
	for k := -radius; k <= radius; k++ {
		sum += uint32(row[image.ClampIndex(minX+k, last)])
	}
	for x := minX; x < maxX; x++ {
		out[x-minX] = uint16(sum)
		sum += uint32(row[image.ClampIndex(x+radius+1, last)])
		sum -= uint32(row[image.ClampIndex(x-radius, last)])
	}
}

// reciprocal returns ceil(2^32 / d). For every window sum s below 2^32/d
// (byte data and radius <= maxAcceleratedRadius guarantee that),
// (s * reciprocal(d)) >> 32 == s / d.
func reciprocal(d uint32) uint64 {
	return ((1 << 32) + uint64(d) - 1) / uint64(d)
}

// verticalReciprocal slides column sums over the horizontal sums in tmp and
// writes floor(sum / area) to dst.
func verticalReciprocal(tmp []uint16, dst []byte, l image.Layout, radius int, r image.Rect, y0 int) {
	lanes := l.Lanes()
	rowLen := r.Dx() * lanes
	maxY := l.SizeY - 1
	window := uint32(2*radius + 1)
	recip := reciprocal(window * window)

	tmpRow := func(y int) []uint16 {
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
		out := dst[l.PixelOffset(r.MinX, y):]
		for i, s := range sums {
			out[i] = byte((uint64(s) * recip) >> 32)
		}
		if y+1 == r.MaxY {
			break
		}
		in, old := tmpRow(y+radius+1), tmpRow(y-radius)
		for i := range sums {
			sums[i] += uint32(in[i]) - uint32(old[i])
		}
	}
}
