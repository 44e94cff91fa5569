package image

import (
	"math"

	"github.com/gogpu/toolkit/internal/cache"
)

// cubicTaps holds the four clamped source indices and the fractional
// position for one output coordinate along one axis.
type cubicTaps struct {
	idx [4]int
	t   float32
}

// computeTaps maps every output coordinate back to the source axis using
// pixel-centre alignment: src = (out+0.5)*scale - 0.5.
func computeTaps(inSize, outSize int) []cubicTaps {
	scale := float32(inSize) / float32(outSize)
	maxIdx := inSize - 1
	taps := make([]cubicTaps, outSize)
	for o := range taps {
		f := (float32(o)+0.5)*scale - 0.5
		base := float32(math.Floor(float64(f)))
		start := int(base) - 1
		taps[o].t = f - base
		for k := 0; k < 4; k++ {
			taps[o].idx[k] = ClampIndex(start+k, maxIdx)
		}
	}
	return taps
}

// tapsCache memoises computeTaps per (inSize, outSize). Cached slices are
// shared between calls and never written after creation.
var tapsCache = cache.New[[2]int, []cubicTaps](64)

// TapsCacheStats reports how well resize tap tables are being reused.
func TapsCacheStats() cache.Stats {
	return tapsCache.Stats()
}

func axisTaps(inSize, outSize int) []cubicTaps {
	return tapsCache.GetOrCreate([2]int{inSize, outSize}, func() []cubicTaps {
		return computeTaps(inSize, outSize)
	})
}

// cubicInterpolate evaluates the Catmull-Rom segment between p1 and p2 at t.
func cubicInterpolate(p0, p1, p2, p3, t float32) float32 {
	return p1 + 0.5*t*(p2-p0+t*(2*p0-5*p1+4*p2-p3+t*(3*(p1-p2)+p3-p0)))
}

// Resize scales src (laid out as in) to an out.SizeX x out.SizeY buffer with
// separable bicubic interpolation, computing only the pixels inside r.
// in.VectorSize and out.VectorSize must match.
func Resize(src []byte, in, out Layout, r Rect) []byte {
	dst := out.Alloc()
	if r.Empty() {
		return dst
	}

	lanes := in.Lanes()
	xTaps := axisTaps(in.SizeX, out.SizeX)
	yTaps := axisTaps(in.SizeY, out.SizeY)
	inRow := in.RowBytes()
	stride := in.Stride()

	var rows [4][4]float32
	for y := r.MinY; y < r.MaxY; y++ {
		ty := yTaps[y]
		off := out.PixelOffset(r.MinX, y)
		for x := r.MinX; x < r.MaxX; x++ {
			tx := xTaps[x]
			for c := 0; c < lanes; c++ {
				// Horizontal pass over the four contributing rows.
				for k := 0; k < 4; k++ {
					row := src[ty.idx[k]*inRow:]
					rows[c][k] = cubicInterpolate(
						float32(row[tx.idx[0]*stride+c]),
						float32(row[tx.idx[1]*stride+c]),
						float32(row[tx.idx[2]*stride+c]),
						float32(row[tx.idx[3]*stride+c]),
						tx.t,
					)
				}
				dst[off+c] = ClampFloat(cubicInterpolate(rows[c][0], rows[c][1], rows[c][2], rows[c][3], ty.t))
			}
			off += stride
		}
	}
	return dst
}
