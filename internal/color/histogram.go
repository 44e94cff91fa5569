package color

import "github.com/gogpu/toolkit/internal/image"

// DefaultDotCoefficients are the Rec. 601 luma weights used by HistogramDot
// when the caller supplies none.
var DefaultDotCoefficients = [4]float32{0.299, 0.587, 0.114, 0}

// Histogram counts, per channel, how many pixels of r take each value.
// The result has 256*l.Stride() entries; the count for value v of channel c
// lives at v*l.Stride()+c. Only the first l.VectorSize channels are counted,
// so the padding slot of three-channel data stays zero.
func Histogram(src []byte, l image.Layout, r image.Rect) []int32 {
	stride := l.Stride()
	channels := l.VectorSize
	hist := make([]int32, 256*stride)
	l.ForEachPixel(r, func(_, _, i int) {
		for c := 0; c < channels; c++ {
			hist[int(src[i+c])*stride+c]++
		}
	})
	return hist
}

// DotWeights converts float coefficients to 8-bit fixed point, rounding to
// the nearest 1/256.
func DotWeights(coefficients [4]float32) [4]int32 {
	var w [4]int32
	for i, c := range coefficients {
		w[i] = int32(c*256 + 0.5)
	}
	return w
}

// HistogramDot counts the weighted sum of each pixel's channels in 256
// buckets. The bucket is (sum(w[c]*v[c]) + 0x7f) >> 8, saturated at 255 to
// absorb per-weight rounding.
func HistogramDot(src []byte, l image.Layout, weights [4]int32, r image.Rect) []int32 {
	channels := l.VectorSize
	hist := make([]int32, 256)
	l.ForEachPixel(r, func(_, _, i int) {
		var t int32
		for c := 0; c < channels; c++ {
			t += weights[c] * int32(src[i+c])
		}
		b := (t + 0x7f) >> 8
		if b > 255 {
			b = 255
		}
		hist[b]++
	})
	return hist
}
