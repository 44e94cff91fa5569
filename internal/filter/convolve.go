package filter

import "github.com/gogpu/toolkit/internal/image"

// Convolve applies a square kernel of side 3 or 5 to every pixel of r.
// coefficients are row-major and len(coefficients) must be side*side.
// Out-of-range taps reuse the nearest edge pixel. Three-channel pixels are
// convolved as four lanes so the padding byte is filtered like the others.
func Convolve(src []byte, l image.Layout, coefficients []float32, r image.Rect) []byte {
	dst := l.Alloc()
	if r.Empty() {
		return dst
	}

	side := 3
	if len(coefficients) == 25 {
		side = 5
	}
	half := side / 2
	lanes := l.Lanes()
	stride := l.Stride()
	rowBytes := l.RowBytes()
	maxX, maxY := l.SizeX-1, l.SizeY-1

	// Clamped tap offsets for the current pixel.
	cols := make([]int, side)
	rows := make([]int, side)

	var acc [4]float32
	for y := r.MinY; y < r.MaxY; y++ {
		for k := range rows {
			rows[k] = image.ClampIndex(y+k-half, maxY) * rowBytes
		}
		di := l.PixelOffset(r.MinX, y)
		for x := r.MinX; x < r.MaxX; x++ {
			for k := range cols {
				cols[k] = image.ClampIndex(x+k-half, maxX) * stride
			}
			acc = [4]float32{}
			for ky, rowOff := range rows {
				coef := coefficients[ky*side : ky*side+side]
				for kx, colOff := range cols {
					base := rowOff + colOff
					w := coef[kx]
					for c := 0; c < lanes; c++ {
						acc[c] += float32(src[base+c]) * w
					}
				}
			}
			for c := 0; c < lanes; c++ {
				dst[di+c] = image.ClampFloat(acc[c])
			}
			di += stride
		}
	}
	return dst
}
