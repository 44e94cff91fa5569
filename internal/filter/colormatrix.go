package filter

import "github.com/gogpu/toolkit/internal/image"

// ColorMatrix is a 4x4 channel mixing matrix plus an add vector.
//
// Matrix is indexed [input*4 + output]: output channel c is
//
//	sum over k of in[k] * Matrix[k*4+c]  +  Add[c] * 255
//
// with input channels in 0-255. Add is expressed in 0-1 units.
type ColorMatrix struct {
	Matrix [16]float32
	Add    [4]float32
}

// IdentityMatrix passes every channel through unchanged.
var IdentityMatrix = [16]float32{
	1, 0, 0, 0,
	0, 1, 0, 0,
	0, 0, 1, 0,
	0, 0, 0, 1,
}

// GreyScaleMatrix writes Rec. 601 luma into R, G and B and keeps alpha.
var GreyScaleMatrix = [16]float32{
	0.299, 0.299, 0.299, 0,
	0.587, 0.587, 0.587, 0,
	0.114, 0.114, 0.114, 0,
	0, 0, 0, 1,
}

// RgbToYuvMatrix converts RGB to YUV (BT.601, U and V centred on 0).
var RgbToYuvMatrix = [16]float32{
	0.299, -0.14713, 0.615, 0,
	0.587, -0.28886, -0.51499, 0,
	0.114, 0.436, -0.10001, 0,
	0, 0, 0, 1,
}

// YuvToRgbMatrix converts YUV (U and V centred on 0) back to RGB.
var YuvToRgbMatrix = [16]float32{
	1, 1, 1, 0,
	0, -0.39465, 2.03211, 0,
	1.13983, -0.5806, 0, 0,
	0, 0, 0, 1,
}

// outputLanes returns how many lanes of an output pixel are written.
// Three-channel output still receives the alpha-lane result in its
// padding byte.
func outputLanes(vectorSize int) int {
	if vectorSize >= 3 {
		return 4
	}
	return vectorSize
}

// Apply transforms src (layout in) into a new buffer with layout out for the
// pixels of r. Input channels beyond in.VectorSize read as 0.
func (m *ColorMatrix) Apply(src []byte, in, out image.Layout, r image.Rect) []byte {
	dst := out.Alloc()
	if r.Empty() {
		return dst
	}

	inVec := in.VectorSize
	inStride := in.Stride()
	outStride := out.Stride()
	lanes := outputLanes(out.VectorSize)

	var bias [4]float32
	for c := range bias {
		bias[c] = m.Add[c] * 255
	}

	var px [4]float32
	for y := r.MinY; y < r.MaxY; y++ {
		si := in.PixelOffset(r.MinX, y)
		di := out.PixelOffset(r.MinX, y)
		for x := r.MinX; x < r.MaxX; x++ {
			for k := 0; k < 4; k++ {
				if k < inVec {
					px[k] = float32(src[si+k])
				} else {
					px[k] = 0
				}
			}
			for c := 0; c < lanes; c++ {
				sum := px[0]*m.Matrix[c] +
					px[1]*m.Matrix[4+c] +
					px[2]*m.Matrix[8+c] +
					px[3]*m.Matrix[12+c] +
					bias[c]
				dst[di+c] = image.ClampFloat(sum)
			}
			si += inStride
			di += outStride
		}
	}
	return dst
}
