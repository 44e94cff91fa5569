package toolkit

import "github.com/gogpu/toolkit/internal/filter"

// Colour matrix presets for ColorMatrix. Each call returns a fresh 16-entry
// slice indexed [input*4+output].

// IdentityColorMatrix returns the matrix that copies every channel.
func IdentityColorMatrix() []float32 {
	m := filter.IdentityMatrix
	return m[:]
}

// GreyScaleColorMatrix returns a matrix that writes Rec. 601 luma to the
// RGB channels and keeps alpha.
func GreyScaleColorMatrix() []float32 {
	m := filter.GreyScaleMatrix
	return m[:]
}

// RgbToYuvColorMatrix returns a matrix converting RGB to YUV with U and V
// centred on zero. Pair it with the add vector {0, 0.5, 0.5, 0} to store
// chroma as unsigned bytes.
func RgbToYuvColorMatrix() []float32 {
	m := filter.RgbToYuvMatrix
	return m[:]
}

// YuvToRgbColorMatrix returns the inverse of RgbToYuvColorMatrix.
func YuvToRgbColorMatrix() []float32 {
	m := filter.YuvToRgbMatrix
	return m[:]
}
