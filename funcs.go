package toolkit

// Package-level operations run on a Toolkit that uses the process-wide
// BoxConvolver and logger.

// Blend composites src onto dst in place. See Toolkit.Blend.
func Blend(mode BlendingMode, src, dst []byte, sizeX, sizeY int, r *Range2d) error {
	return std.Blend(mode, src, dst, sizeX, sizeY, r)
}

// Blur returns a box-blurred copy of in. See Toolkit.Blur.
func Blur(in []byte, vectorSize, sizeX, sizeY, radius int, r *Range2d) ([]byte, error) {
	return std.Blur(in, vectorSize, sizeX, sizeY, radius, r)
}

// ColorMatrix returns in transformed by a 4x4 matrix. See Toolkit.ColorMatrix.
func ColorMatrix(in []byte, inVectorSize, sizeX, sizeY, outVectorSize int,
	matrix, addVector []float32, r *Range2d) ([]byte, error) {
	return std.ColorMatrix(in, inVectorSize, sizeX, sizeY, outVectorSize, matrix, addVector, r)
}

// Convolve returns in filtered by a 3x3 or 5x5 kernel. See Toolkit.Convolve.
func Convolve(in []byte, vectorSize, sizeX, sizeY int, coefficients []float32, r *Range2d) ([]byte, error) {
	return std.Convolve(in, vectorSize, sizeX, sizeY, coefficients, r)
}

// Histogram counts channel values. See Toolkit.Histogram.
func Histogram(in []byte, vectorSize, sizeX, sizeY int, r *Range2d) ([]int32, error) {
	return std.Histogram(in, vectorSize, sizeX, sizeY, r)
}

// HistogramDot counts weighted channel sums. See Toolkit.HistogramDot.
func HistogramDot(in []byte, vectorSize, sizeX, sizeY int, coefficients []float32, r *Range2d) ([]int32, error) {
	return std.HistogramDot(in, vectorSize, sizeX, sizeY, coefficients, r)
}

// Lut maps channels through lookup tables. See Toolkit.Lut.
func Lut(in []byte, sizeX, sizeY int, table *LookupTable, r *Range2d) ([]byte, error) {
	return std.Lut(in, sizeX, sizeY, table, r)
}

// Lut3d maps RGB through a colour cube. See Toolkit.Lut3d.
func Lut3d(in []byte, sizeX, sizeY int, cube *Rgba3dArray, r *Range2d) ([]byte, error) {
	return std.Lut3d(in, sizeX, sizeY, cube, r)
}

// Resize scales in with bicubic interpolation. See Toolkit.Resize.
func Resize(in []byte, vectorSize, inSizeX, inSizeY, outSizeX, outSizeY int, r *Range2d) ([]byte, error) {
	return std.Resize(in, vectorSize, inSizeX, inSizeY, outSizeX, outSizeY, r)
}

// YuvToRgb converts YUV 4:2:0 to RGBA. See Toolkit.YuvToRgb.
func YuvToRgb(in []byte, sizeX, sizeY int, format YuvFormat) ([]byte, error) {
	return std.YuvToRgb(in, sizeX, sizeY, format)
}
