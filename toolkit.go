package toolkit

import (
	"context"
	"log/slog"
	"strconv"

	"github.com/gogpu/toolkit/internal/blend"
	"github.com/gogpu/toolkit/internal/color"
	"github.com/gogpu/toolkit/internal/filter"
	"github.com/gogpu/toolkit/internal/image"
)

// Toolkit runs pixel-buffer operations. The zero value and the result of
// New with no options use the process-wide BoxConvolver and logger.
//
// A Toolkit holds no mutable state and is safe for concurrent use on
// disjoint buffers.
type Toolkit struct {
	opts options
}

// New creates a Toolkit configured by opts.
func New(opts ...Option) *Toolkit {
	t := &Toolkit{}
	for _, opt := range opts {
		opt(&t.opts)
	}
	return t
}

var std = New()

func (t *Toolkit) logger() *slog.Logger {
	if t.opts.logger != nil {
		return t.opts.logger
	}
	return Logger()
}

func (t *Toolkit) boxConvolver() BoxConvolver {
	if t.opts.convolver != nil {
		return t.opts.convolver
	}
	return ActiveBoxConvolver()
}

func (t *Toolkit) trace(op string, l image.Layout, r image.Rect) {
	t.logger().Debug("toolkit: "+op,
		"sizeX", l.SizeX,
		"sizeY", l.SizeY,
		"vectorSize", l.VectorSize,
		"area", r.Dx()*r.Dy())
}

// Blend composites src onto dst in place for every pixel of r (nil for the
// whole image). Both buffers hold sizeX*sizeY RGBA pixels. src may be dst.
func (t *Toolkit) Blend(mode BlendingMode, src, dst []byte, sizeX, sizeY int, r *Range2d) error {
	const op = "blend"
	l := image.Layout{SizeX: sizeX, SizeY: sizeY, VectorSize: 4}
	if err := checkBuffer(op, "source", src, l); err != nil {
		return err
	}
	if err := checkBuffer(op, "destination", dst, l); err != nil {
		return err
	}
	if !mode.mode().Valid() {
		return invalidArgument(op, "mode", "CLEAR..SUBTRACT", mode)
	}
	rect, err := restriction(op, r, sizeX, sizeY)
	if err != nil {
		return err
	}

	t.trace(op, l, rect)
	blend.Apply(mode.mode(), src, dst, l, rect)
	return nil
}

// Blur returns a box-blurred copy of in, averaging over a (2*radius+1)^2
// window with edges clamped. vectorSize must be 1 or 4 and radius 1..25.
// When r is not nil, output pixels outside r are zero.
//
// The active BoxConvolver runs first; if it fails the portable convolver
// recomputes the result and the failure is logged as a warning.
func (t *Toolkit) Blur(in []byte, vectorSize, sizeX, sizeY, radius int, r *Range2d) ([]byte, error) {
	const op = "blur"
	if vectorSize != 1 && vectorSize != 4 {
		return nil, invalidArgument(op, "vectorSize", "1 or 4", vectorSize)
	}
	l := image.Layout{SizeX: sizeX, SizeY: sizeY, VectorSize: vectorSize}
	if err := checkBuffer(op, "input", in, l); err != nil {
		return nil, err
	}
	if radius < minBlurRadius || radius > maxBlurRadius {
		return nil, invalidArgument(op, "radius", "1..25", radius)
	}
	rect, err := restriction(op, r, sizeX, sizeY)
	if err != nil {
		return nil, err
	}

	t.trace(op, l, rect)
	area := Range2d{StartX: rect.MinX, EndX: rect.MaxX, StartY: rect.MinY, EndY: rect.MaxY}
	out := l.Alloc()
	c := t.boxConvolver()
	if err := c.Convolve(in[:l.Len()], out, vectorSize, sizeX, sizeY, radius, area); err != nil {
		t.logger().Warn("box convolver failed, using portable fallback",
			"convolver", c.Name(),
			"err", err)
		clear(out)
		// The portable convolver never fails on validated input.
		_ = portable.Convolve(in[:l.Len()], out, vectorSize, sizeX, sizeY, radius, area)
	}
	if r != nil {
		l.ZeroOutside(out, rect)
	}
	return out, nil
}

// ColorMatrix returns in transformed by a 4x4 matrix. Output channel c is
//
//	sum(in[k] * matrix[k*4+c]) + addVector[c]*255
//
// rounded half up and clamped to a byte. Input channels beyond inVectorSize
// read as zero. addVector may be nil. Three-channel output also receives
// channel 3 in its padding byte. Pixels outside r are zero.
func (t *Toolkit) ColorMatrix(in []byte, inVectorSize, sizeX, sizeY, outVectorSize int,
	matrix, addVector []float32, r *Range2d) ([]byte, error) {
	const op = "colorMatrix"
	if err := checkVectorSize(op, "inVectorSize", inVectorSize, 1, 4); err != nil {
		return nil, err
	}
	if err := checkVectorSize(op, "outVectorSize", outVectorSize, 1, 4); err != nil {
		return nil, err
	}
	inLayout := image.Layout{SizeX: sizeX, SizeY: sizeY, VectorSize: inVectorSize}
	if err := checkBuffer(op, "input", in, inLayout); err != nil {
		return nil, err
	}
	if len(matrix) != 16 {
		return nil, invalidArgument(op, "matrix length", "16", len(matrix))
	}
	if addVector != nil && len(addVector) != 4 {
		return nil, invalidArgument(op, "addVector length", "4 or nil", len(addVector))
	}
	rect, err := restriction(op, r, sizeX, sizeY)
	if err != nil {
		return nil, err
	}

	t.trace(op, inLayout, rect)
	var m filter.ColorMatrix
	copy(m.Matrix[:], matrix)
	copy(m.Add[:], addVector)
	outLayout := image.Layout{SizeX: sizeX, SizeY: sizeY, VectorSize: outVectorSize}
	return m.Apply(in, inLayout, outLayout, rect), nil
}

// Convolve returns in filtered by a 3x3 or 5x5 kernel given as 9 or 25
// row-major coefficients. Taps outside the image reuse the nearest edge
// pixel. Pixels outside r are zero.
func (t *Toolkit) Convolve(in []byte, vectorSize, sizeX, sizeY int, coefficients []float32, r *Range2d) ([]byte, error) {
	const op = "convolve"
	if err := checkVectorSize(op, "vectorSize", vectorSize, 1, 4); err != nil {
		return nil, err
	}
	l := image.Layout{SizeX: sizeX, SizeY: sizeY, VectorSize: vectorSize}
	if err := checkBuffer(op, "input", in, l); err != nil {
		return nil, err
	}
	if n := len(coefficients); n != 9 && n != 25 {
		return nil, invalidArgument(op, "coefficients length", "9 or 25", n)
	}
	rect, err := restriction(op, r, sizeX, sizeY)
	if err != nil {
		return nil, err
	}

	t.trace(op, l, rect)
	return filter.Convolve(in, l, coefficients, rect), nil
}

// Histogram counts the values of each channel over r. The result has
// 256*PaddedStride(vectorSize) entries; the count of value v in channel c is
// at index v*PaddedStride(vectorSize)+c.
func (t *Toolkit) Histogram(in []byte, vectorSize, sizeX, sizeY int, r *Range2d) ([]int32, error) {
	const op = "histogram"
	if err := checkVectorSize(op, "vectorSize", vectorSize, 1, 4); err != nil {
		return nil, err
	}
	l := image.Layout{SizeX: sizeX, SizeY: sizeY, VectorSize: vectorSize}
	if err := checkBuffer(op, "input", in, l); err != nil {
		return nil, err
	}
	rect, err := restriction(op, r, sizeX, sizeY)
	if err != nil {
		return nil, err
	}

	t.trace(op, l, rect)
	return color.Histogram(in, l, rect), nil
}

// HistogramDot counts, in 256 buckets, the weighted sum of each pixel's
// channels. coefficients holds one non-negative weight per channel with a
// sum of at most 1; nil selects the luma weights {0.299, 0.587, 0.114, 0}.
func (t *Toolkit) HistogramDot(in []byte, vectorSize, sizeX, sizeY int, coefficients []float32, r *Range2d) ([]int32, error) {
	const op = "histogramDot"
	if err := checkVectorSize(op, "vectorSize", vectorSize, 1, 4); err != nil {
		return nil, err
	}
	l := image.Layout{SizeX: sizeX, SizeY: sizeY, VectorSize: vectorSize}
	if err := checkBuffer(op, "input", in, l); err != nil {
		return nil, err
	}
	weights := color.DefaultDotCoefficients
	if coefficients != nil {
		if err := checkDotCoefficients(op, coefficients, vectorSize); err != nil {
			return nil, err
		}
		weights = [4]float32{}
		copy(weights[:], coefficients)
	}
	rect, err := restriction(op, r, sizeX, sizeY)
	if err != nil {
		return nil, err
	}

	t.trace(op, l, rect)
	return color.HistogramDot(in, l, color.DotWeights(weights), rect), nil
}

// maxDotSum leaves room for float32 rounding of weights meant to sum to 1.
const maxDotSum = 1 + 1e-5

func checkDotCoefficients(op string, coefficients []float32, vectorSize int) error {
	if len(coefficients) != vectorSize {
		return invalidArgument(op, "coefficients length", strconv.Itoa(vectorSize), len(coefficients))
	}
	var sum float32
	for _, c := range coefficients {
		if !(c >= 0) {
			return invalidArgument(op, "coefficient", ">= 0", c)
		}
		sum += c
	}
	if sum > maxDotSum {
		return invalidArgument(op, "coefficients sum", "<= 1", sum)
	}
	return nil
}

// Lut maps each channel of the RGBA image in through its table.
// Pixels outside r are zero.
func (t *Toolkit) Lut(in []byte, sizeX, sizeY int, table *LookupTable, r *Range2d) ([]byte, error) {
	const op = "lut"
	l := image.Layout{SizeX: sizeX, SizeY: sizeY, VectorSize: 4}
	if err := checkBuffer(op, "input", in, l); err != nil {
		return nil, err
	}
	if table == nil {
		return nil, invalidArgument(op, "table", "non-nil", "nil")
	}
	rect, err := restriction(op, r, sizeX, sizeY)
	if err != nil {
		return nil, err
	}

	t.trace(op, l, rect)
	return color.ApplyLUT(in, l, table.tables(), rect), nil
}

// Lut3d maps the RGB channels of the RGBA image in through the colour cube
// with trilinear interpolation. Alpha is copied. Each cube dimension must be
// 2..256. Pixels outside r are zero.
func (t *Toolkit) Lut3d(in []byte, sizeX, sizeY int, cube *Rgba3dArray, r *Range2d) ([]byte, error) {
	const op = "lut3d"
	l := image.Layout{SizeX: sizeX, SizeY: sizeY, VectorSize: 4}
	if err := checkBuffer(op, "input", in, l); err != nil {
		return nil, err
	}
	if err := checkCube(op, cube); err != nil {
		return nil, err
	}
	rect, err := restriction(op, r, sizeX, sizeY)
	if err != nil {
		return nil, err
	}

	t.trace(op, l, rect)
	return color.ApplyLUT3D(in, l, cube.cube(), rect), nil
}

func checkCube(op string, cube *Rgba3dArray) error {
	if cube == nil {
		return invalidArgument(op, "cube", "non-nil", "nil")
	}
	dims := [3]struct {
		name string
		size int
	}{{"cube sizeX", cube.SizeX}, {"cube sizeY", cube.SizeY}, {"cube sizeZ", cube.SizeZ}}
	for _, d := range dims {
		if d.size < minCubeSize || d.size > maxCubeSize {
			return invalidArgument(op, d.name, "2..256", d.size)
		}
	}
	if need := cube.SizeX * cube.SizeY * cube.SizeZ * 4; len(cube.Values) < need {
		return invalidArgument(op, "cube values length", ">= "+strconv.Itoa(need), len(cube.Values))
	}
	return nil
}

// Resize scales in from inSizeX x inSizeY to outSizeX x outSizeY with
// Catmull-Rom bicubic interpolation. r is in output coordinates; output
// pixels outside it are zero.
func (t *Toolkit) Resize(in []byte, vectorSize, inSizeX, inSizeY, outSizeX, outSizeY int, r *Range2d) ([]byte, error) {
	const op = "resize"
	if err := checkVectorSize(op, "vectorSize", vectorSize, 1, 4); err != nil {
		return nil, err
	}
	inLayout := image.Layout{SizeX: inSizeX, SizeY: inSizeY, VectorSize: vectorSize}
	if err := checkBuffer(op, "input", in, inLayout); err != nil {
		return nil, err
	}
	if err := checkSize(op, "output size", outSizeX, outSizeY, PaddedStride(vectorSize)); err != nil {
		return nil, err
	}
	rect, err := restriction(op, r, outSizeX, outSizeY)
	if err != nil {
		return nil, err
	}

	outLayout := image.Layout{SizeX: outSizeX, SizeY: outSizeY, VectorSize: vectorSize}
	t.trace(op, outLayout, rect)
	out := image.Resize(in, inLayout, outLayout, rect)
	if l := t.logger(); l.Enabled(context.Background(), slog.LevelDebug) {
		s := image.TapsCacheStats()
		l.Debug("toolkit: resize taps",
			"cached", s.Len,
			"hits", s.Hits,
			"misses", s.Misses)
	}
	return out, nil
}

// YuvToRgb converts a YUV 4:2:0 buffer to RGBA with the integer BT.601
// formula. sizeX and sizeY must be even. Alpha is 255.
func (t *Toolkit) YuvToRgb(in []byte, sizeX, sizeY int, format YuvFormat) ([]byte, error) {
	const op = "yuvToRgb"
	if err := checkSize(op, "size", sizeX, sizeY, PaddedStride(4)); err != nil {
		return nil, err
	}
	if sizeX%2 != 0 || sizeY%2 != 0 {
		return nil, invalidArgument(op, "size", "even width and height", strconv.Itoa(sizeX)+"x"+strconv.Itoa(sizeY))
	}
	// Padded YV12 rows are at most 15 bytes wider than the image and the
	// chroma planes together are no larger than the luma plane.
	if !fitsInt(sizeX+15, sizeY, 2) {
		return nil, invalidArgument(op, "size", "planes that fit in an int", strconv.Itoa(sizeX)+"x"+strconv.Itoa(sizeY))
	}
	if !format.Valid() {
		return nil, invalidArgument(op, "format", "NV21 or YV12", format)
	}
	if need := color.Planes(format, sizeX, sizeY).Size; len(in) < need {
		return nil, invalidArgument(op, "input length", ">= "+strconv.Itoa(need)+" bytes", len(in))
	}

	l := image.Layout{SizeX: sizeX, SizeY: sizeY, VectorSize: 4}
	t.trace(op, l, l.Full())
	return color.YuvToRGB(in, sizeX, sizeY, format), nil
}
