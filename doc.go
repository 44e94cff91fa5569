// Package toolkit provides CPU pixel-buffer operations for Go.
//
// # Overview
//
// toolkit transforms raw, decoded image data held in byte slices: alpha
// blending, box blur, 4x4 colour matrices, 3x3 and 5x5 convolution,
// histograms, 1-D and 3-D lookup tables, bicubic resize and YUV to RGBA
// conversion. Every operation except Blend allocates and returns a new
// buffer; Blend writes into its destination.
//
// # Quick Start
//
//	import "github.com/gogpu/toolkit"
//
//	// 4-channel 640x480 image
//	blurred, err := toolkit.Blur(pixels, 4, 640, 480, 3, nil)
//	if err != nil {
//	    return err
//	}
//
//	// Only the top-left quarter, everything else zero
//	r := &toolkit.Range2d{StartX: 0, EndX: 320, StartY: 0, EndY: 240}
//	blurred, err = toolkit.Blur(pixels, 4, 640, 480, 3, r)
//
// # Buffer Layout
//
// A buffer holds sizeX*sizeY pixels in row-major order. Each pixel has
// vectorSize channels (1 to 4) and occupies PaddedStride(vectorSize) bytes:
// three-channel pixels are padded to four bytes, the others are packed.
//
// A *Range2d restricts an operation to a half-open rectangle; nil selects the
// whole image. Output pixels outside the rectangle are zero.
//
// # Errors
//
// Arguments are fully validated before any work starts. A failure returns an
// *InvalidArgumentError naming the operation, the parameter and the expected
// and actual values; errors.Is(err, ErrInvalidArgument) reports true for all
// of them.
//
// # Box Convolvers
//
// Blur delegates to the active BoxConvolver. By default that is an
// accelerated implementation on 64-bit CPUs with wide integer units and the
// portable reference implementation elsewhere. If the active convolver fails,
// Blur logs a warning and recomputes the result with the portable one; the
// two differ by at most one level per channel. RegisterBoxConvolver replaces
// the process-wide convolver and WithBoxConvolver selects one per Toolkit.
//
// # Logging
//
// toolkit is silent by default. SetLogger installs a *slog.Logger shared by
// the package-level functions; WithLogger sets one per Toolkit.
package toolkit
