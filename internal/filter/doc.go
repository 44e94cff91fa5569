// Package filter provides the neighbourhood and per-pixel colour filters of the
// toolkit.
//
// This package contains:
//   - Box blur (separable sliding sums, O(1) per pixel per pass for any radius)
//   - Color matrix transformations (4x4 plus add vector)
//   - 3x3 and 5x5 convolution with edge-clamped taps
//
// Box blur is driven through the BoxConvolver strategy. The portable
// implementation is always available; the accelerated implementation is
// selected when the CPU supports it and reports ErrUnavailable otherwise, in
// which case callers fall back to the portable one.
//
// All filters read the source buffer without modifying it and write into a
// caller-provided or freshly allocated destination.
package filter
