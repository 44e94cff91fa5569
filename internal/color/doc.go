// Package color implements the toolkit's colour remapping and colour
// statistics kernels: 1-D lookup tables, 3-D colour cubes with trilinear
// interpolation, per-channel and weighted histograms, and YUV to RGBA
// conversion.
//
// Every kernel works in integer or fixed-point arithmetic; the shift and
// rounding constants are part of the observable output.
package color
