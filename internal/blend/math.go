// Package blend implements the toolkit's in-place compositing operators.
//
// All arithmetic is 8-bit integer. Multiplication of two 0-255 values uses
// the shift approximation (a*b)>>8 rather than an exact division by 255;
// sums and differences saturate to [0, 255].
package blend

// mul8 multiplies two 0-255 values and scales the product back with >>8.
func mul8(a, b byte) byte {
	return byte((uint32(a) * uint32(b)) >> 8)
}

// addSat adds two bytes, saturating at 255.
func addSat(a, b byte) byte {
	sum := uint16(a) + uint16(b)
	if sum > 255 {
		return 255
	}
	return byte(sum)
}

// subSat subtracts b from a, saturating at 0.
func subSat(a, b byte) byte {
	if b >= a {
		return 0
	}
	return a - b
}

// atop computes (x*xa + y*(255-ya)) >> 8 saturated to a byte.
func atop(x, xa, y, ya byte) byte {
	v := (uint32(x)*uint32(xa) + uint32(y)*uint32(255-ya)) >> 8
	if v > 255 {
		return 255
	}
	return byte(v)
}
