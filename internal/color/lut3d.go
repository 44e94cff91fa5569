package color

import "github.com/gogpu/toolkit/internal/image"

// Cube is a 3-D RGBA colour table indexed by (red, green, blue).
// Values holds SizeX*SizeY*SizeZ cells of four bytes, x varying fastest.
type Cube struct {
	Values []byte
	SizeX  int
	SizeY  int
	SizeZ  int
}

// IdentityCube returns a cube whose trilinear lookup reproduces its input.
func IdentityCube(sizeX, sizeY, sizeZ int) *Cube {
	c := &Cube{
		Values: make([]byte, sizeX*sizeY*sizeZ*4),
		SizeX:  sizeX,
		SizeY:  sizeY,
		SizeZ:  sizeZ,
	}
	i := 0
	for z := 0; z < sizeZ; z++ {
		for y := 0; y < sizeY; y++ {
			for x := 0; x < sizeX; x++ {
				c.Values[i+0] = gridValue(x, sizeX)
				c.Values[i+1] = gridValue(y, sizeY)
				c.Values[i+2] = gridValue(z, sizeZ)
				c.Values[i+3] = 255
				i += 4
			}
		}
	}
	return c
}

// gridValue maps grid index i of an n-point axis onto 0-255.
func gridValue(i, n int) byte {
	return byte((i*255 + (n-1)/2) / (n - 1))
}

// Offset returns the byte offset of cell (x, y, z).
func (c *Cube) Offset(x, y, z int) int {
	return ((z*c.SizeY+y)*c.SizeX + x) * 4
}

// axis holds the 15-bit fixed-point mapping from a byte to a grid cell.
type axis struct {
	mul  uint32 // (dim-1) * 0x8000 / 255
	last uint32 // dim - 2, the highest valid base cell
}

func newAxis(dim int) axis {
	return axis{
		mul:  uint32((dim - 1) * 0x8000 / 255),
		last: uint32(dim - 2),
	}
}

// locate returns the base cell and the 15-bit weights of cells i and i+1.
func (a axis) locate(v byte) (cell, w1, w2 uint32) {
	base := uint32(v) * a.mul
	cell = base >> 15
	w2 = base & 0x7fff
	if cell > a.last {
		// Exact grid hit on the last cell: interpolate fully towards it.
		cell = a.last
		w2 = 0x8000
	}
	return cell, 0x8000 - w2, w2
}

// ApplyLUT3D maps the RGB channels of every pixel inside r through the cube
// with trilinear interpolation. Alpha is copied from the input.
func ApplyLUT3D(src []byte, l image.Layout, c *Cube, r image.Rect) []byte {
	dst := l.Alloc()

	ax, ay, az := newAxis(c.SizeX), newAxis(c.SizeY), newAxis(c.SizeZ)
	strideY := c.SizeX * 4
	strideZ := c.SizeX * c.SizeY * 4
	v := c.Values

	l.ForEachPixel(r, func(_, _, i int) {
		x, wx1, wx2 := ax.locate(src[i+0])
		y, wy1, wy2 := ay.locate(src[i+1])
		z, wz1, wz2 := az.locate(src[i+2])

		p00 := c.Offset(int(x), int(y), int(z))
		p10 := p00 + strideY
		p01 := p00 + strideZ
		p11 := p00 + strideY + strideZ

		for ch := 0; ch < 3; ch++ {
			yz00 := (uint32(v[p00+ch])*wx1 + uint32(v[p00+4+ch])*wx2) >> 7
			yz10 := (uint32(v[p10+ch])*wx1 + uint32(v[p10+4+ch])*wx2) >> 7
			yz01 := (uint32(v[p01+ch])*wx1 + uint32(v[p01+4+ch])*wx2) >> 7
			yz11 := (uint32(v[p11+ch])*wx1 + uint32(v[p11+4+ch])*wx2) >> 7

			z0 := (yz00*wy1 + yz10*wy2) >> 15
			z1 := (yz01*wy1 + yz11*wy2) >> 15

			out := (z0*wz1 + z1*wz2) >> 15
			dst[i+ch] = byte((out + 0x7f) >> 8)
		}
		dst[i+3] = src[i+3]
	})
	return dst
}
