package toolkit

import (
	"fmt"

	"github.com/gogpu/toolkit/internal/blend"
	"github.com/gogpu/toolkit/internal/color"
	"github.com/gogpu/toolkit/internal/image"
)

// PaddedStride returns the bytes per pixel for vectorSize channels.
// Three-channel pixels occupy four bytes; the fourth is padding.
func PaddedStride(vectorSize int) int {
	return image.PaddedStride(vectorSize)
}

// Range2d restricts an operation to the half-open rectangle
// [StartX, EndX) x [StartY, EndY). Operations take a *Range2d where nil
// means the whole image.
type Range2d struct {
	StartX, EndX int
	StartY, EndY int
}

// String returns r as "[startX,endX)x[startY,endY)".
func (r Range2d) String() string {
	return fmt.Sprintf("[%d,%d)x[%d,%d)", r.StartX, r.EndX, r.StartY, r.EndY)
}

func (r Range2d) rect() image.Rect {
	return image.Rect{MinX: r.StartX, MinY: r.StartY, MaxX: r.EndX, MaxY: r.EndY}
}

// LookupTable holds one 256-entry table per channel.
type LookupTable struct {
	Red   [256]byte
	Green [256]byte
	Blue  [256]byte
	Alpha [256]byte
}

// NewIdentityLookupTable returns a table that maps every value to itself.
func NewIdentityLookupTable() *LookupTable {
	t := color.IdentityTables()
	return &LookupTable{Red: t[0], Green: t[1], Blue: t[2], Alpha: t[3]}
}

func (t *LookupTable) tables() *color.Tables {
	return &color.Tables{t.Red, t.Green, t.Blue, t.Alpha}
}

// Rgba3dArray is a colour cube of SizeX*SizeY*SizeZ RGBA cells indexed by
// (red, green, blue). Values holds four bytes per cell with x varying fastest:
// cell (x, y, z) starts at ((z*SizeY+y)*SizeX+x)*4.
type Rgba3dArray struct {
	Values []byte
	SizeX  int
	SizeY  int
	SizeZ  int
}

// NewIdentityCube returns a cube whose trilinear lookup reproduces its input
// to within one level.
func NewIdentityCube(sizeX, sizeY, sizeZ int) *Rgba3dArray {
	c := color.IdentityCube(sizeX, sizeY, sizeZ)
	return &Rgba3dArray{Values: c.Values, SizeX: c.SizeX, SizeY: c.SizeY, SizeZ: c.SizeZ}
}

// At returns the four bytes of cell (x, y, z).
func (a *Rgba3dArray) At(x, y, z int) []byte {
	off := a.cube().Offset(x, y, z)
	return a.Values[off : off+4 : off+4]
}

func (a *Rgba3dArray) cube() *color.Cube {
	return &color.Cube{Values: a.Values, SizeX: a.SizeX, SizeY: a.SizeY, SizeZ: a.SizeZ}
}

// BlendingMode is a compositing operator applied by Blend.
type BlendingMode uint8

// Blending modes. S is the source pixel, D the destination pixel and Sa, Da
// their alphas, all as bytes; products are computed as (a*b)>>8.
const (
	BlendClear               BlendingMode = iota // 0
	BlendSource                                  // S
	BlendDestination                             // D, no write
	BlendSourceOver                              // S + D*(255-Sa)
	BlendDestinationOver                         // D + S*(255-Da)
	BlendSourceIn                                // S*Da
	BlendDestinationIn                           // D*Sa
	BlendSourceOut                               // S*(255-Da)
	BlendDestinationOut                          // D*(255-Sa)
	BlendSourceAtop                              // S*Da + D*(255-Sa), alpha Da
	BlendDestinationAtop                         // D*Sa + S*(255-Da), alpha Sa
	BlendXor                                     // S ^ D
	BlendMultiply                                // S*D
	BlendAdd                                     // S + D, saturated
	BlendSubtract                                // D - S, saturated
)

var blendingModeNames = [...]string{
	BlendClear:           "CLEAR",
	BlendSource:          "SRC",
	BlendDestination:     "DST",
	BlendSourceOver:      "SRC_OVER",
	BlendDestinationOver: "DST_OVER",
	BlendSourceIn:        "SRC_IN",
	BlendDestinationIn:   "DST_IN",
	BlendSourceOut:       "SRC_OUT",
	BlendDestinationOut:  "DST_OUT",
	BlendSourceAtop:      "SRC_ATOP",
	BlendDestinationAtop: "DST_ATOP",
	BlendXor:             "XOR",
	BlendMultiply:        "MULTIPLY",
	BlendAdd:             "ADD",
	BlendSubtract:        "SUBTRACT",
}

// String returns the upper-case operator name, e.g. "SRC_OVER".
func (m BlendingMode) String() string {
	if int(m) < len(blendingModeNames) {
		return blendingModeNames[m]
	}
	return fmt.Sprintf("BlendingMode(%d)", uint8(m))
}

func (m BlendingMode) mode() blend.Mode {
	return blend.Mode(m)
}

// YuvFormat is the plane layout of a YUV 4:2:0 buffer.
type YuvFormat = color.YuvFormat

// Supported YUV layouts.
const (
	// NV21 is a Y plane followed by interleaved V,U pairs.
	NV21 = color.NV21
	// YV12 is a Y plane followed by a V plane and a U plane; every row is
	// padded to a multiple of 16 bytes.
	YV12 = color.YV12
)
