package color

import "github.com/gogpu/toolkit/internal/image"

// Tables holds one 256-entry lookup table per RGBA channel.
type Tables [4][256]byte

// IdentityTables returns tables that map every value to itself.
func IdentityTables() *Tables {
	var t Tables
	for c := range t {
		for i := range t[c] {
			t[c][i] = byte(i)
		}
	}
	return &t
}

// ApplyLUT maps each channel of the RGBA pixels inside r through its table.
func ApplyLUT(src []byte, l image.Layout, t *Tables, r image.Rect) []byte {
	dst := l.Alloc()
	l.ForEachPixel(r, func(_, _, i int) {
		dst[i+0] = t[0][src[i+0]]
		dst[i+1] = t[1][src[i+1]]
		dst[i+2] = t[2][src[i+2]]
		dst[i+3] = t[3][src[i+3]]
	})
	return dst
}
