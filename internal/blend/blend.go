package blend

import "github.com/gogpu/toolkit/internal/image"

// Mode selects a compositing operator.
type Mode uint8

const (
	ModeClear           Mode = iota // 0
	ModeSource                      // S
	ModeDestination                 // D
	ModeSourceOver                  // S + D*(1-Sa)
	ModeDestinationOver             // D + S*(1-Da)
	ModeSourceIn                    // S*Da
	ModeDestinationIn               // D*Sa
	ModeSourceOut                   // S*(1-Da)
	ModeDestinationOut              // D*(1-Sa)
	ModeSourceAtop                  // S*Da + D*(1-Sa), alpha Da
	ModeDestinationAtop             // D*Sa + S*(1-Da), alpha Sa
	ModeXor                         // S ^ D, bitwise
	ModeMultiply                    // S*D
	ModeAdd                         // S + D
	ModeSubtract                    // D - S

	modeCount
)

// Valid reports whether m is a known mode.
func (m Mode) Valid() bool {
	return m < modeCount
}

// Func blends one source pixel into one destination pixel.
// Values are non-premultiplied bytes.
type Func func(sr, sg, sb, sa, dr, dg, db, da byte) (r, g, b, a byte)

var funcs = [modeCount]Func{
	ModeClear:           blendClear,
	ModeSource:          blendSource,
	ModeDestination:     blendDestination,
	ModeSourceOver:      blendSourceOver,
	ModeDestinationOver: blendDestinationOver,
	ModeSourceIn:        blendSourceIn,
	ModeDestinationIn:   blendDestinationIn,
	ModeSourceOut:       blendSourceOut,
	ModeDestinationOut:  blendDestinationOut,
	ModeSourceAtop:      blendSourceAtop,
	ModeDestinationAtop: blendDestinationAtop,
	ModeXor:             blendXor,
	ModeMultiply:        blendMultiply,
	ModeAdd:             blendAdd,
	ModeSubtract:        blendSubtract,
}

// GetFunc returns the per-pixel function for mode, or nil if mode is unknown.
func GetFunc(mode Mode) Func {
	if !mode.Valid() {
		return nil
	}
	return funcs[mode]
}

// Apply blends src into dst in place for every pixel of r.
// Both buffers use layout l, which must have four channels.
// src may be the same slice as dst: each pixel is read fully before it is written.
func Apply(mode Mode, src, dst []byte, l image.Layout, r image.Rect) {
	if mode == ModeDestination || r.Empty() {
		return
	}
	fn := GetFunc(mode)
	if fn == nil {
		return
	}
	l.ForEachPixel(r, func(_, _, i int) {
		s := src[i : i+4 : i+4]
		d := dst[i : i+4 : i+4]
		d[0], d[1], d[2], d[3] = fn(s[0], s[1], s[2], s[3], d[0], d[1], d[2], d[3])
	})
}

func blendClear(_, _, _, _, _, _, _, _ byte) (byte, byte, byte, byte) {
	return 0, 0, 0, 0
}

func blendSource(sr, sg, sb, sa, _, _, _, _ byte) (byte, byte, byte, byte) {
	return sr, sg, sb, sa
}

func blendDestination(_, _, _, _, dr, dg, db, da byte) (byte, byte, byte, byte) {
	return dr, dg, db, da
}

func blendSourceOver(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	inv := 255 - sa
	return addSat(sr, mul8(dr, inv)), addSat(sg, mul8(dg, inv)),
		addSat(sb, mul8(db, inv)), addSat(sa, mul8(da, inv))
}

func blendDestinationOver(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	inv := 255 - da
	return addSat(dr, mul8(sr, inv)), addSat(dg, mul8(sg, inv)),
		addSat(db, mul8(sb, inv)), addSat(da, mul8(sa, inv))
}

func blendSourceIn(sr, sg, sb, sa, _, _, _, da byte) (byte, byte, byte, byte) {
	return mul8(sr, da), mul8(sg, da), mul8(sb, da), mul8(sa, da)
}

func blendDestinationIn(_, _, _, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	return mul8(dr, sa), mul8(dg, sa), mul8(db, sa), mul8(da, sa)
}

func blendSourceOut(sr, sg, sb, sa, _, _, _, da byte) (byte, byte, byte, byte) {
	inv := 255 - da
	return mul8(sr, inv), mul8(sg, inv), mul8(sb, inv), mul8(sa, inv)
}

func blendDestinationOut(_, _, _, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	inv := 255 - sa
	return mul8(dr, inv), mul8(dg, inv), mul8(db, inv), mul8(da, inv)
}

func blendSourceAtop(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	return atop(sr, da, dr, sa), atop(sg, da, dg, sa), atop(sb, da, db, sa), da
}

func blendDestinationAtop(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	return atop(dr, sa, sr, da), atop(dg, sa, sg, da), atop(db, sa, sb, da), sa
}

func blendXor(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	return sr ^ dr, sg ^ dg, sb ^ db, sa ^ da
}

func blendMultiply(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	return mul8(sr, dr), mul8(sg, dg), mul8(sb, db), mul8(sa, da)
}

func blendAdd(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	return addSat(sr, dr), addSat(sg, dg), addSat(sb, db), addSat(sa, da)
}

func blendSubtract(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	return subSat(dr, sr), subSat(dg, sg), subSat(db, sb), subSat(da, sa)
}
