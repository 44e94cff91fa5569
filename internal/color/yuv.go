package color

import "github.com/gogpu/toolkit/internal/image"

// YuvFormat identifies a planar YUV 4:2:0 layout.
type YuvFormat uint8

const (
	// NV21 is a full-resolution Y plane followed by interleaved V,U pairs at
	// half resolution in both directions.
	NV21 YuvFormat = iota
	// YV12 is a Y plane followed by a V plane and a U plane, each chroma
	// plane at half resolution. Every row is padded to a multiple of 16 bytes.
	YV12
)

// String returns the format name.
func (f YuvFormat) String() string {
	switch f {
	case NV21:
		return "NV21"
	case YV12:
		return "YV12"
	default:
		return "Unknown"
	}
}

// Valid reports whether f is a known format.
func (f YuvFormat) Valid() bool {
	return f == NV21 || f == YV12
}

func align16(n int) int {
	return (n + 15) &^ 15
}

// YuvPlanes describes where the planes of a YUV buffer live.
type YuvPlanes struct {
	YStride  int
	UVStride int
	UOffset  int
	VOffset  int
	// UVStep is the distance in bytes between horizontally adjacent chroma
	// samples: 2 for interleaved NV21, 1 for planar YV12.
	UVStep int
	// Size is the minimum buffer length.
	Size int
}

// Planes computes the plane geometry of a sizeX x sizeY image in format f.
// sizeX and sizeY must be even.
func Planes(f YuvFormat, sizeX, sizeY int) YuvPlanes {
	switch f {
	case YV12:
		yStride := align16(sizeX)
		uvStride := align16(yStride / 2)
		vOff := yStride * sizeY
		uOff := vOff + uvStride*sizeY/2
		return YuvPlanes{
			YStride:  yStride,
			UVStride: uvStride,
			VOffset:  vOff,
			UOffset:  uOff,
			UVStep:   1,
			Size:     uOff + uvStride*sizeY/2,
		}
	default:
		vOff := sizeX * sizeY
		return YuvPlanes{
			YStride:  sizeX,
			UVStride: sizeX,
			VOffset:  vOff,
			UOffset:  vOff + 1,
			UVStep:   2,
			Size:     vOff + sizeX*sizeY/2,
		}
	}
}

// YuvToRGBA converts one BT.601 studio-swing sample to RGBA.
func YuvToRGBA(y, u, v byte) (r, g, b, a byte) {
	yy := int32(y) - 16
	uu := int32(u) - 128
	vv := int32(v) - 128
	r = image.ClampInt((298*yy + 409*vv + 128) >> 8)
	g = image.ClampInt((298*yy - 100*uu - 208*vv + 128) >> 8)
	b = image.ClampInt((298*yy + 516*uu + 128) >> 8)
	return r, g, b, 255
}

// YuvToRGB converts a YUV buffer into a new RGBA buffer of sizeX*sizeY pixels.
// Each 2x2 block of luma samples shares one chroma sample.
func YuvToRGB(src []byte, sizeX, sizeY int, f YuvFormat) []byte {
	p := Planes(f, sizeX, sizeY)
	dst := make([]byte, sizeX*sizeY*4)
	o := 0
	for y := 0; y < sizeY; y++ {
		yRow := src[y*p.YStride:]
		uvRow := (y >> 1) * p.UVStride
		for x := 0; x < sizeX; x++ {
			uv := uvRow + (x>>1)*p.UVStep
			dst[o+0], dst[o+1], dst[o+2], dst[o+3] = YuvToRGBA(yRow[x], src[p.UOffset+uv], src[p.VOffset+uv])
			o += 4
		}
	}
	return dst
}
