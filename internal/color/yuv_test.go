package color

import (
	"bytes"
	"testing"
)

func TestYuvToRGBAMidGrey(t *testing.T) {
	r, g, b, a := YuvToRGBA(128, 128, 128)
	// (298*112 + 128) >> 8 = 130
	if r != 130 || g != 130 || b != 130 || a != 255 {
		t.Errorf("YuvToRGBA(128,128,128) = %d,%d,%d,%d, want 130,130,130,255", r, g, b, a)
	}
}

func TestYuvToRGBAClamps(t *testing.T) {
	r, g, b, _ := YuvToRGBA(0, 128, 128)
	if r != 0 || g != 0 || b != 0 {
		t.Errorf("black below footroom = %d,%d,%d, want 0,0,0", r, g, b)
	}
	r, g, b, _ = YuvToRGBA(255, 128, 128)
	if r != 255 || g != 255 || b != 255 {
		t.Errorf("white above headroom = %d,%d,%d, want 255,255,255", r, g, b)
	}
	// Saturated blue: U high.
	_, _, b, _ = YuvToRGBA(128, 255, 128)
	if b != 255 {
		t.Errorf("blue = %d, want 255", b)
	}
}

func TestPlanes(t *testing.T) {
	nv := Planes(NV21, 4, 2)
	if nv.Size != 12 || nv.VOffset != 8 || nv.UOffset != 9 || nv.UVStep != 2 {
		t.Errorf("NV21 planes = %+v", nv)
	}
	yv := Planes(YV12, 20, 4)
	// yStride 32, uvStride align16(16) = 16
	if yv.YStride != 32 || yv.UVStride != 16 || yv.VOffset != 128 || yv.UOffset != 160 || yv.Size != 192 {
		t.Errorf("YV12 planes = %+v", yv)
	}
}

// planarTestImage builds a 4x2 image with distinct chroma per 2x2 block.
func planarTestImage(f YuvFormat) []byte {
	const sizeX, sizeY = 4, 2
	p := Planes(f, sizeX, sizeY)
	buf := make([]byte, p.Size)
	for y := 0; y < sizeY; y++ {
		for x := 0; x < sizeX; x++ {
			buf[y*p.YStride+x] = byte(60 + 20*x + 10*y)
		}
	}
	us := []byte{90, 160}
	vs := []byte{200, 70}
	for bx := 0; bx < 2; bx++ {
		buf[p.UOffset+bx*p.UVStep] = us[bx]
		buf[p.VOffset+bx*p.UVStep] = vs[bx]
	}
	return buf
}

func TestYuvToRGBFormatsAgree(t *testing.T) {
	nv := YuvToRGB(planarTestImage(NV21), 4, 2, NV21)
	yv := YuvToRGB(planarTestImage(YV12), 4, 2, YV12)
	if !bytes.Equal(nv, yv) {
		t.Errorf("NV21 and YV12 disagree:\n%v\n%v", nv, yv)
	}

	// Pixel (3,1) uses the second chroma sample.
	r, g, b, a := YuvToRGBA(60+60+10, 160, 70)
	off := (1*4 + 3) * 4
	if got := nv[off : off+4]; !bytes.Equal(got, []byte{r, g, b, a}) {
		t.Errorf("pixel (3,1) = %v, want %v", got, []byte{r, g, b, a})
	}
}

func TestYuvFormatString(t *testing.T) {
	if NV21.String() != "NV21" || YV12.String() != "YV12" || YuvFormat(9).String() != "Unknown" {
		t.Error("unexpected YuvFormat names")
	}
	if YuvFormat(9).Valid() {
		t.Error("YuvFormat(9).Valid() = true")
	}
}
