package image

import (
	"bytes"
	"testing"
)

func gradient(l Layout) []byte {
	buf := l.Alloc()
	l.ForEachPixel(l.Full(), func(x, y, off int) {
		for c := 0; c < l.Stride(); c++ {
			buf[off+c] = byte(x*17 + y*29 + c*40)
		}
	})
	return buf
}

func TestResizeSameSize(t *testing.T) {
	for _, vs := range []int{1, 2, 3, 4} {
		l := Layout{SizeX: 11, SizeY: 7, VectorSize: vs}
		src := gradient(l)
		got := Resize(src, l, l, l.Full())
		if !bytes.Equal(got, src) {
			t.Errorf("vectorSize %d: 1:1 resize changed the image", vs)
		}
	}
}

func TestResizeUniform(t *testing.T) {
	in := Layout{SizeX: 5, SizeY: 4, VectorSize: 4}
	src := bytes.Repeat([]byte{12, 200, 99, 255}, 20)
	for _, size := range [][2]int{{1, 1}, {10, 8}, {3, 7}, {17, 2}} {
		out := Layout{SizeX: size[0], SizeY: size[1], VectorSize: 4}
		got := Resize(src, in, out, out.Full())
		want := bytes.Repeat([]byte{12, 200, 99, 255}, size[0]*size[1])
		if !bytes.Equal(got, want) {
			t.Errorf("%dx%d: uniform image not preserved", size[0], size[1])
		}
	}
}

func TestResizeDownscaleByTwo(t *testing.T) {
	// Halving a linear ramp samples halfway between source pixels; the
	// Catmull-Rom basis reproduces linear data exactly away from the edges.
	in := Layout{SizeX: 8, SizeY: 1, VectorSize: 1}
	src := []byte{0, 10, 20, 30, 40, 50, 60, 70}
	out := Layout{SizeX: 4, SizeY: 1, VectorSize: 1}
	got := Resize(src, in, out, out.Full())
	// Output x maps to source 2x+0.5.
	if got[1] != 25 || got[2] != 45 {
		t.Errorf("got %v, want interior [_, 25, 45, _]", got)
	}
}

func TestResizeTaps(t *testing.T) {
	taps := computeTaps(4, 8)
	// out 0 -> 0.5*0.5-0.5 = -0.25, floor -1, start -2.
	if taps[0].idx != [4]int{0, 0, 0, 1} || taps[0].t != 0.75 {
		t.Errorf("taps[0] = %+v", taps[0])
	}
	// out 7 -> 7.5*0.5-0.5 = 3.25, floor 3, start 2.
	if taps[7].idx != [4]int{2, 3, 3, 3} || taps[7].t != 0.25 {
		t.Errorf("taps[7] = %+v", taps[7])
	}
}

func TestAxisTapsMemoised(t *testing.T) {
	a := axisTaps(13, 29)
	b := axisTaps(13, 29)
	if &a[0] != &b[0] {
		t.Error("axisTaps did not reuse the cached table")
	}
	want := computeTaps(13, 29)
	for i := range want {
		if a[i] != want[i] {
			t.Fatalf("tap %d = %+v, want %+v", i, a[i], want[i])
		}
	}
}

func TestTapsCacheStats(t *testing.T) {
	before := TapsCacheStats()
	axisTaps(7, 41)
	axisTaps(7, 41)
	after := TapsCacheStats()
	if after.Hits < before.Hits+1 {
		t.Errorf("hits %d -> %d, want at least one more", before.Hits, after.Hits)
	}
	if after.Len == 0 || after.Capacity != 64 {
		t.Errorf("Stats() = %+v, want a non-empty cache of capacity 64", after)
	}
}

func TestResizeRestriction(t *testing.T) {
	in := Layout{SizeX: 6, SizeY: 6, VectorSize: 2}
	out := Layout{SizeX: 9, SizeY: 4, VectorSize: 2}
	src := gradient(in)
	full := Resize(src, in, out, out.Full())
	r := Rect{MinX: 2, MinY: 1, MaxX: 7, MaxY: 3}
	part := Resize(src, in, out, r)

	out.ForEachPixel(out.Full(), func(x, y, off int) {
		for c := 0; c < 2; c++ {
			want := byte(0)
			if inside(r, x, y) {
				want = full[off+c]
			}
			if part[off+c] != want {
				t.Fatalf("(%d,%d,%d) = %d, want %d", x, y, c, part[off+c], want)
			}
		}
	})
}

func BenchmarkResize(b *testing.B) {
	in := Layout{SizeX: 640, SizeY: 480, VectorSize: 4}
	out := Layout{SizeX: 1280, SizeY: 960, VectorSize: 4}
	src := gradient(in)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Resize(src, in, out, out.Full())
	}
}
