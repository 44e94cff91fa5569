// Command toolkitbench times every toolkit operation on a synthetic image.
package main

import (
	"flag"
	"log"
	"log/slog"
	"os"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/gogpu/toolkit"
)

type benchmark struct {
	name string
	run  func() error
}

func main() {
	var (
		width       = flag.Int("width", 1024, "image width")
		height      = flag.Int("height", 768, "image height")
		iterations  = flag.Int("n", 20, "iterations per operation")
		radius      = flag.Int("radius", 8, "blur radius (1-25)")
		usePortable = flag.Bool("portable", false, "blur with the portable box convolver")
		verbose     = flag.Bool("v", false, "log toolkit diagnostics to stderr")
		lang        = flag.String("lang", "en", "BCP 47 tag for number formatting")
	)
	flag.Parse()

	if *verbose {
		toolkit.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	var opts []toolkit.Option
	if *usePortable {
		opts = append(opts, toolkit.WithBoxConvolver(toolkit.PortableBoxConvolver()))
	}
	tk := toolkit.New(opts...)

	tag, err := language.Parse(*lang)
	if err != nil {
		log.Fatalf("Invalid -lang %q: %v", *lang, err)
	}
	p := message.NewPrinter(tag)

	w, h := *width, *height
	rgba := gradient(w, h)
	dst := make([]byte, len(rgba))
	luma := make([]byte, w*h)
	for i := range luma {
		luma[i] = rgba[i*4+1]
	}
	yuv := make([]byte, w*h*3/2)
	copy(yuv, luma)
	for i := w * h; i < len(yuv); i++ {
		yuv[i] = 128
	}
	sharpen := []float32{0, -1, 0, -1, 5, -1, 0, -1, 0}
	cube := toolkit.NewIdentityCube(17, 17, 17)
	table := toolkit.NewIdentityLookupTable()

	benchmarks := []benchmark{
		{"blend", func() error {
			copy(dst, rgba)
			return tk.Blend(toolkit.BlendSourceOver, rgba, dst, w, h, nil)
		}},
		{"blur", func() error { _, err := tk.Blur(rgba, 4, w, h, *radius, nil); return err }},
		{"blur (1 channel)", func() error { _, err := tk.Blur(luma, 1, w, h, *radius, nil); return err }},
		{"colorMatrix", func() error {
			_, err := tk.ColorMatrix(rgba, 4, w, h, 4, toolkit.GreyScaleColorMatrix(), nil, nil)
			return err
		}},
		{"convolve", func() error { _, err := tk.Convolve(rgba, 4, w, h, sharpen, nil); return err }},
		{"histogram", func() error { _, err := tk.Histogram(rgba, 4, w, h, nil); return err }},
		{"histogramDot", func() error { _, err := tk.HistogramDot(rgba, 4, w, h, nil, nil); return err }},
		{"lut", func() error { _, err := tk.Lut(rgba, w, h, table, nil); return err }},
		{"lut3d", func() error { _, err := tk.Lut3d(rgba, w, h, cube, nil); return err }},
		{"resize (x0.5)", func() error { _, err := tk.Resize(rgba, 4, w, h, w/2, h/2, nil); return err }},
		{"yuvToRgb", func() error { _, err := tk.YuvToRgb(yuv, w&^1, h&^1, toolkit.NV21); return err }},
	}

	p.Printf("%d x %d RGBA, %d iterations, box convolver %s\n\n",
		w, h, *iterations, activeConvolver(*usePortable))
	pixels := float64(w * h)
	for _, b := range benchmarks {
		start := time.Now()
		for i := 0; i < *iterations; i++ {
			if err := b.run(); err != nil {
				log.Fatalf("%s: %v", b.name, err)
			}
		}
		per := time.Since(start) / time.Duration(*iterations)
		mpps := pixels / per.Seconds() / 1e6
		p.Printf("%-18s %12d µs/op %10.1f Mpx/s\n", b.name, per.Microseconds(), mpps)
	}
}

func activeConvolver(portable bool) string {
	if portable {
		return toolkit.PortableBoxConvolver().Name()
	}
	return toolkit.ActiveBoxConvolver().Name()
}

// gradient returns a w x h RGBA image with a diagonal colour ramp.
func gradient(w, h int) []byte {
	buf := make([]byte, w*h*4)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			i := (y*w + x) * 4
			buf[i+0] = byte(x * 255 / max(1, w-1))
			buf[i+1] = byte(y * 255 / max(1, h-1))
			buf[i+2] = byte((x + y) * 255 / max(1, w+h-2))
			buf[i+3] = 255
		}
	}
	return buf
}
