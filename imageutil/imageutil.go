// Package imageutil converts between image.Image values and toolkit pixel
// buffers.
//
// Buffers use the toolkit layout: row-major, vectorSize channels per pixel,
// three-channel pixels padded to four bytes. Channel meanings are
//
//	1: luma
//	2: luma, alpha
//	3: red, green, blue, padding
//	4: red, green, blue, alpha (non-premultiplied)
package imageutil

import (
	"fmt"
	"image"

	"github.com/disintegration/imaging"
	xdraw "golang.org/x/image/draw"

	"github.com/gogpu/toolkit"
)

func checkVectorSize(vectorSize int) error {
	if vectorSize < 1 || vectorSize > 4 {
		return fmt.Errorf("imageutil: vector size %d not in 1..4: %w", vectorSize, toolkit.ErrInvalidArgument)
	}
	return nil
}

// FromImage copies img into a new buffer of vectorSize channels and returns
// it with the image width and height.
func FromImage(img image.Image, vectorSize int) (buf []byte, width, height int, err error) {
	if err := checkVectorSize(vectorSize); err != nil {
		return nil, 0, 0, err
	}
	if img == nil {
		return nil, 0, 0, fmt.Errorf("imageutil: nil image: %w", toolkit.ErrInvalidArgument)
	}
	b := img.Bounds()
	width, height = b.Dx(), b.Dy()
	if width == 0 || height == 0 {
		return nil, 0, 0, fmt.Errorf("imageutil: empty image %v: %w", b, toolkit.ErrInvalidArgument)
	}

	stride := toolkit.PaddedStride(vectorSize)
	buf = make([]byte, width*height*stride)

	if vectorSize == 1 {
		gray := grayOf(img)
		for y := 0; y < height; y++ {
			copy(buf[y*width:(y+1)*width], gray.Pix[y*gray.Stride:])
		}
		return buf, width, height, nil
	}

	// imaging.Clone always returns a tightly packed NRGBA at the origin.
	nrgba := imaging.Clone(img)
	switch vectorSize {
	case 2:
		for i, j := 0, 0; j < len(buf); i, j = i+4, j+2 {
			p := nrgba.Pix[i : i+4 : i+4]
			buf[j] = luma(p[0], p[1], p[2])
			buf[j+1] = p[3]
		}
	case 3:
		copy(buf, nrgba.Pix)
		for i := 3; i < len(buf); i += 4 {
			buf[i] = 0
		}
	case 4:
		copy(buf, nrgba.Pix)
	}
	return buf, width, height, nil
}

// luma weights non-premultiplied RGB like color.GrayModel.
func luma(r, g, b byte) byte {
	y := (19595*uint32(r)*0x101 + 38470*uint32(g)*0x101 + 7471*uint32(b)*0x101 + 1<<15) >> 24
	return byte(y)
}

// grayOf converts img to an 8-bit grey image at the origin.
func grayOf(img image.Image) *image.Gray {
	if g, ok := img.(*image.Gray); ok && g.Rect.Min == (image.Point{}) {
		return g
	}
	b := img.Bounds()
	g := image.NewGray(image.Rect(0, 0, b.Dx(), b.Dy()))
	xdraw.Draw(g, g.Bounds(), img, b.Min, xdraw.Src)
	return g
}

// ToImage wraps a copy of buf as an image. One channel gives an *image.Gray;
// every other vector size gives an *image.NRGBA, with luma spread to RGB for
// two channels and opaque alpha for three.
func ToImage(buf []byte, vectorSize, width, height int) (image.Image, error) {
	if err := checkVectorSize(vectorSize); err != nil {
		return nil, err
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("imageutil: size %dx%d: %w", width, height, toolkit.ErrInvalidArgument)
	}
	stride := toolkit.PaddedStride(vectorSize)
	if need := width * height * stride; len(buf) < need {
		return nil, fmt.Errorf("imageutil: buffer has %d bytes, need %d: %w", len(buf), need, toolkit.ErrInvalidArgument)
	}

	rect := image.Rect(0, 0, width, height)
	if vectorSize == 1 {
		g := image.NewGray(rect)
		copy(g.Pix, buf)
		return g, nil
	}

	img := image.NewNRGBA(rect)
	switch vectorSize {
	case 2:
		for i, j := 0, 0; i < len(img.Pix); i, j = i+4, j+2 {
			l := buf[j]
			img.Pix[i], img.Pix[i+1], img.Pix[i+2], img.Pix[i+3] = l, l, l, buf[j+1]
		}
	case 3:
		copy(img.Pix, buf)
		for i := 3; i < len(img.Pix); i += 4 {
			img.Pix[i] = 0xff
		}
	case 4:
		copy(img.Pix, buf)
	}
	return img, nil
}
