package toolkit

import (
	"fmt"
	"math"

	"github.com/gogpu/toolkit/internal/image"
)

const (
	minBlurRadius = 1
	maxBlurRadius = 25

	minCubeSize = 2
	maxCubeSize = 256
)

func checkVectorSize(op, param string, vectorSize, lo, hi int) error {
	if vectorSize < lo || vectorSize > hi {
		return invalidArgument(op, param, fmt.Sprintf("%d..%d", lo, hi), vectorSize)
	}
	return nil
}

// checkSize validates that a sizeX x sizeY image is non-empty and that a
// buffer of bytesPerPixel bytes per pixel fits in an int.
func checkSize(op, param string, sizeX, sizeY, bytesPerPixel int) error {
	if sizeX <= 0 || sizeY <= 0 {
		return invalidArgument(op, param, "positive width and height", fmt.Sprintf("%dx%d", sizeX, sizeY))
	}
	if !fitsInt(sizeX, sizeY, bytesPerPixel) {
		expected := fmt.Sprintf("width*height*%d <= %d", bytesPerPixel, math.MaxInt)
		return invalidArgument(op, param, expected, fmt.Sprintf("%dx%d", sizeX, sizeY))
	}
	return nil
}

// fitsInt reports whether x*y*n does not overflow. All operands are positive.
func fitsInt(x, y, n int) bool {
	return x <= math.MaxInt/y/n
}

// checkBuffer validates the dimensions of l and that buf holds every byte of
// it, padding included.
func checkBuffer(op, param string, buf []byte, l image.Layout) error {
	if err := checkSize(op, "size", l.SizeX, l.SizeY, l.Stride()); err != nil {
		return err
	}
	if need := l.Len(); len(buf) < need {
		return invalidArgument(op, param+" length", fmt.Sprintf(">= %d bytes", need), len(buf))
	}
	return nil
}

// restriction converts r to a rectangle inside a sizeX x sizeY image.
// A nil r selects the whole image.
func restriction(op string, r *Range2d, sizeX, sizeY int) (image.Rect, error) {
	if r == nil {
		return image.Rect{MaxX: sizeX, MaxY: sizeY}, nil
	}
	if r.StartX < 0 || r.StartX >= r.EndX || r.EndX > sizeX ||
		r.StartY < 0 || r.StartY >= r.EndY || r.EndY > sizeY {
		expected := fmt.Sprintf("0 <= startX < endX <= %d and 0 <= startY < endY <= %d", sizeX, sizeY)
		return image.Rect{}, invalidArgument(op, "restriction", expected, r)
	}
	return r.rect(), nil
}
