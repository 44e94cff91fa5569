package toolkit

import (
	"errors"
	"fmt"
	"sync"

	"github.com/gogpu/toolkit/internal/filter"
	"github.com/gogpu/toolkit/internal/image"
)

// ErrFallbackToPortable indicates a BoxConvolver cannot handle this blur.
// Blur transparently recomputes the result with the portable convolver.
var ErrFallbackToPortable = errors.New("toolkit: falling back to portable box convolver")

// BoxConvolver is a pluggable separable box-blur implementation.
//
// Blur asks the active BoxConvolver first. If it returns any error, the
// failure is logged and the blur is recomputed with the portable convolver,
// so an implementation only has to handle the cases it is fast at and may
// return ErrFallbackToPortable for the rest.
type BoxConvolver interface {
	// Name identifies the implementation in logs (e.g. "accelerated").
	Name() string

	// Convolve averages every pixel of src inside r over a (2*radius+1)^2
	// window with edge clamping and writes the result into dst at the same
	// offsets. Both buffers hold sizeX*sizeY pixels of vectorSize channels
	// and do not alias. Pixels of dst outside r must be left untouched.
	Convolve(src, dst []byte, vectorSize, sizeX, sizeY, radius int, r Range2d) error
}

// kernelConvolver exposes an internal filter.BoxConvolver as a BoxConvolver.
type kernelConvolver struct {
	impl filter.BoxConvolver
}

func (c kernelConvolver) Name() string { return c.impl.Name() }

func (c kernelConvolver) Convolve(src, dst []byte, vectorSize, sizeX, sizeY, radius int, r Range2d) error {
	l := image.Layout{SizeX: sizeX, SizeY: sizeY, VectorSize: vectorSize}
	err := c.impl.Convolve(src, dst, l, radius, r.rect())
	if errors.Is(err, filter.ErrUnavailable) {
		return fmt.Errorf("%w: %w", ErrFallbackToPortable, err)
	}
	return err
}

var portable BoxConvolver = kernelConvolver{impl: filter.PortableBoxConvolver{}}

// PortableBoxConvolver returns the reference implementation. It never fails
// and truncates after each pass.
func PortableBoxConvolver() BoxConvolver {
	return portable
}

// newDefaultBoxConvolver returns the accelerated convolver when the CPU
// supports it, otherwise the portable one.
func newDefaultBoxConvolver() BoxConvolver {
	if a := filter.NewAcceleratedBoxConvolver(); a.Available() {
		return kernelConvolver{impl: a}
	}
	return portable
}

var (
	convMu sync.RWMutex
	conv   BoxConvolver = newDefaultBoxConvolver()
)

// RegisterBoxConvolver replaces the process-wide BoxConvolver used by Blur.
//
// Only one convolver is active at a time. The current logger is passed to c
// if it has a SetLogger(*slog.Logger) method.
func RegisterBoxConvolver(c BoxConvolver) error {
	if c == nil {
		return errors.New("toolkit: box convolver must not be nil")
	}
	propagateLogger(c, Logger())

	convMu.Lock()
	old := conv
	conv = c
	convMu.Unlock()

	Logger().Info("box convolver registered", "convolver", c.Name(), "previous", old.Name())
	return nil
}

// ActiveBoxConvolver returns the BoxConvolver used by Blur.
func ActiveBoxConvolver() BoxConvolver {
	convMu.RLock()
	c := conv
	convMu.RUnlock()
	return c
}
