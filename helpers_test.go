package toolkit

import (
	"errors"
	"log/slog"
	"sync"
	"testing"
)

// mockConvolver implements BoxConvolver for testing. With err set it
// scribbles over dst and fails; otherwise it delegates to the portable
// convolver.
type mockConvolver struct {
	name   string
	err    error
	mu     sync.Mutex
	calls  int
	logger *slog.Logger
}

func (m *mockConvolver) Name() string { return m.name }

func (m *mockConvolver) Convolve(src, dst []byte, vectorSize, sizeX, sizeY, radius int, r Range2d) error {
	m.mu.Lock()
	m.calls++
	m.mu.Unlock()
	if m.err != nil {
		for i := range dst {
			dst[i] = 0xAB
		}
		return m.err
	}
	return portable.Convolve(src, dst, vectorSize, sizeX, sizeY, radius, r)
}

func (m *mockConvolver) SetLogger(l *slog.Logger) {
	m.mu.Lock()
	m.logger = l
	m.mu.Unlock()
}

func (m *mockConvolver) callCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

func (m *mockConvolver) currentLogger() *slog.Logger {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.logger
}

// resetBoxConvolver restores the process-wide default convolver.
func resetBoxConvolver() {
	convMu.Lock()
	conv = newDefaultBoxConvolver()
	convMu.Unlock()
}

// patternBuffer returns n deterministic pseudo-random bytes.
func patternBuffer(n int, seed uint32) []byte {
	buf := make([]byte, n)
	x := seed | 1
	for i := range buf {
		x ^= x << 13
		x ^= x >> 17
		x ^= x << 5
		buf[i] = byte(x >> 24)
	}
	return buf
}

// pixelBuffer returns a patterned buffer for sizeX*sizeY pixels of
// vectorSize channels with every padding byte zero.
func pixelBuffer(vectorSize, sizeX, sizeY int, seed uint32) []byte {
	stride := PaddedStride(vectorSize)
	buf := patternBuffer(sizeX*sizeY*stride, seed)
	if stride != vectorSize {
		for i := vectorSize; i < len(buf); i += stride {
			buf[i] = 0
		}
	}
	return buf
}

func absDiff(a, b byte) int {
	if a > b {
		return int(a - b)
	}
	return int(b - a)
}

// requireInvalid fails t unless err is an *InvalidArgumentError for op and param.
func requireInvalid(t *testing.T, err error, op, param string) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected %s error for %q, got nil", op, param)
	}
	if !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("errors.Is(%v, ErrInvalidArgument) = false", err)
	}
	var ia *InvalidArgumentError
	if !errors.As(err, &ia) {
		t.Fatalf("error %T is not *InvalidArgumentError", err)
	}
	if ia.Op != op || ia.Param != param {
		t.Errorf("error = {Op: %q, Param: %q}, want {Op: %q, Param: %q}", ia.Op, ia.Param, op, param)
	}
}

// insideOutside checks that got equals want on every pixel of r and is zero
// elsewhere.
func insideOutside(t *testing.T, got, want []byte, stride, sizeX, sizeY int, r Range2d) {
	t.Helper()
	for y := 0; y < sizeY; y++ {
		for x := 0; x < sizeX; x++ {
			inside := x >= r.StartX && x < r.EndX && y >= r.StartY && y < r.EndY
			off := (y*sizeX + x) * stride
			for c := 0; c < stride; c++ {
				g := got[off+c]
				if inside && g != want[off+c] {
					t.Fatalf("pixel (%d,%d)[%d] = %d, want %d", x, y, c, g, want[off+c])
				}
				if !inside && g != 0 {
					t.Fatalf("pixel (%d,%d)[%d] outside %v = %d, want 0", x, y, c, r, g)
				}
			}
		}
	}
}
