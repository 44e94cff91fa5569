package toolkit

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is the kind of every error returned by toolkit
// operations. Use errors.Is to test for it and errors.As with
// *InvalidArgumentError for details.
var ErrInvalidArgument = errors.New("toolkit: invalid argument")

// InvalidArgumentError reports a failed precondition. Nothing is written
// when an operation returns one.
type InvalidArgumentError struct {
	Op       string // operation name, e.g. "blur"
	Param    string // offending parameter, e.g. "radius"
	Expected string
	Actual   string
}

func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("toolkit: %s: invalid %s: expected %s, got %s", e.Op, e.Param, e.Expected, e.Actual)
}

// Unwrap returns ErrInvalidArgument.
func (e *InvalidArgumentError) Unwrap() error { return ErrInvalidArgument }

func invalidArgument(op, param, expected string, actual any) error {
	return &InvalidArgumentError{
		Op:       op,
		Param:    param,
		Expected: expected,
		Actual:   fmt.Sprint(actual),
	}
}
