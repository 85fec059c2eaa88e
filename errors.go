package gpioserial

import (
	"errors"
	"fmt"
)

var (
	ErrPkg = errors.New("gpioserial")
	// ErrTimeout is returned when a synchronous peer stops clocking.
	ErrTimeout = errors.New("timeout waiting for edge")
	// ErrInvalidArgument is returned before any pin is touched.
	ErrInvalidArgument = errors.New("invalid argument")
)

// HardwareError wraps a failure reported by the GPIO backend. Pin is -1 when
// the failure is not tied to a pin.
type HardwareError struct {
	Op  string
	Pin int
	Err error
}

// Error implements error.
func (e *HardwareError) Error() string {
	if e.Pin < 0 {
		return fmt.Sprintf("%s: %s: %v", ErrPkg, e.Op, e.Err)
	}
	return fmt.Sprintf("%s: %s pin %d: %v", ErrPkg, e.Op, e.Pin, e.Err)
}

func (e *HardwareError) Unwrap() error {
	return e.Err
}

func hwError(op string, pin int, err error) error {
	if err == nil {
		return nil
	}
	return &HardwareError{Op: op, Pin: pin, Err: err}
}
