package gpioserial

import (
	"fmt"
	"time"
)

// WaitForInterrupt arms the given edge on pin and blocks until it occurs or
// timeout elapses. On an edge it returns the level read right after it and
// ok=true. A timeout is not an error: it returns ok=false and a nil error.
// With NoEdge the call always times out, whatever the pin does.
//
// A wait in progress cannot be cancelled.
func (d *Device) WaitForInterrupt(pin int, timeout time.Duration, edge Edge) (level Level, ok bool, err error) {
	if !edge.valid() {
		return Low, false, fmt.Errorf("%w: trigger direction %d", ErrInvalidArgument, edge)
	}
	if err := checkPin(pin); err != nil {
		return Low, false, err
	}
	if err := checkTimeout(timeout); err != nil {
		return Low, false, err
	}

	in, err := d.openInput(pin)
	if err != nil {
		return Low, false, err
	}
	defer d.closeInput(in)

	return d.wait(in, timeout, edge)
}

// wait is the edge wait shared by every reader and the synchronous writer.
func (d *Device) wait(in *input, timeout time.Duration, edge Edge) (Level, bool, error) {
	if err := in.arm(d.config.InputPull, edge); err != nil {
		return Low, false, err
	}
	if edge == NoEdge {
		time.Sleep(timeout)
		return Low, false, nil
	}
	ok, err := in.WaitForEdge(timeout)
	if err != nil {
		return Low, false, hwError("wait for edge", in.number, err)
	}
	if !ok {
		return Low, false, nil
	}
	return in.Read(), true, nil
}
