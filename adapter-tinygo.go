//go:build tinygo

package gpioserial

import (
	"machine"
	"time"
)

// tinygoPin wraps a machine.Pin to satisfy the Pin interface.
type tinygoPin struct {
	pin   machine.Pin
	latch edgeLatch
}

func newTinygoPin(pin machine.Pin) *tinygoPin {
	p := &tinygoPin{pin: pin}
	p.latch.set = func(change uint32, fire func()) error {
		if fire == nil {
			return pin.SetInterrupt(machine.PinChange(change), nil)
		}
		return pin.SetInterrupt(machine.PinChange(change), func(machine.Pin) { fire() })
	}
	return p
}

func (p *tinygoPin) Out(l Level) error {
	p.pin.Configure(machine.PinConfig{Mode: machine.PinOutput})
	p.pin.Set(l == High)
	return nil
}

func (p *tinygoPin) In(pull Pull, edge Edge) error {
	var mPull machine.PinMode
	switch pull {
	case PullUp:
		mPull = machine.PinInputPullup
	case PullDown:
		mPull = machine.PinInputPulldown
	default:
		mPull = machine.PinInput
	}
	p.pin.Configure(machine.PinConfig{Mode: mPull})

	var mEdge machine.PinChange
	switch edge {
	case RisingEdge:
		mEdge = machine.PinRising
	case FallingEdge:
		mEdge = machine.PinFalling
	case BothEdges:
		mEdge = machine.PinToggle
	}
	return p.latch.arm(uint32(mEdge))
}

func (p *tinygoPin) Read() Level {
	if p.pin.Get() {
		return High
	}
	return Low
}

func (p *tinygoPin) WaitForEdge(timeout time.Duration) (bool, error) {
	return p.latch.wait(timeout)
}

func (p *tinygoPin) Halt() error {
	return p.latch.disarm()
}

// NewTinyGo creates a new GPIO serial driver for TinyGo systems. Pin numbers
// are machine.Pin numbers.
func NewTinyGo(c SerialConfig) (*Device, error) {
	return NewWithHardware(HardwareConfig{
		SerialConfig: c,
		Open: func(number int) (Pin, error) {
			return newTinygoPin(machine.Pin(number)), nil
		},
	})
}
