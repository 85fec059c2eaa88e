//go:build !tinygo

package gpioserial

import (
	"fmt"
	"time"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/host/v3"
)

// realPin wraps a gpio.PinIO to satisfy the Pin interface.
type realPin struct {
	gpio.PinIO
}

func (p *realPin) Out(l Level) error {
	if l == High {
		return p.PinIO.Out(gpio.High)
	}
	return p.PinIO.Out(gpio.Low)
}

func (p *realPin) In(pull Pull, edge Edge) error {
	var pPull gpio.Pull
	switch pull {
	case PullFloat:
		pPull = gpio.Float
	case PullDown:
		pPull = gpio.PullDown
	case PullUp:
		pPull = gpio.PullUp
	default:
		pPull = gpio.PullNoChange
	}

	var pEdge gpio.Edge
	switch edge {
	case RisingEdge:
		pEdge = gpio.RisingEdge
	case FallingEdge:
		pEdge = gpio.FallingEdge
	case BothEdges:
		pEdge = gpio.BothEdges
	default:
		pEdge = gpio.NoEdge
	}
	return p.PinIO.In(pPull, pEdge)
}

func (p *realPin) Read() Level {
	if p.PinIO.Read() == gpio.High {
		return High
	}
	return Low
}

// WaitForEdge blocks in the kernel until the edge fires or timeout elapses.
// periph.io reports failures as timeouts, so the error is always nil.
func (p *realPin) WaitForEdge(timeout time.Duration) (bool, error) {
	return p.PinIO.WaitForEdge(timeout), nil
}

// Config holds the configuration for the Linux/periph.io driver.
type Config struct {
	SerialConfig
}

// New creates a new GPIO serial driver for Linux systems.
// It initializes periph.io host drivers and resolves pins by BCM number
// ("GPIO<n>") on every call.
func New(c Config) (*Device, error) {
	if _, err := host.Init(); err != nil {
		return nil, &HardwareError{Op: "initialize periph.io host", Pin: -1, Err: err}
	}

	return NewWithHardware(HardwareConfig{
		SerialConfig: c.SerialConfig,
		Open:         openPeriphPin,
	})
}

func openPeriphPin(number int) (Pin, error) {
	name := fmt.Sprintf("GPIO%d", number)
	p := gpioreg.ByName(name)
	if p == nil {
		return nil, fmt.Errorf("failed to open pin %s", name)
	}
	return &realPin{PinIO: p}, nil
}
