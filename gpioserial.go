// Package gpioserial implements raw serial bitstreams over GPIO pins, as used
// with radio transceivers that expose their modulator and demodulator on
// digital outputs (e.g. the CC1101 GDO pins) instead of a serial peripheral.
//
// Four primitives are provided: asynchronous capture and transmit, and
// clock-synchronous capture and transmit. All of them block the calling
// goroutine. Pins are acquired for the duration of one call and released on
// return; concurrent calls on the same pin number must be serialized by the
// caller.
package gpioserial

import (
	"fmt"
	"time"
)

const (
	defaultSettleDelay  = 10 * time.Millisecond
	defaultClockTimeout = time.Second
)

type SerialConfig struct {
	// InputPull is the pull mode applied to every input pin.
	// Defaults to PullNoChange if not provided.
	InputPull Pull
	// SettleDelay is how long SyncSerialWrite holds the data line Low before
	// it starts listening to the clock.
	// Defaults to 10ms if not provided.
	SettleDelay time.Duration
	// ClockTimeout bounds every clock edge wait in SyncSerialWrite.
	// Defaults to 1s if not provided.
	ClockTimeout time.Duration
}

type HardwareConfig struct {
	SerialConfig
	// Open acquires a pin by number.
	Open PinOpener
}

type Device struct {
	config HardwareConfig
}

// NewWithHardware creates a new driver using the provided pin opener.
func NewWithHardware(c HardwareConfig) (*Device, error) {
	if c.Open == nil {
		return nil, fmt.Errorf("%w: pin opener not configured", ErrInvalidArgument)
	}
	if c.SettleDelay == 0 {
		c.SettleDelay = defaultSettleDelay
	}
	if c.ClockTimeout == 0 {
		c.ClockTimeout = defaultClockTimeout
	}
	if c.SettleDelay < 0 || c.ClockTimeout < 0 {
		return nil, fmt.Errorf("%w: delays must not be negative", ErrInvalidArgument)
	}

	globalLogger.Info("GPIO serial driver ready.")
	return &Device{config: c}, nil
}

func (d *Device) String() string {
	return fmt.Sprintf("GPIOSerial(SettleDelay=%s, ClockTimeout=%s)",
		d.config.SettleDelay,
		d.config.ClockTimeout,
	)
}

// Close releases the driver. Pins are never held between calls, so there is
// nothing left to free on the hardware side.
func (d *Device) Close() error {
	globalLogger.Info("GPIO serial driver closed.")
	return nil
}

// input is an acquired input pin that remembers its armed edge so loops can
// re-arm it without touching the hardware.
type input struct {
	Pin
	number int
	edge   Edge
	armed  bool
}

// arm configures the edge trigger, replacing any previous one.
func (in *input) arm(pull Pull, edge Edge) error {
	if in.armed && in.edge == edge {
		return nil
	}
	if err := in.Pin.In(pull, edge); err != nil {
		in.armed = false
		return hwError("configure", in.number, err)
	}
	in.edge = edge
	in.armed = true
	return nil
}

// openInput acquires a pin as an input with no edge trigger.
func (d *Device) openInput(number int) (*input, error) {
	p, err := d.config.Open(number)
	if err != nil {
		return nil, hwError("open", number, err)
	}
	in := &input{Pin: p, number: number}
	if err := in.arm(d.config.InputPull, NoEdge); err != nil {
		d.halt(number, p)
		return nil, err
	}
	return in, nil
}

// closeInput disables the trigger and releases the pin.
func (d *Device) closeInput(in *input) {
	if err := in.Pin.In(d.config.InputPull, NoEdge); err != nil {
		warnf("failed to disable trigger on pin %d: %v", in.number, err)
	}
	d.halt(in.number, in.Pin)
}

// openOutput acquires a pin for driving.
func (d *Device) openOutput(number int) (Pin, error) {
	p, err := d.config.Open(number)
	if err != nil {
		return nil, hwError("open", number, err)
	}
	return p, nil
}

func (d *Device) halt(number int, p Pin) {
	if err := p.Halt(); err != nil {
		warnf("failed to release pin %d: %v", number, err)
	}
}

func checkPin(number int) error {
	if number < 0 {
		return fmt.Errorf("%w: pin %d", ErrInvalidArgument, number)
	}
	return nil
}

func checkTimeout(timeout time.Duration) error {
	if timeout < 0 {
		return fmt.Errorf("%w: negative timeout %s", ErrInvalidArgument, timeout)
	}
	return nil
}
