package gpioserial

import (
	"fmt"
	"time"

	"periph.io/x/conn/v3/physic"
)

// AsyncSerialRead captures the transitions of dataPin for as long as
// thresholdPin (carrier sense) stays High.
//
// It first waits up to timeout for thresholdPin to rise; if it doesn't, the
// result is nil with no error. Once started, every data edge must arrive
// within timeout. If one doesn't, the whole capture is discarded and the
// result is again nil: a truncated capture is never returned.
func (d *Device) AsyncSerialRead(thresholdPin, dataPin int, timeout time.Duration) (*CapturedTransitions, error) {
	if err := checkPin(thresholdPin); err != nil {
		return nil, err
	}
	if err := checkPin(dataPin); err != nil {
		return nil, err
	}
	if err := checkTimeout(timeout); err != nil {
		return nil, err
	}

	threshold, err := d.openInput(thresholdPin)
	if err != nil {
		return nil, err
	}
	defer d.closeInput(threshold)

	data, err := d.openInput(dataPin)
	if err != nil {
		return nil, err
	}
	defer d.closeInput(data)

	if _, ok, err := d.wait(threshold, timeout, RisingEdge); err != nil || !ok {
		return nil, err
	}
	capture := &CapturedTransitions{StartCapture: time.Now()}

	for threshold.Read() != Low {
		level, ok, err := d.wait(data, timeout, BothEdges)
		if err != nil {
			return nil, err
		}
		if !ok {
			debugf("data pin %d went quiet, capture of %d transitions discarded",
				dataPin, len(capture.Transitions))
			return nil, nil
		}
		capture.Transitions = append(capture.Transitions, Transition{At: time.Now(), Level: level})
	}
	capture.EndCapture = time.Now()

	debugf("%s", capture)
	return capture, nil
}

// AsyncSerialWrite sends data on dataPin at a fixed baud rate, least
// significant bit first, with no framing added.
//
// Every bit is preceded by one bit period of sleep, the first one included,
// so the line keeps its previous level for one period before the first bit.
// Receivers rely on this offset.
func (d *Device) AsyncSerialWrite(dataPin, baudrate int, data []byte) error {
	if err := checkPin(dataPin); err != nil {
		return err
	}
	if baudrate <= 0 {
		return fmt.Errorf("%w: baudrate %d", ErrInvalidArgument, baudrate)
	}

	pin, err := d.openOutput(dataPin)
	if err != nil {
		return err
	}
	defer d.halt(dataPin, pin)

	period := bitPeriod(baudrate)
	for _, b := range data {
		for i := uint(0); i < 8; i++ {
			time.Sleep(period)
			if err := pin.Out(Level((b >> i) & 1)); err != nil {
				return hwError("write", dataPin, err)
			}
		}
	}
	return nil
}

func bitPeriod(baudrate int) time.Duration {
	return (physic.Frequency(baudrate) * physic.Hertz).Period()
}
