package gpioserial

import (
	"fmt"
	"time"
)

// SyncSerialRead samples dataPin on every rising edge of clockPin until
// maxSameBits consecutive equal bits have been read.
//
// The run is seeded with the High level of the start condition, so a frame
// that opens with ones stops after maxSameBits-1 of them.
//
// A rising edge on dataPin within timeout is the start condition. Unlike
// AsyncSerialRead, a missing start condition or a missing clock edge fails
// with ErrTimeout.
func (d *Device) SyncSerialRead(clockPin, dataPin int, timeout time.Duration, maxSameBits int) (*CapturedBits, error) {
	if err := checkPin(clockPin); err != nil {
		return nil, err
	}
	if err := checkPin(dataPin); err != nil {
		return nil, err
	}
	if err := checkTimeout(timeout); err != nil {
		return nil, err
	}
	if maxSameBits < 1 {
		return nil, fmt.Errorf("%w: maxSameBits %d", ErrInvalidArgument, maxSameBits)
	}

	data, err := d.openInput(dataPin)
	if err != nil {
		return nil, err
	}
	defer d.closeInput(data)

	clock, err := d.openInput(clockPin)
	if err != nil {
		return nil, err
	}
	defer d.closeInput(clock)

	if _, ok, err := d.wait(data, timeout, RisingEdge); err != nil {
		return nil, err
	} else if !ok {
		return nil, fmt.Errorf("%w: start condition on pin %d", ErrTimeout, dataPin)
	}
	// The data line is only sampled from now on.
	if err := data.arm(d.config.InputPull, NoEdge); err != nil {
		return nil, err
	}
	capture := &CapturedBits{StartCapture: time.Now()}

	// The start condition left the line High, so the run is seeded with a
	// one: leading ones end the frame one sample early.
	sameBits, lastBit := 1, byte(1)
	for {
		if _, ok, err := d.wait(clock, timeout, RisingEdge); err != nil {
			return nil, err
		} else if !ok {
			return nil, fmt.Errorf("%w: clock on pin %d after %d bits", ErrTimeout, clockPin, len(capture.Bits))
		}
		bit := data.Read().Bit()
		capture.Bits = append(capture.Bits, bit)
		if bit == lastBit {
			sameBits++
		} else {
			sameBits = 1
			lastBit = bit
		}
		if sameBits == maxSameBits {
			break
		}
	}
	capture.EndCapture = time.Now()

	debugf("%s", capture)
	return capture, nil
}

// SyncSerialWrite sends data on dataPin, most significant bit first, paced by
// the clock the peer drives on clockPin.
//
// The data line is first held Low for the settle delay. Then, for every bit,
// the peer's falling clock edge asks for it and the following rising edge
// acknowledges it. Each edge must arrive within the clock timeout, otherwise
// the write fails with ErrTimeout.
func (d *Device) SyncSerialWrite(clockPin, dataPin int, data []byte) error {
	if err := checkPin(clockPin); err != nil {
		return err
	}
	if err := checkPin(dataPin); err != nil {
		return err
	}

	out, err := d.openOutput(dataPin)
	if err != nil {
		return err
	}
	defer d.halt(dataPin, out)

	if err := out.Out(Low); err != nil {
		return hwError("write", dataPin, err)
	}
	time.Sleep(d.config.SettleDelay)

	clock, err := d.openInput(clockPin)
	if err != nil {
		return err
	}
	defer d.closeInput(clock)

	for n, b := range data {
		for i := 7; i >= 0; i-- {
			if err := d.waitClock(clock, FallingEdge, n, i); err != nil {
				return err
			}
			if err := out.Out(Level((b >> uint(i)) & 1)); err != nil {
				return hwError("write", dataPin, err)
			}
			if err := d.waitClock(clock, RisingEdge, n, i); err != nil {
				return err
			}
		}
	}
	return nil
}

func (d *Device) waitClock(clock *input, edge Edge, byteIdx, bitIdx int) error {
	_, ok, err := d.wait(clock, d.config.ClockTimeout, edge)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: %s on clock pin %d (byte %d, bit %d)", ErrTimeout, edge, clock.number, byteIdx, bitIdx)
	}
	return nil
}
