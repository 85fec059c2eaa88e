package gpioserial

import (
	"fmt"
	"time"
)

// Transition is a level change observed on a data line.
type Transition struct {
	At    time.Time
	Level Level
}

// Offset is a transition expressed relative to the start of its capture.
type Offset struct {
	Level Level
	After time.Duration
}

// CapturedTransitions is the result of an asynchronous read. Transitions are
// in observation order and lie within [StartCapture, EndCapture].
type CapturedTransitions struct {
	StartCapture time.Time
	EndCapture   time.Time
	Transitions  []Transition
}

// StartSeconds returns the capture start as seconds since the Unix epoch.
func (c *CapturedTransitions) StartSeconds() float64 { return unixSeconds(c.StartCapture) }

// EndSeconds returns the capture end as seconds since the Unix epoch.
func (c *CapturedTransitions) EndSeconds() float64 { return unixSeconds(c.EndCapture) }

// Duration returns the length of the capture.
func (c *CapturedTransitions) Duration() time.Duration {
	return c.EndCapture.Sub(c.StartCapture)
}

// Offsets returns every transition relative to StartCapture, the form pulse
// width decoders work with.
func (c *CapturedTransitions) Offsets() []Offset {
	out := make([]Offset, len(c.Transitions))
	for i, t := range c.Transitions {
		out[i] = Offset{Level: t.Level, After: t.At.Sub(c.StartCapture)}
	}
	return out
}

func (c *CapturedTransitions) String() string {
	return fmt.Sprintf("CapturedTransitions(start=%.6f, length=%s, transitions=%d)",
		c.StartSeconds(), c.Duration(), len(c.Transitions))
}

// CapturedBits is the result of a synchronous read. The final run of equal
// bits has the run length the read was asked to stop at, except when the
// capture is a single run of ones: that run also counts the start condition
// and is one bit shorter.
type CapturedBits struct {
	StartCapture time.Time
	EndCapture   time.Time
	Bits         []byte
}

// StartSeconds returns the capture start as seconds since the Unix epoch.
func (c *CapturedBits) StartSeconds() float64 { return unixSeconds(c.StartCapture) }

// EndSeconds returns the capture end as seconds since the Unix epoch.
func (c *CapturedBits) EndSeconds() float64 { return unixSeconds(c.EndCapture) }

// Duration returns the length of the capture.
func (c *CapturedBits) Duration() time.Duration {
	return c.EndCapture.Sub(c.StartCapture)
}

// Bytes packs the bits most significant first, the order SyncSerialWrite
// sends them in. A trailing partial byte is padded with zeros.
func (c *CapturedBits) Bytes() []byte {
	out := make([]byte, (len(c.Bits)+7)/8)
	for i, b := range c.Bits {
		if b != 0 {
			out[i/8] |= 0x80 >> uint(i%8)
		}
	}
	return out
}

func (c *CapturedBits) String() string {
	return fmt.Sprintf("CapturedBits(start=%.6f, length=%s, bits=%d)",
		c.StartSeconds(), c.Duration(), len(c.Bits))
}

func unixSeconds(t time.Time) float64 {
	return float64(t.UnixNano()) / float64(time.Second)
}
