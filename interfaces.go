package gpioserial

import (
	"fmt"
	"time"
)

// Level represents the logical level of a pin (Low or High).
type Level uint8

const (
	Low  Level = 0
	High Level = 1
)

func (l Level) String() string {
	if l == High {
		return "High"
	}
	return "Low"
}

// Bit returns 1 for High and 0 for Low.
func (l Level) Bit() byte {
	if l == High {
		return 1
	}
	return 0
}

// ParseLevel converts a numeric level code (0 or 1) to a Level.
func ParseLevel(code int) (Level, error) {
	switch code {
	case 0:
		return Low, nil
	case 1:
		return High, nil
	}
	return Low, fmt.Errorf("%w: level %d", ErrInvalidArgument, code)
}

// Pull represents the internal pull-up/down resistor state.
type Pull uint8

const (
	PullNoChange Pull = iota
	PullFloat
	PullDown
	PullUp
)

// Edge represents the signal edge that triggers an interrupt.
type Edge uint8

const (
	NoEdge Edge = iota
	RisingEdge
	FallingEdge
	BothEdges
)

func (e Edge) String() string {
	switch e {
	case NoEdge:
		return "Disabled"
	case RisingEdge:
		return "RisingEdge"
	case FallingEdge:
		return "FallingEdge"
	case BothEdges:
		return "BothEdges"
	default:
		return "unknown"
	}
}

func (e Edge) valid() bool {
	return e <= BothEdges
}

// ParseEdge converts a numeric trigger code (0 disabled, 1 rising, 2 falling,
// 3 both) to an Edge.
func ParseEdge(code int) (Edge, error) {
	if code < 0 || code > int(BothEdges) {
		return NoEdge, fmt.Errorf("%w: trigger direction %d", ErrInvalidArgument, code)
	}
	return Edge(code), nil
}

// Pin represents a generic GPIO pin.
type Pin interface {
	// Out sets the pin as output with the given level.
	Out(l Level) error
	// In sets the pin as input with the given pull mode and edge trigger.
	// Setting a new edge replaces the previous one.
	In(pull Pull, edge Edge) error
	// Read returns the current level of the pin.
	Read() Level
	// WaitForEdge blocks until the configured edge occurs or timeout elapses.
	// It returns false on timeout.
	WaitForEdge(timeout time.Duration) (bool, error)
	// Halt releases the pin.
	Halt() error
}

// PinOpener acquires the pin with the given number for one operation.
type PinOpener func(number int) (Pin, error)
