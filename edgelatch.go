package gpioserial

import (
	"errors"
	"time"
)

// edgeLatch drives a pin-change controller that accepts one callback per pin
// and refuses a new one while another is set. change is the controller's
// change mask; zero means nothing is armed.
type edgeLatch struct {
	set    func(change uint32, fire func()) error
	edges  chan struct{}
	change uint32
}

// arm replaces the armed change. A zero change only disarms.
func (l *edgeLatch) arm(change uint32) error {
	if err := l.disarm(); err != nil {
		return err
	}
	if change == 0 {
		return nil
	}

	// Fresh channel so edges seen under a previous trigger are dropped.
	edges := make(chan struct{}, 1)
	err := l.set(change, func() {
		select {
		case edges <- struct{}{}:
		default:
		}
	})
	if err != nil {
		return err
	}
	l.edges = edges
	l.change = change
	return nil
}

// disarm clears the callback using the armed change mask: a zero mask leaves
// the enable bits set on some targets.
func (l *edgeLatch) disarm() error {
	l.edges = nil
	if l.change == 0 {
		return nil
	}
	change := l.change
	l.change = 0
	return l.set(change, nil)
}

func (l *edgeLatch) wait(timeout time.Duration) (bool, error) {
	if l.edges == nil {
		return false, errors.New("no edge trigger configured")
	}
	t := time.NewTimer(timeout)
	defer t.Stop()
	select {
	case <-l.edges:
		return true, nil
	case <-t.C:
		return false, nil
	}
}
