package gpioserial

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// --- Mocks ---

// edgeEvent is the outcome of one WaitForEdge call.
type edgeEvent struct {
	level Level
	delay time.Duration
	quiet bool // times out
	err   error
}

type mockPin struct {
	number  int
	board   *mockBoard
	pull    Pull
	edge    Edge
	level   Level
	events  []edgeEvent
	fired   int
	readFn  func() Level
	outs    []Level
	outAt   []time.Time
	inCalls int
	outErr  error
	haltErr error
	halted  bool
}

func (m *mockPin) Out(l Level) error {
	if m.outErr != nil {
		return m.outErr
	}
	m.level = l
	m.outs = append(m.outs, l)
	m.outAt = append(m.outAt, time.Now())
	m.board.record("out:" + l.String())
	return nil
}

func (m *mockPin) In(pull Pull, edge Edge) error {
	m.inCalls++
	m.pull = pull
	m.edge = edge
	return nil
}

func (m *mockPin) Read() Level {
	if m.readFn != nil {
		return m.readFn()
	}
	return m.level
}

func (m *mockPin) WaitForEdge(timeout time.Duration) (bool, error) {
	m.board.record("wait:" + m.edge.String())
	if len(m.events) == 0 {
		time.Sleep(timeout)
		return false, nil
	}
	ev := m.events[0]
	m.events = m.events[1:]
	if ev.err != nil {
		return false, ev.err
	}
	if ev.quiet {
		time.Sleep(timeout)
		return false, nil
	}
	time.Sleep(ev.delay)
	m.level = ev.level
	m.fired++
	return true, nil
}

func (m *mockPin) Halt() error {
	m.halted = true
	return m.haltErr
}

type mockBoard struct {
	mu      sync.Mutex
	pins    map[int]*mockPin
	openErr map[int]error
	opens   int
	journal []string
}

func newMockBoard() *mockBoard {
	return &mockBoard{pins: map[int]*mockPin{}, openErr: map[int]error{}}
}

func (b *mockBoard) pin(n int) *mockPin {
	p, ok := b.pins[n]
	if !ok {
		p = &mockPin{number: n, board: b}
		b.pins[n] = p
	}
	return p
}

func (b *mockBoard) open(n int) (Pin, error) {
	b.opens++
	if err := b.openErr[n]; err != nil {
		return nil, err
	}
	return b.pin(n), nil
}

func (b *mockBoard) record(s string) {
	b.mu.Lock()
	b.journal = append(b.journal, s)
	b.mu.Unlock()
}

// requireReleased checks that a pin has no trigger left and was halted.
func (b *mockBoard) requireReleased(t *testing.T, n int) {
	t.Helper()
	p := b.pin(n)
	require.Equal(t, NoEdge, p.edge, "pin %d trigger left armed", n)
	require.True(t, p.halted, "pin %d not halted", n)
}

type recordingLogger struct {
	mu   sync.Mutex
	msgs []string
}

func (l *recordingLogger) add(s string) {
	l.mu.Lock()
	l.msgs = append(l.msgs, s)
	l.mu.Unlock()
}

func (l *recordingLogger) Debug(msg string) { l.add("debug " + msg) }
func (l *recordingLogger) Info(msg string)  { l.add("info " + msg) }
func (l *recordingLogger) Warn(msg string)  { l.add("warn " + msg) }
func (l *recordingLogger) Error(msg string) { l.add("error " + msg) }

var errBackend = errors.New("backend failure")

func newTestDevice(t *testing.T, b *mockBoard, c SerialConfig) *Device {
	t.Helper()
	SetLogger(nil)
	dev, err := NewWithHardware(HardwareConfig{SerialConfig: c, Open: b.open})
	require.NoError(t, err)
	return dev
}

// levels returns a read function that reports seq[i] after the i-th edge
// fired on clk.
func levels(clk *mockPin, seq ...Level) func() Level {
	return func() Level {
		i := clk.fired - 1
		if i < 0 || i >= len(seq) {
			return Low
		}
		return seq[i]
	}
}
