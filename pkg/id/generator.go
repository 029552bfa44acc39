package id

import (
	"fmt"
	"sync"
	"time"
)

// Clock supplies the current instant in milliseconds since the Unix epoch.
// Tests inject fakes to drive millisecond boundaries deterministically.
type Clock interface {
	Now() int64
}

// SystemClock reads the wall clock.
type SystemClock struct{}

// Now returns time.Now in Unix milliseconds.
func (SystemClock) Now() int64 { return time.Now().UnixMilli() }

// ClockFunc adapts a function to the Clock interface.
type ClockFunc func() int64

// Now calls f.
func (f ClockFunc) Now() int64 { return f() }

// Generator issues monotonically increasing IDs for one machine. There is
// one instance per process; all callers share it and issuance is serialized.
type Generator struct {
	mu        sync.Mutex
	clock     Clock
	machineID int64
	lastMs    int64
	seq       int64
}

// GeneratorOption configures a Generator.
type GeneratorOption func(*Generator)

// WithClock replaces the system clock, for tests.
func WithClock(c Clock) GeneratorOption {
	return func(g *Generator) { g.clock = c }
}

// NewGenerator creates a Generator for the given machine id. The machine id
// must fit MachineBits and stay stable for the process lifetime.
func NewGenerator(machineID int64, opts ...GeneratorOption) (*Generator, error) {
	if machineID < 0 || machineID > MaxMachineID {
		return nil, fmt.Errorf("%w: %d (want 0..%d)", ErrInvalidMachineID, machineID, MaxMachineID)
	}
	g := &Generator{clock: SystemClock{}, machineID: machineID, lastMs: -1}
	for _, opt := range opts {
		opt(g)
	}
	return g, nil
}

// MachineID returns the configured machine id.
func (g *Generator) MachineID() int64 { return g.machineID }

// LastMs returns the last millisecond an id was issued for, or -1 if none.
func (g *Generator) LastMs() int64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.lastMs
}

// Warm raises the regression floor to ms. Used at startup to refuse clocks
// that sit behind the last millisecond a previous run issued for. The
// restored millisecond counts as fully exhausted: the previous run may have
// issued any number of sequences within it, so issuance at exactly ms waits
// for the next millisecond.
func (g *Generator) Warm(ms int64) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if ms > g.lastMs {
		g.lastMs = ms
		g.seq = MaxSequence
	}
}

// Next issues a new ID. It fails with ErrClockRegression when the clock
// reads earlier than the last issued millisecond; if the sequence space for
// the current millisecond is exhausted it waits for the clock to advance.
func (g *Generator) Next() (ID, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	now := g.clock.Now()
	if now < g.lastMs {
		return 0, fmt.Errorf("%w: now=%d last=%d", ErrClockRegression, now, g.lastMs)
	}

	if now == g.lastMs {
		g.seq++
		if g.seq > MaxSequence {
			// sequence space exhausted; wait for the next millisecond
			for now <= g.lastMs {
				time.Sleep(time.Millisecond / 8)
				now = g.clock.Now()
			}
			g.seq = 0
		}
	} else {
		g.seq = 0
	}
	g.lastMs = now

	return pack(now-Epoch, g.machineID, g.seq)
}

// NextString issues a new ID in its encoded form.
func (g *Generator) NextString() (string, error) {
	next, err := g.Next()
	if err != nil {
		return "", err
	}
	return next.Encode(), nil
}
