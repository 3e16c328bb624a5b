package harness

import (
	"context"
	"errors"
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/san-kum/rule30life/internal/sim"
)

// DefaultInterval is the tick interval at speed 1.
const DefaultInterval = time.Second / 60

// Observer is notified after every completed tick with a snapshot of that
// tick. It runs on the compute goroutine without the simulation lock held and
// must not retain the snapshot.
type Observer interface {
	OnStep(snap *sim.Snapshot)
}

// Engine is the simulation a Harness drives. *sim.Simulation implements it.
type Engine interface {
	Width() int
	HalfHeight() int
	Tick() uint64
	Step() error
	SnapshotInto(dst *sim.Snapshot)
}

// Harness exclusively owns a Simulation. Ticks run on a dedicated goroutine at
// a rate derived from the shared Speed; renderers read copies through
// Snapshot. The simulation lock is held for one step or one copy at a time.
type Harness struct {
	mu  sync.Mutex
	sim Engine
	err error

	speed     *Speed
	base      time.Duration
	observers []Observer
	pool      *sim.SnapshotPool
	logger    *log.Logger

	runMu  sync.Mutex
	group  *errgroup.Group
	cancel context.CancelFunc
}

// Option configures a Harness.
type Option func(*Harness)

// WithBaseInterval sets the tick interval at speed 1.
func WithBaseInterval(d time.Duration) Option {
	return func(h *Harness) {
		if d > 0 {
			h.base = d
		}
	}
}

// WithSpeed shares an existing multiplier with the harness.
func WithSpeed(s *Speed) Option {
	return func(h *Harness) {
		if s != nil {
			h.speed = s
		}
	}
}

func WithObserver(o Observer) Option {
	return func(h *Harness) {
		if o != nil {
			h.observers = append(h.observers, o)
		}
	}
}

func WithLogger(l *log.Logger) Option {
	return func(h *Harness) {
		if l != nil {
			h.logger = l
		}
	}
}

// New takes ownership of s; callers must not keep using it directly.
func New(s Engine, opts ...Option) *Harness {
	h := &Harness{
		sim:    s,
		speed:  NewSpeed(),
		base:   DefaultInterval,
		pool:   sim.NewSnapshotPool(s.Width(), s.HalfHeight()),
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

func (h *Harness) Speed() *Speed              { return h.speed }
func (h *Harness) BaseInterval() time.Duration { return h.base }

func (h *Harness) SetSpeed(f float64) error { return h.speed.Set(f) }
func (h *Harness) ResetSpeed()              { h.speed.Reset() }

// Width and Height describe the frame a snapshot covers.
func (h *Harness) Width() int  { return h.sim.Width() }
func (h *Harness) Height() int { return 2 * h.sim.HalfHeight() }

// Snapshot copies the current state out under the lock.
func (h *Harness) Snapshot() sim.Snapshot {
	h.mu.Lock()
	defer h.mu.Unlock()
	var snap sim.Snapshot
	h.sim.SnapshotInto(&snap)
	return snap
}

// SnapshotInto is Snapshot without allocating when dst is already sized.
func (h *Harness) SnapshotInto(dst *sim.Snapshot) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.sim.SnapshotInto(dst)
}

func (h *Harness) Ticks() uint64 {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.sim.Tick()
}

// Err returns the error that stopped the simulation, if any.
func (h *Harness) Err() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.err
}

func (h *Harness) step() error {
	h.mu.Lock()
	if h.err != nil {
		err := h.err
		h.mu.Unlock()
		return err
	}
	err := h.sim.Step()
	var snap *sim.Snapshot
	if err != nil {
		h.err = err
	} else if len(h.observers) > 0 {
		snap = h.pool.Get()
		h.sim.SnapshotInto(snap)
	}
	h.mu.Unlock()

	if err != nil {
		h.logger.Error("simulation step failed", "err", err)
		return err
	}
	if snap != nil {
		for _, o := range h.observers {
			o.OnStep(snap)
		}
		h.pool.Put(snap)
	}
	return nil
}

// StepN advances the simulation n ticks on the calling goroutine.
func (h *Harness) StepN(n int) error {
	for i := 0; i < n; i++ {
		if err := h.step(); err != nil {
			return err
		}
	}
	return nil
}

// Run is the compute loop: step, then sleep base/speed, until ctx is done or
// a step fails.
func (h *Harness) Run(ctx context.Context) error {
	h.logger.Debug("compute loop started", "interval", h.base, "speed", h.speed.Get())
	defer h.logger.Debug("compute loop stopped")

	timer := time.NewTimer(h.base)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if err := h.step(); err != nil {
			return err
		}

		timer.Reset(h.speed.Interval(h.base))
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
		}
	}
}

// Start launches Run on its own goroutine. Calling Start on a running
// harness does nothing.
func (h *Harness) Start(ctx context.Context) {
	h.runMu.Lock()
	defer h.runMu.Unlock()
	if h.group != nil {
		return
	}
	ctx, cancel := context.WithCancel(ctx)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return h.Run(gctx) })
	h.group, h.cancel = g, cancel
}

// Running reports whether a compute goroutine has been started and not yet
// joined by Stop.
func (h *Harness) Running() bool {
	h.runMu.Lock()
	defer h.runMu.Unlock()
	return h.group != nil
}

// Stop cancels the compute goroutine and waits for it. Cancellation is not an
// error; a failed step is.
func (h *Harness) Stop() error {
	h.runMu.Lock()
	g, cancel := h.group, h.cancel
	h.group, h.cancel = nil, nil
	h.runMu.Unlock()

	if g == nil {
		return nil
	}
	cancel()
	err := g.Wait()
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return nil
	}
	return err
}
