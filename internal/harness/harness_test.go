package harness_test

import (
	"context"
	"sync"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/rule30life/internal/automaton"
	"github.com/san-kum/rule30life/internal/harness"
	"github.com/san-kum/rule30life/internal/life"
	"github.com/san-kum/rule30life/internal/sim"
)

// recorder keeps a copy of every completed tick.
type recorder struct {
	mu    sync.Mutex
	ticks map[uint64]sim.Snapshot
}

func newRecorder(initial sim.Snapshot) *recorder {
	return &recorder{ticks: map[uint64]sim.Snapshot{initial.Tick: initial}}
}

func (r *recorder) OnStep(snap *sim.Snapshot) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ticks[snap.Tick] = snap.Clone()
}

func (r *recorder) get(tick uint64) (sim.Snapshot, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.ticks[tick]
	return s, ok
}

var _ harness.Engine = (*sim.Simulation)(nil)

// brokenEngine fails every step with the error a double injection produces.
type brokenEngine struct {
	*sim.Simulation
}

func (b brokenEngine) Step() error {
	return &sim.StepError{Tick: b.Tick(), Wrapped: life.ErrRowAlreadySet}
}

func newSim(w, h int) *sim.Simulation {
	s, err := sim.New(w, h)
	Expect(err).NotTo(HaveOccurred())
	return s
}

var _ = Describe("Harness", func() {
	var h *harness.Harness

	AfterEach(func() {
		if h != nil {
			Expect(h.Stop()).To(Succeed())
		}
	})

	Describe("StepN", func() {
		It("advances the simulation synchronously", func() {
			h = harness.New(newSim(16, 8))
			Expect(h.StepN(25)).To(Succeed())
			Expect(h.Ticks()).To(BeEquivalentTo(25))
			Expect(h.Snapshot().Tick).To(BeEquivalentTo(25))
		})

		It("reports the frame dimensions", func() {
			h = harness.New(newSim(16, 9))
			Expect(h.Width()).To(Equal(16))
			Expect(h.Height()).To(Equal(8))
		})
	})

	Describe("the compute goroutine", func() {
		It("ticks until stopped", func() {
			h = harness.New(newSim(16, 8), harness.WithBaseInterval(time.Millisecond))
			h.Start(context.Background())
			Expect(h.Running()).To(BeTrue())

			Eventually(h.Ticks).Should(BeNumerically(">=", 5))
			Expect(h.Stop()).To(Succeed())
			Expect(h.Running()).To(BeFalse())

			stopped := h.Ticks()
			Consistently(h.Ticks, 50*time.Millisecond).Should(Equal(stopped))
		})

		It("stops when the parent context is cancelled", func() {
			ctx, cancel := context.WithCancel(context.Background())
			h = harness.New(newSim(8, 4), harness.WithBaseInterval(time.Millisecond))
			h.Start(ctx)
			Eventually(h.Ticks).Should(BeNumerically(">", 0))

			cancel()
			Expect(h.Stop()).To(Succeed())
		})

		It("ignores a second Start", func() {
			h = harness.New(newSim(8, 4), harness.WithBaseInterval(time.Millisecond))
			h.Start(context.Background())
			h.Start(context.Background())
			Eventually(h.Ticks).Should(BeNumerically(">", 0))
		})

		It("returns promptly even with a long interval", func() {
			h = harness.New(newSim(8, 4), harness.WithBaseInterval(time.Hour))
			h.Start(context.Background())
			Eventually(h.Ticks).Should(BeEquivalentTo(1))

			done := make(chan error, 1)
			go func() { done <- h.Stop() }()
			Eventually(done).Should(Receive(BeNil()))
		})

		It("derives the tick interval from the shared speed", func() {
			speed := harness.NewSpeed()
			Expect(speed.Set(1e9)).To(Succeed())

			h = harness.New(newSim(8, 4), harness.WithBaseInterval(time.Hour), harness.WithSpeed(speed))
			h.Start(context.Background())
			Eventually(h.Ticks).Should(BeNumerically(">", 10))

			h.ResetSpeed()
			Expect(speed.Get()).To(Equal(1.0))
		})
	})

	Describe("snapshots under concurrent stepping", func() {
		It("only ever observes completed ticks", func() {
			s := newSim(24, 12)
			rec := newRecorder(s.Snapshot())
			h = harness.New(s, harness.WithObserver(rec), harness.WithBaseInterval(50*time.Microsecond))

			h.Start(context.Background())

			var seen []sim.Snapshot
			var snap sim.Snapshot
			for len(seen) < 200 {
				h.SnapshotInto(&snap)
				seen = append(seen, snap.Clone())
			}
			Expect(h.Stop()).To(Succeed())

			for _, got := range seen {
				want, ok := rec.get(got.Tick)
				Expect(ok).To(BeTrue(), "tick %d was never completed", got.Tick)
				Expect(got.Lines).To(Equal(want.Lines), "torn line buffer at tick %d", got.Tick)
				Expect(got.Life).To(Equal(want.Life), "torn life grid at tick %d", got.Tick)
			}
		})

		It("hands out copies", func() {
			h = harness.New(newSim(10, 6))
			snap := h.Snapshot()
			snap.Lines[0] = automaton.Alive
			Expect(h.Snapshot().Lines[0]).To(Equal(automaton.Dead))
		})
	})

	Describe("a failing step", func() {
		It("is terminal and surfaces from Stop", func() {
			h = harness.New(brokenEngine{newSim(6, 4)}, harness.WithBaseInterval(time.Millisecond))
			h.Start(context.Background())

			Eventually(h.Err).Should(MatchError(life.ErrRowAlreadySet))
			err := h.Stop()
			h = nil
			Expect(err).To(MatchError(life.ErrRowAlreadySet))
		})

		It("keeps failing on later steps", func() {
			h = harness.New(brokenEngine{newSim(6, 4)})

			first := h.StepN(1)
			Expect(first).To(HaveOccurred())
			Expect(h.StepN(3)).To(MatchError(first))
			Expect(h.Ticks()).To(BeEquivalentTo(0))
		})
	})
})
