package metrics

import (
	"sync"

	"github.com/san-kum/rule30life/internal/sim"
)

// Recorder feeds every observed snapshot to a set of metrics and a population
// history. It is safe to read from a goroutine other than the one observing.
type Recorder struct {
	mu      sync.Mutex
	metrics []Metric
	history *History
	last    uint64
}

// NewRecorder records into ms, or DefaultMetrics when ms is empty.
func NewRecorder(historySize int, ms ...Metric) *Recorder {
	if len(ms) == 0 {
		ms = DefaultMetrics()
	}
	return &Recorder{metrics: ms, history: NewHistory(historySize)}
}

// OnStep lets a Recorder observe a running harness.
func (r *Recorder) OnStep(s *sim.Snapshot) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, m := range r.metrics {
		m.Observe(s)
	}
	r.history.Observe(s)
	r.last = s.Tick
}

// Value pairs a metric name with its current value.
type Value struct {
	Name  string
	Value float64
}

func (r *Recorder) Values() []Value {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Value, len(r.metrics))
	for i, m := range r.metrics {
		out[i] = Value{Name: m.Name(), Value: m.Value()}
	}
	return out
}

func (r *Recorder) History() []float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.history.Values()
}

// LastTick is the tick of the most recent observation.
func (r *Recorder) LastTick() uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.last
}

func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, m := range r.metrics {
		m.Reset()
	}
	r.history.Reset()
	r.last = 0
}
