package metrics

import "github.com/san-kum/rule30life/internal/sim"

// History keeps the most recent population counts in a fixed ring.
type History struct {
	values []float64
	head   int
	n      int
}

func NewHistory(size int) *History {
	if size < 1 {
		size = 1
	}
	return &History{values: make([]float64, size)}
}

func (h *History) Name() string { return "population_history" }

func (h *History) Observe(s *sim.Snapshot) {
	h.Push(float64(s.Alive()))
}

func (h *History) Push(v float64) {
	h.values[h.head] = v
	h.head = (h.head + 1) % len(h.values)
	if h.n < len(h.values) {
		h.n++
	}
}

// Value is the most recent entry.
func (h *History) Value() float64 {
	if h.n == 0 {
		return 0
	}
	return h.values[(h.head-1+len(h.values))%len(h.values)]
}

func (h *History) Len() int { return h.n }

// Values returns the retained entries, oldest first.
func (h *History) Values() []float64 {
	out := make([]float64, h.n)
	start := (h.head - h.n + len(h.values)) % len(h.values)
	for i := range out {
		out[i] = h.values[(start+i)%len(h.values)]
	}
	return out
}

func (h *History) Reset() {
	h.head = 0
	h.n = 0
}
