// Package metrics computes running statistics over simulation snapshots.
package metrics

import (
	"github.com/san-kum/rule30life/internal/sim"
)

// Metric accumulates observations of successive snapshots.
type Metric interface {
	Name() string
	Observe(s *sim.Snapshot)
	Value() float64
	Reset()
}

// Population is the number of live Life cells at the latest observation.
type Population struct {
	alive int
}

func NewPopulation() *Population { return &Population{} }

func (p *Population) Name() string { return "population" }

func (p *Population) Observe(s *sim.Snapshot) { p.alive = s.Alive() }

func (p *Population) Value() float64 { return float64(p.alive) }

func (p *Population) Reset() { p.alive = 0 }

// Density is the mean fraction of live Life cells over all observations.
type Density struct {
	sum     float64
	samples int
}

func NewDensity() *Density { return &Density{} }

func (d *Density) Name() string { return "density" }

func (d *Density) Observe(s *sim.Snapshot) {
	if len(s.Life) == 0 {
		return
	}
	d.sum += float64(s.Alive()) / float64(len(s.Life))
	d.samples++
}

func (d *Density) Value() float64 {
	if d.samples == 0 {
		return 0
	}
	return d.sum / float64(d.samples)
}

func (d *Density) Reset() {
	d.sum = 0
	d.samples = 0
}

// CenterBias is the fraction of observations whose newest Rule 30 row has a
// live centre cell. Over many ticks it approaches 0.5.
type CenterBias struct {
	alive   int
	samples int
}

func NewCenterBias() *CenterBias { return &CenterBias{} }

func (c *CenterBias) Name() string { return "center_bias" }

func (c *CenterBias) Observe(s *sim.Snapshot) {
	row := s.NewestLine()
	if len(row) == 0 {
		return
	}
	c.alive += int(row[len(row)/2])
	c.samples++
}

func (c *CenterBias) Value() float64 {
	if c.samples == 0 {
		return 0
	}
	return float64(c.alive) / float64(c.samples)
}

func (c *CenterBias) Reset() {
	c.alive = 0
	c.samples = 0
}

func DefaultMetrics() []Metric {
	return []Metric{
		NewPopulation(),
		NewDensity(),
		NewCenterBias(),
	}
}
