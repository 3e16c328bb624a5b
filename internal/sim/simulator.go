package sim

import (
	"fmt"

	"github.com/san-kum/rule30life/internal/automaton"
	"github.com/san-kum/rule30life/internal/life"
)

// Simulation feeds every row leaving the Rule 30 window into the bottom of a
// Game of Life grid of the same width.
type Simulation struct {
	width int
	half  int
	lines *automaton.LineBuffer
	grid  *life.Grid
	tick  uint64
}

// New splits height into two equal halves for the line buffer and the grid.
// An odd height loses its last row: New(w, 301) builds two halves of 150.
func New(width, height int) (*Simulation, error) {
	half := height / 2
	if width < 1 || half < 1 {
		return nil, fmt.Errorf("%w: simulation %dx%d needs width >= 1 and height >= 2",
			automaton.ErrInvalidDimensions, width, height)
	}

	lines, err := automaton.NewLineBuffer(width, half)
	if err != nil {
		return nil, err
	}
	grid, err := life.NewGrid(width, half)
	if err != nil {
		return nil, err
	}

	return &Simulation{width: width, half: half, lines: lines, grid: grid}, nil
}

func (s *Simulation) Width() int      { return s.width }
func (s *Simulation) HalfHeight() int { return s.half }
func (s *Simulation) Tick() uint64    { return s.tick }

// Step advances both automata by one tick. The evicted Rule 30 row is
// injected before the Life step so it takes part in exactly one generation.
func (s *Simulation) Step() error {
	row := s.lines.Step()
	if err := s.grid.SetRow(s.half-1, row); err != nil {
		return &StepError{Tick: s.tick, Wrapped: err}
	}
	s.grid.Step()
	s.tick++
	return nil
}

// Snapshot copies both halves out.
func (s *Simulation) Snapshot() Snapshot {
	var snap Snapshot
	s.SnapshotInto(&snap)
	return snap
}

// SnapshotInto copies both halves into dst, reusing its buffers.
func (s *Simulation) SnapshotInto(dst *Snapshot) {
	dst.resize(s.width, s.half, s.half)
	dst.Tick = s.tick
	s.lines.CopyTo(dst.Lines)
	s.grid.Current().CopyTo(dst.Life)
}
