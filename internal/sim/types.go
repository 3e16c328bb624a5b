package sim

import "github.com/san-kum/rule30life/internal/automaton"

// Snapshot is a consistent copy of both halves of a Simulation taken at one
// tick. Lines and Life are row-major.
type Snapshot struct {
	Width      int
	LineHeight int
	LifeHeight int
	Tick       uint64
	Lines      []automaton.Cell // Rule 30 window, oldest row first
	Life       []automaton.Cell // Life grid, top row first
}

// Height is the total number of rows covered by the snapshot.
func (s *Snapshot) Height() int { return s.LineHeight + s.LifeHeight }

// Clone returns a deep copy.
func (s *Snapshot) Clone() Snapshot {
	c := *s
	c.Lines = append([]automaton.Cell(nil), s.Lines...)
	c.Life = append([]automaton.Cell(nil), s.Life...)
	return c
}

// Composite lays the snapshot out as one Width x Height frame with the Life
// grid on top and the Rule 30 window below it. dst is reused when large enough.
func (s *Snapshot) Composite(dst []automaton.Cell) []automaton.Cell {
	n := s.Width * s.Height()
	if cap(dst) < n {
		dst = make([]automaton.Cell, n)
	}
	dst = dst[:n]
	off := copy(dst, s.Life)
	copy(dst[off:], s.Lines)
	return dst
}

// Alive counts live cells in the Life half.
func (s *Snapshot) Alive() int {
	n := 0
	for _, c := range s.Life {
		n += int(c)
	}
	return n
}

// NewestLine returns the most recent Rule 30 row without copying.
func (s *Snapshot) NewestLine() automaton.Row {
	if s.LineHeight == 0 {
		return nil
	}
	start := (s.LineHeight - 1) * s.Width
	return automaton.Row(s.Lines[start : start+s.Width])
}

func (s *Snapshot) resize(width, lineHeight, lifeHeight int) {
	s.Width, s.LineHeight, s.LifeHeight = width, lineHeight, lifeHeight
	if n := width * lineHeight; cap(s.Lines) < n {
		s.Lines = make([]automaton.Cell, n)
	} else {
		s.Lines = s.Lines[:n]
	}
	if n := width * lifeHeight; cap(s.Life) < n {
		s.Life = make([]automaton.Cell, n)
	} else {
		s.Life = s.Life[:n]
	}
}
