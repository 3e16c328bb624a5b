package automaton

import "errors"

// ErrInvalidDimensions is returned when a width or height would leave no cells
// to index.
var ErrInvalidDimensions = errors.New("automaton: dimensions must be at least 1")

// Cell is a binary automaton cell.
type Cell uint8

const (
	Dead  Cell = 0
	Alive Cell = 1
)

// Row is one generation of the one-dimensional automaton.
type Row []Cell

// NewRow returns an all-dead row of the given width.
func NewRow(width int) Row {
	return make(Row, width)
}

// Clone returns an independent copy of r.
func (r Row) Clone() Row {
	c := make(Row, len(r))
	copy(c, r)
	return c
}

// Equal reports whether both rows hold the same cells.
func (r Row) Equal(other Row) bool {
	if len(r) != len(other) {
		return false
	}
	for i := range r {
		if r[i] != other[i] {
			return false
		}
	}
	return true
}

// Alive counts the live cells in r.
func (r Row) Alive() int {
	n := 0
	for _, c := range r {
		n += int(c & 1)
	}
	return n
}

func (r Row) String() string {
	b := make([]byte, len(r))
	for i, c := range r {
		if c&1 == 1 {
			b[i] = '1'
		} else {
			b[i] = '0'
		}
	}
	return string(b)
}
