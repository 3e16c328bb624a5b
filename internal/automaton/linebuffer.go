package automaton

import "fmt"

// LineBuffer keeps the most recent rows produced by [NextRow] in a ring. Every
// Step appends one row and evicts the oldest, so the length never changes.
type LineBuffer struct {
	width  int
	height int
	rows   []Row
	head   int // slot holding the oldest row
}

// NewLineBuffer allocates height dead rows of the given width and seeds the
// middle cell of the most recent row.
func NewLineBuffer(width, height int) (*LineBuffer, error) {
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("%w: line buffer %dx%d", ErrInvalidDimensions, width, height)
	}
	rows := make([]Row, height)
	for i := range rows {
		rows[i] = NewRow(width)
	}
	rows[height-1][width/2] = Alive
	return &LineBuffer{width: width, height: height, rows: rows}, nil
}

func (b *LineBuffer) Width() int  { return b.width }
func (b *LineBuffer) Height() int { return b.height }

// at returns the i-th row counted from the oldest.
func (b *LineBuffer) at(i int) Row {
	return b.rows[(b.head+i)%b.height]
}

// Step generates the successor of the newest row, appends it and returns the
// evicted oldest row. The returned row is no longer referenced by b.
func (b *LineBuffer) Step() Row {
	next := NextRow(b.at(b.height - 1))
	oldest := b.rows[b.head]
	b.rows[b.head] = next
	b.head = (b.head + 1) % b.height
	return oldest
}

// Last returns a copy of the newest row.
func (b *LineBuffer) Last() Row {
	return b.at(b.height - 1).Clone()
}

// Rows returns copies of all rows, oldest first.
func (b *LineBuffer) Rows() []Row {
	out := make([]Row, b.height)
	for i := range out {
		out[i] = b.at(i).Clone()
	}
	return out
}

// CopyTo writes the window into dst in row-major order, oldest row first, and
// returns the number of cells written.
func (b *LineBuffer) CopyTo(dst []Cell) int {
	n := 0
	for i := 0; i < b.height && n < len(dst); i++ {
		n += copy(dst[n:], b.at(i))
	}
	return n
}
