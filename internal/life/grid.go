package life

import (
	"errors"
	"fmt"

	"github.com/san-kum/rule30life/internal/automaton"
)

var (
	// ErrRowLength indicates an injected row whose width differs from the grid.
	ErrRowLength = errors.New("life: row length does not match grid width")

	// ErrRowIndex indicates an injected row outside the grid.
	ErrRowIndex = errors.New("life: row index out of range")

	// ErrRowAlreadySet indicates a second injection before the next Step.
	ErrRowAlreadySet = errors.New("life: row already injected for this generation")
)

// Grid is a double-buffered Game of Life board. Neighbours outside the board
// do not exist: there is no wraparound and no virtual border.
type Grid struct {
	w, h     int
	a, b     []automaton.Cell
	useA     bool
	injected bool
	gen      uint64
}

// NewGrid allocates an all-dead width x height board.
func NewGrid(width, height int) (*Grid, error) {
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("%w: life grid %dx%d", automaton.ErrInvalidDimensions, width, height)
	}
	n := width * height
	return &Grid{
		w:    width,
		h:    height,
		a:    make([]automaton.Cell, n),
		b:    make([]automaton.Cell, n),
		useA: true,
	}, nil
}

func (g *Grid) Width() int         { return g.w }
func (g *Grid) Height() int        { return g.h }
func (g *Grid) Generation() uint64 { return g.gen }

func (g *Grid) buffers() (cur, nxt []automaton.Cell) {
	if g.useA {
		return g.a, g.b
	}
	return g.b, g.a
}

// Current returns a read-only view of the readable buffer. The view is only
// valid until the next Step; copy it out if it must outlive that.
func (g *Grid) Current() View {
	cur, _ := g.buffers()
	return View{w: g.w, h: g.h, cells: cur}
}

// Set writes a single cell of the current buffer. It is meant for seeding.
func (g *Grid) Set(x, y int, c automaton.Cell) {
	if x < 0 || x >= g.w || y < 0 || y >= g.h {
		return
	}
	cur, _ := g.buffers()
	cur[y*g.w+x] = c & 1
}

// SetRow overwrites row y of the current buffer. Only one injection is allowed
// per generation; the next Step re-arms it.
func (g *Grid) SetRow(y int, row automaton.Row) error {
	if len(row) != g.w {
		return fmt.Errorf("%w: got %d cells, want %d", ErrRowLength, len(row), g.w)
	}
	if y < 0 || y >= g.h {
		return fmt.Errorf("%w: %d not in [0,%d)", ErrRowIndex, y, g.h)
	}
	if g.injected {
		return fmt.Errorf("%w: generation %d", ErrRowAlreadySet, g.gen)
	}
	cur, _ := g.buffers()
	copy(cur[y*g.w:(y+1)*g.w], row)
	g.injected = true
	return nil
}

// Step computes the next generation into the spare buffer and flips buffers.
func (g *Grid) Step() {
	cur, nxt := g.buffers()
	for y := 0; y < g.h; y++ {
		for x := 0; x < g.w; x++ {
			i := y*g.w + x
			n := g.neighbors(cur, x, y)
			alive := cur[i] == automaton.Alive
			if (alive && (n == 2 || n == 3)) || (!alive && n == 3) {
				nxt[i] = automaton.Alive
			} else {
				nxt[i] = automaton.Dead
			}
		}
	}
	g.useA = !g.useA
	g.injected = false
	g.gen++
}

// neighbors counts live cells around (x, y). Corners see 3 neighbours, edges 5
// and interior cells 8; on a board one cell wide or tall the classes collapse.
func (g *Grid) neighbors(c []automaton.Cell, x, y int) int {
	w := g.w
	i := y*w + x
	top, bottom := y == 0, y == g.h-1
	left, right := x == 0, x == w-1

	n := 0
	if !top {
		n += int(c[i-w])
		if !left {
			n += int(c[i-w-1])
		}
		if !right {
			n += int(c[i-w+1])
		}
	}
	if !left {
		n += int(c[i-1])
	}
	if !right {
		n += int(c[i+1])
	}
	if !bottom {
		n += int(c[i+w])
		if !left {
			n += int(c[i+w-1])
		}
		if !right {
			n += int(c[i+w+1])
		}
	}
	return n
}
