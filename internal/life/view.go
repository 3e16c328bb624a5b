package life

import "github.com/san-kum/rule30life/internal/automaton"

// View is a read-only window onto a grid buffer.
type View struct {
	w, h  int
	cells []automaton.Cell
}

func (v View) Width() int  { return v.w }
func (v View) Height() int { return v.h }

// At returns the cell at (x, y); coordinates outside the board read as dead.
func (v View) At(x, y int) automaton.Cell {
	if x < 0 || x >= v.w || y < 0 || y >= v.h {
		return automaton.Dead
	}
	return v.cells[y*v.w+x]
}

// Row returns a copy of row y.
func (v View) Row(y int) automaton.Row {
	if y < 0 || y >= v.h {
		return nil
	}
	return automaton.Row(v.cells[y*v.w : (y+1)*v.w]).Clone()
}

// CopyTo copies the buffer into dst in row-major order.
func (v View) CopyTo(dst []automaton.Cell) int {
	return copy(dst, v.cells)
}

// Alive counts live cells.
func (v View) Alive() int {
	n := 0
	for _, c := range v.cells {
		n += int(c)
	}
	return n
}
