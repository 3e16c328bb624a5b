package viz

import (
	"strings"

	"github.com/san-kum/rule30life/internal/automaton"
)

// Braille Patterns: 2x4 dots
// 1 4
// 2 5
// 3 6
// 7 8
//
// Unicode offset 0x2800
var pixelMap = [4][2]int{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

const blank = 0x2800

type Canvas struct {
	Width, Height int
	Grid          [][]rune
}

// CanvasSize is the number of characters needed to show a w x h cell grid.
func CanvasSize(w, h int) (int, int) {
	return (w + 1) / 2, (h + 3) / 4
}

func NewCanvas(w, h int) *Canvas {
	c := &Canvas{
		Width:  w,
		Height: h,
		Grid:   make([][]rune, h),
	}
	for i := range c.Grid {
		c.Grid[i] = make([]rune, w)
	}
	c.Clear()
	return c
}

// Set turns on the dot at (x, y) in sub-pixel coordinates.
// The canvas size in sub-pixels is (Width*2) x (Height*4).
func (c *Canvas) Set(x, y int) {
	if x < 0 || y < 0 {
		return
	}

	col := x / 2
	row := y / 4
	if col >= c.Width || row >= c.Height {
		return
	}

	c.Grid[row][col] |= rune(pixelMap[y%4][x%2])
}

func (c *Canvas) Clear() {
	for i := range c.Grid {
		for j := range c.Grid[i] {
			c.Grid[i][j] = blank
		}
	}
}

// DrawCells clears the canvas and sets one dot per live cell of a row-major
// w-wide grid.
func (c *Canvas) DrawCells(cells []automaton.Cell, w int) {
	c.Clear()
	if w < 1 {
		return
	}
	for i, cell := range cells {
		if cell == automaton.Alive {
			c.Set(i%w, i/w)
		}
	}
}

// Lines returns one string per character row.
func (c *Canvas) Lines() []string {
	out := make([]string, len(c.Grid))
	for i, row := range c.Grid {
		out[i] = string(row)
	}
	return out
}

func (c *Canvas) String() string {
	var b strings.Builder
	for _, row := range c.Grid {
		b.WriteString(string(row))
		b.WriteByte('\n')
	}
	return b.String()
}
