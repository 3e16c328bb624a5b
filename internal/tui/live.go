// Package tui prints plain ANSI frames of a running simulation.
package tui

import (
	"bufio"
	"fmt"
	"io"
	"time"

	"github.com/san-kum/rule30life/internal/automaton"
	"github.com/san-kum/rule30life/internal/sim"
)

const (
	clearScreen = "\033[2J\033[H"
	hideCursor  = "\033[?25l"
	showCursor  = "\033[?25h"
)

// FramePrinter draws snapshots with half-block characters, two cell rows per
// text line. Used as a harness observer it drops frames that arrive faster
// than frameRate; a frameRate of 0 prints every step.
type FramePrinter struct {
	out       *bufio.Writer
	frameRate int
	lastFrame time.Time
	frame     []automaton.Cell
}

func NewFramePrinter(w io.Writer, frameRate int) *FramePrinter {
	return &FramePrinter{
		out:       bufio.NewWriter(w),
		frameRate: frameRate,
	}
}

func (p *FramePrinter) OnStep(s *sim.Snapshot) {
	if p.frameRate > 0 {
		if time.Since(p.lastFrame) < time.Second/time.Duration(p.frameRate) {
			return
		}
	}
	p.lastFrame = time.Now()
	p.Render(s)
}

// Render prints one frame unconditionally.
func (p *FramePrinter) Render(s *sim.Snapshot) {
	p.frame = s.Composite(p.frame)
	w, h := s.Width, s.Height()

	p.out.WriteString(clearScreen)
	fmt.Fprintf(p.out, "tick %d  alive %d\n", s.Tick, s.Alive())
	for y := 0; y < h; y += 2 {
		for x := 0; x < w; x++ {
			top := p.frame[y*w+x] == automaton.Alive
			bottom := y+1 < h && p.frame[(y+1)*w+x] == automaton.Alive
			p.out.WriteRune(halfBlock(top, bottom))
		}
		p.out.WriteByte('\n')
	}
	p.out.Flush()
}

func halfBlock(top, bottom bool) rune {
	switch {
	case top && bottom:
		return '█'
	case top:
		return '▀'
	case bottom:
		return '▄'
	}
	return ' '
}

func (p *FramePrinter) Start() {
	p.out.WriteString(hideCursor)
	p.out.Flush()
}

func (p *FramePrinter) Stop() {
	p.out.WriteString(showCursor)
	p.out.Flush()
}
