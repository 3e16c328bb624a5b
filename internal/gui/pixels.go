package gui

import (
	"errors"
	"image/color"

	"github.com/san-kum/rule30life/internal/automaton"
)

var ErrNoWindow = errors.New("gui: built without window support; rebuild with -tags ebiten")

// Options configures the window.
type Options struct {
	Title string
	Scale int
	FPS   int // window update rate; 0 keeps the engine default
	On    color.Color
	Off   color.Color
}

// DefaultOptions draws live cells black on a white background.
func DefaultOptions() Options {
	return Options{
		Title: "Rule 30 → Life",
		Scale: 1,
		FPS:   60,
		On:    color.Black,
		Off:   color.White,
	}
}

func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.Title == "" {
		o.Title = d.Title
	}
	if o.Scale < 1 {
		o.Scale = d.Scale
	}
	if o.FPS < 0 {
		o.FPS = 0
	}
	if o.On == nil {
		o.On = d.On
	}
	if o.Off == nil {
		o.Off = d.Off
	}
	return o
}

// fillBinaryRGBA converts cells into RGBA pixels in buf.
func fillBinaryRGBA(buf []byte, cells []automaton.Cell, on, off color.Color) {
	rOn, gOn, bOn, aOn := on.RGBA()
	rOff, gOff, bOff, aOff := off.RGBA()
	for i, c := range cells {
		base := i * 4
		if c == automaton.Alive {
			buf[base+0] = uint8(rOn >> 8)
			buf[base+1] = uint8(gOn >> 8)
			buf[base+2] = uint8(bOn >> 8)
			buf[base+3] = uint8(aOn >> 8)
			continue
		}
		buf[base+0] = uint8(rOff >> 8)
		buf[base+1] = uint8(gOff >> 8)
		buf[base+2] = uint8(bOff >> 8)
		buf[base+3] = uint8(aOff >> 8)
	}
}
