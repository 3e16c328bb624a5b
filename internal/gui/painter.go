//go:build ebiten

package gui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/san-kum/rule30life/internal/automaton"
)

// GridPainter uploads binary cells into a single image and draws it scaled.
type GridPainter struct {
	w, h int
	img  *ebiten.Image
	buf  []byte
}

func NewGridPainter(w, h int) *GridPainter {
	return &GridPainter{
		w:   w,
		h:   h,
		img: ebiten.NewImage(w, h),
		buf: make([]byte, 4*w*h),
	}
}

func (gp *GridPainter) Blit(dst *ebiten.Image, cells []automaton.Cell, on, off color.Color, scale int) {
	if len(cells) != gp.w*gp.h {
		return
	}
	fillBinaryRGBA(gp.buf, cells, on, off)
	gp.img.WritePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(gp.img, op)
}

func (gp *GridPainter) Size() (int, int) { return gp.w, gp.h }
