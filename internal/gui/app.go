//go:build ebiten

package gui

import (
	"context"
	"errors"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/san-kum/rule30life/internal/automaton"
	"github.com/san-kum/rule30life/internal/control"
	"github.com/san-kum/rule30life/internal/harness"
	"github.com/san-kum/rule30life/internal/sim"
)

// keyNames maps window keys to the names used by key maps. Letters are
// handled by keyName.
var keyNames = map[ebiten.Key]string{
	ebiten.KeyArrowUp:        "up",
	ebiten.KeyArrowDown:      "down",
	ebiten.KeyArrowLeft:      "left",
	ebiten.KeyArrowRight:     "right",
	ebiten.KeyEscape:         "esc",
	ebiten.KeySpace:          " ",
	ebiten.KeyEqual:          "+",
	ebiten.KeyNumpadAdd:      "+",
	ebiten.KeyMinus:          "-",
	ebiten.KeyNumpadSubtract: "-",
}

func keyName(k ebiten.Key) (string, bool) {
	if name, ok := keyNames[k]; ok {
		return name, true
	}
	if s := k.String(); len(s) == 1 && s[0] >= 'A' && s[0] <= 'Z' {
		return strings.ToLower(s), true
	}
	return "", false
}

// Game reads snapshots from a harness and feeds key presses to a controller.
// Ticking happens on the harness goroutine, never in Update.
type Game struct {
	h       *harness.Harness
	ctrl    *control.Controller
	painter *GridPainter
	opts    Options

	snap  sim.Snapshot
	frame []automaton.Cell
	keys  []ebiten.Key
}

func NewGame(h *harness.Harness, ctrl *control.Controller, opts Options) *Game {
	g := &Game{
		h:       h,
		ctrl:    ctrl,
		painter: NewGridPainter(h.Width(), h.Height()),
		opts:    opts.withDefaults(),
	}
	g.refresh()
	return g
}

func (g *Game) refresh() {
	g.h.SnapshotInto(&g.snap)
	g.frame = g.snap.Composite(g.frame)
}

func (g *Game) Update() error {
	g.keys = inpututil.AppendJustPressedKeys(g.keys[:0])
	ctrlHeld := ebiten.IsKeyPressed(ebiten.KeyControl)
	for _, k := range g.keys {
		name, ok := keyName(k)
		if !ok {
			continue
		}
		if ctrlHeld {
			name = "ctrl+" + name
		}
		a, _ := g.ctrl.HandleKey(name)
		if a == control.Quit {
			return ebiten.Termination
		}
	}
	g.refresh()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.frame, g.opts.On, g.opts.Off, g.opts.Scale)
}

func (g *Game) Layout(int, int) (int, int) {
	w, h := g.painter.Size()
	return w * g.opts.Scale, h * g.opts.Scale
}

// Run opens the window, starts the harness and blocks until the window is
// closed or a quit key is pressed. The harness is stopped before returning.
func Run(ctx context.Context, h *harness.Harness, ctrl *control.Controller, opts Options) error {
	g := NewGame(h, ctrl, opts)
	w, ht := g.Layout(0, 0)
	ebiten.SetWindowTitle(g.opts.Title)
	ebiten.SetWindowSize(w, ht)
	if g.opts.FPS > 0 {
		ebiten.SetTPS(g.opts.FPS)
	}

	h.Start(ctx)
	err := ebiten.RunGame(g)
	stopErr := h.Stop()
	if err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return stopErr
}
