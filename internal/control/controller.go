package control

import (
	"io"

	"github.com/charmbracelet/log"
)

// SpeedSetter is the part of the shared speed multiplier a controller drives.
type SpeedSetter interface {
	Get() float64
	Scale(f float64) error
	Reset()
}

// Controller applies key presses to a speed multiplier.
type Controller struct {
	keys   *KeyMap
	speed  SpeedSetter
	logger *log.Logger
}

func NewController(keys *KeyMap, speed SpeedSetter) *Controller {
	if keys == nil {
		keys = DefaultKeyMap()
	}
	return &Controller{keys: keys, speed: speed, logger: log.New(io.Discard)}
}

// SetLogger routes speed-change diagnostics to l.
func (c *Controller) SetLogger(l *log.Logger) {
	if l != nil {
		c.logger = l
	}
}

func (c *Controller) KeyMap() *KeyMap { return c.keys }

// HandleKey applies the action bound to key. Unbound keys return None. Quit is
// returned to the caller, which owns shutdown.
func (c *Controller) HandleKey(key string) (Action, error) {
	a, ok := c.keys.Lookup(key)
	if !ok {
		return None, nil
	}
	return a, c.Apply(a)
}

func (c *Controller) Apply(a Action) error {
	switch {
	case a.Scales():
		b, _ := c.keys.Binding(a)
		if err := c.speed.Scale(b.Factor); err != nil {
			c.logger.Warn("speed change rejected", "action", a, "err", err)
			return err
		}
	case a == Reset:
		c.speed.Reset()
	default:
		return nil
	}
	c.logger.Debug("speed changed", "action", a, "speed", c.speed.Get())
	return nil
}
