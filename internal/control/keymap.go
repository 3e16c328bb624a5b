package control

import (
	"fmt"
	"sort"
	"strings"
)

// Binding is the configuration of one action.
type Binding struct {
	Keys   []string
	Factor float64
}

// KeyMap resolves key names to actions.
type KeyMap struct {
	bindings map[Action]Binding
	keys     map[string]Action
}

// DefaultBindings returns the stock bindings. Left halves the speed instead of
// repeating the slow-down factor.
func DefaultBindings() map[Action]Binding {
	return map[Action]Binding{
		SpeedUp:  {Keys: []string{"up", "k", "+"}, Factor: 1.1},
		SlowDown: {Keys: []string{"down", "j", "-"}, Factor: 0.9},
		Double:   {Keys: []string{"right", "l"}, Factor: 2.0},
		Halve:    {Keys: []string{"left", "h"}, Factor: 0.5},
		Reset:    {Keys: []string{"r"}},
		Quit:     {Keys: []string{"q", "esc", "ctrl+c"}},
	}
}

func DefaultKeyMap() *KeyMap {
	km, err := NewKeyMap(DefaultBindings())
	if err != nil {
		panic(err)
	}
	return km
}

// NewKeyMap validates bindings: scaling actions need a positive factor and a
// key may only trigger one action.
func NewKeyMap(bindings map[Action]Binding) (*KeyMap, error) {
	km := &KeyMap{
		bindings: make(map[Action]Binding, len(bindings)),
		keys:     make(map[string]Action),
	}
	for _, a := range Actions() {
		b, ok := bindings[a]
		if !ok {
			continue
		}
		if a.Scales() && b.Factor <= 0 {
			return nil, fmt.Errorf("%s: factor must be positive, got %v", a, b.Factor)
		}
		for _, k := range b.Keys {
			k = strings.TrimSpace(k)
			if k == "" {
				continue
			}
			if prev, dup := km.keys[k]; dup {
				return nil, fmt.Errorf("key %q bound to both %s and %s", k, prev, a)
			}
			km.keys[k] = a
		}
		km.bindings[a] = Binding{Keys: append([]string(nil), b.Keys...), Factor: b.Factor}
	}
	return km, nil
}

func (k *KeyMap) Lookup(key string) (Action, bool) {
	a, ok := k.keys[key]
	return a, ok
}

func (k *KeyMap) Binding(a Action) (Binding, bool) {
	b, ok := k.bindings[a]
	return b, ok
}

// Help returns one "keys: action" line per bound action.
func (k *KeyMap) Help() []string {
	lines := make([]string, 0, len(k.bindings))
	for _, a := range Actions() {
		b, ok := k.bindings[a]
		if !ok || len(b.Keys) == 0 {
			continue
		}
		keys := append([]string(nil), b.Keys...)
		sort.Strings(keys)
		label := a.String()
		if a.Scales() {
			label = fmt.Sprintf("%s (x%.2g)", a, b.Factor)
		}
		lines = append(lines, fmt.Sprintf("%s: %s", strings.Join(keys, "/"), label))
	}
	return lines
}
