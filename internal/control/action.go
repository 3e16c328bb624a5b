package control

import "fmt"

type Action int

const (
	None Action = iota
	SpeedUp
	SlowDown
	Double
	Halve
	Reset
	Quit
)

var actionNames = map[Action]string{
	None:     "none",
	SpeedUp:  "speed_up",
	SlowDown: "slow_down",
	Double:   "double",
	Halve:    "halve",
	Reset:    "reset",
	Quit:     "quit",
}

// Actions lists every bindable action in display order.
func Actions() []Action {
	return []Action{SpeedUp, SlowDown, Double, Halve, Reset, Quit}
}

func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return fmt.Sprintf("action(%d)", int(a))
}

// Scales reports whether the action multiplies the speed by a factor.
func (a Action) Scales() bool {
	return a == SpeedUp || a == SlowDown || a == Double || a == Halve
}

func ParseAction(s string) (Action, error) {
	for a, name := range actionNames {
		if name == s && a != None {
			return a, nil
		}
	}
	return None, fmt.Errorf("unknown action: %s", s)
}
