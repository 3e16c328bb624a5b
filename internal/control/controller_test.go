package control

import (
	"errors"
	"math"
	"strings"
	"testing"
)

type fakeSpeed struct {
	v      float64
	failOn float64
}

func (f *fakeSpeed) Get() float64 { return f.v }
func (f *fakeSpeed) Reset()       { f.v = 1 }
func (f *fakeSpeed) Scale(x float64) error {
	if x == f.failOn {
		return errors.New("rejected")
	}
	f.v *= x
	return nil
}

func TestControllerDefaultBindings(t *testing.T) {
	tests := []struct {
		key    string
		action Action
		speed  float64
	}{
		{"up", SpeedUp, 1.1},
		{"down", SlowDown, 0.9},
		{"right", Double, 2.0},
		{"left", Halve, 0.5},
		{"x", None, 1.0},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			sp := &fakeSpeed{v: 1}
			c := NewController(nil, sp)
			act, err := c.HandleKey(tt.key)
			if err != nil {
				t.Fatalf("HandleKey(%q): %v", tt.key, err)
			}
			if act != tt.action {
				t.Errorf("action = %v, want %v", act, tt.action)
			}
			if math.Abs(sp.v-tt.speed) > 1e-12 {
				t.Errorf("speed = %v, want %v", sp.v, tt.speed)
			}
		})
	}
}

func TestControllerResetAndQuit(t *testing.T) {
	sp := &fakeSpeed{v: 1}
	c := NewController(DefaultKeyMap(), sp)

	c.HandleKey("right")
	c.HandleKey("right")
	if sp.v != 4 {
		t.Fatalf("speed = %v, want 4", sp.v)
	}

	if act, _ := c.HandleKey("r"); act != Reset || sp.v != 1 {
		t.Errorf("reset: action %v, speed %v", act, sp.v)
	}

	for _, k := range []string{"q", "esc", "ctrl+c"} {
		act, err := c.HandleKey(k)
		if act != Quit || err != nil {
			t.Errorf("%q: got %v, %v", k, act, err)
		}
	}
	if sp.v != 1 {
		t.Error("quit changed the speed")
	}
}

func TestControllerPropagatesRejection(t *testing.T) {
	sp := &fakeSpeed{v: 1, failOn: 2.0}
	c := NewController(nil, sp)
	if _, err := c.HandleKey("right"); err == nil {
		t.Error("expected rejected scale to surface")
	}
}

func TestIndependentFactors(t *testing.T) {
	b := DefaultBindings()
	b[SlowDown] = Binding{Keys: []string{"down"}, Factor: 0.75}
	km, err := NewKeyMap(b)
	if err != nil {
		t.Fatalf("NewKeyMap: %v", err)
	}

	sp := &fakeSpeed{v: 1}
	c := NewController(km, sp)
	c.HandleKey("down")
	c.HandleKey("left")
	if math.Abs(sp.v-0.375) > 1e-12 {
		t.Errorf("speed = %v, want 0.375", sp.v)
	}
}

func TestNewKeyMapValidation(t *testing.T) {
	dup := DefaultBindings()
	dup[Halve] = Binding{Keys: []string{"up"}, Factor: 0.5}
	if _, err := NewKeyMap(dup); err == nil || !strings.Contains(err.Error(), `"up"`) {
		t.Errorf("duplicate key: got %v", err)
	}

	bad := DefaultBindings()
	bad[Double] = Binding{Keys: []string{"right"}, Factor: 0}
	if _, err := NewKeyMap(bad); err == nil {
		t.Error("zero factor accepted")
	}

	// Reset and quit carry no factor.
	if _, err := NewKeyMap(map[Action]Binding{Reset: {Keys: []string{"r"}}}); err != nil {
		t.Errorf("reset without factor: %v", err)
	}
}

func TestParseAction(t *testing.T) {
	for _, a := range Actions() {
		got, err := ParseAction(a.String())
		if err != nil || got != a {
			t.Errorf("ParseAction(%q) = %v, %v", a.String(), got, err)
		}
	}
	if _, err := ParseAction("none"); err == nil {
		t.Error("none should not parse")
	}
	if _, err := ParseAction("warp"); err == nil {
		t.Error("unknown action parsed")
	}
}

func TestHelp(t *testing.T) {
	help := DefaultKeyMap().Help()
	if len(help) != len(Actions()) {
		t.Fatalf("help has %d lines: %v", len(help), help)
	}
	if !strings.Contains(help[0], "speed_up") || !strings.Contains(help[0], "x1.1") {
		t.Errorf("first line = %q", help[0])
	}
}
