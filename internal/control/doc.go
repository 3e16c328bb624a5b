// Package control turns key presses into speed-multiplier changes.
//
// Every [Action] is bound independently: its own key list and its own factor,
// so speed-up, slow-down, double and halve never share configuration.
//
//   - [SpeedUp]: multiply by 1.1
//   - [SlowDown]: multiply by 0.9
//   - [Double]: multiply by 2.0
//   - [Halve]: multiply by 0.5
//   - [Reset]: set to 1.0
//   - [Quit]: ask the caller to shut down
//
// # Usage
//
//	ctrl := control.NewController(control.DefaultKeyMap(), h.Speed())
//	if act, _ := ctrl.HandleKey("up"); act == control.Quit { ... }
//
// Key names follow bubbletea's KeyMsg.String() spelling ("up", "ctrl+c").
package control
