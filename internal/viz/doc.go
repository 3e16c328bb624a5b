// Package viz renders a running simulation in the terminal with Bubble Tea.
//
// The grid is drawn on a braille [Canvas], one dot per cell, so a 160x96
// simulation fits in 80x24 characters. The Life half is drawn on top in the
// theme's primary colour and the Rule 30 window below it.
//
// # Key Bindings
//
// Speed keys come from the configured key map. The defaults are
//
//	Up/K/+     - Speed up (x1.1)
//	Down/J/-   - Slow down (x0.9)
//	Right/L    - Double speed
//	Left/H     - Halve speed
//	R          - Reset speed to 1
//	Q/Esc      - Quit
//
// T cycles colour themes and ? toggles the key help.
package viz
