// Package sim couples the Rule 30 line buffer with the Game of Life grid.
//
// Each [Simulation.Step] takes the oldest row out of the Rule 30 window,
// injects it as the bottom row of the Life grid and then advances the grid by
// one generation. Renderers never touch a Simulation directly; they receive a
// [Snapshot] copied out under the owner's lock.
//
// # Thread Safety
//
// Simulation instances are NOT thread-safe. The harness package owns one and
// serialises every Step and Snapshot behind a mutex.
package sim
