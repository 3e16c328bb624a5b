// Package automaton implements the one-dimensional half of the simulator:
// binary cells, Rule 30 row generation with wraparound neighbours, and the
// fixed-size sliding window of recent rows ([LineBuffer]).
//
// # Example
//
//	lines, _ := automaton.NewLineBuffer(80, 40)
//	row := lines.Step() // oldest row leaves the window
//
// # Thread Safety
//
// Nothing in this package is safe for concurrent use. [NextRow] is pure and
// may be called from anywhere; a [LineBuffer] must be owned by one goroutine
// or guarded by the caller.
package automaton
