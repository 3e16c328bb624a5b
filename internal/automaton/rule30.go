package automaton

// Rule is the Wolfram code of the elementary automaton driving the simulator.
const Rule = 30

// NextRow computes the Rule 30 successor of row. Neighbour lookup wraps around
// the row ends, so index 0 sees index len-1 on its left and vice versa.
func NextRow(row Row) Row {
	w := len(row)
	next := make(Row, w)
	for i := 0; i < w; i++ {
		left := row[w-1]
		if i > 0 {
			left = row[i-1]
		}
		right := row[(i+1)%w]
		code := (left&1)<<2 | (row[i]&1)<<1 | right&1
		next[i] = (Cell(Rule) >> code) & 1
	}
	return next
}
