package layout

import (
	"strconv"
	"strings"
)

// inf is the layout search's infinity sentinel. Kept well below the
// int-overflow boundary so two inf-adjacent values can still be added
// without wrapping.
const inf = 1 << 30

// state is one node of the layout search: the current output column, how
// many tokens have been placed, and three depth-indexed stacks tracking
// indent bookkeeping for the currently open bracket/angle/paren nesting.
// Depth is always len(Indent)-1 — the three stacks grow and shrink together.
type state struct {
	Column        int
	Consumed      int
	Indent        []int
	LastSpace     []int
	FirstLessLess []int
}

func (s state) depth() int {
	return len(s.Indent) - 1
}

// clone returns a deep copy so the caller can mutate the stacks without
// aliasing the original — the search explores many branches from the same
// parent state.
func (s state) clone() state {
	return state{
		Column:        s.Column,
		Consumed:      s.Consumed,
		Indent:        append([]int(nil), s.Indent...),
		LastSpace:     append([]int(nil), s.LastSpace...),
		FirstLessLess: append([]int(nil), s.FirstLessLess...),
	}
}

// key renders s as a memo-table key. Two states with equal fields (stacks
// compared element-wise) must render identically; any encoding that
// preserves that is fine, since the memo only needs equality, not order.
func (s state) key() string {
	var b strings.Builder
	writeInt(&b, s.Column)
	b.WriteByte(';')
	writeInt(&b, s.Consumed)
	b.WriteByte(';')
	writeInts(&b, s.Indent)
	b.WriteByte(';')
	writeInts(&b, s.LastSpace)
	b.WriteByte(';')
	writeInts(&b, s.FirstLessLess)
	return b.String()
}

func writeInts(b *strings.Builder, xs []int) {
	for i, x := range xs {
		if i > 0 {
			b.WriteByte(',')
		}
		writeInt(b, x)
	}
}

func writeInt(b *strings.Builder, x int) {
	b.WriteString(strconv.Itoa(x))
}
