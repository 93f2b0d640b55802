package layout

// penalty returns an upper-bound estimate of the additional layout penalty
// from placing the token at state.Consumed with the given newline decision
// and everything after it optimally, per spec.md §4.3's penalty(state,
// newline, stopAt). stopAt is an alpha-cutoff: once the true result is
// provably >= stopAt, inf is returned without exploring further.
func (e *Engine) penalty(s state, newline bool, stopAt int) int {
	if s.Consumed >= len(e.toks) {
		return 0
	}

	i := s.Consumed
	ann := e.anns[i]
	if !newline && ann.MustBreakBefore {
		return inf
	}
	if newline && !ann.CanBreakBefore {
		return inf
	}

	current := 0
	if newline {
		current = penaltyIndentLevel*s.depth() + e.splitPenalty(i-1)
	}

	next := e.place(s, newline, i, nil)
	if e.st.ColumnLimit > 0 && next.Column > e.st.ColumnLimit {
		return inf
	}
	if stopAt <= current {
		return inf
	}
	stopAt -= current

	key := next.key()
	if entry, ok := e.memo[key]; ok {
		if entry.valid {
			return addPenalty(entry.result, current)
		}
		if stopAt <= entry.stopAt {
			return inf
		}
	}

	noBreak := e.penalty(next, false, stopAt)
	withBreak := e.penalty(next, true, min(stopAt, noBreak))
	result := min(noBreak, withBreak)

	e.memo[key] = memoEntry{result: result, stopAt: stopAt, valid: result < inf}

	return addPenalty(result, current)
}

// addPenalty saturates at inf instead of overflowing.
func addPenalty(a, b int) int {
	if a >= inf {
		return inf
	}
	sum := a + b
	if sum >= inf {
		return inf
	}
	return sum
}
