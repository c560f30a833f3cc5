package program

// Match returns the length of a match of prog starting exactly at text[at],
// or ok=false if no match starts there. A zero-length match is a success.
func Match(prog *Program, text []byte, at int) (length int, ok bool) {
	m := matcher{prog: prog, text: text}
	end, matched := m.matchHere(0, at)
	if !matched {
		return 0, false
	}
	return end - at, true
}

type matcher struct {
	prog *Program
	text []byte
}

// matchHere interprets the program starting at token idx and text position
// i, returning the absolute end position of a full match of the remaining
// program, or ok=false.
//
// Each token is either consumed by the iterative fast path (fixed count or
// atomic: Phase 1) or handed to the backtracking path (flexible,
// non-atomic: Phase 2). Either way, matchHere recurses into idx+1 for the
// rest of the program, so a program with several flexible tokens simply
// backtracks one token at a time via the call stack.
func (m *matcher) matchHere(idx, i int) (int, bool) {
	tok := m.prog.Tokens[idx]

	if tok.Kind == End {
		return i, true
	}

	if tok.Qmin == tok.Qmax || tok.Atomic {
		return m.matchFixedOrAtomic(tok, idx, i)
	}
	return m.matchBacktrack(tok, idx, i)
}

// matchFixedOrAtomic consumes tok iteratively: up to Qmax repetitions if
// greedy, exactly Qmin if lazy. Atomic tokens never relinquish what they
// matched here, even if the rest of the program subsequently fails: the
// caller gets exactly one chance at idx+1, not a sequence of shrinking
// alternatives.
func (m *matcher) matchFixedOrAtomic(tok Token, idx, i int) (int, bool) {
	target := tok.Qmax
	if !tok.Greedy {
		target = tok.Qmin
	}

	count := 0
	for count < int(target) {
		n, ok := m.matchAtom(tok, i)
		if !ok {
			break
		}
		i += n
		count++
		if n == 0 {
			// Zero-width atom: further repetitions change nothing.
			count = int(target)
			break
		}
	}

	if count < int(tok.Qmin) {
		return 0, false
	}
	return m.matchHere(idx+1, i)
}

// matchBacktrack handles a flexible (Qmin != Qmax), non-atomic token by
// trying repetition counts from the preferred end of [Qmin, Qmax] inward,
// recursing into the remainder of the program at each count and backing
// off toward the other bound on failure.
func (m *matcher) matchBacktrack(tok Token, idx, i int) (int, bool) {
	if tok.Greedy {
		return m.matchBacktrackGreedy(tok, idx, i)
	}
	return m.matchBacktrackLazy(tok, idx, i)
}

func (m *matcher) matchBacktrackGreedy(tok Token, idx, i int) (int, bool) {
	pos := i
	reps := make([]int, 1, 8)
	reps[0] = i

	for count := 0; count < int(tok.Qmax); count++ {
		n, ok := m.matchAtom(tok, pos)
		if !ok {
			break
		}
		pos += n
		reps = append(reps, pos)
		if n == 0 {
			break
		}
	}

	maxCount := len(reps) - 1
	if maxCount < int(tok.Qmin) {
		return 0, false
	}

	for count := maxCount; count >= int(tok.Qmin); count-- {
		if end, ok := m.matchHere(idx+1, reps[count]); ok {
			return end, true
		}
	}
	return 0, false
}

func (m *matcher) matchBacktrackLazy(tok Token, idx, i int) (int, bool) {
	pos := i
	count := 0

	for {
		if count >= int(tok.Qmin) {
			if end, ok := m.matchHere(idx+1, pos); ok {
				return end, true
			}
		}
		if count >= int(tok.Qmax) {
			return 0, false
		}
		n, ok := m.matchAtom(tok, pos)
		if !ok {
			return 0, false
		}
		pos += n
		count++
		if n == 0 && count > int(tok.Qmin) {
			return 0, false
		}
	}
}

// matchAtom matches a single repetition of tok's atom at text position i.
func (m *matcher) matchAtom(tok Token, i int) (n int, ok bool) {
	switch tok.Kind {
	case Literal:
		if i < len(m.text) && m.text[i] == tok.Ch {
			return 1, true
		}
		return 0, false

	case Predicate:
		ok, n := escapeTable[tok.Meta].fn(m.text, i)
		return n, ok

	case Metachar:
		ok, n := metaTable[tok.Meta].fn(m.text, i)
		return n, ok

	case Class:
		if i < len(m.text) && m.classMatches(tok, i) {
			return 1, true
		}
		return 0, false

	case InvClass:
		if i < len(m.text) && !m.classMatches(tok, i) {
			return 1, true
		}
		return 0, false
	}
	return 0, false
}

// classMatches reports whether any ClassChar in tok's run matches text[i].
func (m *matcher) classMatches(tok Token, i int) bool {
	for _, cc := range m.prog.classOf(tok) {
		switch cc.Kind {
		case RangeChar:
			if m.text[i] >= cc.First && m.text[i] <= cc.Last {
				return true
			}
		case PredicateChar:
			if ok, _ := escapeTable[cc.Meta].fn(m.text, i); ok {
				return true
			}
		}
	}
	return false
}
