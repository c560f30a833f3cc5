// Package prefilter provides fast candidate-position filtering for
// regexlite's search driver.
//
// A Prefilter narrows an unanchored search to positions that could
// possibly start a match, so the backtracker in internal/program only
// runs where it has a chance of succeeding. Finding a candidate position
// never implies a match: the caller must still verify with the full
// program, except where IsComplete reports the prefilter's own match is
// already exact.
package prefilter

import "github.com/gophercore/regexlite/literal"

// Prefilter finds candidate start positions for a match.
type Prefilter interface {
	// Find returns the index of the first candidate at or after start,
	// or -1 if none exists in haystack[start:].
	Find(haystack []byte, start int) int

	// IsComplete reports whether a Find hit is itself a full match of the
	// required length, letting the caller skip verification.
	IsComplete() bool

	// Len returns the match length implied by a Find hit when IsComplete
	// is true, or 0 otherwise.
	Len() int
}

// Build selects a Prefilter for the given required leading byte set, or
// returns nil if no prefix info was extracted (the caller should search
// exhaustively in that case).
//
// A single required byte uses a direct byte scan (bytePrefilter). A small
// set of required bytes (e.g. the expansion of a leading character class
// like [A-Fa-f0-9]) uses an Aho-Corasick automaton over the single-byte
// alternatives, the same "verify after candidate" shape the teacher corpus
// uses for large literal alternations, applied here to a class's byte
// members instead of a pattern's alternation branches.
func Build(prefix literal.Prefix) Prefilter {
	switch {
	case !prefix.Exact || len(prefix.Set) == 0:
		return nil
	case len(prefix.Set) == 1:
		return &bytePrefilter{b: prefix.Set[0], complete: prefix.Complete}
	default:
		if pf, err := newClassAutomaton(prefix.Set, prefix.Complete); err == nil {
			return pf
		}
		return &setPrefilter{set: toMembership(prefix.Set), complete: prefix.Complete}
	}
}

// bytePrefilter finds the next occurrence of a single required byte.
type bytePrefilter struct {
	b        byte
	complete bool
}

func (p *bytePrefilter) Find(haystack []byte, start int) int {
	return memchr(haystack, start, p.b)
}

func (p *bytePrefilter) IsComplete() bool { return p.complete }
func (p *bytePrefilter) Len() int {
	if p.complete {
		return 1
	}
	return 0
}

// setPrefilter is the membership-table fallback used when the
// Aho-Corasick automaton can't be built (e.g. a pathological class whose
// expansion the automaton builder rejects).
type setPrefilter struct {
	set      [256]bool
	complete bool
}

func (p *setPrefilter) Find(haystack []byte, start int) int {
	for i := start; i < len(haystack); i++ {
		if p.set[haystack[i]] {
			return i
		}
	}
	return -1
}

func (p *setPrefilter) IsComplete() bool { return p.complete }
func (p *setPrefilter) Len() int {
	if p.complete {
		return 1
	}
	return 0
}

func toMembership(set []byte) [256]bool {
	var m [256]bool
	for _, b := range set {
		m[b] = true
	}
	return m
}
