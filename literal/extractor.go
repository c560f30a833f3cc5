// Package literal extracts a required leading byte set from a compiled
// regexlite program, for use as a search prefilter.
//
// Unlike a full regex engine with alternation, a regexlite program has no
// branches: its leading run of fixed-count (Qmin == Qmax == 1), non-atomic
// tokens is unconditionally required by every match, which makes "what
// must the first byte(s) be" a direct walk of the token array rather than
// the alternation-aware AST traversal a general extractor needs.
package literal

import "github.com/gophercore/regexlite/internal/program"

// Prefix describes the set of bytes a match may begin with, extracted
// from a program's first token.
//
// Exact is true when every byte in Set is a genuine candidate and the
// token consumes exactly one byte on success (a literal, or a class whose
// members are all ranges and expand to between 1 and 64 bytes) — i.e. the
// set is usable as a hard pre-match filter, not just a hint. Exact is
// false when the first token is optional, zero-width (an anchor or
// boundary predicate), a predicate, `.`, or an inverted class, in which
// case Set is empty and no useful prefilter exists.
//
// Complete is true when finding one of Set's bytes doesn't just filter a
// candidate position, it *is* the entire match: the program consists of
// that one token (required exactly once) followed immediately by End. A
// prefilter built from a Complete Prefix can report a match without the
// caller re-running the full program. Complete is always false when Exact
// is false.
type Prefix struct {
	Set      []byte
	Exact    bool
	Complete bool
}

// ExtractPrefix computes the Prefix for prog, or the zero Prefix if the
// program is empty or its first token cannot usefully narrow a search.
func ExtractPrefix(prog *program.Program) Prefix {
	if prog.NumTokens == 0 {
		return Prefix{}
	}
	tok := prog.Tokens[0]
	if tok.Kind == program.End {
		return Prefix{}
	}
	if tok.Qmin == 0 {
		// Optional leading atom: a match may begin with whatever follows
		// it instead, so no single required byte set exists.
		return Prefix{}
	}

	// The prefilter's hit is the whole match only if this token is the
	// program's sole atom, matched exactly once: tok consumes one byte
	// and the very next token is End.
	complete := tok.Qmin == 1 && tok.Qmax == 1 && prog.NumTokens == 2

	switch tok.Kind {
	case program.Literal:
		return Prefix{Set: []byte{tok.Ch}, Exact: true, Complete: complete}

	case program.Class:
		set := expandClass(prog, tok)
		if len(set) == 0 || len(set) > 64 {
			return Prefix{}
		}
		return Prefix{Set: set, Exact: true, Complete: complete}

	case program.InvClass:
		// Inverted classes are typically "everything but a few bytes";
		// expanding the complement is rarely a useful filter.
		return Prefix{}

	default:
		// Predicate, Metachar: zero-width (^ \b \B) or not a concrete byte
		// set (\s \d \w . and their negations span too much of the byte
		// range to narrow a search).
		return Prefix{}
	}
}

// expandClass enumerates the concrete bytes a Class token's RangeChar
// members accept. It gives up (returns nil) if the class contains a
// PredicateChar member, since predicates aren't enumerable as a finite
// byte set.
func expandClass(prog *program.Program, tok program.Token) []byte {
	var set []byte
	for _, cc := range prog.Ccl[tok.CclStart : tok.CclStart+tok.CclLen] {
		switch cc.Kind {
		case program.RangeChar:
			for b := int(cc.First); b <= int(cc.Last); b++ {
				set = append(set, byte(b))
			}
		case program.PredicateChar:
			return nil
		}
	}
	return set
}
