package search

import (
	"github.com/gophercore/regexlite/internal/program"
	"github.com/gophercore/regexlite/literal"
	"github.com/gophercore/regexlite/prefilter"
)

// Match is a single successful search result: the haystack byte range
// [Start, End).
type Match struct {
	Start, End int
}

// Engine pairs a compiled Program with its (optional) prefilter. It is
// immutable after Compile and safe for concurrent use by multiple
// goroutines, since matching allocates no shared mutable state.
type Engine struct {
	prog *program.Program
	pf   prefilter.Prefilter
}

// Compile builds an Engine from pattern using DefaultConfig.
func Compile(pattern string) (*Engine, error) {
	return CompileWithConfig(pattern, DefaultConfig())
}

// CompileWithConfig builds an Engine from pattern with custom limits.
func CompileWithConfig(pattern string, cfg Config) (*Engine, error) {
	prog, err := program.Compile(pattern, cfg.MaxTokens, cfg.MaxClassChars)
	if err != nil {
		return nil, err
	}

	e := &Engine{prog: prog}
	if cfg.EnablePrefilter {
		e.pf = prefilter.Build(literal.ExtractPrefix(prog))
	}
	return e, nil
}

// Program exposes the compiled program, for Regex.String's reconstruction.
func (e *Engine) Program() *program.Program {
	return e.prog
}

// IsMatch reports whether haystack contains any match.
func (e *Engine) IsMatch(haystack []byte) bool {
	return e.findAt(haystack, 0) != nil
}

// IsMatchAt reports whether a match starts exactly at position at.
func (e *Engine) IsMatchAt(haystack []byte, at int) bool {
	_, ok := program.Match(e.prog, haystack, at)
	return ok
}

// Find returns the first match in haystack, or nil.
func (e *Engine) Find(haystack []byte) *Match {
	return e.findAt(haystack, 0)
}

// findAt tries successive start positions from at through len(haystack)
// inclusive, using the prefilter (when present) to skip positions that
// cannot start a match. When the prefilter itself reports IsComplete, a
// Find hit already is the match and the backtracker never runs, the same
// skip-verification shortcut meta/find.go takes for a complete literal
// prefilter.
func (e *Engine) findAt(haystack []byte, at int) *Match {
	i := at
	for i <= len(haystack) {
		if e.pf != nil {
			cand := e.pf.Find(haystack, i)
			if cand < 0 {
				return nil
			}
			i = cand
			if e.pf.IsComplete() {
				return &Match{Start: i, End: i + e.pf.Len()}
			}
		}

		if length, ok := program.Match(e.prog, haystack, i); ok {
			return &Match{Start: i, End: i + length}
		}
		i++
	}
	return nil
}

// FindAll returns every non-overlapping match in haystack, in order. A
// zero-length match advances the next search position by one byte so the
// search always terminates.
func (e *Engine) FindAll(haystack []byte) []Match {
	var matches []Match
	pos := 0
	for pos <= len(haystack) {
		m := e.findAt(haystack, pos)
		if m == nil {
			break
		}
		matches = append(matches, *m)
		if m.End > pos {
			pos = m.End
		} else {
			pos++
		}
	}
	return matches
}

// Count returns the number of non-overlapping matches in haystack.
func (e *Engine) Count(haystack []byte) int {
	return len(e.FindAll(haystack))
}
