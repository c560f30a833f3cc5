// Package regexlite implements a small, self-contained regular-expression
// engine for embedding in applications that want regex matching without a
// heavyweight dependency.
//
// The dialect is deliberately restricted rather than POSIX/PCRE complete:
// literals, the anchors ^ and $, '.', escaped predicates (\s \S \d \D \w
// \W \R \b \B), character classes (including ranges and inversion), and
// quantifiers (? * + {m} {m,} {m,n}) with optional laziness (trailing ?)
// and atomic/possessive matching (trailing +). There is no alternation,
// no grouping, no backreferences, and no lookaround.
//
// Basic usage:
//
//	re, err := regexlite.Compile(`\d{3}-\d{4}`)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if re.MatchString("call 555-1234 now") {
//	    fmt.Println(re.FindString("call 555-1234 now")) // "555-1234"
//	}
package regexlite

import (
	"github.com/gophercore/regexlite/internal/program"
	"github.com/gophercore/regexlite/internal/search"
)

// Config controls the static resource limits and prefilter use of a
// compiled Regex. See search.Config for field documentation; this is an
// alias so callers never need to import the internal package.
type Config = search.Config

// DefaultConfig returns regexlite's default compilation limits.
func DefaultConfig() Config {
	return search.DefaultConfig()
}

// Sentinel errors from the compiler, re-exported so callers can use
// errors.Is without reaching into internal/program.
var (
	// ErrInvalidPattern indicates a malformed pattern.
	ErrInvalidPattern = program.ErrInvalidPattern
	// ErrProgramOverflow indicates the compiled program would exceed its
	// configured token or class-buffer capacity.
	ErrProgramOverflow = program.ErrProgramOverflow
)

// Regex is a compiled regular expression.
//
// A Regex is immutable after Compile returns and safe for concurrent use
// by multiple goroutines.
type Regex struct {
	engine *search.Engine
}

// Compile compiles pattern using DefaultConfig.
//
// Example:
//
//	re, err := regexlite.Compile(`[A-Fa-f0-9]+`)
func Compile(pattern string) (*Regex, error) {
	return CompileWithConfig(pattern, DefaultConfig())
}

// MustCompile compiles pattern and panics on error. Intended for patterns
// known to be valid at init time.
func MustCompile(pattern string) *Regex {
	re, err := Compile(pattern)
	if err != nil {
		panic("regexlite: Compile(" + pattern + "): " + err.Error())
	}
	return re
}

// CompileWithConfig compiles pattern with custom resource limits.
func CompileWithConfig(pattern string, cfg Config) (*Regex, error) {
	engine, err := search.CompileWithConfig(pattern, cfg)
	if err != nil {
		return nil, err
	}
	return &Regex{engine: engine}, nil
}

// Match reports whether b contains any match of the pattern.
func (r *Regex) Match(b []byte) bool {
	return r.engine.IsMatch(b)
}

// MatchString reports whether s contains any match of the pattern.
func (r *Regex) MatchString(s string) bool {
	return r.Match([]byte(s))
}

// Find returns the leftmost match in b, or nil if there is none.
func (r *Regex) Find(b []byte) []byte {
	m := r.engine.Find(b)
	if m == nil {
		return nil
	}
	return b[m.Start:m.End]
}

// FindString returns the leftmost match in s, or "" if there is none.
func (r *Regex) FindString(s string) string {
	m := r.engine.Find([]byte(s))
	if m == nil {
		return ""
	}
	return s[m.Start:m.End]
}

// FindIndex returns a two-element slice [start, end) for the leftmost
// match in b, or nil if there is none.
func (r *Regex) FindIndex(b []byte) []int {
	m := r.engine.Find(b)
	if m == nil {
		return nil
	}
	return []int{m.Start, m.End}
}

// FindStringIndex is FindIndex for a string argument.
func (r *Regex) FindStringIndex(s string) []int {
	return r.FindIndex([]byte(s))
}

// FindAll returns every non-overlapping match in b, or nil if there are
// none.
func (r *Regex) FindAll(b []byte) [][]byte {
	matches := r.engine.FindAll(b)
	if len(matches) == 0 {
		return nil
	}
	out := make([][]byte, len(matches))
	for i, m := range matches {
		out[i] = b[m.Start:m.End]
	}
	return out
}

// FindAllString is FindAll for a string argument.
func (r *Regex) FindAllString(s string) []string {
	matches := r.engine.FindAll([]byte(s))
	if len(matches) == 0 {
		return nil
	}
	out := make([]string, len(matches))
	for i, m := range matches {
		out[i] = s[m.Start:m.End]
	}
	return out
}

// FindAllIndex returns the [start, end) ranges of every non-overlapping
// match in b, or nil if there are none.
func (r *Regex) FindAllIndex(b []byte) [][]int {
	matches := r.engine.FindAll(b)
	if len(matches) == 0 {
		return nil
	}
	out := make([][]int, len(matches))
	for i, m := range matches {
		out[i] = []int{m.Start, m.End}
	}
	return out
}

// MatchAllCount returns the number of non-overlapping matches in b. It is
// equivalent to len(r.FindAllIndex(b)) but does not build the per-match
// [start, end) slices that FindAllIndex returns.
func (r *Regex) MatchAllCount(b []byte) int {
	return r.engine.Count(b)
}

// String reproduces a pattern string equivalent to the compiled program.
// Compiling the result again yields identical match behavior on any
// input, though the text need not be byte-identical to the original
// source pattern (see internal/program's print.go).
func (r *Regex) String() string {
	return r.engine.Program().String()
}
