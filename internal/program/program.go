// Package program implements the compiled regex program: the token and
// character-class data model (this file), the compiler that builds a
// program from a pattern string (compile.go), the backtracking matcher
// that interprets it against a text (match.go), predicate tables shared
// by both (predicate.go), and the pattern reconstruction used for
// round-tripping a compiled program back to source syntax (print.go).
//
// A Program is immutable once built and safe for concurrent matching: no
// method here mutates a *Program after Compile returns it.
package program

// TokenKind identifies the payload a Token carries.
type TokenKind uint8

const (
	// Literal matches a single fixed byte.
	Literal TokenKind = iota
	// Predicate invokes a backslash-escaped predicate (\s \d \w \R \b ...).
	Predicate
	// Metachar invokes an unescaped metacharacter predicate (^ $ .).
	Metachar
	// Class matches any byte accepted by its ClassChar sequence.
	Class
	// InvClass matches any byte rejected by its ClassChar sequence.
	InvClass
	// End is the program's sentinel terminator.
	End
)

// ClassCharKind identifies the payload a ClassChar carries.
type ClassCharKind uint8

const (
	// RangeChar matches any byte in [First, Last].
	RangeChar ClassCharKind = iota
	// PredicateChar defers to a predicate from the escape table.
	PredicateChar
	// ClassEnd is the sentinel terminating a class's ClassChar run.
	ClassEnd
)

// ClassChar is one member of a compiled character class.
type ClassChar struct {
	Kind        ClassCharKind
	Meta        int // index into the escape predicate table, for PredicateChar
	First, Last byte
}

// Token is one compiled unit of the program: an atom plus its quantifier.
//
// Exactly one of Ch, Meta, or (CclStart, CclLen) is meaningful, chosen by
// Kind. Qmin and Qmax bound the repetition count; Greedy and Atomic select
// how the matcher searches that range.
type Token struct {
	Kind TokenKind

	Ch   byte // Literal
	Meta int  // Predicate / Metachar: index into the owning table

	CclStart, CclLen int // Class / InvClass: run within Program.Ccl

	Qmin, Qmax uint16
	Greedy     bool
	Atomic     bool
}

// Program is a compiled pattern: a fixed-capacity token array terminated
// by an End token, plus the character-class buffer those tokens reference.
//
// A Program holds no reference to the pattern string it was compiled from;
// once Compile returns successfully the source text is no longer needed
// (see Program.String for reconstructing an equivalent pattern from the
// compiled form alone).
type Program struct {
	Tokens []Token // Tokens[NumTokens-1] is always an End token
	Ccl    []ClassChar

	NumTokens int
	NumCcl    int
}

// newProgram allocates a Program with the given fixed capacities.
func newProgram(maxTokens, maxClassChars int) *Program {
	return &Program{
		Tokens: make([]Token, maxTokens),
		Ccl:    make([]ClassChar, maxClassChars),
	}
}

// classOf returns the ClassChar run belonging to tok.
func (p *Program) classOf(tok Token) []ClassChar {
	return p.Ccl[tok.CclStart : tok.CclStart+tok.CclLen]
}
