package program

import (
	"errors"
	"testing"
)

func mustCompile(t *testing.T, pattern string) *Program {
	t.Helper()
	prog, err := Compile(pattern, 256, 256)
	if err != nil {
		t.Fatalf("Compile(%q): %v", pattern, err)
	}
	return prog
}

func TestCompileEmptyPattern(t *testing.T) {
	prog := mustCompile(t, "")
	if prog.NumTokens != 1 || prog.Tokens[0].Kind != End {
		t.Fatalf("expected a single End token, got %+v", prog.Tokens[:prog.NumTokens])
	}
}

func TestCompileLiteral(t *testing.T) {
	prog := mustCompile(t, "a")
	if prog.NumTokens != 2 {
		t.Fatalf("expected 2 tokens, got %d", prog.NumTokens)
	}
	tok := prog.Tokens[0]
	if tok.Kind != Literal || tok.Ch != 'a' || tok.Qmin != 1 || tok.Qmax != 1 || !tok.Greedy {
		t.Fatalf("unexpected token: %+v", tok)
	}
}

func TestCompileEscapePredicate(t *testing.T) {
	for _, esc := range []byte("sSdDwWRbB") {
		pat := string([]byte{'\\', esc})
		prog := mustCompile(t, pat)
		tok := prog.Tokens[0]
		if tok.Kind != Predicate {
			t.Fatalf("%q: expected Predicate token, got %+v", pat, tok)
		}
		if escapeTable[tok.Meta].name != esc {
			t.Fatalf("%q: wrong predicate index", pat)
		}
	}
}

func TestCompileEscapeLiteral(t *testing.T) {
	prog := mustCompile(t, `\.`)
	tok := prog.Tokens[0]
	if tok.Kind != Literal || tok.Ch != '.' {
		t.Fatalf("expected escaped literal '.', got %+v", tok)
	}
}

func TestCompileTrailingBackslashInvalid(t *testing.T) {
	_, err := Compile(`a\`, 256, 256)
	if !errors.Is(err, ErrInvalidPattern) {
		t.Fatalf("expected ErrInvalidPattern, got %v", err)
	}
}

func TestCompileMetachars(t *testing.T) {
	prog := mustCompile(t, "^.$")
	if prog.NumTokens != 4 {
		t.Fatalf("expected 4 tokens, got %d", prog.NumTokens)
	}
	for i, want := range []byte("^.$") {
		tok := prog.Tokens[i]
		if tok.Kind != Metachar || metaTable[tok.Meta].name != want {
			t.Fatalf("token %d: expected metachar %q, got %+v", i, want, tok)
		}
	}
}

func TestCompileClass(t *testing.T) {
	prog := mustCompile(t, "[A-Fa-f0-9]")
	tok := prog.Tokens[0]
	if tok.Kind != Class {
		t.Fatalf("expected Class token, got %+v", tok)
	}
	ccl := prog.classOf(tok)
	if len(ccl) != 4 { // 3 ranges + CCL_END
		t.Fatalf("expected 4 class chars, got %d: %+v", len(ccl), ccl)
	}
	if ccl[3].Kind != ClassEnd {
		t.Fatalf("expected trailing ClassEnd, got %+v", ccl[3])
	}
}

func TestCompileInvertedClass(t *testing.T) {
	prog := mustCompile(t, "[^abc]")
	if prog.Tokens[0].Kind != InvClass {
		t.Fatalf("expected InvClass token, got %+v", prog.Tokens[0])
	}
}

func TestCompileEmptyClass(t *testing.T) {
	prog := mustCompile(t, "[]")
	tok := prog.Tokens[0]
	if tok.Kind != Class || tok.CclLen != 1 {
		t.Fatalf("expected empty class (just CCL_END), got %+v", tok)
	}
}

func TestCompileUnclosedClassInvalid(t *testing.T) {
	_, err := Compile("[abc", 256, 256)
	if !errors.Is(err, ErrInvalidPattern) {
		t.Fatalf("expected ErrInvalidPattern, got %v", err)
	}
}

func TestCompileClassDashAtEndIsLiteral(t *testing.T) {
	prog := mustCompile(t, "[a-]")
	ccl := prog.classOf(prog.Tokens[0])
	// 'a' (range collapsing to itself) then '-' (its own range char) then CCL_END.
	if len(ccl) != 3 {
		t.Fatalf("expected 3 class chars, got %d: %+v", len(ccl), ccl)
	}
	if ccl[0].First != 'a' || ccl[0].Last != 'a' {
		t.Fatalf("expected first class char 'a', got %+v", ccl[0])
	}
	if ccl[1].First != '-' || ccl[1].Last != '-' {
		t.Fatalf("expected second class char literal '-', got %+v", ccl[1])
	}
}

func TestCompileClassDashBeforeNULInvalid(t *testing.T) {
	_, err := Compile("[a-", 256, 256)
	if !errors.Is(err, ErrInvalidPattern) {
		t.Fatalf("expected ErrInvalidPattern, got %v", err)
	}
}

func TestCompileClassEscapedRangeEndpoint(t *testing.T) {
	prog := mustCompile(t, `[a-\x]`)
	ccl := prog.classOf(prog.Tokens[0])
	if ccl[0].First != 'a' || ccl[0].Last != 'x' {
		t.Fatalf("expected range a-x, got %+v", ccl[0])
	}
}

func TestCompilePredicateAsRangeEndpointInvalid(t *testing.T) {
	cases := []string{`[\d-z]`, `[a-\d]`}
	for _, pat := range cases {
		_, err := Compile(pat, 256, 256)
		if !errors.Is(err, ErrInvalidPattern) {
			t.Fatalf("%q: expected ErrInvalidPattern, got %v", pat, err)
		}
	}
}

func TestCompileQuantifiers(t *testing.T) {
	cases := []struct {
		pat        string
		qmin, qmax uint16
	}{
		{"a?", 0, 1},
		{"a*", 0, MaxReps},
		{"a+", 1, MaxReps},
		{"a{3}", 3, 3},
		{"a{2,}", 2, MaxReps},
		{"a{2,5}", 2, 5},
	}
	for _, c := range cases {
		prog := mustCompile(t, c.pat)
		tok := prog.Tokens[0]
		if tok.Qmin != c.qmin || tok.Qmax != c.qmax {
			t.Errorf("%q: got qmin=%d qmax=%d, want qmin=%d qmax=%d", c.pat, tok.Qmin, tok.Qmax, c.qmin, c.qmax)
		}
	}
}

func TestCompileMalformedBraceIsLiteral(t *testing.T) {
	prog := mustCompile(t, "a{x}")
	if prog.NumTokens != 5 { // a, {, x, }, END
		t.Fatalf("expected 5 tokens, got %d: %+v", prog.NumTokens, prog.Tokens[:prog.NumTokens])
	}
	if prog.Tokens[0].Qmin != 1 || prog.Tokens[0].Qmax != 1 {
		t.Fatalf("expected no quantifier on 'a', got %+v", prog.Tokens[0])
	}
	if prog.Tokens[1].Kind != Literal || prog.Tokens[1].Ch != '{' {
		t.Fatalf("expected literal '{' token, got %+v", prog.Tokens[1])
	}
}

func TestCompileLazyAndAtomic(t *testing.T) {
	prog := mustCompile(t, "a*?")
	tok := prog.Tokens[0]
	if tok.Greedy {
		t.Fatalf("expected lazy quantifier, got greedy: %+v", tok)
	}

	prog = mustCompile(t, "a++")
	tok = prog.Tokens[0]
	if !tok.Atomic {
		t.Fatalf("expected atomic quantifier, got %+v", tok)
	}
}

func TestCompileProgramOverflow(t *testing.T) {
	_, err := Compile("aaaa", 3, 256)
	if !errors.Is(err, ErrProgramOverflow) {
		t.Fatalf("expected ErrProgramOverflow, got %v", err)
	}
}

func TestCompileClassBufferOverflow(t *testing.T) {
	_, err := Compile("[abcdef]", 256, 3)
	if !errors.Is(err, ErrProgramOverflow) {
		t.Fatalf("expected ErrProgramOverflow, got %v", err)
	}
}

func TestCompileErrorRecordsPattern(t *testing.T) {
	_, err := Compile(`a\`, 256, 256)
	var ce *CompileError
	if !errors.As(err, &ce) {
		t.Fatalf("expected *CompileError, got %T", err)
	}
	if ce.Pattern != `a\` {
		t.Fatalf("expected pattern recorded, got %q", ce.Pattern)
	}
}
