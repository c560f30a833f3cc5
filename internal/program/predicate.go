package program

// predicateFunc reports whether the predicate matches text at position i,
// and if so how many bytes it consumed (0, 1, or 2).
type predicateFunc func(text []byte, i int) (ok bool, n int)

// predicateDesc names one entry in a predicate table. Name is the byte
// that selects it (the character after '\' for the escape table, or the
// bare metacharacter for the metachar table).
type predicateDesc struct {
	name byte
	fn   predicateFunc
}

// escapeTable holds the nine backslash-escaped predicates. Index identity
// is a private contract between the compiler and the matcher.
var escapeTable = [...]predicateDesc{
	{'s', matchWhitespace},
	{'S', matchNotWhitespace},
	{'d', matchDigit},
	{'D', matchNotDigit},
	{'w', matchWord},
	{'W', matchNotWord},
	{'R', matchNewline},
	{'b', matchWordBoundary},
	{'B', matchNotWordBoundary},
}

// metaTable holds the three unescaped metacharacter predicates.
var metaTable = [...]predicateDesc{
	{'^', matchStart},
	{'$', matchEnd},
	{'.', matchAny},
}

// findEscape returns the escape-table index for byte b, or (-1, false).
func findEscape(b byte) (int, bool) {
	for i := range escapeTable {
		if escapeTable[i].name == b {
			return i, true
		}
	}
	return -1, false
}

// findMeta returns the metachar-table index for byte b, or (-1, false).
func findMeta(b byte) (int, bool) {
	for i := range metaTable {
		if metaTable[i].name == b {
			return i, true
		}
	}
	return -1, false
}

func isWhitespace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\f', '\v':
		return true
	}
	return false
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isWordChar(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || isDigit(c)
}

func matchWhitespace(text []byte, i int) (bool, int) {
	if i < len(text) && isWhitespace(text[i]) {
		return true, 1
	}
	return false, 0
}

func matchNotWhitespace(text []byte, i int) (bool, int) {
	if i < len(text) && !isWhitespace(text[i]) {
		return true, 1
	}
	return false, 0
}

func matchDigit(text []byte, i int) (bool, int) {
	if i < len(text) && isDigit(text[i]) {
		return true, 1
	}
	return false, 0
}

func matchNotDigit(text []byte, i int) (bool, int) {
	if i < len(text) && !isDigit(text[i]) {
		return true, 1
	}
	return false, 0
}

func matchWord(text []byte, i int) (bool, int) {
	if i < len(text) && isWordChar(text[i]) {
		return true, 1
	}
	return false, 0
}

func matchNotWord(text []byte, i int) (bool, int) {
	if i < len(text) && !isWordChar(text[i]) {
		return true, 1
	}
	return false, 0
}

// matchNewline accepts a CRLF pair (consuming 2 bytes) or a lone LF
// (consuming 1).
func matchNewline(text []byte, i int) (bool, int) {
	if i < len(text) && text[i] == '\r' && i+1 < len(text) && text[i+1] == '\n' {
		return true, 2
	}
	if i < len(text) && text[i] == '\n' {
		return true, 1
	}
	return false, 0
}

// before and after treat positions outside the text as non-word,
// which is what makes the boundary rule symmetric at both ends.
func matchWordBoundary(text []byte, i int) (bool, int) {
	before := i > 0 && isWordChar(text[i-1])
	after := i < len(text) && isWordChar(text[i])
	if before != after {
		return true, 0
	}
	return false, 0
}

func matchNotWordBoundary(text []byte, i int) (bool, int) {
	ok, _ := matchWordBoundary(text, i)
	return !ok, 0
}

func matchStart(_ []byte, i int) (bool, int) {
	return i == 0, 0
}

func matchEnd(text []byte, i int) (bool, int) {
	return i == len(text), 0
}

func matchAny(text []byte, i int) (bool, int) {
	if i < len(text) {
		return true, 1
	}
	return false, 0
}
