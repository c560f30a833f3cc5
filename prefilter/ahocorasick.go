package prefilter

import "github.com/coregx/ahocorasick"

// classAutomaton is a Prefilter over the single-byte expansion of a
// leading character class (e.g. the 22 members of [A-Fa-f0-9]), built as
// an Aho-Corasick automaton of one-byte patterns. The teacher corpus
// builds the same automaton over a pattern's literal alternation branches
// (meta/compile.go's buildStrategyEngines); regexlite's dialect has no
// alternation, so the branches here are a class's members instead.
type classAutomaton struct {
	automaton *ahocorasick.Automaton
	complete  bool
}

func newClassAutomaton(set []byte, complete bool) (*classAutomaton, error) {
	builder := ahocorasick.NewBuilder()
	for _, b := range set {
		builder.AddPattern([]byte{b})
	}
	automaton, err := builder.Build()
	if err != nil {
		return nil, err
	}
	return &classAutomaton{automaton: automaton, complete: complete}, nil
}

func (p *classAutomaton) Find(haystack []byte, start int) int {
	m := p.automaton.Find(haystack, start)
	if m == nil {
		return -1
	}
	return m.Start
}

func (p *classAutomaton) IsComplete() bool { return p.complete }
func (p *classAutomaton) Len() int {
	if p.complete {
		return 1
	}
	return 0
}
