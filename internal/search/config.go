// Package search implements the orchestrator that sits between the
// public API and the compiled program: it owns the optional prefilter,
// tries match positions in order, and turns single matches into the
// non-overlapping sequence FindAll needs.
//
// This mirrors the role coregex/meta plays over coregex/nfa, scaled down
// to regexlite's single execution strategy (there is no DFA/NFA strategy
// choice to make — every pattern runs through the one backtracker).
package search

// Config controls program compilation limits and prefilter use.
//
// Example:
//
//	cfg := search.DefaultConfig()
//	cfg.EnablePrefilter = false // always run the backtracker, no skip-ahead
//	engine, err := search.CompileWithConfig(pattern, cfg)
type Config struct {
	// MaxTokens bounds the compiled program's token count. Compile fails
	// with ErrProgramOverflow if the pattern needs more. Default: 512.
	MaxTokens int

	// MaxClassChars bounds the compiled program's character-class buffer.
	// Compile fails with ErrProgramOverflow if a class needs more.
	// Default: 512.
	MaxClassChars int

	// EnablePrefilter builds a literal/class prefilter to skip positions
	// that cannot start a match. Default: true.
	EnablePrefilter bool
}

// DefaultConfig returns regexlite's default compilation limits.
func DefaultConfig() Config {
	return Config{
		MaxTokens:       512,
		MaxClassChars:   512,
		EnablePrefilter: true,
	}
}
