// Package guard implements the domain-protection predicate: deciding
// whether a token must pass through correction unchanged.
package guard

import (
	"strings"

	mapset "github.com/deckarep/golang-set/v2"

	"corrector/internal/dictfile"
	"corrector/pkg/normalize"
)

// Guard evaluates is_protected(raw_token) per spec §4.3.
type Guard struct {
	patterns  []*Pattern
	protected mapset.Set[string]
}

// Build constructs a Guard from an optional protected-terms file, a
// caller pattern list, and the built-in skip-pattern flags. protectedPath
// may be empty, meaning no file-backed protected set.
func Build(protectedPath string, callerPatterns []PatternSpec, flags SkipFlags) (*Guard, error) {
	g := &Guard{protected: mapset.NewThreadUnsafeSet[string]()}

	if protectedPath != "" {
		terms, err := dictfile.ParseProtectedTerms(protectedPath)
		if err != nil {
			return nil, err
		}
		for _, term := range terms {
			g.AddProtectedTerm(term)
		}
	}

	var patterns []*Pattern
	for _, spec := range callerPatterns {
		p, err := Compile(spec)
		if err != nil {
			return nil, err
		}
		patterns = append(patterns, p)
	}
	g.patterns = append(patterns, builtinPatterns(flags)...)

	return g, nil
}

// IsProtected reports whether raw must pass through correction unchanged.
// Patterns are evaluated against the raw token first; the protected set
// is then checked against both the normalized and plain-lowercased forms.
func (g *Guard) IsProtected(raw string) bool {
	for _, p := range g.patterns {
		if p.MatchString(raw) {
			return true
		}
	}
	if g.protected.Contains(normalize.Key(raw)) {
		return true
	}
	if g.protected.Contains(strings.ToLower(raw)) {
		return true
	}
	return false
}

// AddProtectedTerm inserts term's lowercased and normalized forms into
// the protected set, per spec's dual-insertion design note (§9).
func (g *Guard) AddProtectedTerm(term string) {
	g.protected.Add(strings.ToLower(term))
	g.protected.Add(normalize.Key(term))
}
