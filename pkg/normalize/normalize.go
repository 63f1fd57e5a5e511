// Package normalize implements the single normalization rule shared by
// the lexicon index, the guard, and dictionary load-time deduplication.
// Divergence between any two call sites produces silent misses, so every
// other package reaches for Key instead of rolling its own case-fold.
package normalize

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/transform"
)

var folder = cases.Fold()

// Key derives the canonical matching key for s: Unicode case-folding
// followed by removal of every rune in the White_Space property. No
// NFC/NFD normalization is applied and punctuation is preserved.
func Key(s string) string {
	folded, _, err := transform.String(folder, s)
	if err != nil {
		folded = strings.ToLower(s)
	}

	var b strings.Builder
	b.Grow(len(folded))
	for _, r := range folded {
		if unicode.In(r, unicode.White_Space) {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
