package lexicon

import mapset "github.com/deckarep/golang-set/v2"

// deleteVariants returns every distinct string obtainable by deleting
// between 0 and maxDist characters (inclusive) from s, per spec §3's
// Delete Key definition. The zero-deletion case (s itself) is always
// included so an exact match can be found through the same bucket a
// fuzzy lookup uses.
func deleteVariants(s string, maxDist int) mapset.Set[string] {
	result := mapset.NewThreadUnsafeSet[string]()
	result.Add(s)
	if maxDist <= 0 {
		return result
	}

	seen := mapset.NewThreadUnsafeSet[string]()
	seen.Add(s)
	frontier := []string{s}

	for d := 0; d < maxDist; d++ {
		var next []string
		for _, w := range frontier {
			r := []rune(w)
			for i := range r {
				cand := string(append(append([]rune{}, r[:i]...), r[i+1:]...))
				result.Add(cand)
				if !seen.Contains(cand) {
					seen.Add(cand)
					next = append(next, cand)
				}
			}
		}
		frontier = next
	}

	return result
}
