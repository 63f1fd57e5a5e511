// Package lexicon implements the SymSpell symmetric-delete index: the
// frequency-weighted, edit-distance-bounded candidate store at the core
// of the correction engine.
package lexicon

import (
	"sort"
	"strconv"

	"github.com/hbollon/go-edlib"
	mapset "github.com/deckarep/golang-set/v2"

	"corrector/pkg/correrr"
	"corrector/pkg/normalize"
)

// RawEntry is one unparsed dictionary row: a canonical term and its
// frequency field, still as text. FrequencyRaw is parsed (and its
// failures counted) during Build, matching spec §4.2's build contract.
type RawEntry struct {
	Canonical    string
	FrequencyRaw string
}

// Candidate is the result of a lookup.
type Candidate struct {
	Canonical string
	Distance  int
	Frequency uint64
}

// Stats reports build-time bookkeeping.
type Stats struct {
	Size               int
	SkippedMalformed   int
	SkippedMultiword   int
	SkippedInvalidFreq int
	SkippedDuplicates  int
}

type entry struct {
	canonical  string
	normalized string
	frequency  uint64
}

// Index is the immutable, sealed lexicon built by Build. It answers
// Contains and Lookup in bounded time and is safe for concurrent readers.
type Index struct {
	maxEditDistance int
	entries         []entry
	byNormalized    map[string]int32
	deletes         map[string][]int32
	stats           Stats
}

// Build constructs a sealed Index from raw dictionary rows. It fails
// only when maxEditDistance is outside {1,2}; every other malformed row
// is skipped and counted in the returned Stats, never fatal.
func Build(raws []RawEntry, maxEditDistance int) (*Index, error) {
	if maxEditDistance != 1 && maxEditDistance != 2 {
		return nil, correrr.New(correrr.InvalidArgument, "lexicon.Build", "edit_distance must be 1 or 2")
	}

	type merged struct {
		canonical     string
		bestIndivFreq uint64
		sumFreq       uint64
	}

	order := make([]string, 0, len(raws))
	byKey := make(map[string]*merged, len(raws))
	var stats Stats

	for _, raw := range raws {
		freq, err := strconv.ParseUint(raw.FrequencyRaw, 10, 64)
		if err != nil {
			stats.SkippedInvalidFreq++
			continue
		}

		canonical := raw.Canonical
		normalized := normalize.Key(canonical)
		if canonical == "" || normalized == "" {
			stats.SkippedMalformed++
			continue
		}

		if containsWhitespace(canonical) {
			stats.SkippedMultiword++
		}

		if m, ok := byKey[normalized]; ok {
			stats.SkippedDuplicates++
			m.sumFreq += freq
			if freq > m.bestIndivFreq {
				m.bestIndivFreq = freq
				m.canonical = canonical
			}
			continue
		}

		byKey[normalized] = &merged{canonical: canonical, bestIndivFreq: freq, sumFreq: freq}
		order = append(order, normalized)
	}

	entries := make([]entry, 0, len(order))
	byNormalized := make(map[string]int32, len(order))
	for i, normalized := range order {
		m := byKey[normalized]
		entries = append(entries, entry{canonical: m.canonical, normalized: normalized, frequency: m.sumFreq})
		byNormalized[normalized] = int32(i)
	}

	deletes := make(map[string][]int32)
	for id, e := range entries {
		variants := deleteVariants(e.normalized, maxEditDistance)
		variants.Each(func(v string) bool {
			deletes[v] = append(deletes[v], int32(id))
			return false
		})
	}

	stats.Size = len(entries)

	return &Index{
		maxEditDistance: maxEditDistance,
		entries:         entries,
		byNormalized:    byNormalized,
		deletes:         deletes,
		stats:           stats,
	}, nil
}

// Len returns the number of indexed entries.
func (ix *Index) Len() int { return len(ix.entries) }

// Stats returns build-time bookkeeping counters.
func (ix *Index) Stats() Stats { return ix.stats }

// MaxEditDistance returns the configured k for this index.
func (ix *Index) MaxEditDistance() int { return ix.maxEditDistance }

// Contains reports whether word's normalized form matches some entry exactly.
func (ix *Index) Contains(word string) bool {
	q := normalize.Key(word)
	if q == "" {
		return false
	}
	_, ok := ix.byNormalized[q]
	return ok
}

// Lookup returns up to maxResults candidates within MaxEditDistance of
// word's normalized form, sorted by (distance asc, frequency desc,
// canonical asc). An exact match short-circuits further search and is
// returned alone.
func (ix *Index) Lookup(word string, maxResults int) []Candidate {
	if maxResults <= 0 {
		return nil
	}
	q := normalize.Key(word)
	if q == "" {
		return nil
	}

	if id, ok := ix.byNormalized[q]; ok {
		e := ix.entries[id]
		return []Candidate{{Canonical: e.canonical, Distance: 0, Frequency: e.frequency}}
	}

	variants := deleteVariants(q, ix.maxEditDistance)
	candidateIDs := mapset.NewThreadUnsafeSet[int32]()
	variants.Each(func(v string) bool {
		for _, id := range ix.deletes[v] {
			candidateIDs.Add(id)
		}
		return false
	})

	results := make([]Candidate, 0, candidateIDs.Cardinality())
	candidateIDs.Each(func(id int32) bool {
		e := ix.entries[id]
		dist := edlib.OSADamerauLevenshteinDistance(q, e.normalized)
		if dist <= ix.maxEditDistance {
			results = append(results, Candidate{Canonical: e.canonical, Distance: dist, Frequency: e.frequency})
		}
		return false
	})

	sort.Slice(results, func(i, j int) bool {
		if results[i].Distance != results[j].Distance {
			return results[i].Distance < results[j].Distance
		}
		if results[i].Frequency != results[j].Frequency {
			return results[i].Frequency > results[j].Frequency
		}
		return results[i].Canonical < results[j].Canonical
	})

	if len(results) > maxResults {
		results = results[:maxResults]
	}
	return results
}

func containsWhitespace(s string) bool {
	for _, r := range s {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' || r == '\v' || r == '\f' {
			return true
		}
	}
	return false
}
