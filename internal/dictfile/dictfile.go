// Package dictfile reads the dictionary and protected-terms file formats
// of spec §6.1. It owns the line-level, whitespace-delimited structural
// parse; semantic validation (frequency parsing, normalization) belongs
// to pkg/lexicon.
package dictfile

import (
	"bufio"
	"bytes"
	"os"
	"strings"
	"unicode"

	"github.com/edsrzf/mmap-go"

	"corrector/pkg/correrr"
	"corrector/pkg/lexicon"
)

// Stats reports structural parse failures: lines with a field count the
// format doesn't recognize (no whitespace run to split on at all).
type Stats struct {
	SkippedMalformed int
}

// Parse reads path and returns its dictionary rows plus structural stats.
// The file is memory-mapped rather than buffered in full, since dictionary
// files are read-mostly and can be large; build fails only if the file is
// unreadable, per spec §4.2's "Build fails only on unreadable input source."
func Parse(path string) ([]lexicon.RawEntry, Stats, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, Stats{}, correrr.Wrap(correrr.FileNotFound, "dictfile.Parse", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, Stats{}, correrr.Wrap(correrr.FileNotFound, "dictfile.Parse", err)
	}
	if info.Size() == 0 {
		return nil, Stats{}, nil
	}

	m, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		return nil, Stats{}, correrr.Wrap(correrr.FileNotFound, "dictfile.Parse", err)
	}
	defer m.Unmap()

	var stats Stats
	var entries []lexicon.RawEntry

	scanner := bufio.NewScanner(bytes.NewReader(m))
	scanner.Buffer(make([]byte, 64*1024), 4<<20)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		canonical, freqRaw, ok := splitFields(line)
		if !ok {
			stats.SkippedMalformed++
			continue
		}
		entries = append(entries, lexicon.RawEntry{Canonical: canonical, FrequencyRaw: freqRaw})
	}
	if err := scanner.Err(); err != nil {
		return nil, stats, correrr.Wrap(correrr.FileNotFound, "dictfile.Parse", err)
	}
	return entries, stats, nil
}

// ParseProtectedTerms reads a one-term-per-line protected-terms file,
// skipping blank lines and '#' comments, per spec §6.2.
func ParseProtectedTerms(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, correrr.Wrap(correrr.FileNotFound, "dictfile.ParseProtectedTerms", err)
	}
	defer f.Close()

	var terms []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		terms = append(terms, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, correrr.Wrap(correrr.FileNotFound, "dictfile.ParseProtectedTerms", err)
	}
	return terms, nil
}

// splitFields splits line into its canonical and frequency fields at the
// last whitespace run, so a multi-word canonical (e.g. "New York") keeps
// its internal space while still separating cleanly from the trailing
// frequency field.
func splitFields(line string) (canonical, freqRaw string, ok bool) {
	r := []rune(line)

	end := -1
	for i := len(r) - 1; i >= 0; i-- {
		if unicode.IsSpace(r[i]) {
			end = i
			break
		}
	}
	if end < 0 {
		return "", "", false
	}

	start := end
	for start > 0 && unicode.IsSpace(r[start-1]) {
		start--
	}

	canonical = strings.TrimSpace(string(r[:start]))
	freqRaw = strings.TrimSpace(string(r[end+1:]))
	if canonical == "" || freqRaw == "" {
		return "", "", false
	}
	return canonical, freqRaw, true
}
