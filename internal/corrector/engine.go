// Package corrector composes the Normalizer, Lexicon Index, and Guard
// into the correction engine's public operations, and owns the State
// Holder that publishes and serves immutable snapshots.
package corrector

import (
	"context"
	"log"
	"time"

	"corrector/internal/dictfile"
	"corrector/pkg/correrr"
	"corrector/pkg/guard"
	"corrector/pkg/lexicon"
)

// AdminWordSource supplies extra (canonical, frequency) pairs to merge
// into the build, sourced outside the dictionary file (see internal/admindict).
type AdminWordSource interface {
	Entries(ctx context.Context) ([]lexicon.RawEntry, error)
}

// Engine is the Correction Engine of spec §4.4. The zero value is an
// Unloaded engine; Load transitions it to Loaded. It is safe for
// concurrent use by multiple goroutines.
type Engine struct {
	holder holder
	admin  AdminWordSource
}

// Default is the process-default Engine instance, per spec §4.5.
var Default = New()

// New returns an unloaded Engine with its own State Holder.
func New() *Engine {
	return &Engine{}
}

// SetAdminSource attaches an AdminWordSource whose words are merged into
// every subsequent Load/Reload.
func (e *Engine) SetAdminSource(src AdminWordSource) {
	e.admin = src
}

// Load builds a new snapshot from cfg and publishes it. It is legal from
// any engine state: the first Load transitions Unloaded to Loaded; every
// later call is a Loaded -> Loaded' hot reload (spec §4.4's state machine).
// Build errors abort the publish; the previous snapshot, if any, remains current.
func (e *Engine) Load(ctx context.Context, cfg Config) error {
	cfg = cfg.withDefaults()
	if err := cfg.validate(); err != nil {
		return err
	}

	rows, fileStats, err := dictfile.Parse(cfg.DictionaryPath)
	if err != nil {
		return err
	}

	if e.admin != nil {
		adminRows, err := e.admin.Entries(ctx)
		if err != nil {
			log.Printf("corrector: admin word source unavailable, continuing without it: %v", err)
		} else {
			rows = append(rows, adminRows...)
		}
	}

	idx, err := lexicon.Build(rows, cfg.EditDistance)
	if err != nil {
		return err
	}

	g, err := guard.Build(cfg.ProtectedPath, cfg.CallerPatterns, cfg.skipFlags())
	if err != nil {
		return err
	}

	ixStats := idx.Stats()
	snap := &snapshot{
		index:  idx,
		guard:  g,
		config: cfg,
		stats: Stats{
			Loaded:             true,
			DictionarySize:     ixStats.Size,
			EditDistance:       cfg.EditDistance,
			SkippedMalformed:   ixStats.SkippedMalformed + fileStats.SkippedMalformed,
			SkippedMultiword:   ixStats.SkippedMultiword,
			SkippedInvalidFreq: ixStats.SkippedInvalidFreq,
			SkippedDuplicates:  ixStats.SkippedDuplicates,
		},
		loadedAt: time.Now().Unix(),
	}

	e.holder.publish(snap)
	return nil
}

// Reload rebuilds and republishes a snapshot using the currently
// published Config. It fails with NotLoaded if no snapshot exists yet.
func (e *Engine) Reload(ctx context.Context) error {
	snap := e.holder.acquire()
	if snap == nil {
		return correrr.New(correrr.NotLoaded, "Reload", "no snapshot loaded")
	}
	return e.Load(ctx, snap.config)
}

// CorrectExact reports whether word is in the lexicon exactly. It does
// not consult the Guard.
func (e *Engine) CorrectExact(word string) (bool, error) {
	snap := e.holder.acquire()
	if snap == nil {
		return false, correrr.New(correrr.NotLoaded, "CorrectExact", "no snapshot loaded")
	}
	return snap.index.Contains(word), nil
}

// Suggestions returns up to max ranked candidates for word. The Guard is
// not consulted: callers asking for suggestions want the raw ranked list.
func (e *Engine) Suggestions(word string, max int) ([]lexicon.Candidate, error) {
	snap := e.holder.acquire()
	if snap == nil {
		return nil, correrr.New(correrr.NotLoaded, "Suggestions", "no snapshot loaded")
	}
	if word == "" {
		return nil, correrr.New(correrr.InvalidArgument, "Suggestions", "word is empty")
	}
	return snap.index.Lookup(word, max), nil
}

// Correct rewrites word to its best-supported lexicon entry, or returns
// it verbatim when no confident correction applies, per spec §4.4.
func (e *Engine) Correct(word string, useGuard bool) (string, error) {
	snap := e.holder.acquire()
	if snap == nil {
		return "", correrr.New(correrr.NotLoaded, "Correct", "no snapshot loaded")
	}
	if word == "" {
		return "", correrr.New(correrr.InvalidArgument, "Correct", "word is empty")
	}
	return correctWithSnapshot(snap, word, useGuard), nil
}

// CorrectTokens applies Correct to every token, acquiring the snapshot
// once for the whole batch. Result ordering matches input ordering.
func (e *Engine) CorrectTokens(tokens []string, useGuard bool) ([]string, error) {
	snap := e.holder.acquire()
	if snap == nil {
		return nil, correrr.New(correrr.NotLoaded, "CorrectTokens", "no snapshot loaded")
	}
	if len(tokens) == 0 {
		return []string{}, nil
	}

	out := make([]string, len(tokens))
	for i, t := range tokens {
		if t == "" {
			return nil, correrr.New(correrr.InvalidArgument, "CorrectTokens", "empty token at index")
		}
		out[i] = correctWithSnapshot(snap, t, useGuard)
	}
	return out, nil
}

// Stats returns the observability snapshot of spec §4.4.
func (e *Engine) Stats() Stats {
	snap := e.holder.acquire()
	if snap == nil {
		return Stats{Loaded: false}
	}
	stats := snap.stats
	stats.LoadedAt = snap.loadedAt
	return stats
}

// Healthcheck fails if no snapshot has been loaded.
func (e *Engine) Healthcheck() error {
	if e.holder.acquire() == nil {
		return correrr.New(correrr.NotLoaded, "Healthcheck", "no snapshot loaded")
	}
	return nil
}

func correctWithSnapshot(snap *snapshot, word string, useGuard bool) string {
	if useGuard && snap.guard.IsProtected(word) {
		return word
	}

	cands := snap.index.Lookup(word, 1)
	if len(cands) == 0 {
		return word
	}

	top := cands[0]
	if top.Distance == 0 {
		return top.Canonical
	}

	if float64(top.Frequency) >= *snap.config.FrequencyThreshold {
		return top.Canonical
	}
	return word
}
