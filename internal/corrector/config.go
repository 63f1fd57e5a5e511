package corrector

import (
	"math"

	"corrector/pkg/correrr"
	"corrector/pkg/guard"
)

// Config is the configuration surface consumed by the core, per spec §6.3.
//
// FrequencyThreshold is a *float64 rather than a float64 because 0 is a
// legal, meaningful value distinct from "not set" (spec §6.3: "finite real
// >= 0, default 10.0"). A caller who wants every distance-1+ candidate
// accepted regardless of frequency sets FrequencyThreshold to a pointer to
// 0, not the zero value of the field.
type Config struct {
	DictionaryPath     string
	ProtectedPath      string
	CallerPatterns     []guard.PatternSpec
	EditDistance       int
	FrequencyThreshold *float64
	SkipURLs           bool
	SkipEmails         bool
	SkipHostnames      bool
	SkipCodePatterns   bool
	SkipNumbers        bool
}

const defaultFrequencyThreshold = 10.0

func (c Config) withDefaults() Config {
	if c.EditDistance == 0 {
		c.EditDistance = 1
	}
	if c.FrequencyThreshold == nil {
		t := defaultFrequencyThreshold
		c.FrequencyThreshold = &t
	}
	return c
}

func (c Config) validate() error {
	if c.DictionaryPath == "" {
		return correrr.New(correrr.InvalidArgument, "Load", "dictionary_path is required")
	}
	if c.EditDistance != 1 && c.EditDistance != 2 {
		return correrr.New(correrr.InvalidArgument, "Load", "edit_distance must be 1 or 2")
	}
	if t := c.FrequencyThreshold; t != nil && (math.IsNaN(*t) || math.IsInf(*t, 0) || *t < 0) {
		return correrr.New(correrr.InvalidArgument, "Load", "frequency_threshold must be finite and non-negative")
	}
	return nil
}

func (c Config) skipFlags() guard.SkipFlags {
	return guard.SkipFlags{
		URLs:         c.SkipURLs,
		Emails:       c.SkipEmails,
		Hostnames:    c.SkipHostnames,
		CodePatterns: c.SkipCodePatterns,
		Numbers:      c.SkipNumbers,
	}
}
