package app

import (
	"runtime"
	"time"
)

// Config carries all runtime configuration for a batch run. Flags, config
// files and defaults are merged into it before New is called.
type Config struct {
	// SpecsDir is scanned for input_spec_*.json files when SpecPaths is
	// empty.
	SpecsDir string
	// SpecPaths lists explicit input spec files, processed in the given
	// order. Non-empty SpecPaths disables directory scanning.
	SpecPaths []string
	// InputDir is the base directory for document names that do not
	// resolve as written.
	InputDir string

	// OutputDir receives the first spec's results; later specs write to
	// numbered siblings next to it.
	OutputDir string
	// MaxSections caps the ranked section list per output. 0 keeps
	// everything.
	MaxSections int
	// EnablePDF renders each run report as PDF alongside the Markdown.
	EnablePDF bool

	// Workers bounds concurrent document analysis per spec. 0 picks a
	// default from the host CPU count.
	Workers int

	CacheDir         string
	CacheMaxAge      time.Duration
	CacheClear       bool
	CacheStrictPerms bool

	Verbose bool
}

// workerCount resolves the effective document concurrency.
func (c Config) workerCount() int {
	if c.Workers > 0 {
		return c.Workers
	}
	n := runtime.NumCPU()
	if n > 4 {
		n = 4
	}
	if n < 1 {
		n = 1
	}
	return n
}
