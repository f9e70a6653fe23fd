package app

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// discoverSpecs returns the input spec files to process in deterministic
// order: explicit paths exactly as given, otherwise a sorted scan of
// SpecsDir for input_spec_*.json.
func discoverSpecs(cfg Config) ([]string, error) {
	if len(cfg.SpecPaths) > 0 {
		return cfg.SpecPaths, nil
	}
	matches, err := filepath.Glob(filepath.Join(cfg.SpecsDir, "input_spec_*.json"))
	if err != nil {
		return nil, fmt.Errorf("scan input specs: %w", err)
	}
	sort.Strings(matches)
	return matches, nil
}

// outputDirFor names the output directory for the spec at 0-based index i.
// The first spec keeps the base directory so single-spec runs have a stable
// location; later specs get numbered siblings.
func outputDirFor(base string, i int) string {
	if i == 0 {
		return base
	}
	return fmt.Sprintf("%s_%d", base, i+1)
}

// resolveDocPath locates a document named by an input spec. Absolute paths
// and paths that resolve from the working directory are used as written;
// bare filenames fall back to the input directory.
func resolveDocPath(inputDir, name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	if _, err := os.Stat(name); err == nil {
		return name
	}
	return filepath.Join(inputDir, name)
}
