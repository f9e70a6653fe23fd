package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"os"
	"path/filepath"
	"time"
)

// AnalysisCache stores per-document analysis results keyed by a digest of
// the document bytes and the heuristic version. Reprocessing an unchanged
// document then costs one disk read instead of a full detection pass.
type AnalysisCache struct {
	Dir string
	// StrictPerms, when true, enforces 0700 on the cache directory and 0600
	// on files. Cached analyses carry document text, which may be private.
	StrictPerms bool
}

func (c *AnalysisCache) ensureDir() error {
	if c == nil || c.Dir == "" {
		return errors.New("cache dir not configured")
	}
	perm := os.FileMode(0o755)
	if c.StrictPerms {
		perm = 0o700
	}
	if err := os.MkdirAll(c.Dir, perm); err != nil {
		return err
	}
	// If directory already existed and StrictPerms is on, tighten perms
	if c.StrictPerms {
		if info, err := os.Stat(c.Dir); err == nil {
			if info.Mode()&0o777 != 0o700 {
				_ = os.Chmod(c.Dir, 0o700)
			}
		}
	}
	return nil
}

// KeyFrom builds a cache key from the heuristic version and the raw document
// bytes. Bump the version string whenever detection or scoring rules change
// so stale entries miss instead of resurfacing old results.
func KeyFrom(version string, doc []byte) string {
	h := sha256.New()
	h.Write([]byte(version))
	h.Write([]byte("\n\n"))
	h.Write(doc)
	return hex.EncodeToString(h.Sum(nil))
}

func (c *AnalysisCache) pathFor(key string) string {
	return filepath.Join(c.Dir, key+".json")
}

// Get returns cached bytes if present.
func (c *AnalysisCache) Get(_ context.Context, key string) ([]byte, bool, error) {
	if err := c.ensureDir(); err != nil {
		return nil, false, err
	}
	p := c.pathFor(key)
	b, err := os.ReadFile(p)
	if err != nil {
		return nil, false, nil
	}
	// Touch file mtime on access for LRU purposes
	now := time.Now()
	_ = os.Chtimes(p, now, now)
	return b, true, nil
}

// Save writes bytes to cache.
func (c *AnalysisCache) Save(_ context.Context, key string, data []byte) error {
	if err := c.ensureDir(); err != nil {
		return err
	}
	p := c.pathFor(key)
	mode := os.FileMode(0o644)
	if c.StrictPerms {
		mode = 0o600
	}
	return os.WriteFile(p, data, mode)
}
