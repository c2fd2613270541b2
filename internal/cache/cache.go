// Package cache implements the pipeline's on-disk intermediate caching:
// every stage's output is written to a content-addressed path and reused
// on a later run if nothing that would affect it has changed (spec §5).
//
// This is the one ambient concern carried on the standard library rather
// than a pack dependency: the operation is "hash some config, write a
// file atomically, read it back" — os/filepath/crypto already do this
// correctly, and nothing in the example pack wraps atomic file
// replacement as a library (see DESIGN.md).
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Key derives a stable cache key from a stage name and its parameters
// (e.g. buffer radius, cap style), so a config change invalidates the
// cache without needing explicit versioning.
func Key(stage string, params any) (string, error) {
	data, err := json.Marshal(params)
	if err != nil {
		return "", fmt.Errorf("marshal cache params for %s: %w", stage, err)
	}
	sum := sha256.Sum256(data)
	return fmt.Sprintf("%s-%s", stage, hex.EncodeToString(sum[:])[:16]), nil
}

// Path returns the on-disk path for a cache key under dir.
func Path(dir, key string) string {
	return filepath.Join(dir, key+".json")
}

// Load reads and unmarshals a cached value, reporting ok=false (not an
// error) if no cache entry exists yet.
func Load(dir, key string, out any) (ok bool, err error) {
	data, err := os.ReadFile(Path(dir, key))
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("read cache entry %s: %w", key, err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return false, fmt.Errorf("unmarshal cache entry %s: %w", key, err)
	}
	return true, nil
}

// Store writes value to the cache atomically: it's marshalled to a
// sibling temp file, then renamed into place, so a crash mid-write never
// leaves a corrupt cache entry for a later run to (wrongly) trust.
func Store(dir, key string, value any) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create cache dir %s: %w", dir, err)
	}

	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("marshal cache entry %s: %w", key, err)
	}

	final := Path(dir, key)
	tmp := final + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write cache temp file for %s: %w", key, err)
	}
	if err := os.Rename(tmp, final); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("rename cache entry %s into place: %w", key, err)
	}
	return nil
}
