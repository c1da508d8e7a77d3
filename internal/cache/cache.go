// Package cache remembers which resource groups already validated cleanly,
// keyed by a content hash over the group's files, so repeated runs and the
// watch loop can skip unchanged groups.
package cache

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/rs/zerolog/log"

	"resxcheck/internal/textutil"
)

// ResultCache provides in-memory + JSON-file-backed group hashes.
type ResultCache struct {
	path   string
	mu     sync.RWMutex
	memory map[string]string // group base path → content hash
}

// NewResultCache creates a cache backed by the file at path.
func NewResultCache(path string) *ResultCache {
	return &ResultCache{
		path:   path,
		memory: make(map[string]string),
	}
}

// Load reads the backing file into memory. A missing file is not an error.
func (c *ResultCache) Load() error {
	data, err := os.ReadFile(c.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read cache file: %w", err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if err := json.Unmarshal(data, &c.memory); err != nil {
		// A corrupt cache only costs a re-validation.
		log.Warn().Err(err).Str("path", c.path).Msg("Discarding unreadable result cache")
		c.memory = make(map[string]string)
	}
	return nil
}

// Fresh reports whether the group's recorded hash matches the given one.
func (c *ResultCache) Fresh(group, hash string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return hash != "" && c.memory[group] == hash
}

// Set records a clean validation of the group at the given content hash.
func (c *ResultCache) Set(group, hash string) {
	c.mu.Lock()
	c.memory[group] = hash
	c.mu.Unlock()
}

// Invalidate drops the group from the cache.
func (c *ResultCache) Invalidate(group string) {
	c.mu.Lock()
	delete(c.memory, group)
	c.mu.Unlock()
}

// Save writes the in-memory state back to the backing file.
func (c *ResultCache) Save() error {
	c.mu.RLock()
	data, err := json.MarshalIndent(c.memory, "", "  ")
	c.mu.RUnlock()
	if err != nil {
		return fmt.Errorf("encode cache: %w", err)
	}
	if err := os.WriteFile(c.path, data, 0644); err != nil {
		return fmt.Errorf("write cache file: %w", err)
	}
	return nil
}

// GroupHash computes a combined content hash over the given files in order.
// An unreadable file yields an empty hash, which never counts as fresh.
func GroupHash(paths []string) string {
	combined := ""
	for _, p := range paths {
		data, err := os.ReadFile(p)
		if err != nil {
			return ""
		}
		combined += p + "\x00" + textutil.Hash(string(data)) + "\x00"
	}
	return textutil.Hash(combined)
}
