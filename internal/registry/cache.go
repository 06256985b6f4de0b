package registry

import (
	"fmt"
	"os"
	"sync"
)

// StatusCache persists widget check results between sessions so that listing
// widgets never has to re-read and re-validate every document.
type StatusCache struct {
	path     string
	mu       sync.RWMutex
	version  string
	statuses map[string]CachedStatus
}

// NewStatusCache loads the cache at path, starting empty when the file does
// not exist yet.
func NewStatusCache(path string) (*StatusCache, error) {
	if err := ensureDir(path); err != nil {
		return nil, fmt.Errorf("create cache directory: %w", err)
	}

	c := &StatusCache{
		path:     path,
		version:  fileVersion,
		statuses: make(map[string]CachedStatus),
	}
	if err := c.Load(); err != nil && !os.IsNotExist(err) {
		return nil, err
	}
	return c, nil
}

// Load re-reads the cache file from disk.
func (c *StatusCache) Load() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	var file StatusCacheFile
	if err := readJSON(c.path, &file); err != nil {
		return err
	}
	c.version = file.Version
	c.statuses = file.Statuses
	if c.statuses == nil {
		c.statuses = make(map[string]CachedStatus)
	}
	return nil
}

// Save writes the cache to disk.
func (c *StatusCache) Save() error {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return writeJSONAtomic(c.path, StatusCacheFile{Version: c.version, Statuses: c.statuses})
}

// Get returns the cached status for a widget.
func (c *StatusCache) Get(widgetID string) (CachedStatus, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	status, ok := c.statuses[widgetID]
	return status, ok
}

// Set records the status for a widget in memory. Call Save to persist.
func (c *StatusCache) Set(widgetID string, status CachedStatus) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.statuses[widgetID] = status
	return nil
}

// Invalidate drops the cached status for a widget, typically after the
// widget was removed from the registry.
func (c *StatusCache) Invalidate(widgetID string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.statuses, widgetID)
	return nil
}
