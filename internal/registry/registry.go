// Package registry tracks registered widget configuration documents and the
// cached outcome of their last check.
package registry

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/hullochat/hullo/internal/tier"
)

const registryEnvVar = "HULLO_REGISTRY"

// fileVersion is written into every persisted file so future layout changes
// can migrate old files.
const fileVersion = "1.0"

// DefaultPath resolves the registry location: $HULLO_REGISTRY when set,
// otherwise ~/.hullo/registry.json.
func DefaultPath() (string, error) {
	if path := os.Getenv(registryEnvVar); path != "" {
		return path, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve home directory: %w", err)
	}
	return filepath.Join(home, ".hullo", "registry.json"), nil
}

// DefaultCachePath resolves the status cache location, kept next to the
// registry file.
func DefaultCachePath() (string, error) {
	path, err := DefaultPath()
	if err != nil {
		return "", err
	}
	return filepath.Join(filepath.Dir(path), "status.json"), nil
}

// Registry is the file-backed widget store. All methods are safe for
// concurrent use.
type Registry struct {
	path    string
	mu      sync.RWMutex
	version string
	widgets []Widget
}

// NewRegistry loads the registry at path, starting empty when the file does
// not exist yet.
func NewRegistry(path string) (*Registry, error) {
	if err := ensureDir(path); err != nil {
		return nil, fmt.Errorf("create registry directory: %w", err)
	}

	r := &Registry{path: path, version: fileVersion}
	if err := r.Load(); err != nil {
		if !os.IsNotExist(err) {
			return nil, err
		}
		r.widgets = []Widget{}
	}
	return r, nil
}

// Load re-reads the registry file from disk.
func (r *Registry) Load() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	var file RegistryFile
	if err := readJSON(r.path, &file); err != nil {
		return err
	}
	r.version = file.Version
	r.widgets = file.Widgets
	return nil
}

// Save writes the registry to disk.
func (r *Registry) Save() error {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return writeJSONAtomic(r.path, RegistryFile{Version: r.version, Widgets: r.widgets})
}

// List returns a copy of all registered widgets.
func (r *Registry) List() []Widget {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Widget, len(r.widgets))
	copy(out, r.widgets)
	return out
}

// Get looks up one widget by ID.
func (r *Registry) Get(id string) (Widget, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if i := r.indexOf(id); i >= 0 {
		return r.widgets[i], nil
	}
	return Widget{}, fmt.Errorf("widget not found: %s", id)
}

// Add registers a new widget. IDs are unique.
func (r *Registry) Add(w Widget) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.indexOf(w.ID) >= 0 {
		return fmt.Errorf("widget with ID %s already exists", w.ID)
	}
	r.widgets = append(r.widgets, w)
	return nil
}

// Update replaces the stored entry carrying the same ID.
func (r *Registry) Update(w Widget) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(w.ID)
	if i < 0 {
		return fmt.Errorf("widget not found: %s", w.ID)
	}
	r.widgets[i] = w
	return nil
}

// Remove deletes a widget from the registry.
func (r *Registry) Remove(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return fmt.Errorf("widget not found: %s", id)
	}
	r.widgets = append(r.widgets[:i], r.widgets[i+1:]...)
	return nil
}

// TierFor reports the subscription tier recorded for a registered widget.
func (r *Registry) TierFor(widgetID string) (tier.Tier, error) {
	w, err := r.Get(widgetID)
	if err != nil {
		return "", err
	}
	return w.Tier, nil
}

// indexOf returns the position of id in the widget list, or -1. Callers hold
// the lock.
func (r *Registry) indexOf(id string) int {
	for i := range r.widgets {
		if r.widgets[i].ID == id {
			return i
		}
	}
	return -1
}
