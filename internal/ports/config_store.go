// Package ports declares the interfaces Hullo expects its collaborators to
// satisfy. The CLI ships file-backed implementations under internal/registry;
// the hosted dashboard substitutes its own persistence and billing services
// without touching the pipeline packages.
package ports

import (
	"github.com/hullochat/hullo/internal/registry"
)

// ConfigStore persists widget registrations so commands can address widgets
// by ID instead of file path. Implementations must be durable and safe for
// concurrent use; Save flushes pending mutations and must be atomic so a
// crashed write never leaves a truncated store behind.
type ConfigStore interface {
	List() []registry.Widget
	Get(id string) (registry.Widget, error)
	Add(w registry.Widget) error
	Update(w registry.Widget) error
	Remove(id string) error
	Save() error
}
