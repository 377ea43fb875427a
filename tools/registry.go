package tools

import (
	"fmt"

	"github.com/pharmaxis/pharmintel/components"
)

// Registry maps capability IDs to handlers. It is validated at construction:
// duplicate or empty IDs fail fast instead of surfacing at call time.
// Read-only after construction.
type Registry struct {
	order []ID
	caps  map[ID]Capability
}

// NewRegistry builds a registry from the given capabilities.
func NewRegistry(caps ...Capability) (*Registry, error) {
	ret := &Registry{
		order: make([]ID, 0, len(caps)),
		caps:  make(map[ID]Capability, len(caps)),
	}
	for _, cap := range caps {
		id := cap.ID()
		if id == "" {
			return nil, fmt.Errorf("capability with empty ID")
		}
		if def := cap.Definition(); def.Name != id.String() {
			return nil, fmt.Errorf("capability %q definition name mismatch: %q", id, def.Name)
		}
		if _, exists := ret.caps[id]; exists {
			return nil, fmt.Errorf("duplicate capability ID %q", id)
		}
		ret.order = append(ret.order, id)
		ret.caps[id] = cap
	}
	return ret, nil
}

// MustRegistry builds a registry and panics on a declaration error. Meant for
// process start wiring where a bad declaration is a programming mistake.
func MustRegistry(caps ...Capability) *Registry {
	ret, err := NewRegistry(caps...)
	if err != nil {
		panic(err)
	}
	return ret
}

// Lookup returns the capability registered under the given name.
func (r *Registry) Lookup(name string) (Capability, bool) {
	cap, ok := r.caps[ID(name)]
	return cap, ok
}

// Definitions returns the tool definitions in registration order.
func (r *Registry) Definitions() []components.ToolDefinition {
	defs := make([]components.ToolDefinition, 0, len(r.order))
	for _, id := range r.order {
		defs = append(defs, r.caps[id].Definition())
	}
	return defs
}

// Len returns the number of registered capabilities.
func (r *Registry) Len() int {
	return len(r.order)
}
