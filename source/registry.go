package source

import (
	"fmt"
)

// Registry holds registered adapters in registration order. Detection
// priority follows registration order.
type Registry struct {
	order    []Adapter
	adapters map[string]Adapter
}

// DefaultRegistry is the global adapter registry.
var DefaultRegistry = NewRegistry()

// NewRegistry creates a new adapter registry.
func NewRegistry() *Registry {
	return &Registry{
		adapters: make(map[string]Adapter),
	}
}

// Register adds an adapter to the registry.
func (r *Registry) Register(a Adapter) {
	if _, ok := r.adapters[a.Name()]; !ok {
		r.order = append(r.order, a)
	}
	r.adapters[a.Name()] = a
}

// Get retrieves an adapter by name.
func (r *Registry) Get(name string) (Adapter, bool) {
	a, ok := r.adapters[name]
	return a, ok
}

// List returns all registered adapter names in registration order.
func (r *Registry) List() []string {
	names := make([]string, 0, len(r.order))
	for _, a := range r.order {
		names = append(names, a.Name())
	}
	return names
}

// Detect picks the adapter for a source file from a sample record. The
// first adapter whose fingerprint matches wins; when none match, the
// fallback adapter is returned.
func (r *Registry) Detect(sample map[string]any) (Adapter, error) {
	for _, a := range r.order {
		if a.Detect(sample) {
			return a, nil
		}
	}
	if a, ok := r.adapters[FallbackAdapter]; ok {
		return a, nil
	}
	return nil, fmt.Errorf("no adapter matches and fallback %q is not registered", FallbackAdapter)
}

// Register adds an adapter to the default registry.
func Register(a Adapter) {
	DefaultRegistry.Register(a)
}

// Get retrieves an adapter from the default registry.
func Get(name string) (Adapter, bool) {
	return DefaultRegistry.Get(name)
}

// Detect picks an adapter using the default registry.
func Detect(sample map[string]any) (Adapter, error) {
	return DefaultRegistry.Detect(sample)
}
