package toolkit

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

// Registry stores constructors by kind name and satisfies Factory.
type Registry struct {
	mu           sync.RWMutex
	constructors map[string]Constructor
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		constructors: make(map[string]Constructor),
	}
}

// Register adds a constructor for kind. Duplicate kinds return an error.
func (r *Registry) Register(kind string, ctor Constructor) error {
	if ctor == nil {
		return fmt.Errorf("toolkit: constructor is required")
	}
	trimmed := strings.TrimSpace(kind)
	if trimmed == "" {
		return fmt.Errorf("toolkit: kind is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.constructors[trimmed]; exists {
		return fmt.Errorf("toolkit: kind %q already registered", trimmed)
	}
	r.constructors[trimmed] = ctor
	return nil
}

// MustRegister panics on registration failure. Useful for init-time wiring.
func (r *Registry) MustRegister(kind string, ctor Constructor) {
	if err := r.Register(kind, ctor); err != nil {
		panic(err)
	}
}

// Lookup returns the constructor registered for kind. Matching is exact.
func (r *Registry) Lookup(kind string) (Constructor, bool) {
	if r == nil {
		return nil, false
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	ctor, ok := r.constructors[kind]
	return ctor, ok
}

// Kinds returns the registered kinds in sorted order.
func (r *Registry) Kinds() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	kinds := make([]string, 0, len(r.constructors))
	for kind := range r.constructors {
		kinds = append(kinds, kind)
	}
	sort.Strings(kinds)
	return kinds
}

// Has reports whether kind is registered.
func (r *Registry) Has(kind string) bool {
	_, ok := r.Lookup(kind)
	return ok
}
