package dom

import (
	"sort"
	"sync"

	"github.com/goliatone/go-uidom/pkg/toolkit"
)

// Elements maps declared names to built widgets. Writes always succeed and
// overwrite; reads of unset names fail with *RegistryMissError.
type Elements struct {
	mu    sync.RWMutex
	items map[string]toolkit.Widget
}

// NewElements returns an empty registry.
func NewElements() *Elements {
	return &Elements{items: make(map[string]toolkit.Widget)}
}

// Set stores widget under name, replacing any previous widget.
func (e *Elements) Set(name string, widget toolkit.Widget) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.items[name] = widget
}

// Get returns the widget registered under name.
func (e *Elements) Get(name string) (toolkit.Widget, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	widget, ok := e.items[name]
	if !ok {
		return nil, &RegistryMissError{Name: name}
	}
	return widget, nil
}

// MustGet panics when name is not registered.
func (e *Elements) MustGet(name string) toolkit.Widget {
	widget, err := e.Get(name)
	if err != nil {
		panic(err)
	}
	return widget
}

// Has reports whether name is registered.
func (e *Elements) Has(name string) bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	_, ok := e.items[name]
	return ok
}

// Names returns the registered names in sorted order.
func (e *Elements) Names() []string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	names := make([]string, 0, len(e.items))
	for name := range e.items {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
