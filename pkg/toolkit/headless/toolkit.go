package headless

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/goliatone/go-uidom/pkg/toolkit"
)

// Toolkit is a headless widget factory. Widgets constructed while a region is
// entered become children of that region; others become roots.
type Toolkit struct {
	mu       sync.Mutex
	registry *toolkit.Registry
	stack    []*Widget
	roots    []*Widget
	built    int
}

var _ toolkit.Factory = (*Toolkit)(nil)

// New returns a toolkit with the full headless catalog registered.
func New() *Toolkit {
	tk := &Toolkit{registry: toolkit.NewRegistry()}
	for kind, spec := range catalog {
		tk.registry.MustRegister(kind, tk.constructor(kind, spec))
	}
	return tk
}

// Lookup resolves a constructor by exact kind name.
func (t *Toolkit) Lookup(kind string) (toolkit.Constructor, bool) {
	return t.registry.Lookup(kind)
}

// Kinds returns the registered kinds in sorted order.
func (t *Toolkit) Kinds() []string {
	return t.registry.Kinds()
}

// Roots returns widgets constructed outside any region, in order.
func (t *Toolkit) Roots() []*Widget {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]*Widget(nil), t.roots...)
}

// Built reports how many widgets were constructed.
func (t *Toolkit) Built() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.built
}

// Depth reports how many regions are currently entered.
func (t *Toolkit) Depth() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.stack)
}

func (t *Toolkit) constructor(kind string, spec kindSpec) toolkit.Constructor {
	return func(args []any, kwargs map[string]any) (toolkit.Widget, error) {
		if len(args) > spec.positional {
			return nil, fmt.Errorf("headless: %s takes %d positional arguments but %d were given", kind, spec.positional, len(args))
		}

		w := &Widget{
			kind:      kind,
			Args:      append([]any(nil), args...),
			Kwargs:    make(map[string]any, len(kwargs)),
			callbacks: make(map[string]toolkit.Handler),
			tk:        t,
			spec:      spec,
		}
		switch spec.model {
		case modelValue:
			w.model = newValueModel(spec.initial)
		case modelList:
			w.model = newListModel()
		}
		if spec.region == regionFrame {
			w.frame = &frameRegion{window: w}
		}

		keys := sortedKeys(kwargs)
		for _, key := range keys {
			if !strings.HasSuffix(key, "_fn") && !spec.accepts(key) {
				return nil, fmt.Errorf("headless: %s got an unexpected keyword argument %q", kind, key)
			}
		}
		for _, key := range keys {
			if err := w.applyKeyword(key, kwargs[key]); err != nil {
				return nil, err
			}
		}

		t.attach(w)
		return w, nil
	}
}

func (w *Widget) applyKeyword(key string, value any) error {
	if strings.HasSuffix(key, "_fn") {
		fn, ok := value.(toolkit.Handler)
		if !ok {
			return fmt.Errorf("headless: %s keyword %q expects a handler, got %T", w.kind, key, value)
		}
		if w.model != nil {
			if register, ok := w.model.Listener(key); ok {
				return register(fn)
			}
		}
		w.callbacks[key] = fn
		return nil
	}

	if key == "radio_collection" {
		collection, ok := value.(*Widget)
		if !ok || collection.kind != "RadioCollection" {
			return errRadioCollection
		}
		collection.options = append(collection.options, w)
	}

	w.Kwargs[key] = value
	return nil
}

func (t *Toolkit) attach(w *Widget) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.built++
	if w.spec.region == regionFrame || len(t.stack) == 0 {
		t.roots = append(t.roots, w)
		return
	}
	parent := t.stack[len(t.stack)-1]
	w.Parent = parent
	parent.Children = append(parent.Children, w)
}

func (t *Toolkit) push(w *Widget) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.stack = append(t.stack, w)
}

func (t *Toolkit) pop(w *Widget) {
	t.mu.Lock()
	defer t.mu.Unlock()
	for idx := len(t.stack) - 1; idx >= 0; idx-- {
		if t.stack[idx] == w {
			t.stack = append(t.stack[:idx], t.stack[idx+1:]...)
			return
		}
	}
}

func sortedKeys(values map[string]any) []string {
	keys := make([]string, 0, len(values))
	for key := range values {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
