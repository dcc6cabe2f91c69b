package headless

import (
	"fmt"
	"sync"

	"github.com/goliatone/go-uidom/pkg/toolkit"
)

// Listener names understood by headless models.
const (
	ListenValueChanged    = "add_value_changed_fn"
	ListenBeginEdit       = "add_begin_edit_fn"
	ListenEndEdit         = "add_end_edit_fn"
	ListenSetValueChanged = "set_value_changed_fn"
	ListenItemChanged     = "add_item_changed_fn"
)

// Model is a value model with named listener lists. List-backed models also
// hold string items and treat the value as the selected index.
type Model struct {
	mu        sync.Mutex
	value     any
	list      bool
	items     []toolkit.StringItem
	listeners map[string][]toolkit.Handler
	names     []string
}

var (
	_ toolkit.ValueModel     = (*Model)(nil)
	_ toolkit.ListenerSource = (*Model)(nil)
	_ toolkit.ListModel      = (*Model)(nil)
)

func newValueModel(initial any) *Model {
	return &Model{
		value:     initial,
		listeners: make(map[string][]toolkit.Handler),
		names:     []string{ListenValueChanged, ListenBeginEdit, ListenEndEdit, ListenSetValueChanged},
	}
}

func newListModel() *Model {
	return &Model{
		value:     0,
		list:      true,
		listeners: make(map[string][]toolkit.Handler),
		names:     []string{ListenItemChanged, ListenValueChanged},
	}
}

// Value returns the current value.
func (m *Model) Value() any {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.value
}

// SetValue stores value and notifies value listeners. List models require an
// int index within range and also notify item listeners.
func (m *Model) SetValue(value any) error {
	m.mu.Lock()
	if m.list {
		idx, ok := value.(int)
		if !ok {
			m.mu.Unlock()
			return fmt.Errorf("headless: list model index must be int, got %T", value)
		}
		if idx < 0 || (len(m.items) > 0 && idx >= len(m.items)) {
			m.mu.Unlock()
			return fmt.Errorf("headless: list model index %d out of range", idx)
		}
	}
	m.value = value
	handlers := m.snapshot(ListenValueChanged, ListenSetValueChanged)
	if m.list {
		handlers = append(handlers, m.snapshot(ListenItemChanged)...)
	}
	m.mu.Unlock()

	for _, fn := range handlers {
		if m.list {
			fn(m, nil)
			continue
		}
		fn(m)
	}
	return nil
}

// EndEdit notifies end-edit listeners, as a field losing focus would.
func (m *Model) EndEdit() {
	m.mu.Lock()
	handlers := m.snapshot(ListenEndEdit)
	m.mu.Unlock()
	for _, fn := range handlers {
		fn(m)
	}
}

// Listener returns the registration operation for name.
func (m *Model) Listener(name string) (toolkit.Registrar, bool) {
	known := false
	for _, candidate := range m.names {
		if candidate == name {
			known = true
			break
		}
	}
	if !known {
		return nil, false
	}
	return func(fn toolkit.Handler) error {
		if fn == nil {
			return fmt.Errorf("headless: %s requires a handler", name)
		}
		m.mu.Lock()
		defer m.mu.Unlock()
		m.listeners[name] = append(m.listeners[name], fn)
		return nil
	}, true
}

// ListenerCount reports how many handlers are registered under name.
func (m *Model) ListenerCount(name string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.listeners[name])
}

// AppendChildItem appends a StringItem. Only list models accept items and
// only the root insertion point (nil parent) is supported.
func (m *Model) AppendChildItem(parent any, item any) error {
	if !m.list {
		return fmt.Errorf("headless: model is not list backed")
	}
	if parent != nil {
		return fmt.Errorf("headless: nested list items are not supported")
	}
	var entry toolkit.StringItem
	switch typed := item.(type) {
	case toolkit.StringItem:
		entry = typed
	case *toolkit.StringItem:
		entry = *typed
	default:
		return fmt.Errorf("headless: unsupported list item %T", item)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.items = append(m.items, entry)
	return nil
}

// Items returns the list items in order.
func (m *Model) Items() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, 0, len(m.items))
	for _, item := range m.items {
		out = append(out, item.Value)
	}
	return out
}

func (m *Model) snapshot(names ...string) []toolkit.Handler {
	var out []toolkit.Handler
	for _, name := range names {
		out = append(out, m.listeners[name]...)
	}
	return out
}
