// Package toolkit describes the host GUI toolkit consumed by the DOM builder:
// a kind-keyed constructor lookup plus optional widget capabilities (models,
// listener registration, list items, scoped child regions). Implementations
// live outside the builder; see the headless subpackage for a recording one.
package toolkit

// Handler is an event callback. Toolkits pass event-specific arguments such as
// the model that changed.
type Handler func(args ...any)

// Widget is a constructed toolkit widget.
type Widget interface {
	Kind() string
}

// Constructor builds a widget from ordered positional arguments and keyword
// arguments. Accepted keywords are kind-specific; unknown keywords should be
// reported as an error.
type Constructor func(args []any, kwargs map[string]any) (Widget, error)

// Factory resolves constructors by widget kind.
type Factory interface {
	Lookup(kind string) (Constructor, bool)
}

// FactoryFunc adapts a function to Factory.
type FactoryFunc func(kind string) (Constructor, bool)

// Lookup calls f.
func (f FactoryFunc) Lookup(kind string) (Constructor, bool) {
	return f(kind)
}

// ModelHolder is implemented by widgets exposing a data model. Model returns
// nil when the widget has none.
type ModelHolder interface {
	Model() any
}

// ValueModel is a model with a current value.
type ValueModel interface {
	SetValue(value any) error
}

// Registrar registers a handler with a model, e.g. "add value changed".
type Registrar func(fn Handler) error

// ListenerSource exposes registration operations by name. The names match the
// binding names used in markup, such as "add_value_changed_fn".
type ListenerSource interface {
	Listener(name string) (Registrar, bool)
}

// ListModel is a list-backed model that accepts appended items. parent is the
// insertion point; nil appends to the root.
type ListModel interface {
	AppendChildItem(parent any, item any) error
}

// StringItem wraps a single string value appended to a list model.
type StringItem struct {
	Value string
}

// Region is a scoped child-content region. While entered it is the target for
// subsequently constructed widgets; Exit must be called after the last child.
type Region interface {
	Enter() error
	Exit()
}

// Framed is implemented by windows whose content lives in a separate frame.
type Framed interface {
	Frame() Region
}

// ModelOf returns the widget model when the widget exposes one.
func ModelOf(widget Widget) (any, bool) {
	holder, ok := widget.(ModelHolder)
	if !ok {
		return nil, false
	}
	model := holder.Model()
	if model == nil {
		return nil, false
	}
	return model, true
}
