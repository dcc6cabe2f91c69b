package headless

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/goliatone/go-uidom/pkg/toolkit"
)

// Widget is a recorded headless widget.
type Widget struct {
	kind     string
	Args     []any
	Kwargs   map[string]any
	Parent   *Widget
	Children []*Widget

	model     *Model
	callbacks map[string]toolkit.Handler
	frame     *frameRegion
	tk        *Toolkit
	spec      kindSpec
	options   []*Widget
}

var (
	_ toolkit.Widget      = (*Widget)(nil)
	_ toolkit.ModelHolder = (*Widget)(nil)
	_ toolkit.Region      = (*Widget)(nil)
	_ toolkit.Framed      = (*Widget)(nil)
)

// Kind returns the widget kind.
func (w *Widget) Kind() string {
	return w.kind
}

// Model returns the widget model, or nil for widgets without one.
func (w *Widget) Model() any {
	if w.model == nil {
		return nil
	}
	return w.model
}

// ValueModel returns the concrete model, or nil.
func (w *Widget) ValueModel() *Model {
	return w.model
}

// Text returns the first positional argument rendered as a string.
func (w *Widget) Text() string {
	if len(w.Args) == 0 {
		if title, ok := w.Kwargs["title"].(string); ok {
			return title
		}
		if text, ok := w.Kwargs["text"].(string); ok {
			return text
		}
		return ""
	}
	return fmt.Sprint(w.Args[0])
}

// Callback returns a constructor-supplied callback such as clicked_fn.
func (w *Widget) Callback(name string) (toolkit.Handler, bool) {
	fn, ok := w.callbacks[name]
	return fn, ok
}

// CallbackNames lists constructor-supplied callbacks in sorted order.
func (w *Widget) CallbackNames() []string {
	names := make([]string, 0, len(w.callbacks))
	for name := range w.callbacks {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Click fires clicked_fn when present.
func (w *Widget) Click() bool {
	fn, ok := w.callbacks["clicked_fn"]
	if !ok {
		return false
	}
	fn()
	return true
}

// Options returns the radio buttons linked to a RadioCollection.
func (w *Widget) Options() []*Widget {
	return append([]*Widget(nil), w.options...)
}

// Enter makes a container the build target for new widgets.
func (w *Widget) Enter() error {
	if w.spec.region != regionSelf {
		return fmt.Errorf("headless: %s is not a container", w.kind)
	}
	w.tk.push(w)
	return nil
}

// Exit releases a container entered with Enter.
func (w *Widget) Exit() {
	w.tk.pop(w)
}

// Frame returns the content region of a window, or nil for other kinds.
func (w *Widget) Frame() toolkit.Region {
	if w.frame == nil {
		return nil
	}
	return w.frame
}

// Find returns the first descendant (depth-first, including w) of kind.
func (w *Widget) Find(kind string) *Widget {
	if w.kind == kind {
		return w
	}
	for _, child := range w.Children {
		if found := child.Find(kind); found != nil {
			return found
		}
	}
	return nil
}

// Path returns the kind path from the root to w, joined by "/".
func (w *Widget) Path() string {
	var parts []string
	for cur := w; cur != nil; cur = cur.Parent {
		parts = append([]string{cur.kind}, parts...)
	}
	return strings.Join(parts, "/")
}

type frameRegion struct {
	window *Widget
}

func (f *frameRegion) Enter() error {
	f.window.tk.push(f.window)
	return nil
}

func (f *frameRegion) Exit() {
	f.window.tk.pop(f.window)
}

var errRadioCollection = errors.New("headless: radio_collection must be a RadioCollection widget")
