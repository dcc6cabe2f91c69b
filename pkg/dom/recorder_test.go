package dom

import (
	"errors"
	"fmt"

	"github.com/goliatone/go-uidom/pkg/toolkit"
)

// recorder is a toolkit that accepts any keyword and records every
// constructor call, region transition and model operation in order.
type recorder struct {
	events []string
	calls  []recordedCall
	kinds  map[string]recKind
}

type recKind struct {
	model     bool
	region    bool
	framed    bool
	fail      error
	panics    any
	listeners []string
	failOn    map[string]error
}

type recordedCall struct {
	kind   string
	args   []any
	kwargs map[string]any
}

func newRecorder() *recorder {
	r := &recorder{kinds: map[string]recKind{
		"Window":          {framed: true},
		"VStack":          {region: true},
		"HStack":          {region: true},
		"Label":           {},
		"Button":          {},
		"StringField":     {model: true, listeners: []string{"add_value_changed_fn", "add_end_edit_fn"}},
		"IntField":        {model: true, listeners: []string{"add_value_changed_fn"}},
		"ComboBox":        {model: true, listeners: []string{"add_item_changed_fn"}},
		"ComboItem":       {},
		"RadioCollection": {model: true, listeners: []string{"add_value_changed_fn"}},
		"RadioButton":     {},
		"Broken":          {fail: errors.New("unexpected keyword argument 'bogus'")},
		"Panicky":         {panics: "boom"},
	}}
	return r
}

func (r *recorder) Lookup(kind string) (toolkit.Constructor, bool) {
	spec, ok := r.kinds[kind]
	if !ok {
		return nil, false
	}
	return func(args []any, kwargs map[string]any) (toolkit.Widget, error) {
		r.calls = append(r.calls, recordedCall{kind: kind, args: args, kwargs: kwargs})
		r.events = append(r.events, "new:"+kind)
		if spec.panics != nil {
			panic(spec.panics)
		}
		if spec.fail != nil {
			return nil, spec.fail
		}
		w := &recWidget{kind: kind, rec: r, spec: spec}
		if spec.model {
			w.model = &recModel{rec: r, listeners: spec.listeners, failOn: spec.failOn}
		}
		return w, nil
	}, true
}

func (r *recorder) call(kind string) (recordedCall, bool) {
	for _, c := range r.calls {
		if c.kind == kind {
			return c, true
		}
	}
	return recordedCall{}, false
}

func (r *recorder) callsOf(kind string) []recordedCall {
	var out []recordedCall
	for _, c := range r.calls {
		if c.kind == kind {
			out = append(out, c)
		}
	}
	return out
}

type recWidget struct {
	kind  string
	rec   *recorder
	spec  recKind
	model *recModel
}

func (w *recWidget) Kind() string { return w.kind }

func (w *recWidget) Model() any {
	if w.model == nil {
		return nil
	}
	return w.model
}

func (w *recWidget) Enter() error {
	if !w.spec.region {
		return fmt.Errorf("%s is not a container", w.kind)
	}
	w.rec.events = append(w.rec.events, "enter:"+w.kind)
	return nil
}

func (w *recWidget) Exit() {
	w.rec.events = append(w.rec.events, "exit:"+w.kind)
}

func (w *recWidget) Frame() toolkit.Region {
	if !w.spec.framed {
		return nil
	}
	return &recFrame{w: w}
}

type recFrame struct{ w *recWidget }

func (f *recFrame) Enter() error {
	f.w.rec.events = append(f.w.rec.events, "enter:"+f.w.kind+".frame")
	return nil
}

func (f *recFrame) Exit() {
	f.w.rec.events = append(f.w.rec.events, "exit:"+f.w.kind+".frame")
}

type recModel struct {
	rec       *recorder
	listeners []string
	failOn    map[string]error
	value     any
	items     []string
	handlers  map[string]toolkit.Handler
}

func (m *recModel) SetValue(value any) error {
	m.value = value
	m.rec.events = append(m.rec.events, fmt.Sprintf("set:%v", value))
	return nil
}

func (m *recModel) AppendChildItem(parent any, item any) error {
	text := item.(toolkit.StringItem).Value
	m.items = append(m.items, text)
	m.rec.events = append(m.rec.events, "append:"+text)
	return nil
}

func (m *recModel) Listener(name string) (toolkit.Registrar, bool) {
	for _, candidate := range m.listeners {
		if candidate != name {
			continue
		}
		return func(fn toolkit.Handler) error {
			if err := m.failOn[name]; err != nil {
				return err
			}
			if m.handlers == nil {
				m.handlers = make(map[string]toolkit.Handler)
			}
			m.handlers[name] = fn
			m.rec.events = append(m.rec.events, "register:"+name)
			return nil
		}, true
	}
	return nil, false
}
