package toolkit

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

type stubWidget struct{ kind string }

func (w stubWidget) Kind() string { return w.kind }

func stubCtor(kind string) Constructor {
	return func(args []any, kwargs map[string]any) (Widget, error) {
		return stubWidget{kind: kind}, nil
	}
}

func TestRegistry_RegisterAndLookup(t *testing.T) {
	reg := NewRegistry()
	reg.MustRegister("Label", stubCtor("Label"))
	reg.MustRegister("Button", stubCtor("Button"))

	ctor, ok := reg.Lookup("Label")
	if !ok {
		t.Fatalf("expected Label to resolve")
	}
	widget, err := ctor(nil, nil)
	if err != nil || widget.Kind() != "Label" {
		t.Fatalf("unexpected widget %#v (err=%v)", widget, err)
	}

	if _, ok := reg.Lookup("label"); ok {
		t.Fatalf("lookup must be exact")
	}
	if diff := cmp.Diff([]string{"Button", "Label"}, reg.Kinds()); diff != "" {
		t.Fatalf("kinds mismatch (-want +got):\n%s", diff)
	}
}

func TestRegistry_RejectsInvalid(t *testing.T) {
	reg := NewRegistry()
	if err := reg.Register("", stubCtor("x")); err == nil {
		t.Fatalf("expected empty kind error")
	}
	if err := reg.Register("Label", nil); err == nil {
		t.Fatalf("expected nil constructor error")
	}
	reg.MustRegister("Label", stubCtor("Label"))
	if err := reg.Register("Label", stubCtor("Label")); err == nil {
		t.Fatalf("expected duplicate kind error")
	}
}

func TestModelOf(t *testing.T) {
	if _, ok := ModelOf(stubWidget{kind: "Spacer"}); ok {
		t.Fatalf("widget without ModelHolder must report no model")
	}
	if _, ok := ModelOf(nilModelWidget{}); ok {
		t.Fatalf("nil model must report no model")
	}
}

type nilModelWidget struct{ stubWidget }

func (nilModelWidget) Model() any { return nil }
