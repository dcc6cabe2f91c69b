package headless

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-uidom/pkg/toolkit"
)

func build(t *testing.T, tk *Toolkit, kind string, args []any, kwargs map[string]any) *Widget {
	t.Helper()
	ctor, ok := tk.Lookup(kind)
	if !ok {
		t.Fatalf("kind %s not registered", kind)
	}
	widget, err := ctor(args, kwargs)
	if err != nil {
		t.Fatalf("construct %s: %v", kind, err)
	}
	return widget.(*Widget)
}

func TestRegionsParentChildren(t *testing.T) {
	tk := New()
	window := build(t, tk, "Window", []any{"Demo"}, map[string]any{"width": 200})

	if err := window.Frame().Enter(); err != nil {
		t.Fatalf("enter frame: %v", err)
	}
	stack := build(t, tk, "VStack", nil, nil)
	if err := stack.Enter(); err != nil {
		t.Fatalf("enter stack: %v", err)
	}
	label := build(t, tk, "Label", []any{"Hello"}, nil)
	stack.Exit()
	window.Frame().Exit()

	if tk.Depth() != 0 {
		t.Fatalf("expected all regions released, depth=%d", tk.Depth())
	}
	if got := label.Path(); got != "Window/VStack/Label" {
		t.Fatalf("unexpected path %q", got)
	}
	if len(tk.Roots()) != 1 || tk.Roots()[0] != window {
		t.Fatalf("window should be the only root")
	}
	if window.Text() != "Demo" || label.Text() != "Hello" {
		t.Fatalf("unexpected texts %q %q", window.Text(), label.Text())
	}

	after := build(t, tk, "Label", []any{"Outside"}, nil)
	if after.Parent != nil {
		t.Fatalf("widgets built after exit must not be parented")
	}
}

func TestConstructorValidation(t *testing.T) {
	tk := New()
	ctor, _ := tk.Lookup("Label")

	if _, err := ctor(nil, map[string]any{"bogus": 1}); err == nil || !strings.Contains(err.Error(), "bogus") {
		t.Fatalf("expected unexpected keyword error, got %v", err)
	}
	if _, err := ctor([]any{"a", "b"}, nil); err == nil {
		t.Fatalf("expected positional argument error")
	}
	if _, err := ctor(nil, map[string]any{"clicked_fn": "not a handler"}); err == nil {
		t.Fatalf("expected handler type error")
	}

	spacer := build(t, tk, "Spacer", nil, nil)
	if err := spacer.Enter(); err == nil {
		t.Fatalf("non-container Enter must fail")
	}
}

func TestButtonClickedCallback(t *testing.T) {
	tk := New()
	clicks := 0
	button := build(t, tk, "Button", []any{"Go"}, map[string]any{
		"clicked_fn": toolkit.Handler(func(...any) { clicks++ }),
	})
	if !button.Click() || clicks != 1 {
		t.Fatalf("expected clicked_fn to fire once, clicks=%d", clicks)
	}
	if diff := cmp.Diff([]string{"clicked_fn"}, button.CallbackNames()); diff != "" {
		t.Fatalf("callback names mismatch (-want +got):\n%s", diff)
	}
}

func TestValueModelListeners(t *testing.T) {
	tk := New()
	var seen []any
	field := build(t, tk, "IntField", nil, map[string]any{
		ListenValueChanged: toolkit.Handler(func(args ...any) {
			seen = append(seen, args[0].(*Model).Value())
		}),
	})

	model := field.ValueModel()
	if model.ListenerCount(ListenValueChanged) != 1 {
		t.Fatalf("constructor keyword should register on the model")
	}
	if err := model.SetValue(7); err != nil {
		t.Fatalf("set value: %v", err)
	}
	if diff := cmp.Diff([]any{7}, seen); diff != "" {
		t.Fatalf("listener values mismatch (-want +got):\n%s", diff)
	}

	if _, ok := model.Listener("add_item_changed_fn"); ok {
		t.Fatalf("value models do not expose item listeners")
	}
}

func TestListModel(t *testing.T) {
	tk := New()
	combo := build(t, tk, "ComboBox", nil, nil)
	model := combo.ValueModel()

	for _, text := range []string{"A", "B"} {
		if err := model.AppendChildItem(nil, toolkit.StringItem{Value: text}); err != nil {
			t.Fatalf("append: %v", err)
		}
	}
	if err := model.AppendChildItem("parent", toolkit.StringItem{Value: "C"}); err == nil {
		t.Fatalf("nested items must be rejected")
	}
	if diff := cmp.Diff([]string{"A", "B"}, model.Items()); diff != "" {
		t.Fatalf("items mismatch (-want +got):\n%s", diff)
	}

	changed := 0
	register, ok := model.Listener(ListenItemChanged)
	if !ok {
		t.Fatalf("list model should expose %s", ListenItemChanged)
	}
	if err := register(func(...any) { changed++ }); err != nil {
		t.Fatalf("register: %v", err)
	}
	if err := model.SetValue(1); err != nil {
		t.Fatalf("select: %v", err)
	}
	if err := model.SetValue(5); err == nil {
		t.Fatalf("out of range selection must fail")
	}
	if changed != 1 {
		t.Fatalf("expected one item change, got %d", changed)
	}
}

func TestRadioCollectionLinksOptions(t *testing.T) {
	tk := New()
	collection := build(t, tk, "RadioCollection", nil, nil)
	first := build(t, tk, "RadioButton", []any{"One"}, map[string]any{"radio_collection": collection})
	second := build(t, tk, "RadioButton", []any{"Two"}, map[string]any{"radio_collection": collection})

	options := collection.Options()
	if len(options) != 2 || options[0] != first || options[1] != second {
		t.Fatalf("radio options not linked in order: %#v", options)
	}

	ctor, _ := tk.Lookup("RadioButton")
	if _, err := ctor(nil, map[string]any{"radio_collection": "nope"}); err == nil {
		t.Fatalf("expected radio_collection type error")
	}
}
