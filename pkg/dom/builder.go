package dom

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/goliatone/go-uidom/pkg/markup"
	"github.com/goliatone/go-uidom/pkg/toolkit"
)

// AttributeSetter receives widgets whose declared name carries the controller
// prefix ("self.counter" sets attribute "counter").
type AttributeSetter interface {
	SetAttr(name string, widget toolkit.Widget)
}

type builder struct {
	factory    toolkit.Factory
	cfg        Config
	containers kindSet
	handlers   HandlerResolver
	attrs      AttributeSetter
	elements   *Elements
	reporter   Reporter
}

func newBuilder(factory toolkit.Factory, cfg Config, handlers HandlerResolver, attrs AttributeSetter, elements *Elements, reporter Reporter) *builder {
	return &builder{
		factory:    factory,
		cfg:        cfg,
		containers: newKindSet(cfg.ContainerKinds),
		handlers:   handlers,
		attrs:      attrs,
		elements:   elements,
		reporter:   reporter,
	}
}

// nodeBuild carries the derived construction inputs of a single node.
type nodeBuild struct {
	kind     string
	name     string
	ctor     toolkit.Constructor
	args     []any
	kwargs   *markup.Attributes
	children []*markup.Node
}

// build constructs node and its subtree. A nil widget with a nil error means
// the node was inert or failed and was reported; a non-nil error is an
// unresolvable callback and aborts the whole build.
func (b *builder) build(node *markup.Node) (toolkit.Widget, error) {
	if node == nil || node.Type == "" {
		return nil, nil
	}
	kind := node.Type

	var ctor toolkit.Constructor
	if b.factory != nil {
		ctor, _ = b.factory.Lookup(kind)
	}
	if ctor == nil {
		b.report(Diagnostic{Kind: DiagUnknownKind, Widget: kind, Name: node.Name, Err: &UnknownKindError{Kind: kind}})
		return nil, nil
	}

	kwargs := node.Attributes.Clone()
	if kwargs == nil {
		kwargs = markup.NewAttributes()
	}
	if node.RawAttributes != nil {
		b.report(Diagnostic{
			Kind:   DiagMalformedAttributes,
			Widget: kind,
			Name:   node.Name,
			Err:    &MalformedAttributesError{Kind: kind, Got: node.RawAttributes},
		})
	}

	if raw, ok := kwargs.Get(b.cfg.StyleKey); ok {
		if text, isString := raw.(string); isString {
			style, err := markup.ParseStyle(text)
			if err != nil {
				b.report(Diagnostic{Kind: DiagStyleParse, Widget: kind, Name: node.Name, Err: err})
			}
			kwargs.Set(b.cfg.StyleKey, style)
		}
	}

	var args []any
	if key, ok := b.cfg.PositionalKey(kind); ok {
		if value, present := kwargs.Delete(key); present {
			args = append(args, value)
		}
	}

	nb := &nodeBuild{
		kind:     kind,
		name:     node.Name,
		ctor:     ctor,
		args:     args,
		kwargs:   kwargs,
		children: node.Children,
	}

	switch b.cfg.StrategyFor(kind) {
	case StrategyWindow:
		return b.buildWindow(nb)
	case StrategyCombo:
		return b.buildCombo(nb)
	case StrategyRadioGroup:
		return b.buildRadioGroup(nb)
	default:
		return b.buildDefault(nb)
	}
}

func (b *builder) buildWindow(nb *nodeBuild) (toolkit.Widget, error) {
	widget, ok := b.construct(nb, nb.args, nb.kwargs)
	if !ok {
		return nil, nil
	}

	if nb.name != "" {
		if attr, isAttr := strings.CutPrefix(nb.name, b.cfg.ControllerPrefix); isAttr && b.cfg.ControllerPrefix != "" && b.attrs != nil {
			b.attrs.SetAttr(attr, widget)
		} else {
			b.elements.Set(nb.name, widget)
		}
	}

	if len(nb.children) > 0 {
		var frame toolkit.Region
		if framed, isFramed := widget.(toolkit.Framed); isFramed {
			frame = framed.Frame()
		}
		entered, err := b.withinRegion(nb, frame)
		if err != nil {
			return nil, err
		}
		if !entered {
			return nil, nil
		}
	}
	return widget, nil
}

func (b *builder) buildCombo(nb *nodeBuild) (toolkit.Widget, error) {
	bindings, err := b.extractCallbacks(nb.kind, nb.kwargs)
	if err != nil {
		return nil, err
	}

	widget, ok := b.construct(nb, nil, nb.kwargs)
	if !ok {
		return nil, nil
	}

	var items []string
	for _, child := range nb.children {
		if child == nil || child.Type != b.cfg.ComboItemKind {
			continue
		}
		text := ""
		if value, present := child.Attr(b.cfg.TextKey); present && value != nil {
			text = fmt.Sprint(value)
		}
		items = append(items, text)
	}

	if len(items) > 0 {
		model, hasModel := toolkit.ModelOf(widget)
		list, isList := model.(toolkit.ListModel)
		if !hasModel || !isList {
			b.reportConstruction(nb, nil, fmt.Errorf("%s model does not accept list items", nb.kind), nil)
			return nil, nil
		}
		for _, text := range items {
			if err := list.AppendChildItem(nil, toolkit.StringItem{Value: text}); err != nil {
				b.reportConstruction(nb, nil, fmt.Errorf("append item %q: %w", text, err), nil)
				return nil, nil
			}
		}
	}

	b.bindCallbacks(nb.kind, nb.name, widget, bindings)
	if nb.name != "" {
		b.elements.Set(nb.name, widget)
	}
	return widget, nil
}

func (b *builder) buildRadioGroup(nb *nodeBuild) (toolkit.Widget, error) {
	bindings, err := b.extractCallbacks(nb.kind, nb.kwargs)
	if err != nil {
		return nil, err
	}

	widget, ok := b.construct(nb, nil, nb.kwargs)
	if !ok {
		return nil, nil
	}

	for _, child := range nb.children {
		if child != nil && child.Type == b.cfg.RadioOptionKind {
			linked := *child
			linked.Attributes = child.Attributes.Clone()
			linked.SetAttr(b.cfg.RadioGroupKey, widget)
			child = &linked
		}
		if _, err := b.build(child); err != nil {
			return nil, err
		}
	}

	b.bindCallbacks(nb.kind, nb.name, widget, bindings)
	if nb.name != "" {
		b.elements.Set(nb.name, widget)
	}
	return widget, nil
}

func (b *builder) buildDefault(nb *nodeBuild) (toolkit.Widget, error) {
	bindings, err := b.extractCallbacks(nb.kind, nb.kwargs)
	if err != nil {
		return nil, err
	}
	modelValue, _ := nb.kwargs.Delete(b.cfg.ModelValueKey)

	var widget toolkit.Widget
	consumed := false
	if b.containers.has(nb.kind) {
		var ok bool
		widget, ok = b.construct(nb, nb.args, nb.kwargs)
		if !ok {
			return nil, nil
		}
		region, _ := widget.(toolkit.Region)
		entered, err := b.withinRegion(nb, region)
		if err != nil {
			return nil, err
		}
		if !entered {
			return nil, nil
		}
	} else {
		mergeBindings(nb.kwargs, bindings)
		consumed = true

		var ok bool
		widget, ok = b.construct(nb, nb.args, nb.kwargs)
		if !ok {
			return nil, nil
		}
		if err := b.buildChildren(nb.children); err != nil {
			return nil, err
		}
	}

	model, hasModel := toolkit.ModelOf(widget)
	if modelValue != nil && hasModel {
		setter, isSetter := model.(toolkit.ValueModel)
		if !isSetter {
			b.reportConstruction(nb, nb.args, fmt.Errorf("%s model has no current value", nb.kind), nil)
			return nil, nil
		}
		if err := setter.SetValue(modelValue); err != nil {
			b.reportConstruction(nb, nb.args, fmt.Errorf("set %s: %w", b.cfg.ModelValueKey, err), nil)
			return nil, nil
		}
	}

	if hasModel && !consumed {
		b.bindCallbacks(nb.kind, nb.name, widget, bindings)
	}
	if nb.name != "" {
		b.elements.Set(nb.name, widget)
	}
	return widget, nil
}

func (b *builder) buildChildren(children []*markup.Node) error {
	for _, child := range children {
		if _, err := b.build(child); err != nil {
			return err
		}
	}
	return nil
}

// withinRegion enters region, builds every child, and exits. The region is
// always exited once entered, including when a child aborts the build.
func (b *builder) withinRegion(nb *nodeBuild, region toolkit.Region) (bool, error) {
	if region == nil {
		b.reportConstruction(nb, nb.args, errors.New("widget has no child region"), nil)
		return false, nil
	}
	if err := region.Enter(); err != nil {
		b.reportConstruction(nb, nb.args, fmt.Errorf("enter child region: %w", err), nil)
		return false, nil
	}
	defer region.Exit()

	return true, b.buildChildren(nb.children)
}

func (b *builder) construct(nb *nodeBuild, args []any, kwargs *markup.Attributes) (toolkit.Widget, bool) {
	widget, recovered, err := callConstructor(nb.ctor, args, kwargs.Map())
	if err == nil && recovered == nil && widget == nil {
		err = errors.New("constructor returned no widget")
	}
	if err != nil || recovered != nil {
		b.reportConstruction(nb, args, err, recovered)
		return nil, false
	}
	return widget, true
}

func callConstructor(ctor toolkit.Constructor, args []any, kwargs map[string]any) (widget toolkit.Widget, recovered any, err error) {
	defer func() {
		if r := recover(); r != nil {
			widget, recovered, err = nil, r, nil
		}
	}()
	widget, err = ctor(args, kwargs)
	return widget, nil, err
}

func (b *builder) reportConstruction(nb *nodeBuild, args []any, err error, recovered any) {
	cerr := &ConstructionError{
		Kind:      nb.kind,
		Args:      append([]any(nil), args...),
		Kwargs:    nb.kwargs.Map(),
		Err:       err,
		Recovered: recovered,
	}
	b.report(Diagnostic{
		Kind:   DiagConstruction,
		Widget: nb.kind,
		Name:   nb.name,
		Args:   cerr.Args,
		Kwargs: cerr.Kwargs,
		Err:    cerr,
	})
}

func (b *builder) report(d Diagnostic) {
	if b.reporter == nil {
		return
	}
	if d.Timestamp.IsZero() {
		d.Timestamp = time.Now()
	}
	b.reporter.Report(d)
}
