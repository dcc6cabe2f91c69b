package dom

import (
	"strings"

	"github.com/goliatone/go-uidom/pkg/markup"
	"github.com/goliatone/go-uidom/pkg/toolkit"
)

// Binding pairs a binding name (an attribute key ending in the callback
// suffix) with its resolved handler.
type Binding struct {
	Name    string
	Handler toolkit.Handler
}

// HandlerResolver resolves handler names written in markup.
type HandlerResolver interface {
	Handler(name string) (toolkit.Handler, bool)
}

// extractCallbacks removes every binding attribute from attrs, in declaration
// order. String values name a handler on the resolver; function values are
// used as they are. An unresolvable name is returned as an error.
func (b *builder) extractCallbacks(kind string, attrs *markup.Attributes) ([]Binding, error) {
	var bindings []Binding
	for _, key := range attrs.Keys() {
		if !strings.HasSuffix(key, b.cfg.CallbackSuffix) {
			continue
		}
		value, _ := attrs.Delete(key)

		fn, err := b.resolveHandler(kind, key, value)
		if err != nil {
			return nil, err
		}
		bindings = append(bindings, Binding{Name: key, Handler: fn})
	}
	return bindings, nil
}

func (b *builder) resolveHandler(kind, binding string, value any) (toolkit.Handler, error) {
	switch typed := value.(type) {
	case string:
		if b.handlers != nil {
			if fn, ok := b.handlers.Handler(typed); ok && fn != nil {
				return fn, nil
			}
		}
		return nil, &CallbackResolutionError{Kind: kind, Binding: binding, Handler: typed}
	case toolkit.Handler:
		if typed != nil {
			return typed, nil
		}
	case func(...any):
		if typed != nil {
			return toolkit.Handler(typed), nil
		}
	case func():
		if typed != nil {
			return func(...any) { typed() }, nil
		}
	}
	return nil, &CallbackResolutionError{Kind: kind, Binding: binding, Got: value}
}

// bindCallbacks registers each binding through the widget model's listener of
// the same name. Missing listeners and failed registrations are reported and
// skipped so the remaining bindings still register.
func (b *builder) bindCallbacks(kind, name string, widget toolkit.Widget, bindings []Binding) {
	if len(bindings) == 0 || widget == nil {
		return
	}
	model, ok := toolkit.ModelOf(widget)
	if !ok {
		return
	}
	source, _ := model.(toolkit.ListenerSource)

	for _, binding := range bindings {
		var register toolkit.Registrar
		if source != nil {
			register, _ = source.Listener(binding.Name)
		}
		if register == nil {
			b.report(Diagnostic{
				Kind:   DiagMissingListener,
				Widget: kind,
				Name:   name,
				Err:    &MissingListenerError{Kind: kind, Binding: binding.Name},
			})
			continue
		}
		if err := safeRegister(kind, binding, register); err != nil {
			b.report(Diagnostic{
				Kind:   DiagRegistration,
				Widget: kind,
				Name:   name,
				Err:    err,
			})
		}
	}
}

func safeRegister(kind string, binding Binding, register toolkit.Registrar) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &RegistrationError{Kind: kind, Binding: binding.Name, Recovered: r}
		}
	}()
	if regErr := register(binding.Handler); regErr != nil {
		return &RegistrationError{Kind: kind, Binding: binding.Name, Err: regErr}
	}
	return nil
}

func mergeBindings(attrs *markup.Attributes, bindings []Binding) {
	for _, binding := range bindings {
		attrs.Set(binding.Name, binding.Handler)
	}
}
