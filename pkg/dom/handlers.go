package dom

import (
	"reflect"
	"strings"
	"unicode"

	"github.com/goliatone/go-uidom/pkg/toolkit"
)

// Handlers is a name-keyed handler table.
type Handlers map[string]toolkit.Handler

// Handler resolves name.
func (h Handlers) Handler(name string) (toolkit.Handler, bool) {
	fn, ok := h[name]
	return fn, ok
}

var anyType = reflect.TypeOf((*any)(nil)).Elem()

// MethodHandlers builds a handler table from the exported methods of owner.
// Each method is registered under its Go name and its snake_case form, so
// markup can say clicked_fn="on_click" for a method OnClick. Only methods
// whose parameters are all of type any (fixed or variadic) are included;
// missing arguments are passed as nil and extra arguments are dropped.
func MethodHandlers(owner any) Handlers {
	out := make(Handlers)
	if owner == nil {
		return out
	}
	value := reflect.ValueOf(owner)
	typ := value.Type()
	for idx := 0; idx < typ.NumMethod(); idx++ {
		method := typ.Method(idx)
		bound := value.Method(idx)
		fn, ok := adaptMethod(bound)
		if !ok {
			continue
		}
		out[method.Name] = fn
		out[snakeCase(method.Name)] = fn
	}
	return out
}

func adaptMethod(method reflect.Value) (toolkit.Handler, bool) {
	mtype := method.Type()
	for idx := 0; idx < mtype.NumIn(); idx++ {
		param := mtype.In(idx)
		if mtype.IsVariadic() && idx == mtype.NumIn()-1 {
			param = param.Elem()
		}
		if param != anyType {
			return nil, false
		}
	}

	if mtype.IsVariadic() {
		fixed := mtype.NumIn() - 1
		return func(args ...any) {
			in := make([]reflect.Value, 0, len(args))
			for idx := 0; idx < fixed || idx < len(args); idx++ {
				in = append(in, argValue(args, idx))
			}
			method.Call(in)
		}, true
	}

	count := mtype.NumIn()
	return func(args ...any) {
		in := make([]reflect.Value, count)
		for idx := range in {
			in[idx] = argValue(args, idx)
		}
		method.Call(in)
	}, true
}

func argValue(args []any, idx int) reflect.Value {
	if idx < len(args) && args[idx] != nil {
		value := reflect.New(anyType).Elem()
		value.Set(reflect.ValueOf(args[idx]))
		return value
	}
	return reflect.Zero(anyType)
}

// snakeCase converts OnClick to on_click and OnRGBChanged to on_rgb_changed.
func snakeCase(name string) string {
	runes := []rune(name)
	var b strings.Builder
	for idx, r := range runes {
		if unicode.IsUpper(r) {
			if idx > 0 {
				prevLower := unicode.IsLower(runes[idx-1]) || unicode.IsDigit(runes[idx-1])
				nextLower := idx+1 < len(runes) && unicode.IsLower(runes[idx+1])
				if prevLower || (nextLower && unicode.IsUpper(runes[idx-1])) {
					b.WriteByte('_')
				}
			}
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
