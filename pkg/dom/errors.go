package dom

import (
	"errors"
	"fmt"

	"github.com/goliatone/go-uidom/pkg/markup"
)

// Sentinels for errors.Is checks. ErrUnsupportedFormat, ErrInvalidConfig,
// ErrCallbackResolution and ErrRegistryMiss are returned to callers; the rest
// only appear in diagnostics.
var (
	ErrUnsupportedFormat    = markup.ErrUnsupportedFormat
	ErrInvalidConfig        = errors.New("dom: invalid config")
	ErrUnknownKind          = errors.New("dom: unknown widget kind")
	ErrMalformedAttributes  = errors.New("dom: attributes are not a mapping")
	ErrCallbackResolution   = errors.New("dom: callback handler not found")
	ErrCallbackRegistration = errors.New("dom: callback registration failed")
	ErrMissingListener      = errors.New("dom: model has no listener")
	ErrConstruction         = errors.New("dom: widget construction failed")
	ErrRegistryMiss         = errors.New("dom: element not found")
)

// UnknownKindError reports a kind with no constructor.
type UnknownKindError struct {
	Kind string
}

func (e *UnknownKindError) Error() string {
	return fmt.Sprintf("dom: widget type %q not found in toolkit", e.Kind)
}

func (e *UnknownKindError) Is(target error) bool { return target == ErrUnknownKind }

// MalformedAttributesError reports an attributes payload that is not a mapping.
type MalformedAttributesError struct {
	Kind string
	Got  any
}

func (e *MalformedAttributesError) Error() string {
	return fmt.Sprintf("dom: attributes for %s is not a mapping: %v (%T)", e.Kind, e.Got, e.Got)
}

func (e *MalformedAttributesError) Is(target error) bool { return target == ErrMalformedAttributes }

// CallbackResolutionError reports a binding whose handler cannot be resolved.
type CallbackResolutionError struct {
	Kind    string
	Binding string
	Handler string
	Got     any
}

func (e *CallbackResolutionError) Error() string {
	if e.Handler != "" {
		return fmt.Sprintf("dom: %s.%s: controller has no handler %q", e.Kind, e.Binding, e.Handler)
	}
	return fmt.Sprintf("dom: %s.%s: value of type %T is not callable", e.Kind, e.Binding, e.Got)
}

func (e *CallbackResolutionError) Is(target error) bool { return target == ErrCallbackResolution }

// RegistrationError reports a listener registration call that failed.
type RegistrationError struct {
	Kind      string
	Binding   string
	Err       error
	Recovered any
}

func (e *RegistrationError) Error() string {
	if e.Recovered != nil {
		return fmt.Sprintf("dom: registering %s on %s panicked: %v", e.Binding, e.Kind, e.Recovered)
	}
	return fmt.Sprintf("dom: registering %s on %s: %v", e.Binding, e.Kind, e.Err)
}

func (e *RegistrationError) Unwrap() error { return e.Err }

func (e *RegistrationError) Is(target error) bool { return target == ErrCallbackRegistration }

// MissingListenerError reports a binding the widget model cannot register.
type MissingListenerError struct {
	Kind    string
	Binding string
}

func (e *MissingListenerError) Error() string {
	return fmt.Sprintf("dom: %s model does not have method %q", e.Kind, e.Binding)
}

func (e *MissingListenerError) Is(target error) bool { return target == ErrMissingListener }

// ConstructionError reports a widget that could not be created or finalised.
type ConstructionError struct {
	Kind      string
	Args      []any
	Kwargs    map[string]any
	Err       error
	Recovered any
}

func (e *ConstructionError) Error() string {
	cause := fmt.Sprint(e.Err)
	if e.Recovered != nil {
		cause = fmt.Sprintf("panic: %v", e.Recovered)
	}
	return fmt.Sprintf("dom: creating %s (args=%v kwargs=%v): %s", e.Kind, e.Args, e.Kwargs, cause)
}

func (e *ConstructionError) Unwrap() error { return e.Err }

func (e *ConstructionError) Is(target error) bool { return target == ErrConstruction }

// RegistryMissError reports a read of a name that was never registered.
type RegistryMissError struct {
	Name string
}

func (e *RegistryMissError) Error() string {
	return fmt.Sprintf("dom: element %q not found", e.Name)
}

func (e *RegistryMissError) Is(target error) bool { return target == ErrRegistryMiss }
