package dom

import (
	"sort"
	"sync"

	"github.com/goliatone/go-uidom/pkg/markup"
	"github.com/goliatone/go-uidom/pkg/toolkit"
)

// Option customises a Controller.
type Option func(*Controller)

// WithFactory sets the toolkit used to construct widgets.
func WithFactory(factory toolkit.Factory) Option {
	return func(c *Controller) {
		c.factory = factory
	}
}

// WithConfig replaces the default kind tables. An invalid cfg makes every
// Load and LoadNode fail with ErrInvalidConfig.
func WithConfig(cfg Config) Option {
	return func(c *Controller) {
		c.config = cfg
	}
}

// WithReporter sets where recovered failures are reported. Pass nil to
// discard them.
func WithReporter(reporter Reporter) Option {
	return func(c *Controller) {
		c.reporter = reporter
		c.reporterSet = true
	}
}

// WithHandler registers a single handler name.
func WithHandler(name string, fn toolkit.Handler) Option {
	return func(c *Controller) {
		if name == "" || fn == nil {
			return
		}
		c.handlers[name] = fn
	}
}

// WithHandlers registers every entry of handlers.
func WithHandlers(handlers map[string]toolkit.Handler) Option {
	return func(c *Controller) {
		for name, fn := range handlers {
			if name == "" || fn == nil {
				continue
			}
			c.handlers[name] = fn
		}
	}
}

// WithOwner registers the eligible methods of owner as handlers (see
// MethodHandlers). When owner implements AttributeSetter it also receives
// controller-prefixed widgets.
func WithOwner(owner any) Option {
	return func(c *Controller) {
		for name, fn := range MethodHandlers(owner) {
			if _, exists := c.handlers[name]; !exists {
				c.handlers[name] = fn
			}
		}
		if setter, ok := owner.(AttributeSetter); ok {
			c.owner = setter
		}
	}
}

// WithHandlerFallback resolves handler names missing from the table. It is
// meant for previews that need every binding to resolve.
func WithHandlerFallback(fallback func(name string) (toolkit.Handler, bool)) Option {
	return func(c *Controller) {
		c.fallback = fallback
	}
}

// Controller owns a markup build: the handler table callbacks resolve
// against, controller attributes for "self."-prefixed windows, and the named
// element registry. The registry lives as long as the controller and is never
// cleared; repeated names overwrite.
type Controller struct {
	factory     toolkit.Factory
	config      Config
	configErr   error
	reporter    Reporter
	reporterSet bool
	handlers    Handlers
	fallback    func(name string) (toolkit.Handler, bool)
	owner       AttributeSetter

	mu       sync.RWMutex
	attrs    map[string]toolkit.Widget
	elements *Elements
}

// New constructs a Controller. Without WithFactory every kind is unknown;
// without WithReporter diagnostics go to a LogReporter.
func New(options ...Option) *Controller {
	c := &Controller{
		config:   DefaultConfig(),
		handlers: make(Handlers),
		attrs:    make(map[string]toolkit.Widget),
		elements: NewElements(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(c)
	}
	if !c.reporterSet {
		c.reporter = &LogReporter{}
	}
	c.configErr = c.config.Validate()
	return c
}

// Load normalises the .xml or .json file at path and builds it. It fails with
// ErrUnsupportedFormat for other extensions, with the parse error for
// malformed input, and with a *CallbackResolutionError when a binding names a
// handler the controller does not have. Other per-node failures are reported
// and the returned root may be nil.
func (c *Controller) Load(path string) (toolkit.Widget, error) {
	if c.configErr != nil {
		return nil, c.configErr
	}
	root, err := markup.LoadFile(path, c.config.markupOptions()...)
	if err != nil {
		return nil, err
	}
	return c.LoadNode(root)
}

// LoadNode builds an already normalised tree.
func (c *Controller) LoadNode(root *markup.Node) (toolkit.Widget, error) {
	if c.configErr != nil {
		return nil, c.configErr
	}
	b := newBuilder(c.factory, c.config, c, c, c.elements, c.reporter)
	return b.build(root)
}

// Elements returns the named element registry.
func (c *Controller) Elements() *Elements {
	return c.elements
}

// Config returns the active configuration.
func (c *Controller) Config() Config {
	return c.config
}

// Handler resolves a handler by name.
func (c *Controller) Handler(name string) (toolkit.Handler, bool) {
	if fn, ok := c.handlers.Handler(name); ok {
		return fn, true
	}
	if c.fallback != nil {
		return c.fallback(name)
	}
	return nil, false
}

// SetAttr stores a controller attribute and forwards it to the owner.
func (c *Controller) SetAttr(name string, widget toolkit.Widget) {
	c.mu.Lock()
	c.attrs[name] = widget
	c.mu.Unlock()

	if c.owner != nil {
		c.owner.SetAttr(name, widget)
	}
}

// Attr returns a controller attribute set through a prefixed name.
func (c *Controller) Attr(name string) (toolkit.Widget, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	widget, ok := c.attrs[name]
	return widget, ok
}

// AttrNames returns the controller attribute names in sorted order.
func (c *Controller) AttrNames() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	names := make([]string, 0, len(c.attrs))
	for name := range c.attrs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
