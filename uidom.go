package uidom

import (
	"bytes"

	"github.com/goliatone/go-uidom/pkg/dom"
	"github.com/goliatone/go-uidom/pkg/markup"
	"github.com/goliatone/go-uidom/pkg/preview"
	"github.com/goliatone/go-uidom/pkg/toolkit"
	"github.com/goliatone/go-uidom/pkg/toolkit/headless"
)

// Node aliases markup.Node, the canonical element tree.
type Node = markup.Node

// Controller aliases dom.Controller for callers that only import the root
// package.
type Controller = dom.Controller

// Option aliases dom.Option.
type Option = dom.Option

// Config aliases dom.Config.
type Config = dom.Config

// New exposes the controller constructor from the top-level module.
func New(options ...Option) *Controller {
	return dom.New(options...)
}

// LoadFile normalises an .xml or .json markup file without building it.
func LoadFile(path string) (*Node, error) {
	return markup.LoadFile(path)
}

// LoadHeadless builds path against a fresh headless toolkit and returns the
// toolkit with the root widget. Options are applied after the toolkit is
// installed as the factory.
func LoadHeadless(path string, options ...Option) (*headless.Toolkit, toolkit.Widget, error) {
	tk := headless.New()
	ctrl := dom.New(append([]Option{dom.WithFactory(tk)}, options...)...)
	root, err := ctrl.Load(path)
	if err != nil {
		return nil, nil, err
	}
	return tk, root, nil
}

// Outline builds path headlessly and returns its text outline. It is the
// simplest way to check what a markup file produces.
func Outline(path string, options ...Option) (string, error) {
	tk, _, err := LoadHeadless(path, options...)
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if err := preview.Text(&buf, tk.Roots()); err != nil {
		return "", err
	}
	return buf.String(), nil
}
