package markup

import (
	"bytes"
	"encoding/json"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Designer-assigned names are written as x:Name with this namespace bound to
// the x prefix.
const (
	DefaultNameNamespace = "http://schemas.ui/name"
	DefaultNameLocal     = "Name"
)

// ErrUnsupportedFormat is returned for files that are neither .json nor .xml.
var ErrUnsupportedFormat = errors.New("markup: unsupported file type")

// Format identifies a markup serialization.
type Format string

const (
	FormatJSON Format = "json"
	FormatXML  Format = "xml"
)

// Options configures XML normalisation.
type Options struct {
	NameNamespace string
	NameLocal     string
}

// Option mutates Options.
type Option func(*Options)

// WithNameAttribute overrides the namespaced attribute hoisted into Node.Name.
func WithNameAttribute(namespace, local string) Option {
	return func(o *Options) {
		if strings.TrimSpace(local) == "" {
			return
		}
		o.NameNamespace = strings.TrimSpace(namespace)
		o.NameLocal = strings.TrimSpace(local)
	}
}

func newOptions(options []Option) Options {
	opts := Options{
		NameNamespace: DefaultNameNamespace,
		NameLocal:     DefaultNameLocal,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&opts)
	}
	return opts
}

// FormatOf resolves the serialization from a path suffix.
func FormatOf(path string) (Format, error) {
	switch {
	case strings.HasSuffix(path, ".json"):
		return FormatJSON, nil
	case strings.HasSuffix(path, ".xml"):
		return FormatXML, nil
	default:
		return "", fmt.Errorf("%w: %s. Must be .xml or .json", ErrUnsupportedFormat, path)
	}
}

// LoadFile reads path and returns the canonical root node.
func LoadFile(path string, options ...Option) (*Node, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("markup: read %s: %w", path, err)
	}

	node, err := Parse(data, format, options...)
	if err != nil {
		return nil, fmt.Errorf("markup: parse %s: %w", filepath.Base(path), err)
	}
	return node, nil
}

// Parse normalises data in the given format.
func Parse(data []byte, format Format, options ...Option) (*Node, error) {
	switch format {
	case FormatJSON:
		return ParseJSON(data)
	case FormatXML:
		return ParseXML(bytes.NewReader(data), options...)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}

// ParseJSON decodes a node-shaped JSON document.
func ParseJSON(data []byte) (*Node, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, errors.New("markup: empty JSON document")
	}
	var node Node
	if err := json.Unmarshal(data, &node); err != nil {
		return nil, fmt.Errorf("markup: decode JSON: %w", err)
	}
	return &node, nil
}

// ParseXML converts the root element of r into a canonical node. Comments,
// processing instructions, directives and character data are dropped.
func ParseXML(r io.Reader, options ...Option) (*Node, error) {
	opts := newOptions(options)
	dec := xml.NewDecoder(r)

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			return nil, errors.New("markup: XML document has no root element")
		}
		if err != nil {
			return nil, fmt.Errorf("markup: decode XML: %w", err)
		}
		if start, ok := tok.(xml.StartElement); ok {
			node, err := readElement(dec, start, opts)
			if err != nil {
				return nil, fmt.Errorf("markup: decode XML: %w", err)
			}
			if err := expectEOF(dec); err != nil {
				return nil, fmt.Errorf("markup: decode XML: %w", err)
			}
			return node, nil
		}
	}
}

// expectEOF drains the stream after the root element. Only comments,
// processing instructions and whitespace may follow it.
func expectEOF(dec *xml.Decoder) error {
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		switch typed := tok.(type) {
		case xml.StartElement:
			return fmt.Errorf("junk after document element: <%s>", typed.Name.Local)
		case xml.CharData:
			if len(bytes.TrimSpace(typed)) > 0 {
				return fmt.Errorf("junk after document element: %q", string(typed))
			}
		}
	}
}

func readElement(dec *xml.Decoder, start xml.StartElement, opts Options) (*Node, error) {
	node := &Node{Type: qualifiedName(start.Name)}

	attrs := NewAttributes()
	for _, attr := range start.Attr {
		if isNamespaceDecl(attr.Name) {
			continue
		}
		if attr.Name.Space == opts.NameNamespace && attr.Name.Local == opts.NameLocal {
			node.Name = attr.Value
			continue
		}
		attrs.Set(qualifiedName(attr.Name), Coerce(attr.Value))
	}
	if attrs.Len() > 0 {
		node.Attributes = attrs
	}

	for {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		switch typed := tok.(type) {
		case xml.StartElement:
			child, err := readElement(dec, typed, opts)
			if err != nil {
				return nil, err
			}
			node.Children = append(node.Children, child)
		case xml.EndElement:
			return node, nil
		}
	}
}

func qualifiedName(name xml.Name) string {
	if name.Space == "" {
		return name.Local
	}
	return "{" + name.Space + "}" + name.Local
}

func isNamespaceDecl(name xml.Name) bool {
	return name.Space == "xmlns" || (name.Space == "" && name.Local == "xmlns")
}
