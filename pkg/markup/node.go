package markup

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Node is the canonical unit of the markup tree shared by both source formats.
// A node with an empty Type is inert and never yields a widget.
type Node struct {
	Type       string
	Name       string
	Attributes *Attributes
	Children   []*Node

	// RawAttributes holds an attributes payload that was not a mapping. The
	// builder reports it and treats the node as having no attributes.
	RawAttributes any
}

// HasAttributes reports whether the node carries an attribute set, even an
// empty one. XML elements without attributes never do.
func (n *Node) HasAttributes() bool {
	return n != nil && n.Attributes != nil
}

// Attr returns the attribute value for key.
func (n *Node) Attr(key string) (any, bool) {
	if n == nil || n.Attributes == nil {
		return nil, false
	}
	return n.Attributes.Get(key)
}

// SetAttr writes key, creating the attribute set when the node has none.
func (n *Node) SetAttr(key string, value any) {
	if n.Attributes == nil {
		n.Attributes = NewAttributes()
	}
	n.Attributes.Set(key, value)
}

type nodeFile struct {
	Type       string          `json:"type"`
	Name       string          `json:"name,omitempty"`
	Attributes json.RawMessage `json:"attributes,omitempty"`
	Children   []*Node         `json:"children,omitempty"`
}

// MarshalJSON writes the canonical layout. Absent attributes and children are
// omitted rather than emitted empty.
func (n *Node) MarshalJSON() ([]byte, error) {
	out := nodeFile{
		Type:     n.Type,
		Name:     n.Name,
		Children: n.Children,
	}
	if n.Attributes != nil {
		raw, err := n.Attributes.MarshalJSON()
		if err != nil {
			return nil, err
		}
		out.Attributes = raw
	} else if n.RawAttributes != nil {
		raw, err := json.Marshal(n.RawAttributes)
		if err != nil {
			return nil, err
		}
		out.Attributes = raw
	}
	return json.Marshal(out)
}

// UnmarshalJSON reads the canonical layout. A non-object attributes payload is
// kept in RawAttributes instead of failing the document.
func (n *Node) UnmarshalJSON(data []byte) error {
	var in nodeFile
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}
	*n = Node{
		Type:     in.Type,
		Name:     in.Name,
		Children: in.Children,
	}

	raw := bytes.TrimSpace(in.Attributes)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil
	}
	if raw[0] != '{' {
		value, err := decodeValue(raw)
		if err != nil {
			return fmt.Errorf("markup: node %q attributes: %w", in.Type, err)
		}
		n.RawAttributes = value
		return nil
	}

	attrs := NewAttributes()
	if err := attrs.UnmarshalJSON(raw); err != nil {
		return fmt.Errorf("markup: node %q attributes: %w", in.Type, err)
	}
	n.Attributes = attrs
	return nil
}

func decodeValue(raw []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var value any
	if err := dec.Decode(&value); err != nil {
		return nil, err
	}
	return normalizeNumbers(value), nil
}

// normalizeNumbers converts json.Number leaves into int when the literal is
// integral and fits in int64, and float64 otherwise. Integers beyond int64
// lose precision the same way Coerce does for XML attribute values.
func normalizeNumbers(value any) any {
	switch typed := value.(type) {
	case json.Number:
		if i, err := typed.Int64(); err == nil {
			return int(i)
		}
		if f, err := typed.Float64(); err == nil {
			return f
		}
		return typed.String()
	case map[string]any:
		for key, entry := range typed {
			typed[key] = normalizeNumbers(entry)
		}
		return typed
	case []any:
		for idx, entry := range typed {
			typed[idx] = normalizeNumbers(entry)
		}
		return typed
	default:
		return value
	}
}
