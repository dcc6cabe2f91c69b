package markup

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
)

// Attribute is a single key/value pair in declaration order.
type Attribute struct {
	Key   string
	Value any
}

// Attributes is an insertion-ordered attribute set with unique keys. Values are
// int, float64, bool, string, map[string]any, []any, or caller-supplied values
// such as handlers and widgets injected during a build.
type Attributes struct {
	keys   []string
	values map[string]any
}

// NewAttributes returns an empty attribute set.
func NewAttributes() *Attributes {
	return &Attributes{values: make(map[string]any)}
}

// AttributesOf builds an attribute set from pairs, keeping their order. Later
// duplicates overwrite earlier values in place.
func AttributesOf(pairs ...Attribute) *Attributes {
	attrs := NewAttributes()
	for _, pair := range pairs {
		attrs.Set(pair.Key, pair.Value)
	}
	return attrs
}

// Len reports the number of attributes.
func (a *Attributes) Len() int {
	if a == nil {
		return 0
	}
	return len(a.keys)
}

// Get returns the value stored under key.
func (a *Attributes) Get(key string) (any, bool) {
	if a == nil {
		return nil, false
	}
	value, ok := a.values[key]
	return value, ok
}

// Set stores value under key. New keys are appended; existing keys keep their
// position.
func (a *Attributes) Set(key string, value any) {
	if a.values == nil {
		a.values = make(map[string]any)
	}
	if _, exists := a.values[key]; !exists {
		a.keys = append(a.keys, key)
	}
	a.values[key] = value
}

// Delete removes key and returns the previous value.
func (a *Attributes) Delete(key string) (any, bool) {
	if a == nil {
		return nil, false
	}
	value, ok := a.values[key]
	if !ok {
		return nil, false
	}
	delete(a.values, key)
	for idx, existing := range a.keys {
		if existing == key {
			a.keys = append(a.keys[:idx], a.keys[idx+1:]...)
			break
		}
	}
	return value, true
}

// Keys returns the attribute keys in order.
func (a *Attributes) Keys() []string {
	if a == nil {
		return nil
	}
	return append([]string(nil), a.keys...)
}

// Pairs returns a copy of the attributes in order.
func (a *Attributes) Pairs() []Attribute {
	if a == nil {
		return nil
	}
	out := make([]Attribute, 0, len(a.keys))
	for _, key := range a.keys {
		out = append(out, Attribute{Key: key, Value: a.values[key]})
	}
	return out
}

// Clone returns a shallow copy that can be mutated independently.
func (a *Attributes) Clone() *Attributes {
	if a == nil {
		return nil
	}
	return AttributesOf(a.Pairs()...)
}

// Map returns the attributes as an unordered map.
func (a *Attributes) Map() map[string]any {
	out := make(map[string]any, a.Len())
	if a == nil {
		return out
	}
	for key, value := range a.values {
		out[key] = value
	}
	return out
}

// Equal reports whether both sets hold the same keys in the same order with
// deeply equal values. A nil set equals an empty one.
func (a *Attributes) Equal(other *Attributes) bool {
	if a.Len() != other.Len() {
		return false
	}
	if a.Len() == 0 {
		return true
	}
	for idx, key := range a.keys {
		if other.keys[idx] != key {
			return false
		}
		if !reflect.DeepEqual(a.values[key], other.values[key]) {
			return false
		}
	}
	return true
}

// MarshalJSON writes the attributes as a JSON object in declaration order.
func (a *Attributes) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for idx, pair := range a.Pairs() {
		if idx > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(pair.Key)
		if err != nil {
			return nil, err
		}
		value, err := json.Marshal(pair.Value)
		if err != nil {
			return nil, fmt.Errorf("attribute %q: %w", pair.Key, err)
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON reads a JSON object, preserving key order. Numbers decode to
// int when integral and float64 otherwise.
func (a *Attributes) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return errors.New("attributes must be a JSON object")
	}

	*a = Attributes{values: make(map[string]any)}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := tok.(string)
		if !ok {
			return fmt.Errorf("unexpected attribute key %v", tok)
		}
		var value any
		if err := dec.Decode(&value); err != nil {
			return fmt.Errorf("attribute %q: %w", key, err)
		}
		a.Set(key, normalizeNumbers(value))
	}

	if _, err := dec.Token(); err != nil {
		return err
	}
	return nil
}
