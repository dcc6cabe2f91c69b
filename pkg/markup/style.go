package markup

import (
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrStyleSyntax marks style strings that are not a literal mapping.
var ErrStyleSyntax = errors.New("markup: invalid style literal")

// StyleError describes a style string that could not be parsed.
type StyleError struct {
	Input string
	Err   error
}

func (e *StyleError) Error() string {
	return fmt.Sprintf("markup: parse style %q: %v", e.Input, e.Err)
}

func (e *StyleError) Unwrap() error {
	return e.Err
}

func (e *StyleError) Is(target error) bool {
	return target == ErrStyleSyntax
}

// ParseStyle parses a style literal such as
//
//	{'background_color': 0xFF007ACC, 'Button': {'margin': 4}}
//
// The accepted grammar is a flow mapping: single or double quoted or bare
// string keys, and values that are integers (decimal, hex 0x, octal 0o),
// floats, booleans (true/True/TRUE), None, quoted strings, lists, or nested
// mappings. Unquoted words such as red and tuples such as (1, 2) are not
// literals. Anything else, including a top-level value that is not a mapping,
// returns an empty map and a *StyleError.
func ParseStyle(input string) (map[string]any, error) {
	trimmed := strings.TrimSpace(input)
	if !strings.HasPrefix(trimmed, "{") || !strings.HasSuffix(trimmed, "}") {
		return map[string]any{}, &StyleError{Input: input, Err: errors.New("expected a {...} mapping")}
	}

	var doc yaml.Node
	if err := yaml.Unmarshal([]byte(trimmed), &doc); err != nil {
		return map[string]any{}, &StyleError{Input: input, Err: err}
	}
	if len(doc.Content) != 1 || doc.Content[0].Kind != yaml.MappingNode {
		return map[string]any{}, &StyleError{Input: input, Err: errors.New("expected a mapping")}
	}

	value, err := styleValue(doc.Content[0])
	if err != nil {
		return map[string]any{}, &StyleError{Input: input, Err: err}
	}
	return value.(map[string]any), nil
}

func styleValue(node *yaml.Node) (any, error) {
	switch node.Kind {
	case yaml.MappingNode:
		out := make(map[string]any, len(node.Content)/2)
		for idx := 0; idx+1 < len(node.Content); idx += 2 {
			key, err := styleKey(node.Content[idx])
			if err != nil {
				return nil, err
			}
			value, err := styleValue(node.Content[idx+1])
			if err != nil {
				return nil, err
			}
			out[key] = value
		}
		return out, nil
	case yaml.SequenceNode:
		out := make([]any, 0, len(node.Content))
		for _, entry := range node.Content {
			value, err := styleValue(entry)
			if err != nil {
				return nil, err
			}
			out = append(out, value)
		}
		return out, nil
	case yaml.ScalarNode:
		return styleScalar(node)
	case yaml.AliasNode:
		return nil, fmt.Errorf("line %d: aliases are not supported", node.Line)
	default:
		return nil, fmt.Errorf("line %d: unsupported style value", node.Line)
	}
}

func styleKey(node *yaml.Node) (string, error) {
	if node.Kind != yaml.ScalarNode {
		return "", fmt.Errorf("line %d: mapping keys must be scalars", node.Line)
	}
	if !quoted(node) && strings.ContainsAny(node.Value, "()") {
		return "", fmt.Errorf("line %d: unsupported key %q", node.Line, node.Value)
	}
	return node.Value, nil
}

func quoted(node *yaml.Node) bool {
	return node.Style&(yaml.SingleQuotedStyle|yaml.DoubleQuotedStyle) != 0
}

func styleScalar(node *yaml.Node) (any, error) {
	switch node.ShortTag() {
	case "!!str":
		if quoted(node) {
			return node.Value, nil
		}
		if node.Value == "None" {
			return nil, nil
		}
		return nil, fmt.Errorf("line %d: unquoted string %q is not a literal", node.Line, node.Value)
	case "!!int":
		var value int64
		if err := node.Decode(&value); err != nil {
			var unsigned uint64
			if uerr := node.Decode(&unsigned); uerr != nil {
				return nil, err
			}
			return unsigned, nil
		}
		return int(value), nil
	case "!!float":
		var value float64
		if err := node.Decode(&value); err != nil {
			return nil, err
		}
		return value, nil
	case "!!bool":
		var value bool
		if err := node.Decode(&value); err != nil {
			return nil, err
		}
		return value, nil
	case "!!null":
		return nil, nil
	default:
		return nil, fmt.Errorf("line %d: unsupported literal %q", node.Line, node.Value)
	}
}
