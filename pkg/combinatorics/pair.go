package combinatorics

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Pair holds one element from each input of a product.
// It encodes as a two-element array in JSON and YAML.
type Pair[A, B any] struct {
	First  A
	Second B
}

// String returns "(first, second)".
func (p Pair[A, B]) String() string {
	return fmt.Sprintf("(%v, %v)", p.First, p.Second)
}

// MarshalJSON implements json.Marshaler.
func (p Pair[A, B]) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]any{p.First, p.Second})
}

// UnmarshalJSON implements json.Unmarshaler.
func (p *Pair[A, B]) UnmarshalJSON(data []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("pair: %w", err)
	}
	if len(raw) != 2 {
		return fmt.Errorf("pair: expected 2 elements, got %d", len(raw))
	}
	if err := json.Unmarshal(raw[0], &p.First); err != nil {
		return fmt.Errorf("pair: first element: %w", err)
	}
	if err := json.Unmarshal(raw[1], &p.Second); err != nil {
		return fmt.Errorf("pair: second element: %w", err)
	}
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (p Pair[A, B]) MarshalYAML() (interface{}, error) {
	var first, second yaml.Node
	if err := first.Encode(p.First); err != nil {
		return nil, fmt.Errorf("pair: first element: %w", err)
	}
	if err := second.Encode(p.Second); err != nil {
		return nil, fmt.Errorf("pair: second element: %w", err)
	}
	return &yaml.Node{
		Kind:    yaml.SequenceNode,
		Style:   yaml.FlowStyle,
		Content: []*yaml.Node{&first, &second},
	}, nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (p *Pair[A, B]) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.SequenceNode {
		return fmt.Errorf("pair: expected a sequence at line %d", value.Line)
	}
	if len(value.Content) != 2 {
		return fmt.Errorf("pair: expected 2 elements, got %d", len(value.Content))
	}
	if err := value.Content[0].Decode(&p.First); err != nil {
		return fmt.Errorf("pair: first element: %w", err)
	}
	if err := value.Content[1].Decode(&p.Second); err != nil {
		return fmt.Errorf("pair: second element: %w", err)
	}
	return nil
}
