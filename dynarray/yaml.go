package dynarray

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

var (
	_ yaml.Marshaler   = (*Vector[int])(nil)
	_ yaml.Unmarshaler = (*Vector[int])(nil)
)

// MarshalYAML encodes the live elements as a YAML sequence. Capacity is
// not part of the encoding.
func (v *Vector[T]) MarshalYAML() (interface{}, error) {
	return append([]T{}, v.Data()...), nil
}

// UnmarshalYAML replaces the contents with the decoded sequence, using the
// literal-list capacity policy (2*len). The hook is kept. On a decode error
// the vector is left unchanged.
func (v *Vector[T]) UnmarshalYAML(node *yaml.Node) error {
	var values []T
	if err := node.Decode(&values); err != nil {
		return fmt.Errorf("dynarray: decode: %w", err)
	}
	var buf []T
	if len(values) > 0 {
		buf = make([]T, 2*len(values))
		copy(buf, values)
	}
	v.buf, v.size = buf, len(values)

	return nil
}
