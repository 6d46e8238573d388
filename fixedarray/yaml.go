package fixedarray

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

var (
	_ yaml.Marshaler   = (*Array[int])(nil)
	_ yaml.Unmarshaler = (*Array[int])(nil)
)

// MarshalYAML encodes the array as a YAML sequence of its N elements.
func (a *Array[T]) MarshalYAML() (interface{}, error) {
	if a.data == nil {
		return []T{}, nil
	}

	return a.data, nil
}

// UnmarshalYAML decodes a YAML sequence into the array.
//
// A constructed array keeps its N: a shorter list zeroes the remaining
// slots, a longer list fails with ErrTooManyValues and leaves the array
// unchanged. A zero-value Array takes N from the document.
func (a *Array[T]) UnmarshalYAML(node *yaml.Node) error {
	var values []T
	if err := node.Decode(&values); err != nil {
		return fmt.Errorf("fixedarray: decode: %w", err)
	}
	if a.data == nil {
		a.data = values
		if a.data == nil {
			a.data = []T{}
		}

		return nil
	}
	if len(values) > len(a.data) {
		return fmt.Errorf("UnmarshalYAML: %d values for length %d: %w", len(values), len(a.data), ErrTooManyValues)
	}
	n := copy(a.data, values)
	clear(a.data[n:])

	return nil
}
