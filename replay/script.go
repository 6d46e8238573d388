package replay

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Op names accepted in Script.Ops.
const (
	OpPush        = "push"
	OpEmplace     = "emplace"
	OpInsert      = "insert"
	OpInsertRange = "insert_range"
	OpErase       = "erase"
	OpEraseRange  = "erase_range"
	OpPop         = "pop"
	OpReserve     = "reserve"
	OpShrink      = "shrink"
	OpResize      = "resize"
	OpClear       = "clear"
)

var knownOps = map[string]struct{}{
	OpPush: {}, OpEmplace: {}, OpInsert: {}, OpInsertRange: {},
	OpErase: {}, OpEraseRange: {}, OpPop: {}, OpReserve: {},
	OpShrink: {}, OpResize: {}, OpClear: {},
}

// Op is one scripted operation. Fields an op does not use are ignored.
type Op struct {
	Op     string `yaml:"op"`
	Pos    int    `yaml:"pos,omitempty"`
	Value  int    `yaml:"value,omitempty"`
	Values []int  `yaml:"values,omitempty"`
	First  int    `yaml:"first,omitempty"`
	Last   int    `yaml:"last,omitempty"`
	N      int    `yaml:"n,omitempty"`
}

// Script is a named list of ops applied to a vector built from Initial.
// A nil Initial starts from an empty, zero-capacity vector.
type Script struct {
	Name    string `yaml:"name"`
	Initial []int  `yaml:"initial,omitempty"`
	Ops     []Op   `yaml:"ops"`
}

// Validate reports ErrEmptyScript or the first ErrUnknownOp.
func (s *Script) Validate() error {
	if len(s.Ops) == 0 {
		return ErrEmptyScript
	}
	for i, op := range s.Ops {
		if _, ok := knownOps[op.Op]; !ok {
			return fmt.Errorf("op %d %q: %w", i+1, op.Op, ErrUnknownOp)
		}
	}

	return nil
}

// Load decodes and validates a script. Unknown YAML keys are rejected.
func Load(r io.Reader) (*Script, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var s Script
	if err := dec.Decode(&s); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyScript
		}

		return nil, fmt.Errorf("replay: decode script: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}

	return &s, nil
}

// LoadFile opens path and calls Load.
func LoadFile(path string) (*Script, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("replay: %w", err)
	}
	defer f.Close()

	s, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return s, nil
}
