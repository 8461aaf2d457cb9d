// SPDX-License-Identifier: MIT

package pipeline

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/squaremat/matrix"
)

// Load reads and decodes the script file at path.
func Load(path string) (*Script, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("pipeline: load %s: %w", path, err)
	}

	return Decode(bytes.NewReader(raw))
}

// Decode parses one YAML script from r. Unknown step fields are rejected.
func Decode(r io.Reader) (*Script, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var s Script
	if err := dec.Decode(&s); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("pipeline: decode: empty script: %w", ErrBadDefinition)
		}
		return nil, fmt.Errorf("pipeline: decode: %w", err)
	}

	return &s, nil
}

// UnmarshalYAML decodes the matrices mapping while keeping document order,
// which a Go map would lose. Duplicate names are rejected.
func (ds *Definitions) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: matrices must be a mapping: %w", node.Line, ErrBadDefinition)
	}

	seen := make(map[string]struct{}, len(node.Content)/2)
	out := make(Definitions, 0, len(node.Content)/2)
	var key, val *yaml.Node
	for i := 0; i+1 < len(node.Content); i += 2 {
		key, val = node.Content[i], node.Content[i+1]
		if _, dup := seen[key.Value]; dup {
			return fmt.Errorf("line %d: duplicate matrix %q: %w", key.Line, key.Value, ErrBadDefinition)
		}
		seen[key.Value] = struct{}{}

		var d Definition
		if err := val.Decode(&d); err != nil {
			return fmt.Errorf("matrix %q: %w", key.Value, err)
		}
		out = append(out, NamedDefinition{Name: key.Value, Def: d})
	}
	*ds = out

	return nil
}

// definitionFields is the mapping form of a Definition. Pointers tell an
// absent key from an explicit zero.
type definitionFields struct {
	Dim      *int      `yaml:"dim"`
	Fill     *float64  `yaml:"fill"`
	Identity *int      `yaml:"identity"`
	Values   []float64 `yaml:"values"`
}

// UnmarshalYAML accepts a text scalar or one of the mapping shapes
// {dim, fill}, {identity} and {dim, values}.
func (d *Definition) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		*d = TextDefinition(node.Value)
		return nil
	case yaml.MappingNode:
	default:
		return fmt.Errorf("line %d: want text or mapping: %w", node.Line, ErrBadDefinition)
	}

	var f definitionFields
	if err := node.Decode(&f); err != nil {
		return fmt.Errorf("line %d: %v: %w", node.Line, err, ErrBadDefinition)
	}

	switch {
	case f.Identity != nil && f.Dim == nil && f.Fill == nil && f.Values == nil:
		*d = Definition{Identity: *f.Identity, kind: defIdentity}
	case f.Dim != nil && f.Values != nil && f.Fill == nil && f.Identity == nil:
		*d = Definition{Dim: *f.Dim, Values: f.Values, kind: defValues}
	case f.Dim != nil && f.Values == nil && f.Identity == nil:
		fill := matrix.DefaultFill
		if f.Fill != nil {
			fill = *f.Fill
		}
		*d = Definition{Dim: *f.Dim, Fill: fill, kind: defFill}
	default:
		return fmt.Errorf("line %d: want {dim, fill}, {identity} or {dim, values}: %w", node.Line, ErrBadDefinition)
	}

	return nil
}

// Build constructs the matrix described by d.
func (d Definition) Build(opts ...matrix.Option) (*matrix.Square, error) {
	switch d.kind {
	case defText:
		return matrix.Parse(d.Text, opts...)
	case defFill:
		if isNonFinite(d.Fill) {
			return nil, fmt.Errorf("fill %v: %w", d.Fill, matrix.ErrNaNInf)
		}
		withFill := make([]matrix.Option, 0, len(opts)+1)
		withFill = append(withFill, opts...)
		return matrix.New(d.Dim, append(withFill, matrix.WithFill(d.Fill))...)
	case defIdentity:
		return matrix.NewIdentity(d.Identity, opts...)
	case defValues:
		return matrix.NewFromSlice(d.Dim, d.Values, opts...)
	default:
		return nil, ErrBadDefinition
	}
}
