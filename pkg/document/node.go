// Package document models a persisted configuration document as an ordered
// tree and provides the Store interface for loading and saving documents.
//
// A document tree is a tagged variant: a node is either a Scalar (leaf
// value), a Sequence (ordered list of nodes), or a Mapping (ordered list of
// key/node pairs). Mappings preserve insertion order on both load and save,
// which keeps documents stable and diff-friendly across schema changes.
package document

import (
	"bytes"
	"fmt"

	"github.com/goccy/go-yaml"
)

// Node is a single node of a document tree.
type Node interface {
	// Interface returns the plain Go projection of the node: scalars as
	// their value, sequences as []any, mappings as map[string]any. Key
	// order is lost in the projection; use the node itself when order
	// matters.
	Interface() any

	// yaml returns the goccy/go-yaml representation of the node, with
	// mappings as yaml.MapSlice so marshaling preserves key order.
	yaml() any
}

// Scalar is a leaf value: string, bool, number, or nil.
type Scalar struct {
	Value any
}

// Interface returns the scalar's value.
func (s Scalar) Interface() any { return s.Value }

func (s Scalar) yaml() any { return s.Value }

// Sequence is an ordered list of nodes.
type Sequence []Node

// Interface returns the sequence as a []any of plain projections.
func (s Sequence) Interface() any {
	out := make([]any, len(s))
	for i, n := range s {
		out[i] = n.Interface()
	}
	return out
}

func (s Sequence) yaml() any {
	out := make([]any, len(s))
	for i, n := range s {
		out[i] = n.yaml()
	}
	return out
}

// Entry is a single key/value pair of a Mapping.
type Entry struct {
	Key   string
	Value Node
}

// Mapping is an ordered list of key/value pairs.
type Mapping []Entry

// Interface returns the mapping as a map[string]any of plain projections.
func (m Mapping) Interface() any {
	out := make(map[string]any, len(m))
	for _, e := range m {
		out[e.Key] = e.Value.Interface()
	}
	return out
}

func (m Mapping) yaml() any {
	out := make(yaml.MapSlice, len(m))
	for i, e := range m {
		out[i] = yaml.MapItem{Key: e.Key, Value: e.Value.yaml()}
	}
	return out
}

// Get returns the node stored under key, if present.
func (m Mapping) Get(key string) (Node, bool) {
	for _, e := range m {
		if e.Key == key {
			return e.Value, true
		}
	}
	return nil, false
}

// Has reports whether key is present in the mapping.
func (m Mapping) Has(key string) bool {
	_, ok := m.Get(key)
	return ok
}

// Keys returns the mapping's keys in order.
func (m Mapping) Keys() []string {
	keys := make([]string, len(m))
	for i, e := range m {
		keys[i] = e.Key
	}
	return keys
}

// Set returns a mapping with key bound to node. An existing key keeps its
// position; a new key is appended.
func (m Mapping) Set(key string, node Node) Mapping {
	for i, e := range m {
		if e.Key == key {
			out := make(Mapping, len(m))
			copy(out, m)
			out[i] = Entry{Key: key, Value: node}
			return out
		}
	}
	out := make(Mapping, len(m), len(m)+1)
	copy(out, m)
	return append(out, Entry{Key: key, Value: node})
}

// Delete returns a mapping without key, preserving the order of the rest.
func (m Mapping) Delete(key string) Mapping {
	out := make(Mapping, 0, len(m))
	for _, e := range m {
		if e.Key != key {
			out = append(out, e)
		}
	}
	return out
}

// FromYAML converts a value decoded by goccy/go-yaml with ordered maps
// enabled into a document tree node. It is total: any decoded value maps
// onto exactly one of the three variants.
func FromYAML(v any) Node {
	switch t := v.(type) {
	case yaml.MapSlice:
		m := make(Mapping, 0, len(t))
		for _, item := range t {
			m = append(m, Entry{
				Key:   fmt.Sprint(item.Key),
				Value: FromYAML(item.Value),
			})
		}
		return m
	case []any:
		s := make(Sequence, 0, len(t))
		for _, e := range t {
			s = append(s, FromYAML(e))
		}
		return s
	default:
		return Scalar{Value: t}
	}
}

// Marshal serializes a document tree to YAML, preserving mapping key order.
func Marshal(n Node) ([]byte, error) {
	return yaml.Marshal(n.yaml())
}

// Unmarshal parses YAML data into a document tree. Empty input parses as
// a nil scalar, the same as an explicit null document.
func Unmarshal(data []byte) (Node, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return Scalar{}, nil
	}
	var raw any
	if err := yaml.UnmarshalWithOptions(data, &raw, yaml.UseOrderedMap()); err != nil {
		return nil, err
	}
	return FromYAML(raw), nil
}
