// Package schema introspects a configuration schema: a Go struct whose
// exported fields are the top-level schema sections. The value handed to
// the introspector is the default-constructed instance, so encoding a
// section yields its default tree without consulting any document.
package schema

import (
	"reflect"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/agentstation/confyg/pkg/document"
	"github.com/agentstation/confyg/pkg/errors"
)

// Section is one top-level section of a schema: its declared name and the
// reflect value of the corresponding struct field.
type Section struct {
	// Name is the yaml tag name of the field, falling back to the
	// lowercased Go field name.
	Name string

	// Field is the addressable reflect value of the struct field. It holds
	// the section's default value before reconciliation and receives the
	// merged value afterwards.
	Field reflect.Value
}

// Sections returns the top-level sections of v in field declaration order.
// v must be a non-nil pointer to a struct. Unexported fields and fields
// tagged `yaml:"-"` are skipped.
func Sections(v any) ([]Section, error) {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return nil, errors.NewValidationError("", v, "schema must be a non-nil pointer to a struct")
	}
	rv = rv.Elem()
	if rv.Kind() != reflect.Struct {
		return nil, errors.NewValidationError("", v, "schema must be a non-nil pointer to a struct")
	}

	rt := rv.Type()
	sections := make([]Section, 0, rt.NumField())
	for i := 0; i < rt.NumField(); i++ {
		field := rt.Field(i)
		if !field.IsExported() {
			continue
		}
		name := FieldName(field)
		if name == "" {
			continue
		}
		sections = append(sections, Section{Name: name, Field: rv.Field(i)})
	}
	return sections, nil
}

// FieldName resolves the document key for a struct field from its yaml
// tag, mirroring the encoder's naming rule. An empty string means the
// field is excluded.
func FieldName(field reflect.StructField) string {
	tag := field.Tag.Get("yaml")
	if tag == "-" {
		return ""
	}
	if idx := strings.Index(tag, ","); idx >= 0 {
		tag = tag[:idx]
	}
	if tag != "" {
		return tag
	}
	return strings.ToLower(field.Name)
}

// Encode serializes a section value to its document tree. The round trip
// through the YAML encoder keeps the tree's key order aligned with the
// struct's field declaration order. Pure and deterministic; no I/O.
func Encode(value any) (document.Node, error) {
	data, err := yaml.Marshal(value)
	if err != nil {
		return nil, errors.WrapParse("yaml", "", err)
	}
	node, err := document.Unmarshal(data)
	if err != nil {
		return nil, errors.WrapParse("yaml", "", err)
	}
	return node, nil
}

// EncodeSection encodes a section value and wraps it one level under the
// section's name, since a destination document may host sibling sections.
func EncodeSection(name string, value any) (document.Mapping, error) {
	node, err := Encode(value)
	if err != nil {
		return nil, err
	}
	return document.Mapping{{Key: name, Value: node}}, nil
}
