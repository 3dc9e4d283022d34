// Package confyg reconciles statically declared configuration schemas
// against persisted YAML documents. A schema is an ordinary Go struct
// whose exported fields are the top-level sections; the value passed to
// Load carries the section defaults. Reconciliation fills in missing
// fields from defaults, preserves user-edited leaf values, prunes keys
// the schema no longer declares, and rewrites each destination document
// in full so it always matches the schema's current shape.
//
// Example usage:
//
//	type ModelConfig struct {
//		Vectorizer string `yaml:"vectorizer"`
//		Classifier string `yaml:"classifier"`
//	}
//
//	type AppConfig struct {
//		Model ModelConfig `yaml:"model"`
//	}
//
//	s, err := confyg.New(
//		confyg.WithLocation("/etc/myapp"),
//		confyg.WithMapping(confyg.MappingTable{
//			{Document: "ml_config", Sections: []string{"model"}},
//		}),
//	)
//	if err != nil {
//		return err
//	}
//
//	cfg := AppConfig{Model: ModelConfig{Vectorizer: "tfidf", Classifier: "bdt"}}
//	if err := s.Load(context.Background(), &cfg); err != nil {
//		return err
//	}
package confyg

import (
	"context"
	"path/filepath"
	"reflect"

	"github.com/mitchellh/mapstructure"
	"github.com/rs/zerolog"

	"github.com/agentstation/confyg/pkg/document"
	"github.com/agentstation/confyg/pkg/errors"
	"github.com/agentstation/confyg/pkg/logging"
	"github.com/agentstation/confyg/pkg/reconcile"
	"github.com/agentstation/confyg/pkg/schema"
)

// Validator is implemented by schema sections that want field-level
// validation after reconciliation. Validate runs against the merged
// value, after defaults are filled in and persisted edits applied.
type Validator interface {
	Validate() error
}

// Schema orchestrates reconciliation for one configuration schema. Its
// location and mapping table are resolved once at construction and never
// mutated afterwards.
type Schema struct {
	location string
	mapping  MappingTable
	store    document.Store
	logger   *zerolog.Logger
}

// New creates a Schema from the given options. A missing configuration
// location is a hard error, raised here before any I/O, as is a mapping
// table that assigns a section to more than one document.
func New(opts ...Option) (*Schema, error) {
	c := &config{
		logger: logging.Default(),
	}
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}
	if c.store == nil {
		c.store = document.NewFileStoreWithPermissions(c.filePerm, c.dirPerm)
	}

	if c.location == "" {
		return nil, errors.NewConfigError("schema", "no configuration location declared", errors.ErrMissingLocation)
	}
	location, err := filepath.Abs(c.location)
	if err != nil {
		return nil, errors.NewConfigError("schema", "resolving configuration location", err)
	}

	if err := c.mapping.Validate(); err != nil {
		return nil, err
	}

	return &Schema{
		location: location,
		mapping:  c.mapping,
		store:    c.store,
		logger:   c.logger,
	}, nil
}

// Location returns the schema's absolute configuration location.
func (s *Schema) Location() string {
	return s.location
}

// Load reconciles v's sections against their destination documents and
// fills v with the merged values. v must be a non-nil pointer to a
// struct holding the schema defaults.
//
// Sections not named in the mapping table bypass persistence and keep
// their in-memory defaults. For each mapped section, the destination
// document is generated from defaults when missing, merged and rewritten
// in full otherwise, and the merged value is decoded back into the
// corresponding field before its Validate hook (if any) runs.
func (s *Schema) Load(ctx context.Context, v any) error {
	sections, err := schema.Sections(v)
	if err != nil {
		return err
	}

	r := reconcile.New(s.logger)

	for _, sec := range sections {
		owner, ok, err := s.mapping.Owner(sec.Name)
		if err != nil {
			return err
		}
		if !ok {
			s.logger.Debug().Str("section", sec.Name).Msg("Section not mapped, using in-memory defaults")
			if err := validateSection(sec); err != nil {
				return err
			}
			continue
		}

		if err := s.loadSection(ctx, r, sec, owner); err != nil {
			return err
		}
	}
	return nil
}

// loadSection reconciles a single mapped section against its destination
// document.
func (s *Schema) loadSection(ctx context.Context, r *reconcile.Reconciler, sec schema.Section, owner string) error {
	def, err := sectionDefaults(sec)
	if err != nil {
		return err
	}

	path := s.DocumentPath(owner)

	doc, err := s.store.Load(path)
	if err != nil {
		if !errors.IsNotFound(err) {
			return err
		}
		// Missing document: generate it from defaults and reconcile
		// against the generated tree.
		doc = document.Mapping{{Key: sec.Name, Value: def}}
		s.logger.Debug().
			Str("section", sec.Name).
			Str("document", path).
			Msg("Generating document from defaults")
	}

	updated, merged := r.Reconcile(doc, sec.Name, def, s.mapping.SectionsFor(owner))

	if err := s.store.Save(path, updated); err != nil {
		return err
	}

	if err := decodeSection(sec, merged); err != nil {
		return err
	}
	return validateSection(sec)
}

// Generate renders the full set of destination documents from v's
// defaults without touching disk. Useful for dry runs and for seeding a
// configuration directory.
func (s *Schema) Generate(v any) (map[string]document.Mapping, error) {
	sections, err := schema.Sections(v)
	if err != nil {
		return nil, err
	}

	docs := make(map[string]document.Mapping)
	for _, sec := range sections {
		owner, ok, err := s.mapping.Owner(sec.Name)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}
		def, err := sectionDefaults(sec)
		if err != nil {
			return nil, err
		}
		name := document.EnsureExtension(owner)
		docs[name] = docs[name].Set(sec.Name, def)
	}
	return docs, nil
}

// DocumentPath resolves a destination document identifier to its file
// path under the schema's configuration location, applying the default
// extension rule.
func (s *Schema) DocumentPath(identifier string) string {
	return filepath.Join(s.location, document.EnsureExtension(identifier))
}

// sectionDefaults encodes a section's default value to its document
// tree. Mapped sections must encode to mappings; anything else cannot
// host sibling-aware reconciliation.
func sectionDefaults(sec schema.Section) (document.Mapping, error) {
	node, err := schema.Encode(sec.Field.Interface())
	if err != nil {
		return nil, err
	}
	def, ok := node.(document.Mapping)
	if !ok {
		return nil, errors.NewValidationError(sec.Name, sec.Field.Interface(),
			"mapped section must encode to a mapping")
	}
	return def, nil
}

// decodeSection decodes a merged section tree back into the schema
// section's struct field.
func decodeSection(sec schema.Section, merged document.Mapping) error {
	if !sec.Field.CanAddr() {
		return errors.NewValidationError(sec.Name, nil, "section field is not addressable")
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           sec.Field.Addr().Interface(),
		TagName:          "yaml",
		WeaklyTypedInput: true,
		ZeroFields:       true,
	})
	if err != nil {
		return errors.WrapValidation(sec.Name, err)
	}
	if err := decoder.Decode(merged.Interface()); err != nil {
		return errors.WrapValidation(sec.Name, err)
	}
	return nil
}

// validateSection runs the section's Validate hook, if implemented by
// the field value or its pointer.
func validateSection(sec schema.Section) error {
	var v Validator
	if candidate, ok := sec.Field.Interface().(Validator); ok {
		v = candidate
	} else if sec.Field.CanAddr() {
		if candidate, ok := sec.Field.Addr().Interface().(Validator); ok {
			v = candidate
		}
	}
	if v == nil {
		return nil
	}
	if isNilValue(sec.Field) {
		return nil
	}
	if err := v.Validate(); err != nil {
		return errors.WrapValidation(sec.Name, err)
	}
	return nil
}

// isNilValue reports whether a field holds a nil pointer or interface,
// guarding the Validate call against nil receivers.
func isNilValue(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Pointer, reflect.Interface:
		return v.IsNil()
	default:
		return false
	}
}
