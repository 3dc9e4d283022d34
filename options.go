package confyg

import (
	"os"

	"github.com/rs/zerolog"

	"github.com/agentstation/confyg/pkg/document"
)

// Option is a function that configures a Schema
type Option func(*config) error

// config holds the resolved configuration for a Schema.
type config struct {
	location string
	mapping  MappingTable
	store    document.Store
	logger   *zerolog.Logger
	filePerm os.FileMode
	dirPerm  os.FileMode
}

// WithLocation configures the base path under which all destination
// documents for the schema live. Required; it is normalized to an
// absolute path once during New.
func WithLocation(path string) Option {
	return func(c *config) error {
		c.location = path
		return nil
	}
}

// WithMapping configures the mapping table assigning schema sections to
// destination documents. Omitting the mapping disables persistence: every
// section is validated against its in-memory defaults only.
func WithMapping(m MappingTable) Option {
	return func(c *config) error {
		c.mapping = m
		return nil
	}
}

// WithFilePermissions configures the modes the default file store uses
// for documents and their parent directories. Ignored when a custom
// store is supplied via WithStore.
func WithFilePermissions(file, dir os.FileMode) Option {
	return func(c *config) error {
		c.filePerm = file
		c.dirPerm = dir
		return nil
	}
}

// WithStore configures a custom document store. Defaults to the
// YAML-backed file store.
func WithStore(store document.Store) Option {
	return func(c *config) error {
		c.store = store
		return nil
	}
}

// WithLogger configures the logger used for per-section reconciliation
// events.
func WithLogger(logger *zerolog.Logger) Option {
	return func(c *config) error {
		c.logger = logger
		return nil
	}
}
