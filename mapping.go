package confyg

import (
	"github.com/agentstation/confyg/pkg/errors"
)

// Destination assigns a list of top-level schema section names to one
// destination document.
type Destination struct {
	// Document is the destination document identifier, resolved to a file
	// under the schema's configuration location. The default extension is
	// appended if the identifier carries none.
	Document string

	// Sections lists the schema section names stored in this document.
	Sections []string
}

// MappingTable is the ordered assignment of schema sections to destination
// documents. It is built once per schema and read-only during
// reconciliation.
//
// Invariant: a section name appears in at most one destination's list.
type MappingTable []Destination

// Validate checks the ownership invariant over the whole table: every
// section name appears in at most one destination list. Violations fail
// with an OwnershipConflictError before any file is read or written.
func (m MappingTable) Validate() error {
	seen := make(map[string]string)
	for _, dest := range m {
		for _, section := range dest.Sections {
			if prev, ok := seen[section]; ok {
				return errors.NewOwnershipConflictError(section, []string{prev, dest.Document})
			}
			seen[section] = dest.Document
		}
	}
	return nil
}

// Owner returns the destination document identifier owning section, if
// any. A section claimed by more than one destination fails with an
// OwnershipConflictError.
func (m MappingTable) Owner(section string) (string, bool, error) {
	var docs []string
	for _, dest := range m {
		for _, s := range dest.Sections {
			if s == section {
				docs = append(docs, dest.Document)
				break
			}
		}
	}
	switch len(docs) {
	case 0:
		return "", false, nil
	case 1:
		return docs[0], true, nil
	default:
		return "", false, errors.NewOwnershipConflictError(section, docs)
	}
}

// SectionsFor returns the section names mapped to the given document
// identifier, in declaration order.
func (m MappingTable) SectionsFor(doc string) []string {
	for _, dest := range m {
		if dest.Document == doc {
			return dest.Sections
		}
	}
	return nil
}

// Documents returns the destination document identifiers in declaration
// order.
func (m MappingTable) Documents() []string {
	docs := make([]string, len(m))
	for i, dest := range m {
		docs[i] = dest.Document
	}
	return docs
}
