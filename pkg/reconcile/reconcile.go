// Package reconcile merges a schema section's default tree against the
// tree currently persisted for it, preserving user-edited leaf values
// while adopting structural changes from the schema and pruning keys the
// schema no longer declares.
//
// The merge is a total function over document trees: no input shape can
// make it fail. I/O and error surfacing belong to the orchestrator.
package reconcile

import (
	"github.com/rs/zerolog"

	"github.com/agentstation/confyg/pkg/document"
	"github.com/agentstation/confyg/pkg/logging"
)

// Section merges a section's default tree def against its persisted tree.
// The result contains exactly the keys of def at every level, in def's
// order:
//
//   - both sides map-typed: recurse
//   - default side a leaf or sequence and the key persisted: keep the
//     persisted value verbatim
//   - key missing, or default side map-typed over a persisted non-map:
//     adopt the default wholesale
//
// Keys persisted but absent from def are dropped, at every depth.
func Section(def, persisted document.Mapping) document.Mapping {
	out := make(document.Mapping, 0, len(def))
	for _, e := range def {
		pv, ok := persisted.Get(e.Key)
		dm, defIsMap := e.Value.(document.Mapping)
		if ok {
			if pm, persistedIsMap := pv.(document.Mapping); persistedIsMap && defIsMap {
				out = append(out, document.Entry{Key: e.Key, Value: Section(dm, pm)})
				continue
			}
			if !defIsMap {
				// User-set leaf values are never overwritten by defaults.
				out = append(out, document.Entry{Key: e.Key, Value: pv})
				continue
			}
			// Structural change: the schema turned a leaf into a nested
			// record. The default shape wins and the old value is lost.
		}
		out = append(out, document.Entry{Key: e.Key, Value: e.Value})
	}
	return out
}

// Document reconciles one section into a whole destination document:
// the section under name is merged against def, and any top-level key not
// in owned is removed. owned is the list of sections currently mapped to
// this document, so whole-section removals from the mapping table prune
// their keys here.
func Document(doc document.Mapping, name string, def document.Mapping, owned []string) document.Mapping {
	var persisted document.Mapping
	if existing, ok := doc.Get(name); ok {
		persisted, _ = existing.(document.Mapping)
	}

	merged := doc.Set(name, Section(def, persisted))

	out := make(document.Mapping, 0, len(merged))
	for _, e := range merged {
		if contains(owned, e.Key) {
			out = append(out, e)
			continue
		}
		logging.Debug().
			Str("document_key", e.Key).
			Msg("Pruning section no longer mapped to document")
	}
	return out
}

// Reconciler runs section merges with a configurable logger. The zero
// value is not usable; construct with New.
type Reconciler struct {
	logger *zerolog.Logger
}

// New creates a Reconciler. A nil logger falls back to the package
// default.
func New(logger *zerolog.Logger) *Reconciler {
	if logger == nil {
		logger = logging.Default()
	}
	return &Reconciler{logger: logger}
}

// Reconcile merges the section name of doc against def and prunes
// unmapped top-level keys, returning the updated document and the merged
// section value.
func (r *Reconciler) Reconcile(doc document.Mapping, name string, def document.Mapping, owned []string) (document.Mapping, document.Mapping) {
	updated := Document(doc, name, def, owned)

	merged, _ := updated.Get(name)
	section, _ := merged.(document.Mapping)

	r.logger.Debug().
		Str("section", name).
		Int("keys", len(section)).
		Msg("Reconciled section")

	return updated, section
}

func contains(list []string, s string) bool {
	for _, e := range list {
		if e == s {
			return true
		}
	}
	return false
}
