// Package output provides formatting helpers for the confyg CLI.
package output

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/agentstation/confyg/pkg/document"
)

// Humanize turns a document key like "model_1" or "remove_stop_words"
// into a readable heading ("Model 1", "Remove Stop Words").
func Humanize(key string) string {
	caser := cases.Title(language.English)
	return caser.String(strings.ReplaceAll(key, "_", " "))
}

// WriteTree writes an indented view of a document tree to w, with
// humanized headings for top-level sections.
func WriteTree(w io.Writer, doc document.Mapping) {
	for _, e := range doc {
		fmt.Fprintf(w, "%s\n", Humanize(e.Key))
		writeNode(w, e.Value, 1)
	}
}

func writeNode(w io.Writer, n document.Node, depth int) {
	indent := strings.Repeat("  ", depth)
	switch t := n.(type) {
	case document.Mapping:
		for _, e := range t {
			if _, leaf := e.Value.(document.Scalar); leaf {
				fmt.Fprintf(w, "%s%s: %v\n", indent, e.Key, e.Value.Interface())
				continue
			}
			fmt.Fprintf(w, "%s%s:\n", indent, e.Key)
			writeNode(w, e.Value, depth+1)
		}
	case document.Sequence:
		for _, e := range t {
			if _, leaf := e.(document.Scalar); leaf {
				fmt.Fprintf(w, "%s- %v\n", indent, e.Interface())
				continue
			}
			fmt.Fprintf(w, "%s-\n", indent)
			writeNode(w, e, depth+1)
		}
	case document.Scalar:
		fmt.Fprintf(w, "%s%v\n", indent, t.Value)
	}
}
