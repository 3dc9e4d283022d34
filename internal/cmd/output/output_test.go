package output_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/confyg/internal/cmd/output"
	"github.com/agentstation/confyg/pkg/document"
)

func TestHumanize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"model_1", "Model 1"},
		{"remove_stop_words", "Remove Stop Words"},
		{"threshold", "Threshold"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, output.Humanize(tt.in))
	}
}

func TestWriteTree(t *testing.T) {
	node, err := document.Unmarshal([]byte("model_1:\n  vectorizer: tfidf\n  words:\n  - the\n"))
	require.NoError(t, err)
	doc, ok := node.(document.Mapping)
	require.True(t, ok)

	var buf bytes.Buffer
	output.WriteTree(&buf, doc)

	got := buf.String()
	assert.Contains(t, got, "Model 1")
	assert.Contains(t, got, "vectorizer: tfidf")
	assert.Contains(t, got, "- the")
}
