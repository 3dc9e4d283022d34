package schema_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/confyg/pkg/document"
	"github.com/agentstation/confyg/pkg/schema"
)

type vectorizer struct {
	Kind     string `yaml:"kind"`
	MaxTerms int    `yaml:"max_terms"`
}

type modelSection struct {
	Vectorizer vectorizer `yaml:"vectorizer"`
	Classifier string     `yaml:"classifier"`
}

type testSchema struct {
	Model         modelSection `yaml:"model"`
	Preprocessing struct {
		RemoveStopWords bool `yaml:"remove_stop_words"`
	} `yaml:"preprocessing"`
	Threshold float64 `yaml:"threshold"`
	Untagged  string
	Skipped   string `yaml:"-"`
	hidden    int
}

func defaultTestSchema() testSchema {
	s := testSchema{
		Model: modelSection{
			Vectorizer: vectorizer{Kind: "tfidf", MaxTerms: 1000},
			Classifier: "bdt",
		},
		Threshold: 0.5,
		Untagged:  "plain",
	}
	s.Preprocessing.RemoveStopWords = true
	s.hidden = 1
	return s
}

func TestSectionsDeclarationOrder(t *testing.T) {
	cfg := defaultTestSchema()

	sections, err := schema.Sections(&cfg)
	require.NoError(t, err)

	names := make([]string, len(sections))
	for i, sec := range sections {
		names[i] = sec.Name
	}

	// Tagged fields use their tag name, untagged fields the lowercased Go
	// name; yaml:"-" and unexported fields are skipped.
	assert.Equal(t, []string{"model", "preprocessing", "threshold", "untagged"}, names)
}

func TestSectionsRejectsNonPointer(t *testing.T) {
	cfg := defaultTestSchema()

	_, err := schema.Sections(cfg)
	assert.Error(t, err)

	_, err = schema.Sections((*testSchema)(nil))
	assert.Error(t, err)

	value := 42
	_, err = schema.Sections(&value)
	assert.Error(t, err)
}

func TestEncodeDefaults(t *testing.T) {
	cfg := defaultTestSchema()

	node, err := schema.Encode(cfg.Model)
	require.NoError(t, err)

	m, ok := node.(document.Mapping)
	require.True(t, ok)
	assert.Equal(t, []string{"vectorizer", "classifier"}, m.Keys())

	data, err := document.Marshal(m)
	require.NoError(t, err)
	assert.Equal(t, "vectorizer:\n  kind: tfidf\n  max_terms: 1000\nclassifier: bdt\n", string(data))
}

func TestEncodeIsDeterministic(t *testing.T) {
	cfg := defaultTestSchema()

	first, err := schema.Encode(cfg.Model)
	require.NoError(t, err)
	second, err := schema.Encode(cfg.Model)
	require.NoError(t, err)

	a, err := document.Marshal(first)
	require.NoError(t, err)
	b, err := document.Marshal(second)
	require.NoError(t, err)
	assert.Equal(t, string(a), string(b))
}

func TestEncodeSectionWrapsUnderName(t *testing.T) {
	cfg := defaultTestSchema()

	wrapped, err := schema.EncodeSection("model", cfg.Model)
	require.NoError(t, err)

	require.Equal(t, []string{"model"}, wrapped.Keys())
	inner, ok := wrapped.Get("model")
	require.True(t, ok)
	assert.IsType(t, document.Mapping{}, inner)
}
