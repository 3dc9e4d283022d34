package document_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/confyg/pkg/document"
	"github.com/agentstation/confyg/pkg/errors"
)

func TestFileStoreRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	store := document.NewFileStore()

	doc := document.Mapping{
		{Key: "zebra", Value: document.Scalar{Value: 1}},
		{Key: "apple", Value: document.Mapping{
			{Key: "nested", Value: document.Scalar{Value: "value"}},
		}},
	}

	require.NoError(t, store.Save(path, doc))

	loaded, err := store.Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"zebra", "apple"}, loaded.Keys())

	want, err := document.Marshal(doc)
	require.NoError(t, err)
	got, err := document.Marshal(loaded)
	require.NoError(t, err)
	assert.Equal(t, string(want), string(got))
}

func TestFileStoreCreatesParentDirectories(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "deeply", "nested", "config.yaml")
	store := document.NewFileStore()

	err := store.Save(path, document.Mapping{{Key: "a", Value: document.Scalar{Value: 1}}})
	require.NoError(t, err)

	_, err = os.Stat(path)
	assert.NoError(t, err)
}

func TestFileStoreCustomPermissions(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	store := document.NewFileStoreWithPermissions(0o600, 0)

	require.NoError(t, store.Save(path, document.Mapping{{Key: "a", Value: document.Scalar{Value: 1}}}))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestFileStoreMissingDocument(t *testing.T) {
	store := document.NewFileStore()

	_, err := store.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	assert.True(t, errors.IsNotFound(err))
}

func TestFileStoreEmptyDocument(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "empty.yaml")
	require.NoError(t, os.WriteFile(path, []byte(""), 0o644))

	store := document.NewFileStore()
	doc, err := store.Load(path)
	require.NoError(t, err)
	assert.Empty(t, doc)
}

func TestFileStoreMalformedDocument(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "broken.yaml")
	require.NoError(t, os.WriteFile(path, []byte("a: [unclosed\n"), 0o644))

	store := document.NewFileStore()
	_, err := store.Load(path)
	require.Error(t, err)

	var parseErr *errors.ParseError
	assert.ErrorAs(t, err, &parseErr)
}

func TestFileStoreNonMappingRoot(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "list.yaml")
	require.NoError(t, os.WriteFile(path, []byte("- one\n- two\n"), 0o644))

	store := document.NewFileStore()
	_, err := store.Load(path)
	require.Error(t, err)

	var parseErr *errors.ParseError
	assert.ErrorAs(t, err, &parseErr)
}
