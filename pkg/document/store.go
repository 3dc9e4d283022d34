package document

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/agentstation/confyg/pkg/constants"
	"github.com/agentstation/confyg/pkg/errors"
)

// Store loads and saves destination documents. Implementations must
// preserve mapping key order on both load and save; the reconciler's
// document-order guarantee depends on it.
type Store interface {
	// Load reads the document at path. A missing document yields an error
	// satisfying errors.Is(err, errors.ErrNotFound).
	Load(path string) (Mapping, error)

	// Save writes the document at path as a full overwrite, creating
	// parent directories as needed.
	Save(path string, doc Mapping) error
}

// FileStore is the YAML-backed Store used in production.
type FileStore struct {
	filePerm os.FileMode
	dirPerm  os.FileMode
}

// NewFileStore creates a FileStore with default permissions.
func NewFileStore() *FileStore {
	return NewFileStoreWithPermissions(constants.FilePermissions, constants.DirPermissions)
}

// NewFileStoreWithPermissions creates a FileStore writing documents and
// parent directories with the given modes. A zero mode falls back to the
// default.
func NewFileStoreWithPermissions(filePerm, dirPerm os.FileMode) *FileStore {
	if filePerm == 0 {
		filePerm = constants.FilePermissions
	}
	if dirPerm == 0 {
		dirPerm = constants.DirPermissions
	}
	return &FileStore{filePerm: filePerm, dirPerm: dirPerm}
}

// Load reads and parses the YAML document at path.
func (fs *FileStore) Load(path string) (Mapping, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NewNotFoundError("document", path)
		}
		return nil, errors.WrapIO("read", path, err)
	}

	node, err := Unmarshal(data)
	if err != nil {
		return nil, errors.WrapParse("yaml", path, err)
	}

	switch t := node.(type) {
	case Mapping:
		return t, nil
	case Scalar:
		// An empty file decodes to a nil scalar.
		if t.Value == nil {
			return Mapping{}, nil
		}
	}
	return nil, errors.NewParseError("yaml", path, "document root must be a mapping", nil)
}

// Save writes doc to path, creating parent directories first.
func (fs *FileStore) Save(path string, doc Mapping) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, fs.dirPerm); err != nil {
		return errors.WrapIO("create", dir, err)
	}

	data, err := Marshal(doc)
	if err != nil {
		return errors.WrapParse("yaml", path, err)
	}

	if err := os.WriteFile(path, data, fs.filePerm); err != nil {
		return errors.WrapIO("write", path, err)
	}
	return nil
}

// EnsureExtension applies the document naming rule: a destination
// identifier without a recognized YAML extension gets the default
// extension appended.
func EnsureExtension(name string) string {
	if strings.HasSuffix(name, constants.DefaultExtension) || strings.HasSuffix(name, constants.AltExtension) {
		return name
	}
	return name + constants.DefaultExtension
}
