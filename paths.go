package confyg

import (
	"path/filepath"
	"runtime"

	"github.com/agentstation/confyg/pkg/errors"
)

// Root returns the directory found by walking depth levels up from the
// directory of the calling source file. It is typically used to anchor a
// configuration location at a project root:
//
//	root, err := confyg.Root(2)
//	s, err := confyg.New(confyg.WithLocation(filepath.Join(root, "config")))
func Root(depth int) (string, error) {
	_, file, _, ok := runtime.Caller(1)
	if !ok {
		return "", errors.New("caller information unavailable")
	}
	dir := filepath.Dir(file)
	for i := 0; i < depth; i++ {
		dir = filepath.Dir(dir)
	}
	return filepath.Abs(dir)
}
