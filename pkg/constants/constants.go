// Package constants provides shared constants used throughout the confyg
// codebase, such as file permissions and the default document extension.
package constants

// File permission constants define standard Unix file permissions
const (
	// DirPermissions is the default permission for created directories (rwxr-xr-x)
	DirPermissions = 0755

	// FilePermissions is the default permission for written documents (rw-r--r--)
	FilePermissions = 0644
)

// Document naming constants
const (
	// DefaultExtension is appended to destination document identifiers
	// that do not already carry a recognized YAML extension.
	DefaultExtension = ".yaml"

	// AltExtension is the alternate YAML extension that is also recognized.
	AltExtension = ".yml"
)
