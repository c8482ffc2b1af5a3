package ports

// FileSystem abstracts the file system operations the capture flow needs:
// encoder path validation, output collision checks, and intermediate
// sequence cleanup.
type FileSystem interface {
	// Exists checks if a file or directory exists.
	Exists(path string) (bool, error)

	// IsDir reports whether the path exists and is a directory.
	IsDir(path string) (bool, error)

	// MkdirAll creates a directory and all parent directories.
	MkdirAll(path string) error

	// Glob returns the paths matching the pattern, as filepath.Glob.
	Glob(pattern string) ([]string, error)

	// Remove deletes a file or empty directory.
	Remove(path string) error
}
