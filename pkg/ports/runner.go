package ports

import "context"

// ProcessRunner abstracts launching external programs: the video encoder
// and viewer applications.
type ProcessRunner interface {
	// Run starts the program and blocks until it exits. Each line the
	// process writes to stderr is passed to onOutput, which may be nil.
	// A non-zero exit status is returned as an error.
	Run(ctx context.Context, name string, args []string, onOutput func(line string)) error

	// StartDetached starts the program without waiting for it.
	StartDetached(name string, args ...string) error

	// OpenWithDefaultApp opens the file with the platform's registered
	// file-association handler.
	OpenWithDefaultApp(path string) error
}
