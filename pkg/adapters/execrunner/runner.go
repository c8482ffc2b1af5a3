// Package execrunner provides a ProcessRunner implementation using
// os/exec.
package execrunner

import (
	"bufio"
	"context"
	"fmt"
	"os/exec"
	"runtime"

	"github.com/user/playblast/pkg/ports"
)

// Runner implements ports.ProcessRunner with os/exec.
type Runner struct{}

// New creates a new Runner.
func New() *Runner {
	return &Runner{}
}

// Run starts the program and blocks until it exits. Stderr lines are
// passed to onOutput as they arrive; encoders like ffmpeg report their
// progress there.
func (r *Runner) Run(ctx context.Context, name string, args []string, onOutput func(line string)) error {
	cmd := exec.CommandContext(ctx, name, args...)

	stderr, err := cmd.StderrPipe()
	if err != nil {
		return fmt.Errorf("stderr pipe: %w", err)
	}

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("start %s: %w", name, err)
	}

	scanner := bufio.NewScanner(stderr)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		if onOutput != nil {
			onOutput(scanner.Text())
		}
	}

	if err := cmd.Wait(); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	return nil
}

// StartDetached starts the program without waiting for it to exit.
func (r *Runner) StartDetached(name string, args ...string) error {
	cmd := exec.Command(name, args...)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("start %s: %w", name, err)
	}
	return cmd.Process.Release()
}

// OpenWithDefaultApp opens the file with the platform's registered
// file-association handler.
func (r *Runner) OpenWithDefaultApp(path string) error {
	switch runtime.GOOS {
	case "darwin":
		return r.StartDetached("open", path)
	case "windows":
		return r.StartDetached("rundll32", "url.dll,FileProtocolHandler", path)
	default:
		return r.StartDetached("xdg-open", path)
	}
}

var _ ports.ProcessRunner = (*Runner)(nil)
