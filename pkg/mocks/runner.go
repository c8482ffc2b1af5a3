package mocks

import (
	"context"

	"github.com/user/playblast/pkg/ports"
)

// RunCall records one blocking process invocation.
type RunCall struct {
	Name string
	Args []string
}

// StartCall records one detached process invocation.
type StartCall struct {
	Name string
	Args []string
}

// ProcessRunner is a mock implementation of ports.ProcessRunner.
type ProcessRunner struct {
	RunFunc func(ctx context.Context, name string, args []string, onOutput func(line string)) error

	RunCalls   []RunCall
	StartCalls []StartCall
	OpenCalls  []string
}

func (m *ProcessRunner) Run(ctx context.Context, name string, args []string, onOutput func(line string)) error {
	m.RunCalls = append(m.RunCalls, RunCall{Name: name, Args: append([]string(nil), args...)})
	if m.RunFunc != nil {
		return m.RunFunc(ctx, name, args, onOutput)
	}
	return nil
}

func (m *ProcessRunner) StartDetached(name string, args ...string) error {
	m.StartCalls = append(m.StartCalls, StartCall{Name: name, Args: append([]string(nil), args...)})
	return nil
}

func (m *ProcessRunner) OpenWithDefaultApp(path string) error {
	m.OpenCalls = append(m.OpenCalls, path)
	return nil
}

var _ ports.ProcessRunner = (*ProcessRunner)(nil)
