package execrunner

import (
	"context"
	"os/exec"
	"testing"
)

func TestRun_CollectsStderr(t *testing.T) {
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}

	r := New()
	var lines []string
	err := r.Run(context.Background(), "sh", []string{"-c", "echo frame 1 >&2; echo frame 2 >&2"}, func(line string) {
		lines = append(lines, line)
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(lines) != 2 || lines[0] != "frame 1" || lines[1] != "frame 2" {
		t.Errorf("unexpected stderr lines: %v", lines)
	}
}

func TestRun_NonZeroExit(t *testing.T) {
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}

	r := New()
	if err := r.Run(context.Background(), "sh", []string{"-c", "exit 3"}, nil); err == nil {
		t.Error("expected error for non-zero exit status")
	}
}

func TestRun_MissingBinary(t *testing.T) {
	r := New()
	err := r.Run(context.Background(), "/nonexistent/encoder", nil, nil)
	if err == nil {
		t.Error("expected error for missing binary")
	}
}
