package playblast_test

import (
	"testing"

	"github.com/user/playblast/pkg/mocks"
	"github.com/user/playblast/pkg/playblast"
)

func TestResolveOutputDir(t *testing.T) {
	host := mocks.NewHost()
	host.Project = "/projects/demo"

	got, err := playblast.ResolveOutputDir(host, "{project}/out")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "/projects/demo/out" {
		t.Errorf("expected /projects/demo/out, got %q", got)
	}

	got, _ = playblast.ResolveOutputDir(host, "/renders/explicit")
	if got != "/renders/explicit" {
		t.Errorf("expected passthrough, got %q", got)
	}
}

func TestResolveOutputFilename(t *testing.T) {
	host := mocks.NewHost()
	host.Scene = "shot010"

	got, err := playblast.ResolveOutputFilename(host, "{scene}_final")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "shot010_final" {
		t.Errorf("expected shot010_final, got %q", got)
	}

	// An unsaved scene substitutes the literal fallback.
	host.Scene = ""
	got, _ = playblast.ResolveOutputFilename(host, "{scene}_final")
	if got != "untitled_final" {
		t.Errorf("expected untitled_final, got %q", got)
	}

	got, _ = playblast.ResolveOutputFilename(host, "output")
	if got != "output" {
		t.Errorf("expected passthrough, got %q", got)
	}
}
