package osfilesystem

import (
	"os"
	"path/filepath"
	"testing"
)

func TestExistsAndIsDir(t *testing.T) {
	fs := New()
	dir := t.TempDir()
	file := filepath.Join(dir, "frame.png")
	if err := os.WriteFile(file, []byte("png"), 0644); err != nil {
		t.Fatal(err)
	}

	for _, path := range []string{dir, file} {
		exists, err := fs.Exists(path)
		if err != nil {
			t.Fatalf("Exists(%s): %v", path, err)
		}
		if !exists {
			t.Errorf("Exists(%s): expected true", path)
		}
	}

	exists, err := fs.Exists(filepath.Join(dir, "missing"))
	if err != nil || exists {
		t.Errorf("expected (false, nil) for missing path, got (%v, %v)", exists, err)
	}

	isDir, err := fs.IsDir(dir)
	if err != nil || !isDir {
		t.Errorf("IsDir(dir): expected true, got (%v, %v)", isDir, err)
	}
	isDir, err = fs.IsDir(file)
	if err != nil || isDir {
		t.Errorf("IsDir(file): expected false, got (%v, %v)", isDir, err)
	}
	isDir, err = fs.IsDir(filepath.Join(dir, "missing"))
	if err != nil || isDir {
		t.Errorf("IsDir(missing): expected (false, nil), got (%v, %v)", isDir, err)
	}
}

func TestGlobAndRemove(t *testing.T) {
	fs := New()
	dir := t.TempDir()
	sub := filepath.Join(dir, "playblast_temp")
	if err := fs.MkdirAll(sub); err != nil {
		t.Fatal(err)
	}
	for _, name := range []string{"shot.0000.png", "shot.0001.png", "shot.json"} {
		if err := os.WriteFile(filepath.Join(sub, name), nil, 0644); err != nil {
			t.Fatal(err)
		}
	}

	frames, err := fs.Glob(filepath.Join(sub, "*.png"))
	if err != nil {
		t.Fatal(err)
	}
	if len(frames) != 2 {
		t.Fatalf("expected 2 matches, got %v", frames)
	}

	for _, frame := range frames {
		if err := fs.Remove(frame); err != nil {
			t.Fatal(err)
		}
	}
	if err := fs.Remove(filepath.Join(sub, "shot.json")); err != nil {
		t.Fatal(err)
	}
	if err := fs.Remove(sub); err != nil {
		t.Fatalf("expected empty directory removal to succeed: %v", err)
	}
	exists, _ := fs.Exists(sub)
	if exists {
		t.Error("directory still exists after removal")
	}
}
