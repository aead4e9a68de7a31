package utils

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFindTetFiles(t *testing.T) {
	tmpDir := t.TempDir()

	if err := os.MkdirAll(filepath.Join(tmpDir, "sub"), 0755); err != nil {
		t.Fatal(err)
	}
	for _, name := range []string{"b.tet", "a.tet", "sub/c.tet", "notes.txt"} {
		if err := os.WriteFile(filepath.Join(tmpDir, name), []byte("x"), 0644); err != nil {
			t.Fatal(err)
		}
	}

	files, err := FindTetFiles(tmpDir)
	if err != nil {
		t.Fatalf("FindTetFiles failed: %v", err)
	}

	if len(files) != 3 {
		t.Fatalf("expected 3 files, got %v", files)
	}

	// Deterministic ordering
	if filepath.Base(files[0]) != "a.tet" || filepath.Base(files[1]) != "b.tet" {
		t.Errorf("files not sorted: %v", files)
	}
}

func TestFindTetFilesEmptyDir(t *testing.T) {
	files, err := FindTetFiles(t.TempDir())
	if err != nil {
		t.Fatalf("FindTetFiles failed: %v", err)
	}
	if len(files) != 0 {
		t.Errorf("expected no files, got %v", files)
	}
}
