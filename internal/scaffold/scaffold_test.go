package scaffold

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestCreate(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "my-game")

	ctx := NewContext("my-game")
	if err := Create(dir, ctx); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	for _, rel := range []string{"tether.yml", "src/main.tet", "README.md"} {
		if _, err := os.Stat(filepath.Join(dir, rel)); err != nil {
			t.Errorf("expected %s to exist: %v", rel, err)
		}
	}

	cfg, err := os.ReadFile(filepath.Join(dir, "tether.yml"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(cfg), "project_name: my-game") {
		t.Error("tether.yml missing project name")
	}
	if !strings.Contains(string(cfg), "entry_symbol: my_game_init") {
		t.Errorf("tether.yml missing derived entry symbol:\n%s", cfg)
	}
	if !strings.Contains(string(cfg), "project_id: "+ctx.ProjectID) {
		t.Error("tether.yml missing project id")
	}

	src, err := os.ReadFile(filepath.Join(dir, "src", "main.tet"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(src), "class Main < Node {") {
		t.Errorf("sample class malformed:\n%s", src)
	}
}

func TestCreateRefusesExistingDirectory(t *testing.T) {
	dir := t.TempDir()

	if err := Create(dir, NewContext("x")); err == nil {
		t.Fatal("expected an error for an existing directory")
	}
}

func TestNewContextIDsAreUnique(t *testing.T) {
	a := NewContext("a")
	b := NewContext("b")
	if a.ProjectID == b.ProjectID {
		t.Error("expected distinct project ids")
	}
}
