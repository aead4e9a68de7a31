package commands

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func chdirProject(t *testing.T, yml string, sources map[string]string) string {
	t.Helper()

	tmpDir := t.TempDir()
	if err := os.WriteFile(filepath.Join(tmpDir, "tether.yml"), []byte(yml), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.MkdirAll(filepath.Join(tmpDir, "src"), 0o755); err != nil {
		t.Fatal(err)
	}
	for name, source := range sources {
		if err := os.WriteFile(filepath.Join(tmpDir, "src", name), []byte(source), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	oldWd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(tmpDir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Chdir(oldWd) })

	return tmpDir
}

func TestRunGenerate(t *testing.T) {
	tmpDir := chdirProject(t, `
project_name: demo
entry_symbol: demo_init
builtins:
  - Node
  - CharacterBody2D
`, map[string]string{
		"player.tet": `
class Player < CharacterBody2D {
	@export(auto_snake_case) maxHealth: float
	@method(auto_snake_case) func takeDamage(amount: int) -> bool
	healthChanged: signal(current: int)
}
`,
	})

	if err := runGenerate(false, false, true); err != nil {
		t.Fatalf("runGenerate failed: %v", err)
	}

	playerFile := filepath.Join(tmpDir, "bindings", "player.gen.go")
	content, err := os.ReadFile(playerFile)
	if err != nil {
		t.Fatalf("expected generated player bindings: %v", err)
	}
	if !strings.Contains(string(content), "package bindings") {
		t.Error("generated file missing package clause")
	}
	if !strings.Contains(string(content), "type Player struct") {
		t.Error("generated file missing wrapper struct")
	}

	entryFile := filepath.Join(tmpDir, "bindings", "extension.gen.go")
	entry, err := os.ReadFile(entryFile)
	if err != nil {
		t.Fatalf("expected generated entry point: %v", err)
	}
	if !strings.Contains(string(entry), "func DemoInit(") {
		t.Error("entry point not named after entry_symbol")
	}
}

func TestRunGenerateReportsErrors(t *testing.T) {
	chdirProject(t, "builtins: [Node]\n", map[string]string{
		"bad.tet": `
class Orphan < Missing {
	@export speed: float
}
`,
	})

	if err := runGenerate(false, false, true); err == nil {
		t.Error("expected failure for unknown parent class")
	}
}

func TestRunCheck(t *testing.T) {
	chdirProject(t, "builtins: [Node]\n", map[string]string{
		"enemy.tet": `
class Enemy < Node {
	@export speed: float
}
`,
	})

	if err := runCheck(false, true); err != nil {
		t.Fatalf("runCheck failed: %v", err)
	}
}

func TestRunCheckJSONOutput(t *testing.T) {
	chdirProject(t, "builtins: [Node]\n", map[string]string{
		"enemy.tet": `
class Enemy < Node {
	@export speed: float
}
`,
	})

	if err := runCheck(true, true); err != nil {
		t.Fatalf("runCheck --json failed: %v", err)
	}
}

func TestRunInspectUnknownClass(t *testing.T) {
	chdirProject(t, "builtins: [Node]\n", map[string]string{
		"player.tet": `
class Player < Node {
	@export speed: float
}
`,
	})

	if err := runInspect("Playr", true); err == nil {
		t.Error("expected error for unknown class")
	}
}

func TestRunInspectListsClasses(t *testing.T) {
	chdirProject(t, "builtins: [Node]\n", map[string]string{
		"player.tet": `
class Player < Node {
	@export speed: float
}
`,
	})

	if err := runInspect("", true); err != nil {
		t.Fatalf("runInspect failed: %v", err)
	}
	if err := runInspect("Player", true); err != nil {
		t.Fatalf("runInspect Player failed: %v", err)
	}
}
