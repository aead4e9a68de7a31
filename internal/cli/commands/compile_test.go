package commands

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/tether-lang/tether/compiler/errors"
	"github.com/tether-lang/tether/internal/cli/config"
	"github.com/tether-lang/tether/runtime/bridge"
)

func writeProject(t *testing.T, sources map[string]string) *config.Config {
	t.Helper()

	tmpDir := t.TempDir()
	srcDir := filepath.Join(tmpDir, "src")
	if err := os.MkdirAll(srcDir, 0o755); err != nil {
		t.Fatal(err)
	}
	for name, source := range sources {
		if err := os.WriteFile(filepath.Join(srcDir, name), []byte(source), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	cfg := config.Default()
	cfg.Source.Dir = srcDir
	cfg.Output.Dir = filepath.Join(tmpDir, "bindings")
	cfg.Builtins = []string{"Node", "CharacterBody2D"}
	return cfg
}

func TestCompileProject(t *testing.T) {
	cfg := writeProject(t, map[string]string{
		"player.tet": `
class Player < CharacterBody2D {
	@export(auto_snake_case) maxHealth: float
	@method(auto_snake_case) func takeDamage(amount: int) -> bool
	healthChanged: signal(current: int)
}
`,
		"enemy.tet": `
class Enemy < Node {
	@export speed: float
}
`,
	})

	result, err := compileProject(cfg)
	if err != nil {
		t.Fatalf("compileProject failed: %v", err)
	}
	if result.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", result.Diags)
	}
	if len(result.Classes) != 2 {
		t.Fatalf("expected 2 classes, got %d", len(result.Classes))
	}
	if result.Plan == nil {
		t.Fatal("expected a registration plan")
	}
	// Unassigned classes default to the scene level, declaration order.
	scheduled := result.Plan.Classes(bridge.LevelScene)
	if len(scheduled) != 2 {
		t.Fatalf("expected 2 classes at scene level, got %v", scheduled)
	}
}

func TestCompileProjectDefaultBuiltins(t *testing.T) {
	// Extending a common host class needs no builtins: config.
	cfg := writeProject(t, map[string]string{
		"player.tet": `
class Player < CharacterBody2D {
	@export speed: float
}
`,
	})
	cfg.Builtins = nil

	result, err := compileProject(cfg)
	if err != nil {
		t.Fatalf("compileProject failed: %v", err)
	}
	if result.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", result.Diags)
	}
	if result.Plan == nil {
		t.Fatal("expected a registration plan")
	}
}

func TestCompileProjectLexError(t *testing.T) {
	cfg := writeProject(t, map[string]string{
		"broken.tet": `
class Player < Node {
	@export title: string "unterminated
}
`,
	})

	result, err := compileProject(cfg)
	if err != nil {
		t.Fatalf("compileProject failed: %v", err)
	}
	if !result.HasErrors() {
		t.Fatal("expected lexer diagnostics")
	}
	if result.Plan != nil {
		t.Error("expected no plan when the front end fails")
	}
	found := false
	for _, d := range result.Diags {
		if d.Phase == "lexer" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected a lexer-phase diagnostic, got %v", result.Diags)
	}
}

func TestCompileProjectParseError(t *testing.T) {
	cfg := writeProject(t, map[string]string{
		"broken.tet": `
class Player < {
	@export speed: float
}
`,
	})

	result, err := compileProject(cfg)
	if err != nil {
		t.Fatalf("compileProject failed: %v", err)
	}
	if !result.HasErrors() {
		t.Fatal("expected parser diagnostics")
	}
	found := false
	for _, d := range result.Diags {
		if d.Phase == "parser" && d.Code == errors.ErrUnexpectedToken {
			found = true
		}
	}
	if !found {
		t.Errorf("expected an E100 parser diagnostic, got %v", result.Diags)
	}
}

func TestCompileProjectUnknownParent(t *testing.T) {
	cfg := writeProject(t, map[string]string{
		"ghost.tet": `
class Ghost < Spectre {
	@export speed: float
}
`,
	})

	result, err := compileProject(cfg)
	if err != nil {
		t.Fatalf("compileProject failed: %v", err)
	}
	found := false
	for _, d := range result.Diags {
		if d.Code == errors.ErrUnknownParentClass {
			found = true
		}
	}
	if !found {
		t.Errorf("expected an unknown-parent diagnostic, got %v", result.Diags)
	}
}

func TestCompileProjectNoSources(t *testing.T) {
	cfg := config.Default()
	cfg.Source.Dir = t.TempDir()

	if _, err := compileProject(cfg); err == nil {
		t.Error("expected error when no .tet files exist")
	}
}

func TestClassNames(t *testing.T) {
	cfg := writeProject(t, map[string]string{
		"player.tet": `
class Player < Node {
	@export speed: float
}
`,
	})

	result, err := compileProject(cfg)
	if err != nil {
		t.Fatal(err)
	}
	names := result.classNames()
	if len(names) != 1 || names[0] != "Player" {
		t.Errorf("classNames() = %v, want [Player]", names)
	}
}
