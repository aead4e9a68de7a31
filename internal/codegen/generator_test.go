package codegen

import (
	"go/format"
	"strings"
	"testing"

	"github.com/tether-lang/tether/internal/descriptor"
	"github.com/tether-lang/tether/internal/plan"
	"github.com/tether-lang/tether/runtime/bridge"
	"github.com/tether-lang/tether/runtime/hostval"
)

func scenePlan(names ...string) *plan.Plan {
	return &plan.Plan{Levels: map[bridge.InitLevel][]string{
		bridge.LevelScene: names,
	}}
}

func TestGenerateFiles(t *testing.T) {
	classes := []*descriptor.Class{playerClass()}
	enums := []*descriptor.Enum{
		{Name: "Element", Cases: []descriptor.EnumCase{{Name: "Fire", Value: 0}, {Name: "Water", Value: 3}}},
	}

	g := New(Options{Package: "bindings", EntrySymbol: "game_init"})
	files, err := g.Generate(classes, enums, scenePlan("Player"))
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	byName := make(map[string]string)
	for _, f := range files {
		byName[f.Name] = f.Content
	}

	for _, name := range []string{"player.gen.go", "enums.gen.go", "extension.gen.go"} {
		if _, ok := byName[name]; !ok {
			t.Fatalf("missing generated file %q, got %v", name, fileNames(files))
		}
	}

	for name, content := range byName {
		if !strings.HasPrefix(content, "// Code generated by tether. DO NOT EDIT.") {
			t.Errorf("%s missing generated-code header", name)
		}
		if !strings.Contains(content, "package bindings") {
			t.Errorf("%s missing package clause", name)
		}
	}
}

func fileNames(files []File) []string {
	names := make([]string, len(files))
	for i, f := range files {
		names[i] = f.Name
	}
	return names
}

func TestGeneratedFilesAreFormatted(t *testing.T) {
	classes := []*descriptor.Class{
		playerClass(),
		{Name: "GizmoPlugin", Parent: "Node", Tool: true, DiscardHandle: true},
	}
	enums := []*descriptor.Enum{
		{Name: "Element", Cases: []descriptor.EnumCase{{Name: "Fire", Value: 0}, {Name: "Water", Value: 3}}},
	}

	g := New(Options{})
	files, err := g.Generate(classes, enums, scenePlan("Player", "GizmoPlugin"))
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	for _, f := range files {
		formatted, err := format.Source([]byte(f.Content))
		if err != nil {
			t.Fatalf("%s does not parse: %v", f.Name, err)
		}
		if string(formatted) != f.Content {
			t.Errorf("%s is not gofmt-clean", f.Name)
		}
	}
}

func TestGenerateEntryPoint(t *testing.T) {
	classes := []*descriptor.Class{playerClass()}

	g := New(Options{EntrySymbol: "game_init"})
	files, err := g.Generate(classes, nil, scenePlan("Player"))
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	var entry string
	for _, f := range files {
		if f.Name == "extension.gen.go" {
			entry = f.Content
		}
	}
	if entry == "" {
		t.Fatal("no entry file generated")
	}

	assertContains(t, entry, "func GameInit(host bridge.Host, level bridge.InitLevel) bool")
	assertContains(t, entry, `hostBuiltins = []string{`)
	assertContains(t, entry, `"CharacterBody2D",`)
	assertContains(t, entry, `Name:   "Player",`)
	assertContains(t, entry, "Body:   registerPlayer,")
	assertContains(t, entry, `bridge.LevelScene: {"Player"},`)
	assertContains(t, entry, "entryOnce.Do(func() {")
	assertContains(t, entry, "return entry.Invoke(host, level)")

	if strings.Contains(entry, "registerEnums") {
		t.Error("entry must not wire enum registration when no enums are compiled")
	}
}

func TestGenerateEntryPointWithEnums(t *testing.T) {
	enums := []*descriptor.Enum{{Name: "Element", Cases: []descriptor.EnumCase{{Name: "Fire"}}}}

	g := New(Options{})
	files, err := g.Generate(nil, enums, scenePlan())
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	var entry string
	for _, f := range files {
		if f.Name == "extension.gen.go" {
			entry = f.Content
		}
	}

	assertContains(t, entry, "func ExtensionInit(host bridge.Host, level bridge.InitLevel) bool")
	assertContains(t, entry, "enumOnce.Do(func() {")
	assertContains(t, entry, "registerEnums(host.ClassDB())")
}

func TestGenerateToolClassMode(t *testing.T) {
	class := &descriptor.Class{Name: "Gizmo", Parent: "Node3D", Tool: true, DiscardHandle: true}

	g := New(Options{})
	files, err := g.Generate([]*descriptor.Class{class}, nil, scenePlan("Gizmo"))
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	var entry string
	for _, f := range files {
		if f.Name == "extension.gen.go" {
			entry = f.Content
		}
	}

	assertContains(t, entry, "Mode:   bridge.ModeTool,")
	assertContains(t, entry, "DiscardHandle: true,")
}

func TestGenerateEnumFile(t *testing.T) {
	enums := []*descriptor.Enum{
		{Name: "Element", Cases: []descriptor.EnumCase{
			{Name: "Fire", Value: 0},
			{Name: "Water", Value: 3},
			{Name: "Earth", Value: 4},
		}},
	}

	body, err := NewEnumGenerator().Generate(enums)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	assertContains(t, body, "ElementFire int64 = 0")
	assertContains(t, body, "ElementWater int64 = 3")
	assertContains(t, body, "const ElementCaseCount = 3")
	assertContains(t, body, "func ElementName(value int64) (string, bool)")
	assertContains(t, body, `return "Water", true`)
	assertContains(t, body, `db.RegisterEnum(bridge.EnumInfo{`)
	assertContains(t, body, `{Name: "Earth", Value: 4},`)
}

func TestGeneratedFileNames(t *testing.T) {
	classes := []*descriptor.Class{
		{Name: "HealthBar", Parent: "Control"},
	}

	g := New(Options{})
	files, err := g.Generate(classes, nil, scenePlan("HealthBar"))
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	if files[0].Name != "health_bar.gen.go" {
		t.Errorf("class file name = %q, want %q", files[0].Name, "health_bar.gen.go")
	}
}

func TestTypeMapper(t *testing.T) {
	tests := []struct {
		kind   hostval.Kind
		goType string
		wrap   string
		unwrap string
	}{
		{hostval.KindBool, "bool", "hostval.Bool(x)", "AsBool"},
		{hostval.KindInt, "int64", "hostval.Int(x)", "AsInt"},
		{hostval.KindFloat, "float64", "hostval.Float(x)", "AsFloat"},
		{hostval.KindString, "string", "hostval.Str(x)", "AsString"},
		{hostval.KindVector2, "hostval.Vector2", "hostval.Vec2(x)", "AsVector2"},
		{hostval.KindNodePath, "hostval.NodePath", "hostval.Path(x)", "AsNodePath"},
		{hostval.KindObject, "hostval.Object", "hostval.Obj(x)", "AsObject"},
		{hostval.KindArray, "[]hostval.Value", "hostval.Arr(x)", "AsArray"},
		{hostval.KindDict, "map[string]hostval.Value", "hostval.Dict(x)", "AsDict"},
	}

	for _, tt := range tests {
		if got := mapKindToGo(tt.kind); got != tt.goType {
			t.Errorf("mapKindToGo(%v) = %q, want %q", tt.kind, got, tt.goType)
		}
		if got := wrapExpr(tt.kind, "x"); got != tt.wrap {
			t.Errorf("wrapExpr(%v) = %q, want %q", tt.kind, got, tt.wrap)
		}
		if got := unwrapMethod(tt.kind); got != tt.unwrap {
			t.Errorf("unwrapMethod(%v) = %q, want %q", tt.kind, got, tt.unwrap)
		}
	}
}
