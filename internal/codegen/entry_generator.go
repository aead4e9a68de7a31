package codegen

import (
	"fmt"
	"sort"
	"strings"

	"github.com/tether-lang/tether/internal/descriptor"
	"github.com/tether-lang/tether/internal/plan"
	"github.com/tether-lang/tether/runtime/bridge"
)

// EntryGenerator emits the extension entry point: the class registry,
// the level table from the initialization plan, and the exported
// symbol the host loader invokes once per level.
type EntryGenerator struct{}

// NewEntryGenerator creates a new entry point generator.
func NewEntryGenerator() *EntryGenerator {
	return &EntryGenerator{}
}

// Imports reports the packages the generated entry source refers to.
func (g *EntryGenerator) Imports() []string {
	return []string{"sync", importBridge}
}

// Generate emits the entry point source body.
func (g *EntryGenerator) Generate(classes []*descriptor.Class, enums []*descriptor.Enum, p *plan.Plan, symbol string) (string, error) {
	var code strings.Builder

	code.WriteString(g.generateBuiltins(classes))
	code.WriteString("\n\n")
	code.WriteString(g.generateRegistry(classes))
	code.WriteString("\n\n")
	code.WriteString(g.generateLevelTable(p))
	code.WriteString("\n\n")
	code.WriteString(g.generateEntryFunc(symbol, len(enums) > 0))
	code.WriteString("\n")

	return code.String(), nil
}

// generateBuiltins lists every parent class that is not itself
// compiled, in sorted order. The registry treats these as host
// built-ins.
func (g *EntryGenerator) generateBuiltins(classes []*descriptor.Class) string {
	compiled := make(map[string]bool, len(classes))
	for _, class := range classes {
		compiled[class.Name] = true
	}

	seen := make(map[string]bool)
	var builtins []string
	for _, class := range classes {
		if !compiled[class.Parent] && !seen[class.Parent] {
			seen[class.Parent] = true
			builtins = append(builtins, class.Parent)
		}
	}
	sort.Strings(builtins)

	var code strings.Builder
	code.WriteString("// hostBuiltins are the engine classes this extension descends from.\n")
	code.WriteString("var hostBuiltins = []string{\n")
	for _, name := range builtins {
		fmt.Fprintf(&code, "\t%q,\n", name)
	}
	code.WriteString("}")
	return code.String()
}

func (g *EntryGenerator) generateRegistry(classes []*descriptor.Class) string {
	var code strings.Builder

	code.WriteString("// newRegistry assembles the class registry for this extension.\n")
	code.WriteString("func newRegistry() (*bridge.Registry, error) {\n")
	code.WriteString("\tregistry := bridge.NewRegistry(hostBuiltins...)\n")
	code.WriteString("\tfor _, class := range []*bridge.Class{\n")

	for _, class := range classes {
		mode := "bridge.ModeGameplay"
		if class.Tool {
			mode = "bridge.ModeTool"
		}
		fmt.Fprintf(&code, "\t\t{\n\t\t\tName:   %q,\n\t\t\tParent: %q,\n\t\t\tMode:   %s,\n",
			class.Name, class.Parent, mode)
		if class.DiscardHandle {
			code.WriteString("\t\t\tDiscardHandle: true,\n")
		}
		fmt.Fprintf(&code, "\t\t\tBody:   register%s,\n\t\t},\n", class.Name)
	}

	code.WriteString("\t} {\n\t\tif err := registry.Add(class); err != nil {\n\t\t\treturn nil, err\n\t\t}\n\t}\n")
	code.WriteString("\treturn registry, nil\n}")
	return code.String()
}

func (g *EntryGenerator) generateLevelTable(p *plan.Plan) string {
	var code strings.Builder

	code.WriteString("// levelClasses schedules registration across host initialization\n")
	code.WriteString("// levels. Order within a level is registration order.\n")
	code.WriteString("var levelClasses = map[bridge.InitLevel][]string{\n")

	for _, level := range bridge.Levels {
		names := p.Classes(level)
		if len(names) == 0 {
			continue
		}
		fmt.Fprintf(&code, "\tbridge.Level%s: {", descriptor.GoName(level.String()))
		for i, name := range names {
			if i > 0 {
				code.WriteString(", ")
			}
			fmt.Fprintf(&code, "%q", name)
		}
		code.WriteString("},\n")
	}

	code.WriteString("}")
	return code.String()
}

func (g *EntryGenerator) generateEntryFunc(symbol string, hasEnums bool) string {
	funcName := descriptor.GoName(symbol)

	enumHook := ""
	if hasEnums {
		enumHook = `
	enumOnce.Do(func() {
		enumErr = registerEnums(host.ClassDB())
	})
	if enumErr != nil {
		host.ReportError(enumErr)
		return false
	}
`
	}

	enumVars := ""
	if hasEnums {
		enumVars = "\n\tenumOnce sync.Once\n\tenumErr  error\n"
	}

	return fmt.Sprintf(`var (
	entryOnce sync.Once
	entry     *bridge.EntryPoint
	entryErr  error%s
)

// %s is the extension entry point. The host invokes it once per
// initialization level; a false return aborts extension loading.
func %s(host bridge.Host, level bridge.InitLevel) bool {
	entryOnce.Do(func() {
		var registry *bridge.Registry
		registry, entryErr = newRegistry()
		if entryErr != nil {
			return
		}
		entry, entryErr = bridge.NewEntryPoint(registry, levelClasses)
	})
	if entryErr != nil {
		host.ReportError(entryErr)
		return false
	}
%s
	return entry.Invoke(host, level)
}`, enumVars, funcName, funcName, enumHook)
}
