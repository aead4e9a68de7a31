package codegen

import (
	"fmt"
	"strings"

	"github.com/tether-lang/tether/internal/descriptor"
	"github.com/tether-lang/tether/runtime/bridge"
)

// ClassGenerator emits one Go source file per compiled class: the
// wrapper struct, both construction paths, the registration routine,
// typed signal emitters and scene node accessors.
type ClassGenerator struct{}

// NewClassGenerator creates a new class generator.
func NewClassGenerator() *ClassGenerator {
	return &ClassGenerator{}
}

// Generate emits the complete wrapper source for one class, without
// the file header and import block.
func (g *ClassGenerator) Generate(class *descriptor.Class) (string, error) {
	var code strings.Builder

	code.WriteString(g.generateStruct(class))
	code.WriteString("\n\n")
	code.WriteString(g.generateConstructors(class))

	for _, signal := range class.Signals {
		code.WriteString("\n\n")
		code.WriteString(g.generateEmitter(class, signal))
	}

	for _, ref := range class.NodeRefs {
		code.WriteString("\n\n")
		code.WriteString(g.generateNodeAccessor(class, ref))
	}

	code.WriteString("\n\n")
	body, err := g.generateRegisterBody(class)
	if err != nil {
		return "", err
	}
	code.WriteString(body)
	code.WriteString("\n")

	return code.String(), nil
}

// Imports reports which runtime packages the generated class source
// refers to.
func (g *ClassGenerator) Imports(class *descriptor.Class) []string {
	imports := []string{importBridge, importHostval}
	if len(class.Methods) > 0 {
		imports = append([]string{"fmt"}, imports...)
	}
	if len(class.NodeRefs) > 0 {
		imports = append(imports, importScene)
	}
	return imports
}

func (g *ClassGenerator) generateStruct(class *descriptor.Class) string {
	var code strings.Builder

	fmt.Fprintf(&code, "// %s extends the host class %s.\n", class.Name, class.Parent)
	fmt.Fprintf(&code, "type %s struct {\n", class.Name)
	code.WriteString("\tbridge.Instance\n")

	if len(class.Properties) > 0 {
		code.WriteString("\n")
		for _, prop := range class.Properties {
			fmt.Fprintf(&code, "\t%s %s\n", prop.GoName, mapKindToGo(prop.Kind))
		}
	}

	code.WriteString("}")
	return code.String()
}

func (g *ClassGenerator) generateConstructors(class *descriptor.Class) string {
	return fmt.Sprintf(`// New%s allocates a fresh %s handle and wraps it.
func New%s(host bridge.Host) (*%s, error) {
	inst := &%s{}
	if err := inst.Construct(host, %q, bridge.Fresh()); err != nil {
		return nil, err
	}
	return inst, nil
}

// Wrap%s adopts a handle the host already owns. The handle's
// lifetime stays with the host.
func Wrap%s(host bridge.Host, handle hostval.Object) (*%s, error) {
	inst := &%s{}
	if err := inst.Construct(host, %q, bridge.Wrap(handle)); err != nil {
		return nil, err
	}
	return inst, nil
}`,
		class.Name, class.Parent,
		class.Name, class.Name, class.Name, class.Parent,
		class.Name,
		class.Name, class.Name, class.Name, class.Parent)
}

func (g *ClassGenerator) generateEmitter(class *descriptor.Class, signal *descriptor.Signal) string {
	emitterName := "Emit" + descriptor.GoName(signal.Name)

	var params strings.Builder
	var values strings.Builder
	for _, arg := range signal.Args {
		params.WriteString(", ")
		fmt.Fprintf(&params, "%s %s", safeParamName(arg.Name), mapKindToGo(arg.Kind))
		values.WriteString(wrapExpr(arg.Kind, safeParamName(arg.Name)))
		values.WriteString(", ")
	}

	args := "nil"
	if len(signal.Args) > 0 {
		args = fmt.Sprintf("[]hostval.Value{%s}", strings.TrimSuffix(values.String(), ", "))
	}

	return fmt.Sprintf(`// %s raises the %s signal on the wrapped host object.
func (x *%s) %s(host bridge.Host%s) error {
	return host.EmitSignal(x.Object(), %q, %s)
}`, emitterName, signal.Name, class.Name, emitterName, params.String(), signal.Name, args)
}

func (g *ClassGenerator) generateNodeAccessor(class *descriptor.Class, ref *descriptor.NodeRef) string {
	if ref.Required {
		return fmt.Sprintf(`// %s resolves the %s node under the given root. The reference is
// required; a missing node is a fatal wiring error.
func (x *%s) %s(root scene.Node) scene.Node {
	return scene.MustResolve(root, %q)
}`, ref.GoName, ref.Path, class.Name, ref.GoName, ref.Path)
	}

	return fmt.Sprintf(`// %s resolves the %s node under the given root, or returns nil
// when the node is absent.
func (x *%s) %s(root scene.Node) scene.Node {
	n, ok := scene.Resolve(root, %q)
	if !ok {
		return nil
	}
	return n
}`, ref.GoName, ref.Path, class.Name, ref.GoName, ref.Path)
}

func (g *ClassGenerator) generateRegisterBody(class *descriptor.Class) (string, error) {
	var code strings.Builder

	fmt.Fprintf(&code, "// register%s describes %s to the host class database. It runs\n", class.Name, class.Name)
	code.WriteString("// exactly once, from the extension entry point.\n")
	fmt.Fprintf(&code, "func register%s(db bridge.ClassDB) error {\n", class.Name)

	for _, prop := range class.Properties {
		code.WriteString(g.generatePropertyRegistration(class, prop))
		code.WriteString("\n")
	}
	for _, method := range class.Methods {
		code.WriteString(g.generateMethodRegistration(class, method))
		code.WriteString("\n")
	}
	for _, signal := range class.Signals {
		code.WriteString(g.generateSignalRegistration(class, signal))
		code.WriteString("\n")
	}
	for _, hook := range class.Overrides {
		fmt.Fprintf(&code, "\tif err := db.RegisterOverride(%q, %q); err != nil {\n\t\treturn err\n\t}\n",
			class.Name, hook)
	}

	code.WriteString("\treturn nil\n}")
	return code.String(), nil
}

func (g *ClassGenerator) generatePropertyRegistration(class *descriptor.Class, prop *descriptor.Property) string {
	var info strings.Builder
	fmt.Fprintf(&info, "\t\tName:        %q,\n", prop.Name)
	fmt.Fprintf(&info, "\t\tDisplayName: %q,\n", prop.DisplayName)
	fmt.Fprintf(&info, "\t\tKind:        %s,\n", kindConst(prop.Kind))
	if prop.Hint != bridge.HintNone {
		fmt.Fprintf(&info, "\t\tHint:        %s,\n", hintConst(prop.Hint))
	}
	if prop.HintString != "" {
		fmt.Fprintf(&info, "\t\tHintString:  %q,\n", prop.HintString)
	}
	fmt.Fprintf(&info, "\t\tUsage:       %s,\n", usageExpr(prop.Usage))
	if prop.GroupPath.Group != "" {
		fmt.Fprintf(&info, "\t\tGroup:       %q,\n", prop.GroupPath.Group)
	}
	if prop.GroupPath.Subgroup != "" {
		fmt.Fprintf(&info, "\t\tSubgroup:    %q,\n", prop.GroupPath.Subgroup)
	}

	return fmt.Sprintf(`	if err := db.RegisterProperty(%q, bridge.PropertyInfo{
%s	}, func(inst any) hostval.Value {
		return %s
	}, func(inst any, v hostval.Value) error {
		x, err := v.%s()
		if err != nil {
			return err
		}
		inst.(*%s).%s = x
		return nil
	}); err != nil {
		return err
	}`,
		class.Name, info.String(),
		wrapExpr(prop.Kind, fmt.Sprintf("inst.(*%s).%s", class.Name, prop.GoName)),
		unwrapMethod(prop.Kind), class.Name, prop.GoName)
}

func (g *ClassGenerator) generateMethodRegistration(class *descriptor.Class, method *descriptor.Method) string {
	var info strings.Builder
	fmt.Fprintf(&info, "\t\tName: %q,\n", method.Name)
	if len(method.Args) > 0 {
		info.WriteString("\t\tArgs: []bridge.ArgInfo{\n")
		for _, arg := range method.Args {
			fmt.Fprintf(&info, "\t\t\t{Name: %q, Kind: %s},\n", arg.Name, kindConst(arg.Kind))
		}
		info.WriteString("\t\t},\n")
	}
	if method.HasReturn {
		fmt.Fprintf(&info, "\t\tReturnKind: %s,\n", kindConst(method.ReturnKind))
		info.WriteString("\t\tHasReturn:  true,\n")
	}

	var body strings.Builder
	fmt.Fprintf(&body, "\t\tif len(args) != %d {\n", len(method.Args))
	fmt.Fprintf(&body, "\t\t\treturn hostval.Nil(), fmt.Errorf(\"%s: expected %d arguments, got %%d\", len(args))\n",
		method.Name, len(method.Args))
	body.WriteString("\t\t}\n")

	var callArgs []string
	for i, arg := range method.Args {
		fmt.Fprintf(&body, "\t\ta%d, err := args[%d].%s()\n", i, i, unwrapMethod(arg.Kind))
		body.WriteString("\t\tif err != nil {\n\t\t\treturn hostval.Nil(), err\n\t\t}\n")
		callArgs = append(callArgs, fmt.Sprintf("a%d", i))
	}

	call := fmt.Sprintf("inst.(*%s).%s(%s)", class.Name, method.GoName, strings.Join(callArgs, ", "))
	if method.HasReturn {
		fmt.Fprintf(&body, "\t\tr := %s\n", call)
		fmt.Fprintf(&body, "\t\treturn %s, nil", wrapExpr(method.ReturnKind, "r"))
	} else {
		fmt.Fprintf(&body, "\t\t%s\n", call)
		body.WriteString("\t\treturn hostval.Nil(), nil")
	}

	return fmt.Sprintf(`	if err := db.RegisterMethod(%q, bridge.MethodInfo{
%s	}, func(inst any, args []hostval.Value) (hostval.Value, error) {
%s
	}); err != nil {
		return err
	}`, class.Name, info.String(), body.String())
}

func (g *ClassGenerator) generateSignalRegistration(class *descriptor.Class, signal *descriptor.Signal) string {
	var info strings.Builder
	fmt.Fprintf(&info, "\t\tName: %q,\n", signal.Name)
	if len(signal.Args) > 0 {
		info.WriteString("\t\tArgs: []bridge.ArgInfo{\n")
		for _, arg := range signal.Args {
			fmt.Fprintf(&info, "\t\t\t{Name: %q, Kind: %s},\n", arg.Name, kindConst(arg.Kind))
		}
		info.WriteString("\t\t},\n")
	}

	return fmt.Sprintf(`	if err := db.RegisterSignal(%q, bridge.SignalInfo{
%s	}); err != nil {
		return err
	}`, class.Name, info.String())
}

func hintConst(hint bridge.PropertyHint) string {
	switch hint {
	case bridge.HintRange:
		return "bridge.HintRange"
	case bridge.HintEnum:
		return "bridge.HintEnum"
	case bridge.HintFile:
		return "bridge.HintFile"
	case bridge.HintDir:
		return "bridge.HintDir"
	case bridge.HintMultiline:
		return "bridge.HintMultiline"
	case bridge.HintColorNoAlpha:
		return "bridge.HintColorNoAlpha"
	case bridge.HintResourceType:
		return "bridge.HintResourceType"
	default:
		return "bridge.HintNone"
	}
}

func usageExpr(usage bridge.UsageFlags) string {
	if usage == bridge.UsageDefault {
		return "bridge.UsageDefault"
	}

	var parts []string
	if usage&bridge.UsageStorage != 0 {
		parts = append(parts, "bridge.UsageStorage")
	}
	if usage&bridge.UsageEditor != 0 {
		parts = append(parts, "bridge.UsageEditor")
	}
	if usage&bridge.UsageReadOnly != 0 {
		parts = append(parts, "bridge.UsageReadOnly")
	}
	if usage&bridge.UsageNoInstanceState != 0 {
		parts = append(parts, "bridge.UsageNoInstanceState")
	}
	if len(parts) == 0 {
		return "bridge.UsageDefault"
	}
	return strings.Join(parts, " | ")
}
