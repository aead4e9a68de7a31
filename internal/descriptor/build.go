package descriptor

import (
	"fmt"

	"github.com/tether-lang/tether/compiler/errors"
	"github.com/tether-lang/tether/compiler/parser"
)

// overrideHooks is the set of optional lifecycle callbacks the host
// dispatches to subclasses that register them.
var overrideHooks = map[string]bool{
	"ready":           true,
	"process":         true,
	"physics_process": true,
	"input":           true,
	"draw":            true,
	"enter_tree":      true,
	"exit_tree":       true,
}

// BuildProgram derives descriptors for every class and picker enum in
// a parsed program. A declaration that fails to build is reported and
// skipped; the rest of the program still builds.
func BuildProgram(program *parser.Program) ([]*Class, []*Enum, errors.ErrorList) {
	var classes []*Class
	var enums []*Enum
	var all errors.ErrorList

	for _, classNode := range program.Classes {
		class, errs := BuildClass(classNode)
		all = append(all, errs...)
		if class != nil {
			classes = append(classes, class)
		}
	}

	for _, enumNode := range program.Enums {
		if !enumNode.HasAnnotation("picker") {
			all = append(all, errors.New("descriptor", errors.ErrUnexportedDeclaration,
				fmt.Sprintf("enum %q has no @picker annotation and will not be registered", enumNode.Name),
				toLocation(enumNode.Location), errors.Warning))
			continue
		}
		enum, errs := BuildEnum(enumNode)
		all = append(all, errs...)
		if enum != nil {
			enums = append(enums, enum)
		}
	}

	return classes, enums, all
}

// BuildClass derives the Class descriptor for one declaration. Group
// and subgroup scoping is an explicit fold over the body in
// declaration order: every member picks up the scope accumulated at
// its declaration point.
func BuildClass(node *parser.ClassNode) (*Class, errors.ErrorList) {
	var errs errors.ErrorList

	class := &Class{
		Name:          node.Name,
		Parent:        node.Parent,
		Tool:          node.HasAnnotation("tool"),
		DiscardHandle: node.HasAnnotation("discard_handle"),
		Location:      toLocation(node.Location),
	}

	var scope GroupPath

	// One wire-name namespace per class, plus a map from generated Go
	// identifier back to the wire name that produced it.
	names := make(map[string]bool)
	goNames := make(map[string]string)
	signals := make(map[string]*Signal)
	overrides := make(map[string]bool)

	claimName := func(name, goName string, loc errors.SourceLocation) bool {
		if names[name] {
			errs = append(errs, errors.New("descriptor", errors.ErrDuplicateMember,
				fmt.Sprintf("class %q declares member %q twice", node.Name, name), loc, errors.Error))
			return false
		}
		if prev, taken := goNames[goName]; taken {
			errs = append(errs, errors.New("descriptor", errors.ErrDuplicateMember,
				fmt.Sprintf("class %q: members %q and %q both generate the Go name %q", node.Name, prev, name, goName),
				loc, errors.Error))
			return false
		}
		names[name] = true
		goNames[goName] = name
		return true
	}

	// Signals share the class namespace; a redeclared signal goes
	// through the equivalence merge instead of the duplicate check.
	addSignal := func(signal *Signal) {
		if _, redeclared := signals[signal.Name]; redeclared {
			errs = append(errs, mergeSignal(signals, &class.Signals, signal)...)
			return
		}
		if claimName(signal.Name, "Emit"+GoName(signal.Name), signal.Location) {
			errs = append(errs, mergeSignal(signals, &class.Signals, signal)...)
		}
	}

	for _, item := range node.Body {
		switch n := item.(type) {
		case *parser.GroupNode:
			// A new group resets the subgroup scope.
			scope = GroupPath{Group: n.Name}

		case *parser.SubgroupNode:
			scope.Subgroup = n.Name
			scope.Prefix = n.Prefix

		case *parser.SignalNode:
			signal, sigErrs := buildSignalFromParams(n.Name, n.Params, n.Location)
			errs = append(errs, sigErrs...)
			if signal != nil {
				addSignal(signal)
			}

		case *parser.OverrideNode:
			loc := toLocation(n.Location)
			if !overrideHooks[n.Hook] {
				errs = append(errs, errors.New("descriptor", errors.ErrUnknownOverrideHook,
					fmt.Sprintf("unknown override hook %q", n.Hook), loc, errors.Error))
				continue
			}
			if overrides[n.Hook] {
				errs = append(errs, errors.New("descriptor", errors.ErrDuplicateMember,
					fmt.Sprintf("class %q overrides hook %q twice", node.Name, n.Hook), loc, errors.Error))
				continue
			}
			overrides[n.Hook] = true
			class.Overrides = append(class.Overrides, n.Hook)

		case *parser.PropertyNode:
			errs = append(errs, buildBodyProperty(class, n, scope, claimName, addSignal)...)

		case *parser.MethodNode:
			ann := findAnnotation(n.Annotations, "method")
			if ann == nil {
				errs = append(errs, errors.New("descriptor", errors.ErrUnexportedDeclaration,
					fmt.Sprintf("method %q has no @method annotation", n.Name),
					toLocation(n.Location), errors.Error))
				continue
			}
			method, methodErrs := buildMethod(n, ann)
			errs = append(errs, methodErrs...)
			if method != nil && claimName(method.Name, method.GoName, method.Location) {
				class.Methods = append(class.Methods, method)
			}
		}
	}

	if errs.HasErrors() {
		return nil, errs
	}
	return class, errs
}

// buildBodyProperty dispatches a property declaration to the signal
// carrier, node reference, or exported property builder.
func buildBodyProperty(class *Class, n *parser.PropertyNode, scope GroupPath,
	claimName func(name, goName string, loc errors.SourceLocation) bool,
	addSignal func(*Signal)) errors.ErrorList {

	var errs errors.ErrorList

	switch n.Type.Kind {
	case parser.TypeSignal:
		signal, sigErrs := buildSignalFromParams(n.Name, n.Type.SignalParams, n.Location)
		errs = append(errs, sigErrs...)
		if signal != nil {
			addSignal(signal)
		}

	case parser.TypeNodeRef:
		ref := buildNodeRef(n, findAnnotation(n.Annotations, "node"))
		if claimName(ref.Name, ref.GoName, ref.Location) {
			class.NodeRefs = append(class.NodeRefs, ref)
		}

	default:
		ann := findAnnotation(n.Annotations, "export")
		if ann == nil {
			errs = append(errs, errors.New("descriptor", errors.ErrUnexportedDeclaration,
				fmt.Sprintf("property %q has no @export annotation", n.Name),
				toLocation(n.Location), errors.Error))
			return errs
		}
		prop, propErrs := buildProperty(n, ann, scope)
		errs = append(errs, propErrs...)
		if prop != nil && claimName(prop.Name, prop.GoName, prop.Location) {
			class.Properties = append(class.Properties, prop)
		}
	}

	return errs
}

func findAnnotation(anns []*parser.AnnotationNode, name string) *parser.AnnotationNode {
	for _, a := range anns {
		if a.Name == name {
			return a
		}
	}
	return nil
}
