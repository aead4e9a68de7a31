package descriptor

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/tether-lang/tether/compiler/errors"
	"github.com/tether-lang/tether/compiler/parser"
	"github.com/tether-lang/tether/runtime/bridge"
)

// ToSnakeCase rewrites a camel-case name to lower_snake_case. An
// underscore is inserted before each uppercase rune that starts a new
// segment; a run of uppercase runes is one segment, so "HP" becomes
// "hp". The translation is idempotent on already-snake-case names.
func ToSnakeCase(name string) string {
	var b strings.Builder
	runes := []rune(name)

	for i, r := range runes {
		if unicode.IsUpper(r) {
			if i > 0 && !unicode.IsUpper(runes[i-1]) && runes[i-1] != '_' {
				b.WriteRune('_')
			}
			b.WriteRune(unicode.ToLower(r))
		} else {
			b.WriteRune(r)
		}
	}

	return b.String()
}

// GoName returns the exported Go identifier for a declared name.
func GoName(name string) string {
	parts := strings.Split(name, "_")
	var b strings.Builder
	for _, part := range parts {
		if part == "" {
			continue
		}
		runes := []rune(part)
		b.WriteRune(unicode.ToUpper(runes[0]))
		b.WriteString(string(runes[1:]))
	}
	return b.String()
}

// buildProperty derives a Property descriptor from an @export
// property declaration and the current group scope.
func buildProperty(node *parser.PropertyNode, ann *parser.AnnotationNode, scope GroupPath) (*Property, []errors.CompilerError) {
	var errs []errors.CompilerError
	loc := toLocation(node.Location)

	kind, ok := valueKind(node.Type)
	if !ok {
		errs = append(errs, errors.New("descriptor", errors.ErrUnsupportedExportType,
			fmt.Sprintf("type %q cannot be marshaled to a host value", node.Type.Kind), loc, errors.Error))
		return nil, errs
	}

	wireName := node.Name
	if ann.HasFlag("auto_snake_case") {
		wireName = ToSnakeCase(wireName)
	}

	prop := &Property{
		Name:        wireName,
		DisplayName: displayName(wireName, scope.Prefix),
		GoName:      GoName(node.Name),
		Kind:        kind,
		Usage:       bridge.UsageDefault,
		GroupPath:   scope,
		Location:    loc,
	}

	if hintVal, ok := ann.Arg("hint"); ok {
		hintName, _ := hintVal.(string)
		hint, known := bridge.HintByName(hintName)
		if !known {
			errs = append(errs, errors.New("descriptor", errors.ErrUnknownHint,
				fmt.Sprintf("unknown property hint %q", hintName), loc, errors.Error))
			return nil, errs
		}
		prop.Hint = hint
	}

	if hs, ok := ann.Arg("hint_string"); ok {
		s, isString := hs.(string)
		if !isString {
			errs = append(errs, errors.New("descriptor", errors.ErrUnknownHint,
				"hint_string must be a string", loc, errors.Error))
			return nil, errs
		}
		prop.HintString = s
	}

	if usageVal, ok := ann.Arg("usage"); ok {
		usageStr, _ := usageVal.(string)
		usage, err := parseUsage(usageStr)
		if err != nil {
			errs = append(errs, errors.New("descriptor", errors.ErrUnknownUsageFlag,
				err.Error(), loc, errors.Error))
			return nil, errs
		}
		prop.Usage = usage
	}

	return prop, errs
}

// parseUsage resolves a comma-separated usage flag list.
func parseUsage(s string) (bridge.UsageFlags, error) {
	var usage bridge.UsageFlags
	for _, name := range strings.Split(s, ",") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		flag, ok := bridge.UsageByName(name)
		if !ok {
			return 0, fmt.Errorf("unknown usage flag %q", name)
		}
		usage |= flag
	}
	if usage == 0 {
		usage = bridge.UsageDefault
	}
	return usage, nil
}

// displayName strips the subgroup prefix from the wire name for the
// editor label. The wire name itself is never changed by grouping.
func displayName(wireName, prefix string) string {
	if prefix != "" && strings.HasPrefix(wireName, prefix) && len(wireName) > len(prefix) {
		return wireName[len(prefix):]
	}
	return wireName
}

// buildMethod derives a Method descriptor from a @method func
// declaration.
func buildMethod(node *parser.MethodNode, ann *parser.AnnotationNode) (*Method, []errors.CompilerError) {
	var errs []errors.CompilerError
	loc := toLocation(node.Location)

	wireName := node.Name
	if ann.HasFlag("auto_snake_case") {
		wireName = ToSnakeCase(wireName)
	}

	method := &Method{
		Name:     wireName,
		GoName:   GoName(node.Name),
		Location: loc,
	}

	seen := make(map[string]bool)
	for _, param := range node.Params {
		kind, ok := valueKind(param.Type)
		if !ok {
			errs = append(errs, errors.New("descriptor", errors.ErrUnsupportedExportType,
				fmt.Sprintf("argument %q: type %q cannot be marshaled to a host value", param.Name, param.Type.Kind),
				toLocation(param.Location), errors.Error))
			return nil, errs
		}
		if seen[param.Name] {
			errs = append(errs, errors.New("descriptor", errors.ErrDuplicateMember,
				fmt.Sprintf("method %q declares argument %q twice", node.Name, param.Name),
				toLocation(param.Location), errors.Error))
			return nil, errs
		}
		seen[param.Name] = true
		method.Args = append(method.Args, Arg{Name: param.Name, Kind: kind})
	}

	if node.ReturnType != nil {
		kind, ok := valueKind(*node.ReturnType)
		if !ok {
			errs = append(errs, errors.New("descriptor", errors.ErrUnsupportedExportType,
				fmt.Sprintf("return type %q cannot be marshaled to a host value", node.ReturnType.Kind), loc, errors.Error))
			return nil, errs
		}
		method.ReturnKind = kind
		method.HasReturn = true
	}

	return method, errs
}

// buildNodeRef derives a NodeRef descriptor. The path defaults to the
// property's own name when the @node annotation does not declare one.
func buildNodeRef(node *parser.PropertyNode, ann *parser.AnnotationNode) *NodeRef {
	ref := &NodeRef{
		Name:     node.Name,
		GoName:   GoName(node.Name),
		Path:     node.Name,
		Target:   node.Type.ClassName,
		Required: !node.Type.Optional,
		Location: toLocation(node.Location),
	}

	if ann != nil {
		if path, ok := ann.Positional(0); ok {
			if pathStr, isString := path.(string); isString && pathStr != "" {
				ref.Path = pathStr
			}
		}
	}

	return ref
}
