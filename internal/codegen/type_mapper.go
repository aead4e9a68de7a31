package codegen

import "github.com/tether-lang/tether/runtime/hostval"

// mapKindToGo returns the Go type a host value kind marshals to in
// generated wrapper fields and method signatures.
func mapKindToGo(kind hostval.Kind) string {
	switch kind {
	case hostval.KindBool:
		return "bool"
	case hostval.KindInt:
		return "int64"
	case hostval.KindFloat:
		return "float64"
	case hostval.KindString:
		return "string"
	case hostval.KindVector2:
		return "hostval.Vector2"
	case hostval.KindVector3:
		return "hostval.Vector3"
	case hostval.KindColor:
		return "hostval.Color"
	case hostval.KindNodePath:
		return "hostval.NodePath"
	case hostval.KindObject:
		return "hostval.Object"
	case hostval.KindArray:
		return "[]hostval.Value"
	case hostval.KindDict:
		return "map[string]hostval.Value"
	default:
		return "hostval.Value"
	}
}

// wrapExpr returns the constructor expression that lifts a Go value
// into a host value.
func wrapExpr(kind hostval.Kind, expr string) string {
	switch kind {
	case hostval.KindBool:
		return "hostval.Bool(" + expr + ")"
	case hostval.KindInt:
		return "hostval.Int(" + expr + ")"
	case hostval.KindFloat:
		return "hostval.Float(" + expr + ")"
	case hostval.KindString:
		return "hostval.Str(" + expr + ")"
	case hostval.KindVector2:
		return "hostval.Vec2(" + expr + ")"
	case hostval.KindVector3:
		return "hostval.Vec3(" + expr + ")"
	case hostval.KindColor:
		return "hostval.Col(" + expr + ")"
	case hostval.KindNodePath:
		return "hostval.Path(" + expr + ")"
	case hostval.KindObject:
		return "hostval.Obj(" + expr + ")"
	case hostval.KindArray:
		return "hostval.Arr(" + expr + ")"
	case hostval.KindDict:
		return "hostval.Dict(" + expr + ")"
	default:
		return expr
	}
}

// unwrapMethod returns the extractor method name for a host value
// kind.
func unwrapMethod(kind hostval.Kind) string {
	switch kind {
	case hostval.KindBool:
		return "AsBool"
	case hostval.KindInt:
		return "AsInt"
	case hostval.KindFloat:
		return "AsFloat"
	case hostval.KindString:
		return "AsString"
	case hostval.KindVector2:
		return "AsVector2"
	case hostval.KindVector3:
		return "AsVector3"
	case hostval.KindColor:
		return "AsColor"
	case hostval.KindNodePath:
		return "AsNodePath"
	case hostval.KindObject:
		return "AsObject"
	case hostval.KindArray:
		return "AsArray"
	case hostval.KindDict:
		return "AsDict"
	default:
		return "AsObject"
	}
}

// kindConst returns the hostval constant expression for a kind.
func kindConst(kind hostval.Kind) string {
	switch kind {
	case hostval.KindBool:
		return "hostval.KindBool"
	case hostval.KindInt:
		return "hostval.KindInt"
	case hostval.KindFloat:
		return "hostval.KindFloat"
	case hostval.KindString:
		return "hostval.KindString"
	case hostval.KindVector2:
		return "hostval.KindVector2"
	case hostval.KindVector3:
		return "hostval.KindVector3"
	case hostval.KindColor:
		return "hostval.KindColor"
	case hostval.KindNodePath:
		return "hostval.KindNodePath"
	case hostval.KindObject:
		return "hostval.KindObject"
	case hostval.KindArray:
		return "hostval.KindArray"
	case hostval.KindDict:
		return "hostval.KindDict"
	default:
		return "hostval.KindNil"
	}
}

// goKeywords guards generated parameter names against the reserved
// words of the target language.
var goKeywords = map[string]bool{
	"break": true, "case": true, "chan": true, "const": true,
	"continue": true, "default": true, "defer": true, "else": true,
	"fallthrough": true, "for": true, "func": true, "go": true,
	"goto": true, "if": true, "import": true, "interface": true,
	"map": true, "new": true, "package": true, "range": true,
	"return": true, "select": true, "struct": true, "switch": true,
	"type": true, "var": true,
}

// safeParamName rewrites parameter names that collide with Go
// reserved words.
func safeParamName(name string) string {
	if goKeywords[name] {
		return name + "_"
	}
	return name
}
