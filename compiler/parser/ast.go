package parser

import "github.com/tether-lang/tether/compiler/lexer"

// SourceLocation represents a location in source code
type SourceLocation struct {
	File   string
	Line   int
	Column int
}

// TokenToLocation converts a token's position to a SourceLocation
func TokenToLocation(t lexer.Token) SourceLocation {
	return SourceLocation{File: t.File, Line: t.Line, Column: t.Column}
}

// Program is the root node of the AST
type Program struct {
	Classes  []*ClassNode
	Enums    []*EnumNode
	Location SourceLocation
}

// AnnotationArg is one argument of an annotation. Positional
// arguments have an empty Name. Value is a string, int64 or bool.
type AnnotationArg struct {
	Name  string
	Value interface{}
}

// AnnotationNode represents an @annotation with optional arguments
type AnnotationNode struct {
	Name     string
	Args     []AnnotationArg
	Location SourceLocation
}

// Arg returns the named argument's value, if present
func (a *AnnotationNode) Arg(name string) (interface{}, bool) {
	for _, arg := range a.Args {
		if arg.Name == name {
			return arg.Value, true
		}
	}
	return nil, false
}

// Positional returns the nth positional argument's value, if present
func (a *AnnotationNode) Positional(n int) (interface{}, bool) {
	i := 0
	for _, arg := range a.Args {
		if arg.Name != "" {
			continue
		}
		if i == n {
			return arg.Value, true
		}
		i++
	}
	return nil, false
}

// HasFlag reports whether a bare identifier argument is present
func (a *AnnotationNode) HasFlag(name string) bool {
	for _, arg := range a.Args {
		if arg.Name == "" && arg.Value == name {
			return true
		}
	}
	return false
}

// ClassNode represents a class declaration
type ClassNode struct {
	Name        string
	Parent      string
	Annotations []*AnnotationNode // class-level: @tool, @discard_handle
	Body        []BodyItem        // ordered; group scoping is lexical
	Location    SourceLocation
}

// HasAnnotation reports whether a class-level annotation is present
func (c *ClassNode) HasAnnotation(name string) bool {
	return annotationPresent(c.Annotations, name)
}

func annotationPresent(anns []*AnnotationNode, name string) bool {
	for _, a := range anns {
		if a.Name == name {
			return true
		}
	}
	return false
}

// BodyItem is any item appearing in a class body, in declaration order
type BodyItem interface {
	bodyItem()
	Loc() SourceLocation
}

// GroupNode represents a standalone @group declaration
type GroupNode struct {
	Name     string
	Location SourceLocation
}

// SubgroupNode represents a standalone @subgroup declaration
type SubgroupNode struct {
	Name     string
	Prefix   string
	Location SourceLocation
}

// PropertyNode represents a property declaration, including signal
// carriers (typed form) and node references
type PropertyNode struct {
	Name        string
	Type        TypeNode
	Annotations []*AnnotationNode
	Location    SourceLocation
}

// MethodNode represents a func declaration
type MethodNode struct {
	Name        string
	Params      []ParamNode
	ReturnType  *TypeNode
	Annotations []*AnnotationNode
	Location    SourceLocation
}

// SignalNode represents the legacy freestanding @signal form
type SignalNode struct {
	Name     string
	Params   []ParamNode
	Location SourceLocation
}

// OverrideNode represents an @override hook declaration
type OverrideNode struct {
	Hook     string
	Location SourceLocation
}

func (*GroupNode) bodyItem()    {}
func (*SubgroupNode) bodyItem() {}
func (*PropertyNode) bodyItem() {}
func (*MethodNode) bodyItem()   {}
func (*SignalNode) bodyItem()   {}
func (*OverrideNode) bodyItem() {}

func (n *GroupNode) Loc() SourceLocation    { return n.Location }
func (n *SubgroupNode) Loc() SourceLocation { return n.Location }
func (n *PropertyNode) Loc() SourceLocation { return n.Location }
func (n *MethodNode) Loc() SourceLocation   { return n.Location }
func (n *SignalNode) Loc() SourceLocation   { return n.Location }
func (n *OverrideNode) Loc() SourceLocation { return n.Location }

// TypeKind represents the kind of a declared type
type TypeKind int

const (
	TypeBool TypeKind = iota
	TypeInt
	TypeFloat
	TypeString
	TypeVector2
	TypeVector3
	TypeColor
	TypeObject
	TypeArray
	TypeDict
	TypeSignal
	TypeNodeRef
)

// String returns the declaration-language name of the kind
func (k TypeKind) String() string {
	switch k {
	case TypeBool:
		return "bool"
	case TypeInt:
		return "int"
	case TypeFloat:
		return "float"
	case TypeString:
		return "string"
	case TypeVector2:
		return "vector2"
	case TypeVector3:
		return "vector3"
	case TypeColor:
		return "color"
	case TypeObject:
		return "object"
	case TypeArray:
		return "array"
	case TypeDict:
		return "dict"
	case TypeSignal:
		return "signal"
	case TypeNodeRef:
		return "node"
	default:
		return "unknown"
	}
}

// TypeNode represents a declared type
type TypeNode struct {
	Kind         TypeKind
	ClassName    string      // For object refs and node<T> targets
	Optional     bool        // Trailing ?
	SignalParams []ParamNode // For signal carriers
	Location     SourceLocation
}

// ParamNode represents one method or signal parameter
type ParamNode struct {
	Name     string
	Type     TypeNode
	Location SourceLocation
}

// EnumNode represents a top-level enum declaration
type EnumNode struct {
	Name        string
	Backing     string // declared underlying type, e.g. "int"
	Annotations []*AnnotationNode
	Cases       []*EnumCaseNode
	Location    SourceLocation
}

// HasAnnotation reports whether an enum-level annotation is present
func (e *EnumNode) HasAnnotation(name string) bool {
	return annotationPresent(e.Annotations, name)
}

// EnumCaseNode represents one enum case, with an optional explicit value
type EnumCaseNode struct {
	Name     string
	HasValue bool
	Value    int64
	Location SourceLocation
}
