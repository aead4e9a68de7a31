// Package descriptor derives immutable registration descriptors from
// parsed declaration ASTs. Builders are pure: they consume AST nodes
// and produce descriptors plus diagnostics, never side effects; the
// codegen package turns descriptors into registration code.
package descriptor

import (
	"github.com/tether-lang/tether/compiler/errors"
	"github.com/tether-lang/tether/compiler/parser"
	"github.com/tether-lang/tether/runtime/bridge"
	"github.com/tether-lang/tether/runtime/hostval"
)

// Class is the registration descriptor for one declared class.
type Class struct {
	Name          string
	Parent        string
	Tool          bool
	DiscardHandle bool
	Properties    []*Property
	Methods       []*Method
	Signals       []*Signal
	NodeRefs      []*NodeRef
	Overrides     []string
	Location      errors.SourceLocation
}

// GroupPath is the lexical group scope a member was declared under.
type GroupPath struct {
	Group    string
	Subgroup string
	Prefix   string
}

// Property describes one exported property. Name is the wire name the
// host registers (post snake-case translation); DisplayName is the
// editor label with any subgroup prefix stripped.
type Property struct {
	Name        string
	DisplayName string
	GoName      string // field name in the generated wrapper
	Kind        hostval.Kind
	Hint        bridge.PropertyHint
	HintString  string
	Usage       bridge.UsageFlags
	GroupPath   GroupPath
	Location    errors.SourceLocation
}

// Arg describes one method or signal argument.
type Arg struct {
	Name string
	Kind hostval.Kind
}

// Method describes one exported method.
type Method struct {
	Name       string // wire name (post snake-case translation)
	GoName     string // method name in the generated wrapper
	Args       []Arg
	ReturnKind hostval.Kind
	HasReturn  bool
	Location   errors.SourceLocation
}

// Signal describes one signal, normalized from either declaration
// form.
type Signal struct {
	Name     string
	Args     []Arg
	Location errors.SourceLocation
}

// ArgsEqual reports whether two signals carry the same ordered
// (name, type) argument list.
func (s *Signal) ArgsEqual(o *Signal) bool {
	if len(s.Args) != len(o.Args) {
		return false
	}
	for i := range s.Args {
		if s.Args[i] != o.Args[i] {
			return false
		}
	}
	return true
}

// NodeRef describes one scene-reference property.
type NodeRef struct {
	Name     string // property name
	GoName   string // accessor name in the generated wrapper
	Path     string // declared path; defaults to the property name
	Target   string // node class the accessor returns
	Required bool
	Location errors.SourceLocation
}

// Enum describes one picker-friendly enumeration.
type Enum struct {
	Name     string
	Cases    []EnumCase
	Location errors.SourceLocation
}

// EnumCase is one case in declaration order with its resolved value.
type EnumCase struct {
	Name  string
	Value int64
}

// valueKind maps a declared type to the host value kind it marshals
// through. Signal carriers and node references have no value kind.
func valueKind(t parser.TypeNode) (hostval.Kind, bool) {
	switch t.Kind {
	case parser.TypeBool:
		return hostval.KindBool, true
	case parser.TypeInt:
		return hostval.KindInt, true
	case parser.TypeFloat:
		return hostval.KindFloat, true
	case parser.TypeString:
		return hostval.KindString, true
	case parser.TypeVector2:
		return hostval.KindVector2, true
	case parser.TypeVector3:
		return hostval.KindVector3, true
	case parser.TypeColor:
		return hostval.KindColor, true
	case parser.TypeObject:
		return hostval.KindObject, true
	case parser.TypeArray:
		return hostval.KindArray, true
	case parser.TypeDict:
		return hostval.KindDict, true
	default:
		return hostval.KindNil, false
	}
}

func toLocation(loc parser.SourceLocation) errors.SourceLocation {
	return errors.SourceLocation{File: loc.File, Line: loc.Line, Column: loc.Column}
}
