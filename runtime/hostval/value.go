// Package hostval implements the host engine's polymorphic value type
// and the closed set of native types that can cross the extension
// boundary. Every exported property, method argument and signal
// argument is marshaled through Value by the generated proxies.
package hostval

import "fmt"

// Kind identifies the payload carried by a Value.
type Kind int

const (
	KindNil Kind = iota
	KindBool
	KindInt
	KindFloat
	KindString
	KindVector2
	KindVector3
	KindColor
	KindNodePath
	KindObject
	KindArray
	KindDict
)

// String returns the host-facing name of the kind.
func (k Kind) String() string {
	switch k {
	case KindNil:
		return "nil"
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	case KindVector2:
		return "vector2"
	case KindVector3:
		return "vector3"
	case KindColor:
		return "color"
	case KindNodePath:
		return "node_path"
	case KindObject:
		return "object"
	case KindArray:
		return "array"
	case KindDict:
		return "dict"
	default:
		return "unknown"
	}
}

// Vector2 is the host's 2D vector.
type Vector2 struct {
	X, Y float64
}

// Vector3 is the host's 3D vector.
type Vector3 struct {
	X, Y, Z float64
}

// Color is an RGBA color with components in [0, 1].
type Color struct {
	R, G, B, A float64
}

// NodePath is a slash-separated path into the host's scene graph.
type NodePath string

// Object is a reference to a host-owned object. The marshaling layer
// only needs identity; the bridge package provides the concrete
// implementations.
type Object interface {
	InstanceID() uint64
}

// Value is the host's generic value representation. The zero Value is
// nil. Values are immutable once constructed.
type Value struct {
	kind Kind
	b    bool
	i    int64
	f    float64
	s    string
	v2   Vector2
	v3   Vector3
	c    Color
	obj  Object
	arr  []Value
	dict map[string]Value
}

// Nil returns the nil Value.
func Nil() Value { return Value{} }

// Bool wraps a bool.
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// Int wraps an int64.
func Int(i int64) Value { return Value{kind: KindInt, i: i} }

// Float wraps a float64.
func Float(f float64) Value { return Value{kind: KindFloat, f: f} }

// Str wraps a string.
func Str(s string) Value { return Value{kind: KindString, s: s} }

// Vec2 wraps a Vector2.
func Vec2(v Vector2) Value { return Value{kind: KindVector2, v2: v} }

// Vec3 wraps a Vector3.
func Vec3(v Vector3) Value { return Value{kind: KindVector3, v3: v} }

// Col wraps a Color.
func Col(c Color) Value { return Value{kind: KindColor, c: c} }

// Path wraps a NodePath.
func Path(p NodePath) Value { return Value{kind: KindNodePath, s: string(p)} }

// Obj wraps a host object reference. A nil object yields the nil Value.
func Obj(o Object) Value {
	if o == nil {
		return Value{}
	}
	return Value{kind: KindObject, obj: o}
}

// Arr wraps an ordered list of values.
func Arr(vs []Value) Value { return Value{kind: KindArray, arr: vs} }

// Dict wraps a string-keyed map of values.
func Dict(m map[string]Value) Value { return Value{kind: KindDict, dict: m} }

// Kind returns the kind tag of the value.
func (v Value) Kind() Kind { return v.kind }

// IsNil reports whether the value is the nil Value.
func (v Value) IsNil() bool { return v.kind == KindNil }

// String renders the value for diagnostics.
func (v Value) String() string {
	switch v.kind {
	case KindNil:
		return "nil"
	case KindBool:
		return fmt.Sprintf("%t", v.b)
	case KindInt:
		return fmt.Sprintf("%d", v.i)
	case KindFloat:
		return fmt.Sprintf("%g", v.f)
	case KindString:
		return fmt.Sprintf("%q", v.s)
	case KindNodePath:
		return fmt.Sprintf("^%q", v.s)
	case KindVector2:
		return fmt.Sprintf("(%g, %g)", v.v2.X, v.v2.Y)
	case KindVector3:
		return fmt.Sprintf("(%g, %g, %g)", v.v3.X, v.v3.Y, v.v3.Z)
	case KindColor:
		return fmt.Sprintf("(%g, %g, %g, %g)", v.c.R, v.c.G, v.c.B, v.c.A)
	case KindObject:
		return fmt.Sprintf("object#%d", v.obj.InstanceID())
	case KindArray:
		return fmt.Sprintf("array(%d)", len(v.arr))
	case KindDict:
		return fmt.Sprintf("dict(%d)", len(v.dict))
	default:
		return "unknown"
	}
}
