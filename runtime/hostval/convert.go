package hostval

import "fmt"

// ConversionError is returned when a Value's payload does not match
// the native type a proxy expected. Set and call proxies treat it as
// an abort: the underlying property or method is never touched.
type ConversionError struct {
	Want Kind
	Got  Kind
}

// Error implements the error interface.
func (e *ConversionError) Error() string {
	return fmt.Sprintf("cannot convert host value of kind %s to %s", e.Got, e.Want)
}

func mismatch(want, got Kind) error {
	return &ConversionError{Want: want, Got: got}
}

// AsBool extracts a bool.
func (v Value) AsBool() (bool, error) {
	if v.kind != KindBool {
		return false, mismatch(KindBool, v.kind)
	}
	return v.b, nil
}

// AsInt extracts an int64. Floats are not silently truncated; the
// host is expected to send the declared kind.
func (v Value) AsInt() (int64, error) {
	if v.kind != KindInt {
		return 0, mismatch(KindInt, v.kind)
	}
	return v.i, nil
}

// AsFloat extracts a float64. An integer value widens losslessly.
func (v Value) AsFloat() (float64, error) {
	switch v.kind {
	case KindFloat:
		return v.f, nil
	case KindInt:
		return float64(v.i), nil
	default:
		return 0, mismatch(KindFloat, v.kind)
	}
}

// AsString extracts a string.
func (v Value) AsString() (string, error) {
	if v.kind != KindString {
		return "", mismatch(KindString, v.kind)
	}
	return v.s, nil
}

// AsVector2 extracts a Vector2.
func (v Value) AsVector2() (Vector2, error) {
	if v.kind != KindVector2 {
		return Vector2{}, mismatch(KindVector2, v.kind)
	}
	return v.v2, nil
}

// AsVector3 extracts a Vector3.
func (v Value) AsVector3() (Vector3, error) {
	if v.kind != KindVector3 {
		return Vector3{}, mismatch(KindVector3, v.kind)
	}
	return v.v3, nil
}

// AsColor extracts a Color.
func (v Value) AsColor() (Color, error) {
	if v.kind != KindColor {
		return Color{}, mismatch(KindColor, v.kind)
	}
	return v.c, nil
}

// AsNodePath extracts a NodePath. A plain string converts, since the
// host's editor serializes paths as strings.
func (v Value) AsNodePath() (NodePath, error) {
	switch v.kind {
	case KindNodePath, KindString:
		return NodePath(v.s), nil
	default:
		return "", mismatch(KindNodePath, v.kind)
	}
}

// AsObject extracts a host object reference. Nil is allowed and
// yields a nil Object.
func (v Value) AsObject() (Object, error) {
	switch v.kind {
	case KindObject:
		return v.obj, nil
	case KindNil:
		return nil, nil
	default:
		return nil, mismatch(KindObject, v.kind)
	}
}

// AsArray extracts the element slice. The slice is shared, not
// copied; callers must not mutate it.
func (v Value) AsArray() ([]Value, error) {
	if v.kind != KindArray {
		return nil, mismatch(KindArray, v.kind)
	}
	return v.arr, nil
}

// AsDict extracts the underlying map. The map is shared, not copied.
func (v Value) AsDict() (map[string]Value, error) {
	if v.kind != KindDict {
		return nil, mismatch(KindDict, v.kind)
	}
	return v.dict, nil
}

// Equal reports deep equality of two values.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case KindNil:
		return true
	case KindBool:
		return v.b == o.b
	case KindInt:
		return v.i == o.i
	case KindFloat:
		return v.f == o.f
	case KindString, KindNodePath:
		return v.s == o.s
	case KindVector2:
		return v.v2 == o.v2
	case KindVector3:
		return v.v3 == o.v3
	case KindColor:
		return v.c == o.c
	case KindObject:
		return v.obj.InstanceID() == o.obj.InstanceID()
	case KindArray:
		if len(v.arr) != len(o.arr) {
			return false
		}
		for i := range v.arr {
			if !v.arr[i].Equal(o.arr[i]) {
				return false
			}
		}
		return true
	case KindDict:
		if len(v.dict) != len(o.dict) {
			return false
		}
		for k, ve := range v.dict {
			oe, ok := o.dict[k]
			if !ok || !ve.Equal(oe) {
				return false
			}
		}
		return true
	default:
		return false
	}
}
