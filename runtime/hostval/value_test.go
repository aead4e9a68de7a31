package hostval

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeObject uint64

func (f fakeObject) InstanceID() uint64 { return uint64(f) }

// TestRoundTrip checks the round-trip law for every kind in the
// capability set: wrapping a native value and extracting it yields
// the original value.
func TestRoundTrip(t *testing.T) {
	t.Run("bool", func(t *testing.T) {
		got, err := Bool(true).AsBool()
		require.NoError(t, err)
		assert.True(t, got)
	})

	t.Run("int", func(t *testing.T) {
		got, err := Int(-42).AsInt()
		require.NoError(t, err)
		assert.Equal(t, int64(-42), got)
	})

	t.Run("float", func(t *testing.T) {
		got, err := Float(3.25).AsFloat()
		require.NoError(t, err)
		assert.Equal(t, 3.25, got)
	})

	t.Run("string", func(t *testing.T) {
		got, err := Str("hello").AsString()
		require.NoError(t, err)
		assert.Equal(t, "hello", got)
	})

	t.Run("vector2", func(t *testing.T) {
		v := Vector2{X: 1, Y: -2}
		got, err := Vec2(v).AsVector2()
		require.NoError(t, err)
		assert.Equal(t, v, got)
	})

	t.Run("vector3", func(t *testing.T) {
		v := Vector3{X: 1, Y: 2, Z: 3}
		got, err := Vec3(v).AsVector3()
		require.NoError(t, err)
		assert.Equal(t, v, got)
	})

	t.Run("color", func(t *testing.T) {
		c := Color{R: 0.5, G: 0.25, B: 1, A: 1}
		got, err := Col(c).AsColor()
		require.NoError(t, err)
		assert.Equal(t, c, got)
	})

	t.Run("node_path", func(t *testing.T) {
		got, err := Path("UI/HealthBar").AsNodePath()
		require.NoError(t, err)
		assert.Equal(t, NodePath("UI/HealthBar"), got)
	})

	t.Run("object", func(t *testing.T) {
		got, err := Obj(fakeObject(7)).AsObject()
		require.NoError(t, err)
		assert.Equal(t, uint64(7), got.InstanceID())
	})

	t.Run("array", func(t *testing.T) {
		in := []Value{Int(1), Str("two")}
		got, err := Arr(in).AsArray()
		require.NoError(t, err)
		assert.Equal(t, in, got)
	})

	t.Run("dict", func(t *testing.T) {
		in := map[string]Value{"a": Int(1), "b": Bool(false)}
		got, err := Dict(in).AsDict()
		require.NoError(t, err)
		assert.Equal(t, in, got)
	})
}

func TestMismatchedExtraction(t *testing.T) {
	_, err := Str("nope").AsInt()
	require.Error(t, err)

	var convErr *ConversionError
	require.ErrorAs(t, err, &convErr)
	assert.Equal(t, KindInt, convErr.Want)
	assert.Equal(t, KindString, convErr.Got)
}

func TestWideningAndCoercion(t *testing.T) {
	// Int widens to float but never the other way around.
	f, err := Int(4).AsFloat()
	require.NoError(t, err)
	assert.Equal(t, 4.0, f)

	_, err = Float(4.5).AsInt()
	require.Error(t, err)

	// Editor-serialized strings convert to node paths.
	p, err := Str("Enemies/Boss").AsNodePath()
	require.NoError(t, err)
	assert.Equal(t, NodePath("Enemies/Boss"), p)
}

func TestNilObject(t *testing.T) {
	assert.True(t, Obj(nil).IsNil())

	got, err := Nil().AsObject()
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestEqual(t *testing.T) {
	tests := []struct {
		name string
		a, b Value
		want bool
	}{
		{"nil vs nil", Nil(), Nil(), true},
		{"int vs same int", Int(3), Int(3), true},
		{"int vs other int", Int(3), Int(4), false},
		{"int vs float", Int(3), Float(3), false},
		{"nested array", Arr([]Value{Int(1), Arr([]Value{Str("x")})}), Arr([]Value{Int(1), Arr([]Value{Str("x")})}), true},
		{"array length", Arr([]Value{Int(1)}), Arr(nil), false},
		{"dict", Dict(map[string]Value{"k": Int(1)}), Dict(map[string]Value{"k": Int(1)}), true},
		{"dict key", Dict(map[string]Value{"k": Int(1)}), Dict(map[string]Value{"j": Int(1)}), false},
		{"object identity", Obj(fakeObject(1)), Obj(fakeObject(1)), true},
		{"object distinct", Obj(fakeObject(1)), Obj(fakeObject(2)), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Equal(tt.b))
		})
	}
}
