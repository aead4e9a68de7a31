package scene_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tether-lang/tether/runtime/hosttest"
	"github.com/tether-lang/tether/runtime/scene"
)

func buildTree() *hosttest.TreeNode {
	root := hosttest.NewNode("Root")
	root.Attach("UI").Attach("HealthBar")
	root.Attach("Enemies").Attach("Boss")
	return root
}

func TestResolve(t *testing.T) {
	root := buildTree()

	node, ok := scene.Resolve(root, "UI/HealthBar")
	require.True(t, ok)
	assert.Equal(t, "HealthBar", node.Name())

	// Single segment.
	node, ok = scene.Resolve(root, "Enemies")
	require.True(t, ok)
	assert.Equal(t, "Enemies", node.Name())
}

func TestResolveMiss(t *testing.T) {
	root := buildTree()

	_, ok := scene.Resolve(root, "UI/ManaBar")
	assert.False(t, ok)

	_, ok = scene.Resolve(root, "")
	assert.False(t, ok)

	_, ok = scene.Resolve(nil, "UI")
	assert.False(t, ok)
}

func TestResolveIsStateless(t *testing.T) {
	root := buildTree()

	// A node added after a failed lookup is found on the next access:
	// nothing is cached across resolutions.
	_, ok := scene.Resolve(root, "UI/ManaBar")
	require.False(t, ok)

	ui, _ := scene.Resolve(root, "UI")
	ui.(*hosttest.TreeNode).Attach("ManaBar")

	node, ok := scene.Resolve(root, "UI/ManaBar")
	require.True(t, ok)
	assert.Equal(t, "ManaBar", node.Name())
}

func TestMustResolve(t *testing.T) {
	root := buildTree()

	node := scene.MustResolve(root, "Enemies/Boss")
	assert.Equal(t, "Boss", node.Name())

	// A required reference that does not resolve halts the accessor.
	assert.Panics(t, func() {
		scene.MustResolve(root, "Enemies/Minion")
	})
}

func TestMustResolveNilRoot(t *testing.T) {
	defer func() {
		r := recover()
		require.NotNil(t, r)
		// The panic carries the lookup diagnostic, not a nil deref.
		assert.Contains(t, r.(string), `required node "Enemies/Boss"`)
		assert.Contains(t, r.(string), "<nil>")
	}()
	scene.MustResolve(nil, "Enemies/Boss")
}
