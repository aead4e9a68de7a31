package bridge_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tether-lang/tether/runtime/bridge"
	"github.com/tether-lang/tether/runtime/hosttest"
)

func TestFreshConstruction(t *testing.T) {
	host := hosttest.New()

	var a, b bridge.Instance
	require.NoError(t, a.Construct(host, "CharacterBody2D", bridge.Fresh()))
	require.NoError(t, b.Construct(host, "CharacterBody2D", bridge.Fresh()))

	// Each fresh construction allocated a distinct host object.
	assert.Len(t, host.Allocated(), 2)
	assert.NotEqual(t, a.InstanceID(), b.InstanceID())
	assert.True(t, a.Constructed())
}

func TestWrapConstruction(t *testing.T) {
	host := hosttest.New()
	handle, err := host.NewObject("Node")
	require.NoError(t, err)
	allocatedBefore := len(host.Allocated())

	var inst bridge.Instance
	require.NoError(t, inst.Construct(host, "Node", bridge.Wrap(handle)))

	// Wrapping never triggers the fresh allocation path.
	assert.Len(t, host.Allocated(), allocatedBefore)
	assert.Equal(t, handle.InstanceID(), inst.InstanceID())
}

func TestWrapNilHandle(t *testing.T) {
	var inst bridge.Instance
	err := inst.Construct(hosttest.New(), "Node", bridge.Wrap(nil))
	assert.ErrorIs(t, err, bridge.ErrNilHandle)
	assert.False(t, inst.Constructed())
}

func TestExactlyOneConstruction(t *testing.T) {
	host := hosttest.New()
	handle, err := host.NewObject("Node")
	require.NoError(t, err)

	var inst bridge.Instance
	require.NoError(t, inst.Construct(host, "Node", bridge.Fresh()))

	// Neither path may run a second time.
	assert.ErrorIs(t, inst.Construct(host, "Node", bridge.Fresh()), bridge.ErrAlreadyConstructed)
	assert.ErrorIs(t, inst.Construct(host, "Node", bridge.Wrap(handle)), bridge.ErrAlreadyConstructed)
}

func TestDiscardingWrapKeepsIdentity(t *testing.T) {
	host := hosttest.New()
	handle, err := host.NewObject("Node")
	require.NoError(t, err)

	// Handle-discarding is registration metadata; wrapping a handle
	// behaves identically and keeps the host identity.
	class := &bridge.Class{Name: "GizmoPlugin", Parent: "Node", DiscardHandle: true}
	assert.True(t, class.DiscardHandle)

	var inst bridge.Instance
	require.NoError(t, inst.Construct(host, "Node", bridge.Wrap(handle)))
	assert.Equal(t, handle.InstanceID(), inst.InstanceID())
}
