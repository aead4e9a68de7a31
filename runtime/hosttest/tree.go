package hosttest

import "github.com/tether-lang/tether/runtime/scene"

// TreeNode is an in-memory scene-graph node implementing scene.Node.
type TreeNode struct {
	Object
	name     string
	children map[string]*TreeNode
}

// NewNode creates a detached node.
func NewNode(name string) *TreeNode {
	return &TreeNode{
		Object:   Object{id: newID(), class: "Node"},
		name:     name,
		children: make(map[string]*TreeNode),
	}
}

// Name implements scene.Node.
func (n *TreeNode) Name() string { return n.name }

// Child implements scene.Node.
func (n *TreeNode) Child(name string) (scene.Node, bool) {
	c, ok := n.children[name]
	if !ok {
		return nil, false
	}
	return c, true
}

// Attach adds a child node and returns it, for fluent tree building:
//
//	root := hosttest.NewNode("Root")
//	root.Attach("UI").Attach("HealthBar")
func (n *TreeNode) Attach(name string) *TreeNode {
	child := NewNode(name)
	n.children[name] = child
	return child
}
