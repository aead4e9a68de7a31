// Package scene resolves node-reference properties against the
// host's scene graph. Resolution is stateless and recomputed on every
// access; any caching belongs to the host's own lookup.
package scene

import (
	"fmt"
	"strings"

	"github.com/tether-lang/tether/runtime/hostval"
)

// Node is the read-only view of a host scene-graph node. The host
// owns the tree; tether never mutates it and performs no locking.
type Node interface {
	hostval.Object

	// Name returns the node's name, unique among its siblings.
	Name() string

	// Child returns the named direct child.
	Child(name string) (Node, bool)
}

// Resolve walks a slash-separated path from root. An empty path or a
// missing segment yields (nil, false).
func Resolve(root Node, path hostval.NodePath) (Node, bool) {
	if root == nil || path == "" {
		return nil, false
	}

	current := root
	for _, segment := range strings.Split(string(path), "/") {
		if segment == "" {
			continue
		}
		next, ok := current.Child(segment)
		if !ok {
			return nil, false
		}
		current = next
	}
	return current, true
}

// MustResolve resolves a required node reference. A miss is
// programmer error, not a recoverable condition: the process halts
// rather than continue with a nil required dependency.
func MustResolve(root Node, path hostval.NodePath) Node {
	node, ok := Resolve(root, path)
	if !ok {
		rootName := "<nil>"
		if root != nil {
			rootName = root.Name()
		}
		panic(fmt.Sprintf("required node %q not found under %q", path, rootName))
	}
	return node
}
