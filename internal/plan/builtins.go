package plan

// hostBuiltins is the host class vocabulary a project can extend
// without listing anything under builtins: in tether.yml. Engine
// classes outside this set are added per project via config.
var hostBuiltins = []string{
	"Object",
	"RefCounted",
	"Resource",
	"Node",
	"CanvasItem",
	"Node2D",
	"Node3D",
	"Control",
	"Area2D",
	"Area3D",
	"StaticBody2D",
	"StaticBody3D",
	"RigidBody2D",
	"RigidBody3D",
	"CharacterBody2D",
	"CharacterBody3D",
	"Sprite2D",
	"Sprite3D",
	"Camera2D",
	"Camera3D",
	"AnimationPlayer",
	"AudioStreamPlayer",
	"Timer",
	"Label",
	"Button",
	"ProgressBar",
}

// DefaultBuiltins returns a copy of the default host class set.
func DefaultBuiltins() []string {
	out := make([]string, len(hostBuiltins))
	copy(out, hostBuiltins)
	return out
}

// WithBuiltins unions extra host classes from config with the default
// vocabulary.
func WithBuiltins(extra []string) []string {
	return append(DefaultBuiltins(), extra...)
}
